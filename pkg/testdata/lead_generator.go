// Package testdata generates realistic fake lead sources and inbound calls
// for local development and tests.
package testdata

import (
	"context"
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jordanlanch/calltracker/ent"
	"github.com/jordanlanch/calltracker/pkg/calltracking"
)

// areaCodes are US area codes fake numbers are drawn from
var areaCodes = []string{"202", "206", "212", "303", "312", "415", "512", "617", "702", "808"}

// campaignKinds name the channels lead sources advertise on
var campaignKinds = []string{"Billboard", "Radio", "Newspaper", "Bus Stop", "Flyer", "Podcast", "TV Spot", "Direct Mail"}

// CallGeneratorConfig configures call generation
type CallGeneratorConfig struct {
	Count int
	// LocationChance is the probability (0.0-1.0) that the provider
	// reported the caller's city and state
	LocationChance float64
	// CallSIDChance is the probability (0.0-1.0) that a call SID is present
	CallSIDChance float64
}

// DefaultCallConfig returns a config where most calls carry full details
func DefaultCallConfig(count int) CallGeneratorConfig {
	return CallGeneratorConfig{
		Count:          count,
		LocationChance: 0.85,
		CallSIDChance:  0.95,
	}
}

// Generator produces fake data from a single seeded faker
type Generator struct {
	faker *gofakeit.Faker
}

// NewGenerator creates a generator. Seed 0 picks a random seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{faker: gofakeit.New(seed)}
}

// PhoneNumber returns a US number in E.164 format
func (g *Generator) PhoneNumber() string {
	return "+1" + g.faker.RandomString(areaCodes) +
		fmt.Sprint(g.faker.Number(2, 9)) + g.faker.Numerify("######")
}

// CampaignName returns a plausible lead source name
func (g *Generator) CampaignName() string {
	return fmt.Sprintf("%s %s", g.faker.City(), g.faker.RandomString(campaignKinds))
}

// CallSID returns a provider-style call identifier
func (g *Generator) CallSID() string {
	return "CA" + strings.ReplaceAll(g.faker.UUID(), "-", "")
}

// GenerateCall builds one inbound call to calledNumber
func (g *Generator) GenerateCall(config CallGeneratorConfig, calledNumber string) calltracking.InboundCall {
	call := calltracking.InboundCall{
		Called: calledNumber,
		Caller: g.PhoneNumber(),
	}
	if g.faker.Float64() < config.LocationChance {
		call.CallerCity = strings.ToUpper(g.faker.City())
		call.CallerState = g.faker.StateAbr()
	}
	if g.faker.Float64() < config.CallSIDChance {
		call.CallSID = g.CallSID()
	}
	return call
}

// GenerateCalls builds config.Count calls spread across calledNumbers
func (g *Generator) GenerateCalls(config CallGeneratorConfig, calledNumbers []string) []calltracking.InboundCall {
	if len(calledNumbers) == 0 {
		return nil
	}

	calls := make([]calltracking.InboundCall, config.Count)
	for i := range calls {
		calls[i] = g.GenerateCall(config, g.faker.RandomString(calledNumbers))
	}
	return calls
}

// SeedLeadSources creates count lead sources with distinct incoming numbers.
// Every other source is left unnamed, the way freshly purchased numbers are.
func (g *Generator) SeedLeadSources(ctx context.Context, client *ent.Client, count int) ([]*ent.LeadSource, error) {
	builders := make([]*ent.LeadSourceCreate, 0, count)
	seen := make(map[string]bool, count)

	for len(builders) < count {
		number := g.PhoneNumber()
		if seen[number] {
			continue
		}
		seen[number] = true

		b := client.LeadSource.Create().SetIncomingNumber(number)
		if len(builders)%2 == 0 {
			b.SetName(g.CampaignName()).SetForwardingNumber(g.PhoneNumber())
		}
		builders = append(builders, b)
	}

	sources, err := client.LeadSource.CreateBulk(builders...).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to seed lead sources: %w", err)
	}
	return sources, nil
}

// ReplayCalls records every call through the call tracking service and
// returns how many leads were created
func ReplayCalls(ctx context.Context, svc *calltracking.Service, calls []calltracking.InboundCall) (int, error) {
	recorded := 0
	for _, call := range calls {
		if _, err := svc.RecordCall(ctx, call); err != nil {
			return recorded, fmt.Errorf("failed to record call %d: %w", recorded+1, err)
		}
		recorded++
	}
	return recorded, nil
}
