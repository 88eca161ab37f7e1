package provisioning

import (
	"context"
	"time"

	"github.com/jordanlanch/calltracker/pkg/metrics"
	"github.com/jordanlanch/calltracker/pkg/twilio"
)

// TwilioProvider adapts the Twilio REST client to NumberProvider
type TwilioProvider struct {
	client  *twilio.Client
	country string
	metrics *metrics.Metrics
}

// NewTwilioProvider creates a provider searching numbers in country.
// m may be nil.
func NewTwilioProvider(client *twilio.Client, country string, m *metrics.Metrics) *TwilioProvider {
	return &TwilioProvider{
		client:  client,
		country: country,
		metrics: m,
	}
}

func (p *TwilioProvider) observe(operation string, start time.Time) {
	if p.metrics != nil {
		p.metrics.ObserveProvider(operation, time.Since(start))
	}
}

// SearchLocalNumbers implements NumberProvider
func (p *TwilioProvider) SearchLocalNumbers(ctx context.Context, areaCode string) ([]AvailableNumber, error) {
	defer p.observe("search", time.Now())

	found, err := p.client.SearchLocalNumbers(ctx, p.country, areaCode)
	if err != nil {
		return nil, err
	}

	numbers := make([]AvailableNumber, 0, len(found))
	for _, n := range found {
		numbers = append(numbers, AvailableNumber{
			PhoneNumber:  n.PhoneNumber,
			FriendlyName: n.FriendlyName,
			Locality:     n.Locality,
			Region:       n.Region,
		})
	}
	return numbers, nil
}

// PurchaseNumber implements NumberProvider
func (p *TwilioProvider) PurchaseNumber(ctx context.Context, phoneNumber, voiceApplicationSID string) (*PurchasedNumber, error) {
	defer p.observe("purchase", time.Now())

	n, err := p.client.PurchaseNumber(ctx, phoneNumber, voiceApplicationSID)
	if err != nil {
		return nil, err
	}
	return &PurchasedNumber{
		SID:          n.SID,
		PhoneNumber:  n.PhoneNumber,
		FriendlyName: n.FriendlyName,
	}, nil
}

// GetVoiceApplication implements NumberProvider
func (p *TwilioProvider) GetVoiceApplication(ctx context.Context, sid string) (*VoiceApplication, error) {
	defer p.observe("application", time.Now())

	app, err := p.client.GetApplication(ctx, sid)
	if err != nil {
		return nil, err
	}
	return &VoiceApplication{
		SID:      app.SID,
		VoiceURL: app.VoiceURL,
	}, nil
}
