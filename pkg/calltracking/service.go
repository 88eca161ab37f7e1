package calltracking

import (
	"context"
	"errors"
	"fmt"

	"github.com/jordanlanch/calltracker/ent"
	"github.com/jordanlanch/calltracker/ent/leadsource"
	"github.com/jordanlanch/calltracker/pkg/phone"
)

var (
	// ErrUnknownNumber is returned when the dialed number belongs to no lead source
	ErrUnknownNumber = errors.New("no lead source for dialed number")
	// ErrMissingCalledNumber is returned when the webhook carries no dialed number
	ErrMissingCalledNumber = errors.New("called number is required")
)

// InboundCall holds the webhook fields describing one inbound call
type InboundCall struct {
	Called      string
	Caller      string
	CallerCity  string
	CallerState string
	CallSID     string
}

// Forwarding is the outcome of recording an inbound call
type Forwarding struct {
	Lead   *ent.Lead
	Source *ent.LeadSource
	// DialNumber is the source's forwarding number in E.164 format, empty
	// when the source has no usable forwarding number yet.
	DialNumber string
}

// Service attributes inbound calls to lead sources
type Service struct {
	db     *ent.Client
	region string
}

// NewService creates a new call tracking service
func NewService(db *ent.Client, region string) *Service {
	return &Service{
		db:     db,
		region: region,
	}
}

// FindSource looks up the lead source whose incoming number is exactly called.
func (s *Service) FindSource(ctx context.Context, called string) (*ent.LeadSource, error) {
	if called == "" {
		return nil, ErrMissingCalledNumber
	}

	src, err := s.db.LeadSource.
		Query().
		Where(leadsource.IncomingNumberEQ(called)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrUnknownNumber, called)
		}
		return nil, fmt.Errorf("failed to find lead source: %w", err)
	}
	return src, nil
}

// RecordCall stores one lead for the call and returns where to forward it.
// Repeated calls from the same caller each produce a new lead.
func (s *Service) RecordCall(ctx context.Context, call InboundCall) (*Forwarding, error) {
	src, err := s.FindSource(ctx, call.Called)
	if err != nil {
		return nil, err
	}

	lead, err := s.db.Lead.
		Create().
		SetSource(src).
		SetPhoneNumber(call.Caller).
		SetCity(call.CallerCity).
		SetState(call.CallerState).
		SetCallSid(call.CallSID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	fwd := &Forwarding{
		Lead:   lead,
		Source: src,
	}
	if src.ForwardingNumber != "" {
		if dial, err := phone.Normalize(src.ForwardingNumber, s.region); err == nil {
			fwd.DialNumber = dial
		}
	}

	return fwd, nil
}
