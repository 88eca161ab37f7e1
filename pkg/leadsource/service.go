package leadsource

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jordanlanch/calltracker/ent"
	"github.com/jordanlanch/calltracker/ent/leadsource"
	"github.com/jordanlanch/calltracker/pkg/phone"
)

var (
	// ErrLeadSourceNotFound is returned when the lead source doesn't exist
	ErrLeadSourceNotFound = errors.New("lead source not found")
	// ErrInvalidPhoneNumber is returned when the forwarding number is not a valid phone number
	ErrInvalidPhoneNumber = errors.New("invalid phone number format")
	// ErrNameTooLong is returned when the name exceeds MaxNameLength characters
	ErrNameTooLong = errors.New("lead source name too long")
)

// MaxNameLength is the longest accepted name, in characters
const MaxNameLength = 255

// Service manages the lead source registry
type Service struct {
	db     *ent.Client
	region string
}

// NewService creates a new lead source service.
// region is used to read forwarding numbers typed without a country prefix.
func NewService(db *ent.Client, region string) *Service {
	return &Service{
		db:     db,
		region: region,
	}
}

// Get returns a single lead source
func (s *Service) Get(ctx context.Context, id int) (*ent.LeadSource, error) {
	src, err := s.db.LeadSource.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrLeadSourceNotFound
		}
		return nil, fmt.Errorf("failed to get lead source: %w", err)
	}
	return src, nil
}

// ListAll returns every lead source ordered by creation
func (s *Service) ListAll(ctx context.Context) ([]*ent.LeadSource, error) {
	sources, err := s.db.LeadSource.
		Query().
		Order(ent.Asc(leadsource.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list lead sources: %w", err)
	}
	return sources, nil
}

// Update changes the name and forwarding number of a lead source.
// The incoming number cannot be changed.
func (s *Service) Update(ctx context.Context, id int, name, forwardingNumber string) (*ent.LeadSource, error) {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) > MaxNameLength {
		return nil, ErrNameTooLong
	}

	normalized, err := phone.Normalize(strings.TrimSpace(forwardingNumber), s.region)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPhoneNumber, forwardingNumber)
	}

	src, err := s.db.LeadSource.
		UpdateOneID(id).
		SetName(name).
		SetForwardingNumber(normalized).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrLeadSourceNotFound
		}
		return nil, fmt.Errorf("failed to update lead source: %w", err)
	}

	return src, nil
}

// Label is how a lead source is named in reports: its name, or the tracked
// number while the name is still blank.
func Label(src *ent.LeadSource) string {
	if name := strings.TrimSpace(src.Name); name != "" {
		return name
	}
	return src.IncomingNumber
}
