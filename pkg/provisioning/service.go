package provisioning

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jordanlanch/calltracker/ent"
	"github.com/jordanlanch/calltracker/pkg/logger"
	"github.com/jordanlanch/calltracker/pkg/phone"
)

var (
	// ErrInvalidAreaCode is returned when the area code is not three digits
	ErrInvalidAreaCode = errors.New("invalid area code")
	// ErrInvalidPhoneNumber is returned when the number to purchase is not a valid phone number
	ErrInvalidPhoneNumber = errors.New("invalid phone number format")
	// ErrApplicationNotConfigured is returned when no voice application SID is set
	ErrApplicationNotConfigured = errors.New("voice application not configured")
	// ErrPurchaseFailed is returned when the provider rejects a purchase
	ErrPurchaseFailed = errors.New("phone number purchase failed")
)

// placeholderHosts are voice URL hosts left over from provider examples.
var placeholderHosts = []string{"example.com"}

// NumberProvider defines the telephony provider operations provisioning needs
type NumberProvider interface {
	SearchLocalNumbers(ctx context.Context, areaCode string) ([]AvailableNumber, error)
	PurchaseNumber(ctx context.Context, phoneNumber, voiceApplicationSID string) (*PurchasedNumber, error)
	GetVoiceApplication(ctx context.Context, sid string) (*VoiceApplication, error)
}

// AvailableNumber is a number that can be bought
type AvailableNumber struct {
	PhoneNumber  string
	FriendlyName string
	Locality     string
	Region       string
}

// PurchasedNumber is a number now owned by the account
type PurchasedNumber struct {
	SID          string
	PhoneNumber  string
	FriendlyName string
}

// VoiceApplication is the shared inbound-call configuration
type VoiceApplication struct {
	SID      string
	VoiceURL string
}

// PurchaseResult holds everything the purchase flow reports back to the user
type PurchaseResult struct {
	LeadSource            *ent.LeadSource
	FriendlyName          string
	Application           *VoiceApplication
	MisconfiguredVoiceURL bool
}

// Service handles number search and purchase
type Service struct {
	db       *ent.Client
	provider NumberProvider
	appSID   string
	region   string
	log      logger.Logger
}

// NewService creates a new provisioning service
func NewService(db *ent.Client, provider NumberProvider, appSID, region string, log logger.Logger) *Service {
	return &Service{
		db:       db,
		provider: provider,
		appSID:   appSID,
		region:   region,
		log:      log.With("component", "provisioning"),
	}
}

// SearchAvailableNumbers lists purchasable numbers in a three-digit area code.
// No matches is an empty slice, not an error.
func (s *Service) SearchAvailableNumbers(ctx context.Context, areaCode string) ([]AvailableNumber, error) {
	if !phone.IsAreaCode(areaCode) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAreaCode, areaCode)
	}

	numbers, err := s.provider.SearchLocalNumbers(ctx, areaCode)
	if err != nil {
		return nil, fmt.Errorf("failed to search numbers: %w", err)
	}
	if numbers == nil {
		numbers = []AvailableNumber{}
	}

	s.log.Debug("searched available numbers", "area_code", areaCode, "count", len(numbers))
	return numbers, nil
}

// GetVoiceApplicationConfig fetches the voice application every purchased
// number is bound to
func (s *Service) GetVoiceApplicationConfig(ctx context.Context) (*VoiceApplication, error) {
	if s.appSID == "" {
		return nil, ErrApplicationNotConfigured
	}

	app, err := s.provider.GetVoiceApplication(ctx, s.appSID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch voice application: %w", err)
	}
	return app, nil
}

// PurchaseNumber buys number, binds it to the voice application and
// registers a new, unnamed lead source for it
func (s *Service) PurchaseNumber(ctx context.Context, number string) (*PurchaseResult, error) {
	normalized, err := phone.Normalize(strings.TrimSpace(number), s.region)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPhoneNumber, number)
	}

	app, err := s.GetVoiceApplicationConfig(ctx)
	if err != nil {
		return nil, err
	}

	purchased, err := s.provider.PurchaseNumber(ctx, normalized, app.SID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPurchaseFailed, err)
	}

	src, err := s.db.LeadSource.
		Create().
		SetIncomingNumber(purchased.PhoneNumber).
		Save(ctx)
	if err != nil {
		// The provider already owns the number; log it so it can be registered by hand.
		s.log.Error("purchased number could not be registered",
			"phone_number", purchased.PhoneNumber,
			"number_sid", purchased.SID,
			"error", err,
		)
		return nil, fmt.Errorf("failed to create lead source: %w", err)
	}

	s.log.Info("phone number purchased",
		"phone_number", purchased.PhoneNumber,
		"lead_source_id", src.ID,
	)

	friendly := purchased.FriendlyName
	if friendly == "" {
		friendly = phone.Display(purchased.PhoneNumber, s.region, phone.FormatNational)
	}

	return &PurchaseResult{
		LeadSource:            src,
		FriendlyName:          friendly,
		Application:           app,
		MisconfiguredVoiceURL: IsPlaceholderVoiceURL(app.VoiceURL),
	}, nil
}

// IsPlaceholderVoiceURL reports whether the voice URL still points at an
// example domain, in which case calls will never reach this application
func IsPlaceholderVoiceURL(voiceURL string) bool {
	lower := strings.ToLower(voiceURL)
	for _, host := range placeholderHosts {
		if strings.Contains(lower, host) {
			return true
		}
	}
	return false
}
