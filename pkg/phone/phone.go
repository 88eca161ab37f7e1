package phone

import (
	"errors"
	"fmt"

	"github.com/nyaruka/phonenumbers"
)

// DefaultRegion is used when callers pass an empty region.
const DefaultRegion = "US"

var (
	// ErrEmptyNumber is returned when no phone number was supplied
	ErrEmptyNumber = errors.New("phone number cannot be empty")
	// ErrInvalidNumber is returned when the number does not parse or is not dialable
	ErrInvalidNumber = errors.New("invalid phone number")
)

// Format represents the display formats we render numbers in.
type Format int

const (
	// FormatE164 is the E.164 format (+14158675309).
	FormatE164 Format = iota
	// FormatInternational is the international format (+1 415-867-5309).
	FormatInternational
	// FormatNational is the national format ((415) 867-5309).
	FormatNational
)

func parse(raw, region string) (*phonenumbers.PhoneNumber, error) {
	if raw == "" {
		return nil, ErrEmptyNumber
	}
	if region == "" {
		region = DefaultRegion
	}

	parsed, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidNumber, err)
	}
	if !phonenumbers.IsValidNumber(parsed) {
		return nil, ErrInvalidNumber
	}
	return parsed, nil
}

// Normalize validates raw and returns it in E.164 format.
// Numbers without a country prefix are read in the given region.
func Normalize(raw, region string) (string, error) {
	parsed, err := parse(raw, region)
	if err != nil {
		return "", err
	}
	return phonenumbers.Format(parsed, phonenumbers.E164), nil
}

// IsValid reports whether raw is a dialable number in region.
func IsValid(raw, region string) bool {
	_, err := parse(raw, region)
	return err == nil
}

// Display formats raw for humans. Values that do not parse (provider
// sentinels such as "anonymous") are returned unchanged.
func Display(raw, region string, format Format) string {
	parsed, err := parse(raw, region)
	if err != nil {
		return raw
	}

	switch format {
	case FormatInternational:
		return phonenumbers.Format(parsed, phonenumbers.INTERNATIONAL)
	case FormatNational:
		return phonenumbers.Format(parsed, phonenumbers.NATIONAL)
	default:
		return phonenumbers.Format(parsed, phonenumbers.E164)
	}
}

// IsAreaCode reports whether code is exactly three ASCII digits.
func IsAreaCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	return true
}
