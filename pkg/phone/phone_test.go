package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		phone     string
		region    string
		wantE164  string
		wantError error
	}{
		{
			name:     "E.164 input is kept",
			phone:    "+12024561111",
			region:   "US",
			wantE164: "+12024561111",
		},
		{
			name:     "Formatted US number",
			phone:    "(202) 456-1111",
			region:   "US",
			wantE164: "+12024561111",
		},
		{
			name:     "Empty region defaults to US",
			phone:    "415 867 5309",
			region:   "",
			wantE164: "+14158675309",
		},
		{
			name:     "UK mobile with prefix",
			phone:    "+44 7911 123456",
			region:   "US",
			wantE164: "+447911123456",
		},
		{
			name:      "Empty input",
			phone:     "",
			region:    "US",
			wantError: ErrEmptyNumber,
		},
		{
			name:      "Too short",
			phone:     "202123",
			region:    "US",
			wantError: ErrInvalidNumber,
		},
		{
			name:      "Not a number",
			phone:     "anonymous",
			region:    "US",
			wantError: ErrInvalidNumber,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.phone, tt.region)
			if tt.wantError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantE164, got)
		})
	}
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("+13128675309", "US"))
	assert.False(t, IsValid("12", "US"))
	assert.False(t, IsValid("", "US"))
}

func TestDisplay(t *testing.T) {
	assert.Equal(t, "(415) 867-5309", Display("+14158675309", "US", FormatNational))
	assert.Equal(t, "+1 415-867-5309", Display("+14158675309", "US", FormatInternational))
	assert.Equal(t, "+14158675309", Display("415-867-5309", "US", FormatE164))
	assert.Equal(t, "anonymous", Display("anonymous", "US", FormatNational))
}

func TestIsAreaCode(t *testing.T) {
	valid := []string{"415", "212", "000"}
	for _, code := range valid {
		assert.True(t, IsAreaCode(code), code)
	}

	invalid := []string{"", "41", "4155", "41a", "-41", " 415", "４１５"}
	for _, code := range invalid {
		assert.False(t, IsAreaCode(code), code)
	}
}
