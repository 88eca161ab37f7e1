package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TWILIO_COUNTRY", "")
	t.Setenv("DEFAULT_AREA_CODE", "")
	t.Setenv("TWILIO_VALIDATE_SIGNATURE", "")
	t.Setenv("SECRETS_BACKEND", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.APIPort)
	assert.Equal(t, "US", cfg.TwilioCountry)
	assert.Equal(t, "415", cfg.DefaultAreaCode)
	assert.Equal(t, "https://api.twilio.com/2010-04-01", cfg.TwilioAPIBaseURL)
	assert.Equal(t, 15*time.Second, cfg.TwilioHTTPTimeout)
	assert.False(t, cfg.TwilioValidateSignature)
	assert.Equal(t, "env", cfg.SecretsBackend)
	assert.Equal(t, "calltracker/", cfg.SecretsPrefix)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("TWILIO_APP_SID", "AP123")
	t.Setenv("TWILIO_HTTP_TIMEOUT", "3s")
	t.Setenv("TWILIO_VALIDATE_SIGNATURE", "true")
	t.Setenv("WEBHOOK_BURST", "7")

	cfg := Load()

	assert.Equal(t, "AP123", cfg.TwilioAppSID)
	assert.Equal(t, 3*time.Second, cfg.TwilioHTTPTimeout)
	assert.True(t, cfg.TwilioValidateSignature)
	assert.Equal(t, 7, cfg.WebhookBurst)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("WEBHOOK_BURST", "lots")
	t.Setenv("TWILIO_HTTP_TIMEOUT", "soon")
	t.Setenv("TWILIO_VALIDATE_SIGNATURE", "maybe")

	cfg := Load()

	assert.Equal(t, 100, cfg.WebhookBurst)
	assert.Equal(t, 15*time.Second, cfg.TwilioHTTPTimeout)
	assert.False(t, cfg.TwilioValidateSignature)
}

func TestDashboardAuthEnabled(t *testing.T) {
	cfg := &Config{}
	assert.False(t, cfg.DashboardAuthEnabled())

	cfg.DashboardUser = "admin"
	assert.False(t, cfg.DashboardAuthEnabled())

	cfg.DashboardPasswordHash = "$2a$10$hash"
	assert.True(t, cfg.DashboardAuthEnabled())
}

func TestLoad_AlertRecipients(t *testing.T) {
	t.Setenv("ALERT_EMAIL_TO", " ops@acme.test, ,marketing@acme.test ")
	assert.Equal(t, []string{"ops@acme.test", "marketing@acme.test"}, Load().AlertEmailTo)

	t.Setenv("ALERT_EMAIL_TO", "")
	assert.Empty(t, Load().AlertEmailTo)
}
