package secrets

import (
	"context"
	"errors"
	"fmt"

	"github.com/jordanlanch/calltracker/config"
)

// ApplyToConfig overrides credential fields in cfg with values found in m.
// Missing secrets keep the value already loaded from the environment.
func ApplyToConfig(ctx context.Context, m Manager, cfg *config.Config) error {
	fields := map[string]*string{
		"DATABASE_URL":            &cfg.DatabaseURL,
		"REDIS_URL":               &cfg.RedisURL,
		"TWILIO_ACCOUNT_SID":      &cfg.TwilioAccountSID,
		"TWILIO_AUTH_TOKEN":       &cfg.TwilioAuthToken,
		"DASHBOARD_PASSWORD_HASH": &cfg.DashboardPasswordHash,
		"SENTRY_DSN":              &cfg.SentryDSN,
		"SENDGRID_API_KEY":        &cfg.SendGridAPIKey,
		"SLACK_WEBHOOK_URL":       &cfg.SlackWebhookURL,
	}

	for key, dest := range fields {
		value, err := m.GetSecret(ctx, key)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", key, err)
		}
		*dest = value
	}
	return nil
}
