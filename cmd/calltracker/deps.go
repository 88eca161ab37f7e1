package main

import (
	"context"
	"strings"

	"github.com/jordanlanch/calltracker/config"
	"github.com/jordanlanch/calltracker/pkg/database"
	"github.com/jordanlanch/calltracker/pkg/email"
	"github.com/jordanlanch/calltracker/pkg/metrics"
	"github.com/jordanlanch/calltracker/pkg/notify"
	"github.com/jordanlanch/calltracker/pkg/provisioning"
	"github.com/jordanlanch/calltracker/pkg/server"
	"github.com/jordanlanch/calltracker/pkg/slack"
	"github.com/jordanlanch/calltracker/pkg/twilio"
)

func openDatabase(ctx context.Context, cfg *config.Config) (*database.Client, error) {
	sslCfg := &database.SSLConfig{
		Mode:         cfg.DBSSLMode,
		CertPath:     cfg.DBSSLCertPath,
		KeyPath:      cfg.DBSSLKeyPath,
		RootCertPath: cfg.DBSSLRootCertPath,
	}
	return database.NewClient(ctx, cfg.DatabaseURL, database.DefaultPoolConfig(), sslCfg, log)
}

// newProvider builds the Twilio-backed number provider. m may be nil.
func newProvider(cfg *config.Config, m *metrics.Metrics) *provisioning.TwilioProvider {
	client := twilio.NewClient(cfg.TwilioAccountSID, cfg.TwilioAuthToken,
		twilio.WithBaseURL(cfg.TwilioAPIBaseURL),
		twilio.WithTimeout(cfg.TwilioHTTPTimeout),
	)
	return provisioning.NewTwilioProvider(client, cfg.TwilioCountry, m)
}

func webhookURL(cfg *config.Config) string {
	return strings.TrimRight(cfg.PublicBaseURL, "/") + server.WebhookPath
}

// newNotifier builds the alert channels that are configured
func newNotifier(cfg *config.Config) notify.Notifier {
	var channels notify.Multi
	if len(cfg.AlertEmailTo) > 0 {
		channels = append(channels, email.NewService(email.Config{
			APIKey:    cfg.SendGridAPIKey,
			FromEmail: cfg.AlertEmailFrom,
			FromName:  cfg.AlertEmailFromName,
			To:        cfg.AlertEmailTo,
		}, log))
	}
	if cfg.SlackWebhookURL != "" {
		channels = append(channels, slack.NewService(slack.NewWebhookClient(cfg.SlackWebhookURL)))
	}
	log.Info("alert channels configured", "email", len(cfg.AlertEmailTo) > 0, "slack", cfg.SlackWebhookURL != "")
	return channels
}
