package jobs

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/jordanlanch/calltracker/pkg/logger"
	"github.com/jordanlanch/calltracker/pkg/notify"
	"github.com/jordanlanch/calltracker/pkg/provisioning"
	"github.com/jordanlanch/calltracker/pkg/twilio"
)

const alertSubject = "Voice application misconfigured"

// ApplicationSource fetches the voice application purchased numbers are bound to
type ApplicationSource interface {
	GetVoiceApplicationConfig(ctx context.Context) (*provisioning.VoiceApplication, error)
}

// AppCheckResult is the outcome of one voice application check
type AppCheckResult struct {
	Application *provisioning.VoiceApplication
	WebhookURL  string
	Placeholder bool
	// Matches is true when the voice URL is exactly this deployment's webhook
	Matches bool
}

// Healthy reports whether inbound calls will reach this deployment
func (r *AppCheckResult) Healthy() bool {
	return !r.Placeholder && r.Matches
}

// AppCheck verifies the provider still sends inbound calls to the webhook
type AppCheck struct {
	apps       ApplicationSource
	webhookURL string
	notifier   notify.Notifier
	log        logger.Logger

	mu          sync.Mutex
	lastHealthy *bool
}

// NewAppCheck creates a check expecting voice URL webhookURL
func NewAppCheck(apps ApplicationSource, webhookURL string, log logger.Logger) *AppCheck {
	return &AppCheck{
		apps:       apps,
		webhookURL: webhookURL,
		log:        log.With("job", "app_check"),
	}
}

// WithNotifier sends an alert whenever the check result flips
func (a *AppCheck) WithNotifier(n notify.Notifier) *AppCheck {
	a.notifier = n
	return a
}

// Run fetches the application and logs a warning when it is misconfigured
func (a *AppCheck) Run(ctx context.Context) (*AppCheckResult, error) {
	app, err := a.apps.GetVoiceApplicationConfig(ctx)
	if err != nil {
		a.log.Error("voice application check failed", "error", err)
		return nil, fmt.Errorf("app check: %w", err)
	}

	res := &AppCheckResult{
		Application: app,
		WebhookURL:  a.webhookURL,
		Placeholder: provisioning.IsPlaceholderVoiceURL(app.VoiceURL),
		Matches:     strings.EqualFold(strings.TrimRight(app.VoiceURL, "/"), strings.TrimRight(a.webhookURL, "/")),
	}

	switch {
	case res.Placeholder:
		a.log.Warn("voice application still uses a placeholder voice URL",
			"application_sid", app.SID,
			"voice_url", app.VoiceURL,
			"expected", a.webhookURL,
		)
	case !res.Matches:
		a.log.Warn("voice application points somewhere else",
			"application_sid", app.SID,
			"voice_url", app.VoiceURL,
			"expected", a.webhookURL,
		)
	default:
		a.log.Debug("voice application ok", "application_sid", app.SID)
	}

	a.alertOnChange(ctx, res)
	return res, nil
}

// alertOnChange notifies on the first unhealthy result and on every flip after
func (a *AppCheck) alertOnChange(ctx context.Context, res *AppCheckResult) {
	if a.notifier == nil {
		return
	}

	healthy := res.Healthy()

	a.mu.Lock()
	changed := (a.lastHealthy == nil && !healthy) || (a.lastHealthy != nil && *a.lastHealthy != healthy)
	a.lastHealthy = &healthy
	a.mu.Unlock()

	if !changed {
		return
	}

	alert := notify.Alert{
		Subject:  alertSubject,
		Resolved: healthy,
		URL:      twilio.ApplicationConsoleURL(res.Application.SID),
	}
	if healthy {
		alert.Text = fmt.Sprintf("Inbound calls reach %s again.", res.WebhookURL)
	} else {
		alert.Text = fmt.Sprintf("The voice URL is %q but calls must be sent to %s. Calls to tracking numbers are not being forwarded or recorded.",
			res.Application.VoiceURL, res.WebhookURL)
	}

	if err := a.notifier.Notify(ctx, alert); err != nil {
		a.log.Error("failed to send app check alert", "error", err)
	}
}
