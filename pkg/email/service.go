// Package email sends operational alerts through SendGrid.
package email

import (
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/jordanlanch/calltracker/pkg/logger"
	"github.com/jordanlanch/calltracker/pkg/notify"
	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Sender is the part of the SendGrid client the service uses
type Sender interface {
	SendWithContext(ctx context.Context, email *mail.SGMailV3) (*rest.Response, error)
}

// Config configures the alert mailer
type Config struct {
	APIKey    string
	FromEmail string
	FromName  string
	To        []string
}

var alertTemplate = template.Must(template.New("alert").Parse(`<html>
<body>
	<h2>{{.Subject}}</h2>
	<p>{{.Text}}</p>
	{{if .URL}}<p><a href="{{.URL}}">{{.URL}}</a></p>{{end}}
	<p>Call Tracker</p>
</body>
</html>`))

// Service handles email sending
type Service struct {
	cfg    Config
	sender Sender
	log    logger.Logger
}

// NewService creates a new email service.
// Without an API key emails are only logged (development mode).
func NewService(cfg Config, log logger.Logger) *Service {
	var sender Sender
	if cfg.APIKey != "" {
		sender = sendgrid.NewSendClient(cfg.APIKey)
	}
	return NewServiceWithSender(cfg, sender, log)
}

// NewServiceWithSender creates a service using sender; nil means console mode
func NewServiceWithSender(cfg Config, sender Sender, log logger.Logger) *Service {
	return &Service{
		cfg:    cfg,
		sender: sender,
		log:    log.With("component", "email"),
	}
}

// Notify implements notify.Notifier
func (s *Service) Notify(ctx context.Context, alert notify.Alert) error {
	if len(s.cfg.To) == 0 {
		return nil
	}

	subject := "[Call Tracker] " + alert.Subject
	if alert.Resolved {
		subject = "[Call Tracker] Resolved: " + alert.Subject
	}

	plain := alert.Text
	if alert.URL != "" {
		plain += "\n\n" + alert.URL
	}

	var html strings.Builder
	if err := alertTemplate.Execute(&html, alert); err != nil {
		return fmt.Errorf("failed to render email: %w", err)
	}

	return s.send(ctx, subject, plain, html.String())
}

func (s *Service) send(ctx context.Context, subject, plain, html string) error {
	if s.sender == nil {
		s.log.Info("email not sent (no SENDGRID_API_KEY)", "subject", subject, "to", s.cfg.To)
		return nil
	}

	p := mail.NewPersonalization()
	for _, addr := range s.cfg.To {
		p.AddTos(mail.NewEmail("", addr))
	}

	message := mail.NewV3Mail().
		SetFrom(mail.NewEmail(s.cfg.FromName, s.cfg.FromEmail)).
		AddPersonalizations(p).
		AddContent(mail.NewContent("text/plain", plain), mail.NewContent("text/html", html))
	message.Subject = subject

	response, err := s.sender.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		s.log.Error("sendgrid rejected email", "status", response.StatusCode, "body", response.Body)
		return fmt.Errorf("sendgrid returned error status: %d", response.StatusCode)
	}

	s.log.Info("email sent", "subject", subject, "status", response.StatusCode)
	return nil
}
