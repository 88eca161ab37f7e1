package email

import (
	"context"
	"errors"
	"testing"

	"github.com/jordanlanch/calltracker/pkg/logger"
	"github.com/jordanlanch/calltracker/pkg/notify"
	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	sent   []*mail.SGMailV3
	status int
	err    error
}

func (f *fakeSender) SendWithContext(ctx context.Context, m *mail.SGMailV3) (*rest.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.sent = append(f.sent, m)
	return &rest.Response{StatusCode: f.status}, nil
}

var testConfig = Config{
	FromEmail: "alerts@acme.test",
	FromName:  "Call Tracker",
	To:        []string{"ops@acme.test", "marketing@acme.test"},
}

func TestService_Notify(t *testing.T) {
	alert := notify.Alert{
		Subject: "Voice application misconfigured",
		Text:    "Calls are not reaching <this deployment>",
		URL:     "https://www.twilio.com/user/account/apps/AP1",
	}

	t.Run("Sends to every recipient", func(t *testing.T) {
		sender := &fakeSender{status: 202}
		svc := NewServiceWithSender(testConfig, sender, logger.Discard())

		require.NoError(t, svc.Notify(context.Background(), alert))
		require.Len(t, sender.sent, 1)

		m := sender.sent[0]
		assert.Equal(t, "[Call Tracker] Voice application misconfigured", m.Subject)
		assert.Equal(t, "alerts@acme.test", m.From.Address)
		require.Len(t, m.Personalizations, 1)
		assert.Len(t, m.Personalizations[0].To, 2)

		require.Len(t, m.Content, 2)
		assert.Contains(t, m.Content[0].Value, alert.URL)
		assert.Contains(t, m.Content[1].Value, "&lt;this deployment&gt;")
	})

	t.Run("Resolved subject", func(t *testing.T) {
		sender := &fakeSender{status: 202}
		svc := NewServiceWithSender(testConfig, sender, logger.Discard())

		require.NoError(t, svc.Notify(context.Background(), notify.Alert{Subject: "Voice application misconfigured", Resolved: true}))
		assert.Equal(t, "[Call Tracker] Resolved: Voice application misconfigured", sender.sent[0].Subject)
	})

	t.Run("Error status", func(t *testing.T) {
		svc := NewServiceWithSender(testConfig, &fakeSender{status: 401}, logger.Discard())
		assert.ErrorContains(t, svc.Notify(context.Background(), alert), "401")
	})

	t.Run("Transport error", func(t *testing.T) {
		svc := NewServiceWithSender(testConfig, &fakeSender{err: errors.New("dial tcp")}, logger.Discard())
		assert.Error(t, svc.Notify(context.Background(), alert))
	})

	t.Run("Console mode", func(t *testing.T) {
		svc := NewService(testConfig, logger.Discard())
		assert.NoError(t, svc.Notify(context.Background(), alert))
	})

	t.Run("No recipients", func(t *testing.T) {
		sender := &fakeSender{status: 202}
		svc := NewServiceWithSender(Config{FromEmail: "alerts@acme.test"}, sender, logger.Discard())
		assert.NoError(t, svc.Notify(context.Background(), alert))
		assert.Empty(t, sender.sent)
	})
}
