package slack

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jordanlanch/calltracker/pkg/notify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockSlackClient simulates Slack webhook API
type MockSlackClient struct {
	shouldFail bool
	messages   []Message
}

func (m *MockSlackClient) SendMessage(ctx context.Context, msg Message) error {
	if m.shouldFail {
		return ErrSlackSendFailed
	}
	m.messages = append(m.messages, msg)
	return nil
}

func TestService_Notify(t *testing.T) {
	t.Run("Alert with link", func(t *testing.T) {
		client := &MockSlackClient{}
		err := NewService(client).Notify(context.Background(), notify.Alert{
			Subject: "Voice application misconfigured",
			Text:    "Calls are not reaching https://calls.acme.test/forward-call",
			URL:     "https://www.twilio.com/user/account/apps/AP1",
		})

		require.NoError(t, err)
		require.Len(t, client.messages, 1)
		assert.Contains(t, client.messages[0].Text, ":warning: *Voice application misconfigured*")
		assert.Contains(t, client.messages[0].Text, "<https://www.twilio.com/user/account/apps/AP1|Open settings>")
	})

	t.Run("Resolved alert", func(t *testing.T) {
		client := &MockSlackClient{}
		require.NoError(t, NewService(client).Notify(context.Background(), notify.Alert{Subject: "ok", Resolved: true}))
		assert.Contains(t, client.messages[0].Text, ":white_check_mark:")
		assert.NotContains(t, client.messages[0].Text, "Open settings")
	})

	t.Run("Disabled service is a no-op", func(t *testing.T) {
		svc := NewService(nil)
		assert.False(t, svc.IsEnabled())
		assert.NoError(t, svc.Notify(context.Background(), notify.Alert{Subject: "x"}))
	})

	t.Run("Client failure surfaces", func(t *testing.T) {
		err := NewService(&MockSlackClient{shouldFail: true}).Notify(context.Background(), notify.Alert{})
		assert.ErrorIs(t, err, ErrSlackSendFailed)
	})
}

func TestWebhookClient(t *testing.T) {
	var got Message
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		if got.Text == "fail" {
			w.WriteHeader(http.StatusBadRequest)
		}
	}))
	defer srv.Close()

	client := NewWebhookClient(srv.URL)

	require.NoError(t, client.SendMessage(context.Background(), Message{Text: "hello"}))
	assert.Equal(t, "hello", got.Text)

	err := client.SendMessage(context.Background(), Message{Text: "fail"})
	assert.True(t, errors.Is(err, ErrSlackSendFailed))

	assert.Error(t, NewWebhookClient("").SendMessage(context.Background(), Message{Text: "x"}))
}
