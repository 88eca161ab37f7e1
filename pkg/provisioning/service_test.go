package provisioning

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/jordanlanch/calltracker/ent"
	"github.com/jordanlanch/calltracker/ent/enttest"
	"github.com/jordanlanch/calltracker/pkg/logger"
	"github.com/jordanlanch/calltracker/pkg/metrics"
	"github.com/jordanlanch/calltracker/pkg/twilio"
	_ "github.com/mattn/go-sqlite3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockNumberProvider is a mock implementation of NumberProvider for testing
type MockNumberProvider struct {
	SearchFunc      func(ctx context.Context, areaCode string) ([]AvailableNumber, error)
	PurchaseFunc    func(ctx context.Context, phoneNumber, appSID string) (*PurchasedNumber, error)
	ApplicationFunc func(ctx context.Context, sid string) (*VoiceApplication, error)

	SearchCalls   int
	PurchaseCalls int
}

func (m *MockNumberProvider) SearchLocalNumbers(ctx context.Context, areaCode string) ([]AvailableNumber, error) {
	m.SearchCalls++
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, areaCode)
	}
	return []AvailableNumber{
		{PhoneNumber: "+1" + areaCode + "8675309", FriendlyName: "(" + areaCode + ") 867-5309"},
	}, nil
}

func (m *MockNumberProvider) PurchaseNumber(ctx context.Context, phoneNumber, appSID string) (*PurchasedNumber, error) {
	m.PurchaseCalls++
	if m.PurchaseFunc != nil {
		return m.PurchaseFunc(ctx, phoneNumber, appSID)
	}
	return &PurchasedNumber{
		SID:          "PN123",
		PhoneNumber:  phoneNumber,
		FriendlyName: "(415) 867-5309",
	}, nil
}

func (m *MockNumberProvider) GetVoiceApplication(ctx context.Context, sid string) (*VoiceApplication, error) {
	if m.ApplicationFunc != nil {
		return m.ApplicationFunc(ctx, sid)
	}
	return &VoiceApplication{SID: sid, VoiceURL: "https://calls.acme.test/forward-call"}, nil
}

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", url.PathEscape(t.Name()))
	client := enttest.Open(t, "sqlite3", dsn)
	return client, func() { client.Close() }
}

func TestSearchAvailableNumbers(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	t.Run("Success - returns provider numbers", func(t *testing.T) {
		provider := &MockNumberProvider{}
		service := NewService(client, provider, "AP123", "US", logger.Discard())

		numbers, err := service.SearchAvailableNumbers(ctx, "415")

		require.NoError(t, err)
		require.Len(t, numbers, 1)
		assert.Equal(t, "+14158675309", numbers[0].PhoneNumber)
	})

	t.Run("Success - no numbers is an empty slice", func(t *testing.T) {
		provider := &MockNumberProvider{
			SearchFunc: func(ctx context.Context, areaCode string) ([]AvailableNumber, error) {
				return nil, nil
			},
		}
		service := NewService(client, provider, "AP123", "US", logger.Discard())

		numbers, err := service.SearchAvailableNumbers(ctx, "999")

		require.NoError(t, err)
		assert.NotNil(t, numbers)
		assert.Empty(t, numbers)
	})

	t.Run("Failure - invalid area codes never reach the provider", func(t *testing.T) {
		provider := &MockNumberProvider{}
		service := NewService(client, provider, "AP123", "US", logger.Discard())

		for _, code := range []string{"", "41", "4155", "abc", "4 5"} {
			_, err := service.SearchAvailableNumbers(ctx, code)
			assert.ErrorIs(t, err, ErrInvalidAreaCode, code)
		}
		assert.Equal(t, 0, provider.SearchCalls)
	})

	t.Run("Failure - provider error is wrapped", func(t *testing.T) {
		provider := &MockNumberProvider{
			SearchFunc: func(ctx context.Context, areaCode string) ([]AvailableNumber, error) {
				return nil, errors.New("connection reset")
			},
		}
		service := NewService(client, provider, "AP123", "US", logger.Discard())

		_, err := service.SearchAvailableNumbers(ctx, "415")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection reset")
	})
}

func TestPurchaseNumber(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - creates exactly one unnamed lead source", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()

		var boundApp string
		provider := &MockNumberProvider{
			PurchaseFunc: func(ctx context.Context, phoneNumber, appSID string) (*PurchasedNumber, error) {
				boundApp = appSID
				return &PurchasedNumber{SID: "PN1", PhoneNumber: phoneNumber, FriendlyName: "(415) 867-5309"}, nil
			},
		}
		service := NewService(client, provider, "AP123", "US", logger.Discard())

		result, err := service.PurchaseNumber(ctx, "(415) 867-5309")

		require.NoError(t, err)
		assert.Equal(t, "AP123", boundApp)
		assert.Equal(t, "+14158675309", result.LeadSource.IncomingNumber)
		assert.Equal(t, "", result.LeadSource.Name)
		assert.Equal(t, "(415) 867-5309", result.FriendlyName)
		assert.False(t, result.MisconfiguredVoiceURL)

		count, err := client.LeadSource.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("Success - placeholder voice URL is flagged", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()

		provider := &MockNumberProvider{
			ApplicationFunc: func(ctx context.Context, sid string) (*VoiceApplication, error) {
				return &VoiceApplication{SID: sid, VoiceURL: "http://www.example.com/forward-call"}, nil
			},
		}
		service := NewService(client, provider, "AP123", "US", logger.Discard())

		result, err := service.PurchaseNumber(ctx, "+14158675309")

		require.NoError(t, err)
		assert.True(t, result.MisconfiguredVoiceURL)
		assert.Equal(t, "AP123", result.Application.SID)
	})

	t.Run("Failure - invalid number is not purchased", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()

		provider := &MockNumberProvider{}
		service := NewService(client, provider, "AP123", "US", logger.Discard())

		_, err := service.PurchaseNumber(ctx, "not-a-number")

		assert.ErrorIs(t, err, ErrInvalidPhoneNumber)
		assert.Equal(t, 0, provider.PurchaseCalls)
	})

	t.Run("Failure - provider rejection creates no lead source", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()

		provider := &MockNumberProvider{
			PurchaseFunc: func(ctx context.Context, phoneNumber, appSID string) (*PurchasedNumber, error) {
				return nil, errors.New("number no longer available")
			},
		}
		service := NewService(client, provider, "AP123", "US", logger.Discard())

		_, err := service.PurchaseNumber(ctx, "+14158675309")

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrPurchaseFailed)
		assert.Contains(t, err.Error(), "no longer available")

		count, err := client.LeadSource.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("Failure - missing voice application", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()

		provider := &MockNumberProvider{}
		service := NewService(client, provider, "", "US", logger.Discard())

		_, err := service.PurchaseNumber(ctx, "+14158675309")

		assert.ErrorIs(t, err, ErrApplicationNotConfigured)
		assert.Equal(t, 0, provider.PurchaseCalls)
	})

	t.Run("Failure - number already registered", func(t *testing.T) {
		client, cleanup := setupTestDB(t)
		defer cleanup()

		_, err := client.LeadSource.Create().SetIncomingNumber("+14158675309").Save(ctx)
		require.NoError(t, err)

		service := NewService(client, &MockNumberProvider{}, "AP123", "US", logger.Discard())

		_, err = service.PurchaseNumber(ctx, "+14158675309")
		require.Error(t, err)
		assert.True(t, ent.IsConstraintError(err))
	})
}

func TestIsPlaceholderVoiceURL(t *testing.T) {
	assert.True(t, IsPlaceholderVoiceURL("http://example.com/forward-call"))
	assert.True(t, IsPlaceholderVoiceURL("https://WWW.EXAMPLE.COM/call"))
	assert.False(t, IsPlaceholderVoiceURL("https://calls.acme.test/forward-call"))
	assert.False(t, IsPlaceholderVoiceURL(""))
}

func TestTwilioProvider(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/Accounts/AC1/AvailablePhoneNumbers/US/Local.json", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"available_phone_numbers":[{"phone_number":"+14158675309","friendly_name":"(415) 867-5309","locality":"San Francisco","region":"CA"}]}`))
	})
	mux.HandleFunc("/Accounts/AC1/IncomingPhoneNumbers.json", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"sid":"PN1","phone_number":"+14158675309","friendly_name":"(415) 867-5309"}`))
	})
	mux.HandleFunc("/Accounts/AC1/Applications/AP1.json", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"sid":"AP1","voice_url":"https://calls.acme.test/forward-call"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	m := metrics.New(prometheus.NewRegistry())
	provider := NewTwilioProvider(twilio.NewClient("AC1", "token", twilio.WithBaseURL(srv.URL)), "US", m)
	ctx := context.Background()

	numbers, err := provider.SearchLocalNumbers(ctx, "415")
	require.NoError(t, err)
	require.Len(t, numbers, 1)
	assert.Equal(t, "San Francisco", numbers[0].Locality)

	purchased, err := provider.PurchaseNumber(ctx, "+14158675309", "AP1")
	require.NoError(t, err)
	assert.Equal(t, "PN1", purchased.SID)

	app, err := provider.GetVoiceApplication(ctx, "AP1")
	require.NoError(t, err)
	assert.Equal(t, "https://calls.acme.test/forward-call", app.VoiceURL)
}
