package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/jordanlanch/calltracker/ent"
	"github.com/jordanlanch/calltracker/ent/enttest"
	"github.com/jordanlanch/calltracker/pkg/flash"
	"github.com/jordanlanch/calltracker/pkg/logger"
	"github.com/jordanlanch/calltracker/pkg/metrics"
	"github.com/jordanlanch/calltracker/pkg/provisioning"
	"github.com/jordanlanch/calltracker/web"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"
)

// fakeProvider is a scripted NumberProvider
type fakeProvider struct {
	numbers     []provisioning.AvailableNumber
	searchErr   error
	purchaseErr error
	voiceURL    string
	purchased   []string
}

func (p *fakeProvider) SearchLocalNumbers(ctx context.Context, areaCode string) ([]provisioning.AvailableNumber, error) {
	return p.numbers, p.searchErr
}

func (p *fakeProvider) PurchaseNumber(ctx context.Context, phoneNumber, appSID string) (*provisioning.PurchasedNumber, error) {
	if p.purchaseErr != nil {
		return nil, p.purchaseErr
	}
	p.purchased = append(p.purchased, phoneNumber)
	return &provisioning.PurchasedNumber{SID: "PN1", PhoneNumber: phoneNumber, FriendlyName: "(415) 867-5309"}, nil
}

func (p *fakeProvider) GetVoiceApplication(ctx context.Context, sid string) (*provisioning.VoiceApplication, error) {
	voiceURL := p.voiceURL
	if voiceURL == "" {
		voiceURL = "https://calls.acme.test/forward-call"
	}
	return &provisioning.VoiceApplication{SID: sid, VoiceURL: voiceURL}, nil
}

// testEnv bundles an echo instance with the collaborators handlers share
type testEnv struct {
	e       *echo.Echo
	db      *ent.Client
	store   *flash.MemoryStore
	flashes *flash.Manager
	metrics *metrics.Metrics
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", url.PathEscape(t.Name()))
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })

	renderer, err := web.NewRenderer("US")
	require.NoError(t, err)

	e := echo.New()
	e.Renderer = renderer
	e.Validator = NewValidator()

	store := flash.NewMemoryStore()
	return &testEnv{
		e:       e,
		db:      client,
		store:   store,
		flashes: flash.NewManager(store, false, logger.Discard()),
		metrics: metrics.New(prometheus.NewRegistry()),
	}
}

func postForm(e *echo.Echo, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func get(e *echo.Echo, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

// flashesFor pops the messages queued for the session cookie set on rec
func (env *testEnv) flashesFor(t *testing.T, rec *httptest.ResponseRecorder) []flash.Message {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == flash.CookieName {
			msgs, err := env.store.Pop(context.Background(), c.Value)
			require.NoError(t, err)
			return msgs
		}
	}
	t.Fatalf("no %s cookie in response", flash.CookieName)
	return nil
}

func createSource(t *testing.T, client *ent.Client, incoming, name, forwarding string) *ent.LeadSource {
	t.Helper()
	src, err := client.LeadSource.Create().
		SetIncomingNumber(incoming).
		SetName(name).
		SetForwardingNumber(forwarding).
		Save(context.Background())
	require.NoError(t, err)
	return src
}
