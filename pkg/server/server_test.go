package server

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"regexp"
	"strings"
	"testing"

	"github.com/jordanlanch/calltracker/config"
	"github.com/jordanlanch/calltracker/ent"
	"github.com/jordanlanch/calltracker/ent/enttest"
	"github.com/jordanlanch/calltracker/pkg/flash"
	"github.com/jordanlanch/calltracker/pkg/logger"
	"github.com/jordanlanch/calltracker/pkg/metrics"
	"github.com/jordanlanch/calltracker/pkg/provisioning"
	"github.com/jordanlanch/calltracker/pkg/twilio"
	_ "github.com/mattn/go-sqlite3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var csrfField = regexp.MustCompile(`name="csrf" value="([^"]+)"`)

type stubProvider struct{}

func (stubProvider) SearchLocalNumbers(ctx context.Context, areaCode string) ([]provisioning.AvailableNumber, error) {
	return []provisioning.AvailableNumber{
		{PhoneNumber: "+1" + areaCode + "8675309", FriendlyName: "(" + areaCode + ") 867-5309"},
	}, nil
}

func (stubProvider) PurchaseNumber(ctx context.Context, phoneNumber, appSID string) (*provisioning.PurchasedNumber, error) {
	return &provisioning.PurchasedNumber{SID: "PN1", PhoneNumber: phoneNumber, FriendlyName: "(415) 867-5309"}, nil
}

func (stubProvider) GetVoiceApplication(ctx context.Context, sid string) (*provisioning.VoiceApplication, error) {
	return &provisioning.VoiceApplication{SID: sid, VoiceURL: "http://www.example.com/forward-call"}, nil
}

type pinger struct{ db *ent.Client }

func (p pinger) Ping(ctx context.Context) error {
	_, err := p.db.LeadSource.Query().Count(ctx)
	return err
}

func testConfig() *config.Config {
	return &config.Config{
		TwilioCountry:              "US",
		TwilioAppSID:               "AP1",
		TwilioAuthToken:            "token",
		PublicBaseURL:              "https://calls.acme.test",
		DefaultAreaCode:            "415",
		RateLimitRequestsPerMinute: 6000,
		RateLimitBurst:             100,
		WebhookRequestsPerMinute:   6000,
		WebhookBurst:               100,
	}
}

func newTestServer(t *testing.T, cfg *config.Config) (*Server, *ent.Client) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", url.PathEscape(t.Name()))
	client := enttest.Open(t, "sqlite3", dsn)
	t.Cleanup(func() { client.Close() })

	reg := prometheus.NewRegistry()
	srv, err := New(Deps{
		Config:     cfg,
		DB:         client,
		DBPinger:   pinger{db: client},
		FlashStore: flash.NewMemoryStore(),
		Provider:   stubProvider{},
		Metrics:    metrics.New(reg),
		Gatherer:   reg,
		Log:        logger.Discard(),
	})
	require.NoError(t, err)
	t.Cleanup(srv.Close)

	return srv, client
}

// browser keeps cookies between requests like a real user agent
type browser struct {
	t       *testing.T
	srv     *Server
	cookies map[string]*http.Cookie
	token   string
}

func newBrowser(t *testing.T, srv *Server) *browser {
	return &browser{t: t, srv: srv, cookies: map[string]*http.Cookie{}}
}

func (b *browser) do(req *http.Request) *httptest.ResponseRecorder {
	for _, c := range b.cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	b.srv.Echo.ServeHTTP(rec, req)

	for _, c := range rec.Result().Cookies() {
		b.cookies[c.Name] = c
	}
	if m := csrfField.FindStringSubmatch(rec.Body.String()); m != nil {
		b.token = m[1]
	}
	return rec
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
	return b.do(httptest.NewRequest(http.MethodGet, path, nil))
}

func (b *browser) post(path string, form url.Values, withToken bool) *httptest.ResponseRecorder {
	if withToken {
		form.Set("csrf", b.token)
	}
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return b.do(req)
}

func TestServer_PurchaseFlow(t *testing.T) {
	srv, client := newTestServer(t, testConfig())
	b := newBrowser(t, srv)
	ctx := context.Background()

	rec := b.get("/")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, b.token)
	assert.Contains(t, rec.Header().Get("Content-Security-Policy"), "default-src 'self'")

	rec = b.post("/numbers/search", url.Values{"area_code": {"415"}}, true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "(415) 867-5309")

	rec = b.post("/numbers/purchase", url.Values{"phone_number": {"+14158675309"}}, true)
	require.Equal(t, http.StatusFound, rec.Code)

	src, err := client.LeadSource.Query().Only(ctx)
	require.NoError(t, err)
	editPath := fmt.Sprintf("/lead-sources/%d/edit", src.ID)
	assert.Equal(t, editPath, rec.Header().Get("Location"))

	// Both the success and the misconfiguration warning show on the next page
	rec = b.get(editPath)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "has been purchased. Please add a name for this lead source.")
	assert.Contains(t, rec.Body.String(), twilio.ApplicationConsoleURL("AP1"))

	rec = b.post(editPath, url.Values{"name": {"Billboard"}, "forwarding_number": {"202-456-1111"}}, true)
	require.Equal(t, http.StatusFound, rec.Code)

	rec = b.get("/")
	assert.Contains(t, rec.Body.String(), "Lead source successfully updated.")
	assert.Contains(t, rec.Body.String(), "Billboard")

	// Flashes are shown once
	rec = b.get("/")
	assert.NotContains(t, rec.Body.String(), "Lead source successfully updated.")
}

func TestServer_CSRF(t *testing.T) {
	srv, client := newTestServer(t, testConfig())
	b := newBrowser(t, srv)

	b.get("/")

	t.Run("Browser form without token is refused", func(t *testing.T) {
		rec := b.post("/numbers/purchase", url.Values{"phone_number": {"+14158675309"}}, false)
		assert.Contains(t, []int{http.StatusBadRequest, http.StatusForbidden}, rec.Code)

		count, err := client.LeadSource.Query().Count(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("Browser form with wrong token is refused", func(t *testing.T) {
		form := url.Values{"phone_number": {"+14158675309"}, "csrf": {"forged"}}
		rec := b.post("/numbers/purchase", form, false)
		assert.Contains(t, []int{http.StatusBadRequest, http.StatusForbidden}, rec.Code)
	})

	t.Run("Cross-site form post is refused", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/numbers/search",
			strings.NewReader(url.Values{"area_code": {"415"}, "csrf": {b.token}}.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("Sec-Fetch-Site", "cross-site")
		rec := b.do(req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Webhook needs no token", func(t *testing.T) {
		_, err := client.LeadSource.Create().
			SetIncomingNumber("+14155550000").
			SetForwardingNumber("+12024561111").
			Save(context.Background())
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, WebhookPath,
			strings.NewReader(url.Values{"Called": {"+14155550000"}, "Caller": {"+16175551234"}}.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rec := httptest.NewRecorder()
		srv.Echo.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "<Dial>+12024561111</Dial>")
		assert.Empty(t, rec.Header().Get("Content-Security-Policy"))
	})
}

func TestServer_WebhookSignature(t *testing.T) {
	cfg := testConfig()
	cfg.TwilioValidateSignature = true
	srv, client := newTestServer(t, cfg)

	_, err := client.LeadSource.Create().
		SetIncomingNumber("+14155550000").
		SetForwardingNumber("+12024561111").
		Save(context.Background())
	require.NoError(t, err)

	form := url.Values{"Called": {"+14155550000"}, "Caller": {"+16175551234"}}
	send := func(signature string) int {
		req := httptest.NewRequest(http.MethodPost, WebhookPath, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set(twilio.SignatureHeader, signature)
		rec := httptest.NewRecorder()
		srv.Echo.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusForbidden, send("bogus"))
	assert.Equal(t, http.StatusOK, send(twilio.Signature("token", "https://calls.acme.test"+WebhookPath, form)))
}

func TestServer_DashboardAuth(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := testConfig()
	cfg.DashboardUser = "admin"
	cfg.DashboardPasswordHash = string(hash)
	srv, _ := newTestServer(t, cfg)

	for _, path := range []string{"/", "/leads-by-source", "/leads/export.xlsx"} {
		rec := httptest.NewRecorder()
		srv.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}

	req := httptest.NewRequest(http.MethodGet, "/leads-by-city", nil)
	req.SetBasicAuth("admin", "s3cret")
	rec := httptest.NewRecorder()
	srv.Echo.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// The provider cannot authenticate, so the webhook stays open
	req = httptest.NewRequest(http.MethodPost, WebhookPath, strings.NewReader("Called=%2B19998887777"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec = httptest.NewRecorder()
	srv.Echo.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_Operations(t *testing.T) {
	srv, _ := newTestServer(t, testConfig())

	rec := httptest.NewRecorder()
	srv.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","database":"ok"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	srv.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_requests_total")

	rec = httptest.NewRecorder()
	srv.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/style.css", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
