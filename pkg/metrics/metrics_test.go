package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_RecordsRoutePattern(t *testing.T) {
	m := New(prometheus.NewRegistry())

	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/lead-sources/:id/edit", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/lead-sources/42/edit", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/lead-sources/:id/edit", "200")))
}

func TestMiddleware_UsesHTTPErrorCode(t *testing.T) {
	m := New(prometheus.NewRegistry())

	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/boom", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusServiceUnavailable, errors.New("down"))
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/boom", "503")))
}

func TestBusinessCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.RecordCallForwarded("dialed")
	m.RecordCallForwarded("dialed")
	m.RecordCallForwarded("unknown_number")
	m.RecordLeadRecorded()
	m.RecordNumberSearch("empty")
	m.RecordNumberPurchase("success")
	m.ObserveProvider("search", 120*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CallsForwarded.WithLabelValues("dialed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CallsForwarded.WithLabelValues("unknown_number")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LeadsRecorded))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NumberSearches.WithLabelValues("empty")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NumbersPurchased.WithLabelValues("success")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.ProviderRequestDuration))
}
