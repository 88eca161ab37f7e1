package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func serveWithHeaders(cfg SecurityHeadersConfig, path string) *httptest.ResponseRecorder {
	e := echo.New()
	e.Use(SecurityHeaders(cfg))
	e.GET("/", func(c echo.Context) error { return c.String(http.StatusOK, "OK") })
	e.POST("/forward-call", func(c echo.Context) error { return c.String(http.StatusOK, "OK") })
	e.GET("/fail", func(c echo.Context) error { return echo.ErrInternalServerError })

	method := http.MethodGet
	if path == "/forward-call" {
		method = http.MethodPost
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestSecurityHeaders_DefaultHeaders(t *testing.T) {
	rec := serveWithHeaders(SecurityHeadersConfig{}, "/")

	assert.Equal(t, http.StatusOK, rec.Code)

	csp := rec.Header().Get("Content-Security-Policy")
	assert.Contains(t, csp, "default-src 'self'")
	assert.Contains(t, csp, "script-src 'self' https://cdn.jsdelivr.net")
	assert.Contains(t, csp, "frame-ancestors 'none'")
	assert.Contains(t, csp, "form-action 'self'")

	assert.Equal(t, "same-origin", rec.Header().Get("Referrer-Policy"))
	assert.Contains(t, rec.Header().Get("Permissions-Policy"), "microphone=()")
}

func TestSecurityHeaders_Custom(t *testing.T) {
	rec := serveWithHeaders(SecurityHeadersConfig{
		ContentSecurityPolicy: "default-src 'none'",
		ReferrerPolicy:        "no-referrer",
	}, "/")

	assert.Equal(t, "default-src 'none'", rec.Header().Get("Content-Security-Policy"))
	assert.Equal(t, "no-referrer", rec.Header().Get("Referrer-Policy"))
	// Unset fields keep their defaults
	assert.NotEmpty(t, rec.Header().Get("Permissions-Policy"))
}

func TestSecurityHeaders_SkipPaths(t *testing.T) {
	cfg := SecurityHeadersConfig{Skipper: SkipPaths("/forward-call")}

	rec := serveWithHeaders(cfg, "/forward-call")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Security-Policy"))

	rec = serveWithHeaders(cfg, "/")
	assert.NotEmpty(t, rec.Header().Get("Content-Security-Policy"))
}

func TestSecurityHeaders_HandlerError(t *testing.T) {
	rec := serveWithHeaders(SecurityHeadersConfig{}, "/fail")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Content-Security-Policy"))
	assert.NotEmpty(t, rec.Header().Get("Referrer-Policy"))
}
