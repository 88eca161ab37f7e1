package errors

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jordanlanch/calltracker/pkg/logger"
	"github.com/jordanlanch/calltracker/pkg/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newContext creates an echo.Context backed by an httptest.NewRecorder
func newContext(method, path string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// captureLog routes package logging to a buffer for the duration of fn
func captureLog(t *testing.T, fn func()) string {
	t.Helper()
	var buf bytes.Buffer
	orig := log
	SetLogger(logger.NewWithWriter(&buf, "debug", "json"))
	defer SetLogger(orig)
	fn()
	return buf.String()
}

func TestErrorHelpers(t *testing.T) {
	internalMsg := "pq: duplicate key value violates unique constraint"

	tests := []struct {
		name       string
		call       func(c echo.Context) error
		wantStatus int
		wantCode   string
		wantLogged bool
	}{
		{
			name:       "ValidationError",
			call:       func(c echo.Context) error { return ValidationError(c, errors.New(internalMsg)) },
			wantStatus: http.StatusBadRequest,
			wantCode:   "validation_error",
			wantLogged: true,
		},
		{
			name:       "DatabaseError",
			call:       func(c echo.Context) error { return DatabaseError(c, errors.New(internalMsg)) },
			wantStatus: http.StatusInternalServerError,
			wantCode:   "database_error",
			wantLogged: true,
		},
		{
			name:       "ProviderError",
			call:       func(c echo.Context) error { return ProviderError(c, errors.New(internalMsg)) },
			wantStatus: http.StatusBadGateway,
			wantCode:   "provider_error",
			wantLogged: true,
		},
		{
			name:       "InternalError",
			call:       func(c echo.Context) error { return InternalError(c, errors.New(internalMsg)) },
			wantStatus: http.StatusInternalServerError,
			wantCode:   "internal_error",
			wantLogged: true,
		},
		{
			name:       "NotFoundError",
			call:       func(c echo.Context) error { return NotFoundError(c, "lead source") },
			wantStatus: http.StatusNotFound,
			wantCode:   "not_found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext(http.MethodGet, "/leads-by-source")

			logged := captureLog(t, func() {
				assert.NoError(t, tt.call(c))
			})

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Header().Get(echo.HeaderContentType), echo.MIMEApplicationJSON)

			var resp models.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCode, resp.Error)
			assert.NotEmpty(t, resp.Message)

			// Internal details go to the log, never to the client
			assert.NotContains(t, rec.Body.String(), internalMsg)
			if tt.wantLogged {
				assert.Contains(t, logged, internalMsg)
				assert.Contains(t, logged, "/leads-by-source")
			}
		})
	}
}
