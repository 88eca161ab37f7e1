package handlers

import (
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/jordanlanch/calltracker/pkg/flash"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// csrfContextKey is where echo's CSRF middleware stores the token
var csrfContextKey = middleware.DefaultCSRFConfig.ContextKey

// page renders a dashboard template, adding pending flash messages and the
// CSRF token to data
func page(c echo.Context, fl *flash.Manager, status int, name string, data map[string]interface{}) error {
	if data == nil {
		data = map[string]interface{}{}
	}
	token, _ := c.Get(csrfContextKey).(string)
	data["CSRF"] = token
	data["Flashes"] = fl.Consume(c)
	return c.Render(status, name, data)
}

// captureError reports err to Sentry when the request carries a hub
func captureError(c echo.Context, err error) {
	if hub := sentryecho.GetHubFromContext(c); hub != nil {
		hub.CaptureException(err)
	}
}
