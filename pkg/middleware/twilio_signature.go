package middleware

import (
	"net/http"
	"strings"

	"github.com/jordanlanch/calltracker/pkg/logger"
	"github.com/jordanlanch/calltracker/pkg/twilio"
	"github.com/labstack/echo/v4"
)

// TwilioSignature rejects webhook requests whose X-Twilio-Signature does not
// match the form parameters signed with authToken. The signed URL is
// publicBaseURL plus the request URI, since the provider signs the public
// address and not the one seen behind a proxy.
func TwilioSignature(authToken, publicBaseURL string, log logger.Logger) echo.MiddlewareFunc {
	base := strings.TrimRight(publicBaseURL, "/")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			params, err := c.FormParams()
			if err != nil {
				return c.NoContent(http.StatusBadRequest)
			}

			fullURL := base + req.URL.RequestURI()
			if base == "" {
				fullURL = c.Scheme() + "://" + req.Host + req.URL.RequestURI()
			}

			if !twilio.ValidSignature(authToken, fullURL, params, req.Header.Get(twilio.SignatureHeader)) {
				log.Warn("webhook signature mismatch",
					"path", req.URL.Path,
					"remote_ip", c.RealIP(),
				)
				return c.NoContent(http.StatusForbidden)
			}

			return next(c)
		}
	}
}
