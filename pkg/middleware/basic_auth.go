package middleware

import (
	"crypto/subtle"

	"github.com/jordanlanch/calltracker/pkg/auth"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// DashboardAuth protects browser routes with HTTP basic auth against a
// single user whose password is stored as a bcrypt hash
func DashboardAuth(user, passwordHash string) echo.MiddlewareFunc {
	return middleware.BasicAuthWithConfig(middleware.BasicAuthConfig{
		Realm: "Call Tracker",
		Validator: func(username, password string, c echo.Context) (bool, error) {
			userOK := subtle.ConstantTimeCompare([]byte(username), []byte(user)) == 1
			passOK := auth.CheckPassword(passwordHash, password)
			return userOK && passOK, nil
		},
	})
}
