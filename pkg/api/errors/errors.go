package errors

import (
	"net/http"

	"github.com/jordanlanch/calltracker/pkg/logger"
	"github.com/jordanlanch/calltracker/pkg/models"
	"github.com/labstack/echo/v4"
)

var log logger.Logger = logger.New("info", "json")

// SetLogger replaces the logger used to record the errors behind generic responses
func SetLogger(l logger.Logger) {
	log = l
}

// ValidationError returns a generic validation error without exposing internal details
func ValidationError(c echo.Context, err error) error {
	log.Warn("validation error", "path", c.Request().URL.Path, "error", err)

	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "validation_error",
		Message: "Invalid request data. Please check your input and try again.",
	})
}

// DatabaseError returns a generic database error without exposing internal details
func DatabaseError(c echo.Context, err error) error {
	log.Error("database error", "path", c.Request().URL.Path, "error", err)

	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "database_error",
		Message: "A database error occurred. Please try again later.",
	})
}

// ProviderError is returned when the telephony provider fails
func ProviderError(c echo.Context, err error) error {
	log.Error("provider error", "path", c.Request().URL.Path, "error", err)

	return c.JSON(http.StatusBadGateway, models.ErrorResponse{
		Error:   "provider_error",
		Message: "The telephony provider could not complete the request. Please try again later.",
	})
}

// InternalError returns a generic internal server error
func InternalError(c echo.Context, err error) error {
	log.Error("internal error", "path", c.Request().URL.Path, "error", err)

	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred. Please try again later.",
	})
}

// NotFoundError returns a generic not found error
func NotFoundError(c echo.Context, resource string) error {
	return c.JSON(http.StatusNotFound, models.ErrorResponse{
		Error:   "not_found",
		Message: "The requested resource was not found.",
	})
}
