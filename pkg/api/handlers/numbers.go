package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jordanlanch/calltracker/pkg/flash"
	"github.com/jordanlanch/calltracker/pkg/logger"
	"github.com/jordanlanch/calltracker/pkg/metrics"
	"github.com/jordanlanch/calltracker/pkg/models"
	"github.com/jordanlanch/calltracker/pkg/provisioning"
	"github.com/jordanlanch/calltracker/pkg/twilio"
	"github.com/labstack/echo/v4"
)

// providerTimeout bounds a search or purchase round trip
const providerTimeout = 30 * time.Second

// NumberHandler handles the search and purchase workflow
type NumberHandler struct {
	provisioning *provisioning.Service
	flash        *flash.Manager
	metrics      *metrics.Metrics
	log          logger.Logger
}

// NewNumberHandler creates a new number handler
func NewNumberHandler(svc *provisioning.Service, fl *flash.Manager, m *metrics.Metrics, log logger.Logger) *NumberHandler {
	return &NumberHandler{
		provisioning: svc,
		flash:        fl,
		metrics:      m,
		log:          log.With("handler", "numbers"),
	}
}

func (h *NumberHandler) redirectHome(c echo.Context, level, text string) error {
	h.flash.Add(c, level, text)
	return c.Redirect(http.StatusFound, "/")
}

// SearchNumbers lists purchasable numbers for the submitted area code
func (h *NumberHandler) SearchNumbers(c echo.Context) error {
	var form models.AreaCodeForm
	_ = c.Bind(&form)

	invalid := fmt.Sprintf("%s is not a valid area code. Please search again.", form.AreaCode)
	if err := c.Validate(&form); err != nil {
		h.metrics.RecordNumberSearch("invalid")
		return h.redirectHome(c, flash.LevelError, invalid)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), providerTimeout)
	defer cancel()

	numbers, err := h.provisioning.SearchAvailableNumbers(ctx, form.AreaCode)
	if err != nil {
		if errors.Is(err, provisioning.ErrInvalidAreaCode) {
			h.metrics.RecordNumberSearch("invalid")
			return h.redirectHome(c, flash.LevelError, invalid)
		}
		h.metrics.RecordNumberSearch("error")
		h.log.Error("number search failed", "area_code", form.AreaCode, "error", err)
		captureError(c, err)
		return h.redirectHome(c, flash.LevelError,
			fmt.Sprintf("Could not search for numbers in area code %s right now. Please try again.", form.AreaCode))
	}

	if len(numbers) == 0 {
		h.metrics.RecordNumberSearch("empty")
		return h.redirectHome(c, flash.LevelError, fmt.Sprintf(
			"There are no Twilio numbers available for area code %s. Search for numbers in a different area code.",
			form.AreaCode))
	}

	h.metrics.RecordNumberSearch("found")
	return page(c, h.flash, http.StatusOK, "list_numbers.html", map[string]interface{}{
		"AreaCode": form.AreaCode,
		"Numbers":  numbers,
	})
}

// PurchaseNumber buys the submitted number and sends the user to name it
func (h *NumberHandler) PurchaseNumber(c echo.Context) error {
	var form models.PurchaseNumberForm
	_ = c.Bind(&form)

	invalid := fmt.Sprintf("%s is not a valid phone number. Please search again.", form.PhoneNumber)
	if err := c.Validate(&form); err != nil {
		h.metrics.RecordNumberPurchase("invalid")
		return h.redirectHome(c, flash.LevelError, invalid)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), providerTimeout)
	defer cancel()

	result, err := h.provisioning.PurchaseNumber(ctx, form.PhoneNumber)
	if err != nil {
		switch {
		case errors.Is(err, provisioning.ErrInvalidPhoneNumber):
			h.metrics.RecordNumberPurchase("invalid")
			return h.redirectHome(c, flash.LevelError, invalid)
		case errors.Is(err, provisioning.ErrApplicationNotConfigured):
			h.metrics.RecordNumberPurchase("error")
			h.log.Error("voice application not configured")
			return h.redirectHome(c, flash.LevelError,
				"No Twilio application is configured. Set TWILIO_APP_SID and try again.")
		case errors.Is(err, provisioning.ErrPurchaseFailed):
			h.metrics.RecordNumberPurchase("failed")
			h.log.Error("number purchase failed", "phone_number", form.PhoneNumber, "error", err)
			captureError(c, err)
			return h.redirectHome(c, flash.LevelError,
				fmt.Sprintf("Phone number %s could not be purchased. Please search again.", form.PhoneNumber))
		default:
			h.metrics.RecordNumberPurchase("error")
			h.log.Error("number purchase could not be completed", "phone_number", form.PhoneNumber, "error", err)
			captureError(c, err)
			return h.redirectHome(c, flash.LevelError,
				fmt.Sprintf("Phone number %s could not be registered. Please contact support.", form.PhoneNumber))
		}
	}

	h.metrics.RecordNumberPurchase("success")
	h.flash.Add(c, flash.LevelSuccess, fmt.Sprintf(
		"Phone number %s has been purchased. Please add a name for this lead source.", result.FriendlyName))

	if result.MisconfiguredVoiceURL {
		h.flash.AddLink(c, flash.LevelWarning,
			"WARNING: You must update the Twilio Application's voice URL before this number will forward calls. You can do that here:",
			twilio.ApplicationConsoleURL(result.Application.SID))
	}

	return c.Redirect(http.StatusFound, fmt.Sprintf("/lead-sources/%d/edit", result.LeadSource.ID))
}
