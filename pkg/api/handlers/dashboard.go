package handlers

import (
	"context"
	"net/http"
	"time"

	apierrors "github.com/jordanlanch/calltracker/pkg/api/errors"
	"github.com/jordanlanch/calltracker/pkg/flash"
	"github.com/jordanlanch/calltracker/pkg/leadsource"
	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the home page
type DashboardHandler struct {
	leadSources     *leadsource.Service
	flash           *flash.Manager
	defaultAreaCode string
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(leadSources *leadsource.Service, fl *flash.Manager, defaultAreaCode string) *DashboardHandler {
	return &DashboardHandler{
		leadSources:     leadSources,
		flash:           fl,
		defaultAreaCode: defaultAreaCode,
	}
}

// Home renders the number search form and every lead source
func (h *DashboardHandler) Home(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	sources, err := h.leadSources.ListAll(ctx)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}

	return page(c, h.flash, http.StatusOK, "index.html", map[string]interface{}{
		"AreaCode":    h.defaultAreaCode,
		"LeadSources": sources,
	})
}
