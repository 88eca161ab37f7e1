package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/jordanlanch/calltracker/ent"
	apierrors "github.com/jordanlanch/calltracker/pkg/api/errors"
	"github.com/jordanlanch/calltracker/pkg/flash"
	"github.com/jordanlanch/calltracker/pkg/leadsource"
	"github.com/jordanlanch/calltracker/pkg/models"
	"github.com/labstack/echo/v4"
)

var formError = fmt.Sprintf("Enter a forwarding number and a name of at most %d characters.", leadsource.MaxNameLength)

// LeadSourceHandler handles the lead source edit form
type LeadSourceHandler struct {
	leadSources *leadsource.Service
	flash       *flash.Manager
}

// NewLeadSourceHandler creates a new lead source handler
func NewLeadSourceHandler(leadSources *leadsource.Service, fl *flash.Manager) *LeadSourceHandler {
	return &LeadSourceHandler{
		leadSources: leadSources,
		flash:       fl,
	}
}

func (h *LeadSourceHandler) load(c echo.Context) (*ent.LeadSource, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return nil, apierrors.NotFoundError(c, "lead source")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	src, err := h.leadSources.Get(ctx, id)
	if err != nil {
		if errors.Is(err, leadsource.ErrLeadSourceNotFound) {
			return nil, apierrors.NotFoundError(c, "lead source")
		}
		return nil, apierrors.DatabaseError(c, err)
	}
	return src, nil
}

func (h *LeadSourceHandler) renderForm(c echo.Context, status int, src *ent.LeadSource, form models.LeadSourceForm, msg string) error {
	return page(c, h.flash, status, "edit_lead_source.html", map[string]interface{}{
		"LeadSource": src,
		"Form":       form,
		"Error":      msg,
	})
}

// Edit renders the edit form for a lead source
func (h *LeadSourceHandler) Edit(c echo.Context) error {
	src, err := h.load(c)
	if err != nil || src == nil {
		return err
	}

	return h.renderForm(c, http.StatusOK, src, models.LeadSourceForm{
		Name:             src.Name,
		ForwardingNumber: src.ForwardingNumber,
	}, "")
}

// Update saves the name and forwarding number
func (h *LeadSourceHandler) Update(c echo.Context) error {
	src, err := h.load(c)
	if err != nil || src == nil {
		return err
	}

	var form models.LeadSourceForm
	_ = c.Bind(&form)

	if err := c.Validate(&form); err != nil {
		return h.renderForm(c, http.StatusUnprocessableEntity, src, form, formError)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	if _, err := h.leadSources.Update(ctx, src.ID, form.Name, form.ForwardingNumber); err != nil {
		if errors.Is(err, leadsource.ErrNameTooLong) {
			return h.renderForm(c, http.StatusUnprocessableEntity, src, form, formError)
		}
		if errors.Is(err, leadsource.ErrInvalidPhoneNumber) {
			return h.renderForm(c, http.StatusUnprocessableEntity, src, form,
				fmt.Sprintf("%s is not a valid phone number.", form.ForwardingNumber))
		}
		if errors.Is(err, leadsource.ErrLeadSourceNotFound) {
			return apierrors.NotFoundError(c, "lead source")
		}
		return apierrors.DatabaseError(c, err)
	}

	h.flash.Add(c, flash.LevelSuccess, "Lead source successfully updated.")
	return c.Redirect(http.StatusFound, "/")
}
