package handlers

import (
	"bytes"
	"context"
	"net/http"
	"time"

	apierrors "github.com/jordanlanch/calltracker/pkg/api/errors"
	"github.com/jordanlanch/calltracker/pkg/reporting"
	"github.com/labstack/echo/v4"
)

// ReportHandler serves the chart data and the lead export
type ReportHandler struct {
	reporting *reporting.Service
}

// NewReportHandler creates a new report handler
func NewReportHandler(svc *reporting.Service) *ReportHandler {
	return &ReportHandler{reporting: svc}
}

// LeadsBySource returns {label: count} for every source with leads
func (h *ReportHandler) LeadsBySource(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	data, err := h.reporting.LeadsPerSource(ctx)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}
	return c.JSON(http.StatusOK, data)
}

// LeadsByCity returns {city: count}
func (h *ReportHandler) LeadsByCity(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	data, err := h.reporting.LeadsPerCity(ctx)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}
	return c.JSON(http.StatusOK, data)
}

// ExportLeads downloads every lead as an XLSX workbook
func (h *ReportHandler) ExportLeads(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 60*time.Second)
	defer cancel()

	// Buffered so a failure can still produce a clean error response
	var buf bytes.Buffer
	if _, err := h.reporting.ExportLeads(ctx, &buf); err != nil {
		return apierrors.InternalError(c, err)
	}

	filename := "leads-" + time.Now().UTC().Format("20060102") + ".xlsx"
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, reporting.ExportContentType, buf.Bytes())
}
