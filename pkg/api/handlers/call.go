package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/jordanlanch/calltracker/pkg/calltracking"
	"github.com/jordanlanch/calltracker/pkg/logger"
	"github.com/jordanlanch/calltracker/pkg/metrics"
	"github.com/jordanlanch/calltracker/pkg/models"
	"github.com/jordanlanch/calltracker/pkg/twilio"
	"github.com/labstack/echo/v4"
)

// Spoken to callers when the call cannot be connected
const (
	noForwardingMessage = "This number is not accepting calls yet. Please try again later."
	unavailableMessage  = "We are unable to connect your call right now. Please try again later."
)

// CallHandler answers the provider's voice webhook
type CallHandler struct {
	calls   *calltracking.Service
	metrics *metrics.Metrics
	log     logger.Logger
}

// NewCallHandler creates a new call handler
func NewCallHandler(calls *calltracking.Service, m *metrics.Metrics, log logger.Logger) *CallHandler {
	return &CallHandler{
		calls:   calls,
		metrics: m,
		log:     log.With("handler", "forward_call"),
	}
}

func twiml(c echo.Context, status int, verbs ...twilio.Verb) error {
	body, err := twilio.Render(verbs...)
	if err != nil {
		return err
	}
	return c.Blob(status, twilio.ContentType, []byte(body))
}

// ForwardCall records the call as a lead and dials the source's forwarding number
func (h *CallHandler) ForwardCall(c echo.Context) error {
	var req models.ForwardCallRequest
	_ = c.Bind(&req)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	fwd, err := h.calls.RecordCall(ctx, calltracking.InboundCall{
		Called:      req.Called,
		Caller:      req.Caller,
		CallerCity:  req.CallerCity,
		CallerState: req.CallerState,
		CallSID:     req.CallSid,
	})
	if err != nil {
		if errors.Is(err, calltracking.ErrUnknownNumber) || errors.Is(err, calltracking.ErrMissingCalledNumber) {
			h.metrics.RecordCallForwarded("unknown_number")
			h.log.Warn("call to untracked number", "called", req.Called, "call_sid", req.CallSid)
			return twiml(c, http.StatusNotFound, twilio.Reject{})
		}

		h.metrics.RecordCallForwarded("error")
		h.log.Error("failed to record call", "called", req.Called, "call_sid", req.CallSid, "error", err)
		captureError(c, err)
		return twiml(c, http.StatusInternalServerError, twilio.Say{Text: unavailableMessage}, twilio.Hangup{})
	}

	h.metrics.RecordLeadRecorded()

	if fwd.DialNumber == "" {
		h.metrics.RecordCallForwarded("no_forwarding_number")
		h.log.Warn("lead source has no forwarding number",
			"lead_source_id", fwd.Source.ID,
			"lead_id", fwd.Lead.ID,
		)
		return twiml(c, http.StatusOK, twilio.Say{Text: noForwardingMessage}, twilio.Hangup{})
	}

	h.metrics.RecordCallForwarded("forwarded")
	h.log.Info("call forwarded",
		"lead_source_id", fwd.Source.ID,
		"lead_id", fwd.Lead.ID,
		"call_sid", req.CallSid,
	)
	return twiml(c, http.StatusOK, twilio.Dial{Number: fwd.DialNumber})
}
