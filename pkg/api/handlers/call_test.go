package handlers

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/jordanlanch/calltracker/pkg/calltracking"
	"github.com/jordanlanch/calltracker/pkg/logger"
	"github.com/jordanlanch/calltracker/pkg/twilio"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCallRoutes(t *testing.T) *testEnv {
	env := setupTestEnv(t)
	h := NewCallHandler(calltracking.NewService(env.db, "US"), env.metrics, logger.Discard())
	env.e.POST("/forward-call", h.ForwardCall)
	return env
}

func TestForwardCall(t *testing.T) {
	ctx := context.Background()

	t.Run("Dials the forwarding number and records a lead", func(t *testing.T) {
		env := setupCallRoutes(t)
		src := createSource(t, env.db, "+14158675309", "Billboard", "+12024561111")

		rec := postForm(env.e, "/forward-call", url.Values{
			"Called":      {"+14158675309"},
			"Caller":      {"+16175551234"},
			"CallerCity":  {"BOSTON"},
			"CallerState": {"MA"},
			"CallSid":     {"CA123"},
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, twilio.ContentType, rec.Header().Get("Content-Type"))
		assert.Equal(t,
			`<?xml version="1.0" encoding="UTF-8"?>`+"\n"+`<Response><Dial>+12024561111</Dial></Response>`,
			rec.Body.String())

		lead, err := env.db.Lead.Query().Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, src.ID, lead.LeadSourceID)
		assert.Equal(t, "+16175551234", lead.PhoneNumber)
		assert.Equal(t, "BOSTON", lead.City)
		assert.Equal(t, "MA", lead.State)
		assert.Equal(t, "CA123", lead.CallSid)

		assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.LeadsRecorded))
		assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.CallsForwarded.WithLabelValues("forwarded")))
	})

	t.Run("Missing geography is stored empty", func(t *testing.T) {
		env := setupCallRoutes(t)
		createSource(t, env.db, "+14158675309", "Billboard", "+12024561111")

		rec := postForm(env.e, "/forward-call", url.Values{
			"Called": {"+14158675309"},
			"Caller": {"anonymous"},
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		lead, err := env.db.Lead.Query().Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, "anonymous", lead.PhoneNumber)
		assert.Equal(t, "", lead.City)
		assert.Equal(t, "", lead.State)
	})

	t.Run("Long caller value is recorded and dialed", func(t *testing.T) {
		env := setupCallRoutes(t)
		createSource(t, env.db, "+14158675309", "Billboard", "+12024561111")
		caller := strings.Repeat("9", 80)

		rec := postForm(env.e, "/forward-call", url.Values{
			"Called": {"+14158675309"},
			"Caller": {caller},
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "<Dial>+12024561111</Dial>")
		lead, err := env.db.Lead.Query().Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, caller, lead.PhoneNumber)
	})

	t.Run("Unknown number is rejected without a lead", func(t *testing.T) {
		env := setupCallRoutes(t)
		createSource(t, env.db, "+14158675309", "Billboard", "+12024561111")

		rec := postForm(env.e, "/forward-call", url.Values{
			"Called": {"+19998887777"},
			"Caller": {"+16175551234"},
		})

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "<Reject></Reject>")

		count, err := env.db.Lead.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
		assert.Equal(t, 1.0, testutil.ToFloat64(env.metrics.CallsForwarded.WithLabelValues("unknown_number")))
	})

	t.Run("No forwarding number still records the lead", func(t *testing.T) {
		env := setupCallRoutes(t)
		createSource(t, env.db, "+14158675309", "", "")

		rec := postForm(env.e, "/forward-call", url.Values{
			"Called": {"+14158675309"},
			"Caller": {"+16175551234"},
		})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "<Say>")
		assert.Contains(t, rec.Body.String(), "<Hangup></Hangup>")
		assert.NotContains(t, rec.Body.String(), "<Dial>")

		count, err := env.db.Lead.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("Each call is a new lead", func(t *testing.T) {
		env := setupCallRoutes(t)
		createSource(t, env.db, "+14158675309", "Billboard", "+12024561111")

		form := url.Values{"Called": {"+14158675309"}, "Caller": {"+16175551234"}, "CallerCity": {"BOSTON"}}
		for i := 0; i < 3; i++ {
			rec := postForm(env.e, "/forward-call", form)
			require.Equal(t, http.StatusOK, rec.Code)
		}

		count, err := env.db.Lead.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})
}
