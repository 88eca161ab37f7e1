package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/jordanlanch/calltracker/pkg/models"
	"github.com/jordanlanch/calltracker/pkg/reporting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func setupReportRoutes(t *testing.T) *testEnv {
	env := setupTestEnv(t)
	h := NewReportHandler(reporting.NewService(env.db))
	env.e.GET("/leads-by-source", h.LeadsBySource)
	env.e.GET("/leads-by-city", h.LeadsByCity)
	env.e.GET("/leads/export.xlsx", h.ExportLeads)
	return env
}

func TestReports(t *testing.T) {
	env := setupReportRoutes(t)
	ctx := context.Background()

	named := createSource(t, env.db, "+14155550001", "Billboard", "")
	unnamed := createSource(t, env.db, "+14155550002", "", "")
	for _, l := range []struct {
		src  int
		city string
	}{
		{named.ID, "BOSTON"},
		{named.ID, "BOSTON"},
		{unnamed.ID, ""},
	} {
		_, err := env.db.Lead.Create().
			SetLeadSourceID(l.src).
			SetPhoneNumber("+16175550000").
			SetCity(l.city).
			Save(ctx)
		require.NoError(t, err)
	}

	t.Run("Leads by source", func(t *testing.T) {
		rec := get(env.e, "/leads-by-source")
		require.Equal(t, http.StatusOK, rec.Code)

		var data map[string]int
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &data))
		assert.Equal(t, map[string]int{"Billboard": 2, "+14155550002": 1}, data)
	})

	t.Run("Leads by city", func(t *testing.T) {
		rec := get(env.e, "/leads-by-city")
		require.Equal(t, http.StatusOK, rec.Code)

		var data map[string]int
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &data))
		assert.Equal(t, map[string]int{"BOSTON": 2, "": 1}, data)
	})

	t.Run("Export", func(t *testing.T) {
		rec := get(env.e, "/leads/export.xlsx")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, reporting.ExportContentType, rec.Header().Get("Content-Type"))
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment;")

		f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
		require.NoError(t, err)
		defer f.Close()

		rows, err := f.GetRows(reporting.ExportSheet)
		require.NoError(t, err)
		assert.Len(t, rows, 4)
	})
}

func TestReports_Empty(t *testing.T) {
	env := setupReportRoutes(t)

	rec := get(env.e, "/leads-by-source")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{}`, rec.Body.String())
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(ctx context.Context) error { return p.err }

func TestHealth(t *testing.T) {
	tests := []struct {
		name   string
		db     Pinger
		redis  Pinger
		status int
		want   models.HealthResponse
	}{
		{"healthy without redis", stubPinger{}, nil, http.StatusOK, models.HealthResponse{Status: "ok", Database: "ok"}},
		{"healthy with redis", stubPinger{}, stubPinger{}, http.StatusOK, models.HealthResponse{Status: "ok", Database: "ok", Redis: "ok"}},
		{"database down", stubPinger{err: errors.New("down")}, nil, http.StatusServiceUnavailable, models.HealthResponse{Status: "degraded", Database: "unreachable"}},
		{"redis down", stubPinger{}, stubPinger{err: errors.New("down")}, http.StatusServiceUnavailable, models.HealthResponse{Status: "degraded", Database: "ok", Redis: "unreachable"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnv(t)
			env.e.GET("/health", NewHealthHandler(tt.db, tt.redis).Health)

			rec := get(env.e, "/health")

			assert.Equal(t, tt.status, rec.Code)
			var got models.HealthResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}
