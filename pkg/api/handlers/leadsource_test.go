package handlers

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/jordanlanch/calltracker/pkg/flash"
	"github.com/jordanlanch/calltracker/pkg/leadsource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLeadSourceRoutes(t *testing.T) *testEnv {
	env := setupTestEnv(t)
	svc := leadsource.NewService(env.db, "US")
	h := NewLeadSourceHandler(svc, env.flashes)
	dash := NewDashboardHandler(svc, env.flashes, "415")

	env.e.GET("/", dash.Home, env.flashes.Middleware())
	env.e.GET("/lead-sources/:id/edit", h.Edit, env.flashes.Middleware())
	env.e.POST("/lead-sources/:id/edit", h.Update, env.flashes.Middleware())
	return env
}

func TestDashboardHome(t *testing.T) {
	env := setupLeadSourceRoutes(t)
	createSource(t, env.db, "+14158675309", "Billboard", "+12024561111")

	rec := get(env.e, "/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `value="415"`)
	assert.Contains(t, rec.Body.String(), "Billboard")
	assert.Contains(t, rec.Body.String(), "(415) 867-5309")
}

func TestEditLeadSource(t *testing.T) {
	env := setupLeadSourceRoutes(t)
	src := createSource(t, env.db, "+14158675309", "Billboard", "+12024561111")

	t.Run("Renders current values", func(t *testing.T) {
		rec := get(env.e, "/lead-sources/"+strconv.Itoa(src.ID)+"/edit")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `value="Billboard"`)
		assert.Contains(t, rec.Body.String(), `name="forwarding_number" value="&#43;12024561111"`)
	})

	t.Run("Unknown id", func(t *testing.T) {
		rec := get(env.e, "/lead-sources/9999/edit")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Non numeric id", func(t *testing.T) {
		rec := get(env.e, "/lead-sources/abc/edit")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestUpdateLeadSource(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - saves and flashes", func(t *testing.T) {
		env := setupLeadSourceRoutes(t)
		src := createSource(t, env.db, "+14158675309", "", "")

		rec := postForm(env.e, "/lead-sources/"+strconv.Itoa(src.ID)+"/edit", url.Values{
			"name":              {"Radio Ad"},
			"forwarding_number": {"(202) 456-1111"},
			"incoming_number":   {"+19999999999"},
		})

		assert.Equal(t, http.StatusFound, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))

		updated, err := env.db.LeadSource.Get(ctx, src.ID)
		require.NoError(t, err)
		assert.Equal(t, "Radio Ad", updated.Name)
		assert.Equal(t, "+12024561111", updated.ForwardingNumber)
		assert.Equal(t, "+14158675309", updated.IncomingNumber, "incoming number is not editable")

		msgs := env.flashesFor(t, rec)
		require.Len(t, msgs, 1)
		assert.Equal(t, flash.LevelSuccess, msgs[0].Level)
		assert.Equal(t, "Lead source successfully updated.", msgs[0].Text)
	})

	t.Run("Invalid forwarding number re-renders form", func(t *testing.T) {
		env := setupLeadSourceRoutes(t)
		src := createSource(t, env.db, "+14158675309", "Old", "+12024561111")

		rec := postForm(env.e, "/lead-sources/"+strconv.Itoa(src.ID)+"/edit", url.Values{
			"name":              {"New"},
			"forwarding_number": {"12345"},
		})

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "12345 is not a valid phone number.")
		assert.Contains(t, rec.Body.String(), `value="New"`)

		unchanged, err := env.db.LeadSource.Get(ctx, src.ID)
		require.NoError(t, err)
		assert.Equal(t, "Old", unchanged.Name)
		assert.Equal(t, "+12024561111", unchanged.ForwardingNumber)
	})

	t.Run("Missing forwarding number", func(t *testing.T) {
		env := setupLeadSourceRoutes(t)
		src := createSource(t, env.db, "+14158675309", "", "")

		rec := postForm(env.e, "/lead-sources/"+strconv.Itoa(src.ID)+"/edit", url.Values{"name": {"Radio"}})

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("Multibyte name within the limit is saved", func(t *testing.T) {
		env := setupLeadSourceRoutes(t)
		src := createSource(t, env.db, "+14158675309", "", "")
		name := strings.Repeat("é", 200)

		rec := postForm(env.e, "/lead-sources/"+strconv.Itoa(src.ID)+"/edit", url.Values{
			"name":              {name},
			"forwarding_number": {"+12024561111"},
		})

		assert.Equal(t, http.StatusFound, rec.Code)
		updated, err := env.db.LeadSource.Get(ctx, src.ID)
		require.NoError(t, err)
		assert.Equal(t, name, updated.Name)
	})

	t.Run("Name over the limit re-renders form", func(t *testing.T) {
		env := setupLeadSourceRoutes(t)
		src := createSource(t, env.db, "+14158675309", "Old", "+12024561111")

		rec := postForm(env.e, "/lead-sources/"+strconv.Itoa(src.ID)+"/edit", url.Values{
			"name":              {strings.Repeat("é", leadsource.MaxNameLength+1)},
			"forwarding_number": {"+12024561111"},
		})

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), "a name of at most 255 characters")

		unchanged, err := env.db.LeadSource.Get(ctx, src.ID)
		require.NoError(t, err)
		assert.Equal(t, "Old", unchanged.Name)
	})

	t.Run("Unknown id", func(t *testing.T) {
		env := setupLeadSourceRoutes(t)

		rec := postForm(env.e, "/lead-sources/42/edit", url.Values{
			"name":              {"Radio"},
			"forwarding_number": {"+12024561111"},
		})

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
