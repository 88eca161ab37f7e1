package leadsource

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"testing"

	"github.com/jordanlanch/calltracker/ent"
	"github.com/jordanlanch/calltracker/ent/enttest"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", url.PathEscape(t.Name()))
	client := enttest.Open(t, "sqlite3", dsn)
	return client, func() { client.Close() }
}

func createTestSource(t *testing.T, client *ent.Client, incoming string) *ent.LeadSource {
	src, err := client.LeadSource.
		Create().
		SetIncomingNumber(incoming).
		Save(context.Background())
	require.NoError(t, err)
	return src
}

func TestUpdate(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client, "US")
	ctx := context.Background()

	src := createTestSource(t, client, "+14158675309")

	t.Run("Success - persists name and normalized forwarding number", func(t *testing.T) {
		updated, err := service.Update(ctx, src.ID, "Billboard on 101", "(202) 456-1111")

		require.NoError(t, err)
		assert.Equal(t, "Billboard on 101", updated.Name)
		assert.Equal(t, "+12024561111", updated.ForwardingNumber)
		assert.Equal(t, "+14158675309", updated.IncomingNumber)

		reloaded, err := client.LeadSource.Get(ctx, src.ID)
		require.NoError(t, err)
		assert.Equal(t, "Billboard on 101", reloaded.Name)
		assert.Equal(t, "+12024561111", reloaded.ForwardingNumber)
		assert.Equal(t, "+14158675309", reloaded.IncomingNumber)
	})

	t.Run("Failure - invalid forwarding number leaves row untouched", func(t *testing.T) {
		_, err := service.Update(ctx, src.ID, "Radio spot", "12345")

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidPhoneNumber)

		reloaded, err := client.LeadSource.Get(ctx, src.ID)
		require.NoError(t, err)
		assert.Equal(t, "Billboard on 101", reloaded.Name)
	})

	t.Run("Failure - empty forwarding number", func(t *testing.T) {
		_, err := service.Update(ctx, src.ID, "Radio spot", "")
		assert.ErrorIs(t, err, ErrInvalidPhoneNumber)
	})

	t.Run("Failure - unknown lead source", func(t *testing.T) {
		_, err := service.Update(ctx, 9999, "Nobody", "+12024561111")
		assert.ErrorIs(t, err, ErrLeadSourceNotFound)
	})
}

func TestUpdate_NameLength(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client, "US")
	ctx := context.Background()

	src := createTestSource(t, client, "+14158675309")

	t.Run("Success - limit counts characters, not bytes", func(t *testing.T) {
		name := strings.Repeat("é", MaxNameLength)

		updated, err := service.Update(ctx, src.ID, name, "+12024561111")

		require.NoError(t, err)
		assert.Equal(t, name, updated.Name)
	})

	t.Run("Failure - one character over the limit", func(t *testing.T) {
		_, err := service.Update(ctx, src.ID, strings.Repeat("é", MaxNameLength+1), "+13125550000")

		assert.ErrorIs(t, err, ErrNameTooLong)

		reloaded, err := client.LeadSource.Get(ctx, src.ID)
		require.NoError(t, err)
		assert.Equal(t, "+12024561111", reloaded.ForwardingNumber)
	})
}

func TestGet(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client, "US")
	ctx := context.Background()
	src := createTestSource(t, client, "+14158675309")

	got, err := service.Get(ctx, src.ID)
	require.NoError(t, err)
	assert.Equal(t, src.IncomingNumber, got.IncomingNumber)

	_, err = service.Get(ctx, src.ID+1)
	assert.ErrorIs(t, err, ErrLeadSourceNotFound)
}

func TestListAll(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client, "US")
	ctx := context.Background()

	sources, err := service.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, sources)

	first := createTestSource(t, client, "+14158675309")
	second := createTestSource(t, client, "+13128675309")

	sources, err = service.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, sources, 2)
	assert.Equal(t, first.ID, sources[0].ID)
	assert.Equal(t, second.ID, sources[1].ID)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Newspaper", Label(&ent.LeadSource{Name: " Newspaper ", IncomingNumber: "+14158675309"}))
	assert.Equal(t, "+14158675309", Label(&ent.LeadSource{Name: "", IncomingNumber: "+14158675309"}))
	assert.Equal(t, "+14158675309", Label(&ent.LeadSource{Name: "   ", IncomingNumber: "+14158675309"}))
}
