package calltracking

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"testing"

	"github.com/jordanlanch/calltracker/ent"
	"github.com/jordanlanch/calltracker/ent/enttest"
	"github.com/jordanlanch/calltracker/ent/lead"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*ent.Client, func()) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", url.PathEscape(t.Name()))
	client := enttest.Open(t, "sqlite3", dsn)
	return client, func() { client.Close() }
}

func createTestSource(t *testing.T, client *ent.Client, incoming, name, forwarding string) *ent.LeadSource {
	src, err := client.LeadSource.
		Create().
		SetIncomingNumber(incoming).
		SetName(name).
		SetForwardingNumber(forwarding).
		Save(context.Background())
	require.NoError(t, err)
	return src
}

func TestRecordCall(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client, "US")
	ctx := context.Background()

	src := createTestSource(t, client, "+14158675309", "Billboard", "+12024561111")
	other := createTestSource(t, client, "+13128675309", "Radio", "+12024561111")

	t.Run("Success - lead copies caller fields verbatim", func(t *testing.T) {
		fwd, err := service.RecordCall(ctx, InboundCall{
			Called:      "+14158675309",
			Caller:      "+16175551234",
			CallerCity:  "BOSTON",
			CallerState: "MA",
			CallSID:     "CA100",
		})

		require.NoError(t, err)
		assert.Equal(t, src.ID, fwd.Source.ID)
		assert.Equal(t, src.ID, fwd.Lead.LeadSourceID)
		assert.Equal(t, "+16175551234", fwd.Lead.PhoneNumber)
		assert.Equal(t, "BOSTON", fwd.Lead.City)
		assert.Equal(t, "MA", fwd.Lead.State)
		assert.Equal(t, "CA100", fwd.Lead.CallSid)
		assert.Equal(t, "+12024561111", fwd.DialNumber)
		assert.False(t, fwd.Lead.CreatedAt.IsZero())
	})

	t.Run("Success - provider sentinels and empty geography are kept", func(t *testing.T) {
		fwd, err := service.RecordCall(ctx, InboundCall{
			Called: "+13128675309",
			Caller: "anonymous",
		})

		require.NoError(t, err)
		assert.Equal(t, other.ID, fwd.Lead.LeadSourceID)
		assert.Equal(t, "anonymous", fwd.Lead.PhoneNumber)
		assert.Equal(t, "", fwd.Lead.City)
		assert.Equal(t, "", fwd.Lead.State)
	})

	t.Run("Success - long provider values are not truncated", func(t *testing.T) {
		caller := strings.Repeat("9", 80)
		sid := "CA" + strings.Repeat("f", 100)

		fwd, err := service.RecordCall(ctx, InboundCall{
			Called:  "+14158675309",
			Caller:  caller,
			CallSID: sid,
		})

		require.NoError(t, err)
		assert.Equal(t, caller, fwd.Lead.PhoneNumber)
		assert.Equal(t, sid, fwd.Lead.CallSid)
		assert.Equal(t, "+12024561111", fwd.DialNumber)
	})

	t.Run("Success - repeated calls are not deduplicated", func(t *testing.T) {
		before, err := client.Lead.Query().Where(lead.LeadSourceIDEQ(src.ID)).Count(ctx)
		require.NoError(t, err)

		call := InboundCall{Called: "+14158675309", Caller: "+16175550000", CallerCity: "NYC", CallerState: "NY"}
		_, err = service.RecordCall(ctx, call)
		require.NoError(t, err)
		_, err = service.RecordCall(ctx, call)
		require.NoError(t, err)

		after, err := client.Lead.Query().Where(lead.LeadSourceIDEQ(src.ID)).Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, before+2, after)
	})

	t.Run("Failure - unknown dialed number writes nothing", func(t *testing.T) {
		before, err := client.Lead.Query().Count(ctx)
		require.NoError(t, err)

		_, err = service.RecordCall(ctx, InboundCall{Called: "+19998887777", Caller: "+16175551234"})

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownNumber)

		after, err := client.Lead.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("Failure - lookup is exact match", func(t *testing.T) {
		_, err := service.RecordCall(ctx, InboundCall{Called: "4158675309", Caller: "+16175551234"})
		assert.ErrorIs(t, err, ErrUnknownNumber)
	})

	t.Run("Failure - missing called number", func(t *testing.T) {
		_, err := service.RecordCall(ctx, InboundCall{Caller: "+16175551234"})
		assert.ErrorIs(t, err, ErrMissingCalledNumber)
	})
}

func TestRecordCall_NoForwardingNumber(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client, "US")
	ctx := context.Background()

	createTestSource(t, client, "+14158675309", "", "")

	fwd, err := service.RecordCall(ctx, InboundCall{Called: "+14158675309", Caller: "+16175551234"})

	require.NoError(t, err)
	assert.Empty(t, fwd.DialNumber)

	count, err := client.Lead.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRecordCall_NormalizesStoredForwardingNumber(t *testing.T) {
	client, cleanup := setupTestDB(t)
	defer cleanup()

	service := NewService(client, "US")
	ctx := context.Background()

	// Rows written before normalization existed may hold national format.
	createTestSource(t, client, "+14158675309", "Legacy", "(202) 456-1111")

	fwd, err := service.RecordCall(ctx, InboundCall{Called: "+14158675309", Caller: "+16175551234"})

	require.NoError(t, err)
	assert.Equal(t, "+12024561111", fwd.DialNumber)
}
