package flash

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/jordanlanch/calltracker/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return client, mr
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Push(ctx, "a", Message{Level: LevelSuccess, Text: "one"}))
	require.NoError(t, store.Push(ctx, "a", Message{Level: LevelWarning, Text: "two"}))
	require.NoError(t, store.Push(ctx, "b", Message{Level: LevelError, Text: "other"}))

	msgs, err := store.Pop(ctx, "a")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "one", msgs[0].Text)
	assert.Equal(t, "two", msgs[1].Text)

	msgs, err = store.Pop(ctx, "a")
	require.NoError(t, err)
	assert.Empty(t, msgs)

	msgs, err = store.Pop(ctx, "b")
	require.NoError(t, err)
	assert.Len(t, msgs, 1)
}

func TestRedisStore(t *testing.T) {
	client, mr := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	store := NewRedisStore(client, time.Minute)
	ctx := context.Background()

	t.Run("Messages are returned in order and cleared", func(t *testing.T) {
		require.NoError(t, store.Push(ctx, "s1", Message{Level: LevelSuccess, Text: "purchased"}))
		require.NoError(t, store.Push(ctx, "s1", Message{Level: LevelWarning, Text: "check app", URL: "https://example.test/app"}))

		msgs, err := store.Pop(ctx, "s1")
		require.NoError(t, err)
		require.Len(t, msgs, 2)
		assert.Equal(t, Message{Level: LevelSuccess, Text: "purchased"}, msgs[0])
		assert.Equal(t, "https://example.test/app", msgs[1].URL)

		assert.False(t, mr.Exists("flash:s1"))

		msgs, err = store.Pop(ctx, "s1")
		require.NoError(t, err)
		assert.Empty(t, msgs)
	})

	t.Run("Unread messages expire", func(t *testing.T) {
		require.NoError(t, store.Push(ctx, "s2", Message{Level: LevelError, Text: "stale"}))
		assert.True(t, mr.Exists("flash:s2"))

		mr.FastForward(2 * time.Minute)

		msgs, err := store.Pop(ctx, "s2")
		require.NoError(t, err)
		assert.Empty(t, msgs)
	})

	t.Run("Connection errors surface", func(t *testing.T) {
		mr.SetError("server down")
		defer mr.SetError("")

		err := store.Push(ctx, "s3", Message{Text: "x"})
		assert.Error(t, err)
	})
}

func TestManager_Middleware(t *testing.T) {
	e := echo.New()
	m := NewManager(NewMemoryStore(), true, logger.Discard())

	handler := m.Middleware()(func(c echo.Context) error {
		return c.String(http.StatusOK, sessionID(c))
	})

	t.Run("Issues a session cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		require.NoError(t, handler(e.NewContext(req, rec)))

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, CookieName, cookies[0].Name)
		assert.True(t, cookies[0].HttpOnly)
		assert.True(t, cookies[0].Secure)
		assert.Equal(t, cookies[0].Value, rec.Body.String())
	})

	t.Run("Reuses an existing session", func(t *testing.T) {
		id := "6f1c2b1e-3f7a-4a56-9b3e-0f2f3f9e6c11"
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: id})
		rec := httptest.NewRecorder()

		require.NoError(t, handler(e.NewContext(req, rec)))

		assert.Empty(t, rec.Result().Cookies())
		assert.Equal(t, id, rec.Body.String())
	})

	t.Run("Replaces a malformed session id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: "flash:*"})
		rec := httptest.NewRecorder()

		require.NoError(t, handler(e.NewContext(req, rec)))

		assert.NotEqual(t, "flash:*", rec.Body.String())
		assert.Len(t, rec.Result().Cookies(), 1)
	})
}

func TestManager_AddConsume(t *testing.T) {
	e := echo.New()
	m := NewManager(NewMemoryStore(), false, logger.Discard())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	// Without a session messages are dropped.
	m.Add(c, LevelError, "lost")
	assert.Nil(t, m.Consume(c))

	c.Set(sessionKey, "abc")
	m.Add(c, LevelSuccess, "saved")
	m.AddLink(c, LevelWarning, "update the app", "https://www.twilio.com/user/account/apps/AP1")

	msgs := m.Consume(c)
	require.Len(t, msgs, 2)
	assert.Equal(t, LevelSuccess, msgs[0].Level)
	assert.Equal(t, "https://www.twilio.com/user/account/apps/AP1", msgs[1].URL)

	assert.Empty(t, m.Consume(c))
}
