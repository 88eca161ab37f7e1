// Package flash carries one-shot status messages across a redirect.
//
// Each browser gets an opaque session id cookie; messages queued for that id
// are returned and removed by the next page render.
package flash

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jordanlanch/calltracker/pkg/logger"
	"github.com/labstack/echo/v4"
)

// Message levels, matching the dashboard's alert styles
const (
	LevelSuccess = "success"
	LevelWarning = "warning"
	LevelError   = "danger"
)

const (
	// CookieName is the cookie holding the flash session id
	CookieName = "calltracker_session"
	// DefaultTTL bounds how long unread messages are kept
	DefaultTTL = 10 * time.Minute

	sessionKey = "flash_session_id"
)

// Message is one queued flash message. URL, when set, is rendered as a link
// after Text.
type Message struct {
	Level string `json:"level"`
	Text  string `json:"text"`
	URL   string `json:"url,omitempty"`
}

// Store persists queued messages per session
type Store interface {
	Push(ctx context.Context, sessionID string, msg Message) error
	Pop(ctx context.Context, sessionID string) ([]Message, error)
}

// Manager binds a Store to browser sessions
type Manager struct {
	store  Store
	secure bool
	log    logger.Logger
}

// NewManager creates a flash manager. secure marks the session cookie Secure.
func NewManager(store Store, secure bool, log logger.Logger) *Manager {
	return &Manager{
		store:  store,
		secure: secure,
		log:    log.With("component", "flash"),
	}
}

// Middleware makes sure every request has a session id, issuing a cookie
// when the browser has none
func (m *Manager) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := ""
			if cookie, err := c.Cookie(CookieName); err == nil {
				if _, err := uuid.Parse(cookie.Value); err == nil {
					id = cookie.Value
				}
			}

			if id == "" {
				id = uuid.NewString()
				c.SetCookie(&http.Cookie{
					Name:     CookieName,
					Value:    id,
					Path:     "/",
					HttpOnly: true,
					Secure:   m.secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			c.Set(sessionKey, id)
			return next(c)
		}
	}
}

func sessionID(c echo.Context) string {
	id, _ := c.Get(sessionKey).(string)
	return id
}

// Add queues a message for the current session. Failures are logged and
// swallowed so a flash never breaks the request that raised it.
func (m *Manager) Add(c echo.Context, level, text string) {
	m.push(c, Message{Level: level, Text: text})
}

// AddLink queues a message followed by a link
func (m *Manager) AddLink(c echo.Context, level, text, url string) {
	m.push(c, Message{Level: level, Text: text, URL: url})
}

func (m *Manager) push(c echo.Context, msg Message) {
	id := sessionID(c)
	if id == "" {
		m.log.Warn("flash message dropped, no session", "text", msg.Text)
		return
	}
	if err := m.store.Push(c.Request().Context(), id, msg); err != nil {
		m.log.Error("failed to store flash message", "error", err)
	}
}

// Consume returns and clears the messages queued for the current session
func (m *Manager) Consume(c echo.Context) []Message {
	id := sessionID(c)
	if id == "" {
		return nil
	}
	msgs, err := m.store.Pop(c.Request().Context(), id)
	if err != nil {
		m.log.Error("failed to load flash messages", "error", err)
		return nil
	}
	return msgs
}
