package session

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const browserIDKey = "browser_id"

// Manager issues the signed cookie that identifies a browser. The cart
// storage is scoped by the id it carries.
type Manager struct {
	store *sessions.CookieStore
	name  string
}

func NewManager(secret []byte, name string, secure bool) *Manager {
	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 365,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{store: store, name: name}
}

// BrowserID returns the id stored in the request cookie, issuing a new one
// (and setting the cookie on w) when absent. A cookie that fails signature
// checks is replaced.
func (m *Manager) BrowserID(w http.ResponseWriter, r *http.Request) (string, error) {
	sess, err := m.store.Get(r, m.name)
	if err != nil {
		// tampered or rotated secret; gorilla still hands back a fresh session
		sess, err = m.store.New(r, m.name)
		if sess == nil {
			return "", fmt.Errorf("session new failed: %w", err)
		}
	}
	if id, ok := sess.Values[browserIDKey].(string); ok && id != "" {
		return id, nil
	}

	id := uuid.NewString()
	sess.Values[browserIDKey] = id
	if err := sess.Save(r, w); err != nil {
		return "", fmt.Errorf("session save failed: %w", err)
	}
	return id, nil
}
