// Package sessions holds the transient per-browser-session identity and UI
// state: logged-in flag, current email and display name, admin flag, and the
// submission form visibility toggle. Nothing here is persisted server-side;
// state lives in a signed cookie and dies with it.
package sessions

import (
	"context"
	"net/http"

	gsessions "github.com/gorilla/sessions"
)

const sessionName = "heritage_session"

// Session is the explicit per-session state object handed to handlers.
type Session struct {
	LoggedIn bool   `json:"logged_in"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	IsAdmin  bool   `json:"is_admin"`
	ShowForm bool   `json:"show_form"`
}

// Manager wraps a cookie store and translates between cookies and Session
// values.
type Manager struct {
	store *gsessions.CookieStore
}

// NewManager creates a Manager signing cookies with the given secret.
func NewManager(secretKey string, maxAgeSecond int) *Manager {
	store := gsessions.NewCookieStore([]byte(secretKey))
	store.MaxAge(maxAgeSecond)
	store.Options.Path = "/"
	store.Options.HttpOnly = true
	store.Options.Secure = false
	return &Manager{store: store}
}

// Load decodes the request's session cookie. A missing or undecodable cookie
// yields a fresh anonymous session.
func (m *Manager) Load(r *http.Request) *Session {
	cs, err := m.store.Get(r, sessionName)
	if err != nil {
		return &Session{}
	}

	s := &Session{}
	s.LoggedIn, _ = cs.Values["logged_in"].(bool)
	s.Email, _ = cs.Values["email"].(string)
	s.Name, _ = cs.Values["name"].(string)
	s.IsAdmin, _ = cs.Values["is_admin"].(bool)
	s.ShowForm, _ = cs.Values["show_form"].(bool)
	return s
}

// Save writes the session state back into the response cookie.
func (m *Manager) Save(w http.ResponseWriter, r *http.Request, s *Session) error {
	cs, _ := m.store.Get(r, sessionName)
	cs.Values["logged_in"] = s.LoggedIn
	cs.Values["email"] = s.Email
	cs.Values["name"] = s.Name
	cs.Values["is_admin"] = s.IsAdmin
	cs.Values["show_form"] = s.ShowForm
	return cs.Save(r, w)
}

// Clear drops all session state, returning the client to anonymous.
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) error {
	cs, _ := m.store.Get(r, sessionName)
	cs.Values = map[any]any{}
	cs.Options.MaxAge = -1
	return cs.Save(r, w)
}

type ctxKey struct{}

// NewContext returns a context carrying the session.
func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext extracts the session placed by the auth middleware.
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(*Session)
	return s, ok
}
