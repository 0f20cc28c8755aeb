// package auth provides the cookie-backed session, its one-shot flash queue, and login throttling
package auth

import (
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
)

const userIDKey = "user_id"

// Store loads and saves [Session] values in a signed cookie.
type Store struct {
	store sessions.Store
	name  string
}

// NewStore creates a cookie-backed [Store] signed with secret.
//
// maxAge is in seconds. Cookies are HttpOnly and SameSite=Lax.
func NewStore(secret, name string, maxAge int) *Store {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Store{store: store, name: name}
}

// Load returns the request's session.
//
// A cookie that fails verification yields a fresh session together with the decode error,
// so callers can log it and carry on as logged out.
func (s *Store) Load(r *http.Request) (*Session, error) {
	raw, err := s.store.Get(r, s.name)
	if raw == nil {
		raw = sessions.NewSession(s.store, s.name)
	}
	if err != nil {
		return &Session{raw: raw}, fmt.Errorf("failed to decode session: %w", err)
	}
	return &Session{raw: raw}, nil
}

// Session is the per-request view of the session cookie.
type Session struct {
	raw *sessions.Session
}

// UserID returns the logged in user's id.
func (s *Session) UserID() (int64, bool) {
	id, ok := s.raw.Values[userIDKey].(int64)
	return id, ok
}

// Authenticated reports whether a user is bound to the session.
func (s *Session) Authenticated() bool {
	_, ok := s.UserID()
	return ok
}

// Login binds the session to userID.
func (s *Session) Login(userID int64) {
	s.raw.Values[userIDKey] = userID
}

// Logout unbinds the user. Pending flashes are kept so the next page can show them.
func (s *Session) Logout() {
	delete(s.raw.Values, userIDKey)
}

// Flash queues a message for the next rendered page.
func (s *Session) Flash(msg string) {
	s.raw.AddFlash(msg)
}

// Flashes drains the queue. The session must be saved for the removal to stick.
func (s *Session) Flashes() []string {
	var out []string
	for _, f := range s.raw.Flashes() {
		if msg, ok := f.(string); ok {
			out = append(out, msg)
		}
	}
	return out
}

// Save writes the session cookie. It must be called before the response body is written.
func (s *Session) Save(r *http.Request, w http.ResponseWriter) error {
	if err := s.raw.Save(r, w); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}
