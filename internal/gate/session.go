package gate

import (
	"net/http"
	"sync"

	"github.com/google/uuid"
)

// SessionCookie names the cookie carrying the viewer's session ID.
const SessionCookie = "archfolio_session"

// SessionStore tracks the authorization flag of each viewer session.
// Sessions live in memory and end with the process; there is no expiry
// and no revocation. One boolean per session is the whole state.
type SessionStore struct {
	mu     sync.RWMutex
	authed map[string]bool
}

// NewSessionStore returns an empty session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{authed: make(map[string]bool)}
}

// Begin issues a new session ID and sets its cookie on the response.
func (s *SessionStore) Begin(w http.ResponseWriter) string {
	id := uuid.NewString()

	s.mu.Lock()
	s.authed[id] = false
	s.mu.Unlock()

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// SetAuthorized records a verification outcome for the session.
func (s *SessionStore) SetAuthorized(id string, ok bool) {
	if id == "" {
		return
	}
	s.mu.Lock()
	s.authed[id] = ok
	s.mu.Unlock()
}

// Authorized reports whether the session has verified successfully.
// Unknown IDs are simply unauthorized.
func (s *SessionStore) Authorized(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authed[id]
}

// sessionID extracts the session ID from the request cookie, or "".
func sessionID(r *http.Request) string {
	c, err := r.Cookie(SessionCookie)
	if err != nil {
		return ""
	}
	return c.Value
}
