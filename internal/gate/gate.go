package gate

import (
	_ "embed"
	"errors"
	"html/template"
	"log"
	"net/http"
)

// Gate wires the verifier and session store into HTTP handling: a
// middleware protecting the portfolio routes, and the unlock endpoint.
type Gate struct {
	verifier *Verifier
	sessions *SessionStore
	title    string
	hint     string
}

// New creates a Gate around the given verifier. title and hint are shown
// on the lock page; the hint tells viewers where to find the code.
func New(v *Verifier, title, hint string) *Gate {
	return &Gate{
		verifier: v,
		sessions: NewSessionStore(),
		title:    title,
		hint:     hint,
	}
}

// Sessions exposes the session store, mainly for tests and diagnostics.
func (g *Gate) Sessions() *SessionStore { return g.sessions }

// RequireAuth lets authorized sessions through. Unverified requests may
// carry a `code` query parameter, which goes through the exact same
// verification path as the unlock form; on success the viewer is
// redirected to the same URL with the code stripped so it does not
// linger in the address bar. Everything else gets the lock page.
func (g *Gate) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if g.sessions.Authorized(sessionID(r)) {
			next.ServeHTTP(w, r)
			return
		}

		if code := r.URL.Query().Get("code"); code != "" {
			if g.verify(w, r, code) {
				q := r.URL.Query()
				q.Del("code")
				u := *r.URL
				u.RawQuery = q.Encode()
				http.Redirect(w, r, u.String(), http.StatusSeeOther)
				return
			}
			g.lockPage(w, lockState{Message: "Wrong code"})
			return
		}

		g.lockPage(w, lockState{})
	})
}

// HandleUnlock verifies the submitted form code and records the outcome
// on the session. The rejection message never says which comparison ran.
func (g *Gate) HandleUnlock(w http.ResponseWriter, r *http.Request) {
	code := r.FormValue("code")
	if g.verify(w, r, code) {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	msg := "Wrong code"
	if !g.verifier.Configured() {
		msg = "No access code configured. Set ACCESS_CODE or ACCESS_CODE_HASH."
	}
	g.lockPage(w, lockState{Message: msg})
}

// verify runs one code through the verifier and stores the outcome on
// the viewer's session, creating the session if needed. This is the only
// verification path; the form and the query parameter both land here.
func (g *Gate) verify(w http.ResponseWriter, r *http.Request, code string) bool {
	id := sessionID(r)
	if id == "" {
		id = g.sessions.Begin(w)
	}

	ok, err := g.verifier.Verify(code)
	if err != nil {
		if errors.Is(err, ErrNotConfigured) {
			log.Printf("access gate: %v", err)
		}
		ok = false
	}
	g.sessions.SetAuthorized(id, ok)
	return ok
}

// lockState feeds the lock page template.
type lockState struct {
	Message string
}

//go:embed lock.html
var lockHTML string

var lockTmpl = template.Must(template.New("lock").Parse(lockHTML))

func (g *Gate) lockPage(w http.ResponseWriter, state lockState) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusUnauthorized)

	data := struct {
		Title   string
		Hint    string
		Message string
	}{Title: g.title, Hint: g.hint, Message: state.Message}

	if err := lockTmpl.Execute(w, data); err != nil {
		log.Printf("rendering lock page: %v", err)
	}
}
