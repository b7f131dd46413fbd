package gate

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

// setupGate builds a gate with a plaintext secret and a protected route.
func setupGate(t *testing.T) (*Gate, chi.Router) {
	t.Helper()

	g := New(NewVerifier("", "open-sesame"), "Test Portfolio", "see resume")

	r := chi.NewRouter()
	r.Post("/unlock", g.HandleUnlock)
	r.Group(func(r chi.Router) {
		r.Use(g.RequireAuth)
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("portfolio"))
		})
	})
	return g, r
}

// sessionCookie pulls the session cookie out of a recorded response.
func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range w.Result().Cookies() {
		if c.Name == SessionCookie {
			return c
		}
	}
	t.Fatal("no session cookie set")
	return nil
}

func TestLockPageShownWithoutSession(t *testing.T) {
	_, r := setupGate(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Enter access code") {
		t.Error("lock page not rendered")
	}
	if strings.Contains(w.Body.String(), "portfolio") {
		t.Error("protected content leaked to unauthorized request")
	}
}

func TestUnlockFlow(t *testing.T) {
	_, r := setupGate(t)

	// Wrong code: rejected, session flag stays false.
	form := url.Values{"code": {"nope"}}
	req := httptest.NewRequest(http.MethodPost, "/unlock", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong code, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Wrong code") {
		t.Error("rejection message missing")
	}
	rejected := sessionCookie(t, w)

	// The rejected session must not pass the middleware.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(rejected)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("rejected session passed the gate: %d", w.Code)
	}

	// Correct code: redirect home, session authorized.
	form = url.Values{"code": {"open-sesame"}}
	req = httptest.NewRequest(http.MethodPost, "/unlock", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 after unlock, got %d", w.Code)
	}
	authed := sessionCookie(t, w)

	// The authorized session passes without re-submitting the code.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(authed)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK || w.Body.String() != "portfolio" {
		t.Errorf("authorized session blocked: %d %q", w.Code, w.Body.String())
	}
}

func TestQueryParamCode(t *testing.T) {
	g, r := setupGate(t)

	// A correct code in the URL verifies through the same path and
	// redirects to the URL without the code.
	req := httptest.NewRequest(http.MethodGet, "/?code=open-sesame", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); strings.Contains(loc, "code=") {
		t.Errorf("redirect still carries the code: %q", loc)
	}

	c := sessionCookie(t, w)
	if !g.Sessions().Authorized(c.Value) {
		t.Error("query-param verification did not authorize the session")
	}

	// A wrong code in the URL gets the lock page.
	req = httptest.NewRequest(http.MethodGet, "/?code=nope", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for wrong query code, got %d", w.Code)
	}
}

func TestUnconfiguredFailsClosed(t *testing.T) {
	g := New(NewVerifier("", ""), "Test", "")

	r := chi.NewRouter()
	r.Post("/unlock", g.HandleUnlock)

	form := url.Values{"code": {"anything"}}
	req := httptest.NewRequest(http.MethodPost, "/unlock", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 when unconfigured, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "No access code configured") {
		t.Error("operator-visible configuration message missing")
	}
}

func TestSessionStore(t *testing.T) {
	s := NewSessionStore()

	w := httptest.NewRecorder()
	id := s.Begin(w)
	if id == "" {
		t.Fatal("Begin returned empty ID")
	}
	if s.Authorized(id) {
		t.Error("fresh session already authorized")
	}

	s.SetAuthorized(id, true)
	if !s.Authorized(id) {
		t.Error("authorization flag not persisted")
	}

	if s.Authorized("unknown-id") {
		t.Error("unknown session reported authorized")
	}
}
