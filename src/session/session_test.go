package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestGetMintsAndReusesSession(t *testing.T) {
	m := NewManager(nil, time.Minute, time.Minute)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	sess := m.Get(w, r)
	if sess == nil || sess.ID == "" {
		t.Fatalf("expected a new session with an id")
	}

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == CookieName {
			cookie = c
		}
	}
	if cookie == nil {
		t.Fatalf("expected the %s cookie to be set", CookieName)
	}
	if cookie.Value != sess.ID {
		t.Fatalf("cookie must carry the session id")
	}

	// A request carrying the cookie gets the same session back.
	r2 := httptest.NewRequest(http.MethodGet, "/", nil)
	r2.AddCookie(cookie)
	again := m.Get(httptest.NewRecorder(), r2)
	if again != sess {
		t.Fatalf("expected the same session for the same cookie")
	}
}

func TestSessionsDoNotShareViewState(t *testing.T) {
	m := NewManager(nil, time.Minute, time.Minute)

	a := m.Get(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	b := m.Get(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if a == b {
		t.Fatalf("requests without a cookie must get distinct sessions")
	}

	a.FundList.Notification = "only for a"
	if b.FundList.Notification != "" {
		t.Fatalf("view state leaked between sessions")
	}
	if a.Chat == b.Chat || a.Upload == b.Upload || a.Transactions == b.Transactions {
		t.Fatalf("each session must own its view instances")
	}
}

func TestExpiredSessionIsReplaced(t *testing.T) {
	m := NewManager(nil, 10*time.Millisecond, time.Minute)

	w := httptest.NewRecorder()
	first := m.Get(w, httptest.NewRequest(http.MethodGet, "/", nil))

	var cookie *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == CookieName {
			cookie = c
		}
	}
	time.Sleep(30 * time.Millisecond)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(cookie)
	replacement := m.Get(httptest.NewRecorder(), r)
	if replacement == first {
		t.Fatalf("expired session must not be reused")
	}
	if replacement.ID == first.ID {
		t.Fatalf("replacement session must get a fresh id")
	}
}
