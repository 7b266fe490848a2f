package session

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/username/fundfolio/src/fundapi"
	"github.com/username/fundfolio/src/logger"
	"github.com/username/fundfolio/src/views"
)

const CookieName = "fundfolio_session"

// Session owns one browser's view state. All of it lives in memory only;
// nothing survives a server restart or session expiry.
type Session struct {
	ID string
	mu sync.Mutex

	FundList     *views.FundListView
	Transactions *views.TransactionsView
	Upload       *views.UploadView
	Chat         *views.ChatView
	Documents    *views.DocumentsView
}

// Lock serializes handler access to the session's views. Views are
// exclusively owned by their session; there is no cross-session sharing.
func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

// Manager hands out cookie-keyed sessions backed by an expiring in-memory
// store.
type Manager struct {
	store *cache.Cache
	api   fundapi.Service
	ttl   time.Duration
}

func NewManager(api fundapi.Service, ttl, cleanupInterval time.Duration) *Manager {
	return &Manager{
		store: cache.New(ttl, cleanupInterval),
		api:   api,
		ttl:   ttl,
	}
}

// Get returns the request's session, creating it (and setting the cookie)
// when absent or expired. Each access refreshes the session's TTL.
func (m *Manager) Get(w http.ResponseWriter, r *http.Request) *Session {
	if cookie, err := r.Cookie(CookieName); err == nil {
		if cached, found := m.store.Get(cookie.Value); found {
			sess := cached.(*Session)
			m.store.Set(sess.ID, sess, m.ttl)
			return sess
		}
	}

	sess := m.newSession()
	m.store.Set(sess.ID, sess, m.ttl)
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    sess.ID,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
		HttpOnly: true,
	})
	logger.L.Debug("New session created", "sessionID", sess.ID)
	return sess
}

func (m *Manager) newSession() *Session {
	return &Session{
		ID:           uuid.NewString(),
		FundList:     views.NewFundListView(m.api),
		Transactions: views.NewTransactionsView(m.api),
		Upload:       views.NewUploadView(m.api),
		Chat:         views.NewChatView(m.api),
		Documents:    views.NewDocumentsView(m.api),
	}
}
