package handlers

import (
	"net/http"
	"strconv"

	"github.com/username/fundfolio/src/config"
	"github.com/username/fundfolio/src/models"
	"github.com/username/fundfolio/src/session"
)

type DocumentHandler struct {
	sessions *session.Manager
}

func NewDocumentHandler(sessions *session.Manager) *DocumentHandler {
	return &DocumentHandler{sessions: sessions}
}

type documentsPageData struct {
	CSRFToken    string
	Documents    []models.Document
	Funds        []models.Fund
	FundID       *int64
	Notification string
}

// HandleDocumentsPage lists uploaded documents and their parsing status,
// optionally filtered to one fund via ?fund_id=.
func (h *DocumentHandler) HandleDocumentsPage(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Get(w, r)
	sess.Lock()
	defer sess.Unlock()

	var fundID *int64
	if raw := r.URL.Query().Get("fund_id"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			fundID = &id
		}
	}
	sess.Documents.Load(r.Context(), fundID)
	sess.Upload.LoadFunds(r.Context())

	render(w, "documents", documentsPageData{
		CSRFToken:    EnsureCSRFToken(w, r, config.Cfg.CSRFAuthKey),
		Documents:    sess.Documents.Documents,
		Funds:        sess.Upload.Funds,
		FundID:       sess.Documents.FundID,
		Notification: sess.Documents.Notification,
	})
}

// HandleDeleteDocument removes one document.
func (h *DocumentHandler) HandleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	sess := h.sessions.Get(w, r)
	sess.Lock()
	sess.Documents.Delete(r.Context(), id)
	sess.Unlock()
	http.Redirect(w, r, "/documents", http.StatusSeeOther)
}
