package handlers

import (
	"net/http"
	"strconv"

	"github.com/username/fundfolio/src/config"
	"github.com/username/fundfolio/src/models"
	"github.com/username/fundfolio/src/session"
)

type ChatHandler struct {
	sessions *session.Manager
}

func NewChatHandler(sessions *session.Manager) *ChatHandler {
	return &ChatHandler{sessions: sessions}
}

type chatPageData struct {
	CSRFToken    string
	Messages     []models.ChatMessage
	Funds        []models.Fund
	SelectedFund *int64
	Busy         bool
}

// HandleChatPage renders the chat screen with the session's message log.
func (h *ChatHandler) HandleChatPage(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Get(w, r)
	sess.Lock()
	defer sess.Unlock()

	sess.Chat.LoadFunds(r.Context())
	render(w, "chat", chatPageData{
		CSRFToken:    EnsureCSRFToken(w, r, config.Cfg.CSRFAuthKey),
		Messages:     sess.Chat.Messages,
		Funds:        sess.Chat.Funds,
		SelectedFund: sess.Chat.SelectedFund,
		Busy:         sess.Chat.Busy,
	})
}

// HandleSend submits a chat message, optionally scoped to a fund. Blank
// input appends nothing and triggers no backend call.
func (h *ChatHandler) HandleSend(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Get(w, r)
	sess.Lock()
	defer sess.Unlock()

	if fundID, err := strconv.ParseInt(r.FormValue("fund_id"), 10, 64); err == nil && fundID != 0 {
		sess.Chat.SetFundScope(&fundID)
	} else {
		sess.Chat.SetFundScope(nil)
	}

	sess.Chat.Send(r.Context(), r.FormValue("message"))
	http.Redirect(w, r, "/chat", http.StatusSeeOther)
}
