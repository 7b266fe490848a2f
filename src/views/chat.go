package views

import (
	"context"
	"strings"

	"github.com/username/fundfolio/src/fundapi"
	"github.com/username/fundfolio/src/logger"
	"github.com/username/fundfolio/src/models"
)

const (
	chatGreeting   = "Hello! How can I assist you today?"
	chatNoResponse = "No response from the server."
	chatErrorReply = "An error occurred while processing your message."
)

// ChatView owns the chat screen: an append-only in-memory message log, the
// optional fund scope and the busy flag. The log is not persisted across
// sessions.
type ChatView struct {
	api fundapi.Service

	Messages     []models.ChatMessage
	Funds        []models.Fund
	SelectedFund *int64
	Busy         bool
	fundsLoaded  bool
}

func NewChatView(api fundapi.Service) *ChatView {
	return &ChatView{
		api:      api,
		Messages: []models.ChatMessage{{Sender: models.SenderBot, Text: chatGreeting}},
	}
}

// LoadFunds fills the scoping selector once. Failures leave it empty.
func (v *ChatView) LoadFunds(ctx context.Context) {
	if v.fundsLoaded {
		return
	}
	v.fundsLoaded = true
	funds, err := v.api.ListFunds(ctx)
	if err != nil {
		logger.L.Warn("Failed to load funds for chat view", "error", err)
		v.Funds = []models.Fund{}
		return
	}
	v.Funds = funds
}

// SetFundScope selects the fund the next queries are scoped to; nil scopes
// them globally.
func (v *ChatView) SetFundScope(fundID *int64) {
	v.SelectedFund = fundID
}

// Send submits a user message. Blank input is ignored entirely. The user's
// message is echoed into the log before the backend is consulted; the reply
// falls back from answer to message to a fixed string, and failures become a
// fixed bot-authored error line instead of surfacing the raw error.
func (v *ChatView) Send(ctx context.Context, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}

	v.Messages = append(v.Messages, models.ChatMessage{Sender: models.SenderUser, Text: text})
	v.Busy = true
	defer func() { v.Busy = false }()

	reply, err := v.api.SendChatMessage(ctx, text, v.SelectedFund)
	if err != nil {
		logger.L.Warn("Chat query failed", "error", err)
		v.Messages = append(v.Messages, models.ChatMessage{Sender: models.SenderBot, Text: chatErrorReply})
		return
	}

	botText := reply.Answer
	if botText == "" {
		botText = reply.Message
	}
	if botText == "" {
		botText = chatNoResponse
	}
	v.Messages = append(v.Messages, models.ChatMessage{Sender: models.SenderBot, Text: botText})
}
