package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/username/fundfolio/src/cashflow"
	"github.com/username/fundfolio/src/config"
	"github.com/username/fundfolio/src/logger"
	"github.com/username/fundfolio/src/models"
	"github.com/username/fundfolio/src/session"
	"github.com/username/fundfolio/src/utils"
)

type TransactionHandler struct {
	sessions *session.Manager
}

func NewTransactionHandler(sessions *session.Manager) *TransactionHandler {
	return &TransactionHandler{sessions: sessions}
}

type dashboardPageData struct {
	CSRFToken      string
	Funds          []models.Fund
	SelectedFundID int64
	Loading        bool
	Progress       int
	Buckets        cashflow.Buckets
}

// HandleDashboard renders the home page with the transaction history
// section. The first visit loads the fund list and auto-selects the first
// fund.
func (h *TransactionHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Get(w, r)
	sess.Transactions.Init(r.Context())

	render(w, "home", dashboardPageData{
		CSRFToken:      EnsureCSRFToken(w, r, config.Cfg.CSRFAuthKey),
		Funds:          sess.Transactions.Funds(),
		SelectedFundID: sess.Transactions.SelectedFundID(),
		Loading:        sess.Transactions.Loading(),
		Progress:       sess.Transactions.Progress(),
		Buckets:        sess.Transactions.Buckets(),
	})
}

// HandleSelectFund switches the selected fund and kicks off its transaction
// load in the background.
func (h *TransactionHandler) HandleSelectFund(w http.ResponseWriter, r *http.Request) {
	fundID, err := strconv.ParseInt(r.FormValue("fund_id"), 10, 64)
	if err != nil {
		utils.SendJSONError(w, "invalid fund_id", http.StatusBadRequest)
		return
	}

	sess := h.sessions.Get(w, r)
	sess.Transactions.SelectFund(fundID)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// HandleProgress reports the synthetic loading progress as JSON so the page
// can poll while a transaction load is outstanding.
func (h *TransactionHandler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Get(w, r)
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(map[string]interface{}{
		"progress": sess.Transactions.Progress(),
		"loading":  sess.Transactions.Loading(),
	})
	if err != nil {
		logger.L.Error("Error encoding progress response", "error", err)
	}
}
