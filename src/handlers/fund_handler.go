package handlers

import (
	"net/http"
	"strconv"

	"github.com/username/fundfolio/src/config"
	"github.com/username/fundfolio/src/fundapi"
	"github.com/username/fundfolio/src/models"
	"github.com/username/fundfolio/src/session"
	"github.com/username/fundfolio/src/utils"
	"github.com/username/fundfolio/src/views"
)

type FundHandler struct {
	api      fundapi.Service
	sessions *session.Manager
}

func NewFundHandler(api fundapi.Service, sessions *session.Manager) *FundHandler {
	return &FundHandler{api: api, sessions: sessions}
}

type fundsPageData struct {
	CSRFToken     string
	Funds         []models.Fund
	Notification  string
	PendingDelete *views.DeleteCandidate
}

// HandleFundsPage renders the fund list. The list is fetched fresh on a new
// session mount (or with ?reload=1); after create/delete the in-session copy
// is mutated locally without a re-fetch.
func (h *FundHandler) HandleFundsPage(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Get(w, r)
	sess.Lock()
	defer sess.Unlock()

	if !sess.FundList.Loaded || r.URL.Query().Get("reload") == "1" {
		sess.FundList.Load(r.Context())
	}

	render(w, "funds", fundsPageData{
		CSRFToken:     EnsureCSRFToken(w, r, config.Cfg.CSRFAuthKey),
		Funds:         sess.FundList.Funds,
		Notification:  sess.FundList.Notification,
		PendingDelete: sess.FundList.PendingDelete,
	})
}

// HandleCreateFund submits the add-fund form. Validation failures and
// backend errors surface as notifications on the list page.
func (h *FundHandler) HandleCreateFund(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Get(w, r)
	sess.Lock()
	defer sess.Unlock()

	sess.FundList.SubmitCreate(r.Context(), views.CreateFundForm{
		Name:        r.FormValue("name"),
		GPName:      r.FormValue("gp_name"),
		FundType:    r.FormValue("fund_type"),
		VintageYear: r.FormValue("vintage_year"),
	})
	http.Redirect(w, r, "/funds", http.StatusSeeOther)
}

// HandleRequestDelete opens the delete confirmation prompt for one fund.
func (h *FundHandler) HandleRequestDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	sess := h.sessions.Get(w, r)
	sess.Lock()
	sess.FundList.RequestDelete(id)
	sess.Unlock()
	http.Redirect(w, r, "/funds", http.StatusSeeOther)
}

// HandleConfirmDelete deletes the fund pending confirmation.
func (h *FundHandler) HandleConfirmDelete(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Get(w, r)
	sess.Lock()
	sess.FundList.ConfirmDelete(r.Context())
	sess.Unlock()
	http.Redirect(w, r, "/funds", http.StatusSeeOther)
}

// HandleCancelDelete closes the confirmation prompt, leaving the list as-is.
func (h *FundHandler) HandleCancelDelete(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Get(w, r)
	sess.Lock()
	sess.FundList.CancelDelete()
	sess.Unlock()
	http.Redirect(w, r, "/funds", http.StatusSeeOther)
}

// HandleDismissNotification clears the current notification dialog.
func (h *FundHandler) HandleDismissNotification(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Get(w, r)
	sess.Lock()
	sess.FundList.ClearNotification()
	sess.Unlock()
	http.Redirect(w, r, "/funds", http.StatusSeeOther)
}

type fundDetailPageData struct {
	CSRFToken string
	Detail    *views.FundDetail
	IRR       string
	PIC       string
	DPI       string
	ChartPath string
}

// HandleFundDetailPage renders one fund with its metrics and the cumulative
// cashflow chart. Failure of either fetch yields the not-found state.
func (h *FundHandler) HandleFundDetailPage(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	detail := views.LoadFundDetail(r.Context(), h.api, id)
	data := fundDetailPageData{
		CSRFToken: EnsureCSRFToken(w, r, config.Cfg.CSRFAuthKey),
		Detail:    detail,
	}
	if !detail.NotFound {
		data.IRR = utils.FormatIRR(detail.Metrics.IRR)
		data.PIC = utils.FormatPIC(detail.Metrics.PIC)
		data.DPI = utils.FormatDPI(detail.Metrics.DPI)
		data.ChartPath = buildChartPath(detail.ChartData, 640, 240)
	}
	render(w, "fund_detail", data)
}
