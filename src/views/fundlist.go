package views

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/username/fundfolio/src/fundapi"
	"github.com/username/fundfolio/src/logger"
	"github.com/username/fundfolio/src/models"
)

// User-facing notification strings of the fund list screen.
const (
	msgFetchFundsFailed = "Failed to fetch fund data."
	msgNameRequired     = "Fund name is required!"
	msgCreateFailed     = "Failed to create a new fund."
)

// CreateFundForm carries the raw form inputs of the "Add Fund" dialog.
type CreateFundForm struct {
	Name        string
	GPName      string
	FundType    string
	VintageYear string
}

// DeleteCandidate names the fund awaiting deletion confirmation.
type DeleteCandidate struct {
	ID   int64
	Name string
}

// FundListView owns the fund list screen: the in-memory fund list, the
// current notification and the pending delete confirmation. List mutations
// after create/delete are purely local; the list is not re-fetched.
type FundListView struct {
	api fundapi.Service

	Funds         []models.Fund
	Loaded        bool
	Notification  string
	PendingDelete *DeleteCandidate
}

func NewFundListView(api fundapi.Service) *FundListView {
	return &FundListView{api: api, Funds: []models.Fund{}}
}

// Load fetches the fund list. On failure the list stays empty and a
// notification is raised; the view is still considered loaded.
func (v *FundListView) Load(ctx context.Context) {
	funds, err := v.api.ListFunds(ctx)
	if err != nil {
		logger.L.Warn("Failed to fetch funds", "error", err)
		v.Funds = []models.Fund{}
		v.Notification = msgFetchFundsFailed
		v.Loaded = true
		return
	}
	if funds == nil {
		funds = []models.Fund{}
	}
	v.Funds = funds
	v.Loaded = true
}

// SubmitCreate validates and submits the create form. A blank name never
// reaches the backend. Returns true when the fund was created (the dialog
// may close); false leaves the form open.
func (v *FundListView) SubmitCreate(ctx context.Context, form CreateFundForm) bool {
	if strings.TrimSpace(form.Name) == "" {
		v.Notification = msgNameRequired
		return false
	}

	payload := fundapi.CreateFundPayload{Name: form.Name}
	if form.GPName != "" {
		gp := form.GPName
		payload.GPName = &gp
	}
	if form.FundType != "" {
		ft := form.FundType
		payload.FundType = &ft
	}
	if form.VintageYear != "" {
		if year, err := strconv.Atoi(strings.TrimSpace(form.VintageYear)); err == nil {
			payload.VintageYear = &year
		}
	}

	fund, err := v.api.CreateFund(ctx, payload)
	if err != nil {
		logger.L.Warn("Failed to create fund", "name", form.Name, "error", err)
		v.Notification = msgCreateFailed
		return false
	}

	v.Funds = append(v.Funds, *fund)
	v.Notification = fmt.Sprintf("Fund %q has been successfully created!", fund.Name)
	return true
}

// RequestDelete opens the confirmation prompt for the named fund.
func (v *FundListView) RequestDelete(id int64) {
	for _, f := range v.Funds {
		if f.ID == id {
			v.PendingDelete = &DeleteCandidate{ID: f.ID, Name: f.Name}
			return
		}
	}
}

// CancelDelete closes the confirmation prompt, leaving the list unchanged.
func (v *FundListView) CancelDelete() {
	v.PendingDelete = nil
}

// ConfirmDelete deletes the pending fund. The confirmation prompt is always
// closed afterward regardless of outcome; on success exactly that fund is
// removed from the local list.
func (v *FundListView) ConfirmDelete(ctx context.Context) {
	if v.PendingDelete == nil {
		return
	}
	candidate := *v.PendingDelete
	defer func() { v.PendingDelete = nil }()

	if _, err := v.api.DeleteFund(ctx, candidate.ID); err != nil {
		logger.L.Warn("Failed to delete fund", "fundID", candidate.ID, "error", err)
		v.Notification = fmt.Sprintf("Failed to delete fund %q.", candidate.Name)
		return
	}

	kept := v.Funds[:0]
	for _, f := range v.Funds {
		if f.ID != candidate.ID {
			kept = append(kept, f)
		}
	}
	v.Funds = kept
	v.Notification = fmt.Sprintf("Fund %q has been deleted successfully.", candidate.Name)
}

// ClearNotification dismisses the current notification.
func (v *FundListView) ClearNotification() {
	v.Notification = ""
}
