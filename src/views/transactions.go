package views

import (
	"context"
	"sync"

	"github.com/username/fundfolio/src/cashflow"
	"github.com/username/fundfolio/src/fundapi"
	"github.com/username/fundfolio/src/logger"
	"github.com/username/fundfolio/src/models"
)

// TransactionsView owns the transaction-history screen: the fund selector,
// the three source buckets and the synthetic progress bar.
type TransactionsView struct {
	api      fundapi.Service
	progress *ProgressTracker

	mu             sync.Mutex
	funds          []models.Fund
	selectedFundID int64
	buckets        cashflow.Buckets
	loading        bool
	initialized    bool
}

func NewTransactionsView(api fundapi.Service) *TransactionsView {
	return &TransactionsView{
		api:      api,
		progress: NewProgressTracker(),
		buckets:  cashflow.Partition(nil),
	}
}

// Init loads the fund list and auto-selects the first fund, kicking off its
// transaction load. A failed fund fetch leaves the selector empty.
func (v *TransactionsView) Init(ctx context.Context) {
	v.mu.Lock()
	if v.initialized {
		v.mu.Unlock()
		return
	}
	v.initialized = true
	v.mu.Unlock()

	funds, err := v.api.ListFunds(ctx)
	if err != nil {
		logger.L.Warn("Failed to fetch funds for transaction view", "error", err)
		return
	}

	v.mu.Lock()
	v.funds = funds
	v.mu.Unlock()

	if len(funds) > 0 {
		v.SelectFund(funds[0].ID)
	}
}

// SelectFund switches the selected fund and starts loading its transactions
// in the background. An in-flight load for a previously selected fund is not
// cancelled; a stale response may overwrite a newer selection's buckets
// (inherited behavior, no request-id fencing).
func (v *TransactionsView) SelectFund(fundID int64) {
	v.mu.Lock()
	v.selectedFundID = fundID
	v.loading = true
	v.mu.Unlock()

	v.progress.Start()

	go func() {
		// The load deliberately outlives the originating request and is
		// never cancelled.
		transactions, err := v.api.GetAllTransactions(context.Background(), fundID)
		if err != nil {
			logger.L.Warn("Error fetching transactions", "fundID", fundID, "error", err)
			transactions = []models.Transaction{}
		}

		v.mu.Lock()
		v.buckets = cashflow.Partition(transactions)
		v.loading = false
		v.mu.Unlock()

		v.progress.Finish()
	}()
}

func (v *TransactionsView) Funds() []models.Fund {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.funds
}

func (v *TransactionsView) SelectedFundID() int64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.selectedFundID
}

func (v *TransactionsView) Buckets() cashflow.Buckets {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.buckets
}

func (v *TransactionsView) Loading() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.loading
}

func (v *TransactionsView) Progress() int {
	return v.progress.Value()
}
