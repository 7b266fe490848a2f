package views

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/username/fundfolio/src/models"
)

func waitForLoad(t *testing.T, v *TransactionsView) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if !v.Loading() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("transaction load did not complete in time")
}

func TestTransactionsInitAutoSelectsFirstFund(t *testing.T) {
	var loadedFund int64
	api := &stubAPI{
		listFunds: func(ctx context.Context) ([]models.Fund, error) {
			return []models.Fund{{ID: 7, Name: "Alpha"}, {ID: 8, Name: "Beta"}}, nil
		},
		getAllTransactions: func(ctx context.Context, fundID int64) ([]models.Transaction, error) {
			loadedFund = fundID
			return []models.Transaction{
				{ID: 1, Source: models.SourceCapitalCall},
				{ID: 2, Source: models.SourceDistribution},
				{ID: 3, Source: models.SourceAdjustment},
				{ID: 4, Source: "unknown"},
			}, nil
		},
	}
	v := NewTransactionsView(api)
	v.Init(context.Background())
	waitForLoad(t, v)

	if v.SelectedFundID() != 7 {
		t.Fatalf("expected first fund auto-selected, got %d", v.SelectedFundID())
	}
	if loadedFund != 7 {
		t.Fatalf("expected transactions loaded for fund 7, got %d", loadedFund)
	}

	b := v.Buckets()
	if len(b.CapitalCalls) != 1 || len(b.Distributions) != 1 || len(b.Adjustments) != 1 {
		t.Fatalf("expected buckets 1,1,1, got %d,%d,%d",
			len(b.CapitalCalls), len(b.Distributions), len(b.Adjustments))
	}
	if v.Progress() != 100 {
		t.Fatalf("expected progress pinned at 100, got %d", v.Progress())
	}
}

func TestTransactionsInitWithNoFunds(t *testing.T) {
	api := &stubAPI{
		listFunds: func(ctx context.Context) ([]models.Fund, error) {
			return []models.Fund{}, nil
		},
	}
	v := NewTransactionsView(api)
	v.Init(context.Background())

	if v.Loading() {
		t.Fatalf("no fund means nothing to load")
	}
	if v.SelectedFundID() != 0 {
		t.Fatalf("expected no selection, got %d", v.SelectedFundID())
	}
}

func TestTransactionsFetchFailureYieldsEmptyBuckets(t *testing.T) {
	api := &stubAPI{
		getAllTransactions: func(ctx context.Context, fundID int64) ([]models.Transaction, error) {
			return nil, errors.New("backend down")
		},
	}
	v := NewTransactionsView(api)
	v.SelectFund(3)
	waitForLoad(t, v)

	b := v.Buckets()
	if len(b.CapitalCalls)+len(b.Distributions)+len(b.Adjustments) != 0 {
		t.Fatalf("expected empty buckets after a failed load")
	}
	if v.Progress() != 100 {
		t.Fatalf("expected progress to finish even on failure, got %d", v.Progress())
	}
}

func TestTransactionsInitRunsOnce(t *testing.T) {
	calls := 0
	api := &stubAPI{
		listFunds: func(ctx context.Context) ([]models.Fund, error) {
			calls++
			return []models.Fund{}, nil
		},
	}
	v := NewTransactionsView(api)
	v.Init(context.Background())
	v.Init(context.Background())
	if calls != 1 {
		t.Fatalf("init must load the fund list once, got %d calls", calls)
	}
}

func TestProgressTrackerStepsAndCaps(t *testing.T) {
	p := NewProgressTracker()
	p.Start()

	time.Sleep(350 * time.Millisecond)
	mid := p.Value()
	if mid <= 0 {
		t.Fatalf("expected progress to advance, got %d", mid)
	}
	if mid > 90 {
		t.Fatalf("progress must not exceed 90 while outstanding, got %d", mid)
	}

	// Even well past the ceiling the value stays capped.
	time.Sleep(700 * time.Millisecond)
	if v := p.Value(); v > 90 {
		t.Fatalf("progress must cap at 90, got %d", v)
	}

	p.Finish()
	if v := p.Value(); v != 100 {
		t.Fatalf("expected 100 on completion, got %d", v)
	}
}

func TestProgressTrackerRestarts(t *testing.T) {
	p := NewProgressTracker()
	p.Start()
	p.Finish()
	if p.Value() != 100 {
		t.Fatalf("expected 100 after finish")
	}

	p.Start()
	if v := p.Value(); v != 0 {
		t.Fatalf("restart must reset to 0, got %d", v)
	}
	p.Finish()
}
