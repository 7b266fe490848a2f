package views

import (
	"context"
	"sync"

	"github.com/username/fundfolio/src/cashflow"
	"github.com/username/fundfolio/src/fundapi"
	"github.com/username/fundfolio/src/logger"
	"github.com/username/fundfolio/src/models"
)

// FundDetail is the ephemeral state of one detail-view render: the fund, its
// metric ratios and the derived cumulative cashflow series.
type FundDetail struct {
	Fund      *models.Fund
	Metrics   models.Metrics
	ChartData []models.ChartPoint
	NotFound  bool
}

// LoadFundDetail fetches the fund record and its metrics bundle
// concurrently. Failure of either fetch yields the not-found state.
func LoadFundDetail(ctx context.Context, api fundapi.Service, fundID int64) *FundDetail {
	var (
		wg         sync.WaitGroup
		fund       *models.Fund
		metrics    *models.MetricsResponse
		fundErr    error
		metricsErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		fund, fundErr = api.GetFund(ctx, fundID)
	}()
	go func() {
		defer wg.Done()
		metrics, metricsErr = api.GetFundMetrics(ctx, fundID)
	}()
	wg.Wait()

	if fundErr != nil || metricsErr != nil {
		logger.L.Warn("Failed to fetch fund data",
			"fundID", fundID, "fundError", fundErr, "metricsError", metricsErr)
		return &FundDetail{NotFound: true}
	}

	return &FundDetail{
		Fund:      fund,
		Metrics:   metrics.Metrics,
		ChartData: cashflow.BuildChartSeries(metrics),
	}
}
