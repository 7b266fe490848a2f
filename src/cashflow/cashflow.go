package cashflow

import (
	"math"
	"sort"
	"time"

	"github.com/username/fundfolio/src/models"
)

// Labels used when a cash-flow event carries no type of its own.
const (
	LabelCapitalCall  = "Capital Call"
	LabelDistribution = "Distribution"
	LabelAdjustment   = "Adjustment"
)

type taggedEvent struct {
	date   string
	label  string
	amount float64
}

// BuildChartSeries merges a fund's capital calls, distributions and
// adjustments into one chronologically ordered cumulative series. Capital
// call amounts are negated, distribution amounts are taken as positive
// magnitudes, adjustments are kept as-is. The merged sequence must be sorted
// ascending by date before the fold, otherwise the running total is
// meaningless.
func BuildChartSeries(resp *models.MetricsResponse) []models.ChartPoint {
	if resp == nil {
		return []models.ChartPoint{}
	}

	merged := make([]taggedEvent, 0, len(resp.CapitalCalls)+len(resp.Distributions)+len(resp.Adjustments))
	for _, ev := range resp.CapitalCalls {
		merged = append(merged, taggedEvent{
			date:   ev.Date,
			label:  labelOr(ev.Type, LabelCapitalCall),
			amount: -math.Abs(ev.Amount),
		})
	}
	for _, ev := range resp.Distributions {
		merged = append(merged, taggedEvent{
			date:   ev.Date,
			label:  labelOr(ev.Type, LabelDistribution),
			amount: math.Abs(ev.Amount),
		})
	}
	for _, ev := range resp.Adjustments {
		merged = append(merged, taggedEvent{
			date:   ev.Date,
			label:  labelOr(ev.Type, LabelAdjustment),
			amount: ev.Amount,
		})
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return parseDate(merged[i].date).Before(parseDate(merged[j].date))
	})

	series := make([]models.ChartPoint, 0, len(merged))
	cumulative := 0.0
	for _, ev := range merged {
		cumulative += ev.amount
		series = append(series, models.ChartPoint{
			Date:  ev.date,
			Value: cumulative,
			Label: ev.label,
		})
	}
	return series
}

func labelOr(typ, fallback string) string {
	if typ == "" {
		return fallback
	}
	return typ
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// parseDate parses the backend's ISO-ish date strings. Unparseable dates sort
// to the front rather than failing the whole series.
func parseDate(s string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Buckets is the strict three-way partition of a fund's transactions.
type Buckets struct {
	CapitalCalls  []models.Transaction
	Distributions []models.Transaction
	Adjustments   []models.Transaction
}

// Partition splits transactions by their source tag. Transactions with an
// unrecognized source land in no bucket.
func Partition(transactions []models.Transaction) Buckets {
	b := Buckets{
		CapitalCalls:  []models.Transaction{},
		Distributions: []models.Transaction{},
		Adjustments:   []models.Transaction{},
	}
	for _, tx := range transactions {
		switch tx.Source {
		case models.SourceCapitalCall:
			b.CapitalCalls = append(b.CapitalCalls, tx)
		case models.SourceDistribution:
			b.Distributions = append(b.Distributions, tx)
		case models.SourceAdjustment:
			b.Adjustments = append(b.Adjustments, tx)
		}
	}
	return b
}
