package utils

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
)

// FormatCurrencyShort abbreviates magnitudes for chart axis labels:
// 1_500_000 -> "1.5M", 10_000 -> "10.0K", 999 -> "999".
func FormatCurrencyShort(num float64) string {
	abs := math.Abs(num)
	switch {
	case abs >= 1_000_000_000:
		return fmt.Sprintf("%.1fB", num/1_000_000_000)
	case abs >= 1_000_000:
		return fmt.Sprintf("%.1fM", num/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("%.1fK", num/1_000)
	default:
		return strconv.FormatFloat(num, 'f', -1, 64)
	}
}

// FormatIRR renders an IRR ratio as a percentage with 2 decimals. A zero
// (absent) value renders as "0", matching the dashboard's summary cards.
func FormatIRR(irr float64) string {
	if irr == 0 {
		return "0"
	}
	return fmt.Sprintf("%.2f", irr*100)
}

// FormatPIC renders paid-in capital as a localized number with thousands
// separators, or "0" when absent.
func FormatPIC(pic float64) string {
	if pic == 0 {
		return "0"
	}
	return humanize.Commaf(pic)
}

// FormatDPI renders the DPI ratio with 3 decimals, or "0" when absent.
func FormatDPI(dpi float64) string {
	if dpi == 0 {
		return "0"
	}
	return fmt.Sprintf("%.3f", dpi)
}

var shortDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// FormatDateShort renders a backend date string as "Jan 06" for chart ticks.
// Unparseable dates are returned unchanged.
func FormatDateShort(dateStr string) string {
	for _, layout := range shortDateLayouts {
		if t, err := time.Parse(layout, dateStr); err == nil {
			return t.Format("Jan 06")
		}
	}
	return dateStr
}
