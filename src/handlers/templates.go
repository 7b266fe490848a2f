package handlers

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/username/fundfolio/src/logger"
	"github.com/username/fundfolio/src/models"
	"github.com/username/fundfolio/src/utils"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(
	template.New("").Funcs(template.FuncMap{
		"formatCurrencyShort": utils.FormatCurrencyShort,
		"formatDateShort":     utils.FormatDateShort,
		"formatIRR":           utils.FormatIRR,
		"formatPIC":           utils.FormatPIC,
		"formatDPI":           utils.FormatDPI,
		"add":                 func(a, b int) int { return a + b },
		"deref":               func(p *int64) int64 { return *p },
		"dict": func(pairs ...interface{}) map[string]interface{} {
			m := make(map[string]interface{}, len(pairs)/2)
			for i := 0; i+1 < len(pairs); i += 2 {
				key, _ := pairs[i].(string)
				m[key] = pairs[i+1]
			}
			return m
		},
	}).ParseFS(templateFS, "templates/*.html"),
)

func render(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplates.ExecuteTemplate(w, name, data); err != nil {
		logger.L.Error("Failed to render template", "template", name, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// buildChartPath scales a cumulative cashflow series into SVG polyline
// points for an inline line chart of the given pixel size.
func buildChartPath(points []models.ChartPoint, width, height float64) string {
	if len(points) == 0 {
		return ""
	}

	minVal, maxVal := points[0].Value, points[0].Value
	for _, p := range points[1:] {
		if p.Value < minVal {
			minVal = p.Value
		}
		if p.Value > maxVal {
			maxVal = p.Value
		}
	}
	span := maxVal - minVal
	if span == 0 {
		span = 1
	}

	step := 0.0
	if len(points) > 1 {
		step = width / float64(len(points)-1)
	}

	var b strings.Builder
	for i, p := range points {
		x := float64(i) * step
		y := height - (p.Value-minVal)/span*height
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%.1f,%.1f", x, y)
	}
	return b.String()
}
