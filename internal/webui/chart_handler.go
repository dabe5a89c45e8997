package webui

import (
	"fmt"
	"net/http"

	chart "github.com/wcharczuk/go-chart/v2"

	"playinsights.teamg8.org/internal/analytics"
	"playinsights.teamg8.org/internal/models"
	"playinsights.teamg8.org/internal/utils"
)

// chartHandler renders one dashboard panel as a PNG. The panel name comes
// from the path; the filter criteria come from the same query parameters the
// JSON endpoints accept. An empty filtered view yields 204 rather than an
// error: the dashboard shows a blank slot, it never breaks.
func (webUI *WebUI) chartHandler(w http.ResponseWriter, r *http.Request) {
	panel := utils.ExtractPanelFromParams(r, "panel")

	filter, fieldErrors := analytics.FilterFromParams(r.URL.Query())
	if fieldErrors != nil {
		http.Error(w, "invalid filter parameters", http.StatusBadRequest)
		return
	}
	view := filter.Apply(webUI.Catalog.Apps(), webUI.Catalog.ZoneClassifier())

	switch panel {
	case "category-revenue":
		var bars []chart.Value
		for _, row := range analytics.RevenueByCategory(view) {
			bars = append(bars, chart.Value{Label: row.Category, Value: row.Revenue.InexactFloat64()})
		}
		webUI.renderBarChart(w, "Revenue by Category", bars)
	case "top-apps-by-region":
		var bars []chart.Value
		for _, row := range analytics.TopAppsByRegion(view) {
			label := fmt.Sprintf("%s (%s)", row.AppName, row.Region)
			bars = append(bars, chart.Value{Label: label, Value: row.Revenue.InexactFloat64()})
		}
		webUI.renderBarChart(w, "Top Revenue Apps by Region", bars)
	case "top-developers":
		var bars []chart.Value
		for _, row := range analytics.TopDevelopers(view, 10) {
			bars = append(bars, chart.Value{Label: row.DeveloperID, Value: row.Revenue.InexactFloat64()})
		}
		webUI.renderBarChart(w, "Top 10 Developers by Revenue", bars)
	case "zone-revenue":
		var bars []chart.Value
		for _, row := range analytics.RevenueByZone(view, webUI.Catalog.ZoneClassifier()) {
			bars = append(bars, chart.Value{Label: row.Zone, Value: row.Revenue.InexactFloat64()})
		}
		webUI.renderBarChart(w, "Revenue by Economic Zone", bars)
	case "market-share":
		var bars []chart.Value
		for _, row := range analytics.RevenueByRegion(view) {
			bars = append(bars, chart.Value{Label: row.Region, Value: row.Revenue.InexactFloat64()})
		}
		webUI.renderBarChart(w, "Market Share by Geo-Region", bars)
	case "revenue-growth":
		webUI.renderGrowthChart(w, analytics.YearlyGrowth(view))
	case "opportunity-scores":
		var bars []chart.Value
		for _, row := range analytics.OpportunityScores(view, 10) {
			label := fmt.Sprintf("%s / %s", row.Category, row.Region)
			bars = append(bars, chart.Value{Label: label, Value: row.Score.InexactFloat64()})
		}
		webUI.renderBarChart(w, "Top Market Expansion Opportunities", bars)
	default:
		http.NotFound(w, r)
	}
}

func (webUI *WebUI) renderBarChart(w http.ResponseWriter, title string, bars []chart.Value) {
	if len(bars) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	graph := chart.BarChart{
		Title:    title,
		Height:   512,
		BarWidth: 40,
		Bars:     bars,
	}

	w.Header().Set("Content-Type", "image/png")
	if err := graph.Render(chart.PNG, w); err != nil {
		webUI.Logger.Error("failed to render chart", "error", err, "chart", title)
	}
}

func (webUI *WebUI) renderGrowthChart(w http.ResponseWriter, growth []models.YearlyGrowth) {
	// go-chart needs at least two points to draw a line
	if len(growth) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	xs := make([]float64, 0, len(growth)+1)
	ys := make([]float64, 0, len(growth)+1)
	for _, point := range growth {
		xs = append(xs, float64(point.Year))
		ys = append(ys, point.GrowthPct)
	}
	if len(xs) == 1 {
		xs = append(xs, xs[0]+1)
		ys = append(ys, ys[0])
	}

	graph := chart.Chart{
		Title:  "Forecasted Revenue Growth Rate",
		Height: 512,
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "Growth %",
				XValues: xs,
				YValues: ys,
			},
		},
	}

	w.Header().Set("Content-Type", "image/png")
	if err := graph.Render(chart.PNG, w); err != nil {
		webUI.Logger.Error("failed to render chart", "error", err, "chart", "revenue-growth")
	}
}
