package webui

import (
	"embed"
	"html/template"
	"net/http"

	"playinsights.teamg8.org/internal/analytics"
	"playinsights.teamg8.org/internal/models"
)

//go:embed dashboard.html debug_index.html
var templateFS embed.FS

type dashboardData struct {
	Title      string
	Subtitle   string
	Footer     string
	KPIs       models.KPISummary
	Query      string // raw query string appended to each chart image URL
	Categories []string
	Regions    []string
	Zones      []models.EconomicZone
	Panels     []panelInfo
}

type panelInfo struct {
	Name  string
	Title string
}

// dashboardPanels drives the chart grid. Names double as the chart
// endpoint's path parameter.
var dashboardPanels = []panelInfo{
	{"category-revenue", "Category Revenue Share"},
	{"top-apps-by-region", "Top Revenue Apps by Region"},
	{"top-developers", "Top 10 Developers by Revenue"},
	{"zone-revenue", "Revenue by Economic Zone"},
	{"market-share", "Market Share by Geo-Region"},
	{"revenue-growth", "Forecasted Revenue Growth Rate"},
	{"opportunity-scores", "Top Market Expansion Opportunities"},
}

// dashboardHandler renders the full dashboard page: title, the three KPI
// tiles computed over the current filtered view, and one image per chart
// panel carrying the same filter query.
func (webUI *WebUI) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	filter, fieldErrors := analytics.FilterFromParams(r.URL.Query())
	if fieldErrors != nil {
		http.Error(w, "invalid filter parameters", http.StatusBadRequest)
		return
	}

	view := filter.Apply(webUI.Catalog.Apps(), webUI.Catalog.ZoneClassifier())

	var zones []models.EconomicZone
	if zc := webUI.Catalog.ZoneClassifier(); zc != nil {
		zones = zc.Zones()
	}

	data := dashboardData{
		Title:      "Google Play Store Insights Dashboard",
		Subtitle:   "Explore comprehensive insights into app performance across categories, regions, and economic zones.",
		Footer:     "© 2025 Google Play Store Insights | Built by Team G8",
		KPIs:       analytics.Totals(view),
		Query:      r.URL.RawQuery,
		Categories: webUI.Catalog.Categories(),
		Regions:    webUI.Catalog.Regions(),
		Zones:      zones,
		Panels:     dashboardPanels,
	}

	tmpl, err := template.ParseFS(templateFS, "dashboard.html")
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html")
	if err := tmpl.Execute(w, data); err != nil {
		webUI.Logger.Error("failed to render dashboard", "error", err)
	}
}
