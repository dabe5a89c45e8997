package webui

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"playinsights.teamg8.org/internal/app"
)

type WebUI struct {
	*app.Application
}

func NewWebUI(app *app.Application) *WebUI {
	return &WebUI{Application: app}
}

// SetRoutes registers the server-rendered dashboard page, its chart images,
// and the debug page.
func (webUI *WebUI) SetRoutes(router *httprouter.Router) {
	router.Handler(http.MethodGet, "/dashboard", http.HandlerFunc(webUI.dashboardHandler))
	router.Handler(http.MethodGet, "/dashboard/charts/:panel", http.HandlerFunc(webUI.chartHandler))
	router.Handler(http.MethodGet, "/debug/catalog", http.HandlerFunc(webUI.debugIndexHandler))
}
