package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	})
}

// SetRoutes registers one endpoint per dashboard panel plus the filter
// metadata endpoint. Every endpoint takes the same filter query parameters
// and requires a valid API key. Unmatched paths get the JSON not-found
// envelope.
func (api *RestAPI) SetRoutes(router *httprouter.Router) {
	router.NotFound = http.HandlerFunc(api.sendNotFound)
	router.Handler(http.MethodGet, "/api/insights/kpis.json", validateAPIKey(api, api.kpisHandler))
	router.Handler(http.MethodGet, "/api/insights/category-revenue.json", validateAPIKey(api, api.categoryRevenueHandler))
	router.Handler(http.MethodGet, "/api/insights/top-apps-by-region.json", validateAPIKey(api, api.topAppsByRegionHandler))
	router.Handler(http.MethodGet, "/api/insights/top-developers.json", validateAPIKey(api, api.topDevelopersHandler))
	router.Handler(http.MethodGet, "/api/insights/zone-revenue.json", validateAPIKey(api, api.zoneRevenueHandler))
	router.Handler(http.MethodGet, "/api/insights/market-share.json", validateAPIKey(api, api.marketShareHandler))
	router.Handler(http.MethodGet, "/api/insights/revenue-growth.json", validateAPIKey(api, api.revenueGrowthHandler))
	router.Handler(http.MethodGet, "/api/insights/opportunity-scores.json", validateAPIKey(api, api.opportunityScoresHandler))
	router.Handler(http.MethodGet, "/api/insights/filters.json", validateAPIKey(api, api.filtersHandler))
}
