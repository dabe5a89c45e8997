package restapi

import (
	"net/http"

	"playinsights.teamg8.org/internal/analytics"
	"playinsights.teamg8.org/internal/models"
)

func (api *RestAPI) revenueGrowthHandler(w http.ResponseWriter, r *http.Request) {
	view, fieldErrors := api.filteredView(r)
	if fieldErrors != nil {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	growth := analytics.YearlyGrowth(view)
	api.sendResponse(w, r, models.NewListResponse(growth))
}
