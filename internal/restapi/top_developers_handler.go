package restapi

import (
	"net/http"

	"playinsights.teamg8.org/internal/analytics"
	"playinsights.teamg8.org/internal/models"
)

// topDeveloperCount caps the top-developers panel at the ten largest by
// summed revenue.
const topDeveloperCount = 10

func (api *RestAPI) topDevelopersHandler(w http.ResponseWriter, r *http.Request) {
	view, fieldErrors := api.filteredView(r)
	if fieldErrors != nil {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	developers := analytics.TopDevelopers(view, topDeveloperCount)
	api.sendResponse(w, r, models.NewListResponse(developers))
}
