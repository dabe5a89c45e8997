package restapi

import (
	"net/http"

	"playinsights.teamg8.org/internal/analytics"
	"playinsights.teamg8.org/internal/models"
)

func (api *RestAPI) kpisHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if ctx.Err() != nil {
		api.serverErrorResponse(w, r, ctx.Err())
		return
	}

	view, fieldErrors := api.filteredView(r)
	if fieldErrors != nil {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	summary := analytics.Totals(view)
	api.sendResponse(w, r, models.NewEntryResponse(summary))
}
