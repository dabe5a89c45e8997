package restapi

import (
	"net/http"

	"playinsights.teamg8.org/internal/analytics"
	"playinsights.teamg8.org/internal/models"
)

// topOpportunityCount caps the market expansion panel at the ten
// highest-scoring (region, category) pairs.
const topOpportunityCount = 10

func (api *RestAPI) opportunityScoresHandler(w http.ResponseWriter, r *http.Request) {
	view, fieldErrors := api.filteredView(r)
	if fieldErrors != nil {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	scores := analytics.OpportunityScores(view, topOpportunityCount)
	api.sendResponse(w, r, models.NewListResponse(scores))
}
