package restapi

import (
	"net/http"

	"playinsights.teamg8.org/internal/analytics"
	"playinsights.teamg8.org/internal/models"
)

// filteredView applies the request's filter criteria to the loaded catalog.
// The second return value carries validation errors; when it is non-nil the
// caller must respond with validationErrorResponse and stop.
func (api *RestAPI) filteredView(r *http.Request) ([]models.App, map[string][]string) {
	filter, fieldErrors := analytics.FilterFromParams(r.URL.Query())
	if fieldErrors != nil {
		return nil, fieldErrors
	}
	return filter.Apply(api.Catalog.Apps(), api.Catalog.ZoneClassifier()), nil
}
