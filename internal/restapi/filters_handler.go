package restapi

import (
	"net/http"

	"playinsights.teamg8.org/internal/models"
)

// filtersHandler returns the values the dashboard's sidebar controls offer:
// every distinct category, region, and zone in the loaded table, plus the
// released date bounds. These are also the controls' defaults. Served from
// the catalog database.
func (api *RestAPI) filtersHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if ctx.Err() != nil {
		api.serverErrorResponse(w, r, ctx.Err())
		return
	}

	db := api.Catalog.CatalogDB

	categories, err := db.DistinctCategories(ctx)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	regions, err := db.DistinctRegions(ctx)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	zones, err := db.DistinctZones(ctx)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}
	releasedMin, releasedMax, err := db.ReleasedBounds(ctx)
	if err != nil {
		api.serverErrorResponse(w, r, err)
		return
	}

	options := models.FilterOptions{
		Categories:  categories,
		Regions:     regions,
		Zones:       zones,
		ReleasedMin: releasedMin,
		ReleasedMax: releasedMax,
	}
	api.sendResponse(w, r, models.NewEntryResponse(options))
}
