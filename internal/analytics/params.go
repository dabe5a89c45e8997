package analytics

import (
	"net/url"

	"playinsights.teamg8.org/internal/utils"
)

// FilterFromParams builds a Filter from the query parameters shared by every
// dashboard endpoint: categories, regions, zones (repeatable or
// comma-separated) and startDate/endDate (YYYY-MM-DD, inclusive both ends).
// An absent multiselect parameter means no constraint; a present-but-empty
// one matches nothing. The second return value holds field validation
// errors and is nil when the parameters are well formed.
func FilterFromParams(params url.Values) (Filter, map[string][]string) {
	var filter Filter
	var fieldErrors map[string][]string

	if present, values := utils.ParseListParam(params, "categories"); present {
		filter.Categories = NewSelection(values)
	}
	if present, values := utils.ParseListParam(params, "regions"); present {
		filter.Regions = NewSelection(values)
	}
	if present, values := utils.ParseListParam(params, "zones"); present {
		filter.Zones = NewSelection(values)
	}

	filter.Start, fieldErrors = utils.ParseDateParam(params, "startDate", fieldErrors)
	filter.End, fieldErrors = utils.ParseDateParam(params, "endDate", fieldErrors)

	if len(fieldErrors) > 0 {
		return filter, fieldErrors
	}
	return filter, nil
}
