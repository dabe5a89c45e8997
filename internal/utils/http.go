package utils

import (
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// ExtractPanelFromParams retrieves the chart panel name from the request
// context and removes file extensions like ".png".
func ExtractPanelFromParams(r *http.Request, paramName string) string {
	params := httprouter.ParamsFromContext(r.Context())
	raw := params.ByName(paramName)
	return strings.Split(raw, ".png")[0]
}
