package restapi

import (
	"net/http"
	"time"

	"playinsights.teamg8.org/internal/app"
)

type RestAPI struct {
	*app.Application
	rateLimiter func(http.Handler) http.Handler
}

// NewRestAPI creates a new RestAPI instance with initialized rate limiter
func NewRestAPI(app *app.Application) *RestAPI {
	return &RestAPI{
		Application: app,
		rateLimiter: NewRateLimitMiddleware(app.Config.RateLimit, time.Second),
	}
}

// WithRateLimit wraps the given handler with the per-API-key rate limiter.
func (api *RestAPI) WithRateLimit(handler http.Handler) http.Handler {
	return api.rateLimiter(handler)
}
