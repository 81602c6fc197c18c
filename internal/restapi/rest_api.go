package restapi

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"

	"github.com/walkingsnake-lab/ctamap/internal/app"
)

// RestAPI serves the train map's JSON endpoints on top of the shared
// Application dependencies.
type RestAPI struct {
	*app.Application
	rateLimiter func(http.Handler) http.Handler
}

// NewRestAPI creates a RestAPI with its middleware initialized from config.
func NewRestAPI(application *app.Application) *RestAPI {
	return &RestAPI{
		Application: application,
		rateLimiter: NewRateLimitMiddleware(application.Config.RateLimit, time.Second),
	}
}

// Router builds the full HTTP handler: API routes, the static map UI as the
// fallback, and the logging and rate-limit middleware around everything.
func (api *RestAPI) Router() http.Handler {
	router := httprouter.New()

	router.Handler(http.MethodGet, "/api/trains", http.HandlerFunc(api.trainsHandler))
	router.Handler(http.MethodGet, "/api/train/:runNumber", http.HandlerFunc(api.trainHandler))
	router.Handler(http.MethodGet, "/api/geojson", http.HandlerFunc(api.geojsonHandler))

	staticDir := api.Config.StaticDir
	if staticDir == "" {
		staticDir = "./static"
	}
	router.NotFound = http.FileServer(http.Dir(staticDir))

	logged := NewRequestLoggingMiddleware(api.Logger)
	return logged(api.rateLimiter(router))
}
