package restapi

import (
	"net/http"

	"github.com/walkingsnake-lab/ctamap/internal/models"
)

// trainsHandler serves the aggregate live positions across every configured
// route. It always answers 200: routes whose upstream fetch failed simply
// contribute no trains.
func (api *RestAPI) trainsHandler(w http.ResponseWriter, r *http.Request) {
	trains := api.CTA.AllPositions(r.Context())
	api.sendResponse(w, r, models.NewTrainsResponse(trains))
}
