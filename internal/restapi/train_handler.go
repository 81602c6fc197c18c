package restapi

import (
	"errors"
	"net/http"

	"github.com/walkingsnake-lab/ctamap/internal/cta"
	"github.com/walkingsnake-lab/ctamap/internal/models"
	"github.com/walkingsnake-lab/ctamap/internal/utils"
)

// trainHandler serves the follow lookup for one run number. Unlike the
// aggregate endpoint, failures surface here: bad input is a 400 and an
// unreachable upstream is a 502, while an inactive run is a 200 with an
// empty eta list.
func (api *RestAPI) trainHandler(w http.ResponseWriter, r *http.Request) {
	runNumber := utils.ExtractParam(r, "runNumber")

	result, err := api.CTA.FollowRun(r.Context(), runNumber)
	if err != nil {
		if errors.Is(err, cta.ErrInvalidRunNumber) {
			api.badRequestResponse(w, r, "Invalid run number")
			return
		}
		api.badGatewayResponse(w, r, "Failed to fetch train details")
		return
	}

	api.sendResponse(w, r, models.NewFollowResponse(result))
}
