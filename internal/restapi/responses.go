package restapi

import (
	"encoding/json"
	"net/http"

	"github.com/walkingsnake-lab/ctamap/internal/models"
)

func (api *RestAPI) sendResponse(w http.ResponseWriter, r *http.Request, response any) {
	setJSONResponseType(&w)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		api.Logger.Error("failed to encode response", "error", err, "path", r.URL.Path)
	}
}

// badRequestResponse sends a 400 with the map UI's error payload shape.
func (api *RestAPI) badRequestResponse(w http.ResponseWriter, r *http.Request, message string) {
	api.sendError(w, r, http.StatusBadRequest, message)
}

// badGatewayResponse sends a 502 when the upstream feed could not be reached.
func (api *RestAPI) badGatewayResponse(w http.ResponseWriter, r *http.Request, message string) {
	api.sendError(w, r, http.StatusBadGateway, message)
}

func (api *RestAPI) sendError(w http.ResponseWriter, r *http.Request, status int, message string) {
	setJSONResponseType(&w)
	w.WriteHeader(status)

	err := json.NewEncoder(w).Encode(models.ErrorResponse{Error: message})
	if err != nil {
		api.Logger.Error("failed to encode error response", "error", err, "path", r.URL.Path)
	}
}

func setJSONResponseType(w *http.ResponseWriter) {
	(*w).Header().Set("Content-Type", "application/json")
}
