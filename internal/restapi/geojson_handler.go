package restapi

import (
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/walkingsnake-lab/ctamap/internal/geojson"
	"github.com/walkingsnake-lab/ctamap/internal/logging"
)

// proxyBodyLimit caps how much of a remote geometry dataset we will relay.
const proxyBodyLimit = 8 << 20

// geojsonHandler serves the line geometry for the map. By default it reads
// the bundled file; when a proxy URL is configured it relays the remote
// dataset instead. Either way a failure degrades to a 502 carrying an empty
// FeatureCollection, so the map still renders trains without line overlays.
func (api *RestAPI) geojsonHandler(w http.ResponseWriter, r *http.Request) {
	if api.Config.GeoJSONURL != "" {
		api.proxyGeoJSON(w, r)
		return
	}

	path := api.Config.GeoJSONPath
	if path == "" {
		path = "data/cta-lines.geojson"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logging.LogError(api.Logger, "error reading bundled geojson", err,
			slog.String("path", path))
		api.sendEmptyFeatureCollection(w, r)
		return
	}

	setJSONResponseType(&w)
	if _, err := w.Write(data); err != nil {
		api.Logger.Error("failed to write geojson response", "error", err)
	}
}

func (api *RestAPI) proxyGeoJSON(w http.ResponseWriter, r *http.Request) {
	req, err := http.NewRequestWithContext(r.Context(), http.MethodGet, api.Config.GeoJSONURL, nil)
	if err != nil {
		logging.LogError(api.Logger, "error building geojson proxy request", err)
		api.sendEmptyFeatureCollection(w, r)
		return
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		logging.LogError(api.Logger, "error proxying geojson dataset", err,
			slog.String("url", api.Config.GeoJSONURL))
		api.sendEmptyFeatureCollection(w, r)
		return
	}
	defer logging.SafeCloseWithLogging(resp.Body, api.Logger, "geojson_proxy_body")

	if resp.StatusCode != http.StatusOK {
		api.Logger.Warn("geojson dataset returned non-200",
			"status", resp.StatusCode, "url", api.Config.GeoJSONURL)
		api.sendEmptyFeatureCollection(w, r)
		return
	}

	setJSONResponseType(&w)
	if _, err := io.Copy(w, io.LimitReader(resp.Body, proxyBodyLimit)); err != nil {
		api.Logger.Error("failed to relay geojson dataset", "error", err)
	}
}

// sendEmptyFeatureCollection is the geometry endpoint's degraded answer.
func (api *RestAPI) sendEmptyFeatureCollection(w http.ResponseWriter, r *http.Request) {
	setJSONResponseType(&w)
	w.WriteHeader(http.StatusBadGateway)
	api.sendResponse(w, r, geojson.NewFeatureCollection())
}
