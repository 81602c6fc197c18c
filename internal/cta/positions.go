package cta

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/walkingsnake-lab/ctamap/internal/logging"
)

// FetchRoute fetches the live train positions for a single route. It never
// returns an error: transport failures, malformed payloads, and upstream
// error codes are logged and yield zero records, so one bad route cannot
// poison an aggregate request. Each returned record carries the route code
// it was fetched under in its "rt" field.
func (c *Client) FetchRoute(ctx context.Context, route string) []Record {
	logger := logging.FromContext(ctx).With(
		slog.String("component", "cta_positions"),
		slog.String("route", route))

	params := url.Values{}
	params.Set("rt", route)

	env, err := c.get(ctx, c.positionsURL, params)
	if err != nil {
		logging.LogError(logger, "error fetching train positions", err)
		return nil
	}

	if !env.ok() {
		// Covers both real upstream errors and the "no trains right
		// now" status; the Train Tracker does not let us tell them
		// apart.
		logger.Debug("upstream reported no positions",
			slog.String("errCd", string(env.Ctatt.ErrCd)),
			slog.String("errNm", env.Ctatt.ErrNm))
		return nil
	}

	var trains []Record
	for _, entry := range env.Ctatt.Routes {
		for _, train := range entry.Trains {
			// The upstream payload does not reliably carry the
			// route, so stamp it from the request.
			train["rt"] = route
			trains = append(trains, train)
		}
	}

	return trains
}
