package app

import (
	"log/slog"

	"github.com/walkingsnake-lab/ctamap/internal/cta"
)

// Application holds the dependencies for our HTTP handlers, helpers, and
// middleware.
type Application struct {
	Config Config
	Logger *slog.Logger
	CTA    *cta.Client
}

// Config holds all the configuration settings for our Application. The
// values are read from command-line flags (with environment fallbacks for
// the port and the upstream API key) when the Application starts.
type Config struct {
	Port int
	Env  string

	// RateLimit is the allowed requests per second per client IP.
	// Zero or negative disables rate limiting.
	RateLimit int

	// GeoJSONPath is the bundled line-geometry file served by the
	// geometry endpoint.
	GeoJSONPath string

	// GeoJSONURL, when set, switches the geometry endpoint to a
	// server-side proxy of a remote dataset.
	GeoJSONURL string

	// StaticDir is the directory holding the map UI.
	StaticDir string
}
