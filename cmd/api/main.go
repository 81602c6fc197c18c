package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/walkingsnake-lab/ctamap/internal/app"
	"github.com/walkingsnake-lab/ctamap/internal/cta"
	"github.com/walkingsnake-lab/ctamap/internal/logging"
	"github.com/walkingsnake-lab/ctamap/internal/restapi"
	"github.com/walkingsnake-lab/ctamap/internal/utils"
)

func main() {
	var cfg app.Config
	var ctaKey, routesFlag string

	flag.IntVar(&cfg.Port, "port", envInt("PORT", 3000), "API server port")
	flag.StringVar(&cfg.Env, "env", "development", "Environment (development|staging|production)")
	flag.IntVar(&cfg.RateLimit, "rate-limit", 0, "Requests per second per client IP (0 disables)")
	flag.StringVar(&cfg.GeoJSONPath, "geojson-path", "data/cta-lines.geojson", "Bundled line geometry file")
	flag.StringVar(&cfg.GeoJSONURL, "geojson-url", "", "Remote geometry dataset to proxy instead of the bundled file")
	flag.StringVar(&cfg.StaticDir, "static-dir", "./static", "Directory holding the map UI")
	flag.StringVar(&ctaKey, "cta-key", os.Getenv("CTA_API_KEY"), "CTA Train Tracker API key")
	flag.StringVar(&routesFlag, "routes", strings.Join(cta.DefaultRoutes, ","), "Comma separated route codes to aggregate")
	flag.Parse()

	var logger *slog.Logger
	if cfg.Env == "production" {
		logger = logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)
	} else {
		logger = slog.New(slog.NewTextHandler(os.Stdout, nil))
	}

	if ctaKey == "" {
		logger.Error("a CTA Train Tracker API key is required (set CTA_API_KEY or -cta-key)")
		os.Exit(1)
	}

	routes := strings.Split(routesFlag, ",")
	for i := range routes {
		routes[i] = strings.TrimSpace(routes[i])
		if err := utils.ValidateRouteCode(routes[i]); err != nil {
			logger.Error("invalid route code", "route", routes[i], "error", err)
			os.Exit(1)
		}
	}

	application := &app.Application{
		Config: cfg,
		Logger: logger,
		CTA: cta.NewClient(cta.Config{
			Key:    ctaKey,
			Routes: routes,
		}),
	}

	api := restapi.NewRestAPI(application)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      api.Router(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env, "routes", routes)
	err := srv.ListenAndServe()
	logger.Error(err.Error())
	os.Exit(1)
}

// envInt reads an integer environment variable, falling back on a default
// when unset or malformed.
func envInt(name string, fallback int) int {
	value := os.Getenv(name)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
