// Command geojson-gen builds the bundled line-geometry file from a static
// GTFS feed. Point it at the CTA GTFS zip (URL or local path) whenever the
// agency publishes updated shapes:
//
//	geojson-gen -gtfs https://www.transitchicago.com/downloads/sch_data/google_transit.zip -out data/cta-lines.geojson
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/jamespfennell/gtfs"

	"github.com/walkingsnake-lab/ctamap/internal/geojson"
	"github.com/walkingsnake-lab/ctamap/internal/logging"
)

func main() {
	gtfsSource := flag.String("gtfs", "", "Static GTFS zip (URL or local file path)")
	routesFlag := flag.String("routes", "", "Comma separated GTFS route ids to keep (empty keeps all)")
	outPath := flag.String("out", "data/cta-lines.geojson", "Output GeoJSON file")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if *gtfsSource == "" {
		logger.Error("a GTFS source is required (-gtfs)")
		os.Exit(1)
	}

	var routeIDs []string
	if *routesFlag != "" {
		for _, id := range strings.Split(*routesFlag, ",") {
			routeIDs = append(routeIDs, strings.TrimSpace(id))
		}
	}

	static, err := loadStaticGTFS(*gtfsSource, logger)
	if err != nil {
		logging.LogError(logger, "failed to load GTFS data", err)
		os.Exit(1)
	}

	collection := geojson.FromStatic(static, routeIDs)
	if len(collection.Features) == 0 {
		logger.Warn("no shapes matched; writing an empty collection",
			"routes", routeIDs)
	}

	data, err := json.MarshalIndent(collection, "", "  ")
	if err != nil {
		logging.LogError(logger, "failed to marshal GeoJSON", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*outPath, data, 0o644); err != nil {
		logging.LogError(logger, "failed to write output file", err)
		os.Exit(1)
	}

	logger.Info("wrote line geometry",
		"out", *outPath, "features", len(collection.Features))
}

// loadStaticGTFS reads and parses a GTFS zip from either a URL or a local
// file path.
func loadStaticGTFS(source string, logger *slog.Logger) (*gtfs.Static, error) {
	var b []byte
	var err error

	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		resp, err := http.Get(source)
		if err != nil {
			return nil, fmt.Errorf("error downloading GTFS data: %w", err)
		}
		defer logging.SafeCloseWithLogging(resp.Body, logger, "gtfs_download_body")

		b, err = io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("error reading GTFS data: %w", err)
		}
	} else {
		b, err = os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("error reading local GTFS file: %w", err)
		}
	}

	static, err := gtfs.ParseStatic(b, gtfs.ParseStaticOptions{})
	if err != nil {
		return nil, fmt.Errorf("error parsing GTFS data: %w", err)
	}

	return static, nil
}
