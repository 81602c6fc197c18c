// Package geojson builds the line-geometry file served by the map from a
// static GTFS feed's shapes.
package geojson

import (
	"github.com/jamespfennell/gtfs"
)

// FeatureCollection is a minimal GeoJSON FeatureCollection.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// Feature is one GeoJSON feature; here always a LineString per GTFS shape.
type Feature struct {
	Type       string         `json:"type"`
	Properties map[string]any `json:"properties"`
	Geometry   Geometry       `json:"geometry"`
}

// Geometry holds LineString coordinates as [lon, lat] pairs.
type Geometry struct {
	Type        string       `json:"type"`
	Coordinates [][2]float64 `json:"coordinates"`
}

// NewFeatureCollection returns an empty collection that marshals with a
// non-null features array.
func NewFeatureCollection() *FeatureCollection {
	return &FeatureCollection{
		Type:     "FeatureCollection",
		Features: []Feature{},
	}
}

// FromStatic converts the shapes of a static GTFS feed into one LineString
// feature per distinct shape, keeping only trips on the wanted routes. An
// empty routeIDs set keeps every route. Each feature carries the route id,
// name, and color so the map can style lines without a second lookup.
func FromStatic(static *gtfs.Static, routeIDs []string) *FeatureCollection {
	wanted := make(map[string]bool, len(routeIDs))
	for _, id := range routeIDs {
		wanted[id] = true
	}

	collection := NewFeatureCollection()
	seenShapes := make(map[string]bool)

	for i := range static.Trips {
		trip := &static.Trips[i]
		if trip.Route == nil || trip.Shape == nil {
			continue
		}
		if len(wanted) > 0 && !wanted[trip.Route.Id] {
			continue
		}
		if seenShapes[trip.Shape.ID] {
			continue
		}
		seenShapes[trip.Shape.ID] = true

		coordinates := make([][2]float64, 0, len(trip.Shape.Points))
		for _, point := range trip.Shape.Points {
			coordinates = append(coordinates, [2]float64{point.Longitude, point.Latitude})
		}
		if len(coordinates) < 2 {
			continue
		}

		name := trip.Route.LongName
		if name == "" {
			name = trip.Route.ShortName
		}

		collection.Features = append(collection.Features, Feature{
			Type: "Feature",
			Properties: map[string]any{
				"route": trip.Route.Id,
				"name":  name,
				"color": trip.Route.Color,
			},
			Geometry: Geometry{
				Type:        "LineString",
				Coordinates: coordinates,
			},
		})
	}

	return collection
}
