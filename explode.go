package main

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// polygonPart is one polygon exploded out of a feature, carrying the
// feature's property map. Parts of the same MultiPolygon share a single
// map, never copies; nothing downstream writes to it.
type polygonPart struct {
	Polygon    orb.Polygon
	Properties geojson.Properties
}

// explodeFeature splits a feature into single polygons. Spreadsheet
// dashboards cannot render MultiPolygon cells, so every member becomes
// its own part. Unsupported geometry kinds (Point, LineString, ...)
// yield nothing.
func explodeFeature(f *geojson.Feature) []polygonPart {
	props := f.Properties
	if props == nil {
		props = geojson.Properties{}
	}

	switch geom := f.Geometry.(type) {
	case orb.Polygon:
		return []polygonPart{{Polygon: geom, Properties: props}}
	case orb.MultiPolygon:
		parts := make([]polygonPart, 0, len(geom))
		for _, poly := range geom {
			parts = append(parts, polygonPart{Polygon: poly, Properties: props})
		}
		return parts
	default:
		return nil
	}
}
