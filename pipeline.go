package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/paulmach/orb/geojson"
)

// cellFeature is the per-cell geometry encoding: a Feature stripped down
// to type and geometry, so the cell does not duplicate the attributes
// already spread across the row.
type cellFeature struct {
	Type     string            `json:"type"`
	Geometry *geojson.Geometry `json:"geometry"`
}

// runPipeline converts one GeoJSON file into an Excel table (one row per
// polygon, MultiPolygons exploded) and a simplified GeoJSON collection.
// Both outputs are written only after the whole input was processed; any
// failure before that leaves no partial artifact behind.
func runPipeline(cfg Config) error {
	features, err := loadFeatures(cfg.InputPath)
	if err != nil {
		return err
	}
	log.Printf("Loaded %d features from %s\n", len(features), cfg.InputPath)

	var rows []map[string]interface{}
	var headers []string
	seen := make(map[string]bool)
	simplified := geojson.NewFeatureCollection()

	for _, feature := range features {
		for _, part := range explodeFeature(feature) {
			res := adaptivePolygonSimplify(part.Polygon, cfg)
			if res.Tolerance > 0 {
				log.Printf("   %s\n", res.Info())
			}

			out := geojson.NewFeature(res.Geometry)
			out.Properties = part.Properties
			simplified.Append(out)

			row := make(map[string]interface{}, len(part.Properties)+2)
			keys := make([]string, 0, len(part.Properties))
			for k := range part.Properties {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				row[k] = part.Properties[k]
				if !seen[k] {
					seen[k] = true
					headers = append(headers, k)
				}
			}

			cell, err := json.Marshal(cellFeature{Type: "Feature", Geometry: geojson.NewGeometry(res.Geometry)})
			if err != nil {
				return fmt.Errorf("encode geometry cell: %w", err)
			}
			row["geometry"] = string(cell)
			row["simplification_info"] = res.Info()
			rows = append(rows, row)
		}
	}

	headers = append(headers, "geometry", "simplification_info")

	if err := writeXLSX(rows, headers, cfg.XLSXPath); err != nil {
		return fmt.Errorf("write table %s: %w", cfg.XLSXPath, err)
	}

	data, err := json.MarshalIndent(simplified, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", cfg.GeoJSONPath, err)
	}
	if err := os.WriteFile(cfg.GeoJSONPath, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", cfg.GeoJSONPath, err)
	}

	log.Printf("✅ Wrote %d rows to %s\n", len(rows), cfg.XLSXPath)
	log.Printf("✅ Wrote %d features to %s\n", len(simplified.Features), cfg.GeoJSONPath)
	return nil
}
