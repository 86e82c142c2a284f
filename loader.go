package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/paulmach/orb/geojson"
)

// ErrInvalidInput reports a GeoJSON file whose top level is neither a
// Feature nor a FeatureCollection.
var ErrInvalidInput = errors.New("le fichier GeoJSON ne contient pas une Feature ou FeatureCollection valide")

// loadFeatures reads a GeoJSON file and normalizes it to a flat feature
// list. A file holding a single bare Feature becomes a one-element list.
func loadFeatures(path string) ([]*geojson.Feature, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	var features []*geojson.Feature
	switch head.Type {
	case "FeatureCollection":
		fc, err := geojson.UnmarshalFeatureCollection(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		features = fc.Features
	case "Feature":
		f, err := geojson.UnmarshalFeature(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		features = []*geojson.Feature{f}
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrInvalidInput)
	}

	// The geojson decoder tolerates a missing or null geometry; a feature
	// without one is fatal here, not a skippable geometry kind.
	for i, f := range features {
		if f.Geometry == nil {
			return nil, fmt.Errorf("%s: feature %d has no geometry", path, i)
		}
	}
	return features, nil
}
