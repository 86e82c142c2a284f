package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

func writeTempGeoJSON(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.geojson")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFeatures_FeatureCollection(t *testing.T) {
	fc := geojson.NewFeatureCollection()
	fc.Append(geojson.NewFeature(orb.Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}}))
	fc.Append(geojson.NewFeature(orb.Point{1, 2}))
	data, err := fc.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}

	features, err := loadFeatures(writeTempGeoJSON(t, data))
	if err != nil {
		t.Fatal(err)
	}
	if len(features) != 2 {
		t.Fatalf("expected 2 features, got %d", len(features))
	}
}

func TestLoadFeatures_BareFeature(t *testing.T) {
	f := geojson.NewFeature(orb.Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}})
	f.Properties["name"] = "seule"
	data, err := f.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}

	features, err := loadFeatures(writeTempGeoJSON(t, data))
	if err != nil {
		t.Fatal(err)
	}
	if len(features) != 1 {
		t.Fatalf("expected 1 feature, got %d", len(features))
	}
	if features[0].Properties["name"] != "seule" {
		t.Fatalf("properties lost: %v", features[0].Properties)
	}
}

func TestLoadFeatures_InvalidTopLevel(t *testing.T) {
	path := writeTempGeoJSON(t, []byte(`{"type":"GeometryCollection","geometries":[]}`))

	_, err := loadFeatures(path)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLoadFeatures_MissingGeometry(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"absent", `{"type":"FeatureCollection","features":[{"type":"Feature","properties":{"name":"x"}}]}`},
		{"null", `{"type":"FeatureCollection","features":[{"type":"Feature","geometry":null,"properties":{"name":"x"}}]}`},
		{"bare feature", `{"type":"Feature","properties":{"name":"x"}}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := loadFeatures(writeTempGeoJSON(t, []byte(tc.data))); err == nil {
				t.Fatal("expected a fatal error for a feature without geometry")
			}
		})
	}
}

func TestLoadFeatures_MalformedJSON(t *testing.T) {
	if _, err := loadFeatures(writeTempGeoJSON(t, []byte(`{"type":`))); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestLoadFeatures_MissingFile(t *testing.T) {
	if _, err := loadFeatures(filepath.Join(t.TempDir(), "absent.geojson")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
