package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries everything one conversion run needs. The pipeline has no
// process-wide defaults of its own; whatever calls it decides the paths
// and thresholds.
type Config struct {
	InputPath   string
	XLSXPath    string
	GeoJSONPath string

	// TargetPoints seeds the error ratio of the tolerance search and gates
	// the fast path. ConvergeBelow is the ceiling the search loop actually
	// converges under. Both default to 780 (the largest geometry that still
	// fits a single Excel cell) but they are independent settings.
	TargetPoints  int
	ConvergeBelow int
	MaxIterations int
}

const (
	defaultTargetPoints  = 780
	defaultConvergeBelow = 780
	defaultMaxIterations = 400
)

// LoadConfig fills unset fields from the environment, then from the
// defaults. A .env file in the working directory is honored when present.
func LoadConfig(cfg Config) Config {
	_ = godotenv.Load(".env")

	if cfg.InputPath == "" {
		cfg.InputPath = os.Getenv("GEO2XLSX_INPUT")
	}
	if cfg.XLSXPath == "" {
		cfg.XLSXPath = os.Getenv("GEO2XLSX_XLSX")
	}
	if cfg.GeoJSONPath == "" {
		cfg.GeoJSONPath = os.Getenv("GEO2XLSX_GEOJSON")
	}
	if cfg.TargetPoints == 0 {
		cfg.TargetPoints = envInt("GEO2XLSX_TARGET_POINTS", defaultTargetPoints)
	}
	if cfg.ConvergeBelow == 0 {
		cfg.ConvergeBelow = envInt("GEO2XLSX_CONVERGE_BELOW", defaultConvergeBelow)
	}
	if cfg.MaxIterations == 0 {
		cfg.MaxIterations = envInt("GEO2XLSX_MAX_ITERATIONS", defaultMaxIterations)
	}
	return cfg
}

func envInt(key string, fallback int) int {
	if s := os.Getenv(key); s != "" {
		if n, err := strconv.Atoi(s); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
