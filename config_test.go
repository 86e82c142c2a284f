package main

import "testing"

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig(Config{InputPath: "in.geojson", XLSXPath: "out.xlsx", GeoJSONPath: "out.geojson"})

	if cfg.TargetPoints != 780 || cfg.ConvergeBelow != 780 || cfg.MaxIterations != 400 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadConfig_EnvFallback(t *testing.T) {
	t.Setenv("GEO2XLSX_INPUT", "env.geojson")
	t.Setenv("GEO2XLSX_TARGET_POINTS", "100")
	t.Setenv("GEO2XLSX_MAX_ITERATIONS", "7")

	cfg := LoadConfig(Config{})

	if cfg.InputPath != "env.geojson" {
		t.Fatalf("expected input from environment, got %q", cfg.InputPath)
	}
	if cfg.TargetPoints != 100 || cfg.MaxIterations != 7 {
		t.Fatalf("expected thresholds from environment, got %+v", cfg)
	}
	if cfg.ConvergeBelow != 780 {
		t.Fatalf("unset ceiling should default to 780, got %d", cfg.ConvergeBelow)
	}
}

func TestLoadConfig_FlagsWinOverEnv(t *testing.T) {
	t.Setenv("GEO2XLSX_TARGET_POINTS", "100")

	cfg := LoadConfig(Config{TargetPoints: 250})

	if cfg.TargetPoints != 250 {
		t.Fatalf("explicit value should win over environment, got %d", cfg.TargetPoints)
	}
}

func TestEnvInt_RejectsGarbage(t *testing.T) {
	t.Setenv("GEO2XLSX_TARGET_POINTS", "not-a-number")

	if got := envInt("GEO2XLSX_TARGET_POINTS", 780); got != 780 {
		t.Fatalf("expected fallback 780, got %d", got)
	}
}
