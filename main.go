package main

import (
	"errors"
	"log"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var cfg Config

	cmd := &cobra.Command{
		Use:   "geo2xlsx",
		Short: "Convert GeoJSON polygons to an Excel table plus a simplified GeoJSON",
		Long: "geo2xlsx explodes every MultiPolygon of the input into single polygons,\n" +
			"simplifies the ones too large to fit an Excel cell, and writes one row per\n" +
			"polygon (attributes + embedded geometry) next to a simplified FeatureCollection.",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg = LoadConfig(cfg)
			if cfg.InputPath == "" || cfg.XLSXPath == "" || cfg.GeoJSONPath == "" {
				return errors.New("input, xlsx and geojson paths are required (flags or GEO2XLSX_* environment)")
			}

			log.Println("========================================")
			log.Println("🗺️  GeoJSON → Excel converter")
			log.Println("========================================")
			log.Printf("   Target points: %d (converge below %d, max %d iterations)\n",
				cfg.TargetPoints, cfg.ConvergeBelow, cfg.MaxIterations)

			return runPipeline(cfg)
		},
	}

	cmd.Flags().StringVarP(&cfg.InputPath, "input", "i", "", "input GeoJSON file (Feature or FeatureCollection)")
	cmd.Flags().StringVar(&cfg.XLSXPath, "xlsx", "", "output Excel file")
	cmd.Flags().StringVar(&cfg.GeoJSONPath, "geojson", "", "output simplified GeoJSON file")
	cmd.Flags().IntVar(&cfg.TargetPoints, "target-points", 0, "point budget per polygon (default 780)")
	cmd.Flags().IntVar(&cfg.ConvergeBelow, "converge-below", 0, "point ceiling the tolerance search converges under (default 780)")
	cmd.Flags().IntVar(&cfg.MaxIterations, "max-iterations", 0, "cap on tolerance search steps (default 400)")

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
