package main

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// SimplificationResult records one adaptive simplification run.
type SimplificationResult struct {
	Geometry         orb.Polygon
	Tolerance        float64
	OriginalPoints   int
	SimplifiedPoints int
}

// Info renders the summary column for the table export: either the no-op
// marker or "orig→simp points (tolérance=…)".
func (r SimplificationResult) Info() string {
	if r.Tolerance == 0 {
		return "Aucune simplification"
	}
	return fmt.Sprintf("%d→%d points (tolérance=%.0e)",
		r.OriginalPoints, r.SimplifiedPoints, r.Tolerance)
}

// adaptivePolygonSimplify searches for a simplification tolerance that
// brings the polygon's coordinate count under cfg.ConvergeBelow. A polygon
// already at or under cfg.TargetPoints is returned untouched with a zero
// tolerance.
//
// The tolerance starts near-lossless at 1e-10 and grows multiplicatively
// by the ratio of current size to target size, capped at 2x per step so a
// single step never overshoots wildly. Every step re-simplifies the
// original polygon at the escalated tolerance rather than refining the
// previous result, so simplification error does not compound. Exhausting
// cfg.MaxIterations is not an error: the best result reached is returned.
func adaptivePolygonSimplify(poly orb.Polygon, cfg Config) SimplificationResult {
	original := totalCoordsCount(poly)
	if original <= cfg.TargetPoints {
		return SimplificationResult{
			Geometry:         poly,
			Tolerance:        0,
			OriginalPoints:   original,
			SimplifiedPoints: original,
		}
	}

	tolerance := 1e-10
	simplified := simplifyPreservingTopology(poly, tolerance)

	for iteration := 0; totalCoordsCount(simplified) > cfg.ConvergeBelow && iteration < cfg.MaxIterations; iteration++ {
		errorRatio := float64(totalCoordsCount(simplified)) / float64(cfg.TargetPoints)
		tolerance *= math.Min(errorRatio, 2)
		simplified = simplifyPreservingTopology(poly, tolerance)
	}

	return SimplificationResult{
		Geometry:         simplified,
		Tolerance:        tolerance,
		OriginalPoints:   original,
		SimplifiedPoints: totalCoordsCount(simplified),
	}
}
