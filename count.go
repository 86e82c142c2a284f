package main

import "github.com/paulmach/orb"

// totalCoordsCount returns the number of coordinate pairs across a
// polygon's exterior ring and all of its holes. Any other geometry kind
// counts as zero: non-polygons are filtered out upstream, so they carry
// no weight in the simplification budget.
func totalCoordsCount(g orb.Geometry) int {
	poly, ok := g.(orb.Polygon)
	if !ok {
		return 0
	}

	total := 0
	for _, ring := range poly {
		total += len(ring)
	}
	return total
}
