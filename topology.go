package main

import (
	"math"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/orb/simplify"
)

// simplifyPreservingTopology runs Douglas-Peucker at the given tolerance
// and keeps the result only if every surviving ring is still a valid,
// non-self-intersecting ring. Otherwise the polygon is returned unchanged
// and the caller's escalating tolerance retries on a later step.
func simplifyPreservingTopology(poly orb.Polygon, tolerance float64) orb.Polygon {
	simplified := simplify.DouglasPeucker(tolerance).Polygon(poly.Clone())
	if len(simplified) == 0 {
		return poly
	}
	for _, ring := range simplified {
		if !ringIsValid(ring) {
			return poly
		}
	}
	return simplified
}

// ringIsValid checks closure, the 4-point minimum for a closed ring,
// a non-zero area, and the absence of self-intersections.
func ringIsValid(ring orb.Ring) bool {
	if len(ring) < 4 {
		return false
	}
	if ring[0] != ring[len(ring)-1] {
		return false
	}
	if planar.Area(ring) == 0 {
		return false
	}
	return !ringSelfIntersects(ring)
}

// segmentEntry wraps one ring edge for R-tree storage
type segmentEntry struct {
	p1, p2 orb.Point
	bbox   rtreego.Rect
}

// Bounds implements rtreego.Spatial interface
func (s *segmentEntry) Bounds() rtreego.Rect {
	return s.bbox
}

// ringSelfIntersects reports whether any two non-adjacent edges of the
// ring cross. Candidate pairs come from an R-tree over edge bounding
// boxes instead of the quadratic all-pairs scan.
func ringSelfIntersects(ring orb.Ring) bool {
	tree := rtreego.NewTree(2, 2, 8)
	entries := make([]*segmentEntry, 0, len(ring)-1)

	for i := 0; i < len(ring)-1; i++ {
		bbox, err := segmentRect(ring[i], ring[i+1])
		if err != nil {
			continue
		}
		entry := &segmentEntry{p1: ring[i], p2: ring[i+1], bbox: bbox}
		entries = append(entries, entry)
		tree.Insert(entry)
	}

	for _, seg := range entries {
		for _, item := range tree.SearchIntersect(seg.bbox) {
			other := item.(*segmentEntry)
			if other == seg {
				continue
			}
			if segmentsCross(seg.p1, seg.p2, other.p1, other.p2) {
				return true
			}
		}
	}
	return false
}

// segmentRect computes the axis-aligned bounding box for one ring edge.
// rtreego rejects zero-extent rectangles, so axis-parallel edges get a
// hair of padding.
func segmentRect(a, b orb.Point) (rtreego.Rect, error) {
	const pad = 1e-12

	minX := math.Min(a.X(), b.X())
	minY := math.Min(a.Y(), b.Y())
	maxX := math.Max(a.X(), b.X())
	maxY := math.Max(a.Y(), b.Y())

	return rtreego.NewRect(
		rtreego.Point{minX - pad, minY - pad},
		[]float64{maxX - minX + 2*pad, maxY - minY + 2*pad},
	)
}

// segmentsCross checks if two ring edges intersect. Edges sharing an
// endpoint (adjacent edges, or the closing edge meeting the first) do not
// count as crossings.
func segmentsCross(p1, p2, p3, p4 orb.Point) bool {
	if (p1 == p3 && p2 == p4) || (p1 == p4 && p2 == p3) {
		return false
	}
	if p1 == p3 || p1 == p4 || p2 == p3 || p2 == p4 {
		return false
	}

	d1 := direction(p3, p4, p1)
	d2 := direction(p3, p4, p2)
	d3 := direction(p1, p2, p3)
	d4 := direction(p1, p2, p4)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}

	// Check for collinear cases
	if d1 == 0 && onSegment(p3, p4, p1) {
		return true
	}
	if d2 == 0 && onSegment(p3, p4, p2) {
		return true
	}
	if d3 == 0 && onSegment(p1, p2, p3) {
		return true
	}
	if d4 == 0 && onSegment(p1, p2, p4) {
		return true
	}

	return false
}

// direction calculates the cross product to determine orientation
func direction(p1, p2, p3 orb.Point) float64 {
	return (p3.X()-p1.X())*(p2.Y()-p1.Y()) - (p2.X()-p1.X())*(p3.Y()-p1.Y())
}

// onSegment checks if point q lies on segment pr
func onSegment(p, r, q orb.Point) bool {
	return q.X() <= math.Max(p.X(), r.X()) && q.X() >= math.Min(p.X(), r.X()) &&
		q.Y() <= math.Max(p.Y(), r.Y()) && q.Y() >= math.Min(p.Y(), r.Y())
}
