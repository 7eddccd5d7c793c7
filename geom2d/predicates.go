package geom2d

import (
	"fmt"

	"github.com/peterstace/simplefeatures/geom"
)

// DoIntersect reports whether a and b overlap in positive 2D area.
// Shared-boundary-only contact (touching along an edge or at a vertex)
// is treated as non-overlap, per §4.5.1.
//
// The underlying kernel (simplefeatures) operates on float64 XY pairs,
// not exact rationals: a and b arrive here already rounded at
// project.Polygon2.ToGeom2D. §9's exactness requirement is met up to
// that rounding step, not beyond it — see package project's doc comment
// and DESIGN.md for the known-limitation this implies near-EPS.
func DoIntersect(a, b Polygon) (bool, error) {
	pa, err := a.sfPolygon()
	if err != nil {
		return false, err
	}
	pb, err := b.sfPolygon()
	if err != nil {
		return false, err
	}

	inter, err := geom.Intersection(pa.AsGeometry(), pb.AsGeometry())
	if err != nil {
		return false, fmt.Errorf("geom2d: do_intersect: %w", err)
	}
	if inter.IsEmpty() {
		return false, nil
	}

	return inter.Dimension() >= 2, nil
}

// Intersection returns the 2D overlap region of a and b as zero or more
// simple exterior-ring polygons (holes, if any, are dropped — layerorder
// only ever reuses this region to test further overlap against a third
// face via DoIntersect, never to build final geometry).
func Intersection(a, b Polygon) ([]Polygon, error) {
	pa, err := a.sfPolygon()
	if err != nil {
		return nil, err
	}
	pb, err := b.sfPolygon()
	if err != nil {
		return nil, err
	}

	inter, err := geom.Intersection(pa.AsGeometry(), pb.AsGeometry())
	if err != nil {
		return nil, fmt.Errorf("geom2d: intersection: %w", err)
	}
	if inter.IsEmpty() || inter.Dimension() < 2 {
		return nil, nil
	}

	switch inter.Type() {
	case geom.TypePolygon:
		p, err := polygonFromSF(inter.MustAsPolygon())
		if err != nil {
			return nil, err
		}

		return []Polygon{p}, nil
	case geom.TypeMultiPolygon:
		mp := inter.MustAsMultiPolygon()
		out := make([]Polygon, 0, mp.NumPolygons())
		for i := 0; i < mp.NumPolygons(); i++ {
			p, err := polygonFromSF(mp.PolygonN(i))
			if err != nil {
				return nil, err
			}
			out = append(out, p)
		}

		return out, nil
	default:
		return nil, nil
	}
}

func polygonFromSF(poly geom.Polygon) (Polygon, error) {
	ring := poly.ExteriorRing()
	seq := ring.Coordinates()
	n := seq.Length()
	if n < 4 {
		return Polygon{}, ErrTooFewPoints
	}
	pts := make([]Point, 0, n-1)
	for i := 0; i < n-1; i++ {
		c := seq.Get(i)
		pts = append(pts, Point{X: c.X, Y: c.Y})
	}

	return NewPolygon(pts)
}

// SegKind classifies a segment/segment intersection.
type SegKind int

const (
	// SegNone: the segments do not meet.
	SegNone SegKind = iota
	// SegPoint: the segments meet transversally at a single point.
	SegPoint
	// SegOverlap: the segments are collinear and overlap along a
	// sub-segment.
	SegOverlap
)

// SegmentsIntersect classifies the intersection of two segments. When
// Kind is SegPoint, Point holds the meeting point; it is zero otherwise.
func SegmentsIntersect(s1, s2 Segment) (SegKind, Point, error) {
	l1, err := segLineString(s1)
	if err != nil {
		return SegNone, Point{}, err
	}
	l2, err := segLineString(s2)
	if err != nil {
		return SegNone, Point{}, err
	}

	inter, err := geom.Intersection(l1.AsGeometry(), l2.AsGeometry())
	if err != nil {
		return SegNone, Point{}, fmt.Errorf("geom2d: segment intersection: %w", err)
	}
	if inter.IsEmpty() {
		return SegNone, Point{}, nil
	}
	if inter.Dimension() == 0 && inter.Type() == geom.TypePoint {
		pt := inter.MustAsPoint()
		xy, ok := pt.XY()
		if !ok {
			return SegNone, Point{}, nil
		}

		return SegPoint, Point{X: xy.X, Y: xy.Y}, nil
	}

	return SegOverlap, Point{}, nil
}

// SegmentsOverlapAsSegment reports whether s1 and s2 are collinear and
// overlap along a positive-length sub-segment (used to pair up creases
// for the taco-taco constraint, §4.5.3).
func SegmentsOverlapAsSegment(s1, s2 Segment) (bool, error) {
	kind, _, err := SegmentsIntersect(s1, s2)
	if err != nil {
		return false, err
	}

	return kind == SegOverlap, nil
}

// SegmentCrossesPolygon implements the §4.5.4 segment-vs-polygon
// predicate: true iff an endpoint of s lies strictly inside p, or s
// crosses p's boundary in exactly two distinct transversal points.
// Collinear overlap with a polygon edge is treated as "not crossing"
// (the segment is an edge of the arrangement, not a crossing chord).
//
// The exactly-two-points rule is only sound for convex p; a nonconvex
// polygon can produce more intersection points, and this predicate will
// then undercount. This mirrors a limitation flagged in the algorithm
// this module was distilled from (TODO: generalize to nonconvex faces
// via a full point-in-polygon / boundary-crossing pass).
func SegmentCrossesPolygon(s Segment, p Polygon) (bool, error) {
	aIn, err := pointStrictlyInside(s.A, p)
	if err != nil {
		return false, err
	}
	bIn, err := pointStrictlyInside(s.B, p)
	if err != nil {
		return false, err
	}
	if aIn || bIn {
		return true, nil
	}

	seen := make(map[Point]struct{})
	n := len(p.Points)
	for i := 0; i < n; i++ {
		edge := Segment{A: p.Points[i], B: p.Points[(i+1)%n]}
		kind, pt, err := SegmentsIntersect(s, edge)
		if err != nil {
			return false, err
		}
		switch kind {
		case SegOverlap:
			return false, nil
		case SegPoint:
			seen[pt] = struct{}{}
		}
	}

	return len(seen) == 2, nil
}

func pointStrictlyInside(pt Point, p Polygon) (bool, error) {
	poly, err := p.sfPolygon()
	if err != nil {
		return false, err
	}
	g := sfPoint(pt).AsGeometry()

	inside, err := geom.Intersects(g, poly.AsGeometry())
	if err != nil {
		return false, fmt.Errorf("geom2d: point-in-polygon: %w", err)
	}
	if !inside {
		return false, nil
	}

	onBoundary, err := geom.Intersects(g, poly.Boundary().AsGeometry())
	if err != nil {
		return false, fmt.Errorf("geom2d: point-on-boundary: %w", err)
	}

	return !onBoundary, nil
}

func segLineString(s Segment) (geom.LineString, error) {
	seq := geom.NewSequence([]float64{s.A.X, s.A.Y, s.B.X, s.B.Y}, geom.DimXY)

	return geom.NewLineString(seq)
}
