package geom2d

import (
	"errors"
	"fmt"

	"github.com/peterstace/simplefeatures/geom"
)

// ErrTooFewPoints is returned by NewPolygon when fewer than 3 points are
// supplied.
var ErrTooFewPoints = errors.New("geom2d: polygon needs at least 3 points")

// Point is a 2D point in a plane group's projection frame.
type Point struct {
	X, Y float64
}

// Segment is a directed 2D line segment.
type Segment struct {
	A, B Point
}

// Direction returns the segment's (unnormalized) direction vector B-A.
func (s Segment) Direction() Point {
	return Point{X: s.B.X - s.A.X, Y: s.B.Y - s.A.Y}
}

// Dot returns the dot product of two points treated as vectors.
func Dot(a, b Point) float64 {
	return a.X*b.X + a.Y*b.Y
}

// Polygon is a single simple ring (no holes), stored in the orientation
// its caller chose (layerorder always normalizes to CCW before storing,
// per §4.4).
type Polygon struct {
	Points []Point
}

// NewPolygon wraps a point ring after checking it has at least 3 points;
// neither orientation nor distinctness of the points is checked.
func NewPolygon(points []Point) (Polygon, error) {
	if len(points) < 3 {
		return Polygon{}, ErrTooFewPoints
	}

	return Polygon{Points: points}, nil
}

// sfPolygon builds a simplefeatures Polygon from p's ring, closing it
// (simplefeatures requires the first and last coordinates of a ring to
// match).
func (p Polygon) sfPolygon() (geom.Polygon, error) {
	coords := make([]float64, 0, (len(p.Points)+1)*2)
	for _, pt := range p.Points {
		coords = append(coords, pt.X, pt.Y)
	}
	first := p.Points[0]
	coords = append(coords, first.X, first.Y)

	seq := geom.NewSequence(coords, geom.DimXY)
	ring, err := geom.NewLineString(seq)
	if err != nil {
		return geom.Polygon{}, fmt.Errorf("geom2d: building ring: %w", err)
	}
	poly, err := geom.NewPolygon([]geom.LineString{ring})
	if err != nil {
		return geom.Polygon{}, fmt.Errorf("geom2d: building polygon: %w", err)
	}

	return poly, nil
}

// sfPoint builds a simplefeatures Point from a Point.
func sfPoint(p Point) geom.Point {
	return geom.NewPoint(geom.Coordinates{XY: geom.XY{X: p.X, Y: p.Y}})
}
