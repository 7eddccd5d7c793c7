package geom2d_test

import (
	"testing"

	"github.com/katalvlaran/layerorder/geom2d"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(x0, y0, x1, y1 float64) geom2d.Polygon {
	p, err := geom2d.NewPolygon([]geom2d.Point{
		{X: x0, Y: y0},
		{X: x1, Y: y0},
		{X: x1, Y: y1},
		{X: x0, Y: y1},
	})
	if err != nil {
		panic(err)
	}

	return p
}

func TestDoIntersect_OverlappingSquares(t *testing.T) {
	a := square(0, 0, 1, 1)
	b := square(0.5, 0.5, 1.5, 1.5)
	ok, err := geom2d.DoIntersect(a, b)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDoIntersect_TouchingEdgeOnlyIsNotOverlap(t *testing.T) {
	a := square(0, 0, 1, 1)
	b := square(1, 0, 2, 1)
	ok, err := geom2d.DoIntersect(a, b)
	require.NoError(t, err)
	assert.False(t, ok, "edge-adjacent squares must not count as overlapping")
}

func TestDoIntersect_DisjointSquares(t *testing.T) {
	a := square(0, 0, 1, 1)
	b := square(5, 5, 6, 6)
	ok, err := geom2d.DoIntersect(a, b)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSegmentsIntersect_Transversal(t *testing.T) {
	s1 := geom2d.Segment{A: geom2d.Point{X: 0, Y: 0}, B: geom2d.Point{X: 2, Y: 2}}
	s2 := geom2d.Segment{A: geom2d.Point{X: 0, Y: 2}, B: geom2d.Point{X: 2, Y: 0}}
	kind, pt, err := geom2d.SegmentsIntersect(s1, s2)
	require.NoError(t, err)
	require.Equal(t, geom2d.SegPoint, kind)
	assert.InDelta(t, 1, pt.X, 1e-9)
	assert.InDelta(t, 1, pt.Y, 1e-9)
}

func TestSegmentsIntersect_Collinear(t *testing.T) {
	s1 := geom2d.Segment{A: geom2d.Point{X: 0, Y: 0}, B: geom2d.Point{X: 2, Y: 0}}
	s2 := geom2d.Segment{A: geom2d.Point{X: 1, Y: 0}, B: geom2d.Point{X: 3, Y: 0}}
	kind, _, err := geom2d.SegmentsIntersect(s1, s2)
	require.NoError(t, err)
	assert.Equal(t, geom2d.SegOverlap, kind)

	overlap, err := geom2d.SegmentsOverlapAsSegment(s1, s2)
	require.NoError(t, err)
	assert.True(t, overlap)
}

func TestSegmentCrossesPolygon_EndpointInside(t *testing.T) {
	p := square(0, 0, 2, 2)
	s := geom2d.Segment{A: geom2d.Point{X: 1, Y: 1}, B: geom2d.Point{X: 3, Y: 3}}
	ok, err := geom2d.SegmentCrossesPolygon(s, p)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSegmentCrossesPolygon_TwoTransversalPoints(t *testing.T) {
	p := square(0, 0, 2, 2)
	s := geom2d.Segment{A: geom2d.Point{X: -1, Y: 1}, B: geom2d.Point{X: 3, Y: 1}}
	ok, err := geom2d.SegmentCrossesPolygon(s, p)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSegmentCrossesPolygon_OutsideEntirely(t *testing.T) {
	p := square(0, 0, 2, 2)
	s := geom2d.Segment{A: geom2d.Point{X: 5, Y: 5}, B: geom2d.Point{X: 6, Y: 6}}
	ok, err := geom2d.SegmentCrossesPolygon(s, p)
	require.NoError(t, err)
	assert.False(t, ok)
}
