package vecmath_test

import (
	"testing"

	"github.com/katalvlaran/layerorder/vecmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDotCross(t *testing.T) {
	x := vecmath.Vec3{X: 1, Y: 0, Z: 0}
	y := vecmath.Vec3{X: 0, Y: 1, Z: 0}
	assert.InDelta(t, 0, vecmath.Dot(x, y), 1e-12)
	z := vecmath.Cross(x, y)
	assert.InDelta(t, 1, z.Z, 1e-12)
}

func TestNormalizeDegenerate(t *testing.T) {
	_, err := vecmath.Normalize(vecmath.Vec3{})
	require.ErrorIs(t, err, vecmath.ErrDegenerateNormal)
}

func TestFaceNormalUnitSquare(t *testing.T) {
	// CCW unit square in the XY plane; Newell over the first triangle
	// (0,0) -> (1,0) -> (1,1) should yield +Z.
	verts := []vecmath.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 1, Y: 1, Z: 0},
		{X: 0, Y: 1, Z: 0},
	}
	n, err := vecmath.FaceNormal(verts)
	require.NoError(t, err)
	assert.InDelta(t, 0, n.X, 1e-9)
	assert.InDelta(t, 0, n.Y, 1e-9)
	assert.InDelta(t, 1, n.Z, 1e-9)
}

func TestFaceNormalCollinearIsDegenerate(t *testing.T) {
	verts := []vecmath.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 1, Y: 0, Z: 0},
		{X: 2, Y: 0, Z: 0},
	}
	_, err := vecmath.FaceNormal(verts)
	require.ErrorIs(t, err, vecmath.ErrDegenerateNormal)
}

func TestL1L2(t *testing.T) {
	a := []float64{0, 0, 0, 1}
	b := []float64{1, 0, 0, 1}
	assert.InDelta(t, 1, vecmath.L1(a, b), 1e-12)
	assert.InDelta(t, 1, vecmath.L2(a, b), 1e-12)

	neg := vecmath.Negate(b)
	assert.Equal(t, []float64{-1, 0, 0, -1}, neg)
}
