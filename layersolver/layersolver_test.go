package layersolver_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/layerorder/fold"
	"github.com/katalvlaran/layerorder/layersolver"
	"github.com/katalvlaran/layerorder/vecmath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flatSquareRecord builds a fixture of a single unoccluded
// face, trivially SAT with no overlap pairs at all.
func flatSquareRecord() *fold.Record {
	return &fold.Record{
		VerticesCoordsFolded: []vecmath.Vec3{
			{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
		},
		EdgesVertices: [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}},
		EdgesAssignment: []fold.Assignment{
			fold.Boundary, fold.Boundary, fold.Boundary, fold.Boundary,
		},
		FacesVertices: [][]int{{0, 1, 2, 3}},
		FacesEdges:    [][]int{{0, 1, 2, 3}},
	}
}

// valleyStackRecord builds a fixture of two unit squares
// sharing an edge, one folded 180 degrees (valley) onto the other.
func valleyStackRecord() *fold.Record {
	return &fold.Record{
		VerticesCoordsFolded: []vecmath.Vec3{
			{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
			{X: 0, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0},
		},
		EdgesVertices: [][2]int{
			{0, 1}, {1, 2}, {2, 3}, {3, 0}, {1, 4}, {4, 5}, {5, 2},
		},
		EdgesAssignment: []fold.Assignment{
			fold.Boundary, fold.Valley, fold.Boundary, fold.Boundary,
			fold.Boundary, fold.Boundary, fold.Boundary,
		},
		FacesVertices: [][]int{{0, 1, 2, 3}, {2, 1, 4, 5}},
		FacesEdges:    [][]int{{0, 1, 2, 3}, {1, 4, 5, 6}},
	}
}

// disjointSquaresRecord builds a fixture of two coplanar unit
// squares offset in X, sharing no 2D area and hence no overlap variable.
func disjointSquaresRecord() *fold.Record {
	return &fold.Record{
		VerticesCoordsFolded: []vecmath.Vec3{
			{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
			{X: 2, Y: 0, Z: 0}, {X: 3, Y: 0, Z: 0}, {X: 3, Y: 1, Z: 0}, {X: 2, Y: 1, Z: 0},
		},
		EdgesVertices: [][2]int{
			{0, 1}, {1, 2}, {2, 3}, {3, 0},
			{4, 5}, {5, 6}, {6, 7}, {7, 4},
		},
		EdgesAssignment: []fold.Assignment{
			fold.Boundary, fold.Boundary, fold.Boundary, fold.Boundary,
			fold.Boundary, fold.Boundary, fold.Boundary, fold.Boundary,
		},
		FacesVertices: [][]int{{0, 1, 2, 3}, {4, 5, 6, 7}},
		FacesEdges:    [][]int{{0, 1, 2, 3}, {4, 5, 6, 7}},
	}
}

// degenerateFaceRecord adds a zero-area, collinear "face" alongside a
// good unit square, for exercising WithBestEffort(true).
func degenerateFaceRecord() *fold.Record {
	return &fold.Record{
		VerticesCoordsFolded: []vecmath.Vec3{
			{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 1, Y: 1, Z: 0}, {X: 0, Y: 1, Z: 0},
			{X: 5, Y: 0, Z: 0}, {X: 6, Y: 0, Z: 0}, {X: 7, Y: 0, Z: 0},
		},
		EdgesVertices: [][2]int{
			{0, 1}, {1, 2}, {2, 3}, {3, 0},
			{4, 5}, {5, 6}, {6, 4},
		},
		EdgesAssignment: []fold.Assignment{
			fold.Boundary, fold.Boundary, fold.Boundary, fold.Boundary,
			fold.Boundary, fold.Boundary, fold.Boundary,
		},
		FacesVertices: [][]int{{0, 1, 2, 3}, {4, 5, 6}},
		FacesEdges:    [][]int{{0, 1, 2, 3}, {4, 5, 6}},
	}
}

func TestSolve_FlatSquare_SatisfiableWithNoPairs(t *testing.T) {
	r := flatSquareRecord()

	res, err := layersolver.Solve(r)
	require.NoError(t, err)
	assert.Empty(t, res.Pairs())

	_, ok := res.Below(0, 0)
	assert.False(t, ok)
}

func TestSolve_ValleyStack_SingleDeterminedPair(t *testing.T) {
	r := valleyStackRecord()

	res, err := layersolver.Solve(r)
	require.NoError(t, err)

	require.Len(t, res.Pairs(), 1)
	assert.Equal(t, layersolver.Pair{Lo: 0, Hi: 1}, res.Pairs()[0])

	below01, ok := res.Below(0, 1)
	require.True(t, ok)
	below10, ok := res.Below(1, 0)
	require.True(t, ok)
	assert.Equal(t, !below01, below10, "below(f1,f2) and below(f2,f1) must disagree")
}

func TestSolve_DisjointSquares_NoPairs(t *testing.T) {
	r := disjointSquaresRecord()

	res, err := layersolver.Solve(r)
	require.NoError(t, err)
	assert.Empty(t, res.Pairs())
}

func TestSolve_EmptyRecord_SchemaError(t *testing.T) {
	_, err := layersolver.Solve(&fold.Record{})
	require.Error(t, err)

	var lerr *layersolver.Error
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, layersolver.KindSchemaError, lerr.Kind)
}

func TestSolve_DegenerateFace_FailsWithoutBestEffort(t *testing.T) {
	r := degenerateFaceRecord()

	_, err := layersolver.Solve(r)
	require.Error(t, err)

	var lerr *layersolver.Error
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, layersolver.KindDegenerateGeometry, lerr.Kind)
}

func TestSolve_DegenerateFace_BestEffortSkipsAndContinues(t *testing.T) {
	r := degenerateFaceRecord()

	res, err := layersolver.Solve(r, layersolver.WithBestEffort(true))
	require.NoError(t, err)

	assert.Equal(t, []fold.FaceID{1}, res.SkippedFaces())
	assert.Empty(t, res.Pairs(), "the lone surviving face has no overlap partner")
}
