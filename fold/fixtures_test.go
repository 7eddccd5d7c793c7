package fold_test

import (
	"github.com/katalvlaran/layerorder/fold"
	"github.com/katalvlaran/layerorder/vecmath"
)

// flatSquare returns the S1 fixture: a single unfolded unit square, four
// boundary edges.
func flatSquare() *fold.Record {
	return &fold.Record{
		VerticesCoordsFolded: []vecmath.Vec3{
			{X: 0, Y: 0, Z: 0},
			{X: 1, Y: 0, Z: 0},
			{X: 1, Y: 1, Z: 0},
			{X: 0, Y: 1, Z: 0},
		},
		EdgesVertices: [][2]int{
			{0, 1}, {1, 2}, {2, 3}, {3, 0},
		},
		EdgesAssignment: []fold.Assignment{
			fold.Boundary, fold.Boundary, fold.Boundary, fold.Boundary,
		},
		FacesVertices: [][]int{{0, 1, 2, 3}},
		FacesEdges:    [][]int{{0, 1, 2, 3}},
	}
}

// stackedSquares returns a schema-only fixture: two squares sharing edge
// (1,2) with a valley assignment on the shared edge, both flat in the
// z=0 plane. Used to exercise edges_faces derivation and plane
// grouping; layersolver's S2 test builds its own geometrically-folded
// overlapping fixture where the two faces actually coincide in 2D.
func stackedSquares() *fold.Record {
	return &fold.Record{
		VerticesCoordsFolded: []vecmath.Vec3{
			{X: 0, Y: 0, Z: 0}, // 0
			{X: 1, Y: 0, Z: 0}, // 1
			{X: 1, Y: 1, Z: 0}, // 2
			{X: 0, Y: 1, Z: 0}, // 3
			{X: 2, Y: 0, Z: 0}, // 4 (unfolded: face 1 extends to x=2)
			{X: 2, Y: 1, Z: 0}, // 5
		},
		EdgesVertices: [][2]int{
			{0, 1}, {1, 2}, {2, 3}, {3, 0}, // face 0 boundary, edge 1 shared
			{1, 4}, {4, 5}, {5, 2}, // face 1 remaining boundary
		},
		EdgesAssignment: []fold.Assignment{
			fold.Boundary, fold.Valley, fold.Boundary, fold.Boundary,
			fold.Boundary, fold.Boundary, fold.Boundary,
		},
		FacesVertices: [][]int{
			{0, 1, 2, 3},
			{1, 4, 5, 2},
		},
		FacesEdges: [][]int{
			{0, 1, 2, 3},
			{4, 5, 6, 1},
		},
	}
}
