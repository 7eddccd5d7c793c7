package fold

import (
	"fmt"

	"github.com/katalvlaran/layerorder/vecmath"
)

// BuildDerived rebuilds EdgesFaces from FacesEdges + FacesVertices (per
// §3's invariant), computes EdgesLength from VerticesCoordsFolded, and
// computes FacesFaces as a convenience adjacency array. Call Validate
// first; BuildDerived assumes array lengths already agree.
//
// A faces_edges entry whose edge does not connect the face's two
// consecutive vertices (in either order) is an ErrEdgeVerticesMismatch;
// the order only selects the slot (0 for v0->v1, 1 for v1->v0).
// Two faces claiming the same oriented slot of the same edge is an
// ErrEdgeFaceConflict — both are InconsistencyErrors at the layersolver
// boundary, halting the pipeline before any plane grouping or SAT
// variable is allocated.
func (r *Record) BuildDerived() error {
	ne, nf := r.NumEdges(), r.NumFaces()

	edgesFaces := make([][2]FaceID, ne)
	for e := range edgesFaces {
		edgesFaces[e] = [2]FaceID{noFace, noFace}
	}

	for f := 0; f < nf; f++ {
		verts := r.FacesVertices[f]
		edges := r.FacesEdges[f]
		n := len(verts)
		for i := 0; i < n; i++ {
			e := edges[i]
			v0 := verts[i]
			v1 := verts[(i+1)%n]
			ev := r.EdgesVertices[e]

			var slot int
			switch {
			case ev[0] == v0 && ev[1] == v1:
				slot = 0
			case ev[0] == v1 && ev[1] == v0:
				slot = 1
			default:
				return fmt.Errorf("%w: face %d edge position %d (edge %d) does not connect vertices %d->%d",
					ErrEdgeVerticesMismatch, f, i, e, v0, v1)
			}

			if existing := edgesFaces[e][slot]; existing != noFace && existing != f {
				return fmt.Errorf("%w: edge %d slot %d claimed by both face %d and face %d",
					ErrEdgeFaceConflict, e, slot, existing, f)
			}
			edgesFaces[e][slot] = f
		}
	}
	r.EdgesFaces = edgesFaces

	facesFaces := make([][]FaceID, nf)
	for f := 0; f < nf; f++ {
		edges := r.FacesEdges[f]
		neighbors := make([]FaceID, len(edges))
		for i, e := range edges {
			pair := r.EdgesFaces[e]
			switch {
			case pair[0] == f:
				neighbors[i] = pair[1]
			case pair[1] == f:
				neighbors[i] = pair[0]
			default:
				neighbors[i] = noFace
			}
		}
		facesFaces[f] = neighbors
	}
	r.FacesFaces = facesFaces

	if len(r.VerticesCoordsFolded) > 0 {
		lengths := make([]float64, ne)
		for e, pair := range r.EdgesVertices {
			p0 := r.VerticesCoordsFolded[pair[0]]
			p1 := r.VerticesCoordsFolded[pair[1]]
			lengths[e] = vecmath.Len(vecmath.Sub(p1, p0))
		}
		r.EdgesLength = lengths
	}

	r.derived = true

	return nil
}

// Derived reports whether BuildDerived has successfully run.
func (r *Record) Derived() bool { return r.derived }
