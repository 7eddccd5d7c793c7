package fold

import "fmt"

// Validate checks that every array in r is internally consistent: equal
// lengths where index-aligned, and every referenced id in range. It does
// not check edges_faces/faces_edges orientation agreement — that is
// BuildDerived's job, since it also repairs/rebuilds EdgesFaces.
//
// Validate halts the pipeline before any SAT variable is allocated, per
// §7's policy that schema and inconsistency errors are fatal up front.
func (r *Record) Validate() error {
	nv, ne, nf := r.NumVerts(), r.NumEdges(), r.NumFaces()

	if nf == 0 {
		return ErrNoFaces
	}
	if len(r.EdgesAssignment) != ne {
		return fmt.Errorf("%w: edges_assignment has %d entries, want %d", ErrLengthMismatch, len(r.EdgesAssignment), ne)
	}
	if r.EdgesFoldAngle != nil && len(r.EdgesFoldAngle) != ne {
		return fmt.Errorf("%w: edges_foldAngle has %d entries, want %d", ErrLengthMismatch, len(r.EdgesFoldAngle), ne)
	}
	if len(r.FacesEdges) != nf {
		return fmt.Errorf("%w: faces_edges has %d entries, want %d faces", ErrLengthMismatch, len(r.FacesEdges), nf)
	}

	for e, pair := range r.EdgesVertices {
		for _, v := range pair {
			if v < 0 || v >= nv {
				return fmt.Errorf("%w: edges_vertices[%d] references vertex %d, have %d vertices", ErrDanglingReference, e, v, nv)
			}
		}
	}

	for e, a := range r.EdgesAssignment {
		if !a.Valid() {
			return fmt.Errorf("fold: edges_assignment[%d] has invalid code %q", e, byte(a))
		}
	}

	for f, verts := range r.FacesVertices {
		if len(verts) < 3 {
			return fmt.Errorf("fold: faces_vertices[%d] has %d vertices, need at least 3", f, len(verts))
		}
		if len(r.FacesEdges[f]) != len(verts) {
			return fmt.Errorf("%w: faces_edges[%d] has %d entries, faces_vertices[%d] has %d", ErrLengthMismatch, f, len(r.FacesEdges[f]), f, len(verts))
		}
		for _, v := range verts {
			if v < 0 || v >= nv {
				return fmt.Errorf("%w: faces_vertices[%d] references vertex %d, have %d vertices", ErrDanglingReference, f, v, nv)
			}
		}
		for _, e := range r.FacesEdges[f] {
			if e < 0 || e >= ne {
				return fmt.Errorf("%w: faces_edges[%d] references edge %d, have %d edges", ErrDanglingReference, f, e, ne)
			}
		}
	}

	return nil
}
