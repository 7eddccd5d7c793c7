// Package planearrangement is a reserved extension point for subdividing
// each plane group into the finer arrangement of sub-faces a real
// flat-folding engine would want (fold_algos' PlaneArrangement, built on
// CGAL's exact Arrangement_2 and Boolean_set_operations_2).
//
// Full arrangement construction is out of scope here — derived
// artifacts beyond the pairwise below(f1,f2) relation are not this
// module's concern; this package exists only so a future implementation
// has a stable import path to land in, per fold_algos' own header
// shape. No available Go library offers a CGAL-equivalent exact-
// arrangement engine, so Compute is a documented stub rather than a
// partial implementation.
package planearrangement

import (
	"errors"

	"github.com/katalvlaran/layerorder/fold"
	"github.com/katalvlaran/layerorder/planegroup"
)

// ErrNotImplemented is returned by Compute unconditionally.
var ErrNotImplemented = errors.New("planearrangement: not implemented")

// Arrangement would hold, per plane group, the subdivision of its faces
// into the maximal set of sub-faces that never cross a group member's
// boundary — fold_algos' subvertices_coords/stacks_vertices/
// subfaces_stack/faces_subfaces. Left empty; Compute never populates one.
type Arrangement struct {
	PlaneGroupID fold.PlaneGroupID
}

// Compute is reserved for a future plane-arrangement implementation. It
// always returns ErrNotImplemented; callers needing only the pairwise
// below(f1,f2) relation should use layersolver.Solve instead.
func Compute(r *fold.Record, g *planegroup.Groups, gid fold.PlaneGroupID) (*Arrangement, error) {
	return nil, ErrNotImplemented
}
