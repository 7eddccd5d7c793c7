package layersolver

import (
	"github.com/katalvlaran/layerorder/fold"
	"github.com/katalvlaran/layerorder/planegroup"
	"github.com/katalvlaran/layerorder/satenc"
)

// Pair is satenc's canonical unordered overlap-variable pair, re-exported
// so callers never need to import satenc directly.
type Pair = satenc.Pair

// Result is a solved layer-order problem: every overlap pair and its
// resolved below(f1,f2) direction, plus the plane grouping the solve was
// built over.
type Result struct {
	enc     *satenc.Encoder
	groups  *planegroup.Groups
	skipped []fold.FaceID
}

// Pairs returns every face pair with an overlap variable, in the order
// the variables were allocated (§9 determinism: group id ascending, then
// lexicographic within a group).
func (r *Result) Pairs() []Pair {
	return r.enc.Pairs()
}

// Below reports the solved value of below(f1,f2). ok is false if f1,f2
// have no overlap variable (they never overlapped in 2D, or lie in
// different plane groups).
func (r *Result) Below(f1, f2 fold.FaceID) (below, ok bool) {
	return r.enc.Below(f1, f2)
}

// PlaneGroups exposes the plane grouping the solve was computed over, for
// callers that want the frame/direction data directly (e.g. a future
// planearrangement consumer).
func (r *Result) PlaneGroups() *planegroup.Groups {
	return r.groups
}

// SkippedFaces lists the face ids ComputeBestEffort excluded due to
// degenerate geometry; empty unless WithBestEffort(true) was set and at
// least one face was skipped.
func (r *Result) SkippedFaces() []fold.FaceID {
	return r.skipped
}
