package fold

import "github.com/katalvlaran/layerorder/vecmath"

// OrderHint is a manually-specified partial stacking hint carried by the
// FOLD format's faceOrders/edgeOrders arrays: (a, b, order) where order
// is +1 if a is above b, -1 if a is below b. layerorder's encoder does
// not currently fold these into the SAT problem (see SPEC_FULL.md's
// Decided Open Questions); Record preserves them purely so foldio can
// round-trip a document without silently dropping data.
type OrderHint struct {
	A, B  int
	Order int
}

// Record is the in-memory, pre-validated FOLD record layerorder's core
// consumes. Every slice is indexed by the corresponding dense id: the
// i'th element of VerticesCoordsFolded describes vertex i, and so on.
//
// A Record is only safe to hand to planegroup.Compute after Validate and
// BuildDerived have both returned nil.
type Record struct {
	// VerticesCoordsFolded[v] is the folded 3D position of vertex v.
	VerticesCoordsFolded []vecmath.Vec3

	// EdgesVertices[e] is the unordered endpoint pair of edge e.
	EdgesVertices [][2]VertID

	// EdgesAssignment[e] is edge e's crease assignment.
	EdgesAssignment []Assignment

	// EdgesFoldAngle[e] is edge e's signed fold angle in degrees, or nil
	// if unspecified.
	EdgesFoldAngle []*float64

	// EdgesLength[e] is the Euclidean length of edge e in folded space.
	// Derived by BuildDerived from VerticesCoordsFolded; nil until then.
	EdgesLength []float64

	// EdgesFaces[e] is the (left, right) face pair adjacent to edge e,
	// using noFace for an absent (boundary) slot. left is the face whose
	// CCW traversal uses e in the direction EdgesVertices[e][0] ->
	// EdgesVertices[e][1].
	//
	// Input-supplied values are advisory: BuildDerived recomputes and
	// overwrites this array from FacesVertices/FacesEdges, returning
	// ErrEdgeFaceConflict if the input disagreed with itself.
	EdgesFaces [][2]FaceID

	// FacesVertices[f] is face f's vertex loop, CCW in its own local
	// frame.
	FacesVertices [][]VertID

	// FacesEdges[f][i] is the edge connecting FacesVertices[f][i] to
	// FacesVertices[f][(i+1)%n].
	FacesEdges [][]EdgeID

	// FacesFaces[f] is face f's per-edge neighbor (the other face
	// sharing FacesEdges[f][i], or noFace), derived by BuildDerived.
	// Not consumed by layersolver itself; exposed for callers building a
	// plane arrangement downstream (see package planearrangement).
	FacesFaces [][]FaceID

	// FaceOrders and EdgeOrders are passthrough partial-order hints; see
	// OrderHint.
	FaceOrders []OrderHint
	EdgeOrders []OrderHint

	derived bool
}

// NumVerts returns the number of vertices in the record.
func (r *Record) NumVerts() int { return len(r.VerticesCoordsFolded) }

// NumEdges returns the number of edges in the record.
func (r *Record) NumEdges() int { return len(r.EdgesVertices) }

// NumFaces returns the number of faces in the record.
func (r *Record) NumFaces() int { return len(r.FacesVertices) }
