package foldio

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/layerorder/fold"
	"github.com/katalvlaran/layerorder/vecmath"
)

// ErrInvalidAssignment is returned by ToRecord when edges_assignment
// holds a code outside FOLD's seven single-character values.
var ErrInvalidAssignment = errors.New("foldio: invalid edge assignment code")

// ToRecord converts d into a fold.Record, ready for Validate/BuildDerived.
// EdgesFaces and FacesFaces are left nil; BuildDerived reconstructs both
// from FacesVertices/FacesEdges regardless of whatever edges_faces the
// source file carried, per fold.Record's own documented contract.
func (d *Document) ToRecord() (*fold.Record, error) {
	verts := make([]vecmath.Vec3, len(d.VerticesCoords))
	for i, c := range d.VerticesCoords {
		v, err := toVec3(c)
		if err != nil {
			return nil, fmt.Errorf("foldio: vertices_coords[%d]: %w", i, err)
		}
		verts[i] = v
	}

	assigns := make([]fold.Assignment, len(d.EdgesAssignment))
	for i, s := range d.EdgesAssignment {
		a, err := parseAssignment(s)
		if err != nil {
			return nil, fmt.Errorf("%w: edges_assignment[%d] = %q", err, i, s)
		}
		assigns[i] = a
	}

	return &fold.Record{
		VerticesCoordsFolded: verts,
		EdgesVertices:        d.EdgesVertices,
		EdgesAssignment:      assigns,
		EdgesFoldAngle:       d.EdgesFoldAngle,
		FacesVertices:        copyIntSlices(d.FacesVertices),
		FacesEdges:           copyIntSlices(d.FacesEdges),
		FaceOrders:           toOrderHints(d.FaceOrders),
		EdgeOrders:           toOrderHints(d.EdgeOrders),
	}, nil
}

// FromRecord builds a Document from r, suitable for Write. Metadata
// fields (file_creator, frame_unit, ...) are left zero; callers that want
// to preserve a source document's metadata across a read-modify-write
// round trip should mutate the Document returned by Read directly
// instead of rebuilding one from scratch.
func FromRecord(r *fold.Record) *Document {
	coords := make([][]float64, len(r.VerticesCoordsFolded))
	for i, v := range r.VerticesCoordsFolded {
		coords[i] = []float64{v.X, v.Y, v.Z}
	}

	assigns := make([]string, len(r.EdgesAssignment))
	for i, a := range r.EdgesAssignment {
		assigns[i] = string(a)
	}

	return &Document{
		VerticesCoords:  coords,
		EdgesVertices:   r.EdgesVertices,
		EdgesAssignment: assigns,
		EdgesFoldAngle:  r.EdgesFoldAngle,
		FacesVertices:   r.FacesVertices,
		FacesEdges:      r.FacesEdges,
		FaceOrders:      fromOrderHints(r.FaceOrders),
		EdgeOrders:      fromOrderHints(r.EdgeOrders),
	}
}

func toVec3(c []float64) (vecmath.Vec3, error) {
	switch len(c) {
	case 2:
		return vecmath.Vec3{X: c[0], Y: c[1]}, nil
	case 3:
		return vecmath.Vec3{X: c[0], Y: c[1], Z: c[2]}, nil
	default:
		return vecmath.Vec3{}, fmt.Errorf("expected 2 or 3 coordinates, got %d", len(c))
	}
}

func parseAssignment(s string) (fold.Assignment, error) {
	if len(s) != 1 {
		return 0, ErrInvalidAssignment
	}
	a := fold.Assignment(s[0])
	if !a.Valid() {
		return 0, ErrInvalidAssignment
	}

	return a, nil
}

func copyIntSlices(in [][]int) [][]int {
	if in == nil {
		return nil
	}
	out := make([][]int, len(in))
	for i, row := range in {
		out[i] = append([]int(nil), row...)
	}

	return out
}

func toOrderHints(in []OrderHint) []fold.OrderHint {
	if in == nil {
		return nil
	}
	out := make([]fold.OrderHint, len(in))
	for i, h := range in {
		out[i] = fold.OrderHint{A: h[0], B: h[1], Order: h[2]}
	}

	return out
}

func fromOrderHints(in []fold.OrderHint) []OrderHint {
	if in == nil {
		return nil
	}
	out := make([]OrderHint, len(in))
	for i, h := range in {
		out[i] = OrderHint{h.A, h.B, h.Order}
	}

	return out
}
