package foldio

// OrderHint is one faceOrders/edgeOrders triple: (A, B, Order), Order
// +1 if A is above B, -1 if A is below B. See fold_algos/include/fold.h's
// std::vector<std::tuple<face_id_t, face_id_t, int>>.
type OrderHint [3]int

// Document is the in-memory form of a .fold JSON file: every key
// fold_algos' FOLD struct declares, using encoding/json struct tags in
// place of a simdjson tag_invoke adapter.
//
// This implementation treats the top-level vertices_coords frame as
// already-folded 3D coordinates (the common single-frame ".fold" layout
// used by flat-folded crease patterns with frame_classes:
// ["foldedForm"]); it does not walk a file_frames sequence to reconstruct
// an unfolded/folded pair, which this module never requires.
type Document struct {
	FileSpec        any      `json:"file_spec,omitempty"`
	FileCreator     string   `json:"file_creator,omitempty"`
	FileAuthor      string   `json:"file_author,omitempty"`
	FileTitle       string   `json:"file_title,omitempty"`
	FileDescription string   `json:"file_description,omitempty"`
	FileClasses     []string `json:"file_classes,omitempty"`

	FrameAuthor      string   `json:"frame_author,omitempty"`
	FrameTitle       string   `json:"frame_title,omitempty"`
	FrameDescription string   `json:"frame_description,omitempty"`
	FrameClasses     []string `json:"frame_classes,omitempty"`
	FrameAttributes  []string `json:"frame_attributes,omitempty"`
	FrameUnit        string   `json:"frame_unit,omitempty"`

	VerticesCoords   [][]float64 `json:"vertices_coords,omitempty"`
	VerticesVertices [][]int     `json:"vertices_vertices,omitempty"`
	VerticesEdges    [][]int     `json:"vertices_edges,omitempty"`

	EdgesVertices   [][2]int  `json:"edges_vertices,omitempty"`
	EdgesAssignment []string  `json:"edges_assignment,omitempty"`
	EdgesFoldAngle  []*float64 `json:"edges_foldAngle,omitempty"`
	EdgesLength     []float64 `json:"edges_length,omitempty"`

	FacesVertices [][]int `json:"faces_vertices,omitempty"`
	FacesEdges    [][]int `json:"faces_edges,omitempty"`

	FaceOrders []OrderHint `json:"faceOrders,omitempty"`
	EdgeOrders []OrderHint `json:"edgeOrders,omitempty"`
}
