// Package fold defines the in-memory FoldRecord ("Record" here) that is
// the sole input to layerorder's geometry and SAT pipeline, plus the
// validation and derived-array reconstruction every other package in
// this module assumes has already run.
//
// Record mirrors the FOLD format's per-vertex, per-edge, and per-face
// arrays (vertices_coords_folded, edges_vertices, edges_assignment,
// faces_vertices, faces_edges, edges_faces, ...), using dense
// zero-based integer IDs throughout (VertID, EdgeID, FaceID).
//
// Record is intentionally read-only to downstream packages once
// Validate/BuildDerived have run: nothing beyond this package mutates a
// Record's arrays. Record does not itself parse FOLD's on-disk JSON —
// that adapter lives in package foldio; fold.Record is the pre-validated
// shape foldio produces and layersolver consumes.
//
// Errors:
//
//	ErrLengthMismatch      - a per-entity array has the wrong length.
//	ErrDanglingReference    - an edge/face array references an out-of-range id.
//	ErrEdgeFaceConflict     - two faces claim the same oriented slot of an edge.
//	ErrEdgeVerticesMismatch - faces_edges/faces_vertices disagree with edges_vertices.
package fold
