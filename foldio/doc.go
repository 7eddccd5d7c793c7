// Package foldio reads and writes the FOLD JSON container format
// (fold_algos' fold.h/fold.cpp, translated from its simdjson tag_invoke
// adapter into Go's encoding/json idiom) and converts between it and
// fold.Record.
//
// A Document preserves every field fold_algos' FOLD struct carries, not
// just the ones layersolver consumes: file/frame metadata, vertex
// adjacency arrays, and the faceOrders/edgeOrders partial-order hints
// all round-trip unchanged even though ToRecord ignores most of them.
package foldio
