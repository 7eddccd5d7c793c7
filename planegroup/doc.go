// Package planegroup computes §4.3's coplanar grouping: clustering a
// folded crease pattern's faces into maximal sets that share a plane
// (modulo the global EPS tolerance), then fixing a canonical orthonormal
// (normal, tangent, bi) frame per group and a per-face direction flag.
//
// Coplanarity is a robust but non-transitive predicate (floating-point
// plane equality), so grouping is resolved by computing the transitive
// closure with dsu.DSU over the symmetric pairwise predicate — it is
// deliberately NOT resolved by sorting or canonicalizing plane
// equations directly, which would reintroduce the very non-transitivity
// this design works around (see SPEC_FULL.md's ported §9 design notes).
package planegroup
