// Package geom2d adapts layerorder's plane-projected polygons onto a real
// 2D computational-geometry kernel so that the overlap, intersection,
// and segment-crossing predicates §4.5 of the layer-order algorithm
// needs do not have to be reimplemented from scratch.
//
// The backing kernel is github.com/peterstace/simplefeatures/geom, whose
// predicates operate on float64 XY pairs. Point coordinates arrive here
// as exact big.Rat values from package project (the tangent/bitangent
// dot products of folded vertex coordinates) and are rounded to float64
// at the project.Polygon2.ToGeom2D boundary, immediately before any
// predicate in this package sees them.
//
// This is a known limitation, not a solved exactness guarantee: the
// project package's big.Rat arithmetic keeps the projection step itself
// error-free, but every predicate geom2d exposes (DoIntersect,
// Intersection, SegmentsIntersect, pointStrictlyInside) ultimately
// tests float64-rounded coordinates. Inputs whose true overlap/crossing
// outcome flips within a few ULPs of zero can therefore be misjudged,
// same as the §4.5.4 non-convex-polygon limitation this module carries.
// See DESIGN.md for why this is the best available real dependency in
// the pack rather than a from-scratch exact-rational kernel.
package geom2d
