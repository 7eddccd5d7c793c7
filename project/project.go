// Package project implements §4.4's 2D projection: mapping each coplanar
// face's folded 3D vertices into its plane group's (tangent, bi) frame,
// exactly, via math/big.Rat, then reversing orientation for faces whose
// normal opposes the group's canonical normal so every projected polygon
// in a group ends up CCW.
//
// The exactness only covers the projection itself — every downstream
// predicate (package geom2d) rounds these points to float64 before
// testing them, so §9's exactness requirement is not met end to end;
// see package geom2d's doc comment and DESIGN.md.
package project

import (
	"math/big"

	"github.com/katalvlaran/layerorder/geom2d"
	"github.com/katalvlaran/layerorder/vecmath"
)

// Point2 is an exact-rational 2D point: (tangent·p, bi·p) for some folded
// vertex p. Keeping these as big.Rat rather than float64 means the
// projection step itself introduces no rounding error. Every predicate
// that consumes a Point2 still rounds it to float64 first (geom2d's
// simplefeatures kernel is float64-only), so this exactness does not
// extend past the ToGeom2D/Float64 boundary — see package geom2d's doc
// comment and DESIGN.md.
type Point2 struct {
	X, Y *big.Rat
}

// Polygon2 is an ordered ring of exact-rational 2D points.
type Polygon2 []Point2

// Raw projects a face's folded 3D vertex loop into the (tangent, bi)
// frame of its plane group, in the face's own original FacesVertices
// order — no orientation normalization applied. Taco segment
// construction (§4.5.3) indexes into this array via At, which applies
// the orientation-flip rule itself.
func Raw(verts []vecmath.Vec3, tangent, bi vecmath.Vec3) Polygon2 {
	poly := make(Polygon2, len(verts))
	for i, v := range verts {
		poly[i] = Point2{
			X: dotRat(tangent, v),
			Y: dotRat(bi, v),
		}
	}

	return poly
}

// Face projects a face's folded 3D vertex loop into the (tangent, bi)
// frame of its plane group. If reverse is true (faces_dir[f] == true,
// i.e. the face's own outward normal opposes the group's canonical
// normal), the resulting ring is reversed so every polygon in a group
// ends up with uniform — CCW — orientation, per §4.4.
func Face(verts []vecmath.Vec3, tangent, bi vecmath.Vec3, reverse bool) Polygon2 {
	poly := Raw(verts, tangent, bi)
	if reverse {
		reversePolygon(poly)
	}

	return poly
}

// reversePolygon reverses the ring's orientation in place while keeping
// vertex 0 first, so the vertex at index i moves to index (n-i) mod n.
func reversePolygon(poly Polygon2) {
	for i, j := 1, len(poly)-1; i < j; i, j = i+1, j-1 {
		poly[i], poly[j] = poly[j], poly[i]
	}
}

// dotRat computes a·v exactly as a big.Rat, treating each float64
// component as the exact rational SetFloat64 produces.
func dotRat(a, v vecmath.Vec3) *big.Rat {
	sum := new(big.Rat)
	sum.Add(sum, ratMul(a.X, v.X))
	sum.Add(sum, ratMul(a.Y, v.Y))
	sum.Add(sum, ratMul(a.Z, v.Z))

	return sum
}

func ratMul(x, y float64) *big.Rat {
	rx := new(big.Rat).SetFloat64(x)
	ry := new(big.Rat).SetFloat64(y)

	return new(big.Rat).Mul(rx, ry)
}

// ToGeom2D converts an exact polygon into the float64 representation the
// geom2d kernel operates on. This is the rounding point where exact
// construction ends and the (inexact, float64) predicate layer begins.
func (p Polygon2) ToGeom2D() (geom2d.Polygon, error) {
	pts := make([]geom2d.Point, len(p))
	for i, v := range p {
		x, _ := v.X.Float64()
		y, _ := v.Y.Float64()
		pts[i] = geom2d.Point{X: x, Y: y}
	}

	return geom2d.NewPolygon(pts)
}

// At returns the point at position i of the face's stored ring (the ring
// Face returns for the same dir), honoring the §4.5.3
// orientation-flip rule: when a face's polygon was stored reversed
// (faces_dir true), the projected vertex that originally sat at index i
// in the face's own FacesVertices order now lives at position n-i (mod
// n) of the stored, already-reversed ring.
//
// raw is the face's projection BEFORE any reversal was applied (i.e. the
// direct tangent/bi dot products in original FacesVertices order); n is
// len(raw); dir is faces_dir[f].
func At(raw Polygon2, i int, dir bool) Point2 {
	n := len(raw)
	idx := i % n
	if dir {
		idx = ((n - i) % n + n) % n
	}

	return raw[idx]
}

// Float64 rounds p to a float64 pair, the one documented boundary where
// satenc's segment construction (§4.5.3) leaves exact arithmetic for the
// geom2d predicate layer.
func (p Point2) Float64() (x, y float64) {
	x, _ = p.X.Float64()
	y, _ = p.Y.Float64()

	return x, y
}
