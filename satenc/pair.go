package satenc

import (
	"github.com/katalvlaran/layerorder/fold"
	"github.com/katalvlaran/layerorder/sat"
)

// Pair is a canonical unordered face pair, Lo < Hi: a single canonical
// variable per unordered face pair, with a sign-flip for direction,
// makes antisymmetry a tautology rather than a clause.
type Pair struct {
	Lo, Hi fold.FaceID
}

// canon orders f1, f2 into a Pair.
func canon(f1, f2 fold.FaceID) Pair {
	if f1 > f2 {
		f1, f2 = f2, f1
	}

	return Pair{Lo: f1, Hi: f2}
}

// Encoder accumulates overlap variables and clauses for one or more plane
// groups against a single underlying sat.Solver.
type Encoder struct {
	solver sat.Solver
	vars   map[Pair]sat.Var
	order  []Pair
}

// New returns an Encoder that will allocate variables and assert clauses
// on solver.
func New(solver sat.Solver) *Encoder {
	return &Encoder{
		solver: solver,
		vars:   make(map[Pair]sat.Var),
	}
}

// Pairs returns every pair with an allocated overlap variable, in the
// ascending order they were allocated (§9 determinism: groups processed
// in id order, pairs lexicographically within a group).
func (enc *Encoder) Pairs() []Pair {
	return enc.order
}

// HasVar reports whether p has an allocated overlap variable.
func (enc *Encoder) HasVar(p Pair) bool {
	_, ok := enc.vars[p]

	return ok
}

// lit returns the literal for "f1 below f2", honoring §4.5's sign-flip
// convention: ok is false if f1 and f2 have no overlap variable.
func (enc *Encoder) lit(f1, f2 fold.FaceID) (sat.Lit, bool) {
	p := canon(f1, f2)
	v, ok := enc.vars[p]
	if !ok {
		return sat.Lit{}, false
	}
	l := sat.Pos(v)
	if f1 > f2 {
		l = sat.Not(l)
	}

	return l, true
}

// Below reports the solved value of below(f1,f2) after a successful
// Solve. ok is false if f1,f2 never had an overlap variable.
func (enc *Encoder) Below(f1, f2 fold.FaceID) (below, ok bool) {
	l, ok := enc.lit(f1, f2)
	if !ok {
		return false, false
	}
	v := enc.solver.Value(l.V)
	if l.Neg {
		v = !v
	}

	return v, true
}
