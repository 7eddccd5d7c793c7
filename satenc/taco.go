package satenc

import (
	"github.com/katalvlaran/layerorder/fold"
	"github.com/katalvlaran/layerorder/geom2d"
	"github.com/katalvlaran/layerorder/planegroup"
	"github.com/katalvlaran/layerorder/project"
	"github.com/katalvlaran/layerorder/sat"
)

// tacoEdge is one crease edge recorded while walking a plane group's
// faces, kept for the second, pairwise taco-taco pass (§4.5.3's
// "pg_in_pg_edges[g]").
type tacoEdge struct {
	Edge    fold.EdgeID
	Left    fold.FaceID // tacoL
	Right   fold.FaceID // tacoR
	Assign  fold.Assignment
	Segment geom2d.Segment
	LeftDir bool // faces_dir[Left]
}

// emitTacoConstraints implements §4.5.3 end to end: the per-edge
// taco-tortilla walk (steps 1-6) followed by the pairwise taco-taco pass
// over every two recorded crease edges whose projected segments overlap
// in a segment.
func (enc *Encoder) emitTacoConstraints(r *fold.Record, g *planegroup.Groups, ctx *groupContext) error {
	faces := sortedFaces(ctx.faces)
	var taco []tacoEdge

	for _, tacoL := range faces {
		edges := r.FacesEdges[tacoL]
		raw := ctx.rawProj[tacoL]
		dir := g.FacesDir[tacoL]

		for i, e := range edges {
			assign := r.EdgesAssignment[e]
			// Step 1: skip Boundary/Cut edges — they carry no opposite face
			// in the group and no stacking obligation.
			if assign == fold.Boundary || assign == fold.Cut {
				continue
			}

			// Step 2: only the edge's own "left" slot owner walks it; the
			// other face (if any) picks it up from the opposite orientation.
			ef := r.EdgesFaces[e]
			if ef[0] != tacoL {
				continue
			}

			// Step 3: the right-hand face must exist and share the group.
			tacoR := ef[1]
			if tacoR == fold.NoFace || g.FacesPlaneGroup[tacoR] != g.FacesPlaneGroup[tacoL] {
				continue
			}

			// Step 4: build the projected crease segment v_i -> v_{i+1},
			// honoring the orientation-flip rule: on a reversed ring the
			// vertex at FacesVertices index i sits at position (n-i) mod n.
			n := len(raw)
			pos0, pos1 := i, (i+1)%n
			if dir {
				pos0, pos1 = (n-pos0)%n, (n-pos1)%n
			}
			p0 := project.At(raw, pos0, dir)
			p1 := project.At(raw, pos1, dir)
			x0, y0 := p0.Float64()
			x1, y1 := p1.Float64()
			seg := geom2d.Segment{A: geom2d.Point{X: x0, Y: y0}, B: geom2d.Point{X: x1, Y: y1}}

			taco = append(taco, tacoEdge{
				Edge: e, Left: tacoL, Right: tacoR, Assign: assign,
				Segment: seg, LeftDir: dir,
			})

			// Step 5: fix the order across a Mountain/Valley crease.
			if assign.IsCrease() {
				if l, ok := enc.lit(tacoL, tacoR); ok {
					if unitBelow(dir, assign) {
						enc.solver.AddClause(l)
					} else {
						enc.solver.AddClause(sat.Not(l))
					}
				}
			}

			// Step 6: every tortilla face whose projection crosses s_e keeps
			// the same side of both taco sheets.
			for _, tortilla := range faces {
				if tortilla == tacoL || tortilla == tacoR {
					continue
				}
				crosses, err := geom2d.SegmentCrossesPolygon(seg, ctx.geomPoly[tortilla])
				if err != nil {
					return err
				}
				if !crosses {
					continue
				}

				ltl, ok1 := enc.lit(tortilla, tacoL)
				ltr, ok2 := enc.lit(tortilla, tacoR)
				if !ok1 || !ok2 {
					continue
				}
				enc.solver.AddClause(sat.Not(ltl), ltr)
				enc.solver.AddClause(ltl, sat.Not(ltr))
			}
		}
	}

	return enc.emitTacoTaco(taco)
}

// unitBelow computes below(tacoL,tacoR) for a Mountain/Valley crease
// edge, per §4.5.3 step 5: below(tacoL,tacoR) == dirL == (assign ==
// Mountain). Valley on a dir=false face puts tacoR above tacoL
// (below(tacoL,tacoR)=true); Mountain inverts it; flipping dirL mirrors
// the whole rule because the projection's own orientation is reversed.
func unitBelow(dirL bool, assign fold.Assignment) bool {
	return dirL == (assign == fold.Mountain)
}

// emitTacoTaco implements §4.5.3's pairwise pass over recorded crease
// edges whose projected segments overlap in a positive-length segment
// (not merely a point).
func (enc *Encoder) emitTacoTaco(taco []tacoEdge) error {
	for i := 0; i < len(taco); i++ {
		for j := i + 1; j < len(taco); j++ {
			e1, e2 := taco[i], taco[j]
			overlap, err := geom2d.SegmentsOverlapAsSegment(e1.Segment, e2.Segment)
			if err != nil {
				return err
			}
			if !overlap {
				continue
			}

			enc.emitTacoTacoPair(e1, e2)
		}
	}

	return nil
}

func (enc *Encoder) emitTacoTacoPair(e1, e2 tacoEdge) {
	oppDir := geom2d.Dot(e1.Segment.Direction(), e2.Segment.Direction()) < 0
	sideFlip := e1.LeftDir != e2.LeftDir != oppDir

	e1Crease, e2Crease := e1.Assign.IsCrease(), e2.Assign.IsCrease()

	switch {
	case e1Crease && e2Crease:
		enc.emitTacoTacoBothCrease(e1, e2, sideFlip)
	case e1Crease != e2Crease:
		crease, flat := e1, e2
		if e2Crease {
			crease, flat = e2, e1
		}
		enc.emitTacoTacoMixed(crease, flat, sideFlip)
	default:
		enc.emitTacoTacoBothFlat(e1, e2, sideFlip)
	}
}

// downUp designates the lower- and upper-sheet face of a crease edge: if
// below(Left,Right) holds, Left is the lower sheet.
func downUp(e tacoEdge) (down, up fold.FaceID) {
	if unitBelow(e.LeftDir, e.Assign) {
		return e.Left, e.Right
	}

	return e.Right, e.Left
}

// emitTacoTacoBothCrease implements §4.5.3 case (a): two creases whose
// projected segments overlap; forbid both orders of the e1/e2 sheets
// interleaving.
func (enc *Encoder) emitTacoTacoBothCrease(e1, e2 tacoEdge, sideFlip bool) {
	if sideFlip {
		return
	}
	e1d, e1u := downUp(e1)
	e2d, e2u := downUp(e2)

	enc.addClauseIfComplete(negPair(e1d, e2d), negPair(e2d, e1u), negPair(e1u, e2u))
	enc.addClauseIfComplete(negPair(e2d, e1d), negPair(e1d, e2u), negPair(e2u, e1u))
}

// emitTacoTacoMixed implements §4.5.3 case (b): one crease edge, one
// flat/join edge; the flat face may not sit sandwiched inside the crease.
func (enc *Encoder) emitTacoTacoMixed(crease, flat tacoEdge, sideFlip bool) {
	e2m := flat.Left
	if sideFlip {
		e2m = flat.Right
	}
	d, u := downUp(crease)

	enc.addClauseIfComplete(negPair(d, e2m), negPair(e2m, u))
}

// emitTacoTacoBothFlat implements §4.5.3 case (c): both edges flat/join;
// the two left-right pairings must agree on the same side, swapped when
// sideFlip.
func (enc *Encoder) emitTacoTacoBothFlat(e1, e2 tacoEdge, sideFlip bool) {
	a, b := e2.Left, e2.Right
	if sideFlip {
		a, b = e2.Right, e2.Left
	}

	l1, ok1 := enc.lit(e1.Left, a)
	l2, ok2 := enc.lit(e1.Right, b)
	if !ok1 || !ok2 {
		return
	}
	enc.solver.AddClause(sat.Not(l1), l2)
	enc.solver.AddClause(l1, sat.Not(l2))
}

// pair is an ordered (f1,f2) argument to the negated-literal clause
// helper addClauseIfComplete.
type pair struct {
	F1, F2 fold.FaceID
	Neg    bool
}

func negPair(f1, f2 fold.FaceID) pair { return pair{F1: f1, F2: f2, Neg: true} }

// addClauseIfComplete asserts the disjunction of the (possibly negated)
// literals for each pair, but only if every one of them has an allocated
// overlap variable; an incomplete clause is silently skipped, matching
// §4.5.2's "if all ... exist" qualifier applied to the taco-taco clauses.
func (enc *Encoder) addClauseIfComplete(pairs ...pair) {
	lits := make([]sat.Lit, 0, len(pairs))
	for _, p := range pairs {
		l, ok := enc.lit(p.F1, p.F2)
		if !ok {
			return
		}
		if p.Neg {
			l = sat.Not(l)
		}
		lits = append(lits, l)
	}
	enc.solver.AddClause(lits...)
}
