package satenc

import (
	"github.com/katalvlaran/layerorder/geom2d"
	"github.com/katalvlaran/layerorder/sat"
)

// emitTransitivity implements §4.5.2: for each ascending triple i<j<k
// whose three pairwise overlap variables all exist and whose common area
// is non-empty (the (i,j) overlap region itself overlaps face k), assert
// the two clauses that together make "all three consistent in ascending
// order, or none" the only satisfying shapes.
func (enc *Encoder) emitTransitivity(ctx *groupContext) error {
	faces := sortedFaces(ctx.faces)

	for a := 0; a < len(faces); a++ {
		for b := a + 1; b < len(faces); b++ {
			i, j := faces[a], faces[b]
			lij, ok := enc.lit(i, j)
			if !ok {
				continue
			}

			var regions []geom2d.Polygon
			var regionsComputed bool

			for c := b + 1; c < len(faces); c++ {
				k := faces[c]
				ljk, ok := enc.lit(j, k)
				if !ok {
					continue
				}
				lik, ok := enc.lit(i, k)
				if !ok {
					continue
				}

				if !regionsComputed {
					var err error
					regions, err = ctx.intersection(i, j)
					if err != nil {
						return err
					}
					regionsComputed = true
				}

				shared, err := anyOverlaps(regions, ctx.geomPoly[k])
				if err != nil {
					return err
				}
				if !shared {
					continue
				}

				enc.solver.AddClause(lij, ljk, sat.Not(lik))
				enc.solver.AddClause(sat.Not(lij), sat.Not(ljk), lik)
			}
		}
	}

	return nil
}

func anyOverlaps(regions []geom2d.Polygon, face geom2d.Polygon) (bool, error) {
	for _, region := range regions {
		overlap, err := geom2d.DoIntersect(region, face)
		if err != nil {
			return false, err
		}
		if overlap {
			return true, nil
		}
	}

	return false, nil
}
