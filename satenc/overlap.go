package satenc

import "github.com/katalvlaran/layerorder/geom2d"

// allocateOverlapVars implements §4.5.1: for every unordered pair of
// distinct faces in the group whose projected polygons overlap in
// positive 2D area, allocate one variable keyed by the canonical pair.
// No variable is allocated for face pairs that are only edge- or
// vertex-incident (geom2d.DoIntersect already excludes boundary-only
// contact).
func (enc *Encoder) allocateOverlapVars(ctx *groupContext) error {
	faces := sortedFaces(ctx.faces)

	for i := 0; i < len(faces); i++ {
		for j := i + 1; j < len(faces); j++ {
			a, b := faces[i], faces[j]
			overlap, err := geom2d.DoIntersect(ctx.geomPoly[a], ctx.geomPoly[b])
			if err != nil {
				return err
			}
			if !overlap {
				continue
			}

			p := canon(a, b)
			if _, exists := enc.vars[p]; exists {
				continue
			}
			enc.vars[p] = enc.solver.NewVar()
			enc.order = append(enc.order, p)
		}
	}

	return nil
}
