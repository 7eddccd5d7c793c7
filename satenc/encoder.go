package satenc

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/layerorder/fold"
	"github.com/katalvlaran/layerorder/geom2d"
	"github.com/katalvlaran/layerorder/planegroup"
	"github.com/katalvlaran/layerorder/project"
	"github.com/katalvlaran/layerorder/vecmath"
)

// groupContext carries the per-face projected geometry for a single plane
// group, computed once and shared by the overlap, transitivity, and taco
// passes.
type groupContext struct {
	faces []fold.FaceID // ascending, per planegroup.Groups invariant

	// rawProj[f] is face f's projection in its own FacesVertices order,
	// before the §4.4 orientation-flip normalization — the array project.At
	// indexes into.
	rawProj map[fold.FaceID]project.Polygon2

	// geomPoly[f] is face f's CCW-normalized polygon in the geom2d kernel's
	// float64 representation, used by every overlap/containment predicate.
	geomPoly map[fold.FaceID]geom2d.Polygon

	interCache map[Pair][]geom2d.Polygon
}

// BuildGroup emits every clause of §4.5.1-§4.5.3 for the faces of plane
// group gid, in ascending face-id order throughout, per §9's determinism
// requirement. It allocates overlap variables lazily as it discovers
// overlapping pairs and asserts all clauses directly against enc's
// solver.
func (enc *Encoder) BuildGroup(r *fold.Record, g *planegroup.Groups, gid fold.PlaneGroupID) error {
	faces := g.PlaneGroupsFaces[gid]
	if len(faces) == 0 {
		return nil
	}

	ctx, err := buildGroupContext(r, g, gid, faces)
	if err != nil {
		return err
	}

	if err := enc.allocateOverlapVars(ctx); err != nil {
		return err
	}
	if err := enc.emitTransitivity(ctx); err != nil {
		return err
	}

	return enc.emitTacoConstraints(r, g, ctx)
}

func buildGroupContext(r *fold.Record, g *planegroup.Groups, gid fold.PlaneGroupID, faces []fold.FaceID) (*groupContext, error) {
	tangent, bi := g.Tangent[gid], g.Bi[gid]

	ctx := &groupContext{
		faces:      faces,
		rawProj:    make(map[fold.FaceID]project.Polygon2, len(faces)),
		geomPoly:   make(map[fold.FaceID]geom2d.Polygon, len(faces)),
		interCache: make(map[Pair][]geom2d.Polygon),
	}

	for _, f := range faces {
		verts := faceVerts(r, f)
		raw := project.Raw(verts, tangent, bi)
		ctx.rawProj[f] = raw

		poly2 := project.Face(verts, tangent, bi, g.FacesDir[f])
		gp, err := poly2.ToGeom2D()
		if err != nil {
			return nil, fmt.Errorf("satenc: projecting face %d: %w", f, err)
		}
		ctx.geomPoly[f] = gp
	}

	return ctx, nil
}

func faceVerts(r *fold.Record, f fold.FaceID) []vecmath.Vec3 {
	ids := r.FacesVertices[f]
	verts := make([]vecmath.Vec3, len(ids))
	for i, v := range ids {
		verts[i] = r.VerticesCoordsFolded[v]
	}

	return verts
}

// intersection returns (and caches) the 2D overlap region of faces a and
// b, computed at most once per unordered pair.
func (ctx *groupContext) intersection(a, b fold.FaceID) ([]geom2d.Polygon, error) {
	p := canon(a, b)
	if regions, ok := ctx.interCache[p]; ok {
		return regions, nil
	}
	regions, err := geom2d.Intersection(ctx.geomPoly[a], ctx.geomPoly[b])
	if err != nil {
		return nil, err
	}
	ctx.interCache[p] = regions

	return regions, nil
}

// sortedFaces returns a defensively-sorted copy of faces (planegroup
// already guarantees ascending order, but satenc does not depend on that
// invariant holding forever).
func sortedFaces(faces []fold.FaceID) []fold.FaceID {
	out := make([]fold.FaceID, len(faces))
	copy(out, faces)
	sort.Ints(out)

	return out
}
