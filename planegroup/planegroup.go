package planegroup

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/layerorder/dsu"
	"github.com/katalvlaran/layerorder/fold"
	"github.com/katalvlaran/layerorder/vecmath"
)

// ErrDegenerateFace wraps vecmath.ErrDegenerateNormal with the offending
// face id, surfaced as layersolver's DegenerateGeometry error kind.
var ErrDegenerateFace = errors.New("planegroup: degenerate face normal")

// Groups is the result of coplanar clustering: every face assigned to a
// group, every group given a canonical frame, and every face's direction
// relative to that frame.
type Groups struct {
	// FacesPlaneGroup[f] is the plane group id of face f.
	FacesPlaneGroup []fold.PlaneGroupID

	// PlaneGroupsFaces[g] lists the faces of group g, sorted ascending
	// by face id.
	PlaneGroupsFaces [][]fold.FaceID

	// Normal, Tangent, Bi are group g's orthonormal right-handed frame:
	// Normal·Tangent = Normal·Bi = Tangent·Bi = 0, each unit length,
	// Bi = Normal x Tangent.
	Normal  []vecmath.Vec3
	Tangent []vecmath.Vec3
	Bi      []vecmath.Vec3

	// Distance[g] is the signed plane offset Normal[g]·p for any point p
	// of a representative face of group g.
	Distance []float64

	// FacesDir[f] is false if face f's outward normal equals its
	// group's Normal, true if it equals the negation.
	FacesDir []bool
}

// ExcludedPlaneGroup is the FacesPlaneGroup sentinel for a face ComputeBestEffort skipped because its normal was degenerate —
// §7's "best-effort mode ... skips the offending face group and
// continues". Compute never produces it; any degenerate face there is a
// hard error.
const ExcludedPlaneGroup fold.PlaneGroupID = -1

// planeVal is a face's 4-vector (nx, ny, nz, d); equality up to global
// sign is the coplanarity predicate.
type planeVal [4]float64

func (p planeVal) slice() []float64 { return p[:] }

// Compute clusters every face of r into plane groups and fixes a
// canonical frame per group, per §4.3. eps is the coplanarity tolerance
// (the global default EPS, 1e-6, unless the caller overrides it via
// layersolver.WithTolerance).
//
// Compute returns ErrDegenerateFace (wrapping the face id) if any face's
// first-triangle normal is degenerate.
func Compute(r *fold.Record, eps float64) (*Groups, error) {
	g, _, err := compute(r, eps, false)

	return g, err
}

// ComputeBestEffort is Compute's §7 best-effort variant: a face whose
// first-triangle normal is degenerate is excluded from clustering (its
// FacesPlaneGroup entry is ExcludedPlaneGroup, and it appears in no
// PlaneGroupsFaces slice) instead of aborting the whole computation. The
// returned slice lists every excluded face id, ascending, for the caller
// to log as a §7 diagnostic warning.
func ComputeBestEffort(r *fold.Record, eps float64) (*Groups, []fold.FaceID, error) {
	return compute(r, eps, true)
}

func compute(r *fold.Record, eps float64, bestEffort bool) (*Groups, []fold.FaceID, error) {
	nFaces := r.NumFaces()

	planeVals := make([]planeVal, nFaces)
	valid := make([]bool, nFaces)
	var skipped []fold.FaceID
	for f := 0; f < nFaces; f++ {
		verts := make([]vecmath.Vec3, len(r.FacesVertices[f]))
		for i, v := range r.FacesVertices[f] {
			verts[i] = r.VerticesCoordsFolded[v]
		}
		normal, err := vecmath.FaceNormal(verts)
		if err != nil {
			if !bestEffort {
				return nil, nil, fmt.Errorf("%w: face %d: %w", ErrDegenerateFace, f, err)
			}
			skipped = append(skipped, f)
			continue
		}
		valid[f] = true
		d := vecmath.Dot(normal, r.VerticesCoordsFolded[r.FacesVertices[f][0]])
		planeVals[f] = planeVal{normal.X, normal.Y, normal.Z, d}
	}

	forest := dsu.New(nFaces)
	for i := 0; i < nFaces; i++ {
		if !valid[i] {
			continue
		}
		for j := 0; j < nFaces; j++ {
			if i == j || !valid[j] {
				continue
			}
			if coplanar(planeVals[i], planeVals[j], eps) {
				forest.Join(i, j)
			}
		}
	}

	facesPlaneGroup := make([]fold.PlaneGroupID, nFaces)
	for f := range facesPlaneGroup {
		facesPlaneGroup[f] = ExcludedPlaneGroup
	}
	groupOf := make(map[int]fold.PlaneGroupID)
	var planeGroupsFaces [][]fold.FaceID
	for f := 0; f < nFaces; f++ {
		if !valid[f] {
			continue
		}
		root := forest.Find(f)
		id, ok := groupOf[root]
		if !ok {
			id = len(planeGroupsFaces)
			groupOf[root] = id
			planeGroupsFaces = append(planeGroupsFaces, nil)
		}
		facesPlaneGroup[f] = id
		planeGroupsFaces[id] = append(planeGroupsFaces[id], f)
	}
	// Faces were visited in ascending id order, so each group's slice is
	// already sorted ascending; sort defensively for the invariant's sake.
	for _, faces := range planeGroupsFaces {
		sort.Ints(faces)
	}

	nGroups := len(planeGroupsFaces)
	normals := make([]vecmath.Vec3, nGroups)
	tangents := make([]vecmath.Vec3, nGroups)
	bis := make([]vecmath.Vec3, nGroups)
	distances := make([]float64, nGroups)
	facesDir := make([]bool, nFaces)

	for g, faces := range planeGroupsFaces {
		ref := planeVals[faces[0]]
		normal := vecmath.Vec3{X: ref[0], Y: ref[1], Z: ref[2]}
		tangent, bi := frame(normal)

		normals[g] = normal
		tangents[g] = tangent
		bis[g] = bi
		distances[g] = ref[3]

		for _, f := range faces {
			same := vecmath.L1(ref.slice(), planeVals[f].slice())
			opposed := vecmath.L1(ref.slice(), vecmath.Negate(planeVals[f].slice()))
			if opposed < same {
				facesDir[f] = true
			}
		}
	}

	return &Groups{
		FacesPlaneGroup:  facesPlaneGroup,
		PlaneGroupsFaces: planeGroupsFaces,
		Normal:           normals,
		Tangent:          tangents,
		Bi:               bis,
		Distance:         distances,
		FacesDir:         facesDir,
	}, skipped, nil
}

// coplanar implements §4.3's robust, non-transitive matching predicate:
// min(L1(a,b), L1(a,-b)) < eps.
func coplanar(a, b planeVal, eps float64) bool {
	diff := vecmath.L1(a.slice(), b.slice())
	negB := vecmath.Negate(b.slice())
	if negDiff := vecmath.L1(a.slice(), negB); negDiff < diff {
		diff = negDiff
	}

	return diff < eps
}

// frame builds the canonical orthonormal (tangent, bi) pair for a unit
// normal, via the numerically stable rule of §4.3: sort coordinate
// indices by |normal[i]| ascending, zero out tangent except at the two
// largest-magnitude indices, then normalize.
func frame(normal vecmath.Vec3) (tangent, bi vecmath.Vec3) {
	arr := normal.Array()
	idx := [3]int{0, 1, 2}
	sort.Slice(idx[:], func(i, j int) bool {
		return absF(arr[idx[i]]) < absF(arr[idx[j]])
	})
	k2, k3 := idx[1], idx[2]

	var t [3]float64
	t[k2] = arr[k3]
	t[k3] = -arr[k2]
	raw := vecmath.Vec3{X: t[0], Y: t[1], Z: t[2]}

	// A face normal is never zero (Compute already rejected degenerate
	// faces), and raw carries its largest-magnitude component, which is
	// nonzero, so this normalization cannot fail in practice; panic rather than
	// silently propagate a nonsensical frame if it ever does.
	norm, err := vecmath.Normalize(raw)
	if err != nil {
		panic("planegroup: degenerate tangent frame for a supposedly non-degenerate normal")
	}
	tangent = norm
	bi = vecmath.Cross(normal, tangent)

	return tangent, bi
}

func absF(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}
