// Package layerorder computes the stacking order of a folded origami
// crease pattern: given a flat-folded FOLD mesh, it groups faces that
// share a fold plane, encodes their pairwise overlap, non-crossing and
// taco-taco/taco-tortilla constraints as boolean clauses, and hands
// them to a SAT solver to recover a consistent below(f1,f2) relation.
//
// The work is organized under subpackages, mirroring fold_algos' own
// layer-order pipeline:
//
//	vecmath/          — 3D vector/plane arithmetic
//	dsu/              — disjoint-set union for plane-group clustering
//	fold/             — crease pattern mesh model (FOLD's in-memory shape)
//	foldio/           — FOLD JSON container reader/writer
//	planegroup/       — clusters coplanar, face-up/face-down faces
//	project/          — maps a plane group's 3D faces to a shared 2D frame
//	geom2d/           — 2D polygon overlap/containment predicates
//	satenc/           — translates a plane group into CNF clauses
//	sat/              — gophersat-backed boolean satisfiability solving
//	layersolver/      — end-to-end orchestration, one call per FOLD record
//	planearrangement/ — reserved extension point, see its doc comment
//	cmd/layersolver/  — command-line front end
//
// Most callers only need layersolver.Solve.
package layerorder
