// Package layersolver is the solver driver: it wires fold, planegroup,
// project, and satenc into a SAT instance, runs it, and exposes the
// solved below(f1,f2) relation to callers, per §4.6.
//
// Configuration follows katalvlaran/lvlath's functional-option idiom —
// see core.GraphOption, core.WithDirected — applied here as Option /
// WithTolerance / WithBestEffort / WithLogger /
// WithLineGroupConstraints.
package layersolver
