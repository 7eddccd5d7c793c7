// Package satenc builds the CNF clause database describing the
// layer-order problem for a single plane group: overlap variables
// (§4.5.1), transitivity (§4.5.2), and the taco-tortilla / taco-taco
// non-penetration constraints (§4.5.3, §4.5.4). It is the algorithmic
// heart of the layer-order pipeline and the one package with no direct
// C++ analogue to port from; its bookkeeping style (sorted deterministic
// iteration, all state held in an explicit Encoder struct whose methods
// add variables and clauses to it) is grounded on katalvlaran/lvlath's
// core and flow packages.
//
// satenc is SAT-backend-agnostic: it only ever talks to the small
// sat.Solver interface, never to github.com/crillab/gophersat directly.
package satenc
