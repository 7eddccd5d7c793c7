// Package sat is layerorder's thin adapter over an external propositional
// satisfiability engine, specified only as an interface (variable
// allocation, clause assertion, solve, model readout); see package
// satenc for the caller that builds the clauses this solves.
//
// The concrete Solver is backed by github.com/crillab/gophersat, a pure
// Go CDCL solver chosen as the direct Go analogue of a C++
// Glucose::SimpSolver dependency (see DESIGN.md).
package sat
