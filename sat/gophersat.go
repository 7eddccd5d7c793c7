package sat

import (
	"fmt"

	gophersat "github.com/crillab/gophersat/solver"
)

// GophersatSolver is a Solver backed by github.com/crillab/gophersat.
// Variables are allocated densely starting at 1; clauses are buffered
// and handed to gophersat as a single DIMACS-style clause slice at
// Solve time, since gophersat's public API builds a Problem from a
// complete clause set rather than accepting incremental assertions.
type GophersatSolver struct {
	nVars   int
	clauses [][]int
	model   []bool
}

// NewGophersatSolver returns an empty solver ready to accept variables
// and clauses.
func NewGophersatSolver() *GophersatSolver {
	return &GophersatSolver{}
}

// NewVar allocates a fresh variable.
func (s *GophersatSolver) NewVar() Var {
	s.nVars++

	return Var(s.nVars)
}

// AddClause buffers lits as a single clause.
func (s *GophersatSolver) AddClause(lits ...Lit) {
	clause := make([]int, len(lits))
	for i, l := range lits {
		clause[i] = l.dimacs()
	}
	s.clauses = append(s.clauses, clause)
}

// Solve hands the buffered clauses to gophersat and runs it to
// completion. Solver verbosity is left at gophersat's silent default,
// per §4.6.
func (s *GophersatSolver) Solve() error {
	pb := gophersat.ParseSlice(s.clauses)
	sv := gophersat.New(pb)

	switch sv.Solve() {
	case gophersat.Sat:
		s.model = sv.Model()

		return nil
	case gophersat.Unsat:
		return ErrUnsatisfiable
	default:
		return fmt.Errorf("%w: gophersat returned an indeterminate status", ErrSolverFailure)
	}
}

// Value returns the model's assignment for v. Returns false for a
// variable gophersat's model slice has no entry for (e.g. an allocated
// but never-claused variable), rather than panicking.
func (s *GophersatSolver) Value(v Var) bool {
	idx := int(v) - 1
	if idx < 0 || idx >= len(s.model) {
		return false
	}

	return s.model[idx]
}
