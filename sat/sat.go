package sat

import "errors"

// ErrUnsatisfiable is returned by Solve when the CNF built from the
// layer-order encoding has no satisfying assignment: no valid layering
// exists for the pattern.
var ErrUnsatisfiable = errors.New("sat: unsatisfiable")

// ErrSolverFailure is returned by Solve when the underlying engine
// failed for reasons other than unsatisfiability (out of memory,
// interrupted, internal solver error).
var ErrSolverFailure = errors.New("sat: solver failure")

// Var is an opaque handle to a Boolean variable, issued by Solver.NewVar.
// Variable numbering starts at 1, matching DIMACS CNF convention.
type Var int

// Lit is a literal: a variable together with a polarity.
type Lit struct {
	V   Var
	Neg bool
}

// Pos returns the positive literal for v.
func Pos(v Var) Lit { return Lit{V: v} }

// Negate returns the negative literal for v.
func Negate(v Var) Lit { return Lit{V: v, Neg: true} }

// Not returns the logical negation of l.
func Not(l Lit) Lit { return Lit{V: l.V, Neg: !l.Neg} }

// dimacs renders a literal as a signed DIMACS integer.
func (l Lit) dimacs() int {
	if l.Neg {
		return -int(l.V)
	}

	return int(l.V)
}

// Solver is the minimal surface layerorder's encoder needs from a SAT
// backend: allocate variables, assert clauses of any arity, solve, and
// read back the model.
type Solver interface {
	// NewVar allocates and returns a fresh Boolean variable.
	NewVar() Var

	// AddClause asserts the disjunction of lits. A nil/empty lits slice
	// asserts the empty clause (always unsatisfiable); callers never do
	// this intentionally.
	AddClause(lits ...Lit)

	// Solve runs the SAT engine. It returns nil on a satisfying
	// assignment, ErrUnsatisfiable if no assignment exists, or a wrapped
	// ErrSolverFailure for any other engine failure.
	Solve() error

	// Value returns the model's truth value for v. Only meaningful after
	// a successful Solve.
	Value(v Var) bool
}
