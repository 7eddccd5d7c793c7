package layersolver

import (
	"errors"
	"fmt"
)

// Kind classifies a layersolver Error into one of §7's five error
// kinds.
type Kind int

// The five §7 error kinds.
const (
	// KindSchemaError: FoldRecord missing required arrays or has
	// mismatched lengths.
	KindSchemaError Kind = iota
	// KindInconsistencyError: faces_edges/edges_vertices disagreement, or
	// two faces claiming the same slot of an edge.
	KindInconsistencyError
	// KindDegenerateGeometry: zero-length normal, collinear face, or
	// non-planar face.
	KindDegenerateGeometry
	// KindUnsatisfiable: the SAT instance has no satisfying assignment.
	KindUnsatisfiable
	// KindSolverFailure: the SAT backend failed for a reason other than
	// unsatisfiability.
	KindSolverFailure
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindSchemaError:
		return "schema_error"
	case KindInconsistencyError:
		return "inconsistency_error"
	case KindDegenerateGeometry:
		return "degenerate_geometry"
	case KindUnsatisfiable:
		return "unsatisfiable"
	case KindSolverFailure:
		return "solver_failure"
	default:
		return "unknown"
	}
}

// Error is layersolver's classified error: every failure Solve returns is
// either a *Error (or wraps one), letting callers errors.As to read Kind
// while still errors.Is-ing the underlying package sentinel.
type Error struct {
	Kind Kind
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("layersolver: %s: %v", e.Kind, e.Err)
}

// Unwrap exposes the wrapped sentinel to errors.Is/errors.As.
func (e *Error) Unwrap() error { return e.Err }

func wrapErr(kind Kind, err error) error {
	if err == nil {
		return nil
	}

	return &Error{Kind: kind, Err: err}
}

// Is reports whether target is an *Error of the same Kind, so
// errors.Is(err, &layersolver.Error{Kind: layersolver.KindUnsatisfiable})
// works without every caller needing errors.As.
func (e *Error) Is(target error) bool {
	var other *Error
	if errors.As(target, &other) {
		return e.Kind == other.Kind
	}

	return false
}
