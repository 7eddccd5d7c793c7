package layersolver

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/layerorder/fold"
	"github.com/katalvlaran/layerorder/planegroup"
	"github.com/katalvlaran/layerorder/sat"
	"github.com/katalvlaran/layerorder/satenc"
)

// Solve runs the full pipeline of §4.6 over r: validate and derive the
// record, cluster into plane groups, project, build the CNF via satenc,
// and solve it. It returns a classified *Error (see Kind) on any failure,
// or a *Result exposing the solved below(f1,f2) relation on success.
//
// r must not have had Validate/BuildDerived called already; Solve owns
// that step so it can classify the resulting error per §7.
func Solve(r *fold.Record, opts ...Option) (*Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if err := r.Validate(); err != nil {
		return nil, wrapErr(KindSchemaError, err)
	}
	if err := r.BuildDerived(); err != nil {
		return nil, wrapErr(KindInconsistencyError, err)
	}

	groups, skipped, err := computePlaneGroups(r, o)
	if err != nil {
		return nil, err
	}
	for _, f := range skipped {
		o.logger.Warn("layersolver: skipping face with degenerate geometry", "face", f)
	}

	solver := sat.NewGophersatSolver()
	enc := satenc.New(solver)

	for gid := range groups.PlaneGroupsFaces {
		if err := enc.BuildGroup(r, groups, gid); err != nil {
			return nil, wrapErr(KindDegenerateGeometry, err)
		}
	}

	if o.lineGroupConstraints {
		// §4.5.5 reserved stub: left empty for patterns that only need
		// single-plane-group reasoning.
		o.logger.Debug("layersolver: line-group constraints requested but not implemented")
	}

	if err := solver.Solve(); err != nil {
		switch {
		case errors.Is(err, sat.ErrUnsatisfiable):
			return nil, wrapErr(KindUnsatisfiable, fmt.Errorf("layer order infeasible: %w", err))
		default:
			return nil, wrapErr(KindSolverFailure, err)
		}
	}

	return &Result{enc: enc, groups: groups, skipped: skipped}, nil
}

func computePlaneGroups(r *fold.Record, o *Options) (*planegroup.Groups, []fold.FaceID, error) {
	if o.bestEffort {
		return planegroup.ComputeBestEffort(r, o.tolerance)
	}
	g, err := planegroup.Compute(r, o.tolerance)
	if err != nil {
		return nil, nil, wrapErr(KindDegenerateGeometry, err)
	}

	return g, nil, nil
}
