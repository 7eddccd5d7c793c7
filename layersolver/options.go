package layersolver

import "log/slog"

// defaultTolerance is the global default EPS, the coplanarity tolerance
// Solve hands to planegroup (§4.3).
const defaultTolerance = 1e-6

// Options configures a single Solve call.
type Options struct {
	tolerance            float64
	bestEffort           bool
	logger               *slog.Logger
	lineGroupConstraints bool
}

// Option configures an Options value, mirroring core.GraphOption's
// functional-option pattern.
type Option func(o *Options)

func defaultOptions() *Options {
	return &Options{
		tolerance: defaultTolerance,
		logger:    slog.Default(),
	}
}

// WithTolerance overrides the default 1e-6 coplanarity/geometric
// tolerance.
func WithTolerance(eps float64) Option {
	return func(o *Options) { o.tolerance = eps }
}

// WithBestEffort enables §7's best-effort mode: a face whose plane normal
// is degenerate is logged and excluded from clustering (via
// planegroup.ComputeBestEffort) instead of aborting the whole solve.
func WithBestEffort(enabled bool) Option {
	return func(o *Options) { o.bestEffort = enabled }
}

// WithLogger overrides the *slog.Logger diagnostics (best-effort skips,
// the line-group notice) are written to. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithLineGroupConstraints toggles §4.5.5's optional cross-plane-group
// (line-group) constraint hook. Off by default and left a documented
// no-op for single-plane-group patterns (see DESIGN.md).
func WithLineGroupConstraints(enabled bool) Option {
	return func(o *Options) { o.lineGroupConstraints = enabled }
}
