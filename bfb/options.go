// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: Options, defaults and functional setters for Compute.

package bfb

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/topocast/lp"
	"github.com/katalvlaran/topocast/metrics"
)

// Sentinel errors for Compute.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfb: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfb: invalid option supplied")
)

// DefaultEpsilon is the threshold below which LP transfer values are noise.
const DefaultEpsilon = 1e-5

// Option configures Compute via functional arguments.
type Option func(*Options)

// Options holds the parameters of a Compute run.
type Options struct {
	// Solver solves each (t, u) program. Defaults to lp.NewSimplex().
	Solver lp.Solver
	// Workers bounds the number of concurrent solves. Defaults to NumCPU.
	Workers int
	// Logger receives run summaries (Info), per-task detail (V(1)) and
	// solver failures (Error).
	Logger logr.Logger
	// Metrics, if non-nil, records LP outcomes and durations.
	Metrics *metrics.Registry
	// Epsilon drops transfer values ≤ Epsilon.
	Epsilon float64
	// SolveTimeout bounds each solve; 0 means no bound.
	SolveTimeout time.Duration

	err error
}

// DefaultOptions returns the defaults described on Options.
func DefaultOptions() Options {
	return Options{
		Solver:  lp.NewSimplex(),
		Workers: runtime.NumCPU(),
		Logger:  logr.Discard(),
		Epsilon: DefaultEpsilon,
	}
}

// WithSolver replaces the LP solver. A nil solver is ignored.
func WithSolver(s lp.Solver) Option {
	return func(o *Options) {
		if s != nil {
			o.Solver = s
		}
	}
}

// WithWorkers sets the pool size; n < 1 is an ErrOptionViolation.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be ≥ 1, got %d", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithLogger sets the logger.
func WithLogger(l logr.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithMetrics records solver metrics into r.
func WithMetrics(r *metrics.Registry) Option {
	return func(o *Options) { o.Metrics = r }
}

// WithEpsilon sets the transfer noise threshold; negative is an
// ErrOptionViolation.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps < 0 {
			o.err = fmt.Errorf("%w: epsilon must be ≥ 0, got %g", ErrOptionViolation, eps)
			return
		}
		o.Epsilon = eps
	}
}

// WithSolveTimeout bounds each LP solve; negative is an ErrOptionViolation.
func WithSolveTimeout(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: solve timeout must be ≥ 0, got %s", ErrOptionViolation, d)
			return
		}
		o.SolveTimeout = d
	}
}
