// Package hungarian defines options, results and sentinel errors for the
// assignment solver.
package hungarian

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/lvmatch/matrix"
)

// Unassigned marks a row of SolveAnyShape's result that received no column
// because the original matrix had more rows than columns.
const Unassigned = -1

// Sentinel errors returned by the solver.
var (
	// ErrNilMatrix indicates that a nil cost matrix was passed.
	ErrNilMatrix = matrix.ErrNilMatrix

	// ErrNaNInf indicates a NaN or ±Inf cost entry.
	ErrNaNInf = matrix.ErrNaNInf

	// ErrTooManyRows indicates R > C; the caller must transpose first.
	ErrTooManyRows = errors.New("hungarian: cost matrix has more rows than columns")

	// ErrCostRange indicates a finite cost too large in magnitude for the
	// potentials to stay finite (see MaxMagnitude).
	ErrCostRange = errors.New("hungarian: cost magnitude out of solvable range")

	// ErrBadAssignment indicates an assignment that is out of range or not injective.
	ErrBadAssignment = errors.New("hungarian: assignment is not an injective row→column map")
)

// Result is the outcome of one solve.
//
// Assignment[i] is the column assigned to row i. Cost is Σ cost[i][Assignment[i]]
// over assigned rows, in the units of the input matrix (also under WithMaximize).
type Result struct {
	Assignment []int
	Cost       float64
}

// Options configures the solver.
//
// Maximize – if true, maximize the total instead of minimizing it.
// Logger   – receives one Debug record per solve.
type Options struct {
	Maximize bool
	Logger   *slog.Logger
}

// Option represents a functional option for configuring the solver.
type Option func(*Options)

// WithMaximize selects the maximum-weight assignment.
func WithMaximize() Option {
	return func(o *Options) {
		o.Maximize = true
	}
}

// WithLogger sets the logger (default: slog.Default()). A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns minimization with the default logger.
func DefaultOptions() Options {
	return Options{
		Maximize: false,
		Logger:   slog.Default(),
	}
}

func gatherOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
