// Package contingency defines the Table type, options and sentinel errors.
package contingency

import "errors"

// Sentinel errors returned by the constructors.
var (
	// ErrEmptyLabels indicates a labeling with no elements.
	ErrEmptyLabels = errors.New("contingency: labelings are empty")

	// ErrLengthMismatch indicates labelings of different length.
	ErrLengthMismatch = errors.New("contingency: labelings differ in length")

	// ErrEmptyTable indicates a count table with no rows or no columns.
	ErrEmptyTable = errors.New("contingency: table has no rows or columns")

	// ErrRagged indicates count rows of different lengths.
	ErrRagged = errors.New("contingency: ragged count rows")

	// ErrNegativeCount indicates a negative cell or total.
	ErrNegativeCount = errors.New("contingency: negative count")

	// ErrMarginalMismatch indicates a total that differs from the sum it summarizes.
	ErrMarginalMismatch = errors.New("contingency: marginal does not match its sum")
)

// Table is the contingency table between clustering A (rows) and clustering B
// (columns), with appended totals. See the package documentation for layout.
type Table struct {
	size1, size2 int
	cells        [][]int // (size1+1)×(size2+1)
}

// Options configures FromLabels.
//
// Noise      – if HasNoise, elements labelled Noise are noise.
// BreakNoise – each noise element forms its own singleton cluster. Otherwise
// all noise elements of one labeling form a single cluster.
type Options struct {
	HasNoise   bool
	Noise      int
	BreakNoise bool
}

// Option represents a functional option for FromLabels.
type Option func(*Options)

// WithNoise marks label as the noise label in both labelings.
func WithNoise(label int) Option {
	return func(o *Options) {
		o.HasNoise = true
		o.Noise = label
	}
}

// WithBreakNoise splits noise into singleton clusters. It has no effect
// without WithNoise.
func WithBreakNoise() Option {
	return func(o *Options) {
		o.BreakNoise = true
	}
}

// DefaultOptions returns options with no noise label.
func DefaultOptions() Options {
	return Options{}
}
