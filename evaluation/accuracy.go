package evaluation

import (
	"fmt"

	"github.com/katalvlaran/lvmatch/contingency"
	"github.com/katalvlaran/lvmatch/hungarian"
)

// Accuracy is the cluster-matching accuracy of two clusterings: the share of
// elements that land in corresponding clusters under the best one-to-one
// correspondence between the clusters of A and the clusters of B.
type Accuracy struct {
	matched float64
	value   float64
}

// NewAccuracy computes the accuracy of t.
//
// Implementation:
//   - Stage 1: reject nil tables and n = 0.
//   - Stage 2: oriented cost −n_ij; minimum-cost assignment.
//   - Stage 3: accuracy = Σ n_matched / n.
//
// opts are passed to the solver (e.g. hungarian.WithLogger).
//
// Errors: ErrNilTable, ErrZeroTotal, or a wrapped solver error.
// Complexity: O(k²·K) with k = min(k₁,k₂), K = max(k₁,k₂).
func NewAccuracy(t *contingency.Table, opts ...hungarian.Option) (*Accuracy, error) {
	if err := checkTable(t); err != nil {
		return nil, err
	}

	o, err := orient(t, func(i, j int) float64 {
		return -float64(t.Count(i, j))
	})
	if err != nil {
		return nil, err
	}

	res, err := hungarian.Solve(o.cost, opts...)
	if err != nil {
		return nil, fmt.Errorf("evaluation: accuracy: %w", err)
	}

	matched, err := matchedSum(o, res.Assignment)
	if err != nil {
		return nil, err
	}

	return &Accuracy{
		matched: matched,
		value:   matched / float64(t.Total()),
	}, nil
}

// Value returns the accuracy in [0, 1].
func (a *Accuracy) Value() float64 { return a.value }

// Matched returns the number of elements in matched cluster pairs.
func (a *Accuracy) Matched() float64 { return a.matched }
