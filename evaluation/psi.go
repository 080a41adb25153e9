package evaluation

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvmatch/contingency"
	"github.com/katalvlaran/lvmatch/hungarian"
)

// PairSetsIndex is the Pair Sets Index of two clusterings.
//
//	s   = Σ over matched pairs of n_ij / max(|Aᵢ|, |Bⱼ|)
//	e   = expected s for clusterings with the same cluster sizes
//	K   = max(k₁, k₂)
//	PSI = (s − e) / (K − e), or 0 when s < e
//	simplified PSI = (s − 1) / (K − 1), or 0 when s < 1
type PairSetsIndex struct {
	observed   float64
	expected   float64
	psi        float64
	simplified float64
}

// NewPairSetsIndex computes the Pair Sets Index of t.
//
// Two single-cluster clusterings match perfectly: both indices are 1 and the
// solver is not run (K − e would be 0).
//
// Errors: ErrNilTable, ErrZeroTotal, or a wrapped solver error.
// Complexity: O(k²·K + K log K).
func NewPairSetsIndex(t *contingency.Table, opts ...hungarian.Option) (*PairSetsIndex, error) {
	if err := checkTable(t); err != nil {
		return nil, err
	}

	size1, size2 := t.Size1(), t.Size2()
	if size1 == 1 && size2 == 1 {
		return &PairSetsIndex{observed: 1, expected: 1, psi: 1, simplified: 1}, nil
	}

	o, err := orient(t, func(i, j int) float64 {
		d := max(t.RowTotal(i), t.ColTotal(j))
		if d == 0 {
			return 0
		}

		return -float64(t.Count(i, j)) / float64(d)
	})
	if err != nil {
		return nil, err
	}

	res, err := hungarian.Solve(o.cost, opts...)
	if err != nil {
		return nil, fmt.Errorf("evaluation: pair sets index: %w", err)
	}

	s, err := matchedSum(o, res.Assignment)
	if err != nil {
		return nil, err
	}
	e := expectedMatch(t)
	k := float64(max(size1, size2))

	p := &PairSetsIndex{observed: s, expected: e}
	if s >= 1 {
		p.simplified = (s - 1) / (k - 1)
	}
	if s >= e {
		p.psi = (s - e) / (k - e)
	}

	return p, nil
}

// expectedMatch pairs the ascending-sorted row totals with the ascending-sorted
// column totals index by index and sums (r·c/n)/max(r,c) over the first
// min(k₁,k₂) pairs.
func expectedMatch(t *contingency.Table) float64 {
	rows := t.RowTotals()
	cols := t.ColTotals()
	sort.Ints(rows)
	sort.Ints(cols)

	n := float64(t.Total())
	var e float64
	for k := 0; k < min(len(rows), len(cols)); k++ {
		d := max(rows[k], cols[k])
		if d == 0 {
			continue
		}
		e += (float64(rows[k]) * float64(cols[k]) / n) / float64(d)
	}

	return e
}

// PSI returns the chance-corrected Pair Sets Index.
func (p *PairSetsIndex) PSI() float64 { return p.psi }

// SimplifiedPSI returns the index with the expected value fixed at 1.
func (p *PairSetsIndex) SimplifiedPSI() float64 { return p.simplified }

// Observed returns s, the matching quality of the optimal assignment.
func (p *PairSetsIndex) Observed() float64 { return p.observed }

// Expected returns e, the chance baseline of s.
func (p *PairSetsIndex) Expected() float64 { return p.expected }
