package contingency

import (
	"fmt"
	"sort"
)

// FromLabels cross-tabulates two labelings of the same elements.
//
// Cluster indices follow ascending label order. A noise cluster (WithNoise) is
// placed after the regular clusters; with WithBreakNoise every noise element
// gets its own index, in element order.
//
// Errors: ErrEmptyLabels, ErrLengthMismatch.
// Complexity: O(n log k) time, O(k₁·k₂) space.
func FromLabels(a, b []int, opts ...Option) (*Table, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, ErrEmptyLabels
	}
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a), len(b))
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	ia, k1 := indexLabels(a, cfg)
	ib, k2 := indexLabels(b, cfg)

	counts := make([][]int, k1)
	for i := range counts {
		counts[i] = make([]int, k2)
	}
	for e := range a {
		counts[ia[e]][ib[e]]++
	}

	return FromCounts(counts)
}

// indexLabels maps each element's label to a dense cluster index and returns
// the per-element indices plus the cluster count.
func indexLabels(labels []int, cfg Options) ([]int, int) {
	isNoise := func(l int) bool { return cfg.HasNoise && l == cfg.Noise }

	distinct := make(map[int]struct{})
	noise := 0
	for _, l := range labels {
		if isNoise(l) {
			noise++
			continue
		}
		distinct[l] = struct{}{}
	}
	sorted := make([]int, 0, len(distinct))
	for l := range distinct {
		sorted = append(sorted, l)
	}
	sort.Ints(sorted)

	pos := make(map[int]int, len(sorted))
	for i, l := range sorted {
		pos[l] = i
	}

	k := len(sorted)
	out := make([]int, len(labels))
	switch {
	case noise == 0:
		for e, l := range labels {
			out[e] = pos[l]
		}
	case cfg.BreakNoise:
		next := k
		for e, l := range labels {
			if isNoise(l) {
				out[e] = next
				next++
				continue
			}
			out[e] = pos[l]
		}
		k = next
	default:
		for e, l := range labels {
			if isNoise(l) {
				out[e] = k
				continue
			}
			out[e] = pos[l]
		}
		k++
	}

	return out, k
}

// FromCounts builds a Table from k₁×k₂ co-occurrence counts and derives the
// totals. The input is copied.
//
// Errors: ErrEmptyTable, ErrRagged, ErrNegativeCount.
// Complexity: O(k₁·k₂).
func FromCounts(counts [][]int) (*Table, error) {
	if len(counts) == 0 || len(counts[0]) == 0 {
		return nil, ErrEmptyTable
	}
	size1, size2 := len(counts), len(counts[0])

	cells := make([][]int, size1+1)
	for i := range cells {
		cells[i] = make([]int, size2+1)
	}

	var i, j, v int
	for i = 0; i < size1; i++ {
		if len(counts[i]) != size2 {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRagged, i, len(counts[i]), size2)
		}
		for j = 0; j < size2; j++ {
			v = counts[i][j]
			if v < 0 {
				return nil, fmt.Errorf("%w: cell (%d,%d)=%d", ErrNegativeCount, i, j, v)
			}
			cells[i][j] = v
			cells[i][size2] += v
			cells[size1][j] += v
			cells[size1][size2] += v
		}
	}

	return &Table{size1: size1, size2: size2, cells: cells}, nil
}

// FromMarginalTable accepts a full (k₁+1)×(k₂+1) table whose last row and
// column already hold the totals, and verifies them.
//
// Implementation:
//   - Stage 1: shape checks (at least 2×2, not ragged).
//   - Stage 2: FromCounts over the inner k₁×k₂ block.
//   - Stage 3: compare every given total with the derived one.
//
// Errors: ErrEmptyTable, ErrRagged, ErrNegativeCount, ErrMarginalMismatch.
func FromMarginalTable(full [][]int) (*Table, error) {
	if len(full) < 2 || len(full[0]) < 2 {
		return nil, ErrEmptyTable
	}
	size1, size2 := len(full)-1, len(full[0])-1

	inner := make([][]int, size1)
	for i := 0; i <= size1; i++ {
		if len(full[i]) != size2+1 {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRagged, i, len(full[i]), size2+1)
		}
		if i < size1 {
			inner[i] = full[i][:size2]
		}
	}

	t, err := FromCounts(inner)
	if err != nil {
		return nil, err
	}

	for i := 0; i <= size1; i++ {
		if full[i][size2] != t.cells[i][size2] {
			return nil, fmt.Errorf("%w: row total %d is %d, sum is %d",
				ErrMarginalMismatch, i, full[i][size2], t.cells[i][size2])
		}
	}
	for j := 0; j < size2; j++ {
		if full[size1][j] != t.cells[size1][j] {
			return nil, fmt.Errorf("%w: column total %d is %d, sum is %d",
				ErrMarginalMismatch, j, full[size1][j], t.cells[size1][j])
		}
	}

	return t, nil
}

// Size1 returns the number of clusters in clustering A (table rows).
func (t *Table) Size1() int { return t.size1 }

// Size2 returns the number of clusters in clustering B (table columns).
func (t *Table) Size2() int { return t.size2 }

// Count returns n_ij. Indices up to Size1()/Size2() inclusive address the
// totals, matching the appended layout. Out-of-range indices panic, as with
// slice indexing.
func (t *Table) Count(i, j int) int { return t.cells[i][j] }

// RowTotal returns the number of elements in cluster i of A.
func (t *Table) RowTotal(i int) int { return t.cells[i][t.size2] }

// ColTotal returns the number of elements in cluster j of B.
func (t *Table) ColTotal(j int) int { return t.cells[t.size1][j] }

// Total returns the element count n.
func (t *Table) Total() int { return t.cells[t.size1][t.size2] }

// RowTotals returns a copy of the Size1() row totals.
func (t *Table) RowTotals() []int {
	out := make([]int, t.size1)
	for i := range out {
		out[i] = t.cells[i][t.size2]
	}

	return out
}

// ColTotals returns a copy of the Size2() column totals.
func (t *Table) ColTotals() []int {
	out := make([]int, t.size2)
	copy(out, t.cells[t.size1][:t.size2])

	return out
}

// Raw returns a deep copy of the full (Size1()+1)×(Size2()+1) table.
func (t *Table) Raw() [][]int {
	out := make([][]int, len(t.cells))
	for i, row := range t.cells {
		out[i] = append([]int(nil), row...)
	}

	return out
}
