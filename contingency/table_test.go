// Package contingency_test validates table construction and its invariants.
package contingency_test

import (
	"testing"

	"github.com/katalvlaran/lvmatch/contingency"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireMarginals checks every total against the sum it summarizes.
func requireMarginals(t *testing.T, tab *contingency.Table) {
	t.Helper()
	n := 0
	for i := 0; i < tab.Size1(); i++ {
		row := 0
		for j := 0; j < tab.Size2(); j++ {
			row += tab.Count(i, j)
		}
		require.Equal(t, row, tab.RowTotal(i), "row %d", i)
		n += row
	}
	for j := 0; j < tab.Size2(); j++ {
		col := 0
		for i := 0; i < tab.Size1(); i++ {
			col += tab.Count(i, j)
		}
		require.Equal(t, col, tab.ColTotal(j), "col %d", j)
	}
	require.Equal(t, n, tab.Total())
	require.Equal(t, n, tab.Count(tab.Size1(), tab.Size2()))
}

func TestFromLabels(t *testing.T) {
	a := []int{0, 0, 0, 1, 1, 2}
	b := []int{5, 5, 7, 7, 7, 7}

	tab, err := contingency.FromLabels(a, b)
	require.NoError(t, err)
	assert.Equal(t, 3, tab.Size1())
	assert.Equal(t, 2, tab.Size2())
	assert.Equal(t, [][]int{
		{2, 1, 3},
		{0, 2, 2},
		{0, 1, 1},
		{2, 4, 6},
	}, tab.Raw())
	requireMarginals(t, tab)
}

func TestFromLabels_SortedLabelOrder(t *testing.T) {
	// Labels are indexed in ascending order, not by first appearance.
	tab, err := contingency.FromLabels([]int{9, 3, 3}, []int{1, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, 2, tab.RowTotal(0)) // label 3
	assert.Equal(t, 1, tab.RowTotal(1)) // label 9
}

func TestFromLabels_Errors(t *testing.T) {
	_, err := contingency.FromLabels(nil, []int{1})
	require.ErrorIs(t, err, contingency.ErrEmptyLabels)

	_, err = contingency.FromLabels([]int{1, 2}, []int{1})
	require.ErrorIs(t, err, contingency.ErrLengthMismatch)
}

func TestFromLabels_Noise(t *testing.T) {
	a := []int{0, 0, -1, -1, 1}
	b := []int{0, 0, 0, 1, 1}

	joined, err := contingency.FromLabels(a, b, contingency.WithNoise(-1))
	require.NoError(t, err)
	assert.Equal(t, 3, joined.Size1()) // clusters 0, 1, noise
	assert.Equal(t, 2, joined.RowTotal(2))
	requireMarginals(t, joined)

	broken, err := contingency.FromLabels(a, b, contingency.WithNoise(-1), contingency.WithBreakNoise())
	require.NoError(t, err)
	assert.Equal(t, 4, broken.Size1()) // clusters 0, 1, two singletons
	assert.Equal(t, 1, broken.RowTotal(2))
	assert.Equal(t, 1, broken.RowTotal(3))
	assert.Equal(t, 1, broken.Count(2, 0))
	assert.Equal(t, 1, broken.Count(3, 1))
	requireMarginals(t, broken)

	// Break without a noise label is a no-op.
	plain, err := contingency.FromLabels(a, b, contingency.WithBreakNoise())
	require.NoError(t, err)
	assert.Equal(t, 3, plain.Size1())
}

func TestFromCounts(t *testing.T) {
	counts := [][]int{{5, 1, 0}, {1, 4, 1}, {0, 2, 3}}
	tab, err := contingency.FromCounts(counts)
	require.NoError(t, err)
	assert.Equal(t, 17, tab.Total())
	assert.Equal(t, []int{6, 6, 5}, tab.RowTotals())
	assert.Equal(t, []int{6, 7, 4}, tab.ColTotals())
	requireMarginals(t, tab)

	counts[0][0] = 99 // input is copied
	assert.Equal(t, 5, tab.Count(0, 0))
}

func TestFromCounts_Errors(t *testing.T) {
	tests := []struct {
		name    string
		counts  [][]int
		wantErr error
	}{
		{"nil", nil, contingency.ErrEmptyTable},
		{"no columns", [][]int{{}}, contingency.ErrEmptyTable},
		{"ragged", [][]int{{1, 2}, {3}}, contingency.ErrRagged},
		{"negative", [][]int{{1, -2}}, contingency.ErrNegativeCount},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := contingency.FromCounts(tc.counts)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestFromMarginalTable(t *testing.T) {
	full := [][]int{
		{2, 1, 3},
		{0, 2, 2},
		{2, 3, 5},
	}
	tab, err := contingency.FromMarginalTable(full)
	require.NoError(t, err)
	assert.Equal(t, full, tab.Raw())

	tests := []struct {
		name    string
		full    [][]int
		wantErr error
	}{
		{"too small", [][]int{{1}}, contingency.ErrEmptyTable},
		{"ragged", [][]int{{1, 1}, {1}}, contingency.ErrRagged},
		{"row total", [][]int{{1, 2}, {1, 1}}, contingency.ErrMarginalMismatch},
		{"col total", [][]int{{1, 1}, {2, 1}}, contingency.ErrMarginalMismatch},
		{"grand total", [][]int{{1, 1}, {1, 3}}, contingency.ErrMarginalMismatch},
		{"negative", [][]int{{-1, -1}, {-1, -1}}, contingency.ErrNegativeCount},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := contingency.FromMarginalTable(tc.full)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestTable_AccessorsReturnCopies(t *testing.T) {
	tab, err := contingency.FromCounts([][]int{{1, 2}, {3, 4}})
	require.NoError(t, err)

	raw := tab.Raw()
	raw[0][0] = 100
	rows := tab.RowTotals()
	rows[0] = 100
	cols := tab.ColTotals()
	cols[0] = 100

	assert.Equal(t, 1, tab.Count(0, 0))
	assert.Equal(t, 3, tab.RowTotal(0))
	assert.Equal(t, 4, tab.ColTotal(0))
}
