package evaluation_test

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/katalvlaran/lvmatch/evaluation"
	"github.com/katalvlaran/lvmatch/hungarian"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPSI_SingleClusters returns 1 without running the solver.
func TestPSI_SingleClusters(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	p, err := evaluation.NewPairSetsIndex(mustCounts(t, [][]int{{9}}), hungarian.WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, 1.0, p.PSI())
	assert.Equal(t, 1.0, p.SimplifiedPSI())
	assert.Empty(t, buf.String(), "solver must not run for the 1×1 case")
}

// TestPSI_GeneralPathLogs confirms the solver runs otherwise.
func TestPSI_GeneralPathLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := evaluation.NewPairSetsIndex(mustCounts(t, [][]int{{3, 1}, {1, 3}}), hungarian.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "hungarian: solved")
}

// TestPSI_IdenticalClusterings yields 1 for any k ≥ 2.
func TestPSI_IdenticalClusterings(t *testing.T) {
	for _, sizes := range [][]int{{1, 1}, {5, 2}, {4, 4, 4}, {10, 1, 3, 7}} {
		counts := make([][]int, len(sizes))
		for i, n := range sizes {
			counts[i] = make([]int, len(sizes))
			counts[i][i] = n
		}
		p, err := evaluation.NewPairSetsIndex(mustCounts(t, counts))
		require.NoError(t, err)
		assert.InDelta(t, 1.0, p.PSI(), 1e-12, "sizes %v", sizes)
		assert.InDelta(t, 1.0, p.SimplifiedPSI(), 1e-12, "sizes %v", sizes)
	}
}

// TestPSI_ClampedAtBaselines: both indices are 0 when s is at or below its baseline.
func TestPSI_ClampedAtBaselines(t *testing.T) {
	p, err := evaluation.NewPairSetsIndex(mustCounts(t, [][]int{{2, 0}, {3, 2}}))
	require.NoError(t, err)
	require.Less(t, p.Observed(), p.Expected())
	require.Less(t, p.Observed(), 1.0)
	assert.Equal(t, 0.0, p.PSI())
	assert.Equal(t, 0.0, p.SimplifiedPSI())

	// s < 1 but s > e: only the simplified index is clamped.
	q, err := evaluation.NewPairSetsIndex(mustCounts(t, [][]int{{1, 1, 4}}))
	require.NoError(t, err)
	assert.Equal(t, 0.0, q.SimplifiedPSI())
	assert.Greater(t, q.PSI(), q.SimplifiedPSI())
}

// TestPSI_EmptyClusterCell keeps a zero row and zero column from producing NaN.
func TestPSI_EmptyClusterCell(t *testing.T) {
	p, err := evaluation.NewPairSetsIndex(mustCounts(t, [][]int{{3, 0}, {0, 0}}))
	require.NoError(t, err)
	assert.False(t, math.IsNaN(p.PSI()))
	assert.False(t, math.IsNaN(p.Expected()))
	assert.InDelta(t, 1.0, p.Observed(), 1e-12)
}

// TestPSI_Orientation checks that a table and its transpose score alike.
func TestPSI_Orientation(t *testing.T) {
	wide, err := evaluation.NewPairSetsIndex(mustCounts(t, [][]int{{4, 0, 1, 0}, {0, 3, 0, 2}}))
	require.NoError(t, err)
	tall, err := evaluation.NewPairSetsIndex(mustCounts(t, [][]int{{4, 0}, {0, 3}, {1, 0}, {0, 2}}))
	require.NoError(t, err)

	assert.InDelta(t, wide.PSI(), tall.PSI(), 1e-12)
	assert.InDelta(t, wide.SimplifiedPSI(), tall.SimplifiedPSI(), 1e-12)
}

func TestPSI_Errors(t *testing.T) {
	_, err := evaluation.NewPairSetsIndex(nil)
	require.ErrorIs(t, err, evaluation.ErrNilTable)

	_, err = evaluation.NewPairSetsIndex(mustCounts(t, [][]int{{0}}))
	require.ErrorIs(t, err, evaluation.ErrZeroTotal)
}

// TestPSI_Idempotent verifies bit-identical results from equal tables.
func TestPSI_Idempotent(t *testing.T) {
	counts := [][]int{{3, 1, 2}, {0, 4, 1}, {2, 2, 2}, {1, 0, 5}}
	first, err := evaluation.NewPairSetsIndex(mustCounts(t, counts))
	require.NoError(t, err)
	second, err := evaluation.NewPairSetsIndex(mustCounts(t, counts))
	require.NoError(t, err)

	assert.Equal(t, first.PSI(), second.PSI())
	assert.Equal(t, first.SimplifiedPSI(), second.SimplifiedPSI())
	assert.Equal(t, first.Observed(), second.Observed())
	assert.Equal(t, first.Expected(), second.Expected())
}
