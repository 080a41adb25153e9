package evaluation

import (
	"fmt"

	"github.com/katalvlaran/lvmatch/contingency"
	"github.com/katalvlaran/lvmatch/matrix"
)

// oriented is a cost matrix built from a table so that Rows() ≤ Cols().
// transposed reports that rows are clusters of B and columns clusters of A.
type oriented struct {
	cost       *matrix.Dense
	transposed bool
}

// orient builds the min(k₁,k₂)×max(k₁,k₂) cost matrix with entries
// cell(i, j), i indexing clusters of A and j clusters of B. When k₁ > k₂ the
// value for (i, j) is stored at (j, i).
//
// Complexity: O(k₁·k₂).
func orient(t *contingency.Table, cell func(i, j int) float64) (*oriented, error) {
	rows, cols := t.Size1(), t.Size2()
	transposed := rows > cols

	r, c := rows, cols
	if transposed {
		r, c = cols, rows
	}
	cost, err := matrix.NewDense(r, c)
	if err != nil {
		return nil, fmt.Errorf("evaluation: %w", err)
	}

	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if transposed {
				err = cost.Set(j, i, cell(i, j))
			} else {
				err = cost.Set(i, j, cell(i, j))
			}
			if err != nil {
				return nil, fmt.Errorf("evaluation: %w", err)
			}
		}
	}

	return &oriented{cost: cost, transposed: transposed}, nil
}

// checkTable applies the input checks shared by all scores.
func checkTable(t *contingency.Table) error {
	if t == nil {
		return ErrNilTable
	}
	if t.Total() <= 0 {
		return ErrZeroTotal
	}

	return nil
}

// matchedSum returns Σ −cost[i][assignment[i]] over an oriented assignment.
func matchedSum(o *oriented, assignment []int) (float64, error) {
	var s float64
	for i, j := range assignment {
		v, err := o.cost.At(i, j)
		if err != nil {
			return 0, fmt.Errorf("evaluation: matched cell: %w", err)
		}
		s += -v
	}

	return s, nil
}
