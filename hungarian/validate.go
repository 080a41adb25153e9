// Package hungarian - helpers to check and price assignments.
//
// These are deterministic, side-effect free functions used by callers that
// receive an assignment from elsewhere and by the package tests.
package hungarian

import (
	"fmt"

	"github.com/katalvlaran/lvmatch/matrix"
)

// Validate checks that assignment maps rows to distinct columns in [0, cols).
// Entries equal to Unassigned are skipped (SolveAnyShape results).
//
// Complexity: O(len(assignment) + cols).
func Validate(assignment []int, cols int) error {
	seen := make([]bool, cols)
	for i, j := range assignment {
		if j == Unassigned {
			continue
		}
		if j < 0 || j >= cols {
			return fmt.Errorf("%w: row %d → column %d outside [0,%d)", ErrBadAssignment, i, j, cols)
		}
		if seen[j] {
			return fmt.Errorf("%w: column %d assigned twice (row %d)", ErrBadAssignment, j, i)
		}
		seen[j] = true
	}

	return nil
}

// TotalCost returns Σ cost[i][assignment[i]] over assigned rows.
//
// Errors: ErrNilMatrix, ErrBadAssignment if the assignment length differs from
// cost.Rows() or any entry is invalid.
// Complexity: O(R + C).
func TotalCost(cost matrix.Matrix, assignment []int) (float64, error) {
	if err := matrix.ValidateNotNil(cost); err != nil {
		return 0, fmt.Errorf("hungarian: %w", err)
	}
	if len(assignment) != cost.Rows() {
		return 0, fmt.Errorf("%w: length %d, want %d", ErrBadAssignment, len(assignment), cost.Rows())
	}
	if err := Validate(assignment, cost.Cols()); err != nil {
		return 0, err
	}

	var total float64
	for i, j := range assignment {
		if j == Unassigned {
			continue
		}
		v, err := cost.At(i, j)
		if err != nil {
			return 0, fmt.Errorf("hungarian: %w", err)
		}
		total += v
	}

	return total, nil
}
