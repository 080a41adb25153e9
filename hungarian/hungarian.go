// Package hungarian implements the shortest augmenting path Kuhn–Munkres solver.
//
// Notes on implementation choices:
//
//   - Costs are copied once into a flat row-major slice after NaN/Inf and
//     magnitude checks (MaxMagnitude), so potentials never see a non-finite value.
//   - Column index C is a virtual column owned by the row being inserted; it
//     anchors every augmenting path and terminates the path reversal.
//   - Potentials are updated lazily by the frontier minimum delta, which keeps
//     every reduced cost non-negative and bounds each insertion by O(R·C).
package hungarian

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmatch/matrix"
)

// none marks a column that no row owns yet.
const none = -1

// Solve computes a minimum-cost assignment of every row of cost to a distinct
// column. cost must have Rows() ≤ Cols().
//
// Preconditions and validation (in order):
//  1. cost must be non-nil (ErrNilMatrix).
//  2. cost.Rows() ≤ cost.Cols() (ErrTooManyRows).
//  3. Every entry must be finite (ErrNaNInf, with coordinates).
//  4. Every |entry| must be at most MaxMagnitude(R, C) (ErrCostRange).
//
// Returns a Result whose Assignment has length Rows(); a matrix with zero rows
// yields an empty assignment and zero cost.
//
// Complexity:
//
//   - Time:  O(R²·C)
//   - Space: O(R·C)
func Solve(cost matrix.Matrix, opts ...Option) (*Result, error) {
	cfg := gatherOptions(opts)

	p, err := load(cost, cfg.Maximize)
	if err != nil {
		return nil, err
	}

	res, err := p.run()
	if err != nil {
		return nil, err
	}
	cfg.Logger.Debug("hungarian: solved",
		"rows", p.rows, "cols", p.cols, "cost", res.Cost, "maximize", cfg.Maximize, "transposed", false)

	return res, nil
}

// SolveRows is Solve over a slice-of-rows cost matrix.
// Ragged rows fail with matrix.ErrDimensionMismatch.
func SolveRows(rows [][]float64, opts ...Option) (*Result, error) {
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("hungarian: %w", err)
	}

	return Solve(m, opts...)
}

// SolveAnyShape accepts any R×C cost matrix. For R ≤ C it is Solve. For R > C
// it solves the transpose and maps the result back: Assignment is indexed by
// original row, and the R−C rows left without a column hold Unassigned.
//
// Complexity: O(R·C·min(R,C)) time, O(R·C) space.
func SolveAnyShape(cost matrix.Matrix, opts ...Option) (*Result, error) {
	if err := matrix.ValidateNotNil(cost); err != nil {
		return nil, fmt.Errorf("hungarian: %w", err)
	}
	if cost.Rows() <= cost.Cols() {
		return Solve(cost, opts...)
	}

	cfg := gatherOptions(opts)
	t, err := matrix.Transpose(cost)
	if err != nil {
		return nil, fmt.Errorf("hungarian: %w", err)
	}
	p, err := load(t, cfg.Maximize)
	if err != nil {
		return nil, err
	}
	inner, err := p.run()
	if err != nil {
		return nil, err
	}

	// inner.Assignment maps original columns → original rows.
	out := make([]int, cost.Rows())
	for i := range out {
		out[i] = Unassigned
	}
	for j, i := range inner.Assignment {
		out[i] = j
	}
	cfg.Logger.Debug("hungarian: solved",
		"rows", cost.Rows(), "cols", cost.Cols(), "cost", inner.Cost, "maximize", cfg.Maximize, "transposed", true)

	return &Result{Assignment: out, Cost: inner.Cost}, nil
}

// problem is the solver's private working copy of one cost matrix.
type problem struct {
	rows, cols int
	cost       []float64 // row-major, negated when maximizing
	sign       float64   // +1 minimize, -1 maximize (undoes the negation in Result.Cost)
}

// MaxMagnitude returns the largest |cost| accepted for an R×C problem.
//
// Potentials stay within (2R+1)·L for costs bounded by L, so capping L at
// MaxFloat64 / (4·(R+C+1)) keeps every reduced cost, potential and total finite.
func MaxMagnitude(rows, cols int) float64 {
	return math.MaxFloat64 / float64(4*(rows+cols+1))
}

// load validates cost and copies it into a flat buffer.
//
// Implementation:
//   - Stage 1: nil and orientation checks.
//   - Stage 2: matrix.ValidateFinite over every entry.
//   - Stage 3: O(R·C) copy with the MaxMagnitude bound per entry.
func load(cost matrix.Matrix, maximize bool) (*problem, error) {
	if err := matrix.ValidateNotNil(cost); err != nil {
		return nil, fmt.Errorf("hungarian: %w", err)
	}
	r, c := cost.Rows(), cost.Cols()
	if r > c {
		return nil, fmt.Errorf("%w: %dx%d", ErrTooManyRows, r, c)
	}
	if err := matrix.ValidateFinite(cost); err != nil {
		return nil, fmt.Errorf("hungarian: cost: %w", err)
	}

	p := &problem{rows: r, cols: c, cost: make([]float64, r*c), sign: 1}
	if maximize {
		p.sign = -1
	}

	var (
		i, j  int
		v     float64
		err   error
		limit = MaxMagnitude(r, c)
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = cost.At(i, j); err != nil {
				return nil, fmt.Errorf("hungarian: %w", err)
			}
			if math.Abs(v) > limit {
				return nil, fmt.Errorf("hungarian: cost(%d,%d)=%g exceeds ±%g: %w", i, j, v, limit, ErrCostRange)
			}
			p.cost[i*c+j] = p.sign * v
		}
	}

	return p, nil
}

// run executes the row-by-row augmentation.
//
// State (n = rows, m = cols, index m is the virtual column):
//   - u[i]     row potentials.
//   - v[j]     column potentials.
//   - owner[j] row currently holding column j, or none.
//   - way[j]   previous column on the shortest path to j.
//   - minv[j]  smallest reduced cost reaching column j in the current search.
//   - used[j]  column j already belongs to the search tree.
func (p *problem) run() (*Result, error) {
	n, m := p.rows, p.cols
	if n == 0 {
		return &Result{Assignment: []int{}, Cost: 0}, nil
	}

	u := make([]float64, n)
	v := make([]float64, m+1)
	owner := make([]int, m+1)
	way := make([]int, m+1)
	minv := make([]float64, m+1)
	used := make([]bool, m+1)
	for j := 0; j < m; j++ {
		owner[j] = none
	}

	var (
		i, j, j0, j1, i0 int
		delta, reduced   float64
		base             int
	)
	for i = 0; i < n; i++ {
		// Stage 1: seed the search at the virtual column owned by row i.
		owner[m] = i
		j0 = m
		for j = 0; j <= m; j++ {
			minv[j] = math.Inf(1)
			used[j] = false
		}

		// Stage 2: grow the shortest-path tree until a free column is reached.
		for {
			used[j0] = true
			i0 = owner[j0]
			base = i0 * m
			delta = math.Inf(1)
			j1 = none
			for j = 0; j < m; j++ {
				if used[j] {
					continue
				}
				reduced = p.cost[base+j] - u[i0] - v[j]
				if reduced < minv[j] {
					minv[j] = reduced
					way[j] = j0
				}
				// Strict comparison: ties keep the lowest column index.
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}

			if j1 == none {
				return nil, fmt.Errorf("%w: no finite reduced cost while inserting row %d", ErrCostRange, i)
			}

			// Stage 3: shift potentials so reduced costs stay non-negative.
			for j = 0; j <= m; j++ {
				if used[j] {
					u[owner[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}

			j0 = j1
			if owner[j0] == none {
				break
			}
		}

		// Stage 4: reverse the augmenting path back to the virtual column.
		for j0 != m {
			j1 = way[j0]
			owner[j0] = owner[j1]
			j0 = j1
		}
	}

	assignment := make([]int, n)
	var total float64
	for j = 0; j < m; j++ {
		if owner[j] != none {
			assignment[owner[j]] = j
		}
	}
	for i = 0; i < n; i++ {
		total += p.cost[i*m+assignment[i]]
	}

	if math.IsInf(total, 0) || math.IsNaN(total) {
		return nil, fmt.Errorf("%w: total %v", ErrCostRange, total)
	}

	return &Result{Assignment: assignment, Cost: p.sign * total}, nil
}
