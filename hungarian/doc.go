// Package hungarian solves the rectangular linear assignment problem: given an
// R×C cost matrix with R ≤ C, assign every row to a distinct column so that the
// total cost is minimal.
//
// Overview:
//
//   - The solver is the Kuhn–Munkres (Hungarian) method in its shortest
//     augmenting path form (Jonker–Volgenant style): rows are inserted one at a
//     time, and each insertion runs a Dijkstra-like search over reduced costs
//     c[i][j] − u[i] − v[j], which stay non-negative thanks to row potentials u
//     and column potentials v.
//   - Square problems are the R = C special case of the same procedure.
//
// Performance and complexity:
//
//   - Time:  O(R²·C).
//   - Space: O(R·C) for a private flat copy of the costs plus O(R + C) arrays.
//
// Determinism:
//
//   - When several frontier columns share the minimum reduced cost, the lowest
//     column index is taken. Identical input always yields the identical
//     assignment. Different optimal assignments of equal cost may exist; only
//     the cost is guaranteed to be minimal.
//
// Error handling (sentinel errors):
//
//   - ErrNilMatrix:   the cost matrix is nil.
//   - ErrTooManyRows: R > C was passed to Solve (use SolveAnyShape or transpose).
//   - ErrNaNInf:      a cost entry is NaN or ±Inf; detected before any work.
//   - ErrCostRange:   a finite entry exceeds MaxMagnitude(R, C).
//
// API reference:
//
//	res, err := hungarian.Solve(cost)               // min-cost, R ≤ C
//	res, err := hungarian.SolveRows([][]float64{…}) // convenience over slices
//	res, err := hungarian.SolveAnyShape(cost)       // any R, C; -1 marks unassigned rows
//	res, err := hungarian.Solve(cost, hungarian.WithMaximize())
//
// Thread safety:
//
//   - Solve keeps no state between calls; concurrent solves on independent
//     matrices need no synchronization.
package hungarian
