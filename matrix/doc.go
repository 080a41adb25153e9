// Package matrix provides the dense numeric storage consumed by the assignment
// solver and the cluster evaluation scores.
//
// The matrix package provides:
//
//   - Matrix, a minimal interface over a two-dimensional float64 array with
//     bounds-checked At/Set and deep Clone.
//   - Dense, a row-major implementation backed by a single flat slice.
//   - A finite-value numeric policy: Dense.Set rejects NaN and ±Inf by default.
//   - Validators: ValidateNotNil, ValidateFinite.
//   - Transpose and gonum interop (FromGonum, ToGonum).
//
// Dense matrices are meant for small-to-medium cost tables where O(r·c)
// memory is acceptable; a k×k contingency table between two clusterings is
// the typical input.
package matrix
