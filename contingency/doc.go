// Package contingency builds the cross-tabulation of two clusterings.
//
// A Table with Size1() = k₁ clusters in clustering A and Size2() = k₂ clusters
// in clustering B stores a (k₁+1)×(k₂+1) integer matrix:
//
//	    B₀   B₁  …  B₍k₂₋₁₎ │ Σ
//	A₀  n₀₀  n₀₁    …       │ rowTotal(0)
//	…                        │
//	──────────────────────────┼────────
//	Σ   colTotal(0) …        │ n
//
// n_ij counts the elements that are in cluster i of A and in cluster j of B.
// Row k₁ holds the column totals, column k₂ the row totals and the corner the
// element count n.
//
// Constructors:
//
//   - FromLabels: two equally long label slices, one label per element.
//   - FromCounts: the k₁×k₂ co-occurrence counts; totals are derived.
//   - FromMarginalTable: an already appended (k₁+1)×(k₂+1) table; totals are
//     checked against the sums.
//
// A Table is immutable: every accessor returns values or copies.
package contingency
