// Package evaluation scores the agreement of two clusterings by optimally
// matching their clusters.
//
// Both scores consume a contingency.Table, turn it into a cost matrix, solve
// the assignment with package hungarian and post-process the assignment:
//
//   - Accuracy: cost −n_ij; the fraction of elements that fall into matched
//     cluster pairs under the best one-to-one cluster correspondence. In [0,1].
//   - PairSetsIndex (Rezaei & Fränti, "Set Matching Measures for External
//     Cluster Validity"): cost −n_ij / max(|Aᵢ|, |Bⱼ|), corrected for the
//     expected matching quality of clusterings with the same size distribution.
//
// Orientation: the solver requires at most as many rows as columns. When A has
// more clusters than B, the cost matrix is built transposed (rows = clusters of
// B). This happens in one place (orient) for both scores.
//
// Score values are computed once by the constructor; the returned objects are
// immutable and safe to share.
package evaluation
