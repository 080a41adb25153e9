// Package lvmatch compares two clusterings of the same elements by matching
// their clusters one-to-one.
//
// What is inside?
//
//	matrix/      Dense float64 storage, validators, transpose, gonum interop
//	hungarian/   rectangular minimum/maximum cost assignment (Kuhn–Munkres)
//	contingency/ co-occurrence tables built from labelings or raw counts
//	evaluation/  cluster-matching accuracy and the Pair Sets Index
//	cmd/clustereval score a YAML input from the command line
//
// Quick start:
//
//	tab, _ := contingency.FromLabels(reference, predicted)
//	acc, _ := evaluation.NewAccuracy(tab)
//	psi, _ := evaluation.NewPairSetsIndex(tab)
//	fmt.Println(acc.Value(), psi.PSI())
//
// Both scores are invariant to cluster renaming and to swapping the two
// clusterings. The Pair Sets Index is additionally corrected for chance:
// it is near 0 for unrelated clusterings and 1 for identical ones.
//
// Installation:
//
//	go get github.com/katalvlaran/lvmatch
package lvmatch
