package hungarian_test

import (
	"fmt"

	"github.com/katalvlaran/lvmatch/hungarian"
	"github.com/katalvlaran/lvmatch/matrix"
)

// ExampleSolveRows assigns three workers to three jobs at minimum cost.
//
// Scenario:
//
//	         job0 job1 job2
//	worker0   4    1    3
//	worker1   2    0    5
//	worker2   3    2    2
//
// Complexity: O(R²·C) time, O(R·C) memory.
func ExampleSolveRows() {
	res, err := hungarian.SolveRows([][]float64{
		{4, 1, 3},
		{2, 0, 5},
		{3, 2, 2},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("assignment=%v cost=%g\n", res.Assignment, res.Cost)
	// Output:
	// assignment=[1 0 2] cost=5
}

// ExampleSolveAnyShape handles more rows than columns: one row stays unassigned.
func ExampleSolveAnyShape() {
	cost, _ := matrix.NewDenseFromRows([][]float64{
		{1, 9},
		{9, 1},
		{5, 5},
	})
	res, err := hungarian.SolveAnyShape(cost)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("assignment=%v cost=%g\n", res.Assignment, res.Cost)
	// Output:
	// assignment=[0 1 -1] cost=2
}

// ExampleWithMaximize picks the most valuable pairing instead of the cheapest.
func ExampleWithMaximize() {
	res, _ := hungarian.SolveRows([][]float64{
		{5, 1, 0},
		{1, 4, 1},
	}, hungarian.WithMaximize())
	fmt.Printf("assignment=%v value=%g\n", res.Assignment, res.Cost)
	// Output:
	// assignment=[0 1] value=9
}
