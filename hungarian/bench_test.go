package hungarian_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmatch/hungarian"
	"github.com/katalvlaran/lvmatch/matrix"
)

// BenchmarkSolve measures square and wide solves on uniform random costs.
func BenchmarkSolve(b *testing.B) {
	shapes := [][2]int{{16, 16}, {64, 64}, {64, 128}, {128, 128}}
	for _, sh := range shapes {
		rng := rand.New(rand.NewSource(1))
		m, err := matrix.NewDense(sh[0], sh[1])
		if err != nil {
			b.Fatal(err)
		}
		for i := 0; i < sh[0]; i++ {
			for j := 0; j < sh[1]; j++ {
				_ = m.Set(i, j, rng.Float64())
			}
		}

		b.Run(fmt.Sprintf("%dx%d", sh[0], sh[1]), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := hungarian.Solve(m); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
