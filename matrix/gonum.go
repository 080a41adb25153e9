// SPDX-License-Identifier: MIT

// Package matrix - interop with gonum.org/v1/gonum/mat.
package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FromGonum copies any gonum mat.Matrix into a new Dense under the default
// numeric policy, so NaN/Inf entries are rejected at ingestion.
//
// Errors: ErrNilMatrix for a nil input, ErrNaNInf (with coordinates).
// Complexity: O(r*c).
func FromGonum(src mat.Matrix) (*Dense, error) {
	if src == nil {
		return nil, fmt.Errorf("%s: %w", ctxFromGo, ErrNilMatrix)
	}
	r, c := src.Dims()
	m, err := newDenseZeroOK(r, c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxFromGo, err)
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			v = src.At(i, j)
			if !isFinite(v) {
				return nil, denseErrorf(ctxFromGo, i, j, ErrNaNInf)
			}
			m.data[i*c+j] = v
		}
	}

	return m, nil
}

// ToGonum returns a gonum *mat.Dense holding a copy of m's values.
// gonum forbids zero-sized dense matrices, so an empty m yields nil.
func (m *Dense) ToGonum() *mat.Dense {
	if m == nil || m.r == 0 || m.c == 0 {
		return nil
	}
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return mat.NewDense(m.r, m.c, cp)
}
