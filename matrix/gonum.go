// SPDX-License-Identifier: MIT

package matrix

import (
	"gonum.org/v1/gonum/mat"
)

// ToGonum returns a *mat.Dense sharing m's backing storage.
//
// gonum rejects zero-sized matrices, so ok is false for shapes with a zero
// dimension; callers special-case those (there is nothing to compute).
func (m *Dense) ToGonum() (g *mat.Dense, ok bool) {
	if m.r == 0 || m.c == 0 {
		return nil, false
	}

	return mat.NewDense(m.r, m.c, m.data), true
}

// FromGonum copies any gonum matrix into a new Dense.
// Complexity: O(r*c).
func FromGonum(g mat.Matrix) *Dense {
	r, c := g.Dims()
	out := &Dense{r: r, c: c, data: make([]float64, r*c)}
	if raw, ok := g.(*mat.Dense); ok {
		rm := raw.RawMatrix()
		for i := 0; i < r; i++ {
			copy(out.data[i*c:(i+1)*c], rm.Data[i*rm.Stride:i*rm.Stride+c])
		}

		return out
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[i*c+j] = g.At(i, j)
		}
	}

	return out
}
