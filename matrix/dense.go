// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

var _ Matrix = (*Dense)(nil)

// NewDense creates an r×c Dense matrix initialized to zeros.
// Zero dimensions are allowed; negative ones return ErrBadShape.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFrom adopts data (row-major, len == rows*cols) without copying.
func NewDenseFrom(rows, cols int, data []float64) (*Dense, error) {
	if rows < 0 || cols < 0 || len(data) != rows*cols {
		return nil, fmt.Errorf("NewDenseFrom(%d,%d,len=%d): %w", rows, cols, len(data), ErrBadShape)
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// NewDenseRows copies a rectangular [][]float64 into a new Dense.
// An empty outer slice yields a 0×0 matrix; ragged rows return ErrBadShape.
func NewDenseRows(rows [][]float64) (*Dense, error) {
	r := len(rows)
	if r == 0 {
		return &Dense{}, nil
	}
	c := len(rows[0])
	data := make([]float64, 0, r*c)
	for i, row := range rows {
		if len(row) != c {
			return nil, fmt.Errorf("NewDenseRows: row %d has %d cols, want %d: %w", i, len(row), c, ErrBadShape)
		}
		data = append(data, row...)
	}

	return &Dense{r: r, c: c, data: data}, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a view (not a copy) of row i, or nil when out of range.
// Writes through the view are visible in m.
func (m *Dense) Row(i int) []float64 {
	if i < 0 || i >= m.r {
		return nil
	}

	return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c]
}

// RawData exposes the flat row-major backing slice. Hot loops in the
// assignment solver read it directly to skip per-element bounds checks.
func (m *Dense) RawData() []float64 { return m.data }

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	return &Dense{r: m.r, c: m.c, data: append([]float64(nil), m.data...)}
}

// Transpose returns a new c×r matrix.
// Complexity: O(r*c).
func (m *Dense) Transpose() *Dense {
	t := &Dense{r: m.c, c: m.r, data: make([]float64, len(m.data))}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			t.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return t
}

// Scale multiplies every element by k in place.
func (m *Dense) Scale(k float64) {
	for i := range m.data {
		m.data[i] *= k
	}
}

// Fill sets every element to v.
func (m *Dense) Fill(v float64) {
	for i := range m.data {
		m.data[i] = v
	}
}

// ValidateFinite returns ErrNaNInf (with the first offending cell) when any
// element is NaN or ±Inf.
// Complexity: O(r*c).
func (m *Dense) ValidateFinite() error {
	for idx, v := range m.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return denseErrorf("ValidateFinite", idx/m.c, idx%m.c, ErrNaNInf)
		}
	}

	return nil
}

// Equal reports exact element-wise equality of shape and values.
// NaN cells compare equal to NaN so that failed-cell markers round-trip.
func (m *Dense) Equal(o *Dense) bool {
	if o == nil || m.r != o.r || m.c != o.c {
		return false
	}
	for i, v := range m.data {
		w := o.data[i]
		if v != w && !(math.IsNaN(v) && math.IsNaN(w)) {
			return false
		}
	}

	return true
}

// Ints converts every element to int32, rounding half away from zero.
// NaN cells become -1. Unit-cost runs produce integral cells; this is the
// view store.WriteNPYInt32 exports.
func (m *Dense) Ints() [][]int32 {
	out := make([][]int32, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]int32, m.c)
		for j := 0; j < m.c; j++ {
			v := m.data[i*m.c+j]
			if math.IsNaN(v) {
				out[i][j] = -1
				continue
			}
			out[i][j] = int32(math.Round(v))
		}
	}

	return out
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(r*c).
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
			if j < m.c-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
