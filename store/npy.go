package store

import (
	"fmt"
	"io"
	"os"

	"github.com/sbinet/npyio"
	"github.com/sbinet/npyio/npy"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gedembed/matrix"
)

// WriteNPY writes m as a float64 .npy array of shape (rows, cols).
// A matrix with a zero dimension keeps its shape in the header, e.g. (0, 3).
func WriteNPY(path string, m *matrix.Dense) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteNPY: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("WriteNPY: %w", cerr)
		}
	}()

	g, ok := m.ToGonum()
	if !ok {
		if err = writeShaped(f, []float64{}, m.Rows(), m.Cols()); err != nil {
			return fmt.Errorf("WriteNPY: %w", err)
		}
		return nil
	}
	if err = npyio.Write(f, g); err != nil {
		return fmt.Errorf("WriteNPY: %w", err)
	}

	return nil
}

// WriteNPYInt32 writes m.Ints() as an int32 .npy array of shape (rows, cols).
// NaN cells become -1.
func WriteNPYInt32(path string, m *matrix.Dense) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteNPYInt32: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("WriteNPYInt32: %w", cerr)
		}
	}()

	flat := make([]int32, 0, m.Rows()*m.Cols())
	for _, row := range m.Ints() {
		flat = append(flat, row...)
	}
	if err = writeShaped(f, flat, m.Rows(), m.Cols()); err != nil {
		return fmt.Errorf("WriteNPYInt32: %w", err)
	}

	return nil
}

// writeShaped writes row-major data with an explicit (rows, cols) header.
func writeShaped(w io.Writer, data any, rows, cols int) error {
	nw, err := npy.NewWriter(w)
	if err != nil {
		return err
	}
	nw.Header.Descr.Shape = []int{rows, cols}

	return nw.Write(data)
}

// ReadNPY reads a 2-D float64 .npy file written by WriteNPY.
// A header with a zero dimension yields an empty matrix of that shape.
func ReadNPY(path string) (*matrix.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadNPY: %w", err)
	}
	defer f.Close()

	r, err := npy.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("ReadNPY: %w", err)
	}
	shape := r.Header.Descr.Shape
	if len(shape) == 0 || len(shape) > 2 {
		return nil, fmt.Errorf("ReadNPY: shape %v: %w", shape, ErrShape)
	}
	rows, cols := shape[0], 1
	if len(shape) == 2 {
		cols = shape[1]
	}
	if rows == 0 || cols == 0 {
		m, err := matrix.NewDense(rows, cols)
		if err != nil {
			return nil, fmt.Errorf("ReadNPY: %w", err)
		}
		return m, nil
	}

	var g mat.Dense
	if err := r.Read(&g); err != nil {
		return nil, fmt.Errorf("ReadNPY: %w", err)
	}

	return matrix.FromGonum(&g), nil
}

// WriteIndices writes ids as a 1-D int64 .npy array, the layout numpy uses
// for train_indices.npy / test_indices.npy.
func WriteIndices(path string, ids []int) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteIndices: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("WriteIndices: %w", cerr)
		}
	}()

	raw := make([]int64, len(ids))
	for i, id := range ids {
		raw[i] = int64(id)
	}
	if err = npyio.Write(f, raw); err != nil {
		return fmt.Errorf("WriteIndices: %w", err)
	}

	return nil
}

// ReadIndices reads a 1-D int64 .npy index array.
func ReadIndices(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadIndices: %w", err)
	}
	defer f.Close()

	var raw []int64
	if err := npyio.Read(f, &raw); err != nil {
		return nil, fmt.Errorf("ReadIndices: %w", err)
	}
	ids := make([]int, len(raw))
	for i, v := range raw {
		ids[i] = int(v)
	}

	return ids, nil
}
