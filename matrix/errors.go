// SPDX-License-Identifier: MIT

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." for consistency. Callers match
// with errors.Is; context is attached with fmt.Errorf("ctx: %w", ErrX).
var (
	// ErrBadShape is returned when a requested shape has a negative dimension
	// or when backing data does not fit the shape.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
