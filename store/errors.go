package store

import "errors"

// Sentinel errors for result persistence.
var (
	// ErrRunNotFound indicates an unknown run id.
	ErrRunNotFound = errors.New("store: run not found")

	// ErrShape indicates labels or stored cells that disagree with the matrix shape.
	ErrShape = errors.New("store: shape mismatch")
)
