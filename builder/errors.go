// SPDX-License-Identifier: MIT
// Package: gedembed/builder
//
// errors.go — sentinel errors for the builder package.
//
// Callers branch with errors.Is; constructors add method context via %w.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or an invalid final graph.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrBadSize indicates an invalid embedding dimension or length.
var ErrBadSize = errors.New("builder: invalid size/length")
