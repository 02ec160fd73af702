// SPDX-License-Identifier: MIT
// Package: gedembed/builder
//
// options.go — functional options for the builder package.
//
// Option constructors validate and panic on meaningless input; constructors
// themselves return errors.

package builder

import "math/rand"

// BuilderOption mutates builderConfig before construction.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a seeded RNG for reproducible fixtures.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithLabelFn labels every node with fn(node, degree). Panics on nil.
func WithLabelFn(fn func(node, degree int) int) BuilderOption {
	if fn == nil {
		panic("builder: WithLabelFn(nil)")
	}

	return func(c *builderConfig) { c.labelFn = fn }
}

// WithDegreeLabels labels every node with its degree.
func WithDegreeLabels() BuilderOption {
	return WithLabelFn(func(_, degree int) int { return degree })
}

// WithValueFn overrides the coordinate sampler of RandomEmbedding. Panics on nil.
func WithValueFn(fn ValueFn) BuilderOption {
	if fn == nil {
		panic("builder: WithValueFn(nil)")
	}

	return func(c *builderConfig) { c.valueFn = fn }
}
