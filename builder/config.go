// SPDX-License-Identifier: MIT
// Package: gedembed/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Defaults:
//   • rng     = nil            (pure unless seeded)
//   • labelFn = nil            (unlabelled graphs)
//   • valueFn = NormalValueFn(0, 1)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// rng for stochastic choices; nil means no randomness.
	rng *rand.Rand

	// labelFn assigns node labels after all constructors ran; it sees the
	// finished draft so it may depend on degrees.
	labelFn func(node, degree int) int

	// valueFn samples embedding coordinates in RandomEmbedding.
	valueFn ValueFn
}

// newBuilderConfig applies options in order over the defaults (last wins).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		valueFn: NormalValueFn(0, 1),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
