// SPDX-License-Identifier: MIT
// Package: gedembed/builder
//
// api.go — public entry points for the builder package.
//
// Contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Resolves cfg once, runs
//     cons in order against a draft, freezes the draft into a core.Graph.
//   - Topology constructors append disjoint components; ids continue.
//   - Determinism: same inputs/options/seed and order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gedembed/core"
)

// draft accumulates nodes and edges before the immutable graph is built.
type draft struct {
	n     int
	edges [][2]int
}

// addNodes reserves k fresh node ids and returns the first one.
func (d *draft) addNodes(k int) int {
	base := d.n
	d.n += k

	return base
}

// addEdge records an undirected edge; core.NewGraph canonicalizes and dedups.
func (d *draft) addEdge(u, v int) {
	d.edges = append(d.edges, [2]int{u, v})
}

// Constructor applies a deterministic mutation to the draft.
// Constructors validate parameters first and return sentinel errors.
type Constructor func(d *draft, cfg builderConfig) error

// BuildGraph resolves bopts, applies cons in order and returns the graph.
// Any constructor error is wrapped as "BuildGraph: %w".
//
// Complexity: Σ constructor costs + O(n + E) for freezing.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	d := &draft{}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	g, err := core.NewGraph(d.n, d.edges)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %v: %w", err, ErrConstructFailed)
	}
	if cfg.labelFn == nil {
		return g, nil
	}

	// Labels may depend on final degrees, so they are attached in a second pass.
	labels := make([]int, d.n)
	for u := range labels {
		labels[u] = cfg.labelFn(u, g.Degree(u))
	}
	g, err = core.NewGraph(d.n, d.edges, core.WithLabels(labels))
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %v: %w", err, ErrConstructFailed)
	}

	return g, nil
}

// MustBuildGraph is BuildGraph that panics on error; for tests and examples.
func MustBuildGraph(bopts []BuilderOption, cons ...Constructor) *core.Graph {
	g, err := BuildGraph(bopts, cons...)
	if err != nil {
		panic(err)
	}

	return g
}
