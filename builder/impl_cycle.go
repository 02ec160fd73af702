// SPDX-License-Identifier: MIT
// Package: gedembed/builder
//
// impl_cycle.go — Cycle(n) and Wheel(n).
//
// Contract:
//   • Cycle: n ≥ 3, edges i–(i+1)%n for i ascending.
//   • Wheel: n ≥ 4, hub is the first appended node, rim C_{n-1} follows,
//     spokes hub–rim emitted after the rim.

package builder

import "fmt"

// Cycle appends an n-node simple cycle C_n.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if n < MinCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodCycle, n, MinCycleNodes, ErrTooFewVertices)
		}
		base := d.addNodes(n)
		for i := 0; i < n; i++ {
			d.addEdge(base+i, base+(i+1)%n)
		}

		return nil
	}
}

// Wheel appends W_n: a hub joined to every node of a C_{n-1} rim.
// Complexity: O(n).
func Wheel(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if n < MinWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodWheel, n, MinWheelNodes, ErrTooFewVertices)
		}
		hub := d.addNodes(n)
		rim := n - 1
		for i := 0; i < rim; i++ {
			d.addEdge(hub+1+i, hub+1+(i+1)%rim)
		}
		for i := 0; i < rim; i++ {
			d.addEdge(hub, hub+1+i)
		}

		return nil
	}
}
