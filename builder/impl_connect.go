package builder

import "fmt"

// Connect adds edges between nodes that already exist in the draft.
// Endpoints must be appended by earlier constructors; loops are rejected
// when the graph is frozen.
// Complexity: O(len(pairs)).
func Connect(pairs ...[2]int) Constructor {
	return func(d *draft, _ builderConfig) error {
		for _, p := range pairs {
			if p[0] < 0 || p[0] >= d.n || p[1] < 0 || p[1] >= d.n {
				return fmt.Errorf("%s: (%d,%d) outside %d nodes: %w", MethodConnect, p[0], p[1], d.n, ErrConstructFailed)
			}
			d.addEdge(p[0], p[1])
		}

		return nil
	}
}

// Isolated appends n nodes without edges; n = 0 is allowed and yields the
// empty graph when used alone.
func Isolated(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if n < 0 {
			return fmt.Errorf("Isolated: n=%d: %w", n, ErrTooFewVertices)
		}
		d.addNodes(n)

		return nil
	}
}
