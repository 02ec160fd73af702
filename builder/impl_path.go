package builder

import "fmt"

// Path appends a simple path P_n: edges i–(i+1) for i ascending.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if n < MinPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodPath, n, MinPathNodes, ErrTooFewVertices)
		}
		base := d.addNodes(n)
		for i := 0; i+1 < n; i++ {
			d.addEdge(base+i, base+i+1)
		}

		return nil
	}
}
