package builder

import "fmt"

// Star appends a star with n-1 leaves; the center is the first appended node.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if n < MinStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", MethodStar, n, MinStarNodes, ErrTooFewVertices)
		}
		center := d.addNodes(n)
		for i := 1; i < n; i++ {
			d.addEdge(center, center+i)
		}

		return nil
	}
}
