package builder

import "fmt"

// Grid appends a rows×cols 4-neighbourhood grid, node r*cols+c row-major.
// Edges: right neighbour then down neighbour per cell.
// Complexity: O(rows·cols).
func Grid(rows, cols int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if rows < MinGridDim || cols < MinGridDim {
			return fmt.Errorf("%s: %dx%d below %d: %w", MethodGrid, rows, cols, MinGridDim, ErrTooFewVertices)
		}
		base := d.addNodes(rows * cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := base + r*cols + c
				if c+1 < cols {
					d.addEdge(u, u+1)
				}
				if r+1 < rows {
					d.addEdge(u, u+cols)
				}
			}
		}

		return nil
	}
}
