// SPDX-License-Identifier: MIT
// Package: mindeg/builder
//
// impl_grid.go - implementation of Grid(rows, cols) and Grid9(rows, cols).
//
// Canonical model:
//   • 2D grid, vertex (r,c) has id base + r*cols + c (row-major order).
//   • Grid: 5-point stencil, edges to Right and Bottom neighbours.
//   • Grid9: 9-point stencil, additionally Bottom-Right and Bottom-Left.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(rows*cols) vertices + O(rows*cols) edges.
//   • Space: O(1) extra.
//
// Determinism:
//   • Stable edge order: for each (r,c) row-major emit Right, Bottom, then
//     (Grid9 only) Bottom-Right and Bottom-Left if present.

package builder

// Grid returns a Constructor that builds a rows×cols 5-point stencil.
// Grid(3,3) is the canonical small mesh fixture.
func Grid(rows, cols int) Constructor {
	return gridStencil(MethodGrid, rows, cols, false)
}

// Grid9 returns a Constructor that builds a rows×cols 9-point stencil.
func Grid9(rows, cols int) Constructor {
	return gridStencil(MethodGrid9, rows, cols, true)
}

func gridStencil(method string, rows, cols int, diagonals bool) Constructor {
	return func(s *sketch, _ builderConfig) error {
		// 1) Validate parameters early (fail fast; no partial work).
		if err := validateMin(method, "rows", rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(method, "cols", cols, MinGridDim); err != nil {
			return err
		}

		// 2) Reserve all cells at once; id(r,c) = base + r*cols + c.
		base := s.grow(rows * cols)
		id := func(r, c int) int { return base + r*cols + c }

		// 3) Emit edges in row-major order.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := id(r, c)
				if c+1 < cols {
					s.link(u, id(r, c+1)) // right
				}
				if r+1 < rows {
					s.link(u, id(r+1, c)) // bottom
				}
				if !diagonals || r+1 >= rows {
					continue
				}
				if c+1 < cols {
					s.link(u, id(r+1, c+1)) // bottom-right
				}
				if c > 0 {
					s.link(u, id(r+1, c-1)) // bottom-left
				}
			}
		}

		return nil
	}
}
