// SPDX-License-Identifier: MIT

package builder

import "github.com/katalvlaran/mindeg/csr"

// SmallMesh returns the 3×3 5-point grid, vertices row-major:
//
//	0 1 2
//	3 4 5
//	6 7 8
func SmallMesh() (*csr.Graph, error) {
	return BuildGraph(nil, Grid(3, 3))
}

// DisconnectedMesh returns a 2×2 grid (0..3), three isolated vertices (4..6)
// and a path 7-8-9, with a self loop on every vertex.
func DisconnectedMesh() (*csr.Graph, error) {
	return BuildGraph([]BuilderOption{WithSelfLoops()}, Grid(2, 2), Isolated(3), Path(3))
}
