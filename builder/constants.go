// SPDX-License-Identifier: MIT

package builder

// Canonical constructor names, used to prefix errors.
const (
	MethodGrid              = "Grid"
	MethodGrid9             = "Grid9"
	MethodPath              = "Path"
	MethodCycle             = "Cycle"
	MethodStar              = "Star"
	MethodWheel             = "Wheel"
	MethodComplete          = "Complete"
	MethodCompleteBipartite = "CompleteBipartite"
	MethodIsolated          = "Isolated"
	MethodRandomSparse      = "RandomSparse"
	MethodRandomRegular     = "RandomRegular"
)

// Minimum sizes per topology.
const (
	// MinGridDim is the smallest allowed dimension (rows or cols) for a grid.
	// A 1×1 grid has no edges but is valid.
	MinGridDim = 1

	// MinPathNodes is the smallest meaningful size for a simple path.
	MinPathNodes = 2

	// MinCycleNodes is the smallest cycle without loops or multi-edges.
	MinCycleNodes = 3

	// MinStarNodes is one hub plus at least one leaf.
	MinStarNodes = 2

	// MinWheelNodes is a rim of at least 3 plus the hub.
	MinWheelNodes = 4

	// MinCompleteNodes is the smallest complete graph (K_1).
	MinCompleteNodes = 1

	// MinPartition is the smallest side of a complete bipartite graph.
	MinPartition = 1

	// MinIsolatedNodes is the smallest isolated block.
	MinIsolatedNodes = 1

	// MinRandomNodes is the smallest random graph.
	MinRandomNodes = 1
)

// Probability bounds for RandomSparse, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)

// minVertexWeight is the smallest admissible vertex weight.
const minVertexWeight = 1

// maxStubMatchingAttempts bounds RandomRegular retries.
const maxStubMatchingAttempts = 16
