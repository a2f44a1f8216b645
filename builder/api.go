// SPDX-License-Identifier: MIT
// Package: mindeg/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(bopts, cons...). Resolves cfg, runs cons in
//     order over one edge sketch, then freezes the sketch into a csr.Graph.
//   - Each constructor appends a disjoint component; its vertex ids continue
//     after the previous component (component-local index + base offset).
//   - Functional options (BuilderOption) resolve into an immutable
//     builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mindeg/csr"
)

// Constructor appends one component to the sketch using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Reserve their vertices with sketch.grow before emitting edges.
//   - Preserve determinism for the same config and call order.
type Constructor func(s *sketch, cfg builderConfig) error

// sketch accumulates vertices and undirected edges before freezing.
type sketch struct {
	n     int      // vertices reserved so far
	edges [][2]int // undirected edges, emission order
}

// grow reserves k fresh vertices and returns the id of the first one.
func (s *sketch) grow(k int) int {
	base := s.n
	s.n += k

	return base
}

// link records the undirected edge {u,v}.
func (s *sketch) link(u, v int) { s.edges = append(s.edges, [2]int{u, v}) }

// BuildGraph resolves the builder configuration from bopts, applies all
// constructors in order and returns the resulting symmetric CSR graph.
//
// Post-processing (in this order):
//   - WithSelfLoops adds the diagonal entry {i,i} for every vertex.
//   - WithVertexWeightFn assigns weight fn(rng, i) to every vertex; a weight
//     below 1 fails with ErrBadWeight.
//
// Errors:
//   - Wraps constructor errors via %w; callers branch with errors.Is against
//     builder sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
//   - ErrConstructFailed for a nil constructor.
//
// Complexity:
//   - Σ cost of each constructor plus O(n + m·log d) for the CSR freeze.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*csr.Graph, error) {
	// Resolve deterministic builder configuration from functional options.
	cfg := newBuilderConfig(bopts...)
	s := &sketch{}

	// Apply each constructor sequentially to preserve deterministic ids.
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	// Diagonal entries are recorded once per vertex; csr keeps them as a
	// single self loop.
	if cfg.selfLoops {
		for i := 0; i < s.n; i++ {
			s.link(i, i)
		}
	}

	var weights []int
	if cfg.vertexWeightFn != nil {
		weights = make([]int, s.n)
		for i := range weights {
			w := cfg.vertexWeightFn(cfg.rng, i)
			if w < minVertexWeight {
				return nil, fmt.Errorf("BuildGraph: vertex %d weight %d < %d: %w", i, w, minVertexWeight, ErrBadWeight)
			}
			weights[i] = w
		}
	}

	g, err := csr.FromEdges(s.n, s.edges, weights)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %v: %w", err, ErrConstructFailed)
	}

	return g, nil
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Each factory returns a Constructor closure. The closure MUST:
//   - Reserve vertices via s.grow and address them as base+index.
//   - Emit edges in a stable, documented order.
//   - Return only sentinel errors; NEVER panic at runtime.

// Grid builds an R×C 5-point stencil (4-neighbourhood), row-major ids.
//func Grid(rows, cols int) Constructor

// Grid9 builds an R×C 9-point stencil (8-neighbourhood), row-major ids.
//func Grid9(rows, cols int) Constructor

// Path builds a simple path P_n (n ≥ 2).
//func Path(n int) Constructor

// Cycle builds a simple cycle C_n (n ≥ 3).
//func Cycle(n int) Constructor

// Star builds a star with hub base+0 and n-1 leaves (n ≥ 2).
//func Star(n int) Constructor

// Wheel builds a rim cycle of n-1 vertices plus a hub base+n-1 (n ≥ 4).
//func Wheel(n int) Constructor

// Complete builds K_n (n ≥ 1).
//func Complete(n int) Constructor

// CompleteBipartite builds K_{n1,n2}, left side first (n1, n2 ≥ 1).
//func CompleteBipartite(n1, n2 int) Constructor

// Isolated adds n vertices without edges (n ≥ 1).
//func Isolated(n int) Constructor

// RandomSparse builds an Erdős–Rényi-like graph; requires cfg.rng for 0<p<1.
//func RandomSparse(n int, p float64) Constructor

// RandomRegular builds a d-regular simple graph via stub matching.
//func RandomRegular(n, d int) Constructor
