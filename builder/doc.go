// Package builder provides deterministic fixture constructors that emit
// symmetric CSR graphs (csr.Graph) for ordering tests, benchmarks and the
// command line tool.
//
// The package offers the following key components:
//
//   - BuildGraph(opts, cons...): runs constructors in order; each appends a
//     disjoint component whose vertex ids continue after the previous one.
//   - Topologies: Grid (5-point stencil), Grid9 (9-point stencil), Path,
//     Cycle, Star, Wheel, Complete, CompleteBipartite, Isolated,
//     RandomSparse, RandomRegular.
//   - Options: WithSeed / WithRand (stochastic constructors), WithSelfLoops
//     (diagonal entries), WithVertexWeightFn and its shorthands.
//   - Canned fixtures: SmallMesh (3×3 grid) and DisconnectedMesh (grid,
//     isolated vertices and a path, all self-looped).
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical graph.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed, ErrBadWeight) for invalid build
//     parameters, wrapped with the constructor name.
package builder
