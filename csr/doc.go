// Package csr provides the immutable compressed-sparse-row adjacency graph
// consumed by the ordering engines of mindeg.
//
// A Graph G = (V,E) with n = |V| vertices is stored as two flat slices:
//
//	head[0..n]          offsets, head[0] == 0, monotone, head[n] == len(adj)
//	adj[head[i]:head[i+1]]  neighbor ids of vertex i, ascending, no duplicates
//
// Every undirected edge {i,j} (i != j) appears twice, once in each row, so
// head[n] counts directed arcs. A self loop {i,i} is stored once, as a
// diagonal entry; orderings ignore it. Optional integer vertex weights
// (all >= 1) default to 1 when the graph is unweighted.
//
// Why a dedicated type?
//
//   - The quotient-graph engine copies the graph once into its own arena and
//     never looks at it again; a validated, canonical (sorted, de-duplicated,
//     symmetric) input keeps that copy branch-free.
//   - Orderings are index based ([0,n)); string-keyed graphs are adapted at
//     the boundary (FromGonum for gonum graphs, FromEdges for edge lists).
//
// Constructors:
//
//	New(n, head, adj, weights)   validate + canonicalize raw CSR arrays
//	FromEdges(n, edges, weights) symmetric CSR from an undirected edge list
//	FromGonum(g)                 dense relabeling of a gonum graph.Undirected
//
// Errors:
//
//	ErrNilGraph            - nil graph passed to an adapter
//	ErrBadOrder            - negative vertex count
//	ErrBadHead             - head has wrong length, wrong origin or decreases
//	ErrNeighborOutOfRange  - neighbor id outside [0,n)
//	ErrAsymmetric          - j in adj(i) but i not in adj(j)
//	ErrBadWeights          - weights of length other than 0 or n, weight < 1 or a total that overflows int
//
// Complexity: construction is O(n + nnz·log d) (rows are sorted), all
// accessors are O(1) or O(d).
package csr
