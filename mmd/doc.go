// Package mmd computes multiple minimum degree orderings of sparse symmetric
// matrices on top of the qgraph quotient graph.
//
// What
//
//   - Order repeatedly eliminates the vertices of smallest external degree.
//     In the default multiple elimination mode a whole batch of mutually
//     non-adjacent vertices with degree in [min, min+delta] is eliminated
//     between two quotient graph updates; WithSingleElimination updates
//     after every vertex.
//   - The degree priority structure is a bucket.Sorter indexed by degree.
//   - The Result holds the permutation (old → new), its inverse (the
//     elimination sequence) and the engine counters.
//
// Observability
//
//	WithLogger(zap)   per-batch Debug lines, one Info summary per ordering
//	WithMetrics(m)    Prometheus counters and a batch size histogram,
//	                  see NewMetrics
//
// Usage
//
//	g, _ := csr.FromEdges(n, edges, nil)
//	res, err := mmd.Order(g, mmd.WithDelta(1))
//	if err != nil {
//	    // ErrNilGraph, qgraph.ErrOutOfMemory, context errors
//	}
//	for k, v := range res.InvPerm {
//	    // v is eliminated at step k
//	}
package mmd
