// Package mindeg orders sparse symmetric matrices for factorization with the
// multiple minimum degree heuristic on a quotient graph.
//
// Eliminating a vertex of a symmetric graph joins all of its neighbours into
// a clique (fill). Minimum degree orderings keep that fill small by always
// eliminating a vertex of smallest degree; the quotient graph makes this
// affordable by representing every clique implicitly, in storage that never
// outgrows the input.
//
// Packages:
//
//	csr/        - immutable compressed-sparse-row input graph, gonum adapter
//	builder/    - deterministic fixtures: meshes, paths, cycles, random graphs
//	bucket/     - bucket sorter keyed by hash or degree
//	qgraph/     - the quotient graph: elimination, update, supernodes, store
//	mmd/        - the ordering driver: degree buckets, zap logs, Prometheus metrics
//	cmd/mindeg/ - command line front end (cobra + viper)
//
// Quick example:
//
//	g, _ := builder.BuildGraph(nil, builder.Grid(30, 30))
//	res, _ := mmd.Order(g)
//	// res.Perm[old] = new, res.InvPerm[k] = vertex eliminated at step k
//
// The engine can also be driven step by step (qgraph.New,
// EliminateSupernode, Update, Permutation) by callers with their own
// priority structure.
//
//	go get github.com/katalvlaran/mindeg
package mindeg
