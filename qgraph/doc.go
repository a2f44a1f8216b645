// Package qgraph implements the quotient graph used by minimum-degree
// orderings of sparse symmetric matrices.
//
// What
//
//   - Eliminating a vertex v of a symmetric graph adds fill edges between
//     every pair of its neighbours. Instead of storing that clique, the
//     quotient graph turns v into an element whose run lists the clique's
//     variables, and merges every element next to v into it. Storage never
//     grows beyond the input adjacency plus one slot per vertex.
//   - Variables whose reachable sets coincide are merged into supernodes and
//     numbered together; a variable whose reachable set contains another's
//     is outmatched and deferred until that one is eliminated.
//   - External degrees (total weight of the distinct variables reachable
//     from a supernode) are maintained for the caller's priority structure.
//
// Protocol
//
//	q, _ := qgraph.New(g)
//	var res qgraph.UpdateResult
//	for !q.Finished() {
//	    // pick one or more non-pending principal variables
//	    _ = q.EliminateSupernode(v)
//	    _ = q.Update(&res) // res.Updated: new degrees, res.Removed: gone
//	}
//	perm, _ := q.Permutation() // perm[old] = new, 0-based
//
// Each elimination marks the variables of the new element pending; they
// cannot be eliminated until Update has refreshed them. In multiple
// elimination mode (the default) several mutually non-adjacent variables
// may be eliminated between updates. WithSingleElimination requires one
// Update per elimination and enables the set-difference element absorption
// and hash-based supernode detection that this mode allows.
//
// Vertex status
//
//	Principal   live variable, or element once eliminated
//	Absorbed    merged into Link.To (supernode member or swallowed element)
//	Outmatched  live variable deferred until Link.To is eliminated
//
// Storage
//
//	All runs live in one preallocated []int. New runs are assembled at the
//	tail and then moved into the largest freed hole they fit; when the tail
//	is exhausted the store is compacted in place. WithAggressiveRepack
//	controls whether freed slots are marked so holes can merge and the tail
//	can be retracted. Capacity is chosen once from the elbow factors
//	(DefaultElbowFactors) and never grows.
//
// Errors
//
//	Precondition violations (ErrVertexOutOfRange, ErrNotPrincipal,
//	ErrAlreadyEliminated, ErrPendingUpdate, ErrSingleElimination,
//	ErrNothingPending, ErrNotVariable, ErrNotFinished) leave the state
//	untouched. ErrOutOfMemory is returned by New only. ErrCorrupt reports a
//	broken internal invariant.
//
// A QuotientGraph is single-threaded; callers own the synchronization.
package qgraph
