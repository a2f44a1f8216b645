// Package bucket provides a multi-bucket container of integer items keyed by
// small integer hash values, with O(1) insert, remove and per-bucket
// iteration.
//
// Items are ids in [0, nItems); buckets are ids in [0, nBuckets). Every item
// lives in at most one bucket. Each bucket is an intrusive doubly linked list
// threaded through three item-indexed slices (next, prev, bucket) plus one
// bucket-indexed slice of heads, so the container never allocates after New.
//
// The quotient-graph engine uses a Sorter to group supernodes whose adjacency
// fingerprints hash alike; the minimum-degree driver uses another one as its
// degree priority structure (bucket = external degree).
//
// Iteration contract:
//
//	for x := s.First(b); x != bucket.None; x = s.Next(x) { ... }
//
// Removing x inside the loop body is legal: a removed item keeps its forward
// link, so Next(x) still yields the item that followed it. Removing any other
// item of the same bucket unlinks it from the remaining sequence. Inserting
// during iteration is legal but the new item is placed at the bucket head and
// is not visited by the ongoing loop.
package bucket
