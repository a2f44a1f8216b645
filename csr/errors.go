// SPDX-License-Identifier: MIT

package csr

import "errors"

// Sentinel errors for CSR construction. Callers branch with errors.Is;
// constructors wrap them with the offending vertex or index.
var (
	// ErrNilGraph indicates that a nil source graph was passed to an adapter.
	ErrNilGraph = errors.New("csr: graph is nil")

	// ErrBadOrder indicates a negative vertex count.
	ErrBadOrder = errors.New("csr: vertex count must be >= 0")

	// ErrBadHead indicates a malformed offset array.
	ErrBadHead = errors.New("csr: malformed head offsets")

	// ErrNeighborOutOfRange indicates a neighbor id outside [0,n).
	ErrNeighborOutOfRange = errors.New("csr: neighbor out of range")

	// ErrAsymmetric indicates an arc i→j without its mirror j→i.
	ErrAsymmetric = errors.New("csr: adjacency is not symmetric")

	// ErrBadWeights indicates a weight slice of the wrong length or a weight < 1,
	// or weights whose sum overflows int.
	ErrBadWeights = errors.New("csr: invalid vertex weights")
)
