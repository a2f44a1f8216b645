// SPDX-License-Identifier: MIT

package qgraph

import "errors"

// Precondition violations. Every operation that returns one of these leaves
// the quotient graph exactly as it was before the call.
var (
	// ErrVertexOutOfRange indicates a vertex id outside [0,n).
	ErrVertexOutOfRange = errors.New("qgraph: vertex out of range")

	// ErrNotPrincipal indicates the vertex was merged into, or is outmatched
	// by, another vertex.
	ErrNotPrincipal = errors.New("qgraph: vertex is not principal")

	// ErrAlreadyEliminated indicates the vertex is an element already.
	ErrAlreadyEliminated = errors.New("qgraph: vertex already eliminated")

	// ErrPendingUpdate indicates the vertex is adjacent to an element formed
	// since the last Update; call Update before retrying.
	ErrPendingUpdate = errors.New("qgraph: vertex pending update")

	// ErrSingleElimination indicates a second elimination without an
	// intervening Update while single-elimination mode is on.
	ErrSingleElimination = errors.New("qgraph: single-elimination mode requires Update between eliminations")

	// ErrNothingPending indicates Update was called with no elimination since
	// the previous Update.
	ErrNothingPending = errors.New("qgraph: no elimination pending")

	// ErrNotVariable indicates a degree query on a vertex that is not a live
	// variable.
	ErrNotVariable = errors.New("qgraph: vertex is not a live variable")

	// ErrNotFinished indicates the permutation was requested before every
	// vertex was eliminated.
	ErrNotFinished = errors.New("qgraph: elimination not finished")
)

// Construction and consistency failures.
var (
	// ErrNilGraph indicates a nil input graph.
	ErrNilGraph = errors.New("qgraph: graph is nil")

	// ErrOutOfMemory indicates that no over-provisioning tier, down to the
	// exact requirement, could be allocated.
	ErrOutOfMemory = errors.New("qgraph: cannot allocate adjacency store")

	// ErrCorrupt indicates a violated internal invariant. It is a defect in
	// the engine or in caller discipline, never a user error.
	ErrCorrupt = errors.New("qgraph: internal consistency violation")
)
