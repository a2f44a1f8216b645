// SPDX-License-Identifier: MIT

package mmd

import "errors"

var (
	// ErrNilGraph indicates a nil input graph.
	ErrNilGraph = errors.New("mmd: graph is nil")

	// ErrStalled indicates a batch in which no vertex could be eliminated.
	// The engine guarantees progress, so this is a defect guard.
	ErrStalled = errors.New("mmd: no eliminable vertex")

	// ErrInvalidPermutation indicates a Result whose Perm and InvPerm are not
	// mutually inverse bijections.
	ErrInvalidPermutation = errors.New("mmd: invalid permutation")
)
