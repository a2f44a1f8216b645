// SPDX-License-Identifier: MIT

package mmd

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/mindeg/qgraph"
)

// Result is a finished ordering.
type Result struct {
	// Perm maps original vertices to positions: Perm[i] is the 0-based step
	// at which vertex i is eliminated.
	Perm []int

	// InvPerm is the elimination sequence: InvPerm[k] is the vertex
	// eliminated at step k.
	InvPerm []int

	// Stats are the engine counters at the end of the ordering.
	Stats qgraph.Stats

	// Batches is the number of updates performed.
	Batches int
}

// Validate checks that Perm is a bijection on [0,n) and InvPerm its inverse.
func (r *Result) Validate() error {
	n := len(r.Perm)
	if len(r.InvPerm) != n {
		return fmt.Errorf("Validate: len(Perm)=%d, len(InvPerm)=%d: %w", n, len(r.InvPerm), ErrInvalidPermutation)
	}
	seen := bitset.New(uint(n))
	for i, p := range r.Perm {
		if p < 0 || p >= n || seen.Test(uint(p)) {
			return fmt.Errorf("Validate: Perm[%d]=%d: %w", i, p, ErrInvalidPermutation)
		}
		seen.Set(uint(p))
		if r.InvPerm[p] != i {
			return fmt.Errorf("Validate: InvPerm[%d]=%d, want %d: %w", p, r.InvPerm[p], i, ErrInvalidPermutation)
		}
	}

	return nil
}
