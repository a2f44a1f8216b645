// SPDX-License-Identifier: MIT

package qgraph

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// finish converts the step numbers held in nEnodes into a 0-based old-to-new
// permutation and checks that it is a bijection.
func (q *QuotientGraph) finish() error {
	if q.step > q.n {
		return fmt.Errorf("%d steps for %d vertices: %w", q.step, q.n, ErrCorrupt)
	}
	for i := 0; i < q.n; i++ {
		q.nEnodes[i] = -(q.nEnodes[i] + 1)
	}
	if v, ok := firstCollision(q.nEnodes); !ok {
		return fmt.Errorf("vertex %d maps to %d: %w", v, q.nEnodes[v], ErrCorrupt)
	}
	q.finished = true

	return nil
}

// firstCollision checks that perm is a permutation of [0,len(perm)). It
// returns the first offending index and false otherwise.
func firstCollision(perm []int) (int, bool) {
	n := len(perm)
	seen := bitset.New(uint(n))
	for i, p := range perm {
		if p < 0 || p >= n || seen.Test(uint(p)) {
			return i, false
		}
		seen.Set(uint(p))
	}

	return 0, true
}

// Permutation returns a copy of the old-to-new map: Permutation()[i] is the
// 0-based position of original vertex i in the elimination order.
//
// Errors:
//   - ErrNotFinished until every vertex has been eliminated and the final
//     Update has run.
func (q *QuotientGraph) Permutation() ([]int, error) {
	if !q.finished {
		return nil, fmt.Errorf("Permutation: %d of %d eliminated: %w", q.step, q.n, ErrNotFinished)
	}

	return append([]int(nil), q.nEnodes...), nil
}

// Step returns the 1-based elimination step of v, or 0 while v is not yet
// numbered.
func (q *QuotientGraph) Step(v int) (int, error) {
	if v < 0 || v >= q.n {
		return 0, fmt.Errorf("Step(%d): %w", v, ErrVertexOutOfRange)
	}
	if q.finished {
		return q.nEnodes[v] + 1, nil
	}
	if q.nEnodes[v] < 0 {
		return -q.nEnodes[v], nil
	}

	return 0, nil
}
