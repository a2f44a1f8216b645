package qgraph_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mindeg/qgraph"
)

// trace records the external degrees reported by every Update.
type trace [][2]int

// orderGreedy drives q to completion: each round eliminates the principal
// variables of minimum external degree that are not pending (only the first
// one in single mode), then updates. Invariants are checked after every step.
func orderGreedy(t *testing.T, q *qgraph.QuotientGraph, single bool) ([]int, trace) {
	t.Helper()
	n := q.Order()
	var (
		res qgraph.UpdateResult
		tr  trace
	)
	for !q.Finished() {
		best := math.MaxInt
		for v := 0; v < n; v++ {
			if !principalVariable(q, v) {
				continue
			}
			d, err := q.ExternalDegree(v)
			require.NoError(t, err)
			best = min(best, d)
		}
		eliminated := 0
		for v := 0; v < n; v++ {
			if !principalVariable(q, v) {
				continue
			}
			if d, _ := q.ExternalDegree(v); d != best {
				continue
			}
			if err := q.EliminateSupernode(v); err != nil {
				require.ErrorIs(t, err, qgraph.ErrPendingUpdate)
				continue
			}
			require.NoError(t, q.CheckInvariants())
			eliminated++
			if single {
				break
			}
		}
		require.Positive(t, eliminated, "no vertex eliminable")
		require.NoError(t, q.Update(&res))
		require.NoError(t, q.CheckInvariants())
		for _, v := range res.Updated {
			d, err := q.ExternalDegree(v)
			require.NoError(t, err)
			exact, err := q.Degree(v)
			require.NoError(t, err)
			require.Equal(t, exact, d, "vertex %d", v)
			tr = append(tr, [2]int{v, d})
		}
	}
	perm, err := q.Permutation()
	require.NoError(t, err)

	return perm, tr
}

// principalVariable reports whether v is principal and not yet eliminated.
func principalVariable(q *qgraph.QuotientGraph, v int) bool {
	l, err := q.Status(v)
	if err != nil || l.Kind != qgraph.Principal {
		return false
	}
	_, err = q.ExternalDegree(v)

	return err == nil
}

// requirePermutation asserts perm is a bijection on [0,len(perm)).
func requirePermutation(t *testing.T, perm []int) {
	t.Helper()
	seen := make([]bool, len(perm))
	for i, p := range perm {
		require.True(t, p >= 0 && p < len(perm), "perm[%d]=%d", i, p)
		require.False(t, seen[p], "position %d used twice", p)
		seen[p] = true
	}
}
