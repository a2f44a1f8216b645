package qgraph

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mindeg/builder"
	"github.com/katalvlaran/mindeg/csr"
)

func withMaxStamp(m int) Option { return func(o *options) { o.maxStamp = m } }

func mesh(t *testing.T, rows, cols int) *csr.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, builder.Grid(rows, cols))
	require.NoError(t, err)

	return g
}

// greedy orders q by repeated minimum external degree batches, calling hook
// after every Update.
func greedy(t *testing.T, q *QuotientGraph, hook func()) []int {
	t.Helper()
	for !q.Finished() {
		best := -1
		for v := 0; v < q.n; v++ {
			if q.link[v].Kind == Principal && q.isVariable(v) && (best < 0 || q.externDeg[v] < q.externDeg[best]) {
				best = v
			}
		}
		require.GreaterOrEqual(t, best, 0)
		d := q.externDeg[best]
		for v := best; v < q.n; v++ {
			if q.link[v].Kind != Principal || !q.isVariable(v) || q.externDeg[v] != d || q.Pending(v) {
				continue
			}
			require.NoError(t, q.EliminateSupernode(v))
			if q.opts.single {
				break
			}
		}
		require.NoError(t, q.Update(nil))
		require.NoError(t, q.CheckInvariants())
		if hook != nil && !q.Finished() {
			hook()
		}
	}
	perm, err := q.Permutation()
	require.NoError(t, err)

	return perm
}

func TestStamp_Wraparound(t *testing.T) {
	s := newStamp(4)
	s.max = 2
	require.False(t, s.marked(0))

	require.Equal(t, 1, s.next())
	s.mark(0)
	require.True(t, s.marked(0))
	require.Equal(t, 2, s.next())
	require.False(t, s.marked(0))
	s.mark(1)

	// Generation 3 would pass max: everything is cleared, numbering restarts.
	require.Equal(t, 1, s.next())
	require.Equal(t, 1, s.resets)
	require.False(t, s.marked(1))
	require.Equal(t, []int{0, 0, 0, 0}, s.gen)
	require.True(t, s.visit(3))
	require.False(t, s.visit(3))
}

func TestOrder_StampWraparoundIsTransparent(t *testing.T) {
	g := mesh(t, 7, 7)
	for _, single := range []bool{false, true} {
		var mode []Option
		if single {
			mode = append(mode, WithSingleElimination())
		}
		ref, err := New(g, mode...)
		require.NoError(t, err)
		want := greedy(t, ref, nil)
		require.Zero(t, ref.Stats().StampResets)

		q, err := New(g, append(mode, withMaxStamp(2))...)
		require.NoError(t, err)
		require.Equal(t, want, greedy(t, q, nil))
		require.Positive(t, q.Stats().StampResets)
	}
}

// With the tail taken up by dead slots, the first push of an assembly has to
// compact the store and carry on below the live runs.
func TestDefragment_DuringAssembly(t *testing.T) {
	g, err := builder.SmallMesh()
	require.NoError(t, err)

	for _, aggressive := range []bool{true, false} {
		ref, err := New(g, WithElbowFactors(1.0), WithAggressiveRepack(aggressive))
		require.NoError(t, err)
		require.NoError(t, ref.EliminateSupernode(4))
		require.NoError(t, ref.Update(nil))

		q, err := New(g, WithElbowFactors(1.0), WithAggressiveRepack(aggressive))
		require.NoError(t, err)
		require.Equal(t, 33, len(q.store))
		for i := q.freeSpace; i < len(q.store); i++ {
			q.store[i] = 0
		}
		q.freeSpace = len(q.store)

		require.NoError(t, q.EliminateSupernode(4))
		require.Equal(t, 1, q.Stats().Defrags)
		require.Equal(t, 28, q.freeSpace) // 24 live slots plus the new run of 4
		require.NoError(t, q.CheckInvariants())
		require.NoError(t, q.Update(nil))
		require.NoError(t, q.CheckInvariants())

		for v := 0; v < q.n; v++ {
			if v == 4 {
				continue
			}
			want, err := ref.Degree(v)
			require.NoError(t, err)
			got, err := q.Degree(v)
			require.NoError(t, err)
			require.Equal(t, want, got, "vertex %d", v)
		}
		require.Equal(t, greedy(t, ref, nil), greedy(t, q, nil))
	}
}

func TestDefragment_BetweenUpdatesIsTransparent(t *testing.T) {
	g := mesh(t, 9, 9)
	for _, single := range []bool{false, true} {
		var mode []Option
		if single {
			mode = append(mode, WithSingleElimination())
		}
		ref, err := New(g, mode...)
		require.NoError(t, err)
		want := greedy(t, ref, nil)

		q, err := New(g, mode...)
		require.NoError(t, err)
		got := greedy(t, q, func() {
			q.defragment()
			require.NoError(t, q.CheckInvariants())
		})
		require.Equal(t, want, got)
		require.Positive(t, q.Stats().Defrags)
	}
}

// snapshot deep-copies every mutable field of q.
func snapshot(q *QuotientGraph) QuotientGraph {
	c := *q
	c.store = slices.Clone(q.store)
	c.head = slices.Clone(q.head)
	c.nEnodes = slices.Clone(q.nEnodes)
	c.nSnodes = slices.Clone(q.nSnodes)
	c.link = slices.Clone(q.link)
	c.weight = slices.Clone(q.weight)
	c.externDeg = slices.Clone(q.externDeg)
	c.setDiff = slices.Clone(q.setDiff)
	c.next = slices.Clone(q.next)
	c.prev = slices.Clone(q.prev)
	c.omHead = slices.Clone(q.omHead)
	c.omNext = slices.Clone(q.omNext)
	c.updateNext = slices.Clone(q.updateNext)
	c.lastEliminated = slices.Clone(q.lastEliminated)
	c.visit.gen = slices.Clone(q.visit.gen)
	c.aux.gen = slices.Clone(q.aux.gen)
	c.emark.gen = slices.Clone(q.emark.gen)
	c.scratch = slices.Clone(q.scratch)
	c.work = slices.Clone(q.work)
	c.dirty = slices.Clone(q.dirty)
	c.fresh = slices.Clone(q.fresh)
	c.group = slices.Clone(q.group)
	c.offs = slices.Clone(q.offs)
	c.sums = slices.Clone(q.sums)
	c.buckets = slices.Clone(q.buckets)

	return c
}

func TestRejectedCallsLeaveStateUntouched(t *testing.T) {
	g, err := builder.SmallMesh()
	require.NoError(t, err)
	q, err := New(g, WithSingleElimination())
	require.NoError(t, err)

	before := snapshot(q)
	require.ErrorIs(t, q.Update(nil), ErrNothingPending)
	require.ErrorIs(t, q.EliminateSupernode(9), ErrVertexOutOfRange)
	require.Equal(t, before, *q)

	require.NoError(t, q.EliminateSupernode(0))
	before = snapshot(q)
	require.ErrorIs(t, q.EliminateSupernode(0), ErrAlreadyEliminated)
	require.ErrorIs(t, q.EliminateSupernode(1), ErrPendingUpdate)
	require.ErrorIs(t, q.EliminateSupernode(8), ErrSingleElimination)
	require.Equal(t, before, *q)

	require.NoError(t, q.Update(nil))
	before = snapshot(q)
	require.ErrorIs(t, q.Update(nil), ErrNothingPending)
	require.Equal(t, before, *q)
}

func TestFirstCollision(t *testing.T) {
	_, ok := firstCollision([]int{2, 0, 1})
	require.True(t, ok)
	i, ok := firstCollision([]int{1, 0, 1})
	require.False(t, ok)
	require.Equal(t, 2, i)
	i, ok = firstCollision([]int{0, 3, 1})
	require.False(t, ok)
	require.Equal(t, 1, i)
}
