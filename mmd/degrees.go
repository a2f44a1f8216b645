// SPDX-License-Identifier: MIT

package mmd

import (
	"container/heap"

	"github.com/katalvlaran/mindeg/bucket"
)

// degreeIndex buckets vertices by external degree without allocating one
// bucket per possible degree value.
//
// At most n distinct degrees are live at once, so every live degree owns one
// of n sorter buckets (a slot). The live degrees are kept in a min-heap with
// lazy deletion: a degree whose slot empties stays in the heap and is dropped
// when it surfaces.
//
// Memory is O(n) plus one heap entry per slot allocation, independent of the
// vertex weights.
type degreeIndex struct {
	s      *bucket.Sorter
	slotOf map[int]int // live degree -> slot
	degOf  []int       // slot -> degree
	free   []int       // unused slots
	keys   degreeHeap
}

func newDegreeIndex(n int) *degreeIndex {
	ix := &degreeIndex{
		s:      bucket.New(n, max(n, 1)),
		slotOf: make(map[int]int, n),
		degOf:  make([]int, max(n, 1)),
		free:   make([]int, 0, max(n, 1)),
	}
	for b := max(n, 1) - 1; b >= 0; b-- {
		ix.free = append(ix.free, b)
	}

	return ix
}

// insert stores v under degree d, moving it when already stored.
func (ix *degreeIndex) insert(v, d int) {
	ix.remove(v)
	b, ok := ix.slotOf[d]
	if !ok {
		b = ix.free[len(ix.free)-1]
		ix.free = ix.free[:len(ix.free)-1]
		ix.slotOf[d] = b
		ix.degOf[b] = d
		heap.Push(&ix.keys, d)
	}
	ix.s.Insert(b, v)
}

// remove unlinks v; a no-op when v is not stored. The forward link of v is
// kept, so a scan positioned on v continues with next.
func (ix *degreeIndex) remove(v int) {
	b := ix.s.Bucket(v)
	if b == bucket.None {
		return
	}
	ix.s.Remove(v)
	if ix.s.Empty(b) {
		delete(ix.slotOf, ix.degOf[b])
		ix.free = append(ix.free, b)
	}
}

// first returns the head vertex of degree d, or bucket.None.
func (ix *degreeIndex) first(d int) int {
	b, ok := ix.slotOf[d]
	if !ok {
		return bucket.None
	}

	return ix.s.First(b)
}

func (ix *degreeIndex) next(v int) int { return ix.s.Next(v) }

// minDegree returns the smallest live degree; ok is false when nothing is
// stored.
func (ix *degreeIndex) minDegree() (d int, ok bool) {
	for ix.keys.Len() > 0 {
		d = ix.keys[0]
		if _, live := ix.slotOf[d]; live {
			return d, true
		}
		heap.Pop(&ix.keys)
	}

	return 0, false
}

// upTo returns the live degrees <= hi in ascending order. The heap keeps
// every returned degree, so the caller may remove vertices before the next
// query.
func (ix *degreeIndex) upTo(hi int, out []int) []int {
	out = out[:0]
	for ix.keys.Len() > 0 && ix.keys[0] <= hi {
		d := heap.Pop(&ix.keys).(int)
		if _, live := ix.slotOf[d]; !live {
			continue
		}
		if len(out) > 0 && out[len(out)-1] == d {
			continue
		}
		out = append(out, d)
	}
	for _, d := range out {
		heap.Push(&ix.keys, d)
	}

	return out
}

// degreeHeap is a min-heap of degrees.
type degreeHeap []int

func (h degreeHeap) Len() int           { return len(h) }
func (h degreeHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h degreeHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *degreeHeap) Push(x any)        { *h = append(*h, x.(int)) }
func (h *degreeHeap) Pop() any {
	old := *h
	x := old[len(old)-1]
	*h = old[:len(old)-1]

	return x
}
