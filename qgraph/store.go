// SPDX-License-Identifier: MIT

package qgraph

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// reclaimed marks a store slot freed under the aggressive repack policy.
const reclaimed = -1

// ownsRun reports whether v currently owns a run in the store.
func (q *QuotientGraph) ownsRun(v int) bool { return q.link[v].Kind != Absorbed }

// release frees the run [h, h+length). Under the aggressive policy the slots
// are marked reclaimed so placement can probe across them.
func (q *QuotientGraph) release(h, length int) {
	if !q.opts.aggressive || length <= 0 {
		return
	}
	for i := h; i < h+length; i++ {
		q.store[i] = reclaimed
	}
}

// retract moves freeSpace down over a trailing block of reclaimed slots.
func (q *QuotientGraph) retract() {
	if !q.opts.aggressive {
		return
	}
	for q.freeSpace > 0 && q.store[q.freeSpace-1] == reclaimed {
		q.freeSpace--
	}
}

type runRef struct{ head, v int }

// defragment compacts every run below freeSpace to the bottom of the store,
// preserving their relative order, and returns the new freeSpace.
//
// Complexity: Time O(n·log n + freeSpace), Space O(n).
func (q *QuotientGraph) defragment() int {
	before := q.freeSpace
	refs := make([]runRef, 0, q.n)
	for v := 0; v < q.n; v++ {
		if q.ownsRun(v) {
			refs = append(refs, runRef{head: q.head[v], v: v})
		}
	}
	sort.Slice(refs, func(a, b int) bool { return refs[a].head < refs[b].head })

	pos := 0
	for _, r := range refs {
		length := q.runLen(r.v)
		if length > 0 {
			copy(q.store[pos:pos+length], q.store[r.head:r.head+length])
		}
		q.head[r.v] = pos
		pos += length
	}
	q.release(pos, before-pos)
	q.freeSpace = pos
	q.stats.Defrags++
	q.log.Debug("qgraph: store defragmented",
		zap.Int("free_before", before),
		zap.Int("free_after", pos),
		zap.Int("max_space", len(q.store)))

	return pos
}

// assembly is a run being built at the tail of the store, above freeSpace.
type assembly struct {
	start, pos int
	moved      bool // a defragmentation happened while assembling
}

func (q *QuotientGraph) beginAssembly() assembly {
	q.retract()

	return assembly{start: q.freeSpace, pos: q.freeSpace}
}

// push appends u to the run under assembly, compacting the store first when
// the tail is exhausted.
func (q *QuotientGraph) push(a *assembly, u int) error {
	if a.pos == len(q.store) {
		length := a.pos - a.start
		free := q.defragment()
		copy(q.store[free:free+length], q.store[a.start:a.pos])
		a.start, a.pos, a.moved = free, free+length, true
		if a.pos == len(q.store) {
			return fmt.Errorf("store exhausted at %d slots: %w", len(q.store), ErrCorrupt)
		}
	}
	q.store[a.pos] = u
	a.pos++

	return nil
}

// hole is a free region of the store that a finished run may be moved into.
type hole struct{ start, length int }

// widen grows h over adjacent reclaimed slots below freeSpace.
func (q *QuotientGraph) widen(h hole) hole {
	if !q.opts.aggressive {
		return h
	}
	for h.start > 0 && q.store[h.start-1] == reclaimed {
		h.start--
		h.length++
	}
	for end := h.start + h.length; end < q.freeSpace && q.store[end] == reclaimed; end++ {
		h.length++
	}

	return h
}

// place settles the assembled run: into h when it fits, else at the tail.
// It returns the head of the settled run.
func (q *QuotientGraph) place(a assembly, h hole) int {
	length := a.pos - a.start
	if !a.moved && h.length > 0 {
		h = q.widen(h)
		if length <= h.length {
			copy(q.store[h.start:h.start+length], q.store[a.start:a.pos])
			q.release(h.start+length, h.length-length)
			q.retract()

			return h.start
		}
	}
	q.freeSpace = a.pos

	return a.start
}
