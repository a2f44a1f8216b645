// SPDX-License-Identifier: MIT

package qgraph

import "fmt"

// Update brings every pending variable back to a consistent state after one
// or more eliminations.
//
// Implementation:
//   - Stage 1 (single mode): elements whose variables all lie in the new
//     element are absorbed into it (set difference zero).
//   - Stage 2: each pending run is rewritten: absorbed ids resolved to their
//     survivor, new elements promoted into the element prefix, duplicates
//     and dead entries dropped.
//   - Stage 3: variables reachable through a new element are removed from
//     the variable suffix of the element's other variables.
//   - Stage 4: indistinguishable supernodes are merged. Single mode compares
//     fingerprints hashed into the bucket sorter; multiple mode compares the
//     variables adjacent to exactly two elements, merging equals and
//     outmatching strict supersets.
//   - Stage 5: external degrees of the surviving pending variables are
//     recomputed and reported in res.Updated.
//   - Stage 6: element runs touched by merges are pruned, the worklist is
//     reset and, once all n vertices are numbered, the permutation is formed.
//
// res may be nil when the caller does not need the lists.
//
// Errors:
//   - ErrNothingPending if no elimination happened since the last Update
//     (state unchanged).
//   - ErrCorrupt if the final permutation is not a bijection (a defect).
func (q *QuotientGraph) Update(res *UpdateResult) error {
	if q.finished || len(q.lastEliminated) == 0 {
		return fmt.Errorf("Update: %w", ErrNothingPending)
	}
	if res == nil {
		res = &UpdateResult{}
	}
	res.Updated = res.Updated[:0]
	res.Removed = res.Removed[:0]

	q.collectWork()
	if q.opts.single {
		q.absorbBySetDiff()
	}
	for _, x := range q.work {
		q.clean(x)
	}
	q.pruneReachable()

	q.emark.next()
	q.dirty = q.dirty[:0]
	for _, e := range q.lastEliminated {
		q.emark.mark(e)
		q.dirty = append(q.dirty, e)
	}
	if q.opts.single {
		q.compressByHash(res)
	} else {
		q.matchPairs(res)
	}
	q.refreshDegrees(res)
	q.pruneElements()
	q.resetWork()

	q.baseStep = q.step
	q.stats.Updates++
	if q.step >= q.n {
		if err := q.finish(); err != nil {
			return fmt.Errorf("Update: %w", err)
		}
	}

	return nil
}

// collectWork copies the pending worklist into q.work.
func (q *QuotientGraph) collectWork() {
	q.work = q.work[:0]
	for x := q.updateHead; x != q.n; x = q.updateNext[x] {
		q.work = append(q.work, x)
	}
}

// resetWork empties the worklist and the batch of new elements.
func (q *QuotientGraph) resetWork() {
	for _, x := range q.work {
		q.updateNext[x] = -1
		q.fresh[x] = false
	}
	q.updateHead = q.n
	q.work = q.work[:0]
	q.lastEliminated = q.lastEliminated[:0]
	q.retract()
}

// isNew reports whether element e was formed since the previous Update.
func (q *QuotientGraph) isNew(e int) bool { return -q.nEnodes[e] > q.baseStep }

// absorbBySetDiff computes, for every older element next to the pending
// variables, the weight of its variables outside the newest element and
// absorbs the elements where that weight is zero.
func (q *QuotientGraph) absorbBySetDiff() {
	e := q.lastEliminated[len(q.lastEliminated)-1]
	q.emark.next()
	touched := q.dirty[:0]
	for _, x := range q.work {
		q.visit.next()
		for _, f := range q.enodes(x) {
			r := q.find(f)
			if r == e || !q.isElement(r) || !q.visit.visit(r) {
				continue
			}
			if q.emark.visit(r) {
				q.setDiff[r] = q.weight[r]
				touched = append(touched, r)
			}
			q.setDiff[r] -= q.weight[x]
		}
	}
	for _, f := range touched {
		if q.setDiff[f] == 0 {
			q.release(q.head[f], q.nSnodes[f])
			q.link[f] = Link{Kind: Absorbed, To: e}
			q.stats.Outmatches++
		}
		q.setDiff[f] = 0
	}
	q.dirty = touched[:0]
}

// clean rewrites the run of pending variable x in place.
func (q *QuotientGraph) clean(x int) {
	h, ne := q.head[x], q.nEnodes[x]
	length := ne + q.nSnodes[x]
	q.scratch = append(q.scratch[:0], q.store[h:h+length]...)

	q.visit.next()
	q.visit.mark(x)
	w := h
	for _, u := range q.scratch {
		if r := q.find(u); q.isElement(r) && q.visit.visit(r) {
			q.store[w] = r
			w++
		}
	}
	nE := w - h
	for _, u := range q.scratch[ne:] {
		if r := q.find(u); q.isVariable(r) && q.visit.visit(r) {
			q.store[w] = r
			w++
		}
	}
	q.release(w, h+length-w)
	q.nEnodes[x] = nE
	q.nSnodes[x] = w - h - nE
}

// pruneReachable drops, from the variable suffix of every variable of a new
// element, the variables of that element.
func (q *QuotientGraph) pruneReachable() {
	for _, e := range q.lastEliminated {
		q.visit.next()
		for _, u := range q.run(e) {
			q.visit.mark(u)
		}
		for _, u := range q.run(e) {
			if q.isVariable(u) {
				q.dropMarkedSnodes(u)
			}
		}
	}
}

// dropMarkedSnodes removes every visit-marked id from the suffix of x.
func (q *QuotientGraph) dropMarkedSnodes(x int) {
	s := q.snodes(x)
	w := 0
	for _, u := range s {
		if !q.visit.marked(u) {
			s[w] = u
			w++
		}
	}
	q.release(q.head[x]+q.nEnodes[x]+w, len(s)-w)
	q.nSnodes[x] = w
}

// dropSnode removes y from the suffix of x, if present.
func (q *QuotientGraph) dropSnode(x, y int) {
	s := q.snodes(x)
	for i, u := range s {
		if u == y {
			last := len(s) - 1
			s[i] = s[last]
			q.release(q.head[x]+q.nEnodes[x]+last, 1)
			q.nSnodes[x] = last

			return
		}
	}
}

// pruneElements removes dead ids from the runs of new elements and of the
// elements adjacent to merged supernodes.
func (q *QuotientGraph) pruneElements() {
	for _, e := range q.dirty {
		if !q.isElement(e) {
			continue
		}
		r := q.run(e)
		w := 0
		for _, u := range r {
			if q.isVariable(u) {
				r[w] = u
				w++
			}
		}
		q.release(q.head[e]+w, len(r)-w)
		q.nSnodes[e] = w
	}
	q.dirty = q.dirty[:0]
}

// compress merges supernode y into the indistinguishable supernode x.
func (q *QuotientGraph) compress(x, y int, res *UpdateResult) {
	q.weight[x] += q.weight[y]

	for _, u := range q.snodes(y) {
		if q.isVariable(u) {
			q.dropSnode(u, y)
		}
	}
	for _, f := range q.enodes(y) {
		if q.emark.visit(f) {
			q.dirty = append(q.dirty, f)
		}
	}
	q.release(q.head[y], q.runLen(y))

	u := y
	for {
		q.link[u] = Link{Kind: Absorbed, To: x}
		u = q.next[u]
		if u == y {
			break
		}
	}
	tailX, tailY := q.prev[x], q.prev[y]
	q.next[tailX], q.prev[y] = y, tailX
	q.next[tailY], q.prev[x] = x, tailY

	for z := q.omHead[y]; z != none; {
		nz := q.omNext[z]
		q.link[z].To = x
		q.omNext[z] = q.omHead[x]
		q.omHead[x] = z
		z = nz
	}
	q.omHead[y] = none

	q.stats.Compressions++
	res.Removed = append(res.Removed, y)
}

// outmatch defers variable y until x is eliminated.
func (q *QuotientGraph) outmatch(y, x int, res *UpdateResult) {
	q.link[y] = Link{Kind: Outmatched, To: x}
	q.omNext[y] = q.omHead[x]
	q.omHead[x] = y
	q.stats.Outmatches++
	res.Removed = append(res.Removed, y)
}

// refreshDegrees recomputes the external degree of every principal pending
// variable whose degree was not settled while matching.
func (q *QuotientGraph) refreshDegrees(res *UpdateResult) {
	for _, x := range q.work {
		if q.link[x].Kind != Principal || !q.isVariable(x) {
			continue
		}
		if !q.fresh[x] {
			if q.nEnodes[x] == 1 && q.isNew(q.store[q.head[x]]) {
				q.externDeg[x] = q.degreeOneElement(x)
			} else {
				q.externDeg[x] = q.degree(x)
			}
		}
		res.Updated = append(res.Updated, x)
	}
}
