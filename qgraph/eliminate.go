// SPDX-License-Identifier: MIT

package qgraph

import "fmt"

// EliminateSupernode turns the principal variable v into an element.
//
// Every element adjacent to v is absorbed into the new element and its
// variables merged into the new run together with v's own variable
// neighbours, each counted once. The supernode chain of v is numbered,
// members first (walking back from the tail) and v last. Every variable of
// the new element becomes pending until the next Update.
//
// Errors (state unchanged):
//   - ErrVertexOutOfRange, ErrNotPrincipal, ErrAlreadyEliminated,
//     ErrPendingUpdate, ErrSingleElimination.
//   - ErrCorrupt if the store cannot hold the new run (a defect).
//
// Complexity: Time O(Σ|adj(e)| + |adj(v)|) plus an occasional O(nnz)
// defragmentation.
func (q *QuotientGraph) EliminateSupernode(v int) error {
	if err := q.checkEliminable(v); err != nil {
		return fmt.Errorf("EliminateSupernode(%d): %w", v, err)
	}

	ne, ns := q.nEnodes[v], q.nSnodes[v]
	restored := q.restoreOutmatched(v)
	step := q.numberChain(v)

	var err error
	if ne == 1 && ns == 0 && q.isElement(q.find(q.store[q.head[v]])) {
		q.absorbSingle(v, step)
	} else {
		err = q.assemble(v, ne, ns, step)
	}
	if err != nil {
		return fmt.Errorf("EliminateSupernode(%d): %w", v, err)
	}

	for _, u := range q.run(v) {
		q.markPending(u)
	}
	for y := restored; y != none; y = q.omNext[y] {
		q.markPending(y)
	}
	q.unlinkRestored(restored)
	q.lastEliminated = append(q.lastEliminated, v)
	q.stats.Eliminations++

	return nil
}

func (q *QuotientGraph) checkEliminable(v int) error {
	switch {
	case v < 0 || v >= q.n:
		return ErrVertexOutOfRange
	case q.finished:
		return ErrAlreadyEliminated
	case q.link[v].Kind != Principal:
		return ErrNotPrincipal
	case q.nEnodes[v] < 0:
		return ErrAlreadyEliminated
	case q.updateNext[v] >= 0:
		return ErrPendingUpdate
	case q.opts.single && len(q.lastEliminated) > 0:
		return ErrSingleElimination
	}

	return nil
}

// restoreOutmatched makes every variable outmatched by v principal again and
// returns the detached list.
func (q *QuotientGraph) restoreOutmatched(v int) int {
	first := q.omHead[v]
	for y := first; y != none; y = q.omNext[y] {
		q.link[y] = Link{Kind: Principal, To: y}
	}
	q.omHead[v] = none

	return first
}

func (q *QuotientGraph) unlinkRestored(first int) {
	for y := first; y != none; {
		nx := q.omNext[y]
		q.omNext[y] = none
		y = nx
	}
}

func (q *QuotientGraph) markPending(u int) {
	if q.updateNext[u] < 0 {
		q.updateNext[u] = q.updateHead
		q.updateHead = u
	}
}

// numberChain hands out step numbers along the supernode chain of v: from
// the tail prev[v] back to the first member, then v. Members are detached.
// The step of v is returned; it is recorded once v's run has been read.
func (q *QuotientGraph) numberChain(v int) int {
	for u := q.prev[v]; u != v; {
		pu := q.prev[u]
		q.step++
		q.nEnodes[u] = -q.step
		q.next[u], q.prev[u] = u, u
		u = pu
	}
	q.next[v], q.prev[v] = v, v
	q.step++

	q.eliminatedWeight += q.weight[v]
	q.stats.Eliminated = q.step

	return q.step
}

// liveVariable maps an adjacency entry to the live variable it stands for,
// or returns -1 when the entry no longer denotes one.
func (q *QuotientGraph) liveVariable(u int) int {
	r := q.find(u)
	if !q.isVariable(r) {
		return -1
	}

	return r
}

// assemble builds the new run of v at the tail of the store.
func (q *QuotientGraph) assemble(v, ne, ns, step int) error {
	q.visit.next()
	q.visit.mark(v)

	a := q.beginAssembly()
	best := hole{start: q.head[v], length: ne + ns}
	clique := 0

	for i := 0; i < ne; i++ {
		e := q.find(q.store[q.head[v]+i])
		if !q.isElement(e) || !q.visit.visit(e) {
			continue
		}
		for k := 0; k < q.nSnodes[e]; k++ {
			u := q.liveVariable(q.store[q.head[e]+k])
			if u < 0 || !q.visit.visit(u) {
				continue
			}
			if err := q.push(&a, u); err != nil {
				return err
			}
			clique += q.weight[u]
		}
		if !a.moved && q.nSnodes[e] > best.length {
			best = hole{start: q.head[e], length: q.nSnodes[e]}
		}
		q.absorbElement(e, v)
	}
	for i := 0; i < ns; i++ {
		u := q.liveVariable(q.store[q.head[v]+ne+i])
		if u < 0 || !q.visit.visit(u) {
			continue
		}
		if err := q.push(&a, u); err != nil {
			return err
		}
		clique += q.weight[u]
	}

	q.release(q.head[v], ne+ns)
	if a.moved {
		best = hole{}
	}
	q.head[v] = q.place(a, best)
	q.becomeElement(v, step, a.pos-a.start, clique)

	return nil
}

// absorbSingle is the fast path for a variable adjacent to exactly one
// element and no variables: the element's run is compacted in place and
// handed over to v.
func (q *QuotientGraph) absorbSingle(v, step int) {
	e := q.find(q.store[q.head[v]])
	q.visit.next()
	q.visit.mark(v)

	h := q.head[e]
	w, clique := h, 0
	for k := 0; k < q.nSnodes[e]; k++ {
		u := q.liveVariable(q.store[h+k])
		if u < 0 || !q.visit.visit(u) {
			continue
		}
		q.store[w] = u
		w++
		clique += q.weight[u]
	}
	q.release(w, h+q.nSnodes[e]-w)
	q.release(q.head[v], 1)

	q.link[e] = Link{Kind: Absorbed, To: v}
	q.stats.ElementAbsorptions++
	q.head[v] = h
	q.becomeElement(v, step, w-h, clique)
	q.retract()
}

// absorbElement merges element e into the element being formed at v.
func (q *QuotientGraph) absorbElement(e, v int) {
	q.release(q.head[e], q.nSnodes[e])
	q.link[e] = Link{Kind: Absorbed, To: v}
	q.stats.ElementAbsorptions++
}

// becomeElement records v as an element with a run of the given length.
func (q *QuotientGraph) becomeElement(v, step, length, clique int) {
	q.nEnodes[v] = -step
	q.nSnodes[v] = length
	q.weight[v] = clique
	q.externDeg[v] = clique
}
