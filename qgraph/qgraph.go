// SPDX-License-Identifier: MIT

package qgraph

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/mindeg/bucket"
	"github.com/katalvlaran/mindeg/csr"
)

// none terminates the outmatched lists.
const none = -1

// QuotientGraph is the elimination state of one symmetric graph.
//
// Every principal vertex owns a run [head[v], head[v]+len) inside store.
// A variable's run holds nEnodes[v] element ids followed by nSnodes[v]
// variable ids. An element stores -(step) in nEnodes[v] and its run length in
// nSnodes[v]. Absorbed vertices own no run.
//
// QuotientGraph is not safe for concurrent use.
type QuotientGraph struct {
	n    int
	opts options
	log  *zap.Logger

	store     []int
	freeSpace int

	head      []int
	nEnodes   []int
	nSnodes   []int
	link      []Link
	weight    []int
	externDeg []int
	setDiff   []int

	// next/prev: circular chain of the vertices merged into a supernode.
	next, prev []int

	// omHead/omNext: singly linked list of the variables outmatched by a vertex.
	omHead, omNext []int

	// updateNext: pending worklist; -1 means not pending, n terminates.
	updateNext []int
	updateHead int

	// lastEliminated: elements formed since the previous Update.
	lastEliminated []int

	step             int // last step number handed out
	baseStep         int // step at the end of the previous Update
	eliminatedWeight int
	totalWeight      int
	finished         bool

	visit stamp
	aux   stamp
	emark stamp

	sorter  *bucket.Sorter
	scratch []int
	work    []int
	dirty   []int // elements whose runs need pruning at the end of Update
	fresh   []bool

	// pair matching buffers
	group   []int
	offs    []int
	sums    []int
	buckets []int

	stats Stats
}

// New builds the quotient graph of g.
//
// The store is sized to f·(Arcs+n) for each elbow factor f in turn; a tier
// whose allocation panics or exceeds the space limit falls through to the
// next one. Self loops and duplicate neighbours never enter the store.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ErrOutOfMemory if every tier fails.
//
// Complexity: Time O(n + nnz), Space O(f·(nnz + n)).
func New(g *csr.Graph, opts ...Option) (*QuotientGraph, error) {
	if g == nil {
		return nil, fmt.Errorf("New: %w", ErrNilGraph)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.Order()
	required := g.Arcs() + n
	store, err := allocate(required, o.factors, o.spaceLimit)
	if err != nil {
		return nil, fmt.Errorf("New: requirement %d slots: %w", required, err)
	}

	q := &QuotientGraph{
		n:          n,
		opts:       o,
		log:        o.logger,
		store:      store,
		head:       make([]int, n),
		nEnodes:    make([]int, n),
		nSnodes:    make([]int, n),
		link:       make([]Link, n),
		weight:     make([]int, n),
		externDeg:  make([]int, n),
		setDiff:    make([]int, n),
		next:       make([]int, n),
		prev:       make([]int, n),
		omHead:     make([]int, n),
		omNext:     make([]int, n),
		updateNext: make([]int, n),
		updateHead: n,
		visit:      newStamp(n),
		aux:        newStamp(n),
		emark:      newStamp(n),
		fresh:      make([]bool, n),
	}
	q.visit.max, q.aux.max, q.emark.max = o.maxStamp, o.maxStamp, o.maxStamp
	if n > 0 {
		q.sorter = bucket.New(n, n)
	}

	pos := 0
	for v := 0; v < n; v++ {
		q.head[v] = pos
		for _, u := range g.Neighbors(v) {
			if u == v {
				continue
			}
			store[pos] = u
			pos++
		}
		q.nSnodes[v] = pos - q.head[v]
		q.link[v] = Link{Kind: Principal, To: v}
		q.weight[v] = g.Weight(v)
		q.totalWeight += q.weight[v]
		q.next[v], q.prev[v] = v, v
		q.omHead[v], q.omNext[v] = none, none
		q.updateNext[v] = -1
	}
	q.freeSpace = pos
	for v := 0; v < n; v++ {
		d := 0
		for _, u := range q.snodes(v) {
			d += q.weight[u]
		}
		q.externDeg[v] = d
	}
	if n == 0 {
		q.finished = true
	}
	q.stats.MaxSpace = len(store)

	return q, nil
}

// allocate tries each elbow factor and returns the first store obtained.
func allocate(required int, factors []float64, limit int) ([]int, error) {
	for _, f := range factors {
		size := int(math.Ceil(f * float64(required)))
		if size < required {
			size = required
		}
		if limit > 0 && size > limit {
			continue
		}
		if buf, ok := tryMake(size); ok {
			return buf, nil
		}
	}

	return nil, ErrOutOfMemory
}

func tryMake(size int) (buf []int, ok bool) {
	defer func() {
		if recover() != nil {
			buf, ok = nil, false
		}
	}()

	return make([]int, size), true
}

// Order returns the number of vertices.
func (q *QuotientGraph) Order() int { return q.n }

// Eliminated returns the number of vertices numbered so far.
func (q *QuotientGraph) Eliminated() int { return q.stats.Eliminated }

// Finished reports whether every vertex has been eliminated and the final
// Update has produced the permutation.
func (q *QuotientGraph) Finished() bool { return q.finished }

// Status returns the link of v.
func (q *QuotientGraph) Status(v int) (Link, error) {
	if v < 0 || v >= q.n {
		return Link{}, fmt.Errorf("Status(%d): %w", v, ErrVertexOutOfRange)
	}

	return q.link[v], nil
}

// Weight returns the weight of v: the merged weight of a supernode, the clique
// weight of an element, or the last weight held by an absorbed vertex.
func (q *QuotientGraph) Weight(v int) (int, error) {
	if v < 0 || v >= q.n {
		return 0, fmt.Errorf("Weight(%d): %w", v, ErrVertexOutOfRange)
	}

	return q.weight[v], nil
}

// IsElement reports whether v is a principal element.
func (q *QuotientGraph) IsElement(v int) bool {
	return v >= 0 && v < q.n && !q.finished && q.link[v].Kind == Principal && q.nEnodes[v] < 0
}

// Pending reports whether v is linked into the worklist of the next Update.
func (q *QuotientGraph) Pending(v int) bool {
	return v >= 0 && v < q.n && q.updateNext[v] >= 0
}

// ExternalDegree returns the degree of v as of the last Update (or
// construction). It is exact for every principal variable not pending.
func (q *QuotientGraph) ExternalDegree(v int) (int, error) {
	if err := q.checkVariable(v); err != nil {
		return 0, fmt.Errorf("ExternalDegree(%d): %w", v, err)
	}

	return q.externDeg[v], nil
}

// Members returns the vertices merged into supernode v, v first, in merge
// order.
func (q *QuotientGraph) Members(v int) ([]int, error) {
	if v < 0 || v >= q.n {
		return nil, fmt.Errorf("Members(%d): %w", v, ErrVertexOutOfRange)
	}
	if q.link[v].Kind == Absorbed {
		return nil, fmt.Errorf("Members(%d): %w", v, ErrNotPrincipal)
	}
	out := []int{v}
	for u := q.next[v]; u != v; u = q.next[u] {
		out = append(out, u)
	}

	return out, nil
}

// Outmatched returns the variables currently outmatched by v, most recent
// first.
func (q *QuotientGraph) Outmatched(v int) ([]int, error) {
	if v < 0 || v >= q.n {
		return nil, fmt.Errorf("Outmatched(%d): %w", v, ErrVertexOutOfRange)
	}
	var out []int
	for y := q.omHead[v]; y != none; y = q.omNext[y] {
		out = append(out, y)
	}

	return out, nil
}

// Stats returns a snapshot of the diagnostic counters.
func (q *QuotientGraph) Stats() Stats {
	s := q.stats
	s.FreeSpace = q.freeSpace
	s.StampResets = q.visit.resets + q.aux.resets + q.emark.resets

	return s
}

// checkVariable validates that v is a live variable.
func (q *QuotientGraph) checkVariable(v int) error {
	if v < 0 || v >= q.n {
		return ErrVertexOutOfRange
	}
	if q.finished || !q.isVariable(v) {
		return ErrNotVariable
	}

	return nil
}

// isVariable reports whether v is a live, not yet eliminated vertex.
func (q *QuotientGraph) isVariable(v int) bool {
	switch q.link[v].Kind {
	case Principal:
		return q.nEnodes[v] >= 0
	case Outmatched:
		return true
	default:
		return false
	}
}

// isElement reports whether a principal vertex is an element.
func (q *QuotientGraph) isElement(v int) bool {
	return q.link[v].Kind == Principal && q.nEnodes[v] < 0
}

// runLen returns the run length of a vertex that owns a run.
func (q *QuotientGraph) runLen(v int) int {
	if q.nEnodes[v] < 0 {
		return q.nSnodes[v]
	}

	return q.nEnodes[v] + q.nSnodes[v]
}

// run returns the run of v. It aliases the store and is invalidated by any
// defragmentation.
func (q *QuotientGraph) run(v int) []int {
	h := q.head[v]

	return q.store[h : h+q.runLen(v)]
}

// enodes returns the element prefix of variable v.
func (q *QuotientGraph) enodes(v int) []int {
	h := q.head[v]

	return q.store[h : h+q.nEnodes[v]]
}

// snodes returns the variable suffix of variable v.
func (q *QuotientGraph) snodes(v int) []int {
	h := q.head[v] + q.nEnodes[v]

	return q.store[h : h+q.nSnodes[v]]
}

// find follows Absorbed links to the surviving vertex and compresses the path.
func (q *QuotientGraph) find(v int) int {
	r := v
	for q.link[r].Kind == Absorbed {
		r = q.link[r].To
	}
	for q.link[v].Kind == Absorbed && q.link[v].To != r {
		nx := q.link[v].To
		q.link[v].To = r
		v = nx
	}

	return r
}
