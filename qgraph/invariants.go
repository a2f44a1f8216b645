// SPDX-License-Identifier: MIT

package qgraph

import (
	"fmt"
	"sort"
)

// CheckInvariants verifies the structural invariants of the quotient graph
// and returns the first violation found, wrapped in ErrCorrupt:
//   - run counts are non-negative, runs lie below freeSpace and never overlap;
//   - absorbed and outmatched links are acyclic and end at a live vertex;
//   - live variable weights plus eliminated weight equal the input weight;
//   - with no Update pending, runs reference only principal elements and
//     live variables.
//
// It is meant for tests and debugging. Complexity: O(n·log n + nnz).
func (q *QuotientGraph) CheckInvariants() error {
	if q.finished {
		return nil
	}
	if err := q.checkLinks(); err != nil {
		return fmt.Errorf("CheckInvariants: %w", err)
	}
	if err := q.checkRuns(); err != nil {
		return fmt.Errorf("CheckInvariants: %w", err)
	}

	live := 0
	for v := 0; v < q.n; v++ {
		if q.isVariable(v) {
			live += q.weight[v]
		}
	}
	if live+q.eliminatedWeight != q.totalWeight {
		return fmt.Errorf("CheckInvariants: live %d + eliminated %d != total %d: %w",
			live, q.eliminatedWeight, q.totalWeight, ErrCorrupt)
	}

	if len(q.lastEliminated) == 0 {
		if err := q.checkResolved(); err != nil {
			return fmt.Errorf("CheckInvariants: %w", err)
		}
	}

	return nil
}

func (q *QuotientGraph) checkLinks() error {
	for v := 0; v < q.n; v++ {
		l := q.link[v]
		switch l.Kind {
		case Principal:
			if l.To != v {
				return fmt.Errorf("principal %d links to %d: %w", v, l.To, ErrCorrupt)
			}
		case Absorbed, Outmatched:
			u, hops := v, 0
			for q.link[u].Kind == l.Kind {
				u = q.link[u].To
				if u < 0 || u >= q.n || hops > q.n {
					return fmt.Errorf("%s chain from %d broken at %d: %w", l.Kind, v, u, ErrCorrupt)
				}
				hops++
			}
			if l.Kind == Outmatched && !q.isVariable(u) {
				return fmt.Errorf("vertex %d outmatched by non-variable %d: %w", v, u, ErrCorrupt)
			}
		default:
			return fmt.Errorf("vertex %d has %s: %w", v, l.Kind, ErrCorrupt)
		}
	}

	return nil
}

type span struct{ start, end, v int }

func (q *QuotientGraph) checkRuns() error {
	spans := make([]span, 0, q.n)
	for v := 0; v < q.n; v++ {
		if !q.ownsRun(v) {
			continue
		}
		if q.nSnodes[v] < 0 || (q.nEnodes[v] >= 0 && q.nEnodes[v] > q.n) {
			return fmt.Errorf("vertex %d counts (%d,%d): %w", v, q.nEnodes[v], q.nSnodes[v], ErrCorrupt)
		}
		length := q.runLen(v)
		if length == 0 {
			continue
		}
		h := q.head[v]
		if h < 0 || h+length > q.freeSpace {
			return fmt.Errorf("run of %d [%d,%d) beyond free space %d: %w", v, h, h+length, q.freeSpace, ErrCorrupt)
		}
		for _, u := range q.store[h : h+length] {
			if u < 0 || u >= q.n {
				return fmt.Errorf("run of %d holds %d: %w", v, u, ErrCorrupt)
			}
		}
		spans = append(spans, span{start: h, end: h + length, v: v})
	}
	sort.Slice(spans, func(a, b int) bool { return spans[a].start < spans[b].start })
	for i := 1; i < len(spans); i++ {
		if spans[i].start < spans[i-1].end {
			return fmt.Errorf("runs of %d and %d overlap: %w", spans[i-1].v, spans[i].v, ErrCorrupt)
		}
	}

	return nil
}

func (q *QuotientGraph) checkResolved() error {
	for v := 0; v < q.n; v++ {
		switch {
		case q.isVariable(v):
			for _, e := range q.enodes(v) {
				if !q.isElement(e) {
					return fmt.Errorf("variable %d lists non-element %d (%s): %w", v, e, q.link[e].Kind, ErrCorrupt)
				}
			}
			for _, u := range q.snodes(v) {
				if !q.isVariable(u) || u == v {
					return fmt.Errorf("variable %d lists %d (%s): %w", v, u, q.link[u].Kind, ErrCorrupt)
				}
			}
		case q.isElement(v):
			for _, u := range q.run(v) {
				if !q.isVariable(u) {
					return fmt.Errorf("element %d lists %d (%s): %w", v, u, q.link[u].Kind, ErrCorrupt)
				}
			}
		}
	}

	return nil
}
