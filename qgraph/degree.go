// SPDX-License-Identifier: MIT

package qgraph

import "fmt"

// Degree returns the exact external degree of the live variable v: the total
// weight of the distinct variables reachable from v through its elements or
// directly, v's own supernode excluded.
//
// Entries not yet cleaned by Update are resolved on the fly, so the value is
// exact between an elimination and the following Update as well.
//
// Errors:
//   - ErrVertexOutOfRange, ErrNotVariable.
//
// Complexity: O(Σ|adj(e)| + |adj(v)|).
func (q *QuotientGraph) Degree(v int) (int, error) {
	if err := q.checkVariable(v); err != nil {
		return 0, fmt.Errorf("Degree(%d): %w", v, err)
	}

	return q.degree(v), nil
}

func (q *QuotientGraph) degree(x int) int {
	q.visit.next()
	q.visit.mark(x)
	d := 0
	for _, u := range q.run(x) {
		r := q.find(u)
		switch {
		case q.isElement(r):
			if q.visit.visit(r) {
				d += q.elementWeight(r)
			}
		case q.isVariable(r):
			if q.visit.visit(r) {
				d += q.weight[r]
			}
		}
	}

	return d
}

// elementWeight adds up the variables of e not yet visited and marks them.
func (q *QuotientGraph) elementWeight(e int) int {
	d := 0
	for _, u := range q.run(e) {
		if r := q.liveVariable(u); r >= 0 && q.visit.visit(r) {
			d += q.weight[r]
		}
	}

	return d
}

// degreeOneElement is the degree of a variable whose only element is new:
// the element's weight minus its own plus its remaining direct neighbours.
func (q *QuotientGraph) degreeOneElement(x int) int {
	e := q.store[q.head[x]]
	d := q.weight[e] - q.weight[x]
	q.visit.next()
	q.visit.mark(x)
	for _, s := range q.snodes(x) {
		if r := q.liveVariable(s); r >= 0 && q.visit.visit(r) {
			d += q.weight[r]
		}
	}

	return d
}
