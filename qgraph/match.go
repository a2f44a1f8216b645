// SPDX-License-Identifier: MIT

package qgraph

import "github.com/katalvlaran/mindeg/bucket"

// compressByHash merges pending supernodes with identical runs. Candidates
// are bucketed by the sum of their run; within a bucket each candidate is
// compared against the rest by run shape and then by set equality.
func (q *QuotientGraph) compressByHash(res *UpdateResult) {
	q.buckets = q.buckets[:0]
	for _, x := range q.work {
		if q.link[x].Kind != Principal || !q.isVariable(x) {
			continue
		}
		hash := 0
		for _, u := range q.run(x) {
			hash += u
		}
		q.sorter.Insert(hash, x)
		q.buckets = append(q.buckets, q.sorter.Bucket(x))
	}

	for _, b := range q.buckets {
		for !q.sorter.Empty(b) {
			x := q.sorter.First(b)
			q.sorter.Remove(x)
			q.visit.next()
			for _, u := range q.run(x) {
				q.visit.mark(u)
			}
			for y := q.sorter.First(b); y != bucket.None; {
				ny := q.sorter.Next(y)
				if q.sameRun(x, y) {
					q.sorter.Remove(y)
					q.compress(x, y, res)
				}
				y = ny
			}
		}
	}
}

// sameRun reports whether y's run equals the visit-marked run of x.
func (q *QuotientGraph) sameRun(x, y int) bool {
	if q.nEnodes[x] != q.nEnodes[y] || q.nSnodes[x] != q.nSnodes[y] {
		return false
	}
	for _, u := range q.run(y) {
		if !q.visit.marked(u) {
			return false
		}
	}

	return true
}

// elementPair returns the two elements of x in ascending order.
func (q *QuotientGraph) elementPair(x int) (int, int) {
	e := q.enodes(x)
	if e[0] > e[1] {
		return e[1], e[0]
	}

	return e[0], e[1]
}

// matchPairs groups the pending variables adjacent to exactly two elements
// by that pair and matches every group.
func (q *QuotientGraph) matchPairs(res *UpdateResult) {
	q.buckets = q.buckets[:0]
	for _, x := range q.work {
		if q.link[x].Kind != Principal || !q.isVariable(x) || q.nEnodes[x] != 2 {
			continue
		}
		e1, e2 := q.elementPair(x)
		q.sorter.Insert(e1+e2, x)
		q.buckets = append(q.buckets, q.sorter.Bucket(x))
	}

	for _, b := range q.buckets {
		for !q.sorter.Empty(b) {
			x := q.sorter.First(b)
			q.sorter.Remove(x)
			e1, e2 := q.elementPair(x)
			q.group = append(q.group[:0], x)
			for y := q.sorter.First(b); y != bucket.None; {
				ny := q.sorter.Next(y)
				if f1, f2 := q.elementPair(y); f1 == e1 && f2 == e2 {
					q.sorter.Remove(y)
					q.group = append(q.group, y)
				}
				y = ny
			}
			q.matchGroup(e1, e2, res)
		}
	}
}

// matchGroup handles variables sharing elements e1 and e2. With U the
// variables of e1 and e2, each member x is described by A(x), its direct
// variable neighbours outside U. Equal A merge; a strict subset outmatches
// the superset. Degrees of the survivors follow as w(U) - w(x) + w(A(x)).
func (q *QuotientGraph) matchGroup(e1, e2 int, res *UpdateResult) {
	q.visit.next()
	wU := 0
	for _, e := range [2]int{e1, e2} {
		for _, u := range q.run(e) {
			if r := q.liveVariable(u); r >= 0 && q.visit.visit(r) {
				wU += q.weight[r]
			}
		}
	}

	q.scratch = q.scratch[:0]
	q.offs = q.offs[:0]
	q.sums = q.sums[:0]
	for _, x := range q.group {
		q.offs = append(q.offs, len(q.scratch))
		q.aux.next()
		sum := 0
		for _, s := range q.snodes(x) {
			r := q.liveVariable(s)
			if r < 0 || r == x || q.visit.marked(r) || !q.aux.visit(r) {
				continue
			}
			q.scratch = append(q.scratch, r)
			sum += q.weight[r]
		}
		q.sums = append(q.sums, sum)
	}
	q.offs = append(q.offs, len(q.scratch))

	for i, x := range q.group {
		if q.link[x].Kind != Principal {
			continue
		}
		ax := q.scratch[q.offs[i]:q.offs[i+1]]
		for j := i + 1; j < len(q.group); j++ {
			y := q.group[j]
			if q.link[y].Kind != Principal {
				continue
			}
			ay := q.scratch[q.offs[j]:q.offs[j+1]]
			if len(ax) <= len(ay) && q.subset(ax, ay) {
				if len(ax) == len(ay) {
					q.compress(x, y, res)
				} else {
					q.outmatch(y, x, res)
				}
				continue
			}
			if len(ay) < len(ax) && q.subset(ay, ax) {
				q.outmatch(x, y, res)
				break
			}
		}
	}

	for i, x := range q.group {
		if q.link[x].Kind != Principal {
			continue
		}
		q.externDeg[x] = wU - q.weight[x] + q.sums[i]
		q.fresh[x] = true
	}
}

// subset reports whether every id of a occurs in b.
func (q *QuotientGraph) subset(a, b []int) bool {
	q.aux.next()
	for _, u := range b {
		q.aux.mark(u)
	}
	for _, u := range a {
		if !q.aux.marked(u) {
			return false
		}
	}

	return true
}
