// SPDX-License-Identifier: MIT

package qgraph

import "math"

// stamp is a generation-stamped visited set over [0,n).
//
// next opens a fresh generation; a vertex is in the current set iff its
// recorded generation equals the current one. When the generation would pass
// max, next performs the full clear explicitly (reset) and restarts at 1.
type stamp struct {
	gen    []int
	cur    int
	max    int
	resets int
}

func newStamp(n int) stamp {
	return stamp{gen: make([]int, n), max: math.MaxInt}
}

// next opens a new generation and returns it.
func (s *stamp) next() int {
	if s.cur >= s.max {
		s.reset()
	}
	s.cur++

	return s.cur
}

// reset clears every recorded generation.
func (s *stamp) reset() {
	clear(s.gen)
	s.cur = 0
	s.resets++
}

func (s *stamp) mark(v int) { s.gen[v] = s.cur }

func (s *stamp) marked(v int) bool { return s.cur != 0 && s.gen[v] == s.cur }

// visit marks v and reports whether it was unmarked before.
func (s *stamp) visit(v int) bool {
	if s.marked(v) {
		return false
	}
	s.gen[v] = s.cur

	return true
}
