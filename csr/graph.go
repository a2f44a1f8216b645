// SPDX-License-Identifier: MIT

package csr

import (
	"fmt"
	"math"
	"sort"
)

// Graph is an immutable, symmetric CSR adjacency structure over vertices [0,n).
//
// Rows are sorted ascending and free of duplicates. The zero value is the
// empty graph (n == 0).
type Graph struct {
	n       int   // number of vertices
	head    []int // len n+1; row offsets into adj
	adj     []int // concatenated rows
	weights []int // len 0 (unweighted) or n
}

// New validates raw CSR arrays and returns a canonical copy.
//
// Implementation:
//   - Stage 1: validate n, head length/origin/monotonicity and head[n] == len(adj).
//   - Stage 2: copy every row, sort it and drop duplicate neighbors.
//   - Stage 3: verify neighbors are in range and every arc has its mirror.
//   - Stage 4: validate weights (len 0 or n, each >= 1) and copy them.
//
// Inputs are never retained; the caller may reuse them.
//
// Errors:
//   - ErrBadOrder, ErrBadHead, ErrNeighborOutOfRange, ErrAsymmetric, ErrBadWeights
//     (wrapped with the offending vertex).
//
// Complexity:
//   - Time O(n + nnz·log d), Space O(n + nnz).
func New(n int, head, adj []int, weights []int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("New: n=%d: %w", n, ErrBadOrder)
	}
	if len(head) != n+1 || head[0] != 0 {
		return nil, fmt.Errorf("New: len(head)=%d, want %d with head[0]==0: %w", len(head), n+1, ErrBadHead)
	}
	for i := 0; i < n; i++ {
		if head[i+1] < head[i] {
			return nil, fmt.Errorf("New: head[%d]=%d > head[%d]=%d: %w", i, head[i], i+1, head[i+1], ErrBadHead)
		}
	}
	if head[n] != len(adj) {
		return nil, fmt.Errorf("New: head[n]=%d but len(adj)=%d: %w", head[n], len(adj), ErrBadHead)
	}

	rows := make([][]int, n)
	for i := 0; i < n; i++ {
		row := append([]int(nil), adj[head[i]:head[i+1]]...)
		for _, j := range row {
			if j < 0 || j >= n {
				return nil, fmt.Errorf("New: vertex %d lists neighbor %d: %w", i, j, ErrNeighborOutOfRange)
			}
		}
		rows[i] = row
	}

	g, err := fromRows(n, rows, weights)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	return g, nil
}

// FromEdges builds a symmetric Graph from an undirected edge list.
// Duplicate edges collapse; {i,i} becomes a single diagonal entry.
//
// Complexity: Time O(n + m·log d), Space O(n + m).
func FromEdges(n int, edges [][2]int, weights []int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("FromEdges: n=%d: %w", n, ErrBadOrder)
	}
	rows := make([][]int, n)
	for k, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, fmt.Errorf("FromEdges: edge %d (%d,%d): %w", k, u, v, ErrNeighborOutOfRange)
		}
		rows[u] = append(rows[u], v)
		if u != v {
			rows[v] = append(rows[v], u)
		}
	}

	g, err := fromRows(n, rows, weights)
	if err != nil {
		return nil, fmt.Errorf("FromEdges: %w", err)
	}

	return g, nil
}

// fromRows canonicalizes rows in place (sort + dedupe), checks symmetry and
// packs the result into a Graph. rows[i] entries must already be in range.
func fromRows(n int, rows [][]int, weights []int) (*Graph, error) {
	if len(weights) != 0 && len(weights) != n {
		return nil, fmt.Errorf("len(weights)=%d, want 0 or %d: %w", len(weights), n, ErrBadWeights)
	}
	total := 0
	for i, w := range weights {
		if w < 1 {
			return nil, fmt.Errorf("weight[%d]=%d: %w", i, w, ErrBadWeights)
		}
		if w > math.MaxInt-total {
			return nil, fmt.Errorf("weight[%d]=%d: total weight overflows int: %w", i, w, ErrBadWeights)
		}
		total += w
	}

	head := make([]int, n+1)
	for i, row := range rows {
		sort.Ints(row)
		rows[i] = dedupeSorted(row)
		head[i+1] = head[i] + len(rows[i])
	}

	// Mirror check on sorted rows: binary search keeps it O(nnz·log d).
	for i, row := range rows {
		for _, j := range row {
			if j == i {
				continue
			}
			k := sort.SearchInts(rows[j], i)
			if k == len(rows[j]) || rows[j][k] != i {
				return nil, fmt.Errorf("arc %d→%d has no mirror: %w", i, j, ErrAsymmetric)
			}
		}
	}

	adj := make([]int, 0, head[n])
	for _, row := range rows {
		adj = append(adj, row...)
	}

	g := &Graph{n: n, head: head, adj: adj}
	if len(weights) == n && n > 0 {
		g.weights = append([]int(nil), weights...)
	}

	return g, nil
}

// dedupeSorted removes consecutive duplicates from a sorted slice in place.
func dedupeSorted(s []int) []int {
	if len(s) < 2 {
		return s
	}
	w := 1
	for r := 1; r < len(s); r++ {
		if s[r] != s[w-1] {
			s[w] = s[r]
			w++
		}
	}

	return s[:w]
}

// Order returns the number of vertices n.
func (g *Graph) Order() int { return g.n }

// Arcs returns head[n]: every off-diagonal edge counted twice plus one entry
// per self loop.
func (g *Graph) Arcs() int {
	if g.n == 0 {
		return 0
	}

	return g.head[g.n]
}

// Weighted reports whether explicit vertex weights were supplied.
func (g *Graph) Weighted() bool { return len(g.weights) != 0 }

// Weight returns the weight of vertex v (1 for unweighted graphs).
// The caller guarantees 0 <= v < n.
func (g *Graph) Weight(v int) int {
	if len(g.weights) == 0 {
		return 1
	}

	return g.weights[v]
}

// Neighbors returns the sorted neighbor row of v, including v itself when it
// carries a self loop. The returned slice aliases internal storage and must
// not be modified.
func (g *Graph) Neighbors(v int) []int {
	return g.adj[g.head[v]:g.head[v+1]:g.head[v+1]]
}

// Degree returns the number of distinct neighbors of v, excluding a self loop.
func (g *Graph) Degree(v int) int {
	d := g.head[v+1] - g.head[v]
	if g.HasLoop(v) {
		d--
	}

	return d
}

// HasLoop reports whether v carries a self loop.
func (g *Graph) HasLoop(v int) bool {
	row := g.Neighbors(v)
	k := sort.SearchInts(row, v)

	return k < len(row) && row[k] == v
}

// HasEdge reports whether {u,v} is an edge. O(log d).
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return false
	}
	row := g.Neighbors(u)
	k := sort.SearchInts(row, v)

	return k < len(row) && row[k] == v
}

// Head returns a copy of the row offsets (length n+1).
func (g *Graph) Head() []int {
	if g.n == 0 {
		return []int{0}
	}

	return append([]int(nil), g.head...)
}

// Adj returns a copy of the concatenated rows.
func (g *Graph) Adj() []int { return append([]int(nil), g.adj...) }

// Weights returns a copy of the vertex weights, or nil when unweighted.
func (g *Graph) Weights() []int {
	if len(g.weights) == 0 {
		return nil
	}

	return append([]int(nil), g.weights...)
}

// TotalWeight returns the sum of all vertex weights.
func (g *Graph) TotalWeight() int {
	if len(g.weights) == 0 {
		return g.n
	}
	s := 0
	for _, w := range g.weights {
		s += w
	}

	return s
}
