// SPDX-License-Identifier: MIT

package csr

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph"
)

// FromGonum converts a gonum undirected graph into a Graph.
//
// Nodes are relabeled densely in ascending gonum ID order; ids[i] is the
// gonum node ID of vertex i. Edge weights of weighted gonum graphs are
// ignored (orderings are structural); vertex weights are all 1.
//
// Errors:
//   - ErrNilGraph when g is nil.
//
// Complexity:
//   - Time O(n·log n + m·log d), Space O(n + m).
func FromGonum(g graph.Undirected) (*Graph, []int64, error) {
	if g == nil {
		return nil, nil, fmt.Errorf("FromGonum: %w", ErrNilGraph)
	}

	nodes := graph.NodesOf(g.Nodes())
	ids := make([]int64, len(nodes))
	for i, nd := range nodes {
		ids[i] = nd.ID()
	}
	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })

	index := make(map[int64]int, len(ids))
	for i, id := range ids {
		index[id] = i
	}

	rows := make([][]int, len(ids))
	for i, id := range ids {
		for _, nb := range graph.NodesOf(g.From(id)) {
			j, ok := index[nb.ID()]
			if !ok {
				return nil, nil, fmt.Errorf("FromGonum: node %d lists unknown node %d: %w", id, nb.ID(), ErrNeighborOutOfRange)
			}
			rows[i] = append(rows[i], j)
		}
	}

	out, err := fromRows(len(ids), rows, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("FromGonum: %w", err)
	}

	return out, ids, nil
}
