package csr_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mindeg/csr"
)

// TestNew_Validation covers every sentinel returned by New.
func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		head    []int
		adj     []int
		weights []int
		want    error
	}{
		{"negative n", -1, nil, nil, nil, csr.ErrBadOrder},
		{"short head", 2, []int{0, 1}, []int{1}, nil, csr.ErrBadHead},
		{"head origin", 1, []int{1, 1}, nil, nil, csr.ErrBadHead},
		{"decreasing head", 2, []int{0, 2, 1}, []int{1}, nil, csr.ErrBadHead},
		{"head tail mismatch", 2, []int{0, 1, 2}, []int{1}, nil, csr.ErrBadHead},
		{"neighbor out of range", 2, []int{0, 1, 2}, []int{1, 2}, nil, csr.ErrNeighborOutOfRange},
		{"negative neighbor", 2, []int{0, 1, 2}, []int{-1, 0}, nil, csr.ErrNeighborOutOfRange},
		{"asymmetric", 3, []int{0, 1, 2, 2}, []int{1, 2}, nil, csr.ErrAsymmetric},
		{"weights length", 2, []int{0, 1, 2}, []int{1, 0}, []int{1}, csr.ErrBadWeights},
		{"zero weight", 2, []int{0, 1, 2}, []int{1, 0}, []int{1, 0}, csr.ErrBadWeights},
		{"total overflow", 2, []int{0, 1, 2}, []int{1, 0}, []int{math.MaxInt, 1}, csr.ErrBadWeights},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := csr.New(tc.n, tc.head, tc.adj, tc.weights)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

// TestNew_Canonical verifies rows are sorted, deduplicated and copied.
func TestNew_Canonical(t *testing.T) {
	head := []int{0, 3, 4, 5}
	adj := []int{2, 1, 2, 0, 0}
	g, err := csr.New(3, head, adj, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, g.Order())
	assert.Equal(t, []int{1, 2}, g.Neighbors(0))
	assert.Equal(t, []int{0}, g.Neighbors(1))
	assert.Equal(t, 4, g.Arcs())
	assert.False(t, g.Weighted())
	assert.Equal(t, 1, g.Weight(2))
	assert.Equal(t, 3, g.TotalWeight())

	// mutating the caller's arrays must not leak into the graph
	adj[0] = 99
	assert.Equal(t, []int{1, 2}, g.Neighbors(0))
}

// TestFromEdges_LoopsAndDuplicates checks that self loops are stored once and
// excluded from Degree, and duplicate edges collapse.
func TestFromEdges_LoopsAndDuplicates(t *testing.T) {
	g, err := csr.FromEdges(4, [][2]int{{0, 1}, {1, 0}, {1, 1}, {2, 3}}, []int{1, 2, 3, 4})
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1}, g.Neighbors(1))
	assert.True(t, g.HasLoop(1))
	assert.False(t, g.HasLoop(0))
	assert.Equal(t, 1, g.Degree(1))
	assert.True(t, g.HasEdge(3, 2))
	assert.False(t, g.HasEdge(0, 3))
	assert.False(t, g.HasEdge(0, 7))
	assert.Equal(t, 5, g.Arcs()) // 0-1 twice, 2-3 twice, loop once
	assert.True(t, g.Weighted())
	assert.Equal(t, 10, g.TotalWeight())
	assert.Equal(t, []int{1, 2, 3, 4}, g.Weights())
}

// TestFromEdges_OutOfRange rejects endpoints outside [0,n).
func TestFromEdges_OutOfRange(t *testing.T) {
	_, err := csr.FromEdges(2, [][2]int{{0, 2}}, nil)
	require.ErrorIs(t, err, csr.ErrNeighborOutOfRange)

	_, err = csr.FromEdges(-3, nil, nil)
	require.ErrorIs(t, err, csr.ErrBadOrder)
}

// TestEmptyGraph covers n == 0.
func TestEmptyGraph(t *testing.T) {
	g, err := csr.New(0, []int{0}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, g.Order())
	assert.Equal(t, 0, g.Arcs())
	assert.Equal(t, []int{0}, g.Head())
	assert.Empty(t, g.Adj())
	assert.Nil(t, g.Weights())
}
