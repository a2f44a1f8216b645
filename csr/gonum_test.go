package csr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/mindeg/csr"
)

func TestFromGonum_Relabels(t *testing.T) {
	gg := simple.NewUndirectedGraph()
	// sparse, non-contiguous IDs: 10 - 20 - 30, plus isolated 5
	gg.AddNode(simple.Node(5))
	gg.SetEdge(simple.Edge{F: simple.Node(10), T: simple.Node(20)})
	gg.SetEdge(simple.Edge{F: simple.Node(20), T: simple.Node(30)})

	g, ids, err := csr.FromGonum(gg)
	require.NoError(t, err)
	require.Equal(t, []int64{5, 10, 20, 30}, ids)

	assert.Equal(t, 4, g.Order())
	assert.Empty(t, g.Neighbors(0))
	assert.Equal(t, []int{2}, g.Neighbors(1))
	assert.Equal(t, []int{1, 3}, g.Neighbors(2))
	assert.Equal(t, 4, g.Arcs())
}

func TestFromGonum_Nil(t *testing.T) {
	_, _, err := csr.FromGonum(nil)
	require.ErrorIs(t, err, csr.ErrNilGraph)
}
