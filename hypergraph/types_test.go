package hypergraph_test

import (
	"testing"

	"github.com/katalvlaran/hyperwalk/hypergraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_CopiesInput(t *testing.T) {
	members := []hypergraph.NodeID{1, 2}
	edges := []hypergraph.HyperEdge{{ID: 5, Nodes: members, Omega: 1}}
	h, err := hypergraph.New([]hypergraph.Node{{ID: 1}, {ID: 2}}, edges, nil)
	require.NoError(t, err)

	members[0] = 99
	e, ok := h.EdgeByID(5)
	require.True(t, ok)
	assert.Equal(t, []hypergraph.NodeID{1, 2}, e.Nodes)

	_, ok = h.EdgeByID(6)
	assert.False(t, ok)
}

func TestMaxNodeID(t *testing.T) {
	h, err := hypergraph.New([]hypergraph.Node{{ID: 4}, {ID: 9}, {ID: 2}}, nil, nil)
	require.NoError(t, err)
	id, ok := h.MaxNodeID()
	assert.True(t, ok)
	assert.Equal(t, hypergraph.NodeID(9), id)

	empty, err := hypergraph.New(nil, nil, nil)
	require.NoError(t, err)
	_, ok = empty.MaxNodeID()
	assert.False(t, ok)
}

func TestDropDangling(t *testing.T) {
	h, err := hypergraph.New(
		[]hypergraph.Node{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}, {ID: 3, Name: "lonely"}},
		[]hypergraph.HyperEdge{{ID: 0, Nodes: []hypergraph.NodeID{1, 2}, Omega: 1}},
		[]hypergraph.Gamma{{Edge: 0, Node: 2, Value: 2}, {Edge: 0, Node: 3, Value: 4}},
	)
	require.NoError(t, err)

	out := h.DropDangling()
	assert.Equal(t, []hypergraph.Node{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}, out.Nodes)
	assert.Equal(t, []hypergraph.Gamma{{Edge: 0, Node: 2, Value: 2}}, out.Weights)
	assert.Len(t, h.Nodes, 3, "receiver untouched")
}
