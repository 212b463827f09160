package representation_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/hyperwalk/hypergraph"
	"github.com/katalvlaran/hyperwalk/network"
	"github.com/katalvlaran/hyperwalk/preprocess"
	"github.com/katalvlaran/hyperwalk/representation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBipartite_TwoNodes(t *testing.T) {
	h, pre := load(t, twoNodes)
	n, sum, err := representation.Bipartite(h, pre)
	require.NoError(t, err)

	assert.True(t, n.Bipartite)
	assert.Equal(t, 3, n.BipartiteStart, "features start after the largest node id")
	assert.Equal(t, []network.Link{
		{Source: 1, Target: 3, Weight: 1},
		{Source: 3, Target: 1, Weight: 1},
		{Source: 2, Target: 3, Weight: 1},
		{Source: 3, Target: 2, Weight: 1},
	}, n.Links)
	assert.Equal(t, representation.Summary{Links: 4}, sum)

	var buf bytes.Buffer
	p, err := representation.New(representation.KindBipartite)
	require.NoError(t, err)
	_, err = p.Project(h, pre, representation.Lazy, &buf)
	require.NoError(t, err)
	assert.Equal(t, "*Vertices\n1 a\n2 b\n3 \"Hyperedge 0\"\n*Bipartite 3\n1 3 1\n3 1 1\n2 3 1\n3 2 1\n", buf.String())
}

func TestBipartite_FeatureIDs(t *testing.T) {
	h, pre := load(t, weighted)
	n, _, err := representation.Bipartite(h, pre)
	require.NoError(t, err)

	require.Len(t, n.Vertices, 8)
	assert.Equal(t, network.Vertex{ID: 10, Name: `"Hyperedge 1"`}, n.Vertices[6])
	assert.Equal(t, network.Vertex{ID: 11, Name: `"Hyperedge 2"`}, n.Vertices[7])
	assert.Equal(t, 10, n.BipartiteStart)
}

func TestBipartite_Pruning(t *testing.T) {
	h, pre := load(t, twoNodes+"*Weights\n0 2 1e-12\n")
	n, sum, err := representation.Bipartite(h, pre)
	require.NoError(t, err)

	assert.Equal(t, []network.Link{
		{Source: 1, Target: 3, Weight: 1},
		{Source: 3, Target: 1, Weight: 1},
	}, n.Links)
	assert.Equal(t, 1, sum.Pruned)
}

func TestBipartite_ThresholdIsKept(t *testing.T) {
	h, pre := load(t, twoNodes+"*Weights\n0 2 1e-10\n")
	n, sum, err := representation.Bipartite(h, pre)
	require.NoError(t, err)

	assert.Equal(t, []network.Link{
		{Source: 1, Target: 3, Weight: 1},
		{Source: 3, Target: 1, Weight: 1},
		{Source: 2, Target: 3, Weight: representation.Threshold},
		{Source: 3, Target: 2, Weight: representation.Threshold},
	}, n.Links)
	assert.Equal(t, representation.Summary{Links: 4}, sum)
}

func TestBipartite_Empty(t *testing.T) {
	h, err := hypergraph.New(nil, nil, nil)
	require.NoError(t, err)
	pre, err := preprocess.Run(h)
	require.NoError(t, err)

	_, _, err = representation.Bipartite(h, pre)
	assert.ErrorIs(t, err, representation.ErrEmptyHypergraph)
	_, _, err = representation.NonBacktracking(h, pre)
	assert.ErrorIs(t, err, representation.ErrEmptyHypergraph)
}

func TestNonBacktracking_TwoNodes(t *testing.T) {
	h, pre := load(t, twoNodes)
	n, sum, err := representation.NonBacktracking(h, pre)
	require.NoError(t, err)

	assert.Equal(t, []network.StateNode{
		{StateID: 0, NodeID: 1},
		{StateID: 1, NodeID: 2},
		{StateID: 2, NodeID: 3},
		{StateID: 3, NodeID: 3},
	}, n.States)
	assert.Equal(t, 2, n.BipartiteStart, "first feature state")
	assert.Equal(t, []network.Link{
		{Source: 0, Target: 2, Weight: 1},
		{Source: 3, Target: 0, Weight: 1},
		{Source: 1, Target: 3, Weight: 1},
		{Source: 2, Target: 1, Weight: 1},
	}, n.Links)
	assert.Equal(t, 4, sum.Links)
}

func TestNonBacktracking_Pruning(t *testing.T) {
	h, pre := load(t, twoNodes+"*Weights\n0 2 1e-12\n")
	n, sum, err := representation.NonBacktracking(h, pre)
	require.NoError(t, err)

	assert.Equal(t, []network.Link{
		{Source: 0, Target: 2, Weight: 1},
		{Source: 3, Target: 0, Weight: 1},
	}, n.Links)
	assert.Equal(t, representation.Summary{Links: 2, Pruned: 1}, sum)
	assert.Len(t, n.States, 4, "feature states exist even when their links are pruned")
}

// TestNonBacktracking_NoReturn checks that no feature state links back to
// the node state it was entered from.
func TestNonBacktracking_NoReturn(t *testing.T) {
	h, pre := load(t, weighted)
	n, _, err := representation.NonBacktracking(h, pre)
	require.NoError(t, err)

	origin := make(map[int]int)
	for _, l := range n.Links {
		if l.Source < n.BipartiteStart {
			_, dup := origin[l.Target]
			require.False(t, dup, "feature state %d entered twice", l.Target)
			origin[l.Target] = l.Source
		}
	}
	require.Len(t, origin, 6, "one feature state per incidence")

	back := 0
	for _, l := range n.Links {
		if l.Source < n.BipartiteStart {
			continue
		}
		from, ok := origin[l.Source]
		require.True(t, ok)
		assert.NotEqual(t, from, l.Target, "state %d returns to its origin", l.Source)
		back++
	}
	assert.Equal(t, 2*3*2, back, "each of 3 members reached from the 2 other states, twice")
}
