package hypergraph_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/hyperwalk/hypergraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `# example hypergraph
*Vertices
1 "a"
2 "b"
3 "c node"
4 "d"
*Hyperedges
# id nodes... omega
1 1 2 3 10
2 3 4 20.5
*Weights
1 3 2
2 4 0.5
`

func TestParse_Sections(t *testing.T) {
	h, err := hypergraph.Parse(strings.NewReader(sample))
	require.NoError(t, err)

	require.Len(t, h.Nodes, 4)
	assert.Equal(t, hypergraph.Node{ID: 3, Name: `"c node"`}, h.Nodes[2], "name keeps spaces and quotes")

	require.Len(t, h.Edges, 2)
	assert.Equal(t, hypergraph.EdgeID(1), h.Edges[0].ID)
	assert.Equal(t, []hypergraph.NodeID{1, 2, 3}, h.Edges[0].Nodes)
	assert.Equal(t, 10.0, h.Edges[0].Omega)
	assert.Equal(t, 20.5, h.Edges[1].Omega)

	require.Len(t, h.Weights, 2)
	assert.Equal(t, hypergraph.Gamma{Edge: 2, Node: 4, Value: 0.5}, h.Weights[1])
}

func TestParse_CaseInsensitiveMarkersAndComments(t *testing.T) {
	in := "*VERTICES 2\n1 x\n# 9 ignored\n2 y\n*hyperEdges\n0 1 2 1\n*unknown\n7 7 7\n"
	h, err := hypergraph.Parse(strings.NewReader(in))
	require.NoError(t, err)

	assert.Len(t, h.Nodes, 2)
	assert.Len(t, h.Edges, 1)
	assert.Empty(t, h.Weights, "lines after an unknown marker are ignored")
}

func TestParse_NameFallsBackToID(t *testing.T) {
	h, err := hypergraph.Parse(strings.NewReader("*Vertices\n42\n"))
	require.NoError(t, err)
	assert.Equal(t, "42", h.Nodes[0].Name)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"bad node id", "*Vertices\nx a\n", hypergraph.ErrSyntax},
		{"edge without weight", "*Hyperedges\n1\n", hypergraph.ErrSyntax},
		{"bad member", "*Hyperedges\n1 a 2 1.0\n", hypergraph.ErrSyntax},
		{"bad omega", "*Hyperedges\n1 1 2 w\n", hypergraph.ErrSyntax},
		{"negative omega", "*Hyperedges\n1 1 2 -1\n", hypergraph.ErrInvalidWeight},
		{"nan gamma", "*Weights\n1 1 NaN\n", hypergraph.ErrInvalidWeight},
		{"short weight line", "*Weights\n1 1\n", hypergraph.ErrSyntax},
		{"duplicate node", "*Vertices\n1 a\n1 b\n", hypergraph.ErrDuplicateNode},
		{"duplicate edge", "*Hyperedges\n1 1 1\n1 2 1\n", hypergraph.ErrDuplicateEdge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := hypergraph.Parse(strings.NewReader(tc.in))
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParse_ErrorCarriesLineNumber(t *testing.T) {
	_, err := hypergraph.Parse(strings.NewReader("*Vertices\n1 a\nzz b\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 3")
}
