package representation_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/hyperwalk/hypergraph"
	"github.com/katalvlaran/hyperwalk/network"
	"github.com/katalvlaran/hyperwalk/preprocess"
	"github.com/katalvlaran/hyperwalk/representation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoNodes = "*Vertices\n1 a\n2 b\n*Hyperedges\n0 1 2 1.0\n"

const weighted = `*Vertices
1 a
2 b
3 c
4 d
5 e
9 isolated
*Hyperedges
1 1 2 3 10
2 3 4 5 20
*Weights
1 1 1
1 2 1
1 3 2
2 3 1
2 4 1
2 5 2
`

// load parses and preprocesses in, failing the test on any error.
func load(t *testing.T, in string) (*hypergraph.Hypergraph, *preprocess.Result) {
	t.Helper()
	h, err := hypergraph.Parse(strings.NewReader(in))
	require.NoError(t, err)
	pre, err := preprocess.Run(h)
	require.NoError(t, err)

	return h, pre
}

// collect returns an EmitFunc that copies every batch into *dst.
func collect(dst *[]network.MultilayerLink) representation.EmitFunc {
	return func(_ hypergraph.EdgeID, links []network.MultilayerLink) error {
		*dst = append(*dst, links...)
		return nil
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range representation.Kinds() {
		got, err := representation.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	got, err := representation.ParseKind("Non-Backtracking")
	require.NoError(t, err)
	assert.Equal(t, representation.KindNonBacktracking, got)

	got, err = representation.ParseKind("similarity")
	require.NoError(t, err)
	assert.Equal(t, representation.KindHyperedgeSimilarity, got)

	_, err = representation.ParseKind("tripartite")
	assert.ErrorIs(t, err, representation.ErrUnknownKind)
}

func TestParseWalk(t *testing.T) {
	w, err := representation.ParseWalk("")
	require.NoError(t, err)
	assert.Equal(t, representation.Lazy, w)

	w, err = representation.ParseWalk("Non_Lazy")
	require.NoError(t, err)
	assert.Equal(t, representation.NonLazy, w)
	assert.Equal(t, "non-lazy", w.String())

	_, err = representation.ParseWalk("eager")
	assert.ErrorIs(t, err, representation.ErrUnknownWalk)
}

func TestParseSelector(t *testing.T) {
	cases := []struct {
		sel  string
		kind representation.Kind
		walk representation.WalkMode
	}{
		{"-b", representation.KindBipartite, representation.Lazy},
		{"-B", representation.KindNonBacktracking, representation.Lazy},
		{"-u", representation.KindUnipartite, representation.Lazy},
		{"-U", representation.KindUnipartite, representation.NonLazy},
		{"-m", representation.KindMultilayer, representation.Lazy},
		{"-M", representation.KindMultilayer, representation.NonLazy},
		{"-s", representation.KindHyperedgeSimilarity, representation.Lazy},
		{"-S", representation.KindHyperedgeSimilarity, representation.NonLazy},
	}
	for _, tc := range cases {
		kind, walk, err := representation.ParseSelector(tc.sel)
		require.NoError(t, err, tc.sel)
		assert.Equal(t, tc.kind, kind, tc.sel)
		assert.Equal(t, tc.walk, walk, tc.sel)
	}

	_, _, err := representation.ParseSelector("-x")
	assert.ErrorIs(t, err, representation.ErrUnknownSelector)
}

func TestKindWalked(t *testing.T) {
	assert.False(t, representation.KindBipartite.Walked())
	assert.False(t, representation.KindNonBacktracking.Walked())
	assert.True(t, representation.KindUnipartite.Walked())
	assert.True(t, representation.KindMultilayer.Walked())
	assert.True(t, representation.KindHyperedgeSimilarity.Walked())
	assert.Equal(t, "Kind(42)", representation.Kind(42).String())
}

func TestNew(t *testing.T) {
	for _, k := range representation.Kinds() {
		p, err := representation.New(k)
		require.NoError(t, err)
		assert.Equal(t, k, p.Kind())
	}

	_, err := representation.New(representation.Kind(-1))
	assert.ErrorIs(t, err, representation.ErrUnknownKind)
}

// TestProject_Idempotent runs every projector twice per walk mode and
// requires byte-identical output.
func TestProject_Idempotent(t *testing.T) {
	h, pre := load(t, weighted)
	for _, k := range representation.Kinds() {
		for _, walk := range []representation.WalkMode{representation.Lazy, representation.NonLazy} {
			p, err := representation.New(k)
			require.NoError(t, err)

			var first, second bytes.Buffer
			s1, err := p.Project(h, pre, walk, &first)
			require.NoError(t, err)
			s2, err := p.Project(h, pre, walk, &second)
			require.NoError(t, err)

			assert.Equal(t, first.String(), second.String(), "%v %v", k, walk)
			assert.Equal(t, s1, s2)
			assert.Positive(t, s1.Links, "%v %v", k, walk)
		}
	}
}
