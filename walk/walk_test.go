package walk_test

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/embedgraph/graph"
	"github.com/katalvlaran/embedgraph/graphbuilder"
	"github.com/katalvlaran/embedgraph/internal/testgraph"
	"github.com/katalvlaran/embedgraph/walk"
)

func TestGenerateRejectsDirected(t *testing.T) {
	directed, err := directedPair()
	require.NoError(t, err)
	require.True(t, directed.Directed())

	_, err = walk.Generate(directed, walk.WithLength(3))
	require.ErrorIs(t, err, walk.ErrDirectedGraph)
}

func TestGenerateValidatesParameters(t *testing.T) {
	g, err := testgraph.PathABCD()
	require.NoError(t, err)

	_, err = walk.Generate(g, walk.WithLength(1))
	require.ErrorIs(t, err, walk.ErrInvalidLength)

	_, err = walk.Generate(g, walk.WithLength(4), walk.WithIterations(0))
	require.ErrorIs(t, err, walk.ErrInvalidIterations)

	_, err = walk.Generate(g, walk.WithLength(4), walk.WithMaxNeighbours(0))
	require.ErrorIs(t, err, walk.ErrInvalidMaxNeighbours)
}

// A walk with length=4, p=q=1, seed 42: every consecutive pair in the walk
// must be an edge of G, and the walk must be deterministic.
func TestGenerateUniformWalkStaysOnEdges(t *testing.T) {
	g, err := testgraph.PathABCD()
	require.NoError(t, err)

	walks, err := walk.Generate(g, walk.WithLength(4), walk.WithRandomState(42))
	require.NoError(t, err)
	require.Len(t, walks, g.NumNodes()) // Complete mode: one walk per unique source

	for _, w := range walks {
		require.Len(t, w, 4)
		for i := 0; i+1 < len(w); i++ {
			require.True(t, adjacent(t, g, w[i], w[i+1]), "expected edge %d -> %d in walk %v", w[i], w[i+1], w)
		}
	}

	again, err := walk.Generate(g, walk.WithLength(4), walk.WithRandomState(42))
	require.NoError(t, err)
	require.Equal(t, walks, again, "same seed must reproduce the same walks")
}

func TestGenerateRandomStartQuantity(t *testing.T) {
	g, err := testgraph.PathABCD()
	require.NoError(t, err)

	walks, err := walk.Generate(g, walk.WithLength(3), walk.WithRandomStart(5), walk.WithRandomState(7))
	require.NoError(t, err)
	require.Len(t, walks, 5)
}

func TestGenerateRunsOnSelfLoopGraph(t *testing.T) {
	g, err := testgraph.SelfLoopPair() // has at least one source; use it to sanity check walks run
	require.NoError(t, err)

	walks, err := walk.Generate(g, walk.WithLength(2), walk.WithRandomState(1))
	require.NoError(t, err)
	require.NotEmpty(t, walks)
}

func adjacent(t *testing.T, g *graph.Graph, u, v graph.NodeID) bool {
	t.Helper()
	lo, hi, err := g.OutboundRange(u)
	require.NoError(t, err)
	for e := lo; e < hi; e++ {
		dst, derr := g.Destination(e)
		require.NoError(t, derr)
		if dst == v {
			return true
		}
	}

	return false
}

func directedPair() (*graph.Graph, error) {
	records := []graphbuilder.EdgeRecord{{Src: "A", Dst: "B"}}
	seq := func(yield func(graphbuilder.EdgeRecordResult) bool) {
		for _, r := range records {
			if !yield(graphbuilder.EdgeRecordResult{Record: r}) {
				return
			}
		}
	}
	var _ iter.Seq[graphbuilder.EdgeRecordResult] = seq

	return graphbuilder.Build(seq, nil, graphbuilder.WithDirected(true))
}

func TestLoadWalkWeightsYAML(t *testing.T) {
	doc := []byte("return_weight: 2.0\nexplore_weight: 0.5\n")
	w, err := walk.LoadWalkWeightsYAML(doc)
	require.NoError(t, err)
	require.Equal(t, 2.0, w.ReturnWeight)
	require.Equal(t, 0.5, w.ExploreWeight)
	require.Equal(t, 1.0, w.ChangeNodeTypeWeight) // defaults fill unset fields

	_, err = walk.LoadWalkWeightsYAML([]byte("return_weight: -1\n"))
	require.ErrorIs(t, err, walk.ErrInvalidWeight)
}
