package connectivity_test

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/embedgraph/connectivity"
	"github.com/katalvlaran/embedgraph/graph"
	"github.com/katalvlaran/embedgraph/graphbuilder"
	"github.com/katalvlaran/embedgraph/internal/testgraph"
)

func directedPair(t *testing.T) (*graph.Graph, error) {
	t.Helper()
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

func TestBaderCongRejectsDirected(t *testing.T) {
	directed, err := directedPair(t)
	require.NoError(t, err)

	_, err = connectivity.BaderCong(directed)
	require.ErrorIs(t, err, connectivity.ErrDirectedGraph)
}

// Bader-Cong must agree with Kruskal on the component count and produce a
// forest of size |V|-c (singleton roots carry no tree edge).
func TestBaderCongMatchesKruskalComponentCount(t *testing.T) {
	g, err := testgraph.PathGraph(9)
	require.NoError(t, err)

	kr, err := connectivity.Kruskal(g)
	require.NoError(t, err)

	bc, err := connectivity.BaderCong(g, connectivity.WithWorkers(4))
	require.NoError(t, err)

	require.Equal(t, kr.NumComponents, bc.NumComponents)
	require.Equal(t, g.NumNodes()-bc.NumComponents, bc.TreeEdgeCount)
}

func TestBaderCongSingletonsAreOwnRoots(t *testing.T) {
	// A-B plus an isolated node C: the singleton becomes its own root with
	// no tree edge, leaving two components.
	nodes := []graphbuilder.NodeRecord{{Name: "A"}, {Name: "B"}, {Name: "C"}}
	nodeSeq := func(yield func(graphbuilder.NodeRecordResult) bool) {
		for _, n := range nodes {
			if !yield(graphbuilder.NodeRecordResult{Record: n}) {
				return
			}
		}
	}
	records := []graphbuilder.EdgeRecord{{Src: "A", Dst: "B"}}
	edgeSeq := func(yield func(graphbuilder.EdgeRecordResult) bool) {
		for _, r := range records {
			if !yield(graphbuilder.EdgeRecordResult{Record: r}) {
				return
			}
		}
	}
	g, err := graphbuilder.Build(edgeSeq, nodeSeq)
	require.NoError(t, err)

	bc, err := connectivity.BaderCong(g, connectivity.WithWorkers(2))
	require.NoError(t, err)
	require.Equal(t, g.NumNodes(), len(bc.Parents))
	require.Equal(t, 2, bc.NumComponents)
	require.Equal(t, 1, bc.MinComponentSize)
	require.Equal(t, 2, bc.MaxComponentSize)
	require.Equal(t, g.NumNodes()-bc.NumComponents, bc.TreeEdgeCount)

	c, ok := g.NodeByName("C")
	require.True(t, ok)
	require.Equal(t, c, bc.Parents[c])
}
