package graphbuilder_test

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/embedgraph/graphbuilder"
)

func seq(records []graphbuilder.EdgeRecord) iter.Seq[graphbuilder.EdgeRecordResult] {
	return func(yield func(graphbuilder.EdgeRecordResult) bool) {
		for _, r := range records {
			if !yield(graphbuilder.EdgeRecordResult{Record: r}) {
				return
			}
		}
	}
}

func TestBuildDuplicateEdgeFailsByDefault(t *testing.T) {
	records := []graphbuilder.EdgeRecord{
		{Src: "A", Dst: "B"},
		{Src: "A", Dst: "B"},
	}
	_, err := graphbuilder.Build(seq(records), nil)
	require.ErrorIs(t, err, graphbuilder.ErrDuplicateEdge)
}

func TestBuildIgnoreDuplicatedEdges(t *testing.T) {
	records := []graphbuilder.EdgeRecord{
		{Src: "A", Dst: "B"},
		{Src: "A", Dst: "B"},
	}
	g, err := graphbuilder.Build(seq(records), nil, graphbuilder.WithIgnoreDuplicatedEdges())
	require.NoError(t, err)
	require.Equal(t, 2, g.NumEdges()) // mirrored pair, duplicate dropped
}

func TestBuildSkipSelfLoops(t *testing.T) {
	records := []graphbuilder.EdgeRecord{
		{Src: "A", Dst: "A"},
		{Src: "A", Dst: "B"},
	}
	g, err := graphbuilder.Build(seq(records), nil, graphbuilder.WithSkipSelfLoops())
	require.NoError(t, err)
	require.Equal(t, uint64(0), g.SelfLoopNumber())
	require.Equal(t, 2, g.NumEdges())
}

func TestBuildRejectSelfLoops(t *testing.T) {
	records := []graphbuilder.EdgeRecord{
		{Src: "A", Dst: "B"},
		{Src: "A", Dst: "A"},
	}
	_, err := graphbuilder.Build(seq(records), nil, graphbuilder.WithRejectSelfLoops())
	require.ErrorIs(t, err, graphbuilder.ErrSelfLoopForbidden)
}

func TestBuildEmptyGraphFails(t *testing.T) {
	_, err := graphbuilder.Build(seq(nil), nil)
	require.ErrorIs(t, err, graphbuilder.ErrEmptyGraph)
}

func TestBuildNumericNodeIDsRequireDensity(t *testing.T) {
	records := []graphbuilder.EdgeRecord{
		{Src: "0", Dst: "2"},
	}
	_, err := graphbuilder.Build(seq(records), nil, graphbuilder.WithNumericNodeIDs())
	require.ErrorIs(t, err, graphbuilder.ErrSparseNumericIDs)
}

func TestBuildNumericNodeIDsDense(t *testing.T) {
	records := []graphbuilder.EdgeRecord{
		{Src: "0", Dst: "1"},
		{Src: "1", Dst: "2"},
	}
	g, err := graphbuilder.Build(seq(records), nil, graphbuilder.WithNumericNodeIDs())
	require.NoError(t, err)
	require.Equal(t, 3, g.NumNodes())
}

func TestBuildUnknownNodeWithExplicitStream(t *testing.T) {
	nodes := []graphbuilder.NodeRecord{{Name: "A"}}
	nodeSeq := func(yield func(graphbuilder.NodeRecordResult) bool) {
		for _, n := range nodes {
			if !yield(graphbuilder.NodeRecordResult{Record: n}) {
				return
			}
		}
	}
	records := []graphbuilder.EdgeRecord{{Src: "A", Dst: "B"}}
	_, err := graphbuilder.Build(seq(records), nodeSeq)
	require.ErrorIs(t, err, graphbuilder.ErrUnknownNode)
}

func TestBuildRejectsBadWeight(t *testing.T) {
	records := []graphbuilder.EdgeRecord{
		{Src: "A", Dst: "B", Weight: -1, HasWeight: true},
	}
	_, err := graphbuilder.Build(seq(records), nil)
	require.ErrorIs(t, err, graphbuilder.ErrBadWeight)
}

// UniqueEdgesNumber counts equal-key runs over the stored (directed) edge
// entries, so an undirected multigraph with one mirrored pair reports 2
// distinct keys - one per direction - while NumEdges counts every parallel
// entry.
func TestBuildUniqueEdgesNumberCountsKeyRuns(t *testing.T) {
	records := []graphbuilder.EdgeRecord{
		{Src: "A", Dst: "B", EdgeType: "x", HasEdgeType: true, Weight: 1.0, HasWeight: true},
		{Src: "A", Dst: "B", EdgeType: "y", HasEdgeType: true, Weight: 2.0, HasWeight: true},
	}
	g, err := graphbuilder.Build(seq(records), nil)
	require.NoError(t, err)
	require.Equal(t, 4, g.NumEdges())
	require.True(t, g.IsMultigraph())
	require.Equal(t, uint64(2), g.UniqueEdgesNumber())
}
