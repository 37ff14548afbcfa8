package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/embedgraph/graph"
	"github.com/katalvlaran/embedgraph/internal/testgraph"
)

// Path A-B-C-D: |E|=6 after mirroring, degrees [1,2,2,1], and every edge
// id falls inside its source's outbound range.
func TestPathGraphInvariants(t *testing.T) {
	g, err := testgraph.PathABCD()
	require.NoError(t, err)
	require.Equal(t, 4, g.NumNodes())
	require.Equal(t, 6, g.NumEdges())

	wantDeg := map[string]uint64{"A": 1, "B": 2, "C": 2, "D": 1}
	var sum uint64
	for name, want := range wantDeg {
		id, ok := g.NodeByName(name)
		require.True(t, ok)
		deg, derr := g.Degree(id)
		require.NoError(t, derr)
		require.Equal(t, want, deg, "degree of %s", name)
		sum += deg
	}
	require.Equal(t, uint64(g.NumEdges()), sum)

	// Every edge id must fall inside its source's outbound range.
	for nid := 0; nid < g.NumNodes(); nid++ {
		lo, hi, rerr := g.OutboundRange(graph.NodeID(nid))
		require.NoError(t, rerr)
		for e := lo; e < hi; e++ {
			src, _, eerr := g.EdgeEndpoints(e)
			require.NoError(t, eerr)
			require.Equal(t, graph.NodeID(nid), src)
		}
	}

	require.False(t, g.IsMultigraph())
}

// A multigraph with two differently-typed parallel edges keeps both.
func TestTypedMultigraph(t *testing.T) {
	g, err := testgraph.TypedMultigraph()
	require.NoError(t, err)
	require.Equal(t, 4, g.NumEdges())
	require.True(t, g.IsMultigraph())
	require.True(t, g.HasEdgeTypes())
	require.True(t, g.HasWeights())
}

// A self-loop is stored once (never mirrored) and counted once.
func TestSelfLoopCounters(t *testing.T) {
	g, err := testgraph.SelfLoopPair()
	require.NoError(t, err)
	require.Equal(t, uint64(1), g.SelfLoopNumber())
	require.Equal(t, uint64(1), g.UniqueSelfLoopNumber())
	require.Equal(t, 3, g.NumEdges())
}

// Mirror closure: every stored undirected (u,v) has its mirror (v,u) stored
// too. Weights and edge types of the mirror are not compared here.
func TestMirrorClosure(t *testing.T) {
	g, err := testgraph.TypedMultigraph()
	require.NoError(t, err)

	seen := map[[2]uint32]struct{}{}
	for e := 0; e < g.NumEdges(); e++ {
		u, v, err := g.EdgeEndpoints(graph.EdgeID(e))
		require.NoError(t, err)
		seen[[2]uint32{uint32(u), uint32(v)}] = struct{}{}
	}
	for pair := range seen {
		mirror := [2]uint32{pair[1], pair[0]}
		_, ok := seen[mirror]
		require.True(t, ok, "missing mirror of %v", pair)
	}
}

func TestFastWalkModes(t *testing.T) {
	g, err := testgraph.PathABCD()
	require.NoError(t, err)
	require.False(t, g.HasFastWalk())

	require.NoError(t, g.EnableFastWalk(graph.FastWalkConfig{Mode: graph.FastWalkFull}))
	require.True(t, g.HasFastWalk())

	g.DisableFastWalk()
	require.False(t, g.HasFastWalk())
}

func TestFastWalkCachedMode(t *testing.T) {
	g, err := testgraph.PathABCD()
	require.NoError(t, err)

	require.NoError(t, g.EnableFastWalk(graph.FastWalkConfig{
		Mode:          graph.FastWalkCached,
		CacheFraction: 0.5,
	}))

	// Destinations resolved through the cache must match plain decoding.
	for e := 0; e < g.NumEdges(); e++ {
		dst, derr := g.Destination(graph.EdgeID(e))
		require.NoError(t, derr)
		_, want, eerr := g.EdgeEndpoints(graph.EdgeID(e))
		require.NoError(t, eerr)
		require.Equal(t, want, dst)
	}

	// The cache covers the highest-degree half of the sources.
	var covered int
	for n := 0; n < g.NumNodes(); n++ {
		if _, ok := g.CachedDestinationSlice(graph.NodeID(n)); ok {
			covered++
		}
	}
	require.Equal(t, 2, covered)

	g.DisableFastWalk()
}

func TestFastWalkCacheFractionValidation(t *testing.T) {
	g, err := testgraph.PathABCD()
	require.NoError(t, err)

	err = g.EnableFastWalk(graph.FastWalkConfig{Mode: graph.FastWalkCached, CacheFraction: 0})
	require.ErrorIs(t, err, graph.ErrInvalidCacheFraction)
	err = g.EnableFastWalk(graph.FastWalkConfig{Mode: graph.FastWalkCached, CacheFraction: 1})
	require.ErrorIs(t, err, graph.ErrInvalidCacheFraction)
}

func TestFastWalkModesConflict(t *testing.T) {
	g, err := testgraph.PathABCD()
	require.NoError(t, err)

	require.NoError(t, g.EnableFastWalk(graph.FastWalkConfig{Mode: graph.FastWalkFull}))
	err = g.EnableFastWalk(graph.FastWalkConfig{Mode: graph.FastWalkCached, CacheFraction: 0.5})
	require.ErrorIs(t, err, graph.ErrFastWalkConflict)

	g.DisableFastWalk()
	require.NoError(t, g.EnableFastWalk(graph.FastWalkConfig{
		Mode:          graph.FastWalkCached,
		CacheFraction: 0.5,
	}))
	err = g.EnableFastWalk(graph.FastWalkConfig{Mode: graph.FastWalkFull})
	require.ErrorIs(t, err, graph.ErrFastWalkConflict)
}

func TestSetAllTypes(t *testing.T) {
	g, err := testgraph.PathABCD()
	require.NoError(t, err)
	require.False(t, g.HasNodeTypes())
	require.False(t, g.HasEdgeTypes())

	require.NoError(t, g.SetAllNodeTypes("biolink:NamedThing"))
	require.NoError(t, g.SetAllEdgeTypes("biolink:related_to"))
	require.True(t, g.HasNodeTypes())
	require.True(t, g.HasEdgeTypes())

	nt, ok := g.NodeType(0)
	require.True(t, ok)
	for n := 1; n < g.NumNodes(); n++ {
		got, ok := g.NodeType(graph.NodeID(n))
		require.True(t, ok)
		require.Equal(t, nt, got)
	}
	et, ok := g.EdgeType(0)
	require.True(t, ok)
	for e := 1; e < g.NumEdges(); e++ {
		got, ok := g.EdgeType(graph.EdgeID(e))
		require.True(t, ok)
		require.Equal(t, et, got)
	}
}

func TestHasEdge(t *testing.T) {
	g, err := testgraph.PathABCD()
	require.NoError(t, err)

	a, _ := g.NodeByName("A")
	b, _ := g.NodeByName("B")
	d, _ := g.NodeByName("D")

	got, err := g.HasEdge(a, b)
	require.NoError(t, err)
	require.True(t, got)

	got, err = g.HasEdge(a, d)
	require.NoError(t, err)
	require.False(t, got)
}
