package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/embedgraph/internal/testgraph"
	"github.com/katalvlaran/embedgraph/metrics"
)

// Path A-B-C-D: |E|=6, degrees [1,2,2,1], density 6/(4*3)=0.5.
func TestComputePathGraph(t *testing.T) {
	g, err := testgraph.PathABCD()
	require.NoError(t, err)

	r, err := metrics.Compute(g)
	require.NoError(t, err)
	require.Equal(t, 4, r.Nodes)
	require.Equal(t, 6, r.Edges)
	require.InDelta(t, 0.5, r.Density, 1e-9)
	require.False(t, r.IsMultigraph)
	require.Zero(t, r.SingletonNodes)
	require.InDelta(t, 1.5, r.DegreeMean, 1e-9)
}

func TestComputeMultigraph(t *testing.T) {
	g, err := testgraph.TypedMultigraph()
	require.NoError(t, err)

	r, err := metrics.Compute(g)
	require.NoError(t, err)
	require.True(t, r.IsMultigraph)
}

func TestComputeRejectsNilGraph(t *testing.T) {
	_, err := metrics.Compute(nil)
	require.ErrorIs(t, err, metrics.ErrNilGraph)
}

func TestReportString(t *testing.T) {
	g, err := testgraph.PathABCD()
	require.NoError(t, err)
	r, err := metrics.Compute(g)
	require.NoError(t, err)
	require.Contains(t, r.String(), "nodes=4")
}
