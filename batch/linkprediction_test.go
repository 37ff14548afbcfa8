package batch_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/embedgraph/batch"
	"github.com/katalvlaran/embedgraph/internal/testgraph"
)

func dummyEmbeddings(n int, dim int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, dim)
		for d := range out[i] {
			out[i][d] = float64(i*dim + d)
		}
	}

	return out
}

// A 3-node complete graph has no possible negative pair, so requesting any
// negatives with avoid-false-negatives on must fail fatally.
func TestGenerateLinkPredictionBatchExhaustsOnCompleteGraph(t *testing.T) {
	g, err := testgraph.CompleteGraph(3)
	require.NoError(t, err)

	_, err = batch.GenerateLinkPredictionBatch(
		g,
		dummyEmbeddings(g.NumNodes(), 4),
		batch.WithBatchSize(4),
		batch.WithNegativeSamples(1.0),
		batch.WithAvoidFalseNegatives(true),
		batch.WithMaximalSamplingAttempts(16),
	)
	require.ErrorIs(t, err, batch.ErrSamplingExhausted)
}

func TestGenerateLinkPredictionBatchPositivesAreEdges(t *testing.T) {
	g, err := testgraph.PathGraph(6)
	require.NoError(t, err)

	samples, err := batch.GenerateLinkPredictionBatch(
		g,
		dummyEmbeddings(g.NumNodes(), 3),
		batch.WithBatchSize(10),
		batch.WithNegativeSamples(0), // all positives
		batch.WithLinkPredictionRandomState(7),
	)
	require.NoError(t, err)
	require.Len(t, samples, 10)
	for _, s := range samples {
		require.Equal(t, 1.0, s.Label)
		require.Len(t, s.Embedding, 3)
	}
}

func TestGenerateLinkPredictionBatchIndicesArePermutation(t *testing.T) {
	g, err := testgraph.PathGraph(8)
	require.NoError(t, err)

	samples, err := batch.GenerateLinkPredictionBatch(
		g,
		dummyEmbeddings(g.NumNodes(), 2),
		batch.WithBatchSize(6),
		batch.WithNegativeSamples(1.0),
		batch.WithAvoidFalseNegatives(true),
		batch.WithMaximalSamplingAttempts(64),
		batch.WithLinkPredictionRandomState(3),
	)
	require.NoError(t, err)
	require.Len(t, samples, 6)

	seen := make(map[int]bool)
	for _, s := range samples {
		require.False(t, seen[s.Index])
		seen[s.Index] = true
	}
	require.Len(t, seen, 6)
}

func TestGenerateLinkPredictionBatchRejectsBadBatchSize(t *testing.T) {
	g, err := testgraph.PathGraph(4)
	require.NoError(t, err)

	_, err = batch.GenerateLinkPredictionBatch(g, dummyEmbeddings(g.NumNodes(), 2), batch.WithBatchSize(0))
	require.ErrorIs(t, err, batch.ErrInvalidBatchSize)
}

func TestGenerateLinkPredictionBatchEmbeddingMethods(t *testing.T) {
	g, err := testgraph.PathGraph(5)
	require.NoError(t, err)

	methods := []batch.EmbeddingMethod{
		batch.Hadamard, batch.Average, batch.Sum,
		batch.L1, batch.AbsoluteL1, batch.L2, batch.Concatenate,
	}
	for _, m := range methods {
		samples, err := batch.GenerateLinkPredictionBatch(
			g,
			dummyEmbeddings(g.NumNodes(), 3),
			batch.WithBatchSize(4),
			batch.WithNegativeSamples(0),
			batch.WithEmbeddingMethod(m),
		)
		require.NoError(t, err, m.String())
		wantDim := 3
		if m == batch.Concatenate {
			wantDim = 6
		}
		for _, s := range samples {
			require.Len(t, s.Embedding, wantDim, m.String())
		}
	}
}
