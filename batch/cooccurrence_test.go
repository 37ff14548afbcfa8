package batch_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/embedgraph/batch"
	"github.com/katalvlaran/embedgraph/graph"
)

func TestCooccurrenceCSRRejectsBadWindow(t *testing.T) {
	_, _, _, err := batch.CooccurrenceCSR(batch.WalksSeq(nil), 0)
	require.ErrorIs(t, err, batch.ErrInvalidWindow)
}

// The emitted CSR is symmetric and every frequency lies in (0,1].
func TestCooccurrenceCSRSymmetryAndRange(t *testing.T) {
	w := []graph.NodeID{0, 1, 2, 1, 0}
	words, contexts, freqs, err := batch.CooccurrenceCSR(batch.WalksSeq([][]graph.NodeID{w}), 2)
	require.NoError(t, err)
	require.NotEmpty(t, words)
	require.Len(t, contexts, len(words))
	require.Len(t, freqs, len(words))

	for k := 0; k+1 < len(words); k += 2 {
		require.Equal(t, words[k], contexts[k+1])
		require.Equal(t, contexts[k], words[k+1])
	}
	for _, f := range freqs {
		require.Greater(t, f, 0.0)
		require.LessOrEqual(t, f, 1.0)
	}
}

func TestCooccurrenceCSREmptyWalksYieldsNothing(t *testing.T) {
	words, contexts, freqs, err := batch.CooccurrenceCSR(batch.WalksSeq(nil), 2)
	require.NoError(t, err)
	require.Nil(t, words)
	require.Nil(t, contexts)
	require.Nil(t, freqs)
}
