package batch_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/embedgraph/batch"
	"github.com/katalvlaran/embedgraph/graph"
)

func TestWord2VecContextsRejectsBadWindow(t *testing.T) {
	_, err := batch.Word2VecContexts(batch.WalksSeq(nil), 0)
	require.ErrorIs(t, err, batch.ErrInvalidWindow)
}

func TestWord2VecContextsWindowShape(t *testing.T) {
	w := []graph.NodeID{0, 1, 2, 3, 4, 5, 6}
	seq, err := batch.Word2VecContexts(batch.WalksSeq([][]graph.NodeID{w}), 2)
	require.NoError(t, err)

	var got []batch.Word2VecContext
	for c := range seq {
		got = append(got, c)
	}

	// length 7, window 2: centres at indices 2,3,4 -> 3 contexts.
	require.Len(t, got, 3)
	require.Equal(t, graph.NodeID(2), got[0].Centre)
	require.Equal(t, []graph.NodeID{0, 1, 3, 4}, got[0].Context)
	require.Equal(t, graph.NodeID(4), got[2].Centre)
	require.Equal(t, []graph.NodeID{2, 3, 5, 6}, got[2].Context)
}

func TestWord2VecContextsSkipsShortWalks(t *testing.T) {
	short := []graph.NodeID{0, 1, 2}
	seq, err := batch.Word2VecContexts(batch.WalksSeq([][]graph.NodeID{short}), 2)
	require.NoError(t, err)

	var count int
	for range seq {
		count++
	}
	require.Zero(t, count)
}
