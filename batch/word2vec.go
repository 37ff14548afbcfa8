// SPDX-License-Identifier: MIT
//
// File: word2vec.go
// Role: centre/context windows over a lazy walk stream.
package batch

import (
	"iter"

	"github.com/katalvlaran/embedgraph/graph"
)

// Word2VecContext is one (context, centre) training pair: Context holds the
// 2*windowSize neighbours around Centre within a single walk, in walk
// order.
type Word2VecContext struct {
	Context []graph.NodeID
	Centre  graph.NodeID
}

// WalksSeq adapts a materialised walk.Generate result into the iter.Seq the
// generators in this package consume, so callers that already have
// [][]graph.NodeID in hand don't need to hand-write an adapter.
func WalksSeq(walks [][]graph.NodeID) iter.Seq[[]graph.NodeID] {
	return func(yield func([]graph.NodeID) bool) {
		for _, w := range walks {
			if !yield(w) {
				return
			}
		}
	}
}

// Word2VecContexts yields one Word2VecContext per centre index i in
// [windowSize, len(walk)-windowSize-1] of every walk at least
// 2*windowSize+1 long. Shorter walks contribute nothing rather than
// erroring, since a walk's length is a caller concern (walk.WithLength),
// not this generator's.
func Word2VecContexts(walks iter.Seq[[]graph.NodeID], windowSize int) (iter.Seq[Word2VecContext], error) {
	if windowSize < 1 {
		return nil, ErrInvalidWindow
	}

	return func(yield func(Word2VecContext) bool) {
		minLen := 2*windowSize + 1
		for walk := range walks {
			length := len(walk)
			if length < minLen {
				continue
			}
			for i := windowSize; i <= length-windowSize-1; i++ {
				ctx := make([]graph.NodeID, 0, 2*windowSize)
				for j := i - windowSize; j <= i+windowSize; j++ {
					if j == i {
						continue
					}
					ctx = append(ctx, walk[j])
				}
				if !yield(Word2VecContext{Context: ctx, Centre: walk[i]}) {
					return
				}
			}
		}
	}, nil
}
