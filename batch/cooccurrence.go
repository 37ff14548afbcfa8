// SPDX-License-Identifier: MIT
//
// File: cooccurrence.go
// Role: a symmetric co-occurrence CSR over a walk stream, normalised by the
// maximum accumulated frequency. The full accumulation map is materialised
// before the three parallel arrays are emitted, which keeps the result
// deterministic for a fixed walk stream regardless of how that stream was
// produced.
package batch

import (
	"iter"
	"sort"

	"github.com/katalvlaran/embedgraph/graph"
)

type cooccPair struct {
	u, v graph.NodeID
}

// CooccurrenceCSR accumulates cooc[(u,v)] += 1/d for every pair of walk
// positions at distance d in [1, windowSize], storing each pair in
// ascending-id order, then emits three parallel arrays (words, contexts,
// frequencies) with every entry duplicated in both directions and
// frequencies divided by the maximum accumulated value.
func CooccurrenceCSR(walks iter.Seq[[]graph.NodeID], windowSize int) (words, contexts []graph.NodeID, frequencies []float64, err error) {
	if windowSize < 1 {
		return nil, nil, nil, ErrInvalidWindow
	}

	acc := make(map[cooccPair]float64)
	for walk := range walks {
		length := len(walk)
		for i := 0; i < length; i++ {
			for d := 1; d <= windowSize && i+d < length; d++ {
				a, b := walk[i], walk[i+d]
				if a > b {
					a, b = b, a
				}
				acc[cooccPair{a, b}] += 1.0 / float64(d)
			}
		}
	}
	if len(acc) == 0 {
		return nil, nil, nil, nil
	}

	pairs := make([]cooccPair, 0, len(acc))
	for p := range acc {
		pairs = append(pairs, p)
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].u != pairs[j].u {
			return pairs[i].u < pairs[j].u
		}

		return pairs[i].v < pairs[j].v
	})

	var maxFreq float64
	for _, p := range pairs {
		if f := acc[p]; f > maxFreq {
			maxFreq = f
		}
	}

	words = make([]graph.NodeID, 0, len(pairs)*2)
	contexts = make([]graph.NodeID, 0, len(pairs)*2)
	frequencies = make([]float64, 0, len(pairs)*2)
	for _, p := range pairs {
		f := acc[p] / maxFreq
		words = append(words, p.u, p.v)
		contexts = append(contexts, p.v, p.u)
		frequencies = append(frequencies, f, f)
	}

	return words, contexts, frequencies, nil
}
