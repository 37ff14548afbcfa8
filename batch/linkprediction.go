// SPDX-License-Identifier: MIT
//
// File: linkprediction.go
// Role: positive/negative edge sampling, edge-embedding combination, and
// output permutation.
package batch

import (
	"math"

	"github.com/katalvlaran/embedgraph/graph"
	"github.com/katalvlaran/embedgraph/internal/xrand"
)

// LinkPredictionSample is one (index, embedding, label) output row.
type LinkPredictionSample struct {
	Index     int
	Embedding []float64
	Label     float64 // 1 for a positive (real) edge, 0 for a sampled negative
}

// GenerateLinkPredictionBatch draws batchSize samples over g: a
// negativeSamples/(1+negativeSamples) fraction are negatives rejection-
// sampled from [0,|V|)^2 (Lemire-reduced halves of one xorshift64 draw),
// the rest are positives drawn uniformly over g's edge ids. embeddings must
// have at least g.NumNodes() rows; embeddings[n] is node n's vector.
//
// Returns ErrSamplingExhausted if any negative draw exhausts
// maximalSamplingAttempts - silently shrinking the batch would invalidate
// downstream training, so this never degrades the requested size.
func GenerateLinkPredictionBatch(g *graph.Graph, embeddings [][]float64, opts ...LinkPredictionOption) ([]LinkPredictionSample, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.NumEdges() == 0 {
		return nil, ErrEmptyGraph
	}

	cfg := newLinkPredictionConfig(opts...)
	if cfg.batchSize < 1 {
		return nil, ErrInvalidBatchSize
	}
	if cfg.negativeSamples < 0 {
		return nil, ErrInvalidNegativeSamples
	}
	if len(embeddings) < g.NumNodes() {
		return nil, ErrDimensionMismatch
	}

	numNegatives := int(math.Round(float64(cfg.batchSize) * cfg.negativeSamples / (1 + cfg.negativeSamples)))
	if numNegatives > cfg.batchSize {
		numNegatives = cfg.batchSize
	}
	numPositives := cfg.batchSize - numNegatives

	hasSelfLoops := g.SelfLoopNumber() > 0
	state := cfg.randomState ^ xrand.SeedMask

	samples := make([]LinkPredictionSample, 0, cfg.batchSize)

	for i := 0; i < numPositives; i++ {
		var src, dst graph.NodeID
		src, dst, state = samplePositive(g, state)
		emb, err := combineEmbeddings(cfg.method, embeddings[src], embeddings[dst])
		if err != nil {
			return nil, err
		}
		samples = append(samples, LinkPredictionSample{Embedding: emb, Label: 1})
	}

	for i := 0; i < numNegatives; i++ {
		var src, dst graph.NodeID
		var ok bool
		src, dst, state, ok = sampleNegative(g, state, cfg, hasSelfLoops)
		if !ok {
			return nil, ErrSamplingExhausted
		}
		emb, err := combineEmbeddings(cfg.method, embeddings[src], embeddings[dst])
		if err != nil {
			return nil, err
		}
		samples = append(samples, LinkPredictionSample{Embedding: emb, Label: 0})
	}

	_ = shuffleSamples(samples, state)
	for i := range samples {
		samples[i].Index = i
	}

	return samples, nil
}

// samplePositive advances the shared xorshift64 stream once, Lemire-reduces
// the high half of the draw into [0,|E|) to pick an edge id, and returns its
// decoded endpoints plus the advanced state. The edge id is not derived from
// the seed plus the sample index: each positive depends on every earlier draw
// in the batch.
func samplePositive(g *graph.Graph, state uint64) (src, dst graph.NodeID, next uint64) {
	state = xrand.Next(state)
	hi, _ := xrand.SplitHalves(state)
	edgeIdx := xrand.Lemire(hi, uint32(g.NumEdges()))
	src, dst, _ = g.EdgeEndpoints(graph.EdgeID(edgeIdx))

	return src, dst, state
}

// sampleNegative draws candidate (src,dst) pairs by splitting one
// xorshift64 draw into two Lemire-reduced halves, rejecting candidates that
// are edges of g (when cfg.avoidFalseNegatives is set), edges of
// graphToAvoid, or self-pairs on a loop-free graph, up to
// cfg.maximalSamplingAttempts times.
func sampleNegative(
	g *graph.Graph,
	state uint64,
	cfg *linkPredictionConfig,
	hasSelfLoops bool,
) (src, dst graph.NodeID, next uint64, ok bool) {
	n := uint32(g.NumNodes())
	for attempt := 0; attempt < cfg.maximalSamplingAttempts; attempt++ {
		state = xrand.Next(state)
		hiHalf, loHalf := xrand.SplitHalves(state)
		candSrc := graph.NodeID(xrand.Lemire(hiHalf, n))
		candDst := graph.NodeID(xrand.Lemire(loHalf, n))

		if !hasSelfLoops && candSrc == candDst {
			continue
		}
		if cfg.avoidFalseNegatives {
			if isEdge, _ := g.HasEdge(candSrc, candDst); isEdge {
				continue
			}
		}
		if cfg.graphToAvoid != nil {
			if isEdge, _ := cfg.graphToAvoid.HasEdge(candSrc, candDst); isEdge {
				continue
			}
		}

		return candSrc, candDst, state, true
	}

	return 0, 0, state, false
}

// shuffleSamples runs a deterministic Fisher-Yates pass over samples,
// returning the advanced state; callers overwrite Index after this so the
// field always matches the sample's final position.
func shuffleSamples(samples []LinkPredictionSample, state uint64) uint64 {
	for i := len(samples) - 1; i > 0; i-- {
		state = xrand.Next(state)
		hi, _ := xrand.SplitHalves(state)
		j := int(xrand.Lemire(hi, uint32(i+1)))
		samples[i], samples[j] = samples[j], samples[i]
	}

	return state
}
