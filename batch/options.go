// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: functional options for GenerateLinkPredictionBatch, in the same
// shape as graphbuilder.Option / walk.Option.
package batch

import "github.com/katalvlaran/embedgraph/graph"

// LinkPredictionOption customises GenerateLinkPredictionBatch's behaviour.
type LinkPredictionOption func(cfg *linkPredictionConfig)

type linkPredictionConfig struct {
	batchSize               int
	negativeSamples         float64
	avoidFalseNegatives     bool
	maximalSamplingAttempts int
	graphToAvoid            *graph.Graph
	method                  EmbeddingMethod
	randomState             uint64
}

func newLinkPredictionConfig(opts ...LinkPredictionOption) *linkPredictionConfig {
	cfg := &linkPredictionConfig{
		negativeSamples:         1.0,
		avoidFalseNegatives:     true,
		maximalSamplingAttempts: 100,
		method:                  Hadamard,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithBatchSize sets the total number of samples (positive + negative) to
// produce. Required; GenerateLinkPredictionBatch fails with
// ErrInvalidBatchSize without it.
func WithBatchSize(n int) LinkPredictionOption {
	return func(cfg *linkPredictionConfig) { cfg.batchSize = n }
}

// WithNegativeSamples sets the negative/positive ratio: a batch gets
// round(batchSize * ratio/(1+ratio)) negatives and the rest positives.
// Default 1.0 (half negatives).
func WithNegativeSamples(ratio float64) LinkPredictionOption {
	return func(cfg *linkPredictionConfig) { cfg.negativeSamples = ratio }
}

// WithAvoidFalseNegatives toggles rejecting sampled negative pairs that are
// actually edges of g. Default true.
func WithAvoidFalseNegatives(avoid bool) LinkPredictionOption {
	return func(cfg *linkPredictionConfig) { cfg.avoidFalseNegatives = avoid }
}

// WithMaximalSamplingAttempts caps per-negative rejection-sampling retries
// before GenerateLinkPredictionBatch fails with ErrSamplingExhausted.
// Default 100.
func WithMaximalSamplingAttempts(n int) LinkPredictionOption {
	return func(cfg *linkPredictionConfig) { cfg.maximalSamplingAttempts = n }
}

// WithGraphToAvoid additionally rejects sampled negative pairs present as
// edges of avoid (e.g. a held-out validation graph).
func WithGraphToAvoid(avoid *graph.Graph) LinkPredictionOption {
	return func(cfg *linkPredictionConfig) { cfg.graphToAvoid = avoid }
}

// WithEmbeddingMethod selects how the two endpoint embeddings combine into
// one edge-feature vector. Default Hadamard.
func WithEmbeddingMethod(method EmbeddingMethod) LinkPredictionOption {
	return func(cfg *linkPredictionConfig) { cfg.method = method }
}

// WithLinkPredictionRandomState sets the base random seed.
func WithLinkPredictionRandomState(seed uint64) LinkPredictionOption {
	return func(cfg *linkPredictionConfig) { cfg.randomState = seed }
}
