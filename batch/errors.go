// SPDX-License-Identifier: MIT
package batch

import "errors"

// Sentinel errors for the batch package.
var (
	// ErrNilGraph indicates a nil *graph.Graph was passed to a generator
	// that reads the graph directly (link prediction).
	ErrNilGraph = errors.New("batch: graph is nil")

	// ErrEmptyGraph indicates an operation requiring at least one edge was
	// attempted on a graph with |E| == 0.
	ErrEmptyGraph = errors.New("batch: graph has no edges")

	// ErrInvalidWindow indicates a non-positive window size was passed to
	// Word2VecContexts or CooccurrenceCSR.
	ErrInvalidWindow = errors.New("batch: window size must be >= 1")

	// ErrInvalidBatchSize indicates a non-positive batch size.
	ErrInvalidBatchSize = errors.New("batch: batch size must be >= 1")

	// ErrInvalidNegativeSamples indicates a negative negative-sample ratio.
	ErrInvalidNegativeSamples = errors.New("batch: negative sample ratio must be >= 0")

	// ErrDimensionMismatch indicates the two node embeddings fed to the
	// edge-embedding combiner have different lengths (Concatenate excepted)
	// or the embeddings matrix is shorter than the graph's node count.
	ErrDimensionMismatch = errors.New("batch: embedding dimension mismatch")

	// ErrUnknownEmbeddingMethod indicates an EmbeddingMethod value outside
	// the seven defined cases.
	ErrUnknownEmbeddingMethod = errors.New("batch: unknown embedding method")

	// ErrSamplingExhausted indicates link prediction could not find a valid
	// negative pair within maximalSamplingAttempts tries, a fatal condition
	// indicating the graph is too dense or too small for the requested
	// negative ratio.
	ErrSamplingExhausted = errors.New("batch: exhausted sampling attempts for a negative pair")
)
