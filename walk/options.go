// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: functional options resolving into an immutable config.
package walk

import "github.com/katalvlaran/embedgraph/graph"

// Option customises Generate's behaviour.
type Option func(cfg *config)

// StartMode selects how Generate resolves the starting-node set.
type StartMode int

const (
	// CompleteStart starts one walk per unique source, in source-id order.
	CompleteStart StartMode = iota

	// RandomStart samples Quantity sources uniformly from unique sources.
	RandomStart
)

type config struct {
	length           int
	iterations       int
	randomState      uint64
	maxNeighbours    int
	hasMaxNeighbours bool
	weights          WalkWeights
	denseNodeMapping map[graph.NodeID]graph.NodeID
	mode             StartMode
	quantity         int
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		length:     80,
		iterations: 1,
		weights:    DefaultWalkWeights(),
		mode:       CompleteStart,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithLength sets the number of nodes per walk (must be >= 2).
func WithLength(length int) Option {
	return func(cfg *config) { cfg.length = length }
}

// WithIterations sets how many walks to generate per starting node.
func WithIterations(iterations int) Option {
	return func(cfg *config) { cfg.iterations = iterations }
}

// WithRandomState sets the base random seed; Generate is deterministic given
// the same graph, parameters, and seed.
func WithRandomState(seed uint64) Option {
	return func(cfg *config) { cfg.randomState = seed }
}

// WithMaxNeighbours enables per-step neighbourhood subsampling to at most m
// candidates.
func WithMaxNeighbours(m int) Option {
	return func(cfg *config) {
		cfg.maxNeighbours = m
		cfg.hasMaxNeighbours = true
	}
}

// WithWeights sets the node2vec bias parameters. Default is all-ones.
func WithWeights(w WalkWeights) Option {
	return func(cfg *config) { cfg.weights = w }
}

// WithDenseNodeMapping relabels every emitted node id through m, skipping
// ids absent from the map.
func WithDenseNodeMapping(m map[graph.NodeID]graph.NodeID) Option {
	return func(cfg *config) { cfg.denseNodeMapping = m }
}

// WithRandomStart switches to Random starting-set mode, sampling quantity
// sources (with replacement) uniformly from the graph's unique sources.
func WithRandomStart(quantity int) Option {
	return func(cfg *config) {
		cfg.mode = RandomStart
		cfg.quantity = quantity
	}
}

// WithCompleteStart selects Complete mode (the default).
func WithCompleteStart() Option {
	return func(cfg *config) { cfg.mode = CompleteStart }
}
