// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: functional options for Kruskal and BaderCong.
package connectivity

import "github.com/katalvlaran/embedgraph/graph"

// KruskalOption customises Kruskal's behaviour.
type KruskalOption func(cfg *kruskalConfig)

type kruskalConfig struct {
	shuffle           bool
	randomState       uint64
	unwantedEdgeTypes map[graph.EdgeTypeID]struct{}
}

func newKruskalConfig(opts ...KruskalOption) *kruskalConfig {
	cfg := &kruskalConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithShuffledOrder switches Kruskal to the random-order variant: edges are
// shuffled deterministically from randomState before the union-find pass,
// instead of processed in canonical sorted order.
func WithShuffledOrder(randomState uint64) KruskalOption {
	return func(cfg *kruskalConfig) {
		cfg.shuffle = true
		cfg.randomState = randomState
	}
}

// WithUnwantedEdgeTypes biases the shuffled order (WithShuffledOrder must
// also be set) to prefer edges whose type is not in unwanted: all wanted
// edges are shuffled and placed first, then all unwanted edges, shuffled
// independently - minimising the tree's use of the unwanted types.
func WithUnwantedEdgeTypes(unwanted ...graph.EdgeTypeID) KruskalOption {
	return func(cfg *kruskalConfig) {
		set := make(map[graph.EdgeTypeID]struct{}, len(unwanted))
		for _, et := range unwanted {
			set[et] = struct{}{}
		}
		cfg.unwantedEdgeTypes = set
	}
}

// BaderCongOption customises BaderCong's behaviour.
type BaderCongOption func(cfg *baderCongConfig)

type baderCongConfig struct {
	workers int // 0 means "derive from NumNodes and core count"
}

func newBaderCongConfig(opts ...BaderCongOption) *baderCongConfig {
	cfg := &baderCongConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithWorkers overrides the automatically computed worker-thread count
// T = min(cores, 1+scale(|V|)). Mainly for tests that need a deterministic,
// small thread count.
func WithWorkers(workers int) BaderCongOption {
	return func(cfg *baderCongConfig) { cfg.workers = workers }
}
