// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: functional options resolving into an immutable config.
package graphbuilder

// Option customises Build's behaviour. As a rule options never panic and
// ignore meaningless zero values.
type Option func(cfg *config)

type config struct {
	directed              bool
	ignoreDuplicatedNodes bool
	ignoreDuplicatedEdges bool
	skipSelfLoops         bool
	rejectSelfLoops       bool
	numericNodeIDs        bool
	numericNodeTypeIDs    bool
	numericEdgeTypeIDs    bool
	name                  string
	untypedNodeLabel      string
	untypedEdgeLabel      string
}

func newConfig(opts ...Option) *config {
	cfg := &config{
		name:             "graph",
		untypedNodeLabel: "__untyped_node__",
		untypedEdgeLabel: "__untyped_edge__",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithDirected sets the graph's directedness. Default false (undirected).
func WithDirected(directed bool) Option {
	return func(cfg *config) { cfg.directed = directed }
}

// WithIgnoreDuplicatedNodes makes a repeated node name keep its first
// occurrence instead of failing the build.
func WithIgnoreDuplicatedNodes() Option {
	return func(cfg *config) { cfg.ignoreDuplicatedNodes = true }
}

// WithIgnoreDuplicatedEdges makes a repeated (src,dst,edge_type) triple keep
// its first occurrence instead of failing the build.
func WithIgnoreDuplicatedEdges() Option {
	return func(cfg *config) { cfg.ignoreDuplicatedEdges = true }
}

// WithSkipSelfLoops drops src==dst edge records instead of storing them.
func WithSkipSelfLoops() Option {
	return func(cfg *config) { cfg.skipSelfLoops = true }
}

// WithRejectSelfLoops fails the build on the first src==dst edge record
// instead of storing (or, with WithSkipSelfLoops, dropping) it.
func WithRejectSelfLoops() Option {
	return func(cfg *config) { cfg.rejectSelfLoops = true }
}

// WithNumericNodeIDs asserts every node name is a decimal integer; the node
// id equals the parsed value rather than insertion order.
func WithNumericNodeIDs() Option {
	return func(cfg *config) { cfg.numericNodeIDs = true }
}

// WithNumericNodeTypeIDs is the WithNumericNodeIDs analogue for node-type
// names.
func WithNumericNodeTypeIDs() Option {
	return func(cfg *config) { cfg.numericNodeTypeIDs = true }
}

// WithNumericEdgeTypeIDs is the WithNumericNodeIDs analogue for edge-type
// names.
func WithNumericEdgeTypeIDs() Option {
	return func(cfg *config) { cfg.numericEdgeTypeIDs = true }
}

// WithName sets the graph's human-readable name. Ignored if name is empty.
func WithName(name string) Option {
	return func(cfg *config) {
		if name != "" {
			cfg.name = name
		}
	}
}
