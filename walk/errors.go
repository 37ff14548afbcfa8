// SPDX-License-Identifier: MIT
package walk

import "errors"

// Sentinel errors for the walk package.
var (
	// ErrNilGraph indicates Generate was called with a nil graph.
	ErrNilGraph = errors.New("walk: graph is nil")

	// ErrDirectedGraph indicates the driver refused a directed graph;
	// directed walks are out of scope for this core.
	ErrDirectedGraph = errors.New("walk: directed graphs are not supported")

	// ErrInvalidLength indicates length < 2.
	ErrInvalidLength = errors.New("walk: length must be >= 2")

	// ErrInvalidIterations indicates iterations < 1.
	ErrInvalidIterations = errors.New("walk: iterations must be >= 1")

	// ErrInvalidMaxNeighbours indicates max_neighbours was set to <= 0.
	ErrInvalidMaxNeighbours = errors.New("walk: max neighbours must be > 0 when set")

	// ErrInvalidWeight indicates a non-positive or non-finite bias weight.
	ErrInvalidWeight = errors.New("walk: bias weight must be finite and positive")

	// ErrNoStartingNodes indicates the graph has no unique sources to start
	// walks from.
	ErrNoStartingNodes = errors.New("walk: graph has no unique sources to start from")

	// ErrTrapNode indicates a walk reached a node with no outgoing edges;
	// the builder is expected to guarantee non-trap starts where required,
	// so this surfaces as a hard failure rather than a silent truncation.
	ErrTrapNode = errors.New("walk: encountered a node with no outgoing edges")
)
