// SPDX-License-Identifier: MIT
package connectivity

import "errors"

var (
	// ErrNilGraph indicates a nil *graph.Graph was passed in.
	ErrNilGraph = errors.New("connectivity: graph is nil")

	// ErrDirectedGraph indicates a directed graph was passed to a routine
	// that only operates on undirected graphs.
	ErrDirectedGraph = errors.New("connectivity: directed graphs are not supported")

	// ErrEmptyGraph indicates |V| == 0.
	ErrEmptyGraph = errors.New("connectivity: graph has no nodes")
)
