// SPDX-License-Identifier: MIT
package graph

import "errors"

// Sentinel errors for the graph package. Callers branch with errors.Is;
// these are never wrapped with formatted strings at the definition site -
// call sites attach context with fmt.Errorf("graph.Func: %w", err).
var (
	// ErrEmptyGraph indicates an operation that requires at least one node
	// or edge was attempted on an empty Graph.
	ErrEmptyGraph = errors.New("graph: empty graph")

	// ErrNodeOutOfRange indicates a NodeID beyond [0, NumNodes) was used.
	ErrNodeOutOfRange = errors.New("graph: node id out of range")

	// ErrEdgeOutOfRange indicates an EdgeID beyond [0, NumEdges) was used.
	ErrEdgeOutOfRange = errors.New("graph: edge id out of range")

	// ErrFastWalkConflict: destinations and cachedDestinations must never
	// both be authoritative for the same query path; enabling fast walk
	// while a cache already exists, or vice versa, without first disabling
	// the other is rejected.
	ErrFastWalkConflict = errors.New("graph: destinations and cached destinations cannot both be enabled")

	// ErrInvalidCacheFraction indicates a fast-walk cache fraction outside
	// the open interval (0,1).
	ErrInvalidCacheFraction = errors.New("graph: cache fraction must be in (0,1)")
)
