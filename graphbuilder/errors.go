// SPDX-License-Identifier: MIT
package graphbuilder

import "errors"

// Sentinel errors for the graphbuilder package. Callers branch with
// errors.Is; context is attached with fmt.Errorf("graphbuilder.Build: %w",
// err) at the API boundary only.
var (
	// --- BuilderInputError ---

	// ErrRecordFailed propagates a per-record parse failure from the input
	// iterator (the iterator's own error, wrapped).
	ErrRecordFailed = errors.New("graphbuilder: input record failed to parse")

	// ErrUnknownNode indicates an edge referenced a node name absent from
	// an explicitly supplied node stream.
	ErrUnknownNode = errors.New("graphbuilder: edge references unknown node")

	// ErrDuplicateNode indicates a node name repeated in the node stream
	// without WithIgnoreDuplicatedNodes.
	ErrDuplicateNode = errors.New("graphbuilder: duplicate node")

	// ErrDuplicateEdge indicates an (src,dst,edge_type) triple repeated
	// without WithIgnoreDuplicatedEdges.
	ErrDuplicateEdge = errors.New("graphbuilder: duplicate edge")

	// ErrSelfLoopForbidden indicates a src==dst edge record arrived while
	// WithRejectSelfLoops was set.
	ErrSelfLoopForbidden = errors.New("graphbuilder: self-loop not permitted")

	// ErrBadWeight indicates a non-finite or non-positive weight.
	ErrBadWeight = errors.New("graphbuilder: weight must be finite and positive")

	// ErrInconsistentNumericID indicates numeric-id mode was requested but
	// a name failed to parse as a decimal integer.
	ErrInconsistentNumericID = errors.New("graphbuilder: name is not a valid numeric id")

	// ErrSparseNumericIDs indicates numeric node ids were requested but the
	// resulting id space is not dense in [0, NumNodes) - CSR requires
	// dense ids, so gaps are rejected rather than silently renumbered.
	ErrSparseNumericIDs = errors.New("graphbuilder: numeric node ids are not dense")

	// --- InvariantError ---

	// ErrEmptyGraph indicates the record streams produced zero nodes.
	ErrEmptyGraph = errors.New("graphbuilder: resulting graph is empty")
)
