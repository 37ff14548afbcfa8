// SPDX-License-Identifier: MIT
package graphbuilder

// EdgeRecord is one already-parsed (src_name, dst_name, edge_type?, weight?)
// tuple from an external record source.
type EdgeRecord struct {
	Src, Dst string

	EdgeType    string
	HasEdgeType bool

	Weight    float32
	HasWeight bool
}

// EdgeRecordResult wraps one EdgeRecord with a per-element parse error, so a
// dirty upstream source can report failures positionally without aborting
// the whole stream.
type EdgeRecordResult struct {
	Record EdgeRecord
	Err    error
}

// NodeRecord is one already-parsed (node_name, node_type?) tuple.
type NodeRecord struct {
	Name string

	NodeType    string
	HasNodeType bool
}

// NodeRecordResult wraps one NodeRecord with a per-element parse error.
type NodeRecordResult struct {
	Record NodeRecord
	Err    error
}
