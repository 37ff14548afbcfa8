// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph struct, id types, and read-only accessors. The constructor,
// New, lives in assemble.go and is called by graphbuilder.Build.
package graph

import (
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/embedgraph/vocabulary"
)

// NodeID is a dense index in [0, NumNodes).
type NodeID uint32

// EdgeID is a dense index in [0, NumEdges).
type EdgeID uint64

// NodeTypeID and EdgeTypeID alias vocabulary.ID; type-label spaces are tiny
// (well under 2^16 distinct labels in practice) but share the vocabulary
// machinery, so the alias documents intent at call sites without a second
// id representation.
type NodeTypeID = vocabulary.ID
type EdgeTypeID = vocabulary.ID

// Weight is a strictly positive, finite edge weight.
type Weight float32

// Graph is the immutable CSR-like store described in package doc.go.
//
// Zero value is not usable; construct via graphbuilder.Build, which calls New
// (assemble.go) - New lives in this package to keep field access unexported.
type Graph struct {
	mu sync.RWMutex // guards only the fast-walk / type-relabel mutator fields below

	directed bool
	name     string
	buildID  uuid.UUID

	nodes *vocabulary.Vocabulary

	// b is the number of bits reserved for the destination half of an
	// encoded edge key: b = ceil(log2(NumNodes)).
	b uint

	// edges is sorted ascending by encoded key.
	edges []uint64

	// destinations, outbounds, weights are nil until populated.
	// destinations and weights align with edges by index; outbounds has
	// one entry per node.
	destinations []NodeID
	outbounds    []EdgeID
	weights      []Weight

	nodeTypes *vocabulary.LabeledVocabulary // length NumNodes when present
	edgeTypes *vocabulary.LabeledVocabulary // length NumEdges when present

	cachedDestinations map[NodeID][]NodeID

	uniqueSources []NodeID // sorted, sources with >=1 outgoing edge

	selfLoopNumber          uint64
	uniqueSelfLoopNumber    uint64
	uniqueEdgesNumber       uint64
	notSingletonNodesNumber uint64
}

// NumNodes returns |V|.
func (g *Graph) NumNodes() int { return g.nodes.Len() }

// NumEdges returns |E|.
func (g *Graph) NumEdges() int { return len(g.edges) }

// Directed reports the graph's (fixed, construction-time) directedness.
func (g *Graph) Directed() bool { return g.directed }

// Name returns the graph's human-readable name, set by the builder.
func (g *Graph) Name() string { return g.name }

// BuildID returns the opaque identifier minted for this build, so that two
// graphs built from the same records at different times remain
// distinguishable in logs, reports, and tests.
func (g *Graph) BuildID() uuid.UUID { return g.buildID }

// IsMultigraph reports whether some (src,dst) pair appears more than once,
// i.e. UniqueEdgesNumber != NumEdges.
func (g *Graph) IsMultigraph() bool { return g.uniqueEdgesNumber != uint64(len(g.edges)) }

// HasWeights reports whether edge weights were attached.
func (g *Graph) HasWeights() bool { return g.weights != nil }

// HasNodeTypes reports whether node-type labels were attached.
func (g *Graph) HasNodeTypes() bool { return g.nodeTypes != nil }

// HasEdgeTypes reports whether edge-type labels were attached.
func (g *Graph) HasEdgeTypes() bool { return g.edgeTypes != nil }

// HasFastWalk reports whether the explicit destinations/outbounds columns
// have been materialised (see EnableFastWalk).
func (g *Graph) HasFastWalk() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.destinations != nil && g.outbounds != nil
}

// SelfLoopNumber returns the total count of stored self-loop edge entries. A
// self-loop is stored once, never mirrored, even in an undirected graph.
func (g *Graph) SelfLoopNumber() uint64 { return g.selfLoopNumber }

// UniqueSelfLoopNumber returns the count of distinct self-loop nodes.
func (g *Graph) UniqueSelfLoopNumber() uint64 { return g.uniqueSelfLoopNumber }

// UniqueEdgesNumber returns the count of distinct (src,dst) keys regardless
// of edge type.
func (g *Graph) UniqueEdgesNumber() uint64 { return g.uniqueEdgesNumber }

// NotSingletonNodesNumber returns the count of nodes with at least one
// incident edge.
func (g *Graph) NotSingletonNodesNumber() uint64 { return g.notSingletonNodesNumber }

// UniqueSources returns the sorted slice of node ids with at least one
// outgoing edge. The returned slice must be treated as read-only.
func (g *Graph) UniqueSources() []NodeID { return g.uniqueSources }
