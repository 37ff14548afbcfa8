// SPDX-License-Identifier: MIT
//
// File: assemble.go
// Role: the single constructor graphbuilder calls once it has produced a
// sorted, deduplicated, mirror-closed edge set. One-shot and deterministic;
// a Graph never exists in a partially assembled state.
package graph

import (
	"math/bits"

	"github.com/google/uuid"

	"github.com/katalvlaran/embedgraph/vocabulary"
)

// BuildInput carries everything graphbuilder has already computed: a sorted
// edges slice, optional aligned weights, optional node/edge type
// vocabularies, and the counters only the builder's single dedup pass can
// derive cheaply (self-loop and uniqueness counts).
//
// New trusts that Edges is sorted and that Weights/EdgeTypes (if non-nil)
// are the same length as Edges - graphbuilder is the only intended caller
// and enforces both before calling New.
type BuildInput struct {
	Directed bool
	Name     string

	Nodes     *vocabulary.Vocabulary
	NodeTypes *vocabulary.LabeledVocabulary // optional, length NumNodes

	Edges     []uint64                      // sorted ascending by encoded key
	Weights   []Weight                      // optional, aligned with Edges
	EdgeTypes *vocabulary.LabeledVocabulary // optional, length len(Edges)

	SelfLoopNumber       uint64
	UniqueSelfLoopNumber uint64
	UniqueEdgesNumber    uint64
}

// New assembles a Graph from BuildInput, deriving b (the destination bit
// width), uniqueSources, and notSingletonNodesNumber by a single O(E) scan.
// Returns ErrEmptyGraph if there are no nodes.
func New(in BuildInput) (*Graph, error) {
	if in.Nodes == nil || in.Nodes.Len() == 0 {
		return nil, ErrEmptyGraph
	}

	n := in.Nodes.Len()
	b := uint(0)
	if n > 1 {
		b = uint(bits.Len(uint(n - 1)))
	}

	g := &Graph{
		directed:             in.Directed,
		name:                 in.Name,
		buildID:              uuid.New(),
		nodes:                in.Nodes,
		b:                    b,
		edges:                in.Edges,
		weights:              in.Weights,
		nodeTypes:            in.NodeTypes,
		edgeTypes:            in.EdgeTypes,
		selfLoopNumber:       in.SelfLoopNumber,
		uniqueSelfLoopNumber: in.UniqueSelfLoopNumber,
		uniqueEdgesNumber:    in.UniqueEdgesNumber,
	}

	touched := make([]bool, n)
	sourceSet := make([]bool, n)
	for _, key := range g.edges {
		src, dst := g.DecodeEdge(key)
		touched[src] = true
		touched[dst] = true
		sourceSet[src] = true
	}

	var notSingleton uint64
	for _, t := range touched {
		if t {
			notSingleton++
		}
	}
	g.notSingletonNodesNumber = notSingleton

	uniqueSources := make([]NodeID, 0, len(g.edges))
	for id, present := range sourceSet {
		if present {
			uniqueSources = append(uniqueSources, NodeID(id))
		}
	}
	g.uniqueSources = uniqueSources // sourceSet iteration order is ascending id already

	return g, nil
}
