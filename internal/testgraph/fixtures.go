// SPDX-License-Identifier: MIT
package testgraph

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/embedgraph/graph"
	"github.com/katalvlaran/embedgraph/graphbuilder"
)

func edgeSeq(records []graphbuilder.EdgeRecord) iter.Seq[graphbuilder.EdgeRecordResult] {
	return func(yield func(graphbuilder.EdgeRecordResult) bool) {
		for _, r := range records {
			if !yield(graphbuilder.EdgeRecordResult{Record: r}) {
				return
			}
		}
	}
}

// PathABCD builds the smallest interesting path graph: nodes {A,B,C,D},
// undirected edges A-B, B-C, C-D. |E|=6 after mirroring, degrees
// [1,2,2,1].
func PathABCD() (*graph.Graph, error) {
	edges := []graphbuilder.EdgeRecord{
		{Src: "A", Dst: "B"},
		{Src: "B", Dst: "C"},
		{Src: "C", Dst: "D"},
	}

	return graphbuilder.Build(edgeSeq(edges), nil, graphbuilder.WithName("s1"))
}

// TypedMultigraph builds a two-node multigraph: nodes {A,B} joined by two
// parallel edges carrying distinct edge types and weights.
func TypedMultigraph() (*graph.Graph, error) {
	edges := []graphbuilder.EdgeRecord{
		{Src: "A", Dst: "B", EdgeType: "x", HasEdgeType: true, Weight: 1.0, HasWeight: true},
		{Src: "A", Dst: "B", EdgeType: "y", HasEdgeType: true, Weight: 2.0, HasWeight: true},
	}

	return graphbuilder.Build(edgeSeq(edges), nil, graphbuilder.WithName("s3"))
}

// SelfLoopPair builds nodes {A,B} with a self-loop on A plus an A-B edge,
// self-loops retained.
func SelfLoopPair() (*graph.Graph, error) {
	edges := []graphbuilder.EdgeRecord{
		{Src: "A", Dst: "A"},
		{Src: "A", Dst: "B"},
	}

	return graphbuilder.Build(edgeSeq(edges), nil, graphbuilder.WithName("s4"))
}

// PathGraph builds an undirected path graph over n nodes named
// "n0".."n(n-1)", a reusable connectivity/walk test shape.
func PathGraph(n int) (*graph.Graph, error) {
	if n < 2 {
		return nil, fmt.Errorf("testgraph.PathGraph: n must be >= 2, got %d", n)
	}
	edges := make([]graphbuilder.EdgeRecord, 0, n-1)
	for i := 0; i < n-1; i++ {
		edges = append(edges, graphbuilder.EdgeRecord{
			Src: nodeName(i),
			Dst: nodeName(i + 1),
		})
	}

	return graphbuilder.Build(edgeSeq(edges), nil, graphbuilder.WithName("path"))
}

// CompleteGraph builds an undirected complete graph over n nodes; at n=3
// every pair is already an edge, so no link-prediction negative exists.
func CompleteGraph(n int) (*graph.Graph, error) {
	if n < 2 {
		return nil, fmt.Errorf("testgraph.CompleteGraph: n must be >= 2, got %d", n)
	}
	var edges []graphbuilder.EdgeRecord
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, graphbuilder.EdgeRecord{Src: nodeName(i), Dst: nodeName(j)})
		}
	}

	return graphbuilder.Build(edgeSeq(edges), nil, graphbuilder.WithName("complete"))
}

func nodeName(i int) string {
	return fmt.Sprintf("n%d", i)
}
