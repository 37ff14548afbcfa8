// SPDX-License-Identifier: MIT
//
// File: kruskal.go
// Role: Kruskal spanning forest - sequential, deterministic given its input
// edge order, with an optional shuffled / type-avoiding order.
package connectivity

import (
	"fmt"

	"github.com/katalvlaran/embedgraph/graph"
	"github.com/katalvlaran/embedgraph/internal/xrand"
)

// KruskalResult is the output of Kruskal.
type KruskalResult struct {
	// TreeEdges holds one representative edge id per spanning-forest edge.
	TreeEdges []graph.EdgeID

	// ComponentOf maps each node id to a compact component id.
	ComponentOf []int

	NumComponents    int
	MinComponentSize int
	MaxComponentSize int
}

// Kruskal computes a spanning forest over g's undirected edges. Self-loops
// are ignored; singleton nodes end up in their own size-1 component.
func Kruskal(g *graph.Graph, opts ...KruskalOption) (*KruskalResult, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.Directed() {
		return nil, fmt.Errorf("connectivity.Kruskal: %w", ErrDirectedGraph)
	}

	cfg := newKruskalConfig(opts...)

	edges := canonicalEdges(g)
	if cfg.shuffle {
		edges = orderForShuffle(edges, g, cfg)
	}

	uf := newUnionFind(g.NumNodes())
	treeEdges := make([]graph.EdgeID, 0, g.NumNodes())
	for _, e := range edges {
		u, v, err := g.EdgeEndpoints(e)
		if err != nil {
			return nil, fmt.Errorf("connectivity.Kruskal: %w", err)
		}
		if uf.union(int(u), int(v)) {
			treeEdges = append(treeEdges, e)
		}
	}

	componentOf, numComponents, minSize, maxSize := uf.finalize()

	return &KruskalResult{
		TreeEdges:        treeEdges,
		ComponentOf:      componentOf,
		NumComponents:    numComponents,
		MinComponentSize: minSize,
		MaxComponentSize: maxSize,
	}, nil
}

// canonicalEdges returns the id of every stored edge (u,v) with u<v,
// skipping self-loops and the mirror direction (undirected graphs store
// both). Parallel edges of a multigraph each keep their own entry.
func canonicalEdges(g *graph.Graph) []graph.EdgeID {
	out := make([]graph.EdgeID, 0, g.NumEdges()/2+1)
	for e := 0; e < g.NumEdges(); e++ {
		u, v, err := g.EdgeEndpoints(graph.EdgeID(e))
		if err != nil || u >= v {
			continue
		}
		out = append(out, graph.EdgeID(e))
	}

	return out
}

// orderForShuffle splits edges into "wanted" (not an unwanted edge type) and
// "unwanted" phases, shuffling each independently and deterministically, so
// the union-find pass consumes every wanted edge before any unwanted one.
func orderForShuffle(edges []graph.EdgeID, g *graph.Graph, cfg *kruskalConfig) []graph.EdgeID {
	var wanted, unwanted []graph.EdgeID
	if len(cfg.unwantedEdgeTypes) == 0 {
		wanted = append([]graph.EdgeID(nil), edges...)
	} else {
		for _, e := range edges {
			if et, ok := g.EdgeType(e); ok {
				if _, bad := cfg.unwantedEdgeTypes[et]; bad {
					unwanted = append(unwanted, e)
					continue
				}
			}
			wanted = append(wanted, e)
		}
	}

	state := cfg.randomState
	state = shuffleInPlace(wanted, state)
	_ = shuffleInPlace(unwanted, state)

	return append(wanted, unwanted...)
}

// shuffleInPlace runs a deterministic Fisher-Yates shuffle driven by the
// xrand stream, returning the advanced state.
func shuffleInPlace(s []graph.EdgeID, state uint64) uint64 {
	for i := len(s) - 1; i > 0; i-- {
		state = xrand.Next(state)
		hiHalf, _ := xrand.SplitHalves(state)
		j := int(xrand.Lemire(hiHalf, uint32(i+1)))
		s[i], s[j] = s[j], s[i]
	}

	return state
}
