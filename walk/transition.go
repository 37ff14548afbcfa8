// SPDX-License-Identifier: MIT
//
// File: transition.go
// Role: per-step biased candidate weighting and categorical sampling, plus
// the first-order fast path.
package walk

import (
	"fmt"

	"github.com/katalvlaran/embedgraph/graph"
	"github.com/katalvlaran/embedgraph/internal/xrand"
)

// singleWalk produces one walk of cfg.length node ids starting at start,
// using state as the initial xorshift64 stream state. The first transition
// is first-order; every following transition is second-order.
func singleWalk(g *graph.Graph, cfg *config, start graph.NodeID, state uint64) ([]graph.NodeID, error) {
	nodes := make([]graph.NodeID, cfg.length)
	nodes[0] = start
	if cfg.length == 1 {
		return nodes, nil
	}

	firstEdge, state, err := weightedStep(g, cfg, start, false, 0, 0, state)
	if err != nil {
		return nil, err
	}
	dst, err := g.Destination(firstEdge)
	if err != nil {
		return nil, err
	}
	nodes[1] = dst

	prevSrc := start
	prevEdge := firstEdge
	for i := 2; i < cfg.length; i++ {
		current := nodes[i-1]

		edge, nextState, serr := weightedStep(g, cfg, current, true, prevSrc, prevEdge, state)
		if serr != nil {
			return nil, serr
		}
		state = nextState

		next, derr := g.Destination(edge)
		if derr != nil {
			return nil, derr
		}
		nodes[i] = next
		prevSrc = current
		prevEdge = edge
	}

	return nodes, nil
}

// weightedStep picks one outgoing edge id from currentNode, applying bias
// weights when secondOrder is set (prevSrc/prevEdge supply the context the
// p/q correction and change-edge-type bias need). Returns the chosen edge id
// and the advanced PRNG state.
func weightedStep(
	g *graph.Graph,
	cfg *config,
	currentNode graph.NodeID,
	secondOrder bool,
	prevSrc graph.NodeID,
	prevEdge graph.EdgeID,
	state uint64,
) (graph.EdgeID, uint64, error) {
	lo, hi, err := g.OutboundRange(currentNode)
	if err != nil {
		return 0, state, fmt.Errorf("walk: %w", err)
	}
	if hi <= lo {
		return 0, state, fmt.Errorf("%w: node %d", ErrTrapNode, currentNode)
	}

	edges, state := candidateEdges(state, lo, hi, cfg.maxNeighbours, cfg.hasMaxNeighbours)

	// First-order fast path: an unweighted graph with every bias at 1
	// samples uniformly over the candidate set, skipping weight-vector
	// construction entirely.
	if !g.HasWeights() && cfg.weights.isUnbiased() {
		state = xrand.Next(state)
		hiHalf, _ := xrand.SplitHalves(state)
		idx := xrand.Lemire(hiHalf, uint32(len(edges)))

		return edges[idx], state, nil
	}

	var prevDestinations []graph.NodeID
	var incomingType graph.EdgeTypeID
	var hasIncomingType bool
	if secondOrder {
		prevDestinations, err = outboundDestinations(g, prevSrc)
		if err != nil {
			return 0, state, err
		}
		incomingType, hasIncomingType = g.EdgeType(prevEdge)
	}
	currentType, hasCurrentType := g.NodeType(currentNode)

	weights := make([]float64, len(edges))
	var total float64
	mergePos := 0
	for i, e := range edges {
		wv := 1.0
		if wt, ok := g.Weight(e); ok {
			wv = float64(wt)
		}

		dst, derr := g.Destination(e)
		if derr != nil {
			return 0, state, derr
		}

		if cfg.weights.ChangeNodeTypeWeight != 1 {
			if dstType, ok := g.NodeType(dst); ok && hasCurrentType && dstType == currentType {
				wv /= cfg.weights.ChangeNodeTypeWeight
			}
		}

		if secondOrder {
			if cfg.weights.ChangeEdgeTypeWeight != 1 {
				if et, ok := g.EdgeType(e); ok && hasIncomingType && et == incomingType {
					wv /= cfg.weights.ChangeEdgeTypeWeight
				}
			}

			// Merge dst against the sorted previous-destinations slice in
			// lock-step (both ascending by CSR construction): O(|A|+|B|).
			for mergePos < len(prevDestinations) && prevDestinations[mergePos] < dst {
				mergePos++
			}
			inPrev := mergePos < len(prevDestinations) && prevDestinations[mergePos] == dst

			switch {
			case dst == prevSrc || dst == currentNode:
				// Returning to the previous node, or looping back onto the
				// current one, both count as a "return" move on an
				// undirected graph.
				wv *= cfg.weights.ReturnWeight
			case !inPrev:
				wv *= cfg.weights.ExploreWeight
			}
		}

		weights[i] = wv
		total += wv
	}

	if total <= 0 {
		return 0, state, fmt.Errorf("%w: node %d", ErrTrapNode, currentNode)
	}

	state = xrand.Next(state)
	hiHalf, _ := xrand.SplitHalves(state)
	draw := (float64(hiHalf) / 4294967296.0) * total
	var running float64
	for i, wv := range weights {
		running += wv
		if draw < running {
			return edges[i], state, nil
		}
	}

	return edges[len(edges)-1], state, nil
}

// candidateEdges returns the candidate edge-id set for [lo,hi), subsampled
// to maxNeighbours distinct ids via a hash-based reservoir when requested
// and the range exceeds it.
func candidateEdges(state uint64, lo, hi graph.EdgeID, maxNeighbours int, hasMax bool) ([]graph.EdgeID, uint64) {
	if hasMax && int(hi-lo) > maxNeighbours {
		state = xrand.Next(state)
		picked := xrand.KDistinct(state, uint64(lo), uint64(hi), maxNeighbours)
		edges := make([]graph.EdgeID, len(picked))
		for i, p := range picked {
			edges[i] = graph.EdgeID(p)
		}

		return edges, state
	}

	edges := make([]graph.EdgeID, 0, hi-lo)
	for e := lo; e < hi; e++ {
		edges = append(edges, e)
	}

	return edges, state
}

// outboundDestinations decodes the full, already-sorted-ascending
// destination slice for src's outbound range.
func outboundDestinations(g *graph.Graph, src graph.NodeID) ([]graph.NodeID, error) {
	lo, hi, err := g.OutboundRange(src)
	if err != nil {
		return nil, fmt.Errorf("walk: %w", err)
	}

	out := make([]graph.NodeID, 0, hi-lo)
	for e := lo; e < hi; e++ {
		dst, derr := g.Destination(e)
		if derr != nil {
			return nil, derr
		}
		out = append(out, dst)
	}

	return out, nil
}
