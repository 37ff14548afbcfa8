// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Encode/decode, range lookups, and column accessors - the read path
// every other package in this module drives.
// Complexity: encode/decode O(1); OutboundRange O(1) with fast-walk enabled,
// else O(log E) via binary search over the sorted edges slice.
package graph

import (
	"sort"

	"github.com/katalvlaran/embedgraph/vocabulary"
)

// EncodeEdge packs (src, dst) into the sorted key used by edges:
// key = src*2^b + dst.
func (g *Graph) EncodeEdge(src, dst NodeID) uint64 {
	return (uint64(src) << g.b) | uint64(dst)
}

// DecodeEdge unpacks a key produced by EncodeEdge back into (src, dst).
func (g *Graph) DecodeEdge(key uint64) (src, dst NodeID) {
	mask := uint64(1)<<g.b - 1

	return NodeID(key >> g.b), NodeID(key & mask)
}

// EdgeEndpoints decodes the (src, dst) pair stored at edge id e.
func (g *Graph) EdgeEndpoints(e EdgeID) (src, dst NodeID, err error) {
	if int(e) < 0 || int(e) >= len(g.edges) {
		return 0, 0, ErrEdgeOutOfRange
	}
	src, dst = g.DecodeEdge(g.edges[e])

	return src, dst, nil
}

// OutboundRange returns the half-open edge id range [lo, hi) whose source is
// src: edges_with_src(s) = [outbounds[s-1], outbounds[s]), outbounds[-1]=0.
//
// With fast-walk enabled this is an O(1) slice lookup; otherwise it is
// recovered with two binary searches over the sorted edges keys.
func (g *Graph) OutboundRange(src NodeID) (lo, hi EdgeID, err error) {
	if int(src) < 0 || int(src) >= g.NumNodes() {
		return 0, 0, ErrNodeOutOfRange
	}

	g.mu.RLock()
	outbounds := g.outbounds
	g.mu.RUnlock()

	if outbounds != nil {
		hi = outbounds[src]
		if src > 0 {
			lo = outbounds[src-1]
		}

		return lo, hi, nil
	}

	n := len(g.edges)
	loKey := uint64(src) << g.b
	hiKey := (uint64(src) + 1) << g.b
	lo = EdgeID(sort.Search(n, func(i int) bool { return g.edges[i] >= loKey }))
	hi = EdgeID(sort.Search(n, func(i int) bool { return g.edges[i] >= hiKey }))

	return lo, hi, nil
}

// Destination resolves the destination node of edge e, preferring the
// explicit destinations column, then any cachedDestinations entry covering
// e's source, and finally decoding edges[e] - in that priority order.
func (g *Graph) Destination(e EdgeID) (NodeID, error) {
	if int(e) < 0 || int(e) >= len(g.edges) {
		return 0, ErrEdgeOutOfRange
	}

	g.mu.RLock()
	destinations := g.destinations
	cached := g.cachedDestinations
	outbounds := g.outbounds
	g.mu.RUnlock()

	if destinations != nil {
		return destinations[e], nil
	}

	src, dst := g.DecodeEdge(g.edges[e])
	if cached != nil && outbounds != nil {
		if slice, ok := cached[src]; ok {
			var lo EdgeID
			if src > 0 {
				lo = outbounds[src-1]
			}
			if idx := int(e - lo); idx >= 0 && idx < len(slice) {
				return slice[idx], nil
			}
		}
	}

	return dst, nil
}

// CachedDestinationSlice returns the pre-extracted destination slice for src
// if src is one of the cached central sources, and ok=false otherwise.
func (g *Graph) CachedDestinationSlice(src NodeID) (dst []NodeID, ok bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.cachedDestinations == nil {
		return nil, false
	}
	dst, ok = g.cachedDestinations[src]

	return dst, ok
}

// Weight returns the weight of edge e and true, or (0, false) if the graph
// carries no weights.
func (g *Graph) Weight(e EdgeID) (Weight, bool) {
	if g.weights == nil || int(e) < 0 || int(e) >= len(g.weights) {
		return 0, false
	}

	return g.weights[e], true
}

// EdgeType returns the edge-type id of edge e and true, or (0, false) when
// the graph has no edge types.
func (g *Graph) EdgeType(e EdgeID) (EdgeTypeID, bool) {
	if g.edgeTypes == nil {
		return 0, false
	}
	id, err := g.edgeTypes.At(int(e))
	if err != nil {
		return 0, false
	}

	return id, true
}

// NodeType returns the node-type id of node n and true, or (0, false) when
// the graph has no node types.
func (g *Graph) NodeType(n NodeID) (NodeTypeID, bool) {
	if g.nodeTypes == nil {
		return 0, false
	}
	id, err := g.nodeTypes.At(int(n))
	if err != nil {
		return 0, false
	}

	return id, true
}

// NodeByName returns the id assigned to name, or false if unknown.
func (g *Graph) NodeByName(name string) (NodeID, bool) {
	id, ok := g.nodes.ID(name)

	return NodeID(id), ok
}

// NodeName resolves id back to its external name.
func (g *Graph) NodeName(id NodeID) (string, error) {
	return g.nodes.Name(vocabulary.ID(id))
}

// Degree returns the out-degree of node n (for undirected graphs this also
// equals the total incident-edge count, since mirrored edges are stored
// explicitly).
func (g *Graph) Degree(n NodeID) (uint64, error) {
	lo, hi, err := g.OutboundRange(n)
	if err != nil {
		return 0, err
	}

	return uint64(hi - lo), nil
}

// HasEdge reports whether (src, dst) is present, by binary-searching src's
// outbound range for the encoded key - the batch link-prediction sampler's
// false-negative check drives this.
func (g *Graph) HasEdge(src, dst NodeID) (bool, error) {
	lo, hi, err := g.OutboundRange(src)
	if err != nil {
		return false, err
	}

	target := g.EncodeEdge(src, dst)
	n := int(hi - lo)
	idx := sort.Search(n, func(i int) bool { return g.edges[int(lo)+i] >= target })

	return idx < n && g.edges[int(lo)+idx] == target, nil
}
