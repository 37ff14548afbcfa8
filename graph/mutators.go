// SPDX-License-Identifier: MIT
//
// File: mutators.go
// Role: The three opt-in, bulk, single-threaded mutators permitted on an
// otherwise-immutable Graph. None of these may run concurrently with a
// reader; callers serialise that externally.
package graph

import "github.com/katalvlaran/embedgraph/vocabulary"

// FastWalkMode selects which optional acceleration column EnableFastWalk
// materialises. At most one of {full destinations, cached destinations} may
// be authoritative at a time.
type FastWalkMode int

const (
	// FastWalkFull materialises the complete destinations column, aligned
	// with edges, so every Destination lookup is O(1) without a cache.
	FastWalkFull FastWalkMode = iota

	// FastWalkCached materialises outbounds (always) plus a
	// cachedDestinations map covering only the highest-degree CacheFraction
	// of sources, trading memory for coverage of the hottest walk starts.
	FastWalkCached
)

// FastWalkConfig parametrises EnableFastWalk.
type FastWalkConfig struct {
	Mode FastWalkMode

	// CacheFraction is required, and must lie in the open interval (0,1),
	// when Mode == FastWalkCached; ignored otherwise.
	CacheFraction float64
}

// EnableFastWalk materialises outbounds plus one of {full destinations,
// cached destinations} per cfg. It is an O(E) (full) or O(E + k log k)
// (cached, k = selected sources) bulk operation and must not be called
// while any reader holds a reference into destinations/outbounds/
// cachedDestinations from a prior EnableFastWalk call.
func (g *Graph) EnableFastWalk(cfg FastWalkConfig) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if cfg.Mode == FastWalkCached && g.destinations != nil {
		return ErrFastWalkConflict
	}
	if cfg.Mode == FastWalkFull && g.cachedDestinations != nil {
		return ErrFastWalkConflict
	}
	if cfg.Mode == FastWalkCached && (cfg.CacheFraction <= 0 || cfg.CacheFraction >= 1) {
		return ErrInvalidCacheFraction
	}

	outbounds := g.buildOutboundsLocked()
	g.outbounds = outbounds

	switch cfg.Mode {
	case FastWalkFull:
		destinations := make([]NodeID, len(g.edges))
		for i, key := range g.edges {
			_, dst := g.DecodeEdge(key)
			destinations[i] = dst
		}
		g.destinations = destinations
		g.cachedDestinations = nil
	case FastWalkCached:
		g.destinations = nil
		g.cachedDestinations = g.buildCacheLocked(outbounds, cfg.CacheFraction)
	}

	return nil
}

// DisableFastWalk clears all three acceleration columns, reverting to
// binary-search range lookups and on-the-fly edge decoding.
func (g *Graph) DisableFastWalk() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.destinations = nil
	g.outbounds = nil
	g.cachedDestinations = nil
}

// buildOutboundsLocked scans the sorted edges once and derives, for every
// source s, the exclusive upper bound on edge ids whose source is s.
// Caller must hold g.mu.
func (g *Graph) buildOutboundsLocked() []EdgeID {
	n := g.NumNodes()
	outbounds := make([]EdgeID, n)
	var idx int
	for src := 0; src < n; src++ {
		upper := uint64(src+1) << g.b
		for idx < len(g.edges) && g.edges[idx] < upper {
			idx++
		}
		outbounds[src] = EdgeID(idx)
	}

	return outbounds
}

// buildCacheLocked selects the floor(fraction*len(uniqueSources)) (at least
// one) highest degree sources (ties broken by ascending NodeID, for determinism) and
// pre-extracts their destination slices.
func (g *Graph) buildCacheLocked(outbounds []EdgeID, fraction float64) map[NodeID][]NodeID {
	sources := g.uniqueSources
	if len(sources) == 0 {
		return map[NodeID][]NodeID{}
	}
	k := int(fraction * float64(len(sources)))
	if k < 1 {
		k = 1
	}
	if k > len(sources) {
		k = len(sources)
	}

	degreeOf := func(s NodeID) uint64 {
		var lo EdgeID
		if s > 0 {
			lo = outbounds[s-1]
		}

		return uint64(outbounds[s] - lo)
	}

	ranked := make([]NodeID, len(sources))
	copy(ranked, sources)
	sortByDegreeDesc(ranked, degreeOf)

	cache := make(map[NodeID][]NodeID, k)
	for _, s := range ranked[:k] {
		var lo EdgeID
		if s > 0 {
			lo = outbounds[s-1]
		}
		hi := outbounds[s]
		slice := make([]NodeID, 0, hi-lo)
		for e := lo; e < hi; e++ {
			_, dst := g.DecodeEdge(g.edges[e])
			slice = append(slice, dst)
		}
		cache[s] = slice
	}

	return cache
}

// SetAllNodeTypes replaces the node-type vocabulary with a singleton
// assigning label to every node.
func (g *Graph) SetAllNodeTypes(label string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	lv := vocabulary.NewLabeled(false)
	if err := lv.SetAll(label, g.NumNodes()); err != nil {
		return err
	}
	g.nodeTypes = lv

	return nil
}

// SetAllEdgeTypes replaces the edge-type vocabulary with a singleton
// assigning label to every edge.
func (g *Graph) SetAllEdgeTypes(label string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	lv := vocabulary.NewLabeled(false)
	if err := lv.SetAll(label, g.NumEdges()); err != nil {
		return err
	}
	g.edgeTypes = lv

	return nil
}
