// Package graph provides the immutable, compact CSR-like graph store that
// every other package in this module reads: the transition
// engine, the walk driver, the connectivity routines, and the batch
// generators all treat a *Graph as a read-only value once graphbuilder has
// produced it.
//
// Layout
//
// A Graph holds:
//
//   - nodes: a vocabulary.Vocabulary mapping external names to dense
//     NodeIDs in [0, NumNodes).
//   - edges: a sorted slice of uint64 keys, each encoding a (src, dst) pair
//     as src*2^b + dst where b = ceil(log2(NumNodes)). Decoding an edge is
//     O(1) bit arithmetic; the sort order is the canonical layout invariant.
//   - outbounds: for every source s, the exclusive upper bound on edge ids
//     whose source is s. Present once EnableFastWalk has run; otherwise the
//     same range is recovered with a binary search over edges.
//   - destinations, weights, node/edge type vocabularies, cachedDestinations:
//     all optional parallel columns, nil until the builder or a mutator
//     populates them.
//
// Mutability
//
// A Graph is read-only after graphbuilder.Build returns, with three opt-in
// exceptions that mutate it in place and must not run concurrently with any
// reader (the caller's responsibility): EnableFastWalk, DisableFastWalk,
// SetAllNodeTypes/SetAllEdgeTypes. A single mu sync.RWMutex guards only the
// fields those mutators touch, rather than coarsely locking the whole
// struct - reads of the immutable fields (edges, nodes, counters) never
// touch mu at all.
package graph
