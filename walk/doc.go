// Package walk implements the node2vec-style biased random walk sampler
// over an immutable graph.Graph: a per-step transition engine plus the
// parallel driver that orchestrates whole walk batches.
//
// Walks are produced by Generate, which validates parameters, resolves a
// starting-node set (Complete or Random mode), and fans the requested
// quantity x iterations walks out across goroutines with
// golang.org/x/sync/errgroup as an error-propagating pool. Each
// walk's first step is first-order (destination-only weighting); every
// subsequent step is second-order, applying the node2vec p/q correction by
// merging the candidate destination slice against the previous node's
// neighbour set - both already sorted ascending by the CSR layout, so the
// merge is a single linear pass with no extra allocation for sorting.
package walk
