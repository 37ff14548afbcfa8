// SPDX-License-Identifier: MIT
//
// File: report.go
// Role: Compute walks every node once to derive degree statistics and
// assembles them alongside the counters graph.Graph already tracks into an
// immutable Report.
package metrics

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/embedgraph/graph"
)

// Report is a read-only snapshot of a graph's shape: size, density, degree
// distribution, and the self-loop / multigraph / singleton counters the
// builder already derives.
type Report struct {
	Name  string
	Nodes int
	Edges int

	// Density is |E| / (|V|*(|V|-1)), 0 when |V| < 2.
	Density float64

	IsMultigraph   bool
	SingletonNodes int

	// SelfLoopRate is SelfLoopNumber / |E|, 0 when |E| == 0.
	SelfLoopRate float64

	DegreeMean   float64
	DegreeMedian float64

	// DegreeMode is the most frequent degree value, ties broken toward the
	// smaller value for determinism.
	DegreeMode uint64
}

// Compute derives a Report from g by scanning every node's degree once
// (O(|V|) with fast-walk enabled, O(|V| log |E|) otherwise via
// graph.Graph.OutboundRange's binary search fallback).
func Compute(g *graph.Graph) (*Report, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	n := g.NumNodes()
	degrees := make([]uint64, n)
	var sum uint64
	for i := 0; i < n; i++ {
		d, err := g.Degree(graph.NodeID(i))
		if err != nil {
			return nil, fmt.Errorf("metrics.Compute: %w", err)
		}
		degrees[i] = d
		sum += d
	}

	r := &Report{
		Name:           g.Name(),
		Nodes:          n,
		Edges:          g.NumEdges(),
		IsMultigraph:   g.IsMultigraph(),
		SingletonNodes: n - int(g.NotSingletonNodesNumber()),
	}

	if n > 1 {
		r.Density = float64(g.NumEdges()) / float64(n*(n-1))
	}
	if g.NumEdges() > 0 {
		r.SelfLoopRate = float64(g.SelfLoopNumber()) / float64(g.NumEdges())
	}
	if n > 0 {
		r.DegreeMean = float64(sum) / float64(n)
		r.DegreeMedian = median(degrees)
		r.DegreeMode = mode(degrees)
	}

	return r, nil
}

// median sorts a copy of degrees and averages the two central values for an
// even-length slice.
func median(degrees []uint64) float64 {
	sorted := append([]uint64(nil), degrees...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return float64(sorted[mid])
	}

	return float64(sorted[mid-1]+sorted[mid]) / 2
}

// mode returns the most frequent value in degrees, the smallest value among
// ties.
func mode(degrees []uint64) uint64 {
	counts := make(map[uint64]int, len(degrees))
	for _, d := range degrees {
		counts[d]++
	}

	best := degrees[0]
	bestCount := 0
	keys := make([]uint64, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	for _, k := range keys {
		if counts[k] > bestCount {
			bestCount = counts[k]
			best = k
		}
	}

	return best
}

// String renders a short, single-line textual summary of every field, matching the
// value-over-side-effecting-log register the rest of this module follows.
func (r *Report) String() string {
	return fmt.Sprintf(
		"graph %q: nodes=%d edges=%d density=%.4f multigraph=%t singletons=%d "+
			"self_loop_rate=%.4f degree(mean=%.2f median=%.1f mode=%d)",
		r.Name, r.Nodes, r.Edges, r.Density, r.IsMultigraph, r.SingletonNodes,
		r.SelfLoopRate, r.DegreeMean, r.DegreeMedian, r.DegreeMode,
	)
}
