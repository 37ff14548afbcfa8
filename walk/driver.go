// SPDX-License-Identifier: MIT
//
// File: driver.go
// Role: parameter validation, starting-set resolution, and the parallel
// indexed fan-out over individual walks.
package walk

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/katalvlaran/embedgraph/graph"
	"github.com/katalvlaran/embedgraph/internal/xrand"
)

// Generate produces quantity x iterations walks (quantity = len(starting
// nodes) in Complete mode) as an indexed slice: out[i] is the walk seeded
// from starting node i/iterations, repetition i%iterations. Walks are
// computed in parallel via an errgroup.Group pool that propagates the first
// error.
func Generate(g *graph.Graph, opts ...Option) ([][]graph.NodeID, error) {
	cfg := newConfig(opts...)

	if g == nil {
		return nil, ErrNilGraph
	}
	if g.Directed() {
		return nil, fmt.Errorf("walk.Generate: %w", ErrDirectedGraph)
	}
	if cfg.length < 2 {
		return nil, fmt.Errorf("walk.Generate: %w: length=%d", ErrInvalidLength, cfg.length)
	}
	if cfg.iterations < 1 {
		return nil, fmt.Errorf("walk.Generate: %w: iterations=%d", ErrInvalidIterations, cfg.iterations)
	}
	if cfg.hasMaxNeighbours && cfg.maxNeighbours <= 0 {
		return nil, fmt.Errorf("walk.Generate: %w", ErrInvalidMaxNeighbours)
	}
	if err := cfg.weights.validate(); err != nil {
		return nil, fmt.Errorf("walk.Generate: %w", err)
	}

	starts, err := startingNodes(g, cfg)
	if err != nil {
		return nil, fmt.Errorf("walk.Generate: %w", err)
	}
	if len(starts) == 0 {
		return nil, fmt.Errorf("walk.Generate: %w", ErrNoStartingNodes)
	}

	total := len(starts) * cfg.iterations
	out := make([][]graph.NodeID, total)

	// Bound in-flight walk computations to GOMAXPROCS via a weighted
	// semaphore instead of spawning one goroutine per walk outright:
	// quantity*iterations routinely exceeds available cores by orders of
	// magnitude, and an unbounded errgroup fan-out would pay scheduling
	// overhead without added throughput.
	sem := semaphore.NewWeighted(int64(runtime.GOMAXPROCS(0)))
	ctx := context.Background()

	var eg errgroup.Group
	for idx := 0; idx < total; idx++ {
		idx := idx
		if err := sem.Acquire(ctx, 1); err != nil {
			_ = eg.Wait()

			return nil, err
		}
		eg.Go(func() error {
			defer sem.Release(1)

			start := starts[idx/cfg.iterations]
			state := xrand.Seeded(cfg.randomState, idx)

			walked, werr := singleWalk(g, cfg, start, state)
			if werr != nil {
				return fmt.Errorf("walk.Generate: start=%d: %w", start, werr)
			}
			if cfg.denseNodeMapping != nil {
				relabel(walked, cfg.denseNodeMapping)
			}
			out[idx] = walked

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// relabel maps every node id present in mapping to its image, leaving ids
// absent from mapping untouched.
func relabel(walked []graph.NodeID, mapping map[graph.NodeID]graph.NodeID) {
	for i, n := range walked {
		if mapped, ok := mapping[n]; ok {
			walked[i] = mapped
		}
	}
}

// startingNodes resolves the starting-node set per cfg.mode.
func startingNodes(g *graph.Graph, cfg *config) ([]graph.NodeID, error) {
	sources := g.UniqueSources()

	switch cfg.mode {
	case CompleteStart:
		return sources, nil
	case RandomStart:
		if len(sources) == 0 {
			return nil, ErrNoStartingNodes
		}
		picked := make([]graph.NodeID, cfg.quantity)
		for i := range picked {
			state := xrand.Next(cfg.randomState + uint64(i))
			hiHalf, _ := xrand.SplitHalves(state)
			picked[i] = sources[xrand.Lemire(hiHalf, uint32(len(sources)))]
		}

		return picked, nil
	default:
		return sources, nil
	}
}
