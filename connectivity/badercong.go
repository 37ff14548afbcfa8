// SPDX-License-Identifier: MIT
//
// File: badercong.go
// Role: the Bader-Cong parallel spanning arborescence / connected-components
// scan - shared work-stealing stacks, atomic cursors, and a lockless
// write-once parents array. Each parents cell is claimed by exactly one CAS,
// ever; any interleaving of winners produces a valid forest.
package connectivity

import (
	"fmt"
	"math"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/katalvlaran/embedgraph/graph"
)

// notPresent is the parents-array sentinel for "not yet claimed".
const notPresent int64 = -1

// BaderCongResult is the output of BaderCong.
type BaderCongResult struct {
	// Parents holds, for every node, the node it was reached from; a root
	// (including every singleton) has Parents[n] == n.
	Parents []graph.NodeID

	// ComponentOf maps each node id to a compact component id, assigned in
	// the order its root was first claimed.
	ComponentOf []int

	NumComponents    int
	MinComponentSize int
	MaxComponentSize int

	// TreeEdgeCount is the number of parent-child edges inserted: exactly
	// |V| - NumComponents.
	TreeEdgeCount int

	// WorkersUsed is T, the worker-thread count actually used.
	WorkersUsed int
}

// lockedStack is one of the T-1 shared stacks: a mutex-guarded LIFO of node
// ids that any worker may push to or pop from.
type lockedStack struct {
	mu   sync.Mutex
	data []graph.NodeID
}

func (s *lockedStack) push(n graph.NodeID) {
	s.mu.Lock()
	s.data = append(s.data, n)
	s.mu.Unlock()
}

func (s *lockedStack) pop() (graph.NodeID, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.data) == 0 {
		return 0, false
	}
	last := len(s.data) - 1
	n := s.data[last]
	s.data = s.data[:last]

	return n, true
}

func (s *lockedStack) empty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.data) == 0
}

// BaderCong computes a spanning arborescence / connected-components
// labelling of g's undirected edges using T worker goroutines plus one seed
// goroutine, shared work-stealing stacks, and a write-once parents array.
// The resulting edge set's size and the component count are deterministic;
// the specific tree shape depends on goroutine scheduling and is not
// reproducible across runs.
func BaderCong(g *graph.Graph, opts ...BaderCongOption) (*BaderCongResult, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.Directed() {
		return nil, fmt.Errorf("connectivity.BaderCong: %w", ErrDirectedGraph)
	}
	n := g.NumNodes()
	if n == 0 {
		return nil, ErrEmptyGraph
	}

	cfg := newBaderCongConfig(opts...)
	workers := cfg.workers
	if workers <= 0 {
		workers = computeWorkerCount(n)
	}
	numStacks := workers - 1
	if numStacks < 1 {
		numStacks = 1
	}

	parents := make([]int64, n)
	for i := range parents {
		parents[i] = notPresent
	}

	stacks := make([]*lockedStack, numStacks)
	for i := range stacks {
		stacks[i] = &lockedStack{}
	}

	var activeNodes atomic.Int64
	var insertedEdges atomic.Int64
	var seedDone atomic.Bool
	seedErr := make(chan error, 1)

	var wg sync.WaitGroup
	wg.Add(1 + workers)

	go runSeed(g, parents, stacks, &activeNodes, &seedDone, seedErr, &wg)

	for w := 0; w < workers; w++ {
		go runWorker(g, w, numStacks, parents, stacks, &activeNodes, &insertedEdges, &seedDone, &wg)
	}

	wg.Wait()
	select {
	case err := <-seedErr:
		if err != nil {
			return nil, fmt.Errorf("connectivity.BaderCong: %w", err)
		}
	default:
	}

	componentOf, numComponents, minSize, maxSize := summarizeParents(parents)

	return &BaderCongResult{
		Parents:          decodeParents(parents),
		ComponentOf:      componentOf,
		NumComponents:    numComponents,
		MinComponentSize: minSize,
		MaxComponentSize: maxSize,
		TreeEdgeCount:    int(insertedEdges.Load()),
		WorkersUsed:      workers,
	}, nil
}

// runSeed scans nodes in order. An unclaimed singleton becomes its own root
// at once; any other unclaimed node is claimed as a fresh root only when the
// system is quiescent (activeNodes == 0), so at most one component is being
// explored at any moment.
func runSeed(
	g *graph.Graph,
	parents []int64,
	stacks []*lockedStack,
	activeNodes *atomic.Int64,
	seedDone *atomic.Bool,
	errOut chan<- error,
	wg *sync.WaitGroup,
) {
	defer wg.Done()
	defer seedDone.Store(true)

	n := len(parents)
	for s := 0; s < n; s++ {
		if atomic.LoadInt64(&parents[s]) != notPresent {
			continue
		}

		deg, err := g.Degree(graph.NodeID(s))
		if err != nil {
			errOut <- err

			return
		}
		if deg == 0 {
			// Singleton: its own root, no tree edge, no worker involvement.
			atomic.CompareAndSwapInt64(&parents[s], notPresent, int64(s))

			continue
		}

		for activeNodes.Load() != 0 {
			runtime.Gosched()
		}
		if atomic.CompareAndSwapInt64(&parents[s], notPresent, int64(s)) {
			activeNodes.Add(1)
			stacks[0].push(graph.NodeID(s))
		}
	}
}

// runWorker round-robins over the shared stacks starting at its own index,
// processing one popped source's neighbours per iteration, until every
// stack is empty and the seed thread has finished.
func runWorker(
	g *graph.Graph,
	w int,
	numStacks int,
	parents []int64,
	stacks []*lockedStack,
	activeNodes *atomic.Int64,
	insertedEdges *atomic.Int64,
	seedDone *atomic.Bool,
	wg *sync.WaitGroup,
) {
	defer wg.Done()

	start := w % numStacks
	for {
		popped := false
		for i := 0; i < numStacks; i++ {
			idx := (start + i) % numStacks
			s, ok := stacks[idx].pop()
			if !ok {
				continue
			}
			popped = true
			processSource(g, s, parents, stacks, numStacks, activeNodes, insertedEdges)

			break
		}
		if popped {
			continue
		}
		if seedDone.Load() && allEmpty(stacks) {
			return
		}
		runtime.Gosched()
	}
}

// processSource claims every unclaimed neighbour of s, pushing each onto
// hash(d) mod numStacks, then releases s's active slot.
func processSource(
	g *graph.Graph,
	s graph.NodeID,
	parents []int64,
	stacks []*lockedStack,
	numStacks int,
	activeNodes *atomic.Int64,
	insertedEdges *atomic.Int64,
) {
	defer activeNodes.Add(-1)

	lo, hi, err := g.OutboundRange(s)
	if err != nil {
		return
	}
	for e := lo; e < hi; e++ {
		d, derr := g.Destination(e)
		if derr != nil {
			continue
		}
		if atomic.CompareAndSwapInt64(&parents[d], notPresent, int64(s)) {
			insertedEdges.Add(1)
			activeNodes.Add(1)
			stacks[hashNode(d)%numStacks].push(d)
		}
	}
}

func allEmpty(stacks []*lockedStack) bool {
	for _, st := range stacks {
		if !st.empty() {
			return false
		}
	}

	return true
}

// hashNode is a small multiplicative hash spreading node ids across the
// shared stacks; any deterministic spread works since correctness does not
// depend on which stack a node lands on.
func hashNode(n graph.NodeID) int {
	h := uint64(n) * 2654435761

	return int(h % (1 << 32))
}

// decodeParents converts the raw int64 parent slots into graph.NodeID. Every
// slot is guaranteed non-negative once BaderCong returns.
func decodeParents(parents []int64) []graph.NodeID {
	out := make([]graph.NodeID, len(parents))
	for i, p := range parents {
		out[i] = graph.NodeID(p)
	}

	return out
}

// summarizeParents walks every node up its parent chain to its root (a self-
// parented node), assigns compact component ids in first-claim order, and
// computes per-component sizes.
func summarizeParents(parents []int64) (componentOf []int, numComponents, minSize, maxSize int) {
	n := len(parents)
	componentOf = make([]int, n)
	rootToComponent := make(map[int64]int)
	var sizes []int
	for i := 0; i < n; i++ {
		root := int64(i)
		for parents[root] != root {
			root = parents[root]
		}
		id, ok := rootToComponent[root]
		if !ok {
			id = len(sizes)
			rootToComponent[root] = id
			sizes = append(sizes, 0)
		}
		sizes[id]++
		componentOf[i] = id
	}
	numComponents = len(sizes)
	if numComponents == 0 {
		return componentOf, 0, 0, 0
	}
	minSize, maxSize = sizes[0], sizes[0]
	for _, sz := range sizes {
		if sz < minSize {
			minSize = sz
		}
		if sz > maxSize {
			maxSize = sz
		}
	}

	return componentOf, numComponents, minSize, maxSize
}

// computeWorkerCount derives T = min(cores, 1+scale(n)),
// scale(n) = 1 + round(1 / (1 + 1e6/(0.8*n))). scale is 1 below about 1.25M
// nodes and 2 from there on, so T is at most 3.
func computeWorkerCount(n int) int {
	cores := runtime.NumCPU()
	scale := 1 + int(math.Round(1/(1+1e6/(0.8*float64(n)))))
	t := 1 + scale
	if t > cores {
		t = cores
	}
	if t < 1 {
		t = 1
	}

	return t
}
