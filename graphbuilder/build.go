// SPDX-License-Identifier: MIT
//
// File: build.go
// Role: Build - the single orchestrator turning two record iterators into a
// graph.Graph: ingest, resolve, mirror, sort, dedup, count, assemble.
package graphbuilder

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"sort"

	"github.com/katalvlaran/embedgraph/graph"
	"github.com/katalvlaran/embedgraph/vocabulary"
)

// pendingEdge is one retained edge record (post self-loop filtering),
// carried until NumNodes (and therefore the encoding bit width b) is known.
type pendingEdge struct {
	src, dst graph.NodeID

	hasType    bool
	typeLabel  string
	sortTypeID vocabulary.ID // stable id from a throwaway vocabulary, used only to order/dedup same-pair distinct types

	hasWeight bool
	weight    float32
}

// Build ingests edgeRecords (required) and nodeRecords (optional - pass a
// nil iter.Seq to let edge endpoints implicitly allocate node ids) and
// produces a fully populated, immutable graph.Graph, or a descriptive
// failure.
func Build(
	edgeRecords iter.Seq[EdgeRecordResult],
	nodeRecords iter.Seq[NodeRecordResult],
	opts ...Option,
) (*graph.Graph, error) {
	cfg := newConfig(opts...)

	nodes := vocabulary.New(cfg.numericNodeIDs)
	var nodeTypes *vocabulary.LabeledVocabulary
	hadNodeStream := nodeRecords != nil

	if hadNodeStream {
		var buildErr error
		for rr := range nodeRecords {
			if rr.Err != nil {
				buildErr = fmt.Errorf("graphbuilder.Build: %w: %v", ErrRecordFailed, rr.Err)
				break
			}
			id, firstSeen, err := nodes.Insert(rr.Record.Name)
			if err != nil {
				buildErr = classifyNodeIDError(err)
				break
			}
			if !firstSeen {
				if !cfg.ignoreDuplicatedNodes {
					buildErr = fmt.Errorf("graphbuilder.Build: %w: %q", ErrDuplicateNode, rr.Record.Name)
					break
				}
				continue
			}
			if rr.Record.HasNodeType {
				if nodeTypes == nil {
					nodeTypes = vocabulary.NewLabeled(cfg.numericNodeTypeIDs)
				}
				if _, err := nodeTypes.AssignAt(int(id), rr.Record.NodeType); err != nil {
					buildErr = fmt.Errorf("graphbuilder.Build: node type: %w", err)
					break
				}
			}
		}
		if buildErr != nil {
			return nil, buildErr
		}
	}

	var pending []pendingEdge
	var edgeTypeSortVocab *vocabulary.Vocabulary // throwaway: stable ids for sort/dedup ordering only

	for rr := range edgeRecords {
		if rr.Err != nil {
			return nil, fmt.Errorf("graphbuilder.Build: %w: %v", ErrRecordFailed, rr.Err)
		}
		rec := rr.Record

		src, err := resolveEndpoint(nodes, hadNodeStream, rec.Src)
		if err != nil {
			return nil, err
		}
		dst, err := resolveEndpoint(nodes, hadNodeStream, rec.Dst)
		if err != nil {
			return nil, err
		}

		if src == dst {
			if cfg.rejectSelfLoops {
				return nil, fmt.Errorf("graphbuilder.Build: %w: %q", ErrSelfLoopForbidden, rec.Src)
			}
			if cfg.skipSelfLoops {
				continue
			}
		}

		pe := pendingEdge{src: src, dst: dst}

		if rec.HasWeight {
			if math.IsNaN(float64(rec.Weight)) || math.IsInf(float64(rec.Weight), 0) || rec.Weight <= 0 {
				return nil, fmt.Errorf("graphbuilder.Build: %w: %v", ErrBadWeight, rec.Weight)
			}
			pe.hasWeight = true
			pe.weight = rec.Weight
		}

		if rec.HasEdgeType {
			if edgeTypeSortVocab == nil {
				edgeTypeSortVocab = vocabulary.New(cfg.numericEdgeTypeIDs)
			}
			typeID, _, err := edgeTypeSortVocab.Insert(rec.EdgeType)
			if err != nil {
				return nil, classifyEdgeTypeError(err)
			}
			pe.hasType = true
			pe.typeLabel = rec.EdgeType
			pe.sortTypeID = typeID
		}

		pending = append(pending, pe)
		if !cfg.directed && src != dst {
			mirror := pe
			mirror.src, mirror.dst = dst, src
			pending = append(pending, mirror)
		}
	}

	if nodes.Len() == 0 {
		return nil, ErrEmptyGraph
	}

	if cfg.numericNodeIDs {
		if err := validateDenseNumericIDs(nodes); err != nil {
			return nil, err
		}
	}

	if hadNodeStream && nodeTypes != nil {
		if err := nodeTypes.FillUnassigned(nodes.Len(), cfg.untypedNodeLabel); err != nil {
			return nil, fmt.Errorf("graphbuilder.Build: node type: %w", err)
		}
	}

	sort.SliceStable(pending, func(i, j int) bool {
		ki := encodeKey(pending[i].src, pending[i].dst, nodes.Len())
		kj := encodeKey(pending[j].src, pending[j].dst, nodes.Len())
		if ki != kj {
			return ki < kj
		}

		return pending[i].sortTypeID < pending[j].sortTypeID
	})

	final := make([]pendingEdge, 0, len(pending))
	var uniqueEdgesNumber uint64
	for i, pe := range pending {
		key := encodeKey(pe.src, pe.dst, nodes.Len())
		if i > 0 {
			prevKey := encodeKey(pending[i-1].src, pending[i-1].dst, nodes.Len())
			sameKey := prevKey == key
			sameType := pending[i-1].hasType == pe.hasType &&
				(!pe.hasType || pending[i-1].sortTypeID == pe.sortTypeID)
			if sameKey && sameType {
				if !cfg.ignoreDuplicatedEdges {
					return nil, fmt.Errorf("graphbuilder.Build: %w: src=%d dst=%d", ErrDuplicateEdge, pe.src, pe.dst)
				}
				continue
			}
			if !sameKey {
				uniqueEdgesNumber++
			}
		} else {
			uniqueEdgesNumber++
		}
		final = append(final, pe)
	}

	keys := make([]uint64, len(final))
	var weights []graph.Weight
	var edgeTypes *vocabulary.LabeledVocabulary
	var anyWeight, anyType bool
	for _, pe := range final {
		if pe.hasWeight {
			anyWeight = true
		}
		if pe.hasType {
			anyType = true
		}
	}
	if anyWeight {
		weights = make([]graph.Weight, len(final))
		for i := range weights {
			weights[i] = 1
		}
	}
	if anyType {
		edgeTypes = vocabulary.NewLabeled(cfg.numericEdgeTypeIDs)
	}

	var selfLoopNumber, uniqueSelfLoopNumber uint64
	var lastSelfLoopSrc graph.NodeID = graph.NodeID(math.MaxUint32)
	for i, pe := range final {
		keys[i] = encodeKey(pe.src, pe.dst, nodes.Len())
		if anyWeight && pe.hasWeight {
			weights[i] = graph.Weight(pe.weight)
		}
		if anyType {
			label := cfg.untypedEdgeLabel
			if pe.hasType {
				label = pe.typeLabel
			}
			if _, err := edgeTypes.AssignAt(i, label); err != nil {
				return nil, fmt.Errorf("graphbuilder.Build: edge type: %w", err)
			}
		}
		if pe.src == pe.dst {
			selfLoopNumber++
			if pe.src != lastSelfLoopSrc {
				uniqueSelfLoopNumber++
				lastSelfLoopSrc = pe.src
			}
		}
	}

	g, err := graph.New(graph.BuildInput{
		Directed:             cfg.directed,
		Name:                 cfg.name,
		Nodes:                nodes,
		NodeTypes:            nodeTypes,
		Edges:                keys,
		Weights:              weights,
		EdgeTypes:            edgeTypes,
		SelfLoopNumber:       selfLoopNumber,
		UniqueSelfLoopNumber: uniqueSelfLoopNumber,
		UniqueEdgesNumber:    uniqueEdgesNumber,
	})
	if err != nil {
		return nil, fmt.Errorf("graphbuilder.Build: %w", err)
	}

	return g, nil
}

func resolveEndpoint(nodes *vocabulary.Vocabulary, hadNodeStream bool, name string) (graph.NodeID, error) {
	if hadNodeStream {
		id, ok := nodes.ID(name)
		if !ok {
			return 0, fmt.Errorf("graphbuilder.Build: %w: %q", ErrUnknownNode, name)
		}

		return graph.NodeID(id), nil
	}
	id, _, err := nodes.Insert(name)
	if err != nil {
		return 0, classifyNodeIDError(err)
	}

	return graph.NodeID(id), nil
}

func classifyNodeIDError(err error) error {
	if errors.Is(err, vocabulary.ErrNotNumeric) {
		return fmt.Errorf("graphbuilder.Build: %w: %v", ErrInconsistentNumericID, err)
	}

	return fmt.Errorf("graphbuilder.Build: %w", err)
}

func classifyEdgeTypeError(err error) error {
	if errors.Is(err, vocabulary.ErrNotNumeric) {
		return fmt.Errorf("graphbuilder.Build: edge type: %w: %v", ErrInconsistentNumericID, err)
	}

	return fmt.Errorf("graphbuilder.Build: edge type: %w", err)
}

// encodeKey mirrors graph.Graph.EncodeEdge without needing a *graph.Graph
// yet: key = src*2^b + dst, b = ceil(log2(numNodes)).
func encodeKey(src, dst graph.NodeID, numNodes int) uint64 {
	b := bitsFor(numNodes)

	return (uint64(src) << b) | uint64(dst)
}

func bitsFor(numNodes int) uint {
	if numNodes <= 1 {
		return 0
	}
	b := uint(0)
	for (1 << b) < numNodes {
		b++
	}

	return b
}

// validateDenseNumericIDs ensures numeric-mode node ids are exactly
// [0, NumNodes) with no gaps, since the CSR layout requires dense ids.
func validateDenseNumericIDs(nodes *vocabulary.Vocabulary) error {
	n := nodes.Len()
	for i := 0; i < n; i++ {
		if _, err := nodes.Name(vocabulary.ID(i)); err != nil {
			return fmt.Errorf("graphbuilder.Build: %w: missing id %d", ErrSparseNumericIDs, i)
		}
	}

	return nil
}
