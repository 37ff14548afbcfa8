// SPDX-License-Identifier: MIT
package walk

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// WalkWeights are the four node2vec-style bias multipliers applied per
// transition step.
type WalkWeights struct {
	// ReturnWeight (p) multiplies candidates equal to the previous source.
	ReturnWeight float64 `yaml:"return_weight"`

	// ExploreWeight (q) multiplies candidates that are neither the previous
	// source nor a neighbour of it.
	ExploreWeight float64 `yaml:"explore_weight"`

	// ChangeNodeTypeWeight divides a candidate's weight when its node type
	// equals the current node's type.
	ChangeNodeTypeWeight float64 `yaml:"change_node_type_weight"`

	// ChangeEdgeTypeWeight divides a candidate's weight when its outgoing
	// edge type equals the incoming edge's type.
	ChangeEdgeTypeWeight float64 `yaml:"change_edge_type_weight"`
}

// DefaultWalkWeights returns the all-ones bias set: every second-order step
// reduces to first-order-equivalent sampling. This is the Generate default.
func DefaultWalkWeights() WalkWeights {
	return WalkWeights{
		ReturnWeight:         1,
		ExploreWeight:        1,
		ChangeNodeTypeWeight: 1,
		ChangeEdgeTypeWeight: 1,
	}
}

// isUnbiased reports whether every bias equals 1, the precondition (together
// with an unweighted graph) for the first-order fast path.
func (w WalkWeights) isUnbiased() bool {
	return w.ReturnWeight == 1 && w.ExploreWeight == 1 &&
		w.ChangeNodeTypeWeight == 1 && w.ChangeEdgeTypeWeight == 1
}

func (w WalkWeights) validate() error {
	for _, v := range []float64{w.ReturnWeight, w.ExploreWeight, w.ChangeNodeTypeWeight, w.ChangeEdgeTypeWeight} {
		if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: got %v", ErrInvalidWeight, v)
		}
	}

	return nil
}

// LoadWalkWeightsYAML parses a WalkWeights document, the checked-in-config
// counterpart to passing literals through WithWeights: pipelines that keep
// p/q/bias tuning outside Go source can load it here instead.
func LoadWalkWeightsYAML(data []byte) (WalkWeights, error) {
	w := DefaultWalkWeights()
	if err := yaml.Unmarshal(data, &w); err != nil {
		return WalkWeights{}, fmt.Errorf("walk.LoadWalkWeightsYAML: %w", err)
	}
	if err := w.validate(); err != nil {
		return WalkWeights{}, fmt.Errorf("walk.LoadWalkWeightsYAML: %w", err)
	}

	return w, nil
}
