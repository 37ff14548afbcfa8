// SPDX-License-Identifier: MIT
package connectivity

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/embedgraph/graph"
)

// kruskalYAML is the checked-in-config shape of the Kruskal options, for
// pipelines that keep spanning-forest tuning outside Go source.
type kruskalYAML struct {
	Shuffle           bool     `yaml:"shuffle"`
	RandomState       uint64   `yaml:"random_state"`
	UnwantedEdgeTypes []uint32 `yaml:"unwanted_edge_types"`
}

// LoadKruskalOptionsYAML parses a YAML document into the equivalent
// KruskalOption set, the config-file counterpart to passing
// WithShuffledOrder / WithUnwantedEdgeTypes literals.
func LoadKruskalOptionsYAML(data []byte) ([]KruskalOption, error) {
	var doc kruskalYAML
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("connectivity.LoadKruskalOptionsYAML: %w", err)
	}

	var opts []KruskalOption
	if doc.Shuffle {
		opts = append(opts, WithShuffledOrder(doc.RandomState))
	}
	if len(doc.UnwantedEdgeTypes) > 0 {
		unwanted := make([]graph.EdgeTypeID, len(doc.UnwantedEdgeTypes))
		for i, et := range doc.UnwantedEdgeTypes {
			unwanted[i] = graph.EdgeTypeID(et)
		}
		opts = append(opts, WithUnwantedEdgeTypes(unwanted...))
	}

	return opts, nil
}
