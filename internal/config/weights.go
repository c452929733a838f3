package config

import (
	"fmt"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Weight is a single enemy-type selection weight.
type Weight struct {
	Type   string
	Weight float64
}

// Weights is an ordered weight table. Selection subtracts weights in
// declaration order, so the order of the YAML mapping is preserved.
type Weights []Weight

// UnmarshalYAML decodes a mapping node keeping document order.
func (w *Weights) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("config: line %d: enemy weights must be a mapping", node.Line)
	}

	out := make(Weights, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		var weight float64
		if err := val.Decode(&weight); err != nil {
			return fmt.Errorf("config: line %d: weight for %q: %w", val.Line, key.Value, err)
		}
		out = append(out, Weight{Type: key.Value, Weight: weight})
	}
	*w = out
	return nil
}

// MarshalYAML encodes the table as a mapping in declaration order.
func (w Weights) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, e := range w {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: e.Type},
			&yaml.Node{Kind: yaml.ScalarNode, Value: strconv.FormatFloat(e.Weight, 'g', -1, 64)},
		)
	}
	return node, nil
}

// Total returns the sum of all weights.
func (w Weights) Total() float64 {
	var total float64
	for _, e := range w {
		total += e.Weight
	}
	return total
}

// Top returns the n heaviest entries, heaviest first.
// Equal weights keep their declaration order.
func (w Weights) Top(n int) Weights {
	sorted := make(Weights, len(w))
	copy(sorted, w)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight > sorted[j].Weight
	})
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// Pick performs a cumulative-weight draw for u in [0, 1).
// The first entry whose running remainder drops to zero or below wins.
// An empty table returns "".
func (w Weights) Pick(u float64) string {
	if len(w) == 0 {
		return ""
	}
	r := u * w.Total()
	for _, e := range w {
		r -= e.Weight
		if r <= 0 {
			return e.Type
		}
	}
	return w[0].Type
}
