package almanac

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document is the YAML form of an almanac.
type Document struct {
	Version string     `yaml:"version"`
	Seeds   []int64    `yaml:"seeds,flow"`
	Stages  []StageDoc `yaml:"stages"`
}

// StageDoc is one named section.
type StageDoc struct {
	Name  string    `yaml:"name"`
	Rules []RuleDoc `yaml:"rules"`
}

// RuleDoc is one rule, in listing order.
type RuleDoc struct {
	Destination int64 `yaml:"destination"`
	Source      int64 `yaml:"source"`
	Length      int64 `yaml:"length"`
}

// ruleFields mirrors RuleDoc without its YAML methods.
type ruleFields RuleDoc

// UnmarshalYAML accepts either a [destination, source, length] sequence or a
// mapping with explicit keys.
func (r *RuleDoc) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var triple []int64

		if err := node.Decode(&triple); err != nil {
			return err
		}

		if len(triple) != 3 {
			return fmt.Errorf("line %d: rule needs [destination, source, length], got %d values", node.Line, len(triple))
		}

		*r = RuleDoc{Destination: triple[0], Source: triple[1], Length: triple[2]}

		return nil

	case yaml.MappingNode:
		var f ruleFields

		if err := node.Decode(&f); err != nil {
			return err
		}

		*r = RuleDoc(f)

		return nil

	default:
		return fmt.Errorf("line %d: expected rule sequence or mapping, got %v", node.Line, node.Kind)
	}
}

// MarshalYAML emits the compact [destination, source, length] form.
func (r RuleDoc) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}

	for _, v := range []int64{r.Destination, r.Source, r.Length} {
		var item yaml.Node
		if err := item.Encode(v); err != nil {
			return nil, err
		}

		node.Content = append(node.Content, &item)
	}

	return node, nil
}
