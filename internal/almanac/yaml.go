package almanac

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"almanac/internal/remap"
)

// LoadYAMLFile loads and parses a YAML almanac from path.
func LoadYAMLFile(path string) (*Almanac, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read almanac file %s: %w", path, err)
	}

	return ParseYAML(data)
}

// ParseYAML parses a YAML document into an Almanac.
func ParseYAML(data []byte) (*Almanac, error) {
	var doc Document

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse almanac YAML: %w", err)
	}

	applyDefaults(&doc)

	return FromDocument(&doc)
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(doc *Document) {
	if doc.Version == "" {
		doc.Version = "1"
	}
}

// FromDocument converts a decoded document into an Almanac. Rules are sorted
// by source start within each stage, the same as Parse.
func FromDocument(doc *Document) (*Almanac, error) {
	if doc.Version != "1" {
		return nil, fmt.Errorf("unsupported almanac version %q", doc.Version)
	}

	var b remap.Builder

	for _, sd := range doc.Stages {
		kind, err := remap.ParseStageKind(sd.Name)
		if err != nil {
			return nil, err
		}

		rules := make([]remap.Rule, 0, len(sd.Rules))

		for _, rd := range sd.Rules {
			rule, err := remap.NewRule(rd.Destination, rd.Source, rd.Length)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", sd.Name, err)
			}

			rules = append(rules, rule)
		}

		s := remap.NewStage(kind, rules...)
		s.SortRules()

		if err := b.Set(s); err != nil {
			return nil, err
		}
	}

	p, err := b.Build()
	if err != nil {
		return nil, err
	}

	return &Almanac{Seeds: Seeds(doc.Seeds), Pipeline: p}, nil
}

// ToDocument converts a into its YAML document form.
func ToDocument(a *Almanac) *Document {
	doc := &Document{Version: "1", Seeds: a.Seeds.Points()}

	for _, s := range a.Pipeline.Stages() {
		sd := StageDoc{Name: s.Kind.String(), Rules: make([]RuleDoc, 0, len(s.Rules))}

		for _, rule := range s.Rules {
			sd.Rules = append(sd.Rules, RuleDoc{
				Destination: rule.DestinationStart(),
				Source:      rule.SourceStart(),
				Length:      rule.Length(),
			})
		}

		doc.Stages = append(doc.Stages, sd)
	}

	return doc
}

// MarshalYAML serializes a as a YAML document.
func MarshalYAML(a *Almanac) ([]byte, error) {
	return yaml.Marshal(ToDocument(a))
}

// WriteYAMLFile writes a to path as YAML.
func WriteYAMLFile(a *Almanac, path string) error {
	data, err := MarshalYAML(a)
	if err != nil {
		return fmt.Errorf("failed to marshal almanac: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write almanac file %s: %w", path, err)
	}

	return nil
}
