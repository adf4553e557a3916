package remap

import (
	"slices"
)

// Stage is one remapping phase: an ordered list of rules.
// Values not claimed by any rule pass through unchanged.
type Stage struct {
	Kind  StageKind
	Rules []Rule
}

// NewStage returns a stage owning a copy of rules, in the given order.
func NewStage(kind StageKind, rules ...Rule) Stage {
	return Stage{Kind: kind, Rules: slices.Clone(rules)}
}

// Apply pushes inputs through the stage and returns the destination-space
// ranges. The result partitions inputs exactly: each value ends up shifted by
// the rule that claims it, or unchanged if no rule does. Output order is not
// specified.
func (s Stage) Apply(inputs []Range) []Range {
	resolved := make([]Range, 0, len(inputs))
	unresolved := slices.Clone(inputs)

	for _, rule := range s.Rules {
		if len(unresolved) == 0 {
			break
		}

		next := make([]Range, 0, len(unresolved))

		for _, r := range unresolved {
			res := Split(r, rule)
			if res.Mapped != nil {
				resolved = append(resolved, res.Mapped.Shift(rule.Offset()))
			}

			next = append(next, res.Unmapped...)
		}

		unresolved = next
	}

	// Whatever no rule claimed is the identity part of the stage.
	return append(resolved, unresolved...)
}

// MapValue maps a single value through the stage using the first rule whose
// source interval contains it.
func (s Stage) MapValue(v int64) int64 {
	for _, rule := range s.Rules {
		if mapped, ok := rule.Lookup(v); ok {
			return mapped
		}
	}

	return v
}

// Validate returns an *OverlapError for the first pair of rules whose source
// intervals intersect.
func (s Stage) Validate() error {
	sorted := slices.Clone(s.Rules)
	slices.SortFunc(sorted, func(a, b Rule) int {
		return compareRanges(a.Source(), b.Source())
	})

	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]
		if prev.Source().Overlaps(cur.Source()) {
			return &OverlapError{Kind: s.Kind, First: prev, Second: cur}
		}
	}

	return nil
}

// SortRules orders the rules by source start. Results are unaffected as long
// as the rules do not overlap.
func (s Stage) SortRules() {
	slices.SortFunc(s.Rules, func(a, b Rule) int {
		return compareRanges(a.Source(), b.Source())
	})
}
