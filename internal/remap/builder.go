package remap

import "fmt"

// Builder fills pipeline slots one stage at a time, in any order.
// Parsers use it to turn named sections into a Pipeline.
type Builder struct {
	slots [NumStages]*Stage
}

// Set places s into the slot for s.Kind. Unknown kinds and duplicates are rejected.
func (b *Builder) Set(s Stage) error {
	if !s.Kind.IsValid() {
		return fmt.Errorf("cannot place stage of kind %s", s.Kind)
	}

	if b.slots[s.Kind.Index()] != nil {
		return fmt.Errorf("duplicate stage %q", s.Kind)
	}

	b.slots[s.Kind.Index()] = &s

	return nil
}

// Has reports whether the slot for kind is filled.
func (b *Builder) Has(kind StageKind) bool {
	return kind.IsValid() && b.slots[kind.Index()] != nil
}

// Build returns the pipeline, failing with a *MissingStageError for the first empty slot.
func (b *Builder) Build() (Pipeline, error) {
	stages := make([]Stage, 0, NumStages)

	for _, kind := range StageKinds() {
		s := b.slots[kind.Index()]
		if s == nil {
			return Pipeline{}, &MissingStageError{Want: kind}
		}

		stages = append(stages, *s)
	}

	return NewPipeline(stages...)
}
