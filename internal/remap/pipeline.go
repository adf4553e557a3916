package remap

import (
	"errors"
	"fmt"
)

// Pipeline holds one stage per StageKind, in pipeline order.
type Pipeline struct {
	stages [NumStages]Stage
}

// NewPipeline builds a pipeline from exactly NumStages stages given in
// pipeline order. A gap or misplaced stage yields a *MissingStageError.
func NewPipeline(stages ...Stage) (Pipeline, error) {
	if err := checkStages(stages); err != nil {
		return Pipeline{}, err
	}

	var p Pipeline
	copy(p.stages[:], stages)

	return p, nil
}

// Stages returns the stages in pipeline order.
func (p Pipeline) Stages() []Stage {
	return p.stages[:]
}

// Stage returns the stage stored in the slot for kind.
func (p Pipeline) Stage(kind StageKind) (Stage, bool) {
	if !kind.IsValid() || p.stages[kind.Index()].Kind != kind {
		return Stage{}, false
	}

	return p.stages[kind.Index()], true
}

// Complete reports a *MissingStageError for the first slot that holds no
// stage. The zero Pipeline is incomplete.
func (p Pipeline) Complete() error {
	return checkStages(p.Stages())
}

// Run pushes initial through every stage of the pipeline.
func (p Pipeline) Run(initial []Range, observers ...StageObserver) ([]Range, error) {
	return Run(initial, p.Stages(), observers...)
}

// MapValue maps one value through every stage. Empty slots pass values
// through, so callers that need all seven stages check Complete first.
func (p Pipeline) MapValue(v int64) int64 {
	for _, s := range p.stages {
		v = s.MapValue(v)
	}

	return v
}

// Trace maps v through every stage and returns the value before the first
// stage followed by the value after each stage.
func (p Pipeline) Trace(v int64) []int64 {
	trail := make([]int64, 0, NumStages+1)
	trail = append(trail, v)

	for _, s := range p.stages {
		v = s.MapValue(v)
		trail = append(trail, v)
	}

	return trail
}

// Validate checks every stage for overlapping rules and joins the findings.
func (p Pipeline) Validate() error {
	var errs []error

	for _, s := range p.stages {
		if err := s.Validate(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// StageObserver is notified after each stage with the fragments that went in
// and came out.
type StageObserver func(kind StageKind, in, out []Range)

// Run folds Stage.Apply over stages, left to right, starting from initial.
// stages must hold exactly one stage per kind in pipeline order.
func Run(initial []Range, stages []Stage, observers ...StageObserver) ([]Range, error) {
	if err := checkStages(stages); err != nil {
		return nil, err
	}

	current := initial
	for _, s := range stages {
		next := s.Apply(current)

		for _, observe := range observers {
			observe(s.Kind, current, next)
		}

		current = next
	}

	return current, nil
}

func checkStages(stages []Stage) error {
	for i, want := range StageKinds() {
		if i >= len(stages) {
			return &MissingStageError{Want: want}
		}

		if stages[i].Kind != want {
			return &MissingStageError{Want: want, Got: stages[i].Kind}
		}
	}

	if len(stages) > NumStages {
		return fmt.Errorf("%w: expected %d stages, got %d", ErrMissingStage, NumStages, len(stages))
	}

	return nil
}
