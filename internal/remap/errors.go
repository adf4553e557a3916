package remap

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRange is returned when a range with end <= start, or one whose
	// end does not fit in an int64, is requested.
	ErrInvalidRange = errors.New("invalid range")
	// ErrMissingStage is returned when a pipeline slot is absent or out of order.
	ErrMissingStage = errors.New("missing stage")
	// ErrEmptyResult is returned when a minimum is requested over no ranges.
	ErrEmptyResult = errors.New("empty result")
	// ErrOverlappingRules is returned by validation when two rules of one
	// stage claim the same source values.
	ErrOverlappingRules = errors.New("overlapping rules")
)

// InvalidRangeError describes a rejected [Start, End) pair.
type InvalidRangeError struct {
	Start int64
	End   int64
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range [%d, %d): end must be greater than start", e.Start, e.End)
}

func (e *InvalidRangeError) Unwrap() error { return ErrInvalidRange }

// MissingStageError reports the pipeline slot that could not be filled.
// Got is zero when the slot was empty, otherwise the kind found in its place.
type MissingStageError struct {
	Want StageKind
	Got  StageKind
}

func (e *MissingStageError) Error() string {
	if e.Got == 0 {
		return fmt.Sprintf("missing stage %q", e.Want)
	}

	return fmt.Sprintf("missing stage %q: found %q in its slot", e.Want, e.Got)
}

func (e *MissingStageError) Unwrap() error { return ErrMissingStage }

// OverlapError names two rules of the same stage whose source intervals intersect.
type OverlapError struct {
	Kind   StageKind
	First  Rule
	Second Rule
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("%s: rule %s overlaps rule %s", e.Kind, e.First, e.Second)
}

func (e *OverlapError) Unwrap() error { return ErrOverlappingRules }
