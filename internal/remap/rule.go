package remap

import (
	"fmt"

	"almanac/utils"
)

// Rule rewrites the source interval [SourceStart, SourceEnd) by a constant offset.
type Rule struct {
	sourceStart int64
	length      int64
	offset      int64
}

// NewRule builds a rule from the (destination, source, length) triple used by
// almanac listings. A non-positive length, or a source or destination
// interval whose end does not fit in an int64, yields an *InvalidRangeError.
func NewRule(destinationStart, sourceStart, length int64) (Rule, error) {
	if length <= 0 || addOverflows(sourceStart, length) {
		return Rule{}, &InvalidRangeError{Start: sourceStart, End: sourceStart + length}
	}

	if addOverflows(destinationStart, length) || subOverflows(destinationStart, sourceStart) {
		return Rule{}, &InvalidRangeError{Start: destinationStart, End: destinationStart + length}
	}

	return Rule{
		sourceStart: sourceStart,
		length:      length,
		offset:      destinationStart - sourceStart,
	}, nil
}

// MustRule is like NewRule but panics on a non-positive length.
func MustRule(destinationStart, sourceStart, length int64) Rule {
	g, err := NewRule(destinationStart, sourceStart, length)
	if err != nil {
		panic(err)
	}

	return g
}

func (g Rule) SourceStart() int64      { return g.sourceStart }
func (g Rule) SourceEnd() int64        { return g.sourceStart + g.length }
func (g Rule) Length() int64           { return g.length }
func (g Rule) Offset() int64           { return g.offset }
func (g Rule) DestinationStart() int64 { return g.sourceStart + g.offset }
func (g Rule) DestinationEnd() int64   { return g.SourceEnd() + g.offset }

// Source returns the source interval as a Range.
func (g Rule) Source() Range {
	return Range{start: g.sourceStart, end: g.SourceEnd()}
}

// Destination returns the image of the source interval.
func (g Rule) Destination() Range {
	return g.Source().Shift(g.offset)
}

// Lookup maps v through the rule. ok is false when v is outside the source interval.
func (g Rule) Lookup(v int64) (mapped int64, ok bool) {
	if !utils.IsInRange(g.sourceStart, v, g.SourceEnd()-1) {
		return v, false
	}

	return v + g.offset, true
}

// String renders the rule in listing order: destination source length.
func (g Rule) String() string {
	return fmt.Sprintf("%d %d %d", g.DestinationStart(), g.sourceStart, g.length)
}
