package remap

import (
	"fmt"
	"slices"
)

// Range is a half-open interval [start, end) of integers.
// A Range obtained from this package is never empty.
type Range struct {
	start int64
	end   int64
}

// NewRange returns [start, end) or an *InvalidRangeError if end <= start.
func NewRange(start, end int64) (Range, error) {
	if end <= start {
		return Range{}, &InvalidRangeError{Start: start, End: end}
	}

	return Range{start: start, end: end}, nil
}

// RangeOf returns [start, start+length). An end past the int64 limit is
// reported as an *InvalidRangeError.
func RangeOf(start, length int64) (Range, error) {
	if addOverflows(start, length) {
		return Range{}, &InvalidRangeError{Start: start, End: start + length}
	}

	return NewRange(start, start+length)
}

// MustRange is like NewRange but panics on invalid bounds.
// Intended for fixtures and literals known to be valid.
func MustRange(start, end int64) Range {
	r, err := NewRange(start, end)
	if err != nil {
		panic(err)
	}

	return r
}

// Start returns the first value in the range.
func (r Range) Start() int64 { return r.start }

// End returns the first value past the range.
func (r Range) End() int64 { return r.end }

// Len returns the number of values in the range.
func (r Range) Len() int64 { return r.end - r.start }

// Contains reports whether v lies in [start, end).
func (r Range) Contains(v int64) bool {
	return r.start <= v && v < r.end
}

// Overlaps reports whether r and o share at least one value.
func (r Range) Overlaps(o Range) bool {
	return r.start < o.end && o.start < r.end
}

// Covers reports whether every value of o is also in r.
func (r Range) Covers(o Range) bool {
	return r.start <= o.start && o.end <= r.end
}

// Shift moves the range by offset. Length is preserved.
func (r Range) Shift(offset int64) Range {
	return Range{start: r.start + offset, end: r.end + offset}
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.start, r.end)
}

// piece returns [start, end) and true, or false when the interval is empty.
// Split uses it to suppress zero-length fragments.
func piece(start, end int64) (Range, bool) {
	if end <= start {
		return Range{}, false
	}

	return Range{start: start, end: end}, true
}

// Minimum returns the smallest start among ranges.
// An empty input means the partition law was broken upstream and yields ErrEmptyResult.
func Minimum(ranges []Range) (int64, error) {
	if len(ranges) == 0 {
		return 0, ErrEmptyResult
	}

	lowest := ranges[0].start
	for _, r := range ranges[1:] {
		lowest = min(lowest, r.start)
	}

	return lowest, nil
}

// Coalesce returns the ranges sorted by start with overlapping and adjacent
// ranges merged. The input is not modified.
func Coalesce(ranges []Range) []Range {
	if len(ranges) == 0 {
		return nil
	}

	sorted := slices.Clone(ranges)
	slices.SortFunc(sorted, compareRanges)

	out := make([]Range, 0, len(sorted))
	cur := sorted[0]

	for _, r := range sorted[1:] {
		if r.start <= cur.end {
			cur.end = max(cur.end, r.end)
			continue
		}

		out = append(out, cur)
		cur = r
	}

	return append(out, cur)
}

// TotalLen sums the lengths of ranges.
func TotalLen(ranges []Range) int64 {
	var n int64
	for _, r := range ranges {
		n += r.Len()
	}

	return n
}

func addOverflows(a, b int64) bool {
	c := a + b
	return (b > 0 && c < a) || (b < 0 && c > a)
}

func subOverflows(a, b int64) bool {
	c := a - b
	return (b < 0 && c < a) || (b > 0 && c > a)
}

func compareRanges(a, b Range) int {
	switch {
	case a.start < b.start:
		return -1
	case a.start > b.start:
		return 1
	case a.end < b.end:
		return -1
	case a.end > b.end:
		return 1
	default:
		return 0
	}
}
