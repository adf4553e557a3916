package remap

// SplitResult is the partition of one Range against one Rule.
//
// Mapped is in the rule's source coordinates; callers apply Rule.Offset to move
// it into destination space. Mapped is nil when the range and the rule's
// source interval do not intersect.
type SplitResult struct {
	Mapped   *Range
	Unmapped []Range
}

// Split partitions r against the source interval [S, E) of rule.
//
//	r inside [S, E)         mapped r          unmapped none
//	[S, E) inside r         mapped [S, E)     unmapped [r.start, S), [E, r.end)
//	r starts before S       mapped [S, r.end) unmapped [r.start, S)
//	r ends after E          mapped [r.start, E) unmapped [E, r.end)
//	disjoint                mapped none       unmapped r
//
// Empty fragments are never emitted.
func Split(r Range, rule Rule) SplitResult {
	src := rule.Source()

	switch {
	case !r.Overlaps(src):
		return SplitResult{Unmapped: []Range{r}}

	case src.Covers(r):
		return SplitResult{Mapped: &r}

	case r.Covers(src):
		res := SplitResult{Mapped: &src}
		if left, ok := piece(r.start, src.start); ok {
			res.Unmapped = append(res.Unmapped, left)
		}

		if right, ok := piece(src.end, r.end); ok {
			res.Unmapped = append(res.Unmapped, right)
		}

		return res

	case r.start < src.start:
		// Left overlap: r.end lies in (S, E).
		mapped := Range{start: src.start, end: r.end}

		return SplitResult{
			Mapped:   &mapped,
			Unmapped: []Range{{start: r.start, end: src.start}},
		}

	default:
		// Right overlap: r.start lies in (S, E), r.end past E.
		mapped := Range{start: r.start, end: src.end}

		return SplitResult{
			Mapped:   &mapped,
			Unmapped: []Range{{start: src.end, end: r.end}},
		}
	}
}
