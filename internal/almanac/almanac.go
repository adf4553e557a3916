package almanac

import (
	"fmt"
	"slices"

	"almanac/internal/remap"
	"almanac/utils"
)

// Almanac is a parsed almanac document.
type Almanac struct {
	Seeds    Seeds
	Pipeline remap.Pipeline
}

// Seeds is the raw list from the "seeds:" line.
type Seeds []int64

// Points returns each seed as a single value.
func (s Seeds) Points() []int64 {
	return append([]int64(nil), s...)
}

// Ranges reads the seeds as (start, length) pairs.
func (s Seeds) Ranges() ([]remap.Range, error) {
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("seed ranges need (start, length) pairs, got %d values", len(s))
	}

	ranges := make([]remap.Range, 0, len(s)/2)

	for pair := range slices.Chunk(s, 2) {
		start, length := utils.Unpack2(pair)

		r, err := remap.RangeOf(start, length)
		if err != nil {
			return nil, fmt.Errorf("seed range %d+%d: %w", start, length, err)
		}

		ranges = append(ranges, r)
	}

	return ranges, nil
}
