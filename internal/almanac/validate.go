package almanac

import (
	"errors"
	"fmt"

	"almanac/internal/common"
	"almanac/internal/diagnostic"
	"almanac/internal/remap"
)

// Validate checks an almanac for problems the parser does not reject:
// overlapping rules, empty stages and seed lists that cannot be read as ranges.
func Validate(a *Almanac) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if a == nil {
		res.AddError("almanac_is_nil", "almanac is nil", "", "")
		return res
	}

	res.Merge(validateSeeds(a.Seeds))

	for _, kind := range remap.StageKinds() {
		s, ok := a.Pipeline.Stage(kind)
		if !ok {
			res.AddError("missing_stage", fmt.Sprintf("stage %q is missing", kind), kind.String(), "")
			continue
		}

		res.Merge(validateStage(s))
	}

	return res
}

func validateStage(s remap.Stage) diagnostic.Diagnostics {
	var res diagnostic.Diagnostics

	if common.IsEmpty(s.Rules) {
		res.AddInfo("empty_stage", "stage has no rules, values pass through unchanged", s.Kind.String(), "")
		return res
	}

	// Report every overlapping pair, not only the first.
	for i := range s.Rules {
		for j := i + 1; j < len(s.Rules); j++ {
			pair := remap.NewStage(s.Kind, s.Rules[i], s.Rules[j])

			var oe *remap.OverlapError
			if err := pair.Validate(); errors.As(err, &oe) {
				res.AddError("overlapping_rules",
					fmt.Sprintf("source %s overlaps source %s", oe.First.Source(), oe.Second.Source()),
					s.Kind.String(), oe.First.String())
			}
		}
	}

	return res
}

func validateSeeds(seeds Seeds) diagnostic.Diagnostics {
	var res diagnostic.Diagnostics

	if common.IsEmpty(seeds) {
		res.AddError("no_seeds", "seed list is empty", "", "")
		return res
	}

	if len(seeds)%2 != 0 {
		res.AddWarning("odd_seed_count",
			fmt.Sprintf("%d seeds cannot be read as (start, length) pairs, range mode will fail", len(seeds)),
			"", "")

		return res
	}

	for i := 0; i < len(seeds); i += 2 {
		if seeds[i+1] <= 0 {
			res.AddError("empty_seed_range",
				fmt.Sprintf("seed range starting at %d has length %d", seeds[i], seeds[i+1]),
				"", fmt.Sprintf("seeds[%d]", i+1))
		}
	}

	return res
}
