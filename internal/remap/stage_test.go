package remap

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rangeSetOpts = cmp.Options{
	cmp.AllowUnexported(Range{}),
	cmpopts.SortSlices(func(a, b Range) bool { return compareRanges(a, b) < 0 }),
	cmpopts.EquateEmpty(),
}

func TestStageApply_NoRulesIsIdentity(t *testing.T) {
	inputs := []Range{MustRange(79, 93), MustRange(55, 68)}

	out := NewStage(SeedToSoil).Apply(inputs)
	assert.Equal(t, inputs, out)
}

func TestStageApply_EmptyInput(t *testing.T) {
	out := NewStage(SeedToSoil, MustRule(50, 98, 2)).Apply(nil)
	assert.Empty(t, out)
}

func TestStageApply(t *testing.T) {
	tests := []struct {
		name  string
		stage Stage
		in    []Range
		want  []Range
	}{
		{
			name:  "seed-to-soil on seed ranges",
			stage: NewStage(SeedToSoil, MustRule(50, 98, 2), MustRule(52, 50, 48)),
			in:    []Range{MustRange(79, 93), MustRange(55, 68)},
			want:  []Range{MustRange(81, 95), MustRange(57, 70)},
		},
		{
			name:  "range straddling two rules and a gap",
			stage: NewStage(SeedToSoil, MustRule(100, 0, 10), MustRule(200, 20, 10)),
			in:    []Range{MustRange(5, 25)},
			want: []Range{
				MustRange(105, 110), // [5,10) +100
				MustRange(10, 20),   // untouched gap
				MustRange(200, 205), // [20,25) +180
			},
		},
		{
			name:  "rule inside range leaves both sides",
			stage: NewStage(WaterToLight, MustRule(0, 40, 10)),
			in:    []Range{MustRange(30, 60)},
			want:  []Range{MustRange(30, 40), MustRange(0, 10), MustRange(50, 60)},
		},
		{
			name:  "rule order does not matter",
			stage: NewStage(SeedToSoil, MustRule(200, 20, 10), MustRule(100, 0, 10)),
			in:    []Range{MustRange(5, 25)},
			want:  []Range{MustRange(105, 110), MustRange(10, 20), MustRange(200, 205)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.stage.Apply(tt.in)

			if diff := cmp.Diff(tt.want, got, rangeSetOpts); diff != "" {
				t.Errorf("Apply() mismatch (-want +got):\n%s\n%s", diff, spew.Sdump(got))
			}

			assert.Equal(t, TotalLen(tt.in), TotalLen(got))
		})
	}
}

// Every value in the inputs must land exactly where Stage.MapValue puts it.
func TestStageApply_AgreesWithMapValue(t *testing.T) {
	p := examplePipeline(t)

	for _, s := range p.Stages() {
		in := []Range{MustRange(0, 40), MustRange(45, 120)}
		out := s.Apply(in)

		want := map[int64]int{}
		for _, r := range in {
			for v := r.Start(); v < r.End(); v++ {
				want[s.MapValue(v)]++
			}
		}

		got := map[int64]int{}
		for _, r := range out {
			for v := r.Start(); v < r.End(); v++ {
				got[v]++
			}
		}

		assert.Equal(t, want, got, "stage %s", s.Kind)
	}
}

func TestStageMapValue(t *testing.T) {
	s := NewStage(SeedToSoil, MustRule(50, 98, 2), MustRule(52, 50, 48))

	tests := map[int64]int64{
		0:   0,
		49:  49,
		50:  52,
		79:  81,
		97:  99,
		98:  50,
		99:  51,
		100: 100,
	}

	for in, want := range tests {
		assert.Equal(t, want, s.MapValue(in), "MapValue(%d)", in)
	}
}

func TestStageValidate(t *testing.T) {
	ok := NewStage(SoilToFertilizer, MustRule(0, 15, 37), MustRule(37, 52, 2), MustRule(39, 0, 15))
	require.NoError(t, ok.Validate())

	bad := NewStage(SoilToFertilizer, MustRule(0, 15, 37), MustRule(100, 50, 5))
	err := bad.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOverlappingRules)

	var oe *OverlapError
	require.ErrorAs(t, err, &oe)
	assert.Equal(t, SoilToFertilizer, oe.Kind)
	assert.Equal(t, int64(15), oe.First.SourceStart())
	assert.Equal(t, int64(50), oe.Second.SourceStart())
	assert.Contains(t, err.Error(), "soil-to-fertilizer")
}

func TestStageSortRules(t *testing.T) {
	s := NewStage(SoilToFertilizer, MustRule(0, 15, 37), MustRule(37, 52, 2), MustRule(39, 0, 15))
	s.SortRules()

	starts := make([]int64, 0, len(s.Rules))
	for _, g := range s.Rules {
		starts = append(starts, g.SourceStart())
	}

	assert.Equal(t, []int64{0, 15, 52}, starts)
}
