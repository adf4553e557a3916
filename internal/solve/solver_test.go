package solve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"almanac/internal/almanac"
	"almanac/internal/remap"
)

const example = `seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
`

func parseExample(t *testing.T) *almanac.Almanac {
	t.Helper()

	a, err := almanac.Parse([]byte(example))
	require.NoError(t, err)

	return a
}

func TestSolve_Example(t *testing.T) {
	a := parseExample(t)

	rep, err := New(WithValidation(true)).Solve(a, ModeBoth)
	require.NoError(t, err)

	assert.Equal(t, int64(35), rep.PointsLowest)
	assert.Equal(t, int64(46), rep.RangesLowest)
	require.NotEmpty(t, rep.Locations)
	assert.Equal(t, int64(46), rep.Locations[0].Start())
	assert.Equal(t, int64(27), remap.TotalLen(rep.Locations))
}

func TestSolve_Modes(t *testing.T) {
	a := parseExample(t)
	s := New()

	rep, err := s.Solve(a, ModePoints)
	require.NoError(t, err)
	assert.Equal(t, int64(35), rep.PointsLowest)
	assert.Zero(t, rep.RangesLowest)
	assert.Nil(t, rep.Locations)

	rep, err = s.Solve(a, ModeRanges)
	require.NoError(t, err)
	assert.Zero(t, rep.PointsLowest)
	assert.Equal(t, int64(46), rep.RangesLowest)
}

func TestLowestFromRanges(t *testing.T) {
	a := parseExample(t)

	lowest, err := New().LowestFromRanges(a)
	require.NoError(t, err)
	assert.Equal(t, int64(46), lowest)

	// Each seed range on its own; the overall answer is the smaller one.
	a.Seeds = almanac.Seeds{79, 14}
	first, err := New().LowestFromRanges(a)
	require.NoError(t, err)

	a.Seeds = almanac.Seeds{55, 13}
	second, err := New().LowestFromRanges(a)
	require.NoError(t, err)

	assert.Equal(t, int64(46), min(first, second))
}

func TestLowestFromPoints(t *testing.T) {
	a := parseExample(t)

	lowest, err := New().LowestFromPoints(a)
	require.NoError(t, err)
	assert.Equal(t, int64(35), lowest)

	a.Seeds = nil
	_, err = New().LowestFromPoints(a)
	assert.ErrorIs(t, err, remap.ErrEmptyResult)
}

func TestSolve_Errors(t *testing.T) {
	a := parseExample(t)
	a.Seeds = almanac.Seeds{79, 14, 55}

	_, err := New().Solve(a, ModeRanges)
	assert.Error(t, err)

	rep, err := New().Solve(a, ModePoints)
	require.NoError(t, err, "odd seed counts are fine for points")
	assert.Equal(t, int64(43), rep.PointsLowest)

	a.Seeds = almanac.Seeds{}
	_, err = New().Solve(a, ModeRanges)
	assert.ErrorIs(t, err, remap.ErrEmptyResult)

	_, err = New().Solve(nil, ModeBoth)
	assert.Error(t, err)

	_, err = New().Solve(&almanac.Almanac{Seeds: almanac.Seeds{1, 2}}, ModeRanges)
	assert.ErrorIs(t, err, remap.ErrMissingStage)
}

func TestSolve_IncompletePipeline(t *testing.T) {
	a := &almanac.Almanac{Seeds: almanac.Seeds{1, 2}}

	for _, mode := range []Mode{ModePoints, ModeRanges, ModeBoth} {
		_, err := New().Solve(a, mode)
		assert.ErrorIs(t, err, remap.ErrMissingStage, mode.String())

		_, err = New(WithValidation(false)).Solve(a, mode)
		assert.ErrorIs(t, err, remap.ErrMissingStage, mode.String())
	}

	_, err := New().LowestFromPoints(a)
	assert.ErrorIs(t, err, remap.ErrMissingStage)

	_, err = New().Trace(a, 1)
	assert.ErrorIs(t, err, remap.ErrMissingStage)
}

func TestSolve_ValidationRejectsOverlap(t *testing.T) {
	input := `seeds: 1 2

seed-to-soil map:
0 10 10
100 15 10

soil-to-fertilizer map:
fertilizer-to-water map:
water-to-light map:
light-to-temperature map:
temperature-to-humidity map:
humidity-to-location map:
`
	a, err := almanac.Parse([]byte(input))
	require.NoError(t, err)

	_, err = New(WithValidation(true)).Solve(a, ModeBoth)
	assert.ErrorIs(t, err, remap.ErrOverlappingRules)

	_, err = New(WithValidation(false)).Solve(a, ModeBoth)
	assert.NoError(t, err)
}

func TestTrace(t *testing.T) {
	steps, err := New().Trace(parseExample(t), 79)
	require.NoError(t, err)
	require.Len(t, steps, remap.NumStages)

	want := []int64{81, 81, 81, 74, 78, 78, 82}
	from := int64(79)

	for i, step := range steps {
		assert.Equal(t, remap.StageKinds()[i], step.Stage)
		assert.Equal(t, from, step.From)
		assert.Equal(t, want[i], step.To)
		from = step.To
	}
}

func TestSolve_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	_, err := New(WithLogger(zap.New(core))).Solve(parseExample(t), ModeBoth)
	require.NoError(t, err)

	stages := logs.FilterMessage("stage applied").All()
	require.Len(t, stages, remap.NumStages)
	assert.Equal(t, "seed-to-soil", stages[0].ContextMap()["stage"])
	assert.EqualValues(t, 27, stages[remap.NumStages-1].ContextMap()["values"])

	assert.Equal(t, 4, logs.FilterMessage("seed mapped").Len())

	ranges := logs.FilterMessage("lowest location from seed ranges").All()
	require.Len(t, ranges, 1)
	assert.EqualValues(t, 46, ranges[0].ContextMap()["lowest"])

	points := logs.FilterMessage("lowest location from seed points").All()
	require.Len(t, points, 1)
	assert.EqualValues(t, 35, points[0].ContextMap()["lowest"])
}

func TestParseMode(t *testing.T) {
	tests := map[string]Mode{
		"":       ModeBoth,
		"both":   ModeBoth,
		"Points": ModePoints,
		"RANGES": ModeRanges,
	}

	for in, want := range tests {
		got, err := ParseMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseMode("all")
	assert.Error(t, err)

	assert.Equal(t, "ranges", ModeRanges.String())
}
