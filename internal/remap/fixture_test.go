package remap

import "testing"

// examplePipeline is the seven-stage almanac used throughout the tests.
func examplePipeline(t *testing.T) Pipeline {
	t.Helper()

	p, err := NewPipeline(
		NewStage(SeedToSoil,
			MustRule(50, 98, 2),
			MustRule(52, 50, 48),
		),
		NewStage(SoilToFertilizer,
			MustRule(0, 15, 37),
			MustRule(37, 52, 2),
			MustRule(39, 0, 15),
		),
		NewStage(FertilizerToWater,
			MustRule(49, 53, 8),
			MustRule(0, 11, 42),
			MustRule(42, 0, 7),
			MustRule(57, 7, 4),
		),
		NewStage(WaterToLight,
			MustRule(88, 18, 7),
			MustRule(18, 25, 70),
		),
		NewStage(LightToTemperature,
			MustRule(45, 77, 23),
			MustRule(81, 45, 19),
			MustRule(68, 64, 13),
		),
		NewStage(TemperatureToHumidity,
			MustRule(0, 69, 1),
			MustRule(1, 0, 69),
		),
		NewStage(HumidityToLocation,
			MustRule(60, 56, 37),
			MustRule(56, 93, 4),
		),
	)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	return p
}
