package remap

import "fmt"

//go:generate go tool stringer -type=StageKind -linecomment -output=stage_kind_string.go

// StageKind names one slot of the pipeline. The zero value is not a valid kind.
type StageKind int

const (
	_ StageKind = iota // skip zero value, an unset slot reads as 0

	SeedToSoil            // seed-to-soil
	SoilToFertilizer      // soil-to-fertilizer
	FertilizerToWater     // fertilizer-to-water
	WaterToLight          // water-to-light
	LightToTemperature    // light-to-temperature
	TemperatureToHumidity // temperature-to-humidity
	HumidityToLocation    // humidity-to-location

	// NumStages is the number of slots in a pipeline.
	NumStages = int(iota) - 1
)

// StageKinds returns every kind in pipeline order.
func StageKinds() []StageKind {
	kinds := make([]StageKind, 0, NumStages)
	for k := SeedToSoil; k <= HumidityToLocation; k++ {
		kinds = append(kinds, k)
	}

	return kinds
}

// IsValid reports whether k names a pipeline slot.
func (k StageKind) IsValid() bool {
	return k >= SeedToSoil && k <= HumidityToLocation
}

// Index returns the zero-based slot of k in the pipeline.
func (k StageKind) Index() int { return int(k) - 1 }

// ParseStageKind maps a section name such as "seed-to-soil" to its kind.
func ParseStageKind(name string) (StageKind, error) {
	for _, k := range StageKinds() {
		if k.String() == name {
			return k, nil
		}
	}

	return 0, fmt.Errorf("unknown stage %q", name)
}
