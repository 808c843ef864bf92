// Package profiles holds the static species behavior and location habitat
// tables consumed by the scoring engine. Tables are built once at process
// start, validated eagerly (a malformed profile is fatal), and read-only
// thereafter, so lookups need no synchronization.
package profiles

import (
	"time"

	"huntcast/internal/types"
)

// builtinSpecies is the default species behavior table for the North Country
// coverage area. Parameters come from state wildlife agency research on
// activity patterns, thermal comfort bands, and rut timing.
func builtinSpecies() []types.SpeciesProfile {
	return []types.SpeciesProfile{
		{
			ID:                "whitetail-deer",
			CommonName:        "White-tailed Deer",
			ScientificName:    "Odocoileus virginianus",
			OptimalTempRange:  types.TempRange{Low: 25, High: 55},
			PeakActivityHours: []types.HourWindow{{Start: 6, End: 8}, {Start: 17, End: 19}},
			RutSeasonMonths:   []time.Month{time.October, time.November},
			HuntingSeasonMonths: []time.Month{
				time.September, time.October, time.November, time.December,
			},
			FeedingPattern:      types.FeedingCrepuscular,
			WindToleranceMph:    15,
			PressureSensitivity: types.PressureSensitivityMedium,
		},
		{
			ID:                "moose",
			CommonName:        "Moose",
			ScientificName:    "Alces alces",
			OptimalTempRange:  types.TempRange{Low: 15, High: 35},
			PeakActivityHours: []types.HourWindow{{Start: 5, End: 9}, {Start: 16, End: 20}},
			RutSeasonMonths:   []time.Month{time.September, time.October},
			HuntingSeasonMonths: []time.Month{
				time.October,
			},
			FeedingPattern:      types.FeedingDiurnal,
			WindToleranceMph:    10,
			PressureSensitivity: types.PressureSensitivityHigh,
		},
		{
			ID:                "black-bear",
			CommonName:        "Black Bear",
			ScientificName:    "Ursus americanus",
			OptimalTempRange:  types.TempRange{Low: 35, High: 65},
			PeakActivityHours: []types.HourWindow{{Start: 6, End: 10}, {Start: 16, End: 20}},
			RutSeasonMonths:   []time.Month{time.June, time.July},
			HuntingSeasonMonths: []time.Month{
				time.September, time.October, time.November,
			},
			FeedingPattern:      types.FeedingDiurnal,
			WindToleranceMph:    12,
			PressureSensitivity: types.PressureSensitivityLow,
		},
		{
			ID:                "wild-turkey",
			CommonName:        "Wild Turkey",
			ScientificName:    "Meleagris gallopavo",
			OptimalTempRange:  types.TempRange{Low: 35, High: 60},
			PeakActivityHours: []types.HourWindow{{Start: 6, End: 9}, {Start: 15, End: 18}},
			RutSeasonMonths:   []time.Month{time.April, time.May},
			HuntingSeasonMonths: []time.Month{
				time.May, time.October,
			},
			FeedingPattern:      types.FeedingDiurnal,
			WindToleranceMph:    12,
			PressureSensitivity: types.PressureSensitivityLow,
		},
	}
}
