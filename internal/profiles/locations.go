package profiles

import "huntcast/internal/types"

// builtinLocations is the default habitat table for named hunting areas in
// the coverage region. PopulationDensity is a 0-100 relative index, not an
// animals-per-square-mile figure.
func builtinLocations() []types.LocationHabitat {
	return []types.LocationHabitat{
		{
			ID:                "connecticut-lakes",
			Name:              "Connecticut Lakes Region",
			HabitatQuality:    types.HabitatExcellent,
			PopulationDensity: 85,
			AccessDifficulty:  types.AccessModerate,
		},
		{
			ID:                "dixville-notch",
			Name:              "Dixville Notch",
			HabitatQuality:    types.HabitatExcellent,
			PopulationDensity: 70,
			AccessDifficulty:  types.AccessDifficult,
		},
		{
			ID:                "colebrook-ridge",
			Name:              "Colebrook Ridge",
			HabitatQuality:    types.HabitatGood,
			PopulationDensity: 80,
			AccessDifficulty:  types.AccessEasy,
		},
		{
			ID:                "pittsburg",
			Name:              "Pittsburg Backcountry",
			HabitatQuality:    types.HabitatGood,
			PopulationDensity: 72,
			AccessDifficulty:  types.AccessModerate,
		},
		{
			ID:                "indian-stream",
			Name:              "Indian Stream Wetlands",
			HabitatQuality:    types.HabitatFair,
			PopulationDensity: 60,
			AccessDifficulty:  types.AccessModerate,
		},
	}
}
