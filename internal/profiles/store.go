package profiles

import (
	"fmt"
	"sort"
	"time"

	"huntcast/internal/types"
)

// Store is the read-only catalog of species profiles and location habitats.
// Construction validates every record; after NewStore returns, the maps are
// never written again, so concurrent lookups are safe without locking.
type Store struct {
	species   map[string]types.SpeciesProfile
	locations map[string]types.LocationHabitat
}

// NewStore builds a Store from the builtin tables, then applies the optional
// override set on top. Any invalid record fails construction with a config_
// AppError; startup must abort rather than serve silently-wrong scores.
func NewStore(override *Override) (*Store, error) {
	s := &Store{
		species:   make(map[string]types.SpeciesProfile),
		locations: make(map[string]types.LocationHabitat),
	}

	for _, p := range builtinSpecies() {
		if err := validateSpecies(p); err != nil {
			return nil, err
		}
		s.species[p.ID] = p
	}
	for _, l := range builtinLocations() {
		if err := validateLocation(l); err != nil {
			return nil, err
		}
		s.locations[l.ID] = l
	}

	if override != nil {
		for _, p := range override.Species {
			if err := validateSpecies(p); err != nil {
				return nil, err
			}
			s.species[p.ID] = p
		}
		for _, l := range override.Locations {
			if err := validateLocation(l); err != nil {
				return nil, err
			}
			s.locations[l.ID] = l
		}
	}

	return s, nil
}

// Species returns the profile for the given species ID. Unknown IDs fail
// explicitly with not_found_species; the store never returns a defaulted
// record, to avoid masking configuration gaps.
func (s *Store) Species(id string) (types.SpeciesProfile, error) {
	p, ok := s.species[id]
	if !ok {
		return types.SpeciesProfile{}, types.NewAppErrorWithDetails(
			types.ErrCodeNotFoundSpecies,
			"unknown species",
			nil,
			map[string]any{"species_id": id},
		)
	}
	return p, nil
}

// Location returns the habitat record for the given location ID, or a
// not_found_location error.
func (s *Store) Location(id string) (types.LocationHabitat, error) {
	l, ok := s.locations[id]
	if !ok {
		return types.LocationHabitat{}, types.NewAppErrorWithDetails(
			types.ErrCodeNotFoundLocation,
			"unknown location",
			nil,
			map[string]any{"location_id": id},
		)
	}
	return l, nil
}

// ListSpecies returns all species profiles sorted by ID for stable output.
func (s *Store) ListSpecies() []types.SpeciesProfile {
	out := make([]types.SpeciesProfile, 0, len(s.species))
	for _, p := range s.species {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ListLocations returns all location habitats sorted by ID.
func (s *Store) ListLocations() []types.LocationHabitat {
	out := make([]types.LocationHabitat, 0, len(s.locations))
	for _, l := range s.locations {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// InHuntingSeason implements the season lookup the scoring engine consumes.
// It reports whether the species may be hunted in the given month. Unknown
// species IDs report false; the engine resolves the profile first, so this
// path is only reachable with a known ID.
func (s *Store) InHuntingSeason(speciesID string, month time.Month) bool {
	p, ok := s.species[speciesID]
	if !ok {
		return false
	}
	return p.InHuntingSeason(month)
}

func validateSpecies(p types.SpeciesProfile) error {
	fail := func(msg string) error {
		return types.NewAppErrorWithDetails(
			types.ErrCodeConfigInvalidProfile,
			msg,
			nil,
			map[string]any{"species_id": p.ID},
		)
	}

	if p.ID == "" {
		return fail("species profile is missing an id")
	}
	if p.CommonName == "" {
		return fail("species profile is missing a common name")
	}
	if p.OptimalTempRange.Low >= p.OptimalTempRange.High {
		return fail(fmt.Sprintf("optimal temperature range low (%.1f) must be below high (%.1f)",
			p.OptimalTempRange.Low, p.OptimalTempRange.High))
	}
	if len(p.PeakActivityHours) == 0 {
		return fail("species profile has no peak activity windows")
	}
	for _, w := range p.PeakActivityHours {
		if w.Start < 0 || w.Start >= 24 || w.End <= 0 || w.End > 24 || w.Start >= w.End {
			return fail(fmt.Sprintf("peak activity window [%d,%d) is outside [0,24)", w.Start, w.End))
		}
	}
	if len(p.HuntingSeasonMonths) == 0 {
		return fail("species profile has no hunting season months")
	}
	for _, m := range append(append([]time.Month{}, p.RutSeasonMonths...), p.HuntingSeasonMonths...) {
		if m < time.January || m > time.December {
			return fail(fmt.Sprintf("month %d is out of range", m))
		}
	}
	if !p.FeedingPattern.Valid() {
		return fail("unrecognized feeding pattern")
	}
	if p.WindToleranceMph <= 0 {
		return fail("wind tolerance must be positive")
	}
	if !p.PressureSensitivity.Valid() {
		return fail("unrecognized pressure sensitivity")
	}
	return nil
}

func validateLocation(l types.LocationHabitat) error {
	fail := func(msg string) error {
		return types.NewAppErrorWithDetails(
			types.ErrCodeConfigInvalidHabitat,
			msg,
			nil,
			map[string]any{"location_id": l.ID},
		)
	}

	if l.ID == "" {
		return fail("location habitat is missing an id")
	}
	if l.Name == "" {
		return fail("location habitat is missing a name")
	}
	if !l.HabitatQuality.Valid() {
		return fail("unrecognized habitat quality")
	}
	if l.PopulationDensity < 0 || l.PopulationDensity > 100 {
		return fail(fmt.Sprintf("population density index %.1f is outside [0,100]", l.PopulationDensity))
	}
	if !l.AccessDifficulty.Valid() {
		return fail("unrecognized access difficulty")
	}
	return nil
}
