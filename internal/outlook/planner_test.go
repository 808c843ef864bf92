package outlook

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"huntcast/internal/scoring"
	"huntcast/internal/types"
	"huntcast/internal/weather"
)

type stubCatalog struct {
	species   map[string]types.SpeciesProfile
	locations map[string]types.LocationHabitat
}

func (c *stubCatalog) Species(id string) (types.SpeciesProfile, error) {
	p, ok := c.species[id]
	if !ok {
		return types.SpeciesProfile{}, types.NewAppError(types.ErrCodeNotFoundSpecies, "unknown species", nil)
	}
	return p, nil
}

func (c *stubCatalog) Location(id string) (types.LocationHabitat, error) {
	l, ok := c.locations[id]
	if !ok {
		return types.LocationHabitat{}, types.NewAppError(types.ErrCodeNotFoundLocation, "unknown location", nil)
	}
	return l, nil
}

func (c *stubCatalog) InHuntingSeason(speciesID string, month time.Month) bool {
	p, ok := c.species[speciesID]
	if !ok {
		return false
	}
	return p.InHuntingSeason(month)
}

func (c *stubCatalog) ListSpecies() []types.SpeciesProfile {
	out := make([]types.SpeciesProfile, 0, len(c.species))
	for _, p := range c.species {
		out = append(out, p)
	}
	return out
}

type stubSource struct {
	forecast []weather.DailyForecast
	err      error
}

func (s *stubSource) Current(context.Context) (types.EnvironmentalSnapshot, error) {
	if len(s.forecast) == 0 {
		return types.EnvironmentalSnapshot{}, s.err
	}
	return s.forecast[0].Snapshot, s.err
}

func (s *stubSource) Forecast(_ context.Context, days int) ([]weather.DailyForecast, error) {
	if s.err != nil {
		return nil, s.err
	}
	if days > len(s.forecast) {
		days = len(s.forecast)
	}
	return s.forecast[:days], nil
}

func deerProfile() types.SpeciesProfile {
	return types.SpeciesProfile{
		ID:                  "whitetail-deer",
		CommonName:          "White-tailed Deer",
		OptimalTempRange:    types.TempRange{Low: 25, High: 55},
		PeakActivityHours:   []types.HourWindow{{Start: 6, End: 8}, {Start: 17, End: 19}},
		RutSeasonMonths:     []time.Month{time.October, time.November},
		HuntingSeasonMonths: []time.Month{time.September, time.October, time.November, time.December},
		FeedingPattern:      types.FeedingCrepuscular,
		WindToleranceMph:    15,
		PressureSensitivity: types.PressureSensitivityMedium,
	}
}

func turkeyProfile() types.SpeciesProfile {
	return types.SpeciesProfile{
		ID:                  "wild-turkey",
		CommonName:          "Wild Turkey",
		OptimalTempRange:    types.TempRange{Low: 35, High: 60},
		PeakActivityHours:   []types.HourWindow{{Start: 6, End: 9}},
		RutSeasonMonths:     []time.Month{time.April, time.May},
		HuntingSeasonMonths: []time.Month{time.May, time.October},
		FeedingPattern:      types.FeedingDiurnal,
		WindToleranceMph:    12,
		PressureSensitivity: types.PressureSensitivityLow,
	}
}

func snapshotFor(day int, windMph float64) types.EnvironmentalSnapshot {
	return types.EnvironmentalSnapshot{
		TemperatureF:       45,
		WindSpeedMph:       windMph,
		Condition:          types.SkyPartlyCloudy,
		BarometricPressure: 30.15,
		Timestamp:          time.Date(2025, time.October, day, 7, 0, 0, 0, time.UTC),
	}
}

func testPlanner(source weather.Source) *Planner {
	catalog := &stubCatalog{
		species: map[string]types.SpeciesProfile{
			"whitetail-deer": deerProfile(),
			"wild-turkey":    turkeyProfile(),
		},
		locations: map[string]types.LocationHabitat{
			"colebrook-ridge": {
				ID:                "colebrook-ridge",
				Name:              "Colebrook Ridge",
				HabitatQuality:    types.HabitatGood,
				PopulationDensity: 80,
				AccessDifficulty:  types.AccessEasy,
			},
		},
	}
	engine := scoring.NewEngine(catalog, catalog)
	return NewPlanner(engine, source, catalog, 7, 4)
}

func TestBuild_ScoresEveryDayAndSpecies(t *testing.T) {
	source := &stubSource{forecast: []weather.DailyForecast{
		{Date: time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), Snapshot: snapshotFor(15, 5)},
		{Date: time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC), Snapshot: snapshotFor(16, 20)},
		{Date: time.Date(2025, 10, 17, 0, 0, 0, 0, time.UTC), Snapshot: snapshotFor(17, 35)},
	}}

	out, err := testPlanner(source).Build(context.Background(), 3,
		[]string{"whitetail-deer", "wild-turkey"}, "colebrook-ridge")
	require.NoError(t, err)

	require.Len(t, out.Days, 3)
	for _, day := range out.Days {
		require.Len(t, day.Entries, 2)
		// Entries are sorted best-first.
		assert.GreaterOrEqual(t, day.Entries[0].HuntingEffectiveness, day.Entries[1].HuntingEffectiveness)
		assert.Equal(t, day.Entries[0].SpeciesID, day.BestSpecies)
	}

	// The calm first day must beat the windy days.
	assert.Equal(t, "2025-10-15", out.BestDay)
	assert.Greater(t, out.BestScore, 0.0)
}

func TestBuild_EmptySpeciesMeansWholeCatalog(t *testing.T) {
	source := &stubSource{forecast: []weather.DailyForecast{
		{Date: time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), Snapshot: snapshotFor(15, 5)},
	}}

	out, err := testPlanner(source).Build(context.Background(), 1, nil, "colebrook-ridge")
	require.NoError(t, err)
	require.Len(t, out.Days, 1)
	assert.Len(t, out.Days[0].Entries, 2)
}

func TestBuild_DaysOutOfRange(t *testing.T) {
	planner := testPlanner(&stubSource{})

	for _, days := range []int{0, -1, 8} {
		_, err := planner.Build(context.Background(), days, nil, "colebrook-ridge")
		require.Error(t, err, "days=%d", days)
		appErr, ok := err.(*types.AppError)
		require.True(t, ok)
		assert.Equal(t, types.ErrCodeValidationOutlookDays, appErr.Code)
	}
}

func TestBuild_UnknownLocationFailsWhole(t *testing.T) {
	source := &stubSource{forecast: []weather.DailyForecast{
		{Date: time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC), Snapshot: snapshotFor(15, 5)},
	}}

	_, err := testPlanner(source).Build(context.Background(), 1, nil, "narnia")
	require.Error(t, err)
	appErr, ok := err.(*types.AppError)
	require.True(t, ok)
	assert.Equal(t, types.ErrCodeNotFoundLocation, appErr.Code)
}

func TestBuild_ProviderFailurePropagates(t *testing.T) {
	source := &stubSource{err: types.NewAppError(types.ErrCodeUpstreamWeather, "provider down", nil)}

	_, err := testPlanner(source).Build(context.Background(), 2, nil, "colebrook-ridge")
	require.Error(t, err)
	appErr, ok := err.(*types.AppError)
	require.True(t, ok)
	assert.Equal(t, types.ErrCodeUpstreamWeather, appErr.Code)
}
