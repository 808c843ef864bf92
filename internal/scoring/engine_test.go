package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"huntcast/internal/types"
)

// stubCatalog implements Catalog and SeasonSource over fixed records.
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

func testEngine() *Engine {
	catalog := &stubCatalog{
		species: map[string]types.SpeciesProfile{
			"whitetail-deer": testProfile(),
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
	return NewEngine(catalog, catalog)
}

func TestEvaluate_WorkedScenario(t *testing.T) {
	// October dawn hunt: 45°F, 8 mph wind, rising pressure, partly cloudy,
	// inside the whitetail morning activity window and the rut.
	engine := testEngine()
	snap := validSnapshot()

	result, err := engine.Evaluate(snap, "whitetail-deer", "colebrook-ridge", time.Time{})
	require.NoError(t, err)

	b := result.Breakdown
	assert.InDelta(t, 100, b.TemperatureScore, 0.1)
	assert.InDelta(t, 57.3, b.WindScore, 0.1)
	assert.InDelta(t, 95, b.PressureScore, 0.1)
	assert.InDelta(t, 85, b.VisibilityScore, 0.1)
	assert.InDelta(t, 100, b.TimeAdvantage, 0.1)
	assert.InDelta(t, 100, b.SeasonalAdvantage, 0.1)
	assert.InDelta(t, 77, b.LocationAdvantage, 0.1)
	assert.InDelta(t, 84.3, b.WeatherAdvantage, 0.1)
	assert.InDelta(t, 90.7, b.AnimalActivityScore, 0.1)

	assert.InDelta(t, 87.5, result.HuntingEffectiveness, 1.5)
	assert.Equal(t, types.RatingExcellent, result.OverallRating)

	assert.NotEmpty(t, result.EvaluationID)
	assert.Equal(t, "whitetail-deer", result.SpeciesID)
	assert.Equal(t, "colebrook-ridge", result.LocationID)

	// A moderate wind with good scent-control characteristics should surface
	// stalking advice.
	assert.Condition(t, func() bool {
		for _, rec := range result.Recommendations {
			if containsFold(rec, "stalking") {
				return true
			}
		}
		return false
	}, "expected a stalking recommendation, got %v", result.Recommendations)
}

func TestEvaluate_WindAtDoubleToleranceZeroesScore(t *testing.T) {
	engine := testEngine()
	snap := validSnapshot()
	snap.WindSpeedMph = 30 // exactly twice the whitetail tolerance

	result, err := engine.Evaluate(snap, "whitetail-deer", "colebrook-ridge", time.Time{})
	require.NoError(t, err)

	assert.Equal(t, 0.0, result.Breakdown.WindScore)

	var foundWindRisk bool
	for _, risk := range result.RiskAssessment {
		if containsFold(risk, "wind") {
			foundWindRisk = true
		}
	}
	assert.True(t, foundWindRisk, "expected a wind warning in the risk assessment, got %v", result.RiskAssessment)
}

func TestEvaluate_UnknownKeysReturnNotFound(t *testing.T) {
	engine := testEngine()
	snap := validSnapshot()

	_, err := engine.Evaluate(snap, "sasquatch", "colebrook-ridge", time.Time{})
	require.Error(t, err)
	appErr, ok := err.(*types.AppError)
	require.True(t, ok)
	assert.Equal(t, types.ErrCodeNotFoundSpecies, appErr.Code)

	_, err = engine.Evaluate(snap, "whitetail-deer", "narnia", time.Time{})
	require.Error(t, err)
	appErr, ok = err.(*types.AppError)
	require.True(t, ok)
	assert.Equal(t, types.ErrCodeNotFoundLocation, appErr.Code)
}

func TestEvaluate_OutOfSeasonIsTerminalZero(t *testing.T) {
	engine := testEngine()
	snap := validSnapshot()
	// March is outside the whitetail season entirely.
	snap.Timestamp = time.Date(2025, time.March, 15, 7, 30, 0, 0, time.UTC)

	result, err := engine.Evaluate(snap, "whitetail-deer", "colebrook-ridge", time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Breakdown.SeasonalAdvantage)
}

func TestEvaluate_TimestampOverrideWins(t *testing.T) {
	engine := testEngine()
	snap := validSnapshot() // snapshot says 07:30

	midday := time.Date(2025, time.October, 15, 12, 0, 0, 0, time.UTC)
	result, err := engine.Evaluate(snap, "whitetail-deer", "colebrook-ridge", midday)
	require.NoError(t, err)

	// 12:00 is 4 hours from the nearest window edge (8 and 17 are closer at
	// 4h/5h), so time advantage decays off its peak.
	assert.Less(t, result.Breakdown.TimeAdvantage, 100.0)
}

func TestEvaluate_Deterministic(t *testing.T) {
	engine := testEngine()
	snap := validSnapshot()

	first, err := engine.Evaluate(snap, "whitetail-deer", "colebrook-ridge", time.Time{})
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		next, err := engine.Evaluate(snap, "whitetail-deer", "colebrook-ridge", time.Time{})
		require.NoError(t, err)
		assert.Equal(t, first.Breakdown, next.Breakdown)
		assert.Equal(t, first.Recommendations, next.Recommendations)
		assert.Equal(t, first.TacticalAdvice, next.TacticalAdvice)
		assert.Equal(t, first.EquipmentRecs, next.EquipmentRecs)
		assert.Equal(t, first.RiskAssessment, next.RiskAssessment)
		assert.Equal(t, first.OpportunityAnalysis, next.OpportunityAnalysis)
	}
}

func TestEvaluate_WindMonotonicity(t *testing.T) {
	engine := testEngine()

	prev := 101.0
	for _, wind := range []float64{0, 5, 10, 15, 20, 25, 30} {
		snap := validSnapshot()
		snap.WindSpeedMph = wind

		result, err := engine.Evaluate(snap, "whitetail-deer", "colebrook-ridge", time.Time{})
		require.NoError(t, err)
		assert.LessOrEqual(t, result.HuntingEffectiveness, prev,
			"effectiveness must not rise as wind climbs to %v mph", wind)
		prev = result.HuntingEffectiveness
	}
}

func TestEvaluate_RatingMatchesReportedScore(t *testing.T) {
	engine := testEngine()

	// Sweep a grid of inputs; the rating must always be the band of the
	// reported (rounded) effectiveness, never of an internal unrounded value.
	for _, temp := range []float64{-20, 10, 45, 70, 95} {
		for _, wind := range []float64{0, 12, 28} {
			for _, pressure := range []float64{29.3, 30.05, 30.25} {
				snap := validSnapshot()
				snap.TemperatureF = temp
				snap.WindSpeedMph = wind
				snap.BarometricPressure = pressure

				result, err := engine.Evaluate(snap, "whitetail-deer", "colebrook-ridge", time.Time{})
				require.NoError(t, err)
				assert.Equal(t, types.RatingForScore(result.HuntingEffectiveness), result.OverallRating)
				assert.GreaterOrEqual(t, result.HuntingEffectiveness, 0.0)
				assert.LessOrEqual(t, result.HuntingEffectiveness, 100.0)
			}
		}
	}
}

func TestTimeAdvantage_CircularDistance(t *testing.T) {
	profile := testProfile()

	tests := []struct {
		name string
		at   time.Time
		want float64
	}{
		{"inside morning window", time.Date(2025, 10, 15, 7, 0, 0, 0, time.UTC), 100},
		{"inside evening window", time.Date(2025, 10, 15, 18, 0, 0, 0, time.UTC), 100},
		{"half hour before dawn window", time.Date(2025, 10, 15, 5, 30, 0, 0, time.UTC), 90},
		{"two hours past morning window", time.Date(2025, 10, 15, 10, 0, 0, 0, time.UTC), 60},
		{"deep midnight hits the floor", time.Date(2025, 10, 15, 0, 30, 0, 0, time.UTC), 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, timeAdvantage(profile, tt.at), 0.01)
		})
	}
}

func TestSeasonalAdvantage_Bands(t *testing.T) {
	profile := testProfile() // rut Oct-Nov, season Sep-Dec

	tests := []struct {
		name     string
		month    time.Month
		inSeason bool
		want     float64
	}{
		{"rut month", time.October, true, 100},
		{"adjacent to rut", time.September, true, 80},
		{"tail of season past rut", time.December, true, 80},
		{"out of season is terminal", time.March, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, seasonalAdvantage(profile, tt.month, tt.inSeason))
		})
	}
}

func TestLocationAdvantage_Blend(t *testing.T) {
	l := types.LocationHabitat{
		HabitatQuality:    types.HabitatGood,
		PopulationDensity: 80,
	}
	assert.InDelta(t, 77, locationAdvantage(l), 0.01)

	l = types.LocationHabitat{
		HabitatQuality:    types.HabitatExcellent,
		PopulationDensity: 85,
	}
	assert.InDelta(t, 91, locationAdvantage(l), 0.01)
}
