package scoring

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"huntcast/internal/types"
)

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func hasMessage(list []string, substr string) bool {
	for _, m := range list {
		if containsFold(m, substr) {
			return true
		}
	}
	return false
}

func advisoryFor(t *testing.T, snap types.EnvironmentalSnapshot, profile types.SpeciesProfile, breakdown types.ScoreBreakdown) types.AdvisoryResult {
	t.Helper()
	return synthesize(advisoryInput{
		Breakdown: breakdown,
		Snapshot:  snap,
		Profile:   profile,
	})
}

func TestRecommendations_EffectivenessBands(t *testing.T) {
	tests := []struct {
		name          string
		effectiveness float64
		want          string
	}{
		{"excellent band", 90, "Excellent hunting conditions"},
		{"good band", 70, "Good hunting conditions"},
		{"fair band", 50, "Fair hunting conditions"},
		{"poor band", 20, "Poor hunting conditions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := types.ScoreBreakdown{HuntingEffectiveness: tt.effectiveness}
			result := advisoryFor(t, validSnapshot(), testProfile(), b)
			assert.True(t, hasMessage(result.Recommendations, tt.want),
				"want %q in %v", tt.want, result.Recommendations)
		})
	}
}

func TestRecommendations_WindBands(t *testing.T) {
	snap := validSnapshot()
	profile := testProfile()

	light := advisoryFor(t, snap, profile, types.ScoreBreakdown{WindScore: 85})
	assert.True(t, hasMessage(light.Recommendations, "Light winds"))

	favorable := advisoryFor(t, snap, profile, types.ScoreBreakdown{WindScore: 57})
	assert.True(t, hasMessage(favorable.Recommendations, "Favorable winds"))
	assert.True(t, hasMessage(favorable.Recommendations, "stalking"))

	strong := advisoryFor(t, snap, profile, types.ScoreBreakdown{WindScore: 10})
	assert.True(t, hasMessage(strong.Recommendations, "Strong winds"))
}

func TestTacticalAdvice_TimeOfDay(t *testing.T) {
	profile := testProfile()
	breakdown := types.ScoreBreakdown{}

	morning := validSnapshot()
	morning.Timestamp = time.Date(2025, 10, 15, 7, 0, 0, 0, time.UTC)
	result := advisoryFor(t, morning, profile, breakdown)
	assert.True(t, hasMessage(result.TacticalAdvice, "Morning hunt"))

	evening := validSnapshot()
	evening.Timestamp = time.Date(2025, 10, 15, 18, 0, 0, 0, time.UTC)
	result = advisoryFor(t, evening, profile, breakdown)
	assert.True(t, hasMessage(result.TacticalAdvice, "Evening hunt"))

	midday := validSnapshot()
	midday.Timestamp = time.Date(2025, 10, 15, 12, 0, 0, 0, time.UTC)
	result = advisoryFor(t, midday, profile, breakdown)
	assert.True(t, hasMessage(result.TacticalAdvice, "Midday hunt"))
}

func TestEquipmentRecs_SpeciesSpecific(t *testing.T) {
	snap := validSnapshot()

	moose := testProfile()
	moose.ID = "moose"
	moose.CommonName = "Moose"
	moose.RutSeasonMonths = []time.Month{time.September, time.October}

	result := advisoryFor(t, snap, moose, types.ScoreBreakdown{})
	assert.True(t, hasMessage(result.EquipmentRecs, "Large caliber rifle"))
	assert.True(t, hasMessage(result.EquipmentRecs, "Moose calls"), "October is rut for moose")

	bear := testProfile()
	bear.ID = "black-bear"
	result = advisoryFor(t, snap, bear, types.ScoreBreakdown{})
	assert.True(t, hasMessage(result.EquipmentRecs, "Bear spray"))

	// Universal gear is always present.
	assert.True(t, hasMessage(result.EquipmentRecs, "binoculars"))
	assert.True(t, hasMessage(result.EquipmentRecs, "Range finder"))
}

func TestRiskAssessment_ExtremeConditions(t *testing.T) {
	profile := testProfile()

	gale := validSnapshot()
	gale.WindSpeedMph = 28
	result := advisoryFor(t, gale, profile, types.ScoreBreakdown{WindScore: 0})
	assert.True(t, hasMessage(result.RiskAssessment, "Extreme wind"))
	assert.True(t, hasMessage(result.RiskAssessment, "shot accuracy"))

	arctic := validSnapshot()
	arctic.TemperatureF = -10
	result = advisoryFor(t, arctic, profile, types.ScoreBreakdown{WindScore: 100})
	assert.True(t, hasMessage(result.RiskAssessment, "Hypothermia"))

	fog := validSnapshot()
	fog.Condition = types.SkyFog
	result = advisoryFor(t, fog, profile, types.ScoreBreakdown{WindScore: 100})
	assert.True(t, hasMessage(result.RiskAssessment, "Poor visibility"))
}

func TestOpportunityAnalysis_Highlights(t *testing.T) {
	profile := testProfile()

	snap := validSnapshot() // 30.15 inHg, optimal temperature, 07:30, October rut
	result := advisoryFor(t, snap, profile, types.ScoreBreakdown{WindScore: 85})

	assert.True(t, hasMessage(result.OpportunityAnalysis, "scent control"))
	assert.True(t, hasMessage(result.OpportunityAnalysis, "Optimal temperature"))
	assert.True(t, hasMessage(result.OpportunityAnalysis, "Morning prime time"))
	assert.True(t, hasMessage(result.OpportunityAnalysis, "High pressure"))
	assert.True(t, hasMessage(result.OpportunityAnalysis, "Rut season"))
}

func TestSynthesize_OrderIsStable(t *testing.T) {
	snap := validSnapshot()
	profile := testProfile()
	breakdown := types.ScoreBreakdown{
		HuntingEffectiveness: 88,
		WindScore:            57,
		TimeAdvantage:        100,
		SeasonalAdvantage:    100,
	}

	first := advisoryFor(t, snap, profile, breakdown)
	for i := 0; i < 3; i++ {
		assert.Equal(t, first, advisoryFor(t, snap, profile, breakdown))
	}
}
