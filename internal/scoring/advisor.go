package scoring

import (
	"fmt"

	"huntcast/internal/types"
)

// advisoryInput is everything a rule predicate may inspect: the computed
// breakdown plus the raw snapshot and profile that produced it.
type advisoryInput struct {
	Breakdown types.ScoreBreakdown
	Snapshot  types.EnvironmentalSnapshot
	Profile   types.SpeciesProfile
}

func (in advisoryInput) hour() int {
	return in.Snapshot.Timestamp.Hour()
}

func (in advisoryInput) inRut() bool {
	return in.Profile.InRut(in.Snapshot.Timestamp.Month())
}

// rule is one entry of an advisory table: when the predicate matches, the
// rendered message is appended. Tables are evaluated top to bottom, so
// higher-priority rules come first.
type rule struct {
	when   func(advisoryInput) bool
	render func(advisoryInput) string
}

// static wraps a fixed message as a render function, which keeps the tables
// declarative for the common case.
func static(message string) func(advisoryInput) string {
	return func(advisoryInput) string { return message }
}

func always(advisoryInput) bool { return true }

// recommendationRules drive the top-level recommendations list.
var recommendationRules = []rule{
	{func(in advisoryInput) bool { return in.Breakdown.HuntingEffectiveness >= types.RatingExcellentFloor },
		static("Excellent hunting conditions - High success probability")},
	{func(in advisoryInput) bool {
		return in.Breakdown.HuntingEffectiveness >= types.RatingGoodFloor &&
			in.Breakdown.HuntingEffectiveness < types.RatingExcellentFloor
	}, static("Good hunting conditions - Moderate success probability")},
	{func(in advisoryInput) bool {
		return in.Breakdown.HuntingEffectiveness >= types.RatingFairFloor &&
			in.Breakdown.HuntingEffectiveness < types.RatingGoodFloor
	}, static("Fair hunting conditions - Focus on peak activity hours")},
	{func(in advisoryInput) bool { return in.Breakdown.HuntingEffectiveness < types.RatingFairFloor },
		static("Poor hunting conditions - Consider waiting for better weather")},

	{func(in advisoryInput) bool { return in.Profile.OptimalTempRange.Contains(in.Snapshot.TemperatureF) },
		func(in advisoryInput) string {
			return fmt.Sprintf("Optimal temperature range (%.0f-%.0f°F) for %s activity",
				in.Profile.OptimalTempRange.Low, in.Profile.OptimalTempRange.High, in.Profile.FeedingPattern)
		}},
	{func(in advisoryInput) bool { return in.Snapshot.TemperatureF < in.Profile.OptimalTempRange.Low },
		static("Cold temperatures - Animals may be less active")},
	{func(in advisoryInput) bool { return in.Snapshot.TemperatureF > in.Profile.OptimalTempRange.High },
		static("Warm temperatures - Animals may seek shade")},

	{func(in advisoryInput) bool { return in.Breakdown.WindScore >= 80 },
		static("Light winds - Excellent for stalking and scent control")},
	{func(in advisoryInput) bool { return in.Breakdown.WindScore >= 50 && in.Breakdown.WindScore < 80 },
		static("Favorable winds - Work the wind direction to your stalking advantage")},
	{func(in advisoryInput) bool { return in.Breakdown.WindScore < 40 },
		static("Strong winds - May affect animal movement and shot accuracy")},

	{func(in advisoryInput) bool { return in.Breakdown.TimeAdvantage >= 90 },
		static("Prime hunting time - Animals most active")},
	{func(in advisoryInput) bool { return in.Breakdown.TimeAdvantage < 60 },
		static("Consider hunting during peak activity hours")},

	{func(in advisoryInput) bool { return in.inRut() },
		static("Peak rut season - Animals most active and vocal")},
	{func(in advisoryInput) bool { return !in.inRut() && in.Breakdown.SeasonalAdvantage >= seasonalNearRut },
		static("Near rut season - Good hunting opportunities")},
}

// tacticalRules drive the tactical advice list.
var tacticalRules = []rule{
	{func(in advisoryInput) bool { return in.Breakdown.WindScore >= 80 },
		static("Use wind to your advantage - Approach from downwind")},
	{func(in advisoryInput) bool { return in.Snapshot.WindSpeedMph > 10 },
		static("Strong winds - Use terrain features for wind breaks")},
	{func(in advisoryInput) bool { return in.hour() >= 6 && in.hour() < 9 },
		static("Morning hunt - Focus on feeding areas and travel corridors")},
	{func(in advisoryInput) bool { return in.hour() >= 16 && in.hour() < 20 },
		static("Evening hunt - Set up near food sources and water")},
	{func(in advisoryInput) bool { return in.hour() >= 10 && in.hour() < 15 },
		static("Midday hunt - Focus on bedding areas and thick cover")},
	{func(in advisoryInput) bool { return in.Snapshot.Condition == types.SkyOvercast },
		static("Overcast conditions - Good for movement, fewer shadows")},
	{func(in advisoryInput) bool { return in.Snapshot.Condition == types.SkyLightRain },
		static("Light rain - May mask human scent and movement")},
	{func(in advisoryInput) bool { return in.Snapshot.TemperatureF <= 40 },
		static("Cold weather - Animals more active, less cautious")},
	{func(in advisoryInput) bool { return in.Profile.FeedingPattern == types.FeedingCrepuscular },
		static("Crepuscular species - Concentrate effort at dawn and dusk")},
	{func(in advisoryInput) bool { return in.Profile.FeedingPattern == types.FeedingDiurnal },
		static("Diurnal species - Expect daylight movement")},
	{func(in advisoryInput) bool { return in.Profile.FeedingPattern == types.FeedingNocturnal },
		static("Nocturnal species - Catch movement at first and last light")},
}

// equipmentRules drive the equipment suggestions list.
var equipmentRules = []rule{
	{func(in advisoryInput) bool { return in.Snapshot.TemperatureF < 30 },
		static("Heavy insulated clothing and boots")},
	{func(in advisoryInput) bool { return in.Snapshot.TemperatureF >= 30 && in.Snapshot.TemperatureF < 50 },
		static("Medium-weight clothing with layers")},
	{func(in advisoryInput) bool { return in.Snapshot.TemperatureF >= 50 },
		static("Lightweight, breathable clothing")},
	{func(in advisoryInput) bool {
		c := in.Snapshot.Condition
		return c == types.SkyLightRain || c == types.SkyHeavyRain || c == types.SkySnow
	}, static("Waterproof outer layer and rain cover for equipment")},
	{func(in advisoryInput) bool { return in.Snapshot.WindSpeedMph > 15 },
		static("Wind-resistant clothing and face protection")},

	{speciesIs("moose"), static("Large caliber rifle (.30-06 or larger) with scope")},
	{func(in advisoryInput) bool { return in.Profile.ID == "moose" && in.inRut() },
		static("Moose calls for the rut")},
	{speciesIs("whitetail-deer"), static("Medium caliber rifle (.243 to .30-06) with scope")},
	{speciesIs("whitetail-deer"), static("Deer calls and scent attractants")},
	{speciesIs("black-bear"), static("Heavy caliber rifle (.30-06 or larger) with scope")},
	{speciesIs("black-bear"), static("Bear spray")},
	{speciesIs("wild-turkey"), static("Decoys, box or slate calls, full camouflage")},

	{always, static("Quality binoculars for spotting")},
	{always, static("Range finder for accurate shooting")},
}

// riskRules drive the risk assessment list.
var riskRules = []rule{
	{func(in advisoryInput) bool { return in.Snapshot.WindSpeedMph > 25 },
		static("Extreme wind speeds - Dangerous hunting conditions")},
	{func(in advisoryInput) bool { return in.Breakdown.WindScore < 40 },
		static("Moderate to high winds - May affect shot accuracy")},
	{func(in advisoryInput) bool { return in.Snapshot.TemperatureF < 0 },
		static("Sub-zero temperatures - Hypothermia risk")},
	{func(in advisoryInput) bool { return in.Snapshot.TemperatureF > 90 },
		static("Extreme heat - Heat exhaustion risk")},
	{func(in advisoryInput) bool { return in.Snapshot.TemperatureF < 20 },
		static("Cold weather - Equipment may malfunction")},
	{func(in advisoryInput) bool {
		c := in.Snapshot.Condition
		return c == types.SkyHeavyRain || c == types.SkySnow || c == types.SkyFog
	}, static("Poor visibility - Safety and accuracy concerns")},
	{func(in advisoryInput) bool { return in.hour() < 5 || in.hour() > 21 },
		static("Limited light - Night movement safety concerns")},
	{speciesIs("black-bear"), static("Bear encounters - Carry bear spray")},
}

// opportunityRules drive the opportunity analysis list.
var opportunityRules = []rule{
	{func(in advisoryInput) bool { return in.Breakdown.WindScore >= 80 },
		static("Light winds - Excellent for scent control and stalking")},
	{func(in advisoryInput) bool { return in.Profile.OptimalTempRange.Contains(in.Snapshot.TemperatureF) },
		func(in advisoryInput) string {
			return fmt.Sprintf("Optimal temperature for %s activity", in.Profile.CommonName)
		}},
	{func(in advisoryInput) bool { return in.Snapshot.TemperatureF >= 20 && in.Snapshot.TemperatureF <= 60 },
		static("Comfortable temperatures - Extended hunting time possible")},
	{func(in advisoryInput) bool {
		c := in.Snapshot.Condition
		return c == types.SkyClear || c == types.SkySunny
	}, static("Clear skies - Good visibility and tracking conditions")},
	{func(in advisoryInput) bool { return in.Snapshot.Condition == types.SkyOvercast },
		static("Overcast skies - Reduced shadows, good for movement")},
	{func(in advisoryInput) bool { return in.hour() >= 6 && in.hour() < 9 },
		static("Morning prime time - Animals feeding and moving")},
	{func(in advisoryInput) bool { return in.hour() >= 17 && in.hour() < 20 },
		static("Evening prime time - Animals returning to feed")},
	{func(in advisoryInput) bool { return in.Snapshot.BarometricPressure >= 30.1 },
		static("High pressure system - Increased feeding activity")},
	{func(in advisoryInput) bool { return in.inRut() },
		static("Rut season - Animals most active and vocal")},
}

func speciesIs(id string) func(advisoryInput) bool {
	return func(in advisoryInput) bool { return in.Profile.ID == id }
}

// evalRules walks a table in order and collects the rendered message of every
// matching rule. Predicates are mutually informative rather than mutually
// exclusive, so no deduplication happens.
func evalRules(table []rule, in advisoryInput) []string {
	out := make([]string, 0, 4)
	for _, r := range table {
		if r.when(in) {
			out = append(out, r.render(in))
		}
	}
	return out
}

// synthesize maps a score breakdown (plus the raw inputs that produced it)
// to the five advisory lists. Pure function; identical inputs always yield
// identical output in identical order.
func synthesize(in advisoryInput) types.AdvisoryResult {
	return types.AdvisoryResult{
		HuntingEffectiveness: in.Breakdown.HuntingEffectiveness,
		AnimalActivityScore:  in.Breakdown.AnimalActivityScore,
		OverallRating:        in.Breakdown.OverallRating,
		Breakdown:            in.Breakdown,
		Recommendations:      evalRules(recommendationRules, in),
		TacticalAdvice:       evalRules(tacticalRules, in),
		EquipmentRecs:        evalRules(equipmentRules, in),
		RiskAssessment:       evalRules(riskRules, in),
		OpportunityAnalysis:  evalRules(opportunityRules, in),
	}
}
