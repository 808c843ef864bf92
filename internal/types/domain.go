package types

import "time"

// EnvironmentalSnapshot contains the already-parsed weather readings for one
// evaluation request. It is an immutable value object; the scoring core never
// mutates or persists it.
type EnvironmentalSnapshot struct {
	TemperatureF       float64      `json:"temperature_f"`
	WindSpeedMph       float64      `json:"wind_speed_mph"`
	Condition          SkyCondition `json:"condition"`
	BarometricPressure float64      `json:"barometric_pressure_inhg"`
	Timestamp          time.Time    `json:"timestamp"`
}

// DayOfWeek returns the weekday derived from the snapshot timestamp.
func (s EnvironmentalSnapshot) DayOfWeek() time.Weekday {
	return s.Timestamp.Weekday()
}

// HourWindow is a half-open [Start, End) window of local clock hours.
// Windows never wrap midnight; a dawn+dusk pattern is expressed as two
// separate windows.
type HourWindow struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// Contains reports whether the given clock hour falls inside the window.
func (w HourWindow) Contains(hour int) bool {
	return hour >= w.Start && hour < w.End
}

// TempRange is the inclusive optimal temperature band for a species, in °F.
type TempRange struct {
	Low  float64 `json:"low" yaml:"low"`
	High float64 `json:"high" yaml:"high"`
}

// Contains reports whether t falls inside the optimal band.
func (r TempRange) Contains(t float64) bool {
	return t >= r.Low && t <= r.High
}

// SpeciesProfile holds the behavioral parameters for one huntable species.
// Profiles are loaded once at process start and are read-only thereafter.
type SpeciesProfile struct {
	ID                  string              `json:"id" yaml:"id"`
	CommonName          string              `json:"common_name" yaml:"common_name"`
	ScientificName      string              `json:"scientific_name,omitempty" yaml:"scientific_name"`
	OptimalTempRange    TempRange           `json:"optimal_temp_range" yaml:"optimal_temp_range"`
	PeakActivityHours   []HourWindow        `json:"peak_activity_hours" yaml:"peak_activity_hours"`
	RutSeasonMonths     []time.Month        `json:"rut_season_months" yaml:"rut_season_months"`
	HuntingSeasonMonths []time.Month        `json:"hunting_season_months" yaml:"hunting_season_months"`
	FeedingPattern      FeedingPattern      `json:"feeding_pattern" yaml:"feeding_pattern"`
	WindToleranceMph    float64             `json:"wind_tolerance_mph" yaml:"wind_tolerance_mph"`
	PressureSensitivity PressureSensitivity `json:"pressure_sensitivity" yaml:"pressure_sensitivity"`
}

// InRut reports whether the month falls in the species' breeding season.
func (p *SpeciesProfile) InRut(m time.Month) bool {
	for _, rm := range p.RutSeasonMonths {
		if rm == m {
			return true
		}
	}
	return false
}

// InHuntingSeason reports whether the month falls in the declared hunting
// season. Out-of-season evaluations score a terminal zero seasonal advantage.
func (p *SpeciesProfile) InHuntingSeason(m time.Month) bool {
	for _, hm := range p.HuntingSeasonMonths {
		if hm == m {
			return true
		}
	}
	return false
}

// LocationHabitat holds the static habitat indices for one named hunting
// location. Read-only after startup.
type LocationHabitat struct {
	ID                string           `json:"id" yaml:"id"`
	Name              string           `json:"name" yaml:"name"`
	HabitatQuality    HabitatQuality   `json:"habitat_quality" yaml:"habitat_quality"`
	PopulationDensity float64          `json:"population_density" yaml:"population_density"` // 0-100 index
	AccessDifficulty  AccessDifficulty `json:"access_difficulty" yaml:"access_difficulty"`
}

// ScoreBreakdown is the computed output of one evaluation. Every sub-score
// and both composites are clamped to [0,100]. Instances are created fresh per
// evaluation and never mutated after construction.
type ScoreBreakdown struct {
	TemperatureScore     float64       `json:"temperature_score"`
	WindScore            float64       `json:"wind_score"`
	PressureScore        float64       `json:"pressure_score"`
	VisibilityScore      float64       `json:"visibility_score"`
	WeatherAdvantage     float64       `json:"weather_advantage"`
	TimeAdvantage        float64       `json:"time_advantage"`
	SeasonalAdvantage    float64       `json:"seasonal_advantage"`
	LocationAdvantage    float64       `json:"location_advantage"`
	AnimalActivityScore  float64       `json:"animal_activity_score"`
	HuntingEffectiveness float64       `json:"hunting_effectiveness"`
	OverallRating        OverallRating `json:"overall_rating"`
}

// ScientificAnalysis echoes the species behavior parameters that drove the
// evaluation, for display alongside the scores.
type ScientificAnalysis struct {
	OptimalTempRange  [2]float64   `json:"optimal_temp_range"`
	PeakActivityHours [][2]int     `json:"peak_activity_hours"`
	RutSeason         []time.Month `json:"rut_season"`
	FeedingPatterns   string       `json:"feeding_patterns"`
}

// AdvisoryResult is the full structured advisory returned to callers. Each
// list is ordered highest-priority rule first, exactly as the rule tables
// emit them.
type AdvisoryResult struct {
	EvaluationID         string             `json:"evaluation_id"`
	SpeciesID            string             `json:"species_id"`
	LocationID           string             `json:"location_id"`
	HuntingEffectiveness float64            `json:"hunting_effectiveness"`
	AnimalActivityScore  float64            `json:"animal_activity_score"`
	OverallRating        OverallRating      `json:"overall_rating"`
	Breakdown            ScoreBreakdown     `json:"score_breakdown"`
	ScientificAnalysis   ScientificAnalysis `json:"scientific_analysis"`
	Recommendations      []string           `json:"recommendations"`
	TacticalAdvice       []string           `json:"tactical_advice"`
	EquipmentRecs        []string           `json:"equipment_recommendations"`
	RiskAssessment       []string           `json:"risk_assessment"`
	OpportunityAnalysis  []string           `json:"opportunity_analysis"`
}
