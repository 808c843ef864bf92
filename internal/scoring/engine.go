package scoring

import (
	"math"
	"time"

	"github.com/google/uuid"

	"huntcast/internal/types"
)

// Composite weight vectors. These are fixed policy, calibrated against the
// worked examples in the test suite, not a per-call contract.
const (
	activityWeightTemperature = 0.30
	activityWeightWind        = 0.20
	activityWeightPressure    = 0.15
	activityWeightTime        = 0.20
	activityWeightSeasonal    = 0.15

	effectivenessWeightActivity = 0.40
	effectivenessWeightWeather  = 0.20
	effectivenessWeightTime     = 0.20
	effectivenessWeightLocation = 0.20
)

// Time advantage decay: points lost per hour of distance from the nearest
// peak activity window, down to a floor.
const (
	timeDecayPerHour = 20.0
	timeScoreFloor   = 20.0
)

// Seasonal advantage levels. Out of hunting season is a terminal zero, not a
// degraded score.
const (
	seasonalRut      = 100.0
	seasonalNearRut  = 80.0
	seasonalBaseline = 60.0
)

// Location advantage weighting over habitat quality and population density.
const (
	locationWeightHabitat = 0.6
	locationWeightDensity = 0.4
)

// Catalog resolves species and location identifiers to their static records.
// Implemented by profiles.Store.
type Catalog interface {
	Species(id string) (types.SpeciesProfile, error)
	Location(id string) (types.LocationHabitat, error)
}

// SeasonSource reports whether a species may be hunted in a given month.
// The season calendar is owned by the regulations collaborator; the engine
// only consumes the boolean answer.
type SeasonSource interface {
	InHuntingSeason(speciesID string, month time.Month) bool
}

// Engine combines normalized environmental scores with species- and
// location-derived advantages into the composite effectiveness scores, and
// hands the result to the recommendation synthesizer. Stateless; safe for
// concurrent use.
type Engine struct {
	catalog Catalog
	seasons SeasonSource
}

// NewEngine creates an Engine over the given catalog and season calendar.
func NewEngine(catalog Catalog, seasons SeasonSource) *Engine {
	return &Engine{catalog: catalog, seasons: seasons}
}

// Evaluate runs the full scoring pipeline for one request: resolve the
// species and location (NotFound on unknown keys), normalize the snapshot
// (InvalidInput on implausible readings), compute the score breakdown, and
// synthesize the advisory lists. No partial result is ever returned on error.
//
// If ts is non-zero it overrides the snapshot's own timestamp, so callers can
// evaluate hypothetical times against current readings.
func (e *Engine) Evaluate(snap types.EnvironmentalSnapshot, speciesID, locationID string, ts time.Time) (*types.AdvisoryResult, error) {
	if !ts.IsZero() {
		snap.Timestamp = ts
	}

	profile, err := e.catalog.Species(speciesID)
	if err != nil {
		return nil, err
	}
	location, err := e.catalog.Location(locationID)
	if err != nil {
		return nil, err
	}

	breakdown, err := e.Score(snap, profile, location)
	if err != nil {
		return nil, err
	}

	result := synthesize(advisoryInput{
		Breakdown: breakdown,
		Snapshot:  snap,
		Profile:   profile,
	})

	result.EvaluationID = uuid.NewString()
	result.SpeciesID = speciesID
	result.LocationID = locationID
	result.ScientificAnalysis = scientificAnalysis(profile)
	return &result, nil
}

// Score computes the full ScoreBreakdown for a snapshot against a resolved
// species profile and location habitat. Exposed separately from Evaluate so
// the outlook builder can score without re-resolving catalog entries.
func (e *Engine) Score(snap types.EnvironmentalSnapshot, profile types.SpeciesProfile, location types.LocationHabitat) (types.ScoreBreakdown, error) {
	env, err := Normalize(snap, profile)
	if err != nil {
		return types.ScoreBreakdown{}, err
	}

	timeAdv := timeAdvantage(profile, snap.Timestamp)
	inSeason := e.seasons.InHuntingSeason(profile.ID, snap.Timestamp.Month())
	seasonalAdv := seasonalAdvantage(profile, snap.Timestamp.Month(), inSeason)
	locationAdv := locationAdvantage(location)

	weatherAdv := (env.Temperature + env.Wind + env.Pressure + env.Visibility) / 4

	activity := clamp(
		activityWeightTemperature*env.Temperature+
			activityWeightWind*env.Wind+
			activityWeightPressure*env.Pressure+
			activityWeightTime*timeAdv+
			activityWeightSeasonal*seasonalAdv,
		0, 100)

	effectiveness := round1(clamp(
		effectivenessWeightActivity*activity+
			effectivenessWeightWeather*weatherAdv+
			effectivenessWeightTime*timeAdv+
			effectivenessWeightLocation*locationAdv,
		0, 100))

	return types.ScoreBreakdown{
		TemperatureScore:     round1(env.Temperature),
		WindScore:            round1(env.Wind),
		PressureScore:        round1(env.Pressure),
		VisibilityScore:      round1(env.Visibility),
		WeatherAdvantage:     round1(weatherAdv),
		TimeAdvantage:        round1(timeAdv),
		SeasonalAdvantage:    round1(seasonalAdv),
		LocationAdvantage:    round1(locationAdv),
		AnimalActivityScore:  round1(activity),
		HuntingEffectiveness: effectiveness,
		OverallRating:        types.RatingForScore(effectiveness),
	}, nil
}

// timeAdvantage is 100 inside any peak activity window and degrades smoothly
// with circular clock distance from the nearest window edge, never below the
// floor. Fractional hours count, so 05:30 is half an hour from a 6 o'clock
// window start.
func timeAdvantage(profile types.SpeciesProfile, t time.Time) float64 {
	hour := float64(t.Hour()) + float64(t.Minute())/60

	nearest := math.MaxFloat64
	for _, w := range profile.PeakActivityHours {
		if hour >= float64(w.Start) && hour < float64(w.End) {
			return 100
		}
		d := math.Min(clockDistance(hour, float64(w.Start)), clockDistance(hour, float64(w.End)))
		if d < nearest {
			nearest = d
		}
	}

	return clamp(100-nearest*timeDecayPerHour, timeScoreFloor, 100)
}

// clockDistance is the shorter distance between two clock hours on the
// 24-hour circle.
func clockDistance(a, b float64) float64 {
	d := math.Abs(a - b)
	if d > 12 {
		d = 24 - d
	}
	return d
}

// seasonalAdvantage is a terminal zero outside the declared hunting season.
// In season, rut months score highest, months adjacent to the rut score
// nearly as high, and the rest of the season scores a huntable baseline.
func seasonalAdvantage(profile types.SpeciesProfile, month time.Month, inSeason bool) float64 {
	if !inSeason {
		return 0
	}
	if profile.InRut(month) {
		return seasonalRut
	}
	if profile.InRut(prevMonth(month)) || profile.InRut(nextMonth(month)) {
		return seasonalNearRut
	}
	return seasonalBaseline
}

func prevMonth(m time.Month) time.Month {
	if m == time.January {
		return time.December
	}
	return m - 1
}

func nextMonth(m time.Month) time.Month {
	if m == time.December {
		return time.January
	}
	return m + 1
}

// locationAdvantage is a fixed weighted blend of habitat quality and
// population density.
func locationAdvantage(l types.LocationHabitat) float64 {
	return clamp(locationWeightHabitat*l.HabitatQuality.Score()+locationWeightDensity*l.PopulationDensity, 0, 100)
}

// scientificAnalysis echoes the profile parameters that drove the scores in
// the wire shape consumed by the UI and chat collaborators.
func scientificAnalysis(p types.SpeciesProfile) types.ScientificAnalysis {
	hours := make([][2]int, len(p.PeakActivityHours))
	for i, w := range p.PeakActivityHours {
		hours[i] = [2]int{w.Start, w.End}
	}
	return types.ScientificAnalysis{
		OptimalTempRange:  [2]float64{p.OptimalTempRange.Low, p.OptimalTempRange.High},
		PeakActivityHours: hours,
		RutSeason:         p.RutSeasonMonths,
		FeedingPatterns:   string(p.FeedingPattern),
	}
}

// round1 rounds to one decimal place for stable presentation. Scores are
// computed in full precision and rounded only at the breakdown boundary.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
