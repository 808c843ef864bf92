// Package scoring implements the hunting conditions scoring engine: the
// environmental snapshot normalizer, the composite scoring engine, and the
// recommendation synthesizer. Everything here is a pure, synchronous
// computation over immutable inputs; the package holds no mutable state and
// is safe for concurrent use.
package scoring

import (
	"huntcast/internal/types"
)

// windScoreAtTolerance is the wind score at exactly the species' wind
// tolerance. Wind never fully zeroes out activity until well past tolerance,
// but it penalizes heavily.
const windScoreAtTolerance = 20.0

// visibilityTable maps sky-condition tags to the hunter-visibility base
// score. This reflects stalking and shooting visibility for the hunter, not
// animal behavior.
var visibilityTable = map[types.SkyCondition]float64{
	types.SkySunny:        95,
	types.SkyClear:        95,
	types.SkyPartlyCloudy: 85,
	types.SkyOvercast:     70,
	types.SkyLightRain:    55,
	types.SkyHeavyRain:    40,
	types.SkySnow:         35,
	types.SkyFog:          25,
}

// EnvScores holds the four normalized [0,100] advantage scores produced from
// one environmental snapshot.
type EnvScores struct {
	Temperature float64
	Wind        float64
	Pressure    float64
	Visibility  float64
}

// Normalize converts a raw environmental snapshot into per-dimension
// advantage scores for the given species. It fails with a validation_
// AppError on physically implausible input; callers must supply plausible
// readings rather than rely on clamping.
func Normalize(snap types.EnvironmentalSnapshot, profile types.SpeciesProfile) (EnvScores, error) {
	if err := snap.Validate(); err != nil {
		return EnvScores{}, err
	}

	return EnvScores{
		Temperature: temperatureScore(snap.TemperatureF, profile),
		Wind:        windScore(snap.WindSpeedMph, profile.WindToleranceMph),
		Pressure:    pressureScore(snap.BarometricPressure, profile.PressureSensitivity),
		Visibility:  visibilityTable[snap.Condition],
	}, nil
}

// temperatureScore is 100 inside the species' optimal range and degrades
// linearly with distance from the nearest boundary. Pressure-sensitive
// species react more sharply to thermal stress, so the decay rate scales
// with sensitivity.
func temperatureScore(tempF float64, profile types.SpeciesProfile) float64 {
	r := profile.OptimalTempRange
	if r.Contains(tempF) {
		return 100
	}

	var dist float64
	if tempF < r.Low {
		dist = r.Low - tempF
	} else {
		dist = tempF - r.High
	}

	return clamp(100-dist*tempDecayRate(profile.PressureSensitivity), 0, 100)
}

// tempDecayRate returns points lost per °F of distance outside the optimal
// range.
func tempDecayRate(s types.PressureSensitivity) float64 {
	switch s {
	case types.PressureSensitivityHigh:
		return 3.0
	case types.PressureSensitivityMedium:
		return 2.5
	default:
		return 2.0
	}
}

// windScore is 100 at calm, falling linearly to windScoreAtTolerance at the
// species' tolerance, then continuing linearly to 0 at twice the tolerance.
func windScore(windMph, toleranceMph float64) float64 {
	switch {
	case windMph <= 0:
		return 100
	case windMph <= toleranceMph:
		return 100 - (100-windScoreAtTolerance)*(windMph/toleranceMph)
	default:
		over := windMph - toleranceMph
		return clamp(windScoreAtTolerance*(1-over/toleranceMph), 0, 100)
	}
}

// pressureScore is piecewise over barometric pressure in inHg. Rising or
// high pressure (>= 30.00) scores at least 80; falling pressure scores
// lower, with the penalty scaled by the species' pressure sensitivity.
func pressureScore(inHg float64, sensitivity types.PressureSensitivity) float64 {
	switch {
	case inHg >= 30.20:
		return 100
	case inHg >= 30.00:
		return 80 + (inHg-30.00)*100
	default:
		var penaltyScale float64
		switch sensitivity {
		case types.PressureSensitivityHigh:
			penaltyScale = 70
		case types.PressureSensitivityMedium:
			penaltyScale = 55
		default:
			penaltyScale = 40
		}
		penalty := (30.00 - inHg) / 0.50 * penaltyScale
		return clamp(80-penalty, 0, 100)
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
