package types

// SkyCondition is the enumerated sky-condition tag reported by the weather
// provider. The normalizer only understands this closed set; anything else is
// rejected as invalid input rather than silently defaulted.
type SkyCondition string

const (
	SkySunny        SkyCondition = "sunny"
	SkyClear        SkyCondition = "clear"
	SkyPartlyCloudy SkyCondition = "partly_cloudy"
	SkyOvercast     SkyCondition = "overcast"
	SkyLightRain    SkyCondition = "light_rain"
	SkyHeavyRain    SkyCondition = "heavy_rain"
	SkySnow         SkyCondition = "snow"
	SkyFog          SkyCondition = "fog"
)

// AllSkyConditions lists every valid sky-condition tag. Used by validators
// and by the weather provider mapping.
var AllSkyConditions = []SkyCondition{
	SkySunny, SkyClear, SkyPartlyCloudy, SkyOvercast,
	SkyLightRain, SkyHeavyRain, SkySnow, SkyFog,
}

// Valid reports whether the tag is part of the closed sky-condition set.
func (c SkyCondition) Valid() bool {
	for _, v := range AllSkyConditions {
		if c == v {
			return true
		}
	}
	return false
}

// FeedingPattern classifies when a species is primarily active.
type FeedingPattern string

const (
	FeedingCrepuscular FeedingPattern = "crepuscular"
	FeedingDiurnal     FeedingPattern = "diurnal"
	FeedingNocturnal   FeedingPattern = "nocturnal"
)

// Valid reports whether the feeding pattern is recognized.
func (f FeedingPattern) Valid() bool {
	switch f {
	case FeedingCrepuscular, FeedingDiurnal, FeedingNocturnal:
		return true
	}
	return false
}

// PressureSensitivity classifies how strongly a species reacts to falling
// barometric pressure.
type PressureSensitivity string

const (
	PressureSensitivityLow    PressureSensitivity = "low"
	PressureSensitivityMedium PressureSensitivity = "medium"
	PressureSensitivityHigh   PressureSensitivity = "high"
)

// Valid reports whether the sensitivity level is recognized.
func (p PressureSensitivity) Valid() bool {
	switch p {
	case PressureSensitivityLow, PressureSensitivityMedium, PressureSensitivityHigh:
		return true
	}
	return false
}

// HabitatQuality is the qualitative rating of a hunting location.
type HabitatQuality string

const (
	HabitatPoor      HabitatQuality = "poor"
	HabitatFair      HabitatQuality = "fair"
	HabitatGood      HabitatQuality = "good"
	HabitatExcellent HabitatQuality = "excellent"
)

// Score maps the qualitative rating onto the fixed numeric scale used by the
// location advantage formula. Unknown values map to 0 so that a configuration
// gap surfaces as an obviously wrong score during startup validation.
func (h HabitatQuality) Score() float64 {
	switch h {
	case HabitatPoor:
		return 25
	case HabitatFair:
		return 50
	case HabitatGood:
		return 75
	case HabitatExcellent:
		return 95
	}
	return 0
}

// Valid reports whether the habitat quality is recognized.
func (h HabitatQuality) Valid() bool {
	switch h {
	case HabitatPoor, HabitatFair, HabitatGood, HabitatExcellent:
		return true
	}
	return false
}

// AccessDifficulty describes how hard a location is to reach on foot.
type AccessDifficulty string

const (
	AccessEasy      AccessDifficulty = "easy"
	AccessModerate  AccessDifficulty = "moderate"
	AccessDifficult AccessDifficulty = "difficult"
)

// Valid reports whether the access difficulty is recognized.
func (a AccessDifficulty) Valid() bool {
	switch a {
	case AccessEasy, AccessModerate, AccessDifficult:
		return true
	}
	return false
}

// OverallRating is the qualitative band derived from the hunting
// effectiveness composite. Band edges are fixed constants so identical
// inputs always produce the identical rating.
type OverallRating string

const (
	RatingPoor      OverallRating = "Poor"
	RatingFair      OverallRating = "Fair"
	RatingGood      OverallRating = "Good"
	RatingExcellent OverallRating = "Excellent"
)

// Rating band thresholds over the hunting effectiveness composite.
// [0,40) Poor, [40,65) Fair, [65,85) Good, [85,100] Excellent.
const (
	RatingFairFloor      = 40.0
	RatingGoodFloor      = 65.0
	RatingExcellentFloor = 85.0
)

// RatingForScore returns the band for a hunting effectiveness score.
// The caller is expected to pass a value already clamped to [0,100].
func RatingForScore(score float64) OverallRating {
	switch {
	case score >= RatingExcellentFloor:
		return RatingExcellent
	case score >= RatingGoodFloor:
		return RatingGood
	case score >= RatingFairFloor:
		return RatingFair
	default:
		return RatingPoor
	}
}
