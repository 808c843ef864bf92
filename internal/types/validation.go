package types

import "fmt"

// Physical plausibility bounds for environmental readings. Values outside
// these ranges indicate a broken upstream feed or malformed client input and
// fail with an InvalidInput condition rather than being silently clamped.
const (
	MinTemperatureF = -80.0
	MaxTemperatureF = 134.0 // hottest air temperature ever recorded
	MaxWindSpeedMph = 250.0
	MinPressureInHg = 25.0
	MaxPressureInHg = 32.1
)

// Validate checks the snapshot for physical plausibility. It returns an
// AppError from the validation_ family on the first violation found, or nil
// if the snapshot is usable by the normalizer.
func (s EnvironmentalSnapshot) Validate() error {
	if s.TemperatureF < MinTemperatureF || s.TemperatureF > MaxTemperatureF {
		return NewAppErrorWithDetails(
			ErrCodeValidationInvalidTemperature,
			fmt.Sprintf("temperature must be between %.0f and %.0f °F", MinTemperatureF, MaxTemperatureF),
			nil,
			map[string]any{"temperature_f": s.TemperatureF},
		)
	}
	if s.WindSpeedMph < 0 || s.WindSpeedMph > MaxWindSpeedMph {
		return NewAppErrorWithDetails(
			ErrCodeValidationInvalidWindSpeed,
			fmt.Sprintf("wind speed must be between 0 and %.0f mph", MaxWindSpeedMph),
			nil,
			map[string]any{"wind_speed_mph": s.WindSpeedMph},
		)
	}
	if s.BarometricPressure <= 0 || s.BarometricPressure < MinPressureInHg || s.BarometricPressure > MaxPressureInHg {
		return NewAppErrorWithDetails(
			ErrCodeValidationInvalidPressure,
			fmt.Sprintf("barometric pressure must be between %.1f and %.1f inHg", MinPressureInHg, MaxPressureInHg),
			nil,
			map[string]any{"barometric_pressure_inhg": s.BarometricPressure},
		)
	}
	if !s.Condition.Valid() {
		return NewAppErrorWithDetails(
			ErrCodeValidationInvalidCondition,
			"unknown sky condition tag",
			nil,
			map[string]any{"condition": string(s.Condition)},
		)
	}
	if s.Timestamp.IsZero() {
		return NewAppError(
			ErrCodeValidationInvalidTimestamp,
			"timestamp is required",
			nil,
		)
	}
	return nil
}
