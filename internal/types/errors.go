package types

import (
	"fmt"
	"net/http"
	"strings"
)

// ErrorCode is a typed string for categorizing application errors.
type ErrorCode string

// Complete error code constants.
// All handlers MUST use these constants instead of hardcoded strings.
const (
	// Validation (400) - physically implausible or malformed input.
	ErrCodeValidationInvalidTemperature ErrorCode = "validation_invalid_temperature"
	ErrCodeValidationInvalidWindSpeed   ErrorCode = "validation_invalid_wind_speed"
	ErrCodeValidationInvalidPressure    ErrorCode = "validation_invalid_pressure"
	ErrCodeValidationInvalidCondition   ErrorCode = "validation_invalid_condition"
	ErrCodeValidationInvalidTimestamp   ErrorCode = "validation_invalid_timestamp"
	ErrCodeValidationMissingField       ErrorCode = "validation_missing_required_field"
	ErrCodeValidationOutlookDays        ErrorCode = "validation_outlook_days_out_of_range"
	ErrCodeValidationInvalidJournal     ErrorCode = "validation_invalid_journal_entry"

	// Not Found (404) - unknown catalog keys.
	ErrCodeNotFoundSpecies  ErrorCode = "not_found_species"
	ErrCodeNotFoundLocation ErrorCode = "not_found_location"
	ErrCodeNotFoundJournal  ErrorCode = "not_found_journal_entry"

	// Configuration (fatal at startup, never returned over HTTP).
	ErrCodeConfigInvalidProfile  ErrorCode = "config_invalid_species_profile"
	ErrCodeConfigInvalidHabitat  ErrorCode = "config_invalid_location_habitat"
	ErrCodeConfigInvalidRuleSet  ErrorCode = "config_invalid_rule_table"
	ErrCodeConfigInvalidOverride ErrorCode = "config_invalid_override_file"

	// Internal/Upstream (500/502)
	ErrCodeInternalDB         ErrorCode = "internal_database_error"
	ErrCodeInternalUnexpected ErrorCode = "internal_unexpected_error"
	ErrCodeUpstreamWeather    ErrorCode = "upstream_weather_unavailable"
	ErrCodeUpstreamRateLimit  ErrorCode = "upstream_rate_limited"

	// Feature availability (503)
	ErrCodeJournalDisabled ErrorCode = "journal_not_enabled"
)

// HTTPStatus maps an ErrorCode to its corresponding HTTP status code.
// Used by the API layer to translate AppErrors into HTTP responses.
// Returns 500 for unrecognized error codes as a safe default.
func (c ErrorCode) HTTPStatus() int {
	s := string(c)
	switch {
	case strings.HasPrefix(s, "validation_"):
		return http.StatusBadRequest // 400
	case strings.HasPrefix(s, "not_found_"):
		return http.StatusNotFound // 404
	case s == string(ErrCodeJournalDisabled):
		return http.StatusServiceUnavailable // 503
	case strings.HasPrefix(s, "upstream_"):
		return http.StatusBadGateway // 502
	case strings.HasPrefix(s, "config_"), strings.HasPrefix(s, "internal_"):
		return http.StatusInternalServerError // 500
	default:
		return http.StatusInternalServerError // 500
	}
}

// IsInvalidInput reports whether the code belongs to the InvalidInput family.
func (c ErrorCode) IsInvalidInput() bool {
	return strings.HasPrefix(string(c), "validation_")
}

// IsNotFound reports whether the code belongs to the NotFound family.
func (c ErrorCode) IsNotFound() bool {
	return strings.HasPrefix(string(c), "not_found_")
}

// IsConfiguration reports whether the code is fatal at startup.
func (c ErrorCode) IsConfiguration() bool {
	return strings.HasPrefix(string(c), "config_")
}

// AppError is the standard application error type used throughout the service.
// All domain and handler errors should be expressed as AppError to enable
// consistent error formatting, HTTP status mapping, and error chain support.
type AppError struct {
	Code    ErrorCode      `json:"code"`
	Message string         `json:"message"`
	Err     error          `json:"-"`
	Details map[string]any `json:"details,omitempty"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Is/errors.As support.
func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPStatus returns the HTTP status code corresponding to this error's code.
func (e *AppError) HTTPStatus() int {
	return e.Code.HTTPStatus()
}

// WithDetails returns a copy of the error with the provided details merged in.
// This is useful for adding context without mutating the original error.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	merged := make(map[string]any, len(e.Details)+len(details))
	for k, v := range e.Details {
		merged[k] = v
	}
	for k, v := range details {
		merged[k] = v
	}
	return &AppError{
		Code:    e.Code,
		Message: e.Message,
		Err:     e.Err,
		Details: merged,
	}
}

// NewAppError creates a new AppError with the given code, message, and optional
// underlying error. This is the standard constructor for domain errors.
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewAppErrorWithDetails creates a new AppError with the given code, message,
// underlying error, and structured details.
func NewAppErrorWithDetails(code ErrorCode, message string, err error, details map[string]any) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
		Details: details,
	}
}
