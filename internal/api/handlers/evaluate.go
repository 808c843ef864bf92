// Package handlers contains the HTTP handler implementations for the
// huntcast API. Each handler declares its dependencies as local interfaces
// so tests can inject mocks without importing concrete packages.
package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"huntcast/internal/core"
	"huntcast/internal/types"
	"huntcast/internal/weather"
)

// Evaluator is the scoring contract consumed by the evaluate endpoint.
type Evaluator interface {
	Evaluate(snap types.EnvironmentalSnapshot, speciesID, locationID string, ts time.Time) (*types.AdvisoryResult, error)
}

// ConditionsPayload is the inline weather reading in an evaluate request.
type ConditionsPayload struct {
	TemperatureF       float64   `json:"temperature_f"`
	WindSpeedMph       float64   `json:"wind_speed_mph"`
	Condition          string    `json:"condition"`
	BarometricPressure float64   `json:"barometric_pressure_inhg"`
	Timestamp          time.Time `json:"timestamp"`
}

// EvaluateRequest is the request body for POST /v1/evaluate. Conditions may
// be omitted, in which case live conditions are fetched from the weather
// provider.
type EvaluateRequest struct {
	SpeciesID  string             `json:"species_id" validate:"required"`
	LocationID string             `json:"location_id" validate:"required"`
	Conditions *ConditionsPayload `json:"conditions,omitempty"`
}

// EvaluateHandler scores hunting conditions for a species at a location.
type EvaluateHandler struct {
	engine    Evaluator
	source    weather.Source
	validator *core.Validator
	logger    *slog.Logger
}

// NewEvaluateHandler creates an EvaluateHandler with the provided
// dependencies. source may be nil when no live provider is configured.
func NewEvaluateHandler(engine Evaluator, source weather.Source, v *core.Validator, l *slog.Logger) *EvaluateHandler {
	if l == nil {
		l = slog.Default()
	}
	return &EvaluateHandler{
		engine:    engine,
		source:    source,
		validator: v,
		logger:    l,
	}
}

// RegisterRoutes mounts evaluate routes onto the provided router.
func (h *EvaluateHandler) RegisterRoutes(r chi.Router) {
	r.Post("/evaluate", h.Evaluate)
}

// Evaluate handles POST /v1/evaluate.
func (h *EvaluateHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var req EvaluateRequest
	if err := core.DecodeJSON(w, r, &req); err != nil {
		core.Error(w, r, err)
		return
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		core.Error(w, r, err)
		return
	}

	var snap types.EnvironmentalSnapshot
	if req.Conditions != nil {
		snap = types.EnvironmentalSnapshot{
			TemperatureF:       req.Conditions.TemperatureF,
			WindSpeedMph:       req.Conditions.WindSpeedMph,
			Condition:          types.SkyCondition(req.Conditions.Condition),
			BarometricPressure: req.Conditions.BarometricPressure,
			Timestamp:          req.Conditions.Timestamp,
		}
	} else {
		if h.source == nil {
			core.Error(w, r, types.NewAppError(
				types.ErrCodeValidationMissingField,
				"conditions are required when no weather provider is configured",
				nil,
			))
			return
		}
		live, err := h.source.Current(r.Context())
		if err != nil {
			core.Error(w, r, err)
			return
		}
		snap = live
	}

	result, err := h.engine.Evaluate(snap, req.SpeciesID, req.LocationID, snap.Timestamp)
	if err != nil {
		core.Error(w, r, err)
		return
	}

	h.logger.Info("evaluation completed",
		slog.String("evaluation_id", result.EvaluationID),
		slog.String("species_id", req.SpeciesID),
		slog.String("location_id", req.LocationID),
		slog.Float64("hunting_effectiveness", result.HuntingEffectiveness),
		slog.String("rating", string(result.OverallRating)),
	)

	core.JSON(w, r, http.StatusOK, core.APIResponse{Data: result})
}
