package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"huntcast/internal/core"
	"huntcast/internal/journal"
	"huntcast/internal/types"
)

// JournalService is the journal contract consumed by the journal endpoints.
type JournalService interface {
	Record(ctx context.Context, e *journal.Entry) (*journal.Entry, error)
	Get(ctx context.Context, id string) (*journal.Entry, error)
	List(ctx context.Context, f journal.Filter) ([]*journal.Entry, error)
}

// RecordEntryRequest is the request body for POST /v1/journal.
type RecordEntryRequest struct {
	SpeciesID            string    `json:"species_id" validate:"required"`
	LocationID           string    `json:"location_id" validate:"required"`
	HuntedAt             time.Time `json:"hunted_at" validate:"required"`
	Harvested            bool      `json:"harvested"`
	Sightings            int       `json:"sightings" validate:"min=0"`
	HuntingEffectiveness float64   `json:"hunting_effectiveness" validate:"min=0,max=100"`
	Notes                string    `json:"notes" validate:"max=2000"`
}

// JournalHandler manages hunt outcome records. When the journal feature is
// disabled (no database configured) every endpoint reports 503.
type JournalHandler struct {
	svc       JournalService
	validator *core.Validator
	logger    *slog.Logger
}

// NewJournalHandler creates a JournalHandler. svc may be nil when the
// feature is disabled.
func NewJournalHandler(svc JournalService, v *core.Validator, l *slog.Logger) *JournalHandler {
	if l == nil {
		l = slog.Default()
	}
	return &JournalHandler{svc: svc, validator: v, logger: l}
}

// RegisterRoutes mounts journal routes onto the provided router.
func (h *JournalHandler) RegisterRoutes(r chi.Router) {
	r.Post("/journal", h.Record)
	r.Get("/journal", h.List)
	r.Get("/journal/{id}", h.Get)
}

// enabled writes the 503 disabled response when no service is wired.
func (h *JournalHandler) enabled(w http.ResponseWriter, r *http.Request) bool {
	if h.svc != nil {
		return true
	}
	core.Error(w, r, types.NewAppError(
		types.ErrCodeJournalDisabled,
		"journal feature is not enabled on this deployment",
		nil,
	))
	return false
}

// Record handles POST /v1/journal.
func (h *JournalHandler) Record(w http.ResponseWriter, r *http.Request) {
	if !h.enabled(w, r) {
		return
	}

	var req RecordEntryRequest
	if err := core.DecodeJSON(w, r, &req); err != nil {
		core.Error(w, r, err)
		return
	}
	if err := h.validator.ValidateStruct(req); err != nil {
		core.Error(w, r, err)
		return
	}

	entry, err := h.svc.Record(r.Context(), &journal.Entry{
		SpeciesID:            req.SpeciesID,
		LocationID:           req.LocationID,
		HuntedAt:             req.HuntedAt,
		Harvested:            req.Harvested,
		Sightings:            req.Sightings,
		HuntingEffectiveness: req.HuntingEffectiveness,
		Notes:                req.Notes,
	})
	if err != nil {
		core.Error(w, r, err)
		return
	}

	h.logger.Info("journal entry recorded",
		slog.String("entry_id", entry.ID),
		slog.String("species_id", entry.SpeciesID),
		slog.Bool("harvested", entry.Harvested),
	)

	core.JSON(w, r, http.StatusCreated, core.APIResponse{Data: entry})
}

// Get handles GET /v1/journal/{id}.
func (h *JournalHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !h.enabled(w, r) {
		return
	}

	entry, err := h.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		core.Error(w, r, err)
		return
	}
	core.JSON(w, r, http.StatusOK, core.APIResponse{Data: entry})
}

// List handles GET /v1/journal?species_id=...&location_id=...&limit=50.
func (h *JournalHandler) List(w http.ResponseWriter, r *http.Request) {
	if !h.enabled(w, r) {
		return
	}

	q := r.URL.Query()
	f := journal.Filter{
		SpeciesID:  q.Get("species_id"),
		LocationID: q.Get("location_id"),
	}
	if raw := q.Get("limit"); raw != "" {
		limit, err := parsePositiveInt(raw)
		if err != nil {
			core.Error(w, r, types.NewAppError(
				types.ErrCodeValidationInvalidJournal,
				"limit must be a positive integer",
				err,
			))
			return
		}
		f.Limit = limit
	}

	entries, err := h.svc.List(r.Context(), f)
	if err != nil {
		core.Error(w, r, err)
		return
	}
	if entries == nil {
		entries = []*journal.Entry{}
	}
	core.JSON(w, r, http.StatusOK, core.APIResponse{Data: entries})
}
