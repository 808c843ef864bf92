package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"huntcast/internal/core"
	"huntcast/internal/outlook"
	"huntcast/internal/types"
)

// OutlookBuilder is the planner contract consumed by the outlook endpoint.
type OutlookBuilder interface {
	Build(ctx context.Context, days int, speciesIDs []string, locationID string) (*outlook.Outlook, error)
}

// OutlookHandler serves multi-day hunting outlooks.
type OutlookHandler struct {
	planner     OutlookBuilder
	defaultDays int
}

// NewOutlookHandler creates an OutlookHandler. defaultDays is used when the
// request does not specify a horizon.
func NewOutlookHandler(planner OutlookBuilder, defaultDays int) *OutlookHandler {
	if defaultDays < 1 {
		defaultDays = 3
	}
	return &OutlookHandler{planner: planner, defaultDays: defaultDays}
}

// RegisterRoutes mounts outlook routes onto the provided router.
func (h *OutlookHandler) RegisterRoutes(r chi.Router) {
	r.Get("/outlook", h.Get)
}

// Get handles GET /v1/outlook?location_id=...&days=3&species=a,b.
func (h *OutlookHandler) Get(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	locationID := q.Get("location_id")
	if locationID == "" {
		core.Error(w, r, types.NewAppError(
			types.ErrCodeValidationMissingField,
			"location_id query parameter is required",
			nil,
		))
		return
	}

	days := h.defaultDays
	if raw := q.Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			core.Error(w, r, types.NewAppError(
				types.ErrCodeValidationOutlookDays,
				"days must be an integer",
				err,
			))
			return
		}
		days = parsed
	}

	var speciesIDs []string
	if raw := q.Get("species"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				speciesIDs = append(speciesIDs, id)
			}
		}
	}

	result, err := h.planner.Build(r.Context(), days, speciesIDs, locationID)
	if err != nil {
		core.Error(w, r, err)
		return
	}

	core.JSON(w, r, http.StatusOK, core.APIResponse{Data: result})
}
