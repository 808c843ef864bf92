package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"huntcast/internal/outlook"
	"huntcast/internal/types"
)

type fakePlanner struct {
	result *outlook.Outlook
	err    error

	gotDays     int
	gotSpecies  []string
	gotLocation string
}

func (f *fakePlanner) Build(_ context.Context, days int, speciesIDs []string, locationID string) (*outlook.Outlook, error) {
	f.gotDays = days
	f.gotSpecies = speciesIDs
	f.gotLocation = locationID
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func outlookRouter(planner *fakePlanner) http.Handler {
	h := NewOutlookHandler(planner, 3)
	r := chi.NewRouter()
	r.Route("/v1", h.RegisterRoutes)
	return r
}

func TestOutlook_ParsesQuery(t *testing.T) {
	planner := &fakePlanner{result: &outlook.Outlook{LocationID: "colebrook-ridge", BestDay: "2025-10-15"}}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet,
		"/v1/outlook?location_id=colebrook-ridge&days=5&species=whitetail-deer,%20moose", nil)
	outlookRouter(planner).ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 5, planner.gotDays)
	assert.Equal(t, []string{"whitetail-deer", "moose"}, planner.gotSpecies)
	assert.Equal(t, "colebrook-ridge", planner.gotLocation)
	assert.Contains(t, w.Body.String(), "2025-10-15")
}

func TestOutlook_DefaultsDays(t *testing.T) {
	planner := &fakePlanner{result: &outlook.Outlook{}}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/v1/outlook?location_id=colebrook-ridge", nil)
	outlookRouter(planner).ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 3, planner.gotDays)
	assert.Nil(t, planner.gotSpecies)
}

func TestOutlook_RequiresLocation(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/v1/outlook", nil)
	outlookRouter(&fakePlanner{}).ServeHTTP(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "location_id")
}

func TestOutlook_RejectsNonNumericDays(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/v1/outlook?location_id=colebrook-ridge&days=soon", nil)
	outlookRouter(&fakePlanner{}).ServeHTTP(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation_outlook_days_out_of_range")
}

func TestOutlook_PlannerErrorsPropagate(t *testing.T) {
	planner := &fakePlanner{err: types.NewAppError(types.ErrCodeValidationOutlookDays, "days must be between 1 and 7", nil)}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/v1/outlook?location_id=colebrook-ridge&days=99", nil)
	outlookRouter(planner).ServeHTTP(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
