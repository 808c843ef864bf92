package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"huntcast/internal/core"
	"huntcast/internal/types"
)

// ProfileCatalog is the species/location lookup contract consumed by the
// catalog endpoints. Satisfied by the profiles store.
type ProfileCatalog interface {
	Species(id string) (types.SpeciesProfile, error)
	Location(id string) (types.LocationHabitat, error)
	ListSpecies() []types.SpeciesProfile
	ListLocations() []types.LocationHabitat
}

// CatalogHandler serves the read-only species and location catalogs.
type CatalogHandler struct {
	catalog ProfileCatalog
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(catalog ProfileCatalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// RegisterRoutes mounts catalog routes onto the provided router.
func (h *CatalogHandler) RegisterRoutes(r chi.Router) {
	r.Get("/species", h.ListSpecies)
	r.Get("/species/{id}", h.GetSpecies)
	r.Get("/locations", h.ListLocations)
	r.Get("/locations/{id}", h.GetLocation)
}

// ListSpecies handles GET /v1/species.
func (h *CatalogHandler) ListSpecies(w http.ResponseWriter, r *http.Request) {
	core.JSON(w, r, http.StatusOK, core.APIResponse{Data: h.catalog.ListSpecies()})
}

// GetSpecies handles GET /v1/species/{id}.
func (h *CatalogHandler) GetSpecies(w http.ResponseWriter, r *http.Request) {
	profile, err := h.catalog.Species(chi.URLParam(r, "id"))
	if err != nil {
		core.Error(w, r, err)
		return
	}
	core.JSON(w, r, http.StatusOK, core.APIResponse{Data: profile})
}

// ListLocations handles GET /v1/locations.
func (h *CatalogHandler) ListLocations(w http.ResponseWriter, r *http.Request) {
	core.JSON(w, r, http.StatusOK, core.APIResponse{Data: h.catalog.ListLocations()})
}

// GetLocation handles GET /v1/locations/{id}.
func (h *CatalogHandler) GetLocation(w http.ResponseWriter, r *http.Request) {
	location, err := h.catalog.Location(chi.URLParam(r, "id"))
	if err != nil {
		core.Error(w, r, err)
		return
	}
	core.JSON(w, r, http.StatusOK, core.APIResponse{Data: location})
}
