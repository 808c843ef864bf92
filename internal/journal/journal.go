// Package journal records hunt outcomes so advice can be checked against
// what actually happened in the field. The feature is optional: without a
// configured database the service reports it as unavailable.
package journal

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"huntcast/internal/types"
)

// maxNotesLength bounds free-text notes to keep rows small.
const maxNotesLength = 2000

// Entry is one recorded hunt.
type Entry struct {
	ID                   string    `json:"id"`
	SpeciesID            string    `json:"species_id"`
	LocationID           string    `json:"location_id"`
	HuntedAt             time.Time `json:"hunted_at"`
	Harvested            bool      `json:"harvested"`
	Sightings            int       `json:"sightings"`
	HuntingEffectiveness float64   `json:"hunting_effectiveness"`
	Notes                string    `json:"notes,omitempty"`
	CreatedAt            time.Time `json:"created_at"`
}

// Filter narrows List queries. Zero values match everything.
type Filter struct {
	SpeciesID  string
	LocationID string
	Limit      int
}

// Repository is the persistence boundary for journal entries. The pgx
// implementation is the default; tests inject an in-memory fake.
type Repository interface {
	Insert(ctx context.Context, e *Entry) error
	GetByID(ctx context.Context, id string) (*Entry, error)
	List(ctx context.Context, f Filter) ([]*Entry, error)
}

// Catalog validates that entry species/location keys exist. Satisfied by the
// profiles store.
type Catalog interface {
	Species(id string) (types.SpeciesProfile, error)
	Location(id string) (types.LocationHabitat, error)
}

// Service applies domain validation on top of the repository.
type Service struct {
	repo    Repository
	catalog Catalog
}

// NewService constructs a journal Service.
func NewService(repo Repository, catalog Catalog) *Service {
	return &Service{repo: repo, catalog: catalog}
}

// Record validates and persists a new entry, assigning its ID and creation
// time. Unknown species or location keys are rejected as invalid input
// rather than not-found, since the entry itself is the request body.
func (s *Service) Record(ctx context.Context, e *Entry) (*Entry, error) {
	if err := s.validate(e); err != nil {
		return nil, err
	}

	e.ID = uuid.NewString()
	e.Notes = strings.TrimSpace(e.Notes)
	e.CreatedAt = time.Now().UTC()

	if err := s.repo.Insert(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Get returns a single entry by ID.
func (s *Service) Get(ctx context.Context, id string) (*Entry, error) {
	if strings.TrimSpace(id) == "" {
		return nil, types.NewAppError(
			types.ErrCodeValidationInvalidJournal,
			"journal entry id must not be empty",
			nil,
		)
	}
	return s.repo.GetByID(ctx, id)
}

// List returns entries matching the filter, most recent first.
func (s *Service) List(ctx context.Context, f Filter) ([]*Entry, error) {
	if f.Limit <= 0 || f.Limit > 200 {
		f.Limit = 50
	}
	return s.repo.List(ctx, f)
}

func (s *Service) validate(e *Entry) error {
	fail := func(field, msg string) error {
		return types.NewAppErrorWithDetails(
			types.ErrCodeValidationInvalidJournal,
			"invalid journal entry",
			nil,
			map[string]any{"field": field, "reason": msg},
		)
	}

	if e == nil {
		return fail("entry", "must not be empty")
	}
	if _, err := s.catalog.Species(e.SpeciesID); err != nil {
		return fail("species_id", "unknown species")
	}
	if _, err := s.catalog.Location(e.LocationID); err != nil {
		return fail("location_id", "unknown location")
	}
	if e.HuntedAt.IsZero() {
		return fail("hunted_at", "must be set")
	}
	if e.Sightings < 0 {
		return fail("sightings", "must not be negative")
	}
	if e.HuntingEffectiveness < 0 || e.HuntingEffectiveness > 100 {
		return fail("hunting_effectiveness", "must be between 0 and 100")
	}
	if len(e.Notes) > maxNotesLength {
		return fail("notes", "must not exceed 2000 characters")
	}
	return nil
}
