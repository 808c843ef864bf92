// Package outlook builds multi-day hunting outlooks by scoring forecast
// conditions for every requested species and day, then surfacing the best
// opportunities.
package outlook

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"huntcast/internal/scoring"
	"huntcast/internal/types"
	"huntcast/internal/weather"
)

// SpeciesLister provides the full species catalog for "all species"
// outlooks. Satisfied by the profiles store.
type SpeciesLister interface {
	ListSpecies() []types.SpeciesProfile
}

// Entry is one scored (day, species) cell of the outlook grid.
type Entry struct {
	SpeciesID            string              `json:"species_id"`
	HuntingEffectiveness float64             `json:"hunting_effectiveness"`
	AnimalActivityScore  float64             `json:"animal_activity_score"`
	OverallRating        types.OverallRating `json:"overall_rating"`
}

// Day is a single forecast day with all species entries scored against it.
// Entries are ordered best-first.
type Day struct {
	Date        string                      `json:"date"`
	Conditions  types.EnvironmentalSnapshot `json:"conditions"`
	Entries     []Entry                     `json:"entries"`
	BestSpecies string                      `json:"best_species,omitempty"`
}

// Outlook is the full multi-day result, with a cross-day highlight of the
// single best opportunity.
type Outlook struct {
	LocationID  string  `json:"location_id"`
	Days        []Day   `json:"days"`
	BestDay     string  `json:"best_day,omitempty"`
	BestSpecies string  `json:"best_species,omitempty"`
	BestScore   float64 `json:"best_score"`
}

// Planner wires the forecast source to the scoring engine.
type Planner struct {
	engine      *scoring.Engine
	source      weather.Source
	species     SpeciesLister
	maxDays     int
	concurrency int
}

// NewPlanner constructs a Planner. maxDays bounds requests; concurrency
// bounds the scoring fan-out.
func NewPlanner(engine *scoring.Engine, source weather.Source, species SpeciesLister, maxDays, concurrency int) *Planner {
	if maxDays < 1 {
		maxDays = 1
	}
	if concurrency < 1 {
		concurrency = 1
	}
	return &Planner{
		engine:      engine,
		source:      source,
		species:     species,
		maxDays:     maxDays,
		concurrency: concurrency,
	}
}

// Build produces an outlook for the next `days` days at the given location.
// An empty speciesIDs slice means every species in the catalog. Each (day,
// species) cell is scored independently; the fan-out is bounded by the
// configured concurrency.
func (p *Planner) Build(ctx context.Context, days int, speciesIDs []string, locationID string) (*Outlook, error) {
	if days < 1 || days > p.maxDays {
		return nil, types.NewAppErrorWithDetails(
			types.ErrCodeValidationOutlookDays,
			fmt.Sprintf("days must be between 1 and %d", p.maxDays),
			nil,
			map[string]any{"days": days, "max_days": p.maxDays},
		)
	}

	if len(speciesIDs) == 0 {
		for _, sp := range p.species.ListSpecies() {
			speciesIDs = append(speciesIDs, sp.ID)
		}
	}

	forecast, err := p.source.Forecast(ctx, days)
	if err != nil {
		return nil, err
	}
	if len(forecast) > days {
		forecast = forecast[:days]
	}

	// Preallocate the grid so workers write to disjoint cells without locks.
	grid := make([][]Entry, len(forecast))
	for i := range grid {
		grid[i] = make([]Entry, len(speciesIDs))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for di, day := range forecast {
		di, day := di, day
		for si, speciesID := range speciesIDs {
			si, speciesID := si, speciesID
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				result, err := p.engine.Evaluate(day.Snapshot, speciesID, locationID, day.Snapshot.Timestamp)
				if err != nil {
					return err
				}
				grid[di][si] = Entry{
					SpeciesID:            speciesID,
					HuntingEffectiveness: result.HuntingEffectiveness,
					AnimalActivityScore:  result.AnimalActivityScore,
					OverallRating:        result.OverallRating,
				}
				return nil
			})
		}
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &Outlook{LocationID: locationID, Days: make([]Day, 0, len(forecast))}
	for di, day := range forecast {
		entries := grid[di]
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].HuntingEffectiveness > entries[j].HuntingEffectiveness
		})

		d := Day{
			Date:       day.Date.Format("2006-01-02"),
			Conditions: day.Snapshot,
			Entries:    entries,
		}
		if len(entries) > 0 {
			d.BestSpecies = entries[0].SpeciesID
			if entries[0].HuntingEffectiveness > out.BestScore {
				out.BestScore = entries[0].HuntingEffectiveness
				out.BestDay = d.Date
				out.BestSpecies = entries[0].SpeciesID
			}
		}
		out.Days = append(out.Days, d)
	}

	return out, nil
}
