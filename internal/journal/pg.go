package journal

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"huntcast/internal/config"
	"huntcast/internal/types"
)

// DBTX is the minimal interface shared by *pgxpool.Pool and pgx.Tx, so the
// same repository code works inside or outside a transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// NewPool creates a pgx connection pool from configuration and verifies
// connectivity before returning.
func NewPool(ctx context.Context, cfg config.DatabaseConfig) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	poolCfg.HealthCheckPeriod = cfg.HealthCheckPeriod

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create database pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return pool, nil
}

// PGRepository provides data access for the journal_entries table.
type PGRepository struct {
	db DBTX
}

// NewPGRepository creates a journal repository backed by the given database
// connection (pool or transaction).
func NewPGRepository(db DBTX) *PGRepository {
	return &PGRepository{db: db}
}

// entryColumns is the standard column set for journal queries. Used by every
// query method to avoid column drift.
const entryColumns = `j.id, j.species_id, j.location_id, j.hunted_at, j.harvested,
	j.sightings, j.hunting_effectiveness, j.notes, j.created_at`

// scanEntry scans a single row into an Entry. The column order must match
// entryColumns.
func scanEntry(row pgx.Row) (*Entry, error) {
	var e Entry
	var notes *string
	err := row.Scan(
		&e.ID,
		&e.SpeciesID,
		&e.LocationID,
		&e.HuntedAt,
		&e.Harvested,
		&e.Sightings,
		&e.HuntingEffectiveness,
		&notes,
		&e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if notes != nil {
		e.Notes = *notes
	}
	return &e, nil
}

// Insert persists a new entry.
func (r *PGRepository) Insert(ctx context.Context, e *Entry) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO journal_entries
		 (id, species_id, location_id, hunted_at, harvested, sightings, hunting_effectiveness, notes, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		e.ID, e.SpeciesID, e.LocationID, e.HuntedAt, e.Harvested,
		e.Sightings, e.HuntingEffectiveness, e.Notes, e.CreatedAt,
	)
	if err != nil {
		return types.NewAppError(types.ErrCodeInternalDB, "failed to insert journal entry", err)
	}
	return nil
}

// GetByID retrieves an entry by its ID. Returns a not_found_journal_entry
// error when no row matches.
func (r *PGRepository) GetByID(ctx context.Context, id string) (*Entry, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+entryColumns+`
		 FROM journal_entries j
		 WHERE j.id = $1`,
		id,
	)
	e, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, types.NewAppError(
				types.ErrCodeNotFoundJournal,
				"journal entry not found: "+id,
				err,
			)
		}
		return nil, types.NewAppError(types.ErrCodeInternalDB, "failed to query journal entry", err)
	}
	return e, nil
}

// List returns entries matching the filter, most recent hunt first.
func (r *PGRepository) List(ctx context.Context, f Filter) ([]*Entry, error) {
	var (
		conditions []string
		args       []any
	)
	if f.SpeciesID != "" {
		args = append(args, f.SpeciesID)
		conditions = append(conditions, "j.species_id = $"+strconv.Itoa(len(args)))
	}
	if f.LocationID != "" {
		args = append(args, f.LocationID)
		conditions = append(conditions, "j.location_id = $"+strconv.Itoa(len(args)))
	}

	query := `SELECT ` + entryColumns + ` FROM journal_entries j`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	args = append(args, f.Limit)
	query += " ORDER BY j.hunted_at DESC LIMIT $" + strconv.Itoa(len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, types.NewAppError(types.ErrCodeInternalDB, "failed to list journal entries", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, types.NewAppError(types.ErrCodeInternalDB, "failed to scan journal entry", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, types.NewAppError(types.ErrCodeInternalDB, "failed to iterate journal entries", err)
	}
	return entries, nil
}

// Probe reports journal database health for the /health endpoint.
type Probe struct {
	pool *pgxpool.Pool
}

// NewProbe wraps a pool as a health probe.
func NewProbe(pool *pgxpool.Pool) *Probe {
	return &Probe{pool: pool}
}

// Name identifies the probe in the health response.
func (p *Probe) Name() string { return "journal-database" }

// Check pings the database within the probe deadline.
func (p *Probe) Check(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// Close releases the pool during server shutdown.
func (p *Probe) Close() {
	p.pool.Close()
}
