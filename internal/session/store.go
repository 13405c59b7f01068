// Package session remembers which trip the user was last working on, so the
// planner can reopen it after a restart. It is a single key in a local
// SQLite key-value table standing in for on-device storage.
package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3" // registers the "sqlite3" driver

	"github.com/pkordes/trip-planner/internal/domain"
)

// CurrentTripKey is the fixed key the current trip id is stored under.
const CurrentTripKey = "planner.current_trip_id"

// ErrCorrupt is returned by Get when the stored value is not a trip id.
// It wraps domain.ErrPersistence like every other store error.
var ErrCorrupt = fmt.Errorf("%w: stored current trip is not an id", domain.ErrPersistence)

// CurrentTripStore persists the id of the trip the user is working on.
// All errors wrap domain.ErrPersistence.
type CurrentTripStore interface {
	// Save records id as the current trip, replacing any previous value.
	Save(ctx context.Context, id uuid.UUID) error

	// Get returns the stored id. ok is false when nothing is stored.
	Get(ctx context.Context) (id uuid.UUID, ok bool, err error)

	// Clear forgets the current trip. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}

// SQLiteStore is a CurrentTripStore backed by a local SQLite file.
type SQLiteStore struct {
	db *sql.DB
}

// Open opens (creating if needed) the SQLite file at path and prepares the
// key-value table.
func Open(ctx context.Context, path string) (*SQLiteStore, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("session.Open: %w: %w", domain.ErrPersistence, err)
	}
	db.SetMaxOpenConns(1) // sqlite
	db.SetConnMaxLifetime(0)

	const ddl = `CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("session.Open: create table: %w: %w", domain.ErrPersistence, err)
	}
	return &SQLiteStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Save(ctx context.Context, id uuid.UUID) error {
	const q = `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value`

	if _, err := s.db.ExecContext(ctx, q, CurrentTripKey, id.String()); err != nil {
		return fmt.Errorf("session.SQLiteStore.Save: %w: %w", domain.ErrPersistence, err)
	}
	return nil
}

func (s *SQLiteStore) Get(ctx context.Context) (uuid.UUID, bool, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, CurrentTripKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return uuid.UUID{}, false, nil
	}
	if err != nil {
		return uuid.UUID{}, false, fmt.Errorf("session.SQLiteStore.Get: %w: %w", domain.ErrPersistence, err)
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.UUID{}, false, fmt.Errorf("session.SQLiteStore.Get: %q: %w: %w", raw, ErrCorrupt, err)
	}
	return id, true, nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, CurrentTripKey); err != nil {
		return fmt.Errorf("session.SQLiteStore.Clear: %w: %w", domain.ErrPersistence, err)
	}
	return nil
}
