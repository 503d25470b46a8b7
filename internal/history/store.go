// Package history keeps the bounded list of recently conjugated verbs.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	_ "modernc.org/sqlite"

	"github.com/f3rmion/katsuyou/internal/verb"
)

// DefaultLimit is the number of entries kept when no limit is configured.
const DefaultLimit = 50

// ErrNotFound is returned when an entry ID does not exist.
var ErrNotFound = errors.New("history entry not found")

// Store is a SQLite-backed recent-query list. Newest entries come first;
// adding a verb that is already present moves it to the top.
type Store struct {
	db    *sql.DB
	limit int
	now   func() time.Time
}

// Open opens (creating if needed) the history database at path.
// A limit below 1 uses DefaultLimit.
func Open(path string, limit int) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating history dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}
	// One connection serializes writers.
	db.SetMaxOpenConns(1)

	if limit < 1 {
		limit = DefaultLimit
	}
	s := &Store{db: db, limit: limit, now: time.Now}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating history database: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
	CREATE TABLE IF NOT EXISTS history (
		id TEXT PRIMARY KEY,
		verb TEXT NOT NULL,
		verb_type TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_history_created ON history(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_history_verb ON history(verb);
	`)
	return err
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Limit returns the maximum number of entries kept.
func (s *Store) Limit() int {
	return s.limit
}

// Add records a successful query and trims the list to the limit.
func (s *Store) Add(ctx context.Context, info verb.VerbInfo) (verb.HistoryEntry, error) {
	entry := verb.HistoryEntry{
		ID:        ulid.Make().String(),
		Verb:      info.DictionaryForm,
		VerbType:  info.Label(),
		Timestamp: s.now().UTC(),
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return verb.HistoryEntry{}, fmt.Errorf("beginning history write: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM history WHERE verb = ?`, entry.Verb); err != nil {
		return verb.HistoryEntry{}, fmt.Errorf("removing previous entry: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO history (id, verb, verb_type, created_at) VALUES (?, ?, ?, ?)`,
		entry.ID, entry.Verb, entry.VerbType, entry.Timestamp.UnixNano(),
	); err != nil {
		return verb.HistoryEntry{}, fmt.Errorf("inserting history entry: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `
		DELETE FROM history WHERE id NOT IN (
			SELECT id FROM history ORDER BY created_at DESC, id DESC LIMIT ?
		)`, s.limit,
	); err != nil {
		return verb.HistoryEntry{}, fmt.Errorf("trimming history: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return verb.HistoryEntry{}, fmt.Errorf("committing history write: %w", err)
	}
	return entry, nil
}

// List returns entries newest first.
func (s *Store) List(ctx context.Context) ([]verb.HistoryEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, verb, verb_type, created_at FROM history ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	defer rows.Close()

	var entries []verb.HistoryEntry
	for rows.Next() {
		var e verb.HistoryEntry
		var ts int64
		if err := rows.Scan(&e.ID, &e.Verb, &e.VerbType, &ts); err != nil {
			return nil, fmt.Errorf("scanning history entry: %w", err)
		}
		e.Timestamp = time.Unix(0, ts).UTC()
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Delete removes one entry.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM history WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting history entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting history entry: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	return nil
}

// Clear removes every entry.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM history`); err != nil {
		return fmt.Errorf("clearing history: %w", err)
	}
	return nil
}
