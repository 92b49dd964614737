// Package storage provides SQLite-based persistence for recorded replays.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrReplayNotFound is returned when no replay has the requested ID.
var ErrReplayNotFound = errors.New("storage: replay not found")

// Store manages the SQLite database connection for replay persistence.
type Store struct {
	db *sql.DB
}

// ReplayEntry is a stored replay: summary columns plus the encoded frames.
type ReplayEntry struct {
	ID         int64
	Seed       int64
	TickRate   int
	Runs       int     // Completed runs in the session
	BestScore  float64 // Best completed run
	Ticks      int64   // Recorded frames
	DurationMS int64   // Recorded wall time
	Data       []byte  // Encoded replay
	CreatedAt  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS replays (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			tick_rate INTEGER NOT NULL,
			runs INTEGER NOT NULL DEFAULT 0,
			best_score REAL NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			data BLOB NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_replays_created ON replays(created_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveReplay inserts a replay and returns its ID.
func (s *Store) SaveReplay(e ReplayEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO replays (seed, tick_rate, runs, best_score, ticks, duration_ms, data)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		e.Seed, e.TickRate, e.Runs, e.BestScore, e.Ticks, e.DurationMS, e.Data,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save replay: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// UpdateReplay replaces the contents of an existing replay.
func (s *Store) UpdateReplay(id int64, e ReplayEntry) error {
	result, err := s.db.Exec(
		`UPDATE replays
		 SET seed = ?, tick_rate = ?, runs = ?, best_score = ?, ticks = ?, duration_ms = ?, data = ?
		 WHERE id = ?`,
		e.Seed, e.TickRate, e.Runs, e.BestScore, e.Ticks, e.DurationMS, e.Data, id,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot update replay %d: %w", id, err)
	}
	return expectOneRow(result, id)
}

// Replay retrieves a replay, including its data, by ID.
func (s *Store) Replay(id int64) (ReplayEntry, error) {
	row := s.db.QueryRow(
		`SELECT id, seed, tick_rate, runs, best_score, ticks, duration_ms, data, created_at
		 FROM replays
		 WHERE id = ?`,
		id,
	)

	e, err := scanReplay(row.Scan, true)
	if errors.Is(err, sql.ErrNoRows) {
		return ReplayEntry{}, fmt.Errorf("%w: %d", ErrReplayNotFound, id)
	}
	if err != nil {
		return ReplayEntry{}, fmt.Errorf("storage: cannot query replay %d: %w", id, err)
	}
	return e, nil
}

// RecentReplays retrieves the most recent replays without their data.
func (s *Store) RecentReplays(limit int) ([]ReplayEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, seed, tick_rate, runs, best_score, ticks, duration_ms, created_at
		 FROM replays
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replays: %w", err)
	}
	defer rows.Close()

	var entries []ReplayEntry
	for rows.Next() {
		e, err := scanReplay(rows.Scan, false)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// DeleteReplay removes a replay by ID.
func (s *Store) DeleteReplay(id int64) error {
	result, err := s.db.Exec("DELETE FROM replays WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete replay %d: %w", id, err)
	}
	return expectOneRow(result, id)
}

// CountReplays returns the number of stored replays.
func (s *Store) CountReplays() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM replays").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: cannot count replays: %w", err)
	}
	return n, nil
}

func expectOneRow(result sql.Result, id int64) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %d", ErrReplayNotFound, id)
	}
	return nil
}

// scanReplay reads one row in column order, with or without the data blob.
func scanReplay(scan func(dest ...any) error, withData bool) (ReplayEntry, error) {
	var e ReplayEntry
	var createdAt any

	dest := []any{&e.ID, &e.Seed, &e.TickRate, &e.Runs, &e.BestScore, &e.Ticks, &e.DurationMS}
	if withData {
		dest = append(dest, &e.Data)
	}
	dest = append(dest, &createdAt)

	if err := scan(dest...); err != nil {
		return e, err
	}

	// Parse the datetime - handle both time.Time and string
	switch v := createdAt.(type) {
	case time.Time:
		e.CreatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			e.CreatedAt = parsed
		}
	}
	return e, nil
}
