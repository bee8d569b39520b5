// Package storage keeps the history of stage attempts in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// The history is read-only from the game's point of view: a new session always
// starts at stage 1 no matter what is stored here.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tinyhero/internal/grid"
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// RunRecord is one finished stage attempt.
type RunRecord struct {
	ID              int64
	Stage           int
	Cleared         bool
	RemainingPixels int
	TotalPixels     int
	Pattern         grid.Grid // shape the player departed with
	Seed            int64
	Ticks           uint64
	CreatedAt       time.Time
}

// Stats aggregates the whole history.
type Stats struct {
	Runs       int
	Clears     int
	BestStage  int // highest stage cleared
	AvgStage   float64
	LastPlayed time.Time
}

const sqliteTimeLayout = "2006-01-02 15:04:05"

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
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			stage INTEGER NOT NULL,
			cleared INTEGER NOT NULL,
			remaining_pixels INTEGER NOT NULL,
			total_pixels INTEGER NOT NULL,
			pattern TEXT NOT NULL,
			seed INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(stage DESC, remaining_pixels DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);
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

// SaveRun records a stage attempt and returns its ID.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (stage, cleared, remaining_pixels, total_pixels, pattern, seed, ticks)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.Stage, r.Cleared, r.RemainingPixels, r.TotalPixels, r.Pattern.Compact(), r.Seed, int64(r.Ticks),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const runColumns = `id, stage, cleared, remaining_pixels, total_pixels, pattern, seed, ticks, created_at`

// TopRuns returns the best attempts: highest stage first, then most pixels left.
func (s *Store) TopRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs
		 ORDER BY stage DESC, remaining_pixels DESC, id ASC
		 LIMIT ?`,
		limit,
	)
}

// RecentRuns returns the latest attempts, newest first.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryRuns(
		`SELECT `+runColumns+` FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

func (s *Store) queryRuns(query string, args ...any) ([]RunRecord, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var (
			r         RunRecord
			pattern   string
			ticks     int64
			createdAt any
		)
		if err := rows.Scan(&r.ID, &r.Stage, &r.Cleared, &r.RemainingPixels, &r.TotalPixels,
			&pattern, &r.Seed, &ticks, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		r.Pattern, err = grid.Parse(pattern)
		if err != nil {
			return nil, fmt.Errorf("storage: run %d has a bad pattern: %w", r.ID, err)
		}
		r.Ticks = uint64(ticks)
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// BestStage returns the highest stage ever cleared, or 0.
func (s *Store) BestStage() (int, error) {
	var best sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(stage) FROM runs WHERE cleared = 1").Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best stage: %w", err)
	}

	if !best.Valid {
		return 0, nil
	}
	return int(best.Int64), nil
}

// Stats retrieves aggregated statistics over every recorded attempt.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(cleared), 0),
		        COALESCE(MAX(CASE WHEN cleared = 1 THEN stage END), 0),
		        COALESCE(AVG(stage), 0)
		 FROM runs`,
	).Scan(&stats.Runs, &stats.Clears, &stats.BestStage, &stats.AvgStage)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(`SELECT created_at FROM runs ORDER BY id DESC LIMIT 1`).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// ClearRuns deletes the whole history.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse(sqliteTimeLayout, v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
