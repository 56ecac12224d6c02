// Package storage provides SQLite-based persistence for scenario runs.
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

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run represents one recorded scenario run.
type Run struct {
	ID           int64
	ScenarioID   string
	ScenarioName string
	Total        int
	Mismatches   int
	Duration     time.Duration
	Plays        []PlayRecord
	CreatedAt    time.Time
}

// Passed reports whether every play matched its expectation.
func (r Run) Passed() bool {
	return r.Mismatches == 0
}

// PlayRecord is the stored outcome of a single play within a run.
type PlayRecord struct {
	Index  int
	Kind   string // "line" or "probe"
	Score  int
	Reason string // rejection reason, empty on success
	OK     bool
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

	// Create parent directories
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
			scenario_id TEXT NOT NULL,
			scenario_name TEXT NOT NULL DEFAULT '',
			total INTEGER NOT NULL,
			mismatches INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_scenario_id ON runs(scenario_id);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(scenario_id, total DESC);

		CREATE TABLE IF NOT EXISTS plays (
			run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			idx INTEGER NOT NULL,
			kind TEXT NOT NULL,
			score INTEGER NOT NULL DEFAULT 0,
			reason TEXT NOT NULL DEFAULT '',
			ok INTEGER NOT NULL,
			PRIMARY KEY (run_id, idx)
		);
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

// SaveRun records a run and its plays in one transaction.
// Returns the ID of the inserted run.
func (s *Store) SaveRun(run Run) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(
		`INSERT INTO runs (scenario_id, scenario_name, total, mismatches, duration_ms)
		 VALUES (?, ?, ?, ?, ?)`,
		run.ScenarioID, run.ScenarioName, run.Total, run.Mismatches, run.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	for _, p := range run.Plays {
		if _, err := tx.Exec(
			`INSERT INTO plays (run_id, idx, kind, score, reason, ok) VALUES (?, ?, ?, ?, ?, ?)`,
			id, p.Index, p.Kind, p.Score, p.Reason, p.OK,
		); err != nil {
			return 0, fmt.Errorf("storage: cannot save play %d: %w", p.Index, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("storage: cannot commit run: %w", err)
	}
	return id, nil
}

// TopRuns retrieves the top N runs for the given scenario, without plays.
// Results are ordered by total descending, earliest first on ties.
func (s *Store) TopRuns(scenarioID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, scenario_id, scenario_name, total, mismatches, duration_ms, created_at
		 FROM runs
		 WHERE scenario_id = ?
		 ORDER BY total DESC, id ASC
		 LIMIT ?`,
		scenarioID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var durationMS int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.ScenarioID, &r.ScenarioName, &r.Total, &r.Mismatches, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// RunByID retrieves a run with its plays. Returns nil if it does not exist.
func (s *Store) RunByID(id int64) (*Run, error) {
	var r Run
	var durationMS int64
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, scenario_id, scenario_name, total, mismatches, duration_ms, created_at
		 FROM runs WHERE id = ?`,
		id,
	).Scan(&r.ID, &r.ScenarioID, &r.ScenarioName, &r.Total, &r.Mismatches, &durationMS, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}
	r.Duration = time.Duration(durationMS) * time.Millisecond
	r.CreatedAt = parseTime(createdAt)

	rows, err := s.db.Query(
		`SELECT idx, kind, score, reason, ok FROM plays WHERE run_id = ? ORDER BY idx`,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query plays: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p PlayRecord
		if err := rows.Scan(&p.Index, &p.Kind, &p.Score, &p.Reason, &p.OK); err != nil {
			return nil, fmt.Errorf("storage: cannot scan play: %w", err)
		}
		r.Plays = append(r.Plays, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return &r, nil
}

// HighScore returns the highest total for the given scenario.
// Returns 0 if no runs exist.
func (s *Store) HighScore(scenarioID string) (int, error) {
	var total sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(total) FROM runs WHERE scenario_id = ?",
		scenarioID,
	).Scan(&total)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !total.Valid {
		return 0, nil
	}

	return int(total.Int64), nil
}

// ClearRuns deletes all runs (and their plays) for the given scenario.
func (s *Store) ClearRuns(scenarioID string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"DELETE FROM plays WHERE run_id IN (SELECT id FROM runs WHERE scenario_id = ?)",
		scenarioID,
	); err != nil {
		return fmt.Errorf("storage: cannot clear plays: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM runs WHERE scenario_id = ?", scenarioID); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit clear: %w", err)
	}
	return nil
}

// ScenarioStats contains aggregated statistics for a scenario.
type ScenarioStats struct {
	ScenarioID string
	RunsCount  int
	Passed     int
	HighScore  int
	AvgScore   float64
	LastRun    time.Time
}

// ScenarioStats retrieves aggregated statistics for a specific scenario.
func (s *Store) ScenarioStats(scenarioID string) (*ScenarioStats, error) {
	stats := &ScenarioStats{ScenarioID: scenarioID}

	var lastRun any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN mismatches = 0 THEN 1 ELSE 0 END), 0),
		        COALESCE(MAX(total), 0),
		        COALESCE(AVG(total), 0),
		        MAX(created_at)
		 FROM runs WHERE scenario_id = ?`,
		scenarioID,
	).Scan(&stats.RunsCount, &stats.Passed, &stats.HighScore, &stats.AvgScore, &lastRun)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get scenario stats: %w", err)
	}
	stats.LastRun = parseTime(lastRun)

	return stats, nil
}

// parseTime handles datetimes returned as either time.Time or string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(time.DateTime, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
