// Package storage provides SQLite-based persistence for finished runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
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

// EndReason describes why a run was recorded.
type EndReason string

const (
	EndReset EndReason = "reset" // the player lost every life and the level restarted
	EndQuit  EndReason = "quit"  // the player left mid-run
)

// Run is one recorded play session on a single map.
type Run struct {
	ID        int64
	Map       string
	Player    string // SSH user name, empty for local play
	Score     int
	Waves     int
	Deaths    int
	Duration  time.Duration
	Reason    EndReason
	CreatedAt time.Time
}

// MapStats aggregates the runs of one map.
type MapStats struct {
	Map        string
	Runs       int
	Best       int
	Average    float64
	TotalWaves int
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
			map_name TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT '',
			score INTEGER NOT NULL,
			waves INTEGER NOT NULL DEFAULT 0,
			deaths INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			end_reason TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_map ON runs(map_name);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(map_name, score DESC);
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

// SaveRun records a finished run and returns its ID.
func (s *Store) SaveRun(r Run) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (map_name, player, score, waves, deaths, duration_ms, end_reason)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.Map, r.Player, r.Score, r.Waves, r.Deaths, r.Duration.Milliseconds(), string(r.Reason),
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

// TopRuns retrieves the best N runs on a map, or across all maps when
// mapName is empty. Results are ordered by score descending.
func (s *Store) TopRuns(mapName string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, map_name, player, score, waves, deaths, duration_ms, end_reason, created_at
		 FROM runs
		 WHERE ? = '' OR map_name = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		mapName, mapName, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var durationMS int64
		var reason string
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Map, &r.Player, &r.Score, &r.Waves, &r.Deaths, &durationMS, &reason, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.Reason = EndReason(reason)
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// HighScore returns the best score on a map, or across all maps when
// mapName is empty. Returns 0 if no runs exist.
func (s *Store) HighScore(mapName string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE ? = '' OR map_name = ?",
		mapName, mapName,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Maps returns the distinct map names with recorded runs, sorted by name.
func (s *Store) Maps() ([]string, error) {
	rows, err := s.db.Query("SELECT DISTINCT map_name FROM runs ORDER BY map_name")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query maps: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return names, nil
}

// Stats aggregates the runs recorded on a map, or on all maps when mapName
// is empty.
func (s *Store) Stats(mapName string) (MapStats, error) {
	st := MapStats{Map: mapName}
	var best sql.NullInt64
	var avg sql.NullFloat64
	var waves sql.NullInt64
	err := s.db.QueryRow(
		`SELECT COUNT(*), MAX(score), AVG(score), SUM(waves)
		 FROM runs WHERE ? = '' OR map_name = ?`,
		mapName, mapName,
	).Scan(&st.Runs, &best, &avg, &waves)
	if err != nil {
		return st, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	st.Best = int(best.Int64)
	st.Average = avg.Float64
	st.TotalWaves = int(waves.Int64)
	return st, nil
}

// ClearRuns deletes the runs on a map, or every run when mapName is empty.
func (s *Store) ClearRuns(mapName string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE ? = '' OR map_name = ?", mapName, mapName)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
