// Package storage provides SQLite-based persistence for run results and
// achievement unlocks. Uses the pure-Go modernc.org/sqlite driver to avoid
// CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// RunEntry represents one finished attempt.
type RunEntry struct {
	ID            int64
	Score         int
	Keys          int
	Backdoors     int
	BossTakedowns int
	BestBossLevel int
	Won           bool
	CreatedAt     time.Time
}

// Counters aggregates lifetime totals across all recorded runs. The
// achievements evaluator consumes these.
type Counters struct {
	Runs          int
	BestScore     int
	Keys          int
	Backdoors     int
	BossTakedowns int
	BestBossLevel int
	Wins          int
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
			score INTEGER NOT NULL,
			keys INTEGER NOT NULL DEFAULT 0,
			backdoors INTEGER NOT NULL DEFAULT 0,
			boss_takedowns INTEGER NOT NULL DEFAULT 0,
			best_boss_level INTEGER NOT NULL DEFAULT 0,
			won INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(score DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);

		CREATE TABLE IF NOT EXISTS achievements (
			id TEXT PRIMARY KEY,
			unlocked_at DATETIME DEFAULT CURRENT_TIMESTAMP
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

// SaveRun records a finished attempt. Returns the ID of the inserted record.
func (s *Store) SaveRun(run RunEntry) (int64, error) {
	won := 0
	if run.Won {
		won = 1
	}
	result, err := s.db.Exec(
		`INSERT INTO runs (score, keys, backdoors, boss_takedowns, best_boss_level, won)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.Score, run.Keys, run.Backdoors, run.BossTakedowns, run.BestBossLevel, won,
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

// TopRuns retrieves the top N runs ordered by score descending.
func (s *Store) TopRuns(limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, score, keys, backdoors, boss_takedowns, best_boss_level, won, created_at
		 FROM runs
		 ORDER BY score DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var entries []RunEntry
	for rows.Next() {
		e, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// scanRun reads one run row.
func scanRun(rows *sql.Rows) (RunEntry, error) {
	var e RunEntry
	var won int
	var createdAt any
	if err := rows.Scan(&e.ID, &e.Score, &e.Keys, &e.Backdoors,
		&e.BossTakedowns, &e.BestBossLevel, &won, &createdAt); err != nil {
		return e, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	e.Won = won != 0

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

// HighScore returns the highest recorded score. Returns 0 if no runs exist.
func (s *Store) HighScore() (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM runs").Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// Totals returns lifetime aggregates across all runs.
func (s *Store) Totals() (Counters, error) {
	var c Counters
	var best, keys, backdoors, takedowns, bestLevel, wins sql.NullInt64
	err := s.db.QueryRow(
		`SELECT COUNT(*), MAX(score), SUM(keys), SUM(backdoors),
		        SUM(boss_takedowns), MAX(best_boss_level), SUM(won)
		 FROM runs`,
	).Scan(&c.Runs, &best, &keys, &backdoors, &takedowns, &bestLevel, &wins)
	if err != nil {
		return c, fmt.Errorf("storage: cannot query totals: %w", err)
	}

	c.BestScore = int(best.Int64)
	c.Keys = int(keys.Int64)
	c.Backdoors = int(backdoors.Int64)
	c.BossTakedowns = int(takedowns.Int64)
	c.BestBossLevel = int(bestLevel.Int64)
	c.Wins = int(wins.Int64)
	return c, nil
}

// RunsOn counts the runs recorded on the given calendar day (local dates
// are not tracked; days are compared in UTC the same way they are stored).
func (s *Store) RunsOn(day time.Time) (int, error) {
	var n int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM runs WHERE date(created_at) = date(?)",
		day.UTC().Format("2006-01-02"),
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count runs: %w", err)
	}
	return n, nil
}

// ClearRuns deletes every recorded run.
func (s *Store) ClearRuns() error {
	_, err := s.db.Exec("DELETE FROM runs")
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// Unlock records an achievement unlock. Unlocking twice is a no-op.
// Returns true if this call performed the unlock.
func (s *Store) Unlock(id string) (bool, error) {
	result, err := s.db.Exec(
		"INSERT OR IGNORE INTO achievements (id) VALUES (?)", id,
	)
	if err != nil {
		return false, fmt.Errorf("storage: cannot unlock achievement: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: cannot read unlock result: %w", err)
	}
	return n > 0, nil
}

// Unlocked returns the set of unlocked achievement IDs.
func (s *Store) Unlocked() (map[string]time.Time, error) {
	rows, err := s.db.Query("SELECT id, unlocked_at FROM achievements")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query achievements: %w", err)
	}
	defer rows.Close()

	unlocked := make(map[string]time.Time)
	for rows.Next() {
		var id string
		var at any
		if err := rows.Scan(&id, &at); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		switch v := at.(type) {
		case time.Time:
			unlocked[id] = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				unlocked[id] = parsed
			}
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return unlocked, nil
}
