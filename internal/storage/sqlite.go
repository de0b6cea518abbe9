// Package storage provides SQLite-based persistence for finished runs and
// high scores. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
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

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection. It is safe for concurrent
// use; database/sql pools the connections.
type Store struct {
	db *sql.DB
}

// RunRecord is one finished run.
type RunRecord struct {
	ID         int64
	GameID     string
	Score      int
	CoinScore  int
	Distance   float64
	Difficulty string
	Mode       string
	EndReason  string // "death" or "time_up"
	KilledBy   string // Empty unless EndReason is "death"
	Duration   time.Duration
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
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			coin_score INTEGER NOT NULL DEFAULT 0,
			distance REAL NOT NULL DEFAULT 0,
			difficulty TEXT NOT NULL DEFAULT '',
			mode TEXT NOT NULL DEFAULT '',
			end_reason TEXT NOT NULL DEFAULT '',
			killed_by TEXT NOT NULL DEFAULT '',
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_game_id ON runs(game_id);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(game_id, score DESC);

		CREATE TABLE IF NOT EXISTS high_scores (
			game_id TEXT PRIMARY KEY,
			score INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
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

// SaveRun records a finished run. A zero CreatedAt is stamped with the
// current time. Returns the ID of the inserted record.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	created := r.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}

	result, err := s.db.Exec(
		`INSERT INTO runs
		 (game_id, score, coin_score, distance, difficulty, mode, end_reason, killed_by, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.GameID,
		r.Score,
		r.CoinScore,
		r.Distance,
		r.Difficulty,
		r.Mode,
		r.EndReason,
		r.KilledBy,
		r.Duration.Milliseconds(),
		created.UTC().Format(timeLayout),
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

// TopRuns retrieves the top N runs for the given game.
// Results are ordered by score descending, earlier runs first on ties.
func (s *Store) TopRuns(gameID string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, coin_score, distance, difficulty, mode,
		        end_reason, killed_by, duration_ms, created_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		var durationMS int64
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.GameID,
			&r.Score,
			&r.CoinScore,
			&r.Distance,
			&r.Difficulty,
			&r.Mode,
			&r.EndReason,
			&r.KilledBy,
			&durationMS,
			&createdAt,
		); err != nil {
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

// SaveHighScore stores score as the game's best if it beats the stored one.
func (s *Store) SaveHighScore(gameID string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO high_scores (game_id, score, updated_at)
		 VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(game_id) DO UPDATE SET
		   score = MAX(high_scores.score, excluded.score),
		   updated_at = CURRENT_TIMESTAMP`,
		gameID, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save high score: %w", err)
	}
	return nil
}

// HighScore returns the highest score for the given game, from either the
// stored best or the run history. Returns 0 if nothing was recorded.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		`SELECT MAX(score) FROM (
		   SELECT score FROM high_scores WHERE game_id = ?
		   UNION ALL
		   SELECT score FROM runs WHERE game_id = ?
		 )`,
		gameID, gameID,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes the run history and stored best for the given game.
func (s *Store) ClearScores(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM runs WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM high_scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear high score: %w", err)
	}
	return nil
}

// RunStats contains aggregated statistics for a game.
type RunStats struct {
	GameID      string
	RunsCount   int
	HighScore   int
	AvgScore    float64
	TotalScore  int64
	AvgDistance float64
	Deaths      int
	TimeUps     int
	LastPlayed  time.Time
}

// Stats retrieves aggregated statistics for a specific game.
func (s *Store) Stats(gameID string) (*RunStats, error) {
	stats := &RunStats{GameID: gameID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0),
		        COALESCE(AVG(distance), 0),
		        COALESCE(SUM(CASE WHEN end_reason = 'death' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN end_reason = 'time_up' THEN 1 ELSE 0 END), 0)
		 FROM runs WHERE game_id = ?`,
		gameID,
	).Scan(&stats.RunsCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore,
		&stats.AvgDistance, &stats.Deaths, &stats.TimeUps)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get run stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE game_id = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		gameID,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// parseTime converts a scanned DATETIME column. The driver returns either a
// time.Time or the raw text depending on how the value was written.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse(timeLayout, v); err == nil {
			return parsed
		}
	case []byte:
		if parsed, err := time.Parse(timeLayout, string(v)); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// HighScoreAdapter exposes one game's best score to the runner session.
type HighScoreAdapter struct {
	store  *Store
	gameID string
}

// NewHighScoreAdapter binds the store to a game ID.
func NewHighScoreAdapter(store *Store, gameID string) *HighScoreAdapter {
	return &HighScoreAdapter{store: store, gameID: gameID}
}

// LoadHighScore returns the stored best.
func (a *HighScoreAdapter) LoadHighScore() (int, error) {
	return a.store.HighScore(a.gameID)
}

// SaveHighScore persists a beaten best.
func (a *HighScoreAdapter) SaveHighScore(score int) error {
	return a.store.SaveHighScore(a.gameID, score)
}
