// Package storage provides SQLite-based persistence for solved puzzles.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies,
// with sqlx for struct scanning.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sqlx.DB
}

// Result is one solved puzzle.
type Result struct {
	ID        int64
	SessionID string
	GameID    string
	Player    string
	Moves     int
	Duration  time.Duration
	CreatedAt time.Time
}

// resultRow mirrors the results table. Times are stored as unix milliseconds.
type resultRow struct {
	ID         int64  `db:"id"`
	SessionID  string `db:"session_id"`
	GameID     string `db:"game_id"`
	Player     string `db:"player"`
	Moves      int    `db:"moves"`
	DurationMS int64  `db:"duration_ms"`
	CreatedAt  int64  `db:"created_at"`
}

func (r resultRow) result() Result {
	return Result{
		ID:        r.ID,
		SessionID: r.SessionID,
		GameID:    r.GameID,
		Player:    r.Player,
		Moves:     r.Moves,
		Duration:  time.Duration(r.DurationMS) * time.Millisecond,
		CreatedAt: time.UnixMilli(r.CreatedAt),
	}
}

// migrations are applied in order; PRAGMA user_version counts how many
// already ran.
var migrations = []string{
	`CREATE TABLE results (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id  TEXT    NOT NULL UNIQUE,
		game_id     TEXT    NOT NULL,
		player      TEXT    NOT NULL DEFAULT '',
		moves       INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL DEFAULT 0,
		created_at  INTEGER NOT NULL
	)`,
	`CREATE INDEX idx_results_best ON results(game_id, moves, duration_ms)`,
	`CREATE INDEX idx_results_created ON results(created_at)`,
}

// Open opens the results database at path, creating it and its directory
// when missing. A leading ~ is the user's home directory.
func Open(path string) (*Store, error) {
	path, err := resolvePath(path)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open %s: %w", path, err)
	}
	// One connection: SQLite has a single writer, and concurrent SSH
	// sessions would otherwise hit SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func resolvePath(path string) (string, error) {
	if rest, ok := strings.CutPrefix(path, "~"); ok {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		path = filepath.Join(home, rest)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("storage: cannot create database directory: %w", err)
	}
	return path, nil
}

// migrate brings the schema up to date, one transaction per step.
func (s *Store) migrate() error {
	var version int
	if err := s.db.Get(&version, "PRAGMA user_version"); err != nil {
		return fmt.Errorf("storage: cannot read schema version: %w", err)
	}

	for v := version; v < len(migrations); v++ {
		tx, err := s.db.Beginx()
		if err != nil {
			return fmt.Errorf("storage: migration %d: %w", v+1, err)
		}
		if _, err := tx.Exec(migrations[v]); err != nil {
			tx.Rollback()
			return fmt.Errorf("storage: migration %d: %w", v+1, err)
		}
		// PRAGMA does not take bind parameters.
		if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", v+1)); err != nil {
			tx.Rollback()
			return fmt.Errorf("storage: migration %d: %w", v+1, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("storage: migration %d: %w", v+1, err)
		}
	}
	return nil
}

// SchemaVersion reports how many migrations have been applied.
func (s *Store) SchemaVersion() (int, error) {
	var version int
	err := s.db.Get(&version, "PRAGMA user_version")
	return version, err
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveResult records a solved puzzle and returns its row ID. A missing
// SessionID is generated and a zero CreatedAt becomes the current time.
func (s *Store) SaveResult(r Result) (int64, error) {
	if r.GameID == "" {
		return 0, errors.New("storage: result has no game ID")
	}
	if r.SessionID == "" {
		r.SessionID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}

	res, err := s.db.NamedExec(
		`INSERT INTO results (session_id, game_id, player, moves, duration_ms, created_at)
		 VALUES (:session_id, :game_id, :player, :moves, :duration_ms, :created_at)`,
		resultRow{
			SessionID:  r.SessionID,
			GameID:     r.GameID,
			Player:     r.Player,
			Moves:      r.Moves,
			DurationMS: r.Duration.Milliseconds(),
			CreatedAt:  r.CreatedAt.UnixMilli(),
		},
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	return res.LastInsertId()
}

// BestResults retrieves the top N results for the given game.
// Fewer moves rank higher; ties go to the faster solve.
func (s *Store) BestResults(gameID string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}

	var rows []resultRow
	err := s.db.Select(&rows,
		`SELECT id, session_id, game_id, player, moves, duration_ms, created_at
		 FROM results
		 WHERE game_id = ?
		 ORDER BY moves ASC, duration_ms ASC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	return toResults(rows), nil
}

// RecentResults retrieves the most recently solved puzzles across all games.
func (s *Store) RecentResults(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}

	var rows []resultRow
	err := s.db.Select(&rows,
		`SELECT id, session_id, game_id, player, moves, duration_ms, created_at
		 FROM results
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query recent results: %w", err)
	}
	return toResults(rows), nil
}

// ResultBySession retrieves the result recorded for a session.
// Returns nil, nil if none exists.
func (s *Store) ResultBySession(sessionID string) (*Result, error) {
	var row resultRow
	err := s.db.Get(&row,
		`SELECT id, session_id, game_id, player, moves, duration_ms, created_at
		 FROM results
		 WHERE session_id = ?`,
		sessionID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query result: %w", err)
	}
	r := row.result()
	return &r, nil
}

// ClearResults deletes all results for the given game.
func (s *Store) ClearResults(gameID string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

func toResults(rows []resultRow) []Result {
	out := make([]Result, len(rows))
	for i, r := range rows {
		out[i] = r.result()
	}
	return out
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	Wins       int
	BestMoves  int
	AvgMoves   float64
	Fastest    time.Duration
	LastPlayed time.Time
}

type statsRow struct {
	GameID     string  `db:"game_id"`
	Wins       int     `db:"wins"`
	BestMoves  int     `db:"best_moves"`
	AvgMoves   float64 `db:"avg_moves"`
	FastestMS  int64   `db:"fastest_ms"`
	LastPlayed int64   `db:"last_played"`
}

func (r statsRow) stats() *GameStats {
	st := &GameStats{
		GameID:    r.GameID,
		Wins:      r.Wins,
		BestMoves: r.BestMoves,
		AvgMoves:  r.AvgMoves,
		Fastest:   time.Duration(r.FastestMS) * time.Millisecond,
	}
	if r.LastPlayed > 0 {
		st.LastPlayed = time.UnixMilli(r.LastPlayed)
	}
	return st
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	var row statsRow
	err := s.db.Get(&row,
		`SELECT ? AS game_id,
		        COUNT(*) AS wins,
		        COALESCE(MIN(moves), 0) AS best_moves,
		        COALESCE(AVG(moves), 0) AS avg_moves,
		        COALESCE(MIN(duration_ms), 0) AS fastest_ms,
		        COALESCE(MAX(created_at), 0) AS last_played
		 FROM results WHERE game_id = ?`,
		gameID, gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	return row.stats(), nil
}

// GetAllGamesStats retrieves statistics for every game that has results.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	var rows []statsRow
	err := s.db.Select(&rows,
		`SELECT game_id,
		        COUNT(*) AS wins,
		        MIN(moves) AS best_moves,
		        AVG(moves) AS avg_moves,
		        MIN(duration_ms) AS fastest_ms,
		        MAX(created_at) AS last_played
		 FROM results
		 GROUP BY game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}

	stats := make(map[string]*GameStats, len(rows))
	for _, r := range rows {
		stats[r.GameID] = r.stats()
	}
	return stats, nil
}
