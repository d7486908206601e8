// Package storage keeps the history of finished snake games in SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/pocket-snake/internal/games/snake"
)

// Store manages the SQLite database connection for game history.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Entry is one finished game.
type Entry struct {
	ID          int64
	Score       int
	Length      int
	ElapsedSecs int
	Won         bool
	Endless     bool
	CreatedAt   time.Time
}

// Filter narrows history queries by mode.
type Filter int

const (
	AllModes Filter = iota
	ClassicOnly
	EndlessOnly
)

func (f Filter) where() string {
	switch f {
	case ClassicOnly:
		return "WHERE endless = 0"
	case EndlessOnly:
		return "WHERE endless = 1"
	default:
		return ""
	}
}

// Open creates or opens a SQLite database at the given path. The path is used
// as given; callers resolve "~" first.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
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

	store := &Store{db: db, now: time.Now}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			score INTEGER NOT NULL,
			length INTEGER NOT NULL,
			elapsed_secs INTEGER NOT NULL DEFAULT 0,
			won INTEGER NOT NULL DEFAULT 0,
			endless INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_games_top ON games(score DESC, elapsed_secs ASC);
		CREATE INDEX IF NOT EXISTS idx_games_endless ON games(endless);
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

// RecordResult stores a finished game. It satisfies runner.ResultSink.
func (s *Store) RecordResult(res snake.Result) error {
	_, err := s.SaveResult(res)
	return err
}

// SaveResult stores a finished game and returns its row ID.
func (s *Store) SaveResult(res snake.Result) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO games (score, length, elapsed_secs, won, endless, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		res.Score, res.Length, int64(res.Elapsed), res.Won, res.Endless, s.now().Unix(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopResults returns the best games, highest score first and faster games
// first on ties. A non-positive limit means 10.
func (s *Store) TopResults(f Filter, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.query(
		`SELECT id, score, length, elapsed_secs, won, endless, created_at
		 FROM games `+f.where()+`
		 ORDER BY score DESC, elapsed_secs ASC, id ASC
		 LIMIT ?`,
		limit,
	)
}

// Recent returns the latest games matching f, newest first.
func (s *Store) Recent(f Filter, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.query(
		`SELECT id, score, length, elapsed_secs, won, endless, created_at
		 FROM games `+f.where()+`
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

func (s *Store) query(q string, args ...any) ([]Entry, error) {
	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var created int64
		if err := rows.Scan(&e.ID, &e.Score, &e.Length, &e.ElapsedSecs, &e.Won, &e.Endless, &created); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = time.Unix(created, 0)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// BestScore returns the highest score for the filter, or 0 with no games.
func (s *Store) BestScore(f Filter) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM games " + f.where()).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// Stats contains aggregated statistics over the history.
type Stats struct {
	GamesCount   int
	Wins         int
	BestScore    int
	AvgScore     float64
	TotalSeconds int64
	LastPlayed   time.Time
}

// Stats aggregates the history for the filter.
func (s *Store) Stats(f Filter) (*Stats, error) {
	stats := &Stats{}
	var last sql.NullInt64

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(won), 0), COALESCE(MAX(score), 0),
		        COALESCE(AVG(score), 0), COALESCE(SUM(elapsed_secs), 0), MAX(created_at)
		 FROM games ` + f.where(),
	).Scan(&stats.GamesCount, &stats.Wins, &stats.BestScore, &stats.AvgScore, &stats.TotalSeconds, &last)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	if last.Valid {
		stats.LastPlayed = time.Unix(last.Int64, 0)
	}

	return stats, nil
}

// Clear deletes the whole history.
func (s *Store) Clear() error {
	_, err := s.db.Exec("DELETE FROM games")
	if err != nil {
		return fmt.Errorf("storage: cannot clear history: %w", err)
	}
	return nil
}
