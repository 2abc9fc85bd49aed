// Package score persists finished-run results to a local sqlite database
// and serves the high-score table shown on the menu.
package score

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	level      INTEGER NOT NULL,
	points     INTEGER NOT NULL,
	created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS runs_points ON runs (points DESC);
`

// Entry is one recorded run.
type Entry struct {
	ID        string
	Name      string
	Level     int
	Points    int
	CreatedAt time.Time
}

// Store wraps the scoreboard database.
type Store struct {
	db *sql.DB
}

// Open opens (and if needed creates) the database at path. Use
// ":memory:" for a throwaway store.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("score: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("score: migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record stores one finished run and returns its id.
func (s *Store) Record(name string, level, points int) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(
		`INSERT INTO runs (id, name, level, points, created_at) VALUES (?, ?, ?, ?, ?)`,
		id, name, level, points, time.Now().UTC(),
	)
	if err != nil {
		return "", fmt.Errorf("score: record: %w", err)
	}
	return id, nil
}

// Top returns the n highest-scoring runs, best first. Ties go to the
// earlier run.
func (s *Store) Top(n int) ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT id, name, level, points, created_at FROM runs
		 ORDER BY points DESC, created_at ASC LIMIT ?`, n,
	)
	if err != nil {
		return nil, fmt.Errorf("score: top: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Name, &e.Level, &e.Points, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("score: scan: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
