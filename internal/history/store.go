// Package history persists one record per successful quiz build in a local
// sqlite database. It backs the history command and is strictly best-effort
// from the build pipeline's point of view: a failing store never fails a
// build.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// Record is one build of one quiz.
type Record struct {
	BuildID      string
	Quiz         string
	Topics       int
	Questions    int
	ManifestPath string
	ManifestHash string
	Duration     time.Duration
	CreatedAt    time.Time
}

// Store is a sqlite-backed build history.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// Open opens (creating if needed) the history database at dbPath.
// Use ":memory:" for an in-memory database.
func Open(dbPath string) (*Store, error) {
	if dbPath != ":memory:" {
		if dir := filepath.Dir(dbPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create history directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	store := &Store{db: db}
	if err := store.initialize(); err != nil {
		_ = db.Close() // Best effort cleanup on initialization error
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return store, nil
}

func (s *Store) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS builds (
		build_id TEXT PRIMARY KEY,
		quiz TEXT NOT NULL,
		topics INTEGER NOT NULL,
		questions INTEGER NOT NULL,
		manifest_path TEXT NOT NULL,
		manifest_hash TEXT NOT NULL,
		duration_ms INTEGER NOT NULL,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_builds_quiz ON builds(quiz);
	CREATE INDEX IF NOT EXISTS idx_builds_created_at ON builds(created_at);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Append stores a build record.
func (s *Store) Append(ctx context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO builds (build_id, quiz, topics, questions, manifest_path, manifest_hash, duration_ms, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		rec.BuildID, rec.Quiz, rec.Topics, rec.Questions, rec.ManifestPath, rec.ManifestHash,
		rec.Duration.Milliseconds(), rec.CreatedAt.Unix(),
	)
	if err != nil {
		return fmt.Errorf("insert build record: %w", err)
	}

	return nil
}

// Recent returns the most recent build records, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT build_id, quiz, topics, questions, manifest_path, manifest_hash, duration_ms, created_at FROM builds ORDER BY created_at DESC, build_id LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query build records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []Record
	for rows.Next() {
		var rec Record
		var durationMS, createdAt int64
		if err := rows.Scan(&rec.BuildID, &rec.Quiz, &rec.Topics, &rec.Questions,
			&rec.ManifestPath, &rec.ManifestHash, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("scan build record: %w", err)
		}
		rec.Duration = time.Duration(durationMS) * time.Millisecond
		rec.CreatedAt = time.Unix(createdAt, 0).UTC()
		records = append(records, rec)
	}

	return records, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
