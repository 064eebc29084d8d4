// Package sqlite implements the content bank on top of a SQLite database.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/ngxtri/wordwheel-server/internal/store"
)

// SQLiteStore implements store.Store for SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New opens the content bank at dbPath.
func New(dbPath string) (*SQLiteStore, error) {
	return NewWithSetup(dbPath, nil)
}

// NewWithSetup opens the content bank and runs a setup function first.
// Useful for tests to apply schema and seed rows without migrations.
func NewWithSetup(dbPath string, setup func(*sql.DB) error) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// SQLite works best with a single connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if setup != nil {
		if err := setup(db); err != nil {
			db.Close()
			return nil, fmt.Errorf("setup: %w", err)
		}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// RandomPhrase returns a uniformly random phrase from the bank.
func (s *SQLiteStore) RandomPhrase(ctx context.Context) (*store.Phrase, error) {
	query := `
		SELECT id, key, hint
		FROM phrases
		ORDER BY RANDOM()
		LIMIT 1
	`
	var p store.Phrase
	err := s.db.QueryRowContext(ctx, query).Scan(&p.ID, &p.Key, &p.Hint)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("phrase bank is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("select phrase: %w", err)
	}
	return &p, nil
}

// RandomQuestion returns a uniformly random question from the bank.
func (s *SQLiteStore) RandomQuestion(ctx context.Context) (*store.Question, error) {
	query := `
		SELECT id, text, answer
		FROM questions
		ORDER BY RANDOM()
		LIMIT 1
	`
	var q store.Question
	err := s.db.QueryRowContext(ctx, query).Scan(&q.ID, &q.Text, &q.Answer)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("question bank is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("select question: %w", err)
	}
	return &q, nil
}
