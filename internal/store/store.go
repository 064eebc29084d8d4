// Package store defines the persistence interfaces for the game content
// bank. Game state itself is never persisted; only the read-only phrase and
// sub-question content lives here.
package store

import "context"

// Phrase is a stored solution phrase with its hint.
type Phrase struct {
	ID   int64
	Key  string
	Hint string
}

// Question is a stored sub-question with its single-letter answer.
type Question struct {
	ID     int64
	Text   string
	Answer string
}

// PhraseStore draws phrases.
type PhraseStore interface {
	// RandomPhrase returns a uniformly random phrase from the bank.
	RandomPhrase(ctx context.Context) (*Phrase, error)
}

// QuestionStore draws sub-questions.
type QuestionStore interface {
	// RandomQuestion returns a uniformly random question from the bank.
	RandomQuestion(ctx context.Context) (*Question, error)
}

// Store aggregates the content bank interfaces.
type Store interface {
	PhraseStore
	QuestionStore

	// Close closes the underlying database connection.
	Close() error
}
