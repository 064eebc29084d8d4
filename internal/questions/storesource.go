package questions

import (
	"context"
	"fmt"

	"github.com/ngxtri/wordwheel-server/internal/store"
)

// StoreSource draws content from a persistent bank (see store/sqlite).
type StoreSource struct {
	st store.Store
}

// NewStoreSource wraps a content store as a Source.
func NewStoreSource(st store.Store) *StoreSource {
	return &StoreSource{st: st}
}

// Phrase draws a random phrase from the store.
func (s *StoreSource) Phrase() (Phrase, error) {
	p, err := s.st.RandomPhrase(context.Background())
	if err != nil {
		return Phrase{}, fmt.Errorf("random phrase: %w", err)
	}
	return Phrase{Key: p.Key, Masked: Mask(p.Key), Hint: p.Hint}, nil
}

// Challenge draws a random sub-question from the store, addressed to the
// acting player.
func (s *StoreSource) Challenge(username string) (Challenge, error) {
	q, err := s.st.RandomQuestion(context.Background())
	if err != nil {
		return Challenge{}, fmt.Errorf("random question: %w", err)
	}
	if q.Answer == "" {
		return Challenge{}, fmt.Errorf("question %d has no answer", q.ID)
	}
	answer := q.Answer[0]
	if answer >= 'A' && answer <= 'Z' {
		answer += 'a' - 'A'
	}
	return Challenge{
		Question: fmt.Sprintf("%s, answer with one letter: %s", username, q.Text),
		Answer:   answer,
	}, nil
}
