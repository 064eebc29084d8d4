package core

// Refusal codes sent back to joining players.
const (
	ErrCodeUsernameTaken = "username_taken"
	ErrCodeBadJoin       = "bad_join"
)

// RefusalError carries a code for logs and the human-readable reason sent to
// the rejected candidate.
type RefusalError struct {
	Code   string
	Reason string
}

func (e *RefusalError) Error() string {
	return e.Reason
}

func refusal(code, reason string) *RefusalError {
	return &RefusalError{Code: code, Reason: reason}
}
