// Package questions supplies game content: the hidden phrase each room
// plays for and the one-shot sub-question challenges the wheel can land on.
// Sources are read-only and shared by every session.
package questions

// Phrase is a solution key with its masked display form and a hint shown to
// players when the game starts.
type Phrase struct {
	Key    string
	Masked string
	Hint   string
}

// Challenge is a one-shot quiz question whose answer is a single letter.
type Challenge struct {
	Question string
	Answer   byte
}

// Source draws game content. Implementations must be safe for concurrent
// use by multiple sessions.
type Source interface {
	// Phrase returns a fresh solution phrase with its masked form.
	Phrase() (Phrase, error)
	// Challenge returns a sub-question bound to the acting player.
	Challenge(username string) (Challenge, error)
}

// Mask hides every ASCII letter of key behind '*', keeping spaces,
// punctuation and digits visible.
func Mask(key string) string {
	out := []byte(key)
	for i, c := range out {
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') {
			out[i] = '*'
		}
	}
	return string(out)
}
