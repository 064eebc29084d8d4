package questions

import (
	"fmt"
	"math/rand/v2"
)

type bankPhrase struct {
	key  string
	hint string
}

type bankQuestion struct {
	text   string
	answer byte
}

var defaultPhrases = []bankPhrase{
	{"the quick brown fox", "A typist's favourite animal"},
	{"a piece of cake", "Something very easy"},
	{"break the ice", "What you do when meeting strangers"},
	{"once in a blue moon", "Something that rarely happens"},
	{"hit the nail on the head", "Being exactly right"},
	{"under the weather", "Feeling slightly ill"},
	{"spill the beans", "Reveal a secret"},
	{"the early bird", "It catches the worm"},
}

var defaultQuestions = []bankQuestion{
	{"What is the first letter of the chemical symbol for gold?", 'a'},
	{"Which letter do most English words start with?", 's'},
	{"What is the Roman numeral for one hundred?", 'c'},
	{"Which vowel appears most often in English text?", 'e'},
	{"What is the Roman numeral for fifty?", 'l'},
	{"Which letter marks the spot on a treasure map?", 'x'},
	{"What is the first letter of the largest planet in our solar system?", 'j'},
	{"Which letter is a homophone of the word 'sea'?", 'c'},
}

// Bank is the builtin in-memory content source. The package-level rand/v2
// generator is already safe for concurrent sessions.
type Bank struct {
	phrases   []bankPhrase
	questions []bankQuestion
}

// NewBank returns a source backed by the builtin phrase and question sets.
func NewBank() *Bank {
	return &Bank{phrases: defaultPhrases, questions: defaultQuestions}
}

// Phrase draws a uniformly random phrase.
func (b *Bank) Phrase() (Phrase, error) {
	p := b.phrases[rand.IntN(len(b.phrases))]
	return Phrase{Key: p.key, Masked: Mask(p.key), Hint: p.hint}, nil
}

// Challenge draws a uniformly random sub-question addressed to username.
func (b *Bank) Challenge(username string) (Challenge, error) {
	q := b.questions[rand.IntN(len(b.questions))]
	return Challenge{
		Question: fmt.Sprintf("%s, answer with one letter: %s", username, q.text),
		Answer:   q.answer,
	}, nil
}
