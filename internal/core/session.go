package core

import (
	"fmt"
	"math/rand/v2"

	"github.com/rs/zerolog"

	"github.com/ngxtri/wordwheel-server/internal/proto"
	"github.com/ngxtri/wordwheel-server/internal/questions"
)

// Wheel sectors. Non-negative sectors are letter-guess sectors; the drawn
// sector number travels in the game state broadcast.
const (
	SectorSubQuestion int8 = -1
	SectorPenalty     int8 = -2
	SectorBonus       int8 = -3
)

const wheelSectorCount = 8

const (
	subQuestionReward  = 200
	subQuestionForfeit = 100
	penaltyAmount      = 150
	bonusAmount        = 200
)

// Session drives one room's game from the moment the lobby fills until the
// phrase is solved or every player has gone idle. It owns the room and the
// game state exclusively and runs on its own goroutine; the only shared
// collaborators are the read-only question source and the stats counters.
//
// Turn handling keeps two independent signals that the original rules
// conflate: whether the last action was answered correctly (reported in
// notifications) and whether the turn advances. Penalty and bonus sectors
// always advance the turn even though nothing was answered.
type Session struct {
	room  *Room
	src   questions.Source
	bc    *Broadcaster
	stats *Stats
	log   zerolog.Logger

	key     string
	state   proto.GameState
	advance bool
	spin    func() int8
}

// NewSession prepares a session for a full room. Run must be called exactly
// once.
func NewSession(room *Room, src questions.Source, bc *Broadcaster, stats *Stats, logger *zerolog.Logger) *Session {
	s := &Session{
		room:  room,
		src:   src,
		bc:    bc,
		stats: stats,
		log:   logger.With().Str("room_id", room.ID).Logger(),
	}
	s.spin = s.rollWheel
	return s
}

func (s *Session) rollWheel() int8 {
	n := rand.IntN(wheelSectorCount)
	switch n {
	case 0:
		return SectorSubQuestion
	case 1:
		return SectorPenalty
	case 2:
		return SectorBonus
	default:
		return int8(n)
	}
}

// Run plays the game to completion and releases every connection.
func (s *Session) Run() {
	if err := s.init(); err != nil {
		s.log.Error().Err(err).Msg("session init failed")
		s.room.CloseAll()
		return
	}
	if s.stats != nil {
		s.stats.ActiveRooms.Add(1)
	}

	solved := s.loop()
	s.finish(solved)
}

func (s *Session) init() error {
	phrase, err := s.src.Phrase()
	if err != nil {
		return fmt.Errorf("draw phrase: %w", err)
	}
	s.key = phrase.Key
	s.state = proto.GameState{
		Crossword: phrase.Masked,
		Players:   make([]proto.Player, len(s.room.Slots)),
	}
	for i := range s.room.Slots {
		s.state.Players[i] = proto.Player{Username: s.room.Slots[i].Username}
	}

	s.log.Info().
		Strs("players", s.room.Usernames()).
		Str("crossword", phrase.Masked).
		Msg("game started")

	if phrase.Hint != "" {
		s.notify("Hint: " + phrase.Hint)
	}
	return nil
}

func (s *Session) loop() bool {
	for s.state.Crossword != s.key {
		s.state.Message = ""

		if s.room.AllIdle() {
			s.log.Info().Msg("all players idle")
			return false
		}
		if s.advance || s.room.Slots[s.state.Turn].Status != StatusReady {
			s.state.Turn = s.room.NextTurn(s.state.Turn)
			s.advance = false
		}

		s.state.Sector = s.spin()
		s.log.Debug().
			Int("turn", s.state.Turn).
			Str("username", s.room.Slots[s.state.Turn].Username).
			Int8("sector", s.state.Sector).
			Msg("wheel spun")

		switch s.state.Sector {
		case SectorSubQuestion:
			s.subQuestionTurn()
		case SectorPenalty:
			s.penaltyTurn()
		case SectorBonus:
			s.bonusTurn()
		default:
			s.letterTurn()
		}
	}
	return true
}

func (s *Session) subQuestionTurn() {
	player := &s.state.Players[s.state.Turn]

	challenge, err := s.src.Challenge(player.Username)
	if err != nil {
		s.log.Error().Err(err).Msg("draw sub-question failed")
		s.advance = true
		return
	}

	// The expected answer stays on the server; clients only see the
	// question text.
	s.bc.BroadcastAll(s.room, &proto.Message{
		Kind: proto.KindSubQuestion,
		SubQuestion: proto.SubQuestion{
			Target:   player.Username,
			Question: challenge.Question,
		},
	})

	guess, ok := s.awaitLetter(func(m *proto.Message) byte { return m.SubQuestion.Guess })
	if !ok {
		s.advance = true
		return
	}

	if guess == lower(challenge.Answer) {
		addPoints(player, subQuestionReward)
		s.state.Message = fmt.Sprintf("Correct answer! [%s] gained %d points", player.Username, subQuestionReward)
		s.advance = false
	} else {
		addPoints(player, -subQuestionForfeit)
		s.state.Message = fmt.Sprintf("Wrong answer! [%s] lost %d points", player.Username, subQuestionForfeit)
		s.advance = true
	}
	s.notify(s.state.Message)
}

func (s *Session) penaltyTurn() {
	player := &s.state.Players[s.state.Turn]
	addPoints(player, -penaltyAmount)
	s.state.Message = fmt.Sprintf("Unlucky! %s lost %d points", player.Username, penaltyAmount)
	s.notify(s.state.Message)
	s.advance = true
}

func (s *Session) bonusTurn() {
	player := &s.state.Players[s.state.Turn]
	addPoints(player, bonusAmount)
	s.state.Message = fmt.Sprintf("Lucky! %s gained %d points", player.Username, bonusAmount)
	s.notify(s.state.Message)
	// Bonus sectors do not grant an extra turn.
	s.advance = true
}

func (s *Session) letterTurn() {
	s.bc.BroadcastAll(s.room, &proto.Message{Kind: proto.KindGameState, GameState: s.state})

	guess, ok := s.awaitLetter(func(m *proto.Message) byte { return m.GameState.Guess })
	if !ok {
		s.advance = true
		return
	}

	player := &s.state.Players[s.state.Turn]
	revealed := s.applyGuess(guess)
	if revealed > 0 {
		s.state.Message = fmt.Sprintf("[%s] guessed '%c': %d letter(s) revealed", player.Username, guess, revealed)
		s.advance = false
	} else {
		s.state.Message = fmt.Sprintf("[%s] guessed '%c': no new letters", player.Username, guess)
		s.advance = true
	}
	s.notify(s.state.Message)
}

// awaitLetter blocks on the acting player's receive until an alphabetic
// character arrives. A malformed payload gets a reprompt notification to the
// acting player only before the next receive, so a real timeout surfaces as
// AFK instead of looking like repeated bad input. Returns false after
// broadcasting the AFK notice when the player goes idle.
func (s *Session) awaitLetter(pick func(*proto.Message) byte) (byte, bool) {
	turn := s.state.Turn
	slot := &s.room.Slots[turn]
	for {
		msg, err := slot.Conn.Recv()
		if s.room.CheckAFK(err, turn) {
			s.log.Warn().Str("username", slot.Username).Err(err).Msg("player went idle during receive")
			s.notify(fmt.Sprintf("[%s] is AFK", slot.Username))
			return 0, false
		}

		if c := pick(msg); isLetter(c) {
			return lower(c), true
		}

		err = slot.Conn.Send(&proto.Message{
			Kind:         proto.KindNotification,
			Notification: "Please answer with a single letter",
		})
		if s.room.CheckAFK(err, turn) {
			s.notify(fmt.Sprintf("[%s] is AFK", slot.Username))
			return 0, false
		}
	}
}

// applyGuess reveals every position of the key matching c and returns how
// many were newly revealed. Matching is case-insensitive; revealed
// characters keep the key's casing.
func (s *Session) applyGuess(c byte) int {
	cw := []byte(s.state.Crossword)
	revealed := 0
	for i := 0; i < len(s.key) && i < len(cw); i++ {
		if lower(s.key[i]) == c && cw[i] != s.key[i] {
			cw[i] = s.key[i]
			revealed++
		}
	}
	s.state.Crossword = string(cw)
	return revealed
}

func (s *Session) notify(text string) {
	s.bc.BroadcastAll(s.room, &proto.Message{Kind: proto.KindNotification, Notification: text})
}

func (s *Session) finish(solved bool) {
	s.state.Message = BuildSummary(s.state.Players)
	s.bc.BroadcastAll(s.room, &proto.Message{Kind: proto.KindEndGame, GameState: s.state})
	s.room.CloseAll()

	if s.stats != nil {
		s.stats.ActiveRooms.Add(-1)
		s.stats.GamesFinished.Add(1)
		if solved {
			s.stats.GamesSolved.Add(1)
		}
	}
	s.log.Info().Bool("solved", solved).Msg("game over")
}

func addPoints(p *proto.Player, delta int32) {
	p.Points += delta
	if p.Points < 0 {
		p.Points = 0
	}
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
