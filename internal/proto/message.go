// Package proto defines the fixed-size binary record exchanged between the
// server and game clients. Every message on the wire occupies exactly
// RecordLen bytes: a four-byte header (magic, version, kind, reserved)
// followed by a payload area sized to the largest variant. Only the variant
// selected by the kind tag is meaningful; the remaining payload bytes are
// don't-care and receivers must not interpret them.
package proto

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Kind discriminates the payload variant carried by a record.
type Kind uint8

const (
	// KindJoin carries a Player with the candidate username.
	KindJoin Kind = iota
	// KindRefuse carries a human-readable rejection reason.
	KindRefuse
	// KindWaitingRoom carries the lobby snapshot of joined usernames.
	KindWaitingRoom
	// KindGameState carries the full game state snapshot.
	KindGameState
	// KindGuessChar carries a game state whose Guess field holds the
	// client's letter guess.
	KindGuessChar
	// KindNotification carries a short text notification.
	KindNotification
	// KindSubQuestion carries a quiz challenge or its answer.
	KindSubQuestion
	// KindEndGame carries the final game state with the summary report.
	KindEndGame

	kindCount
)

func (k Kind) String() string {
	switch k {
	case KindJoin:
		return "join"
	case KindRefuse:
		return "refuse"
	case KindWaitingRoom:
		return "waiting_room"
	case KindGameState:
		return "game_state"
	case KindGuessChar:
		return "guess_char"
	case KindNotification:
		return "notification"
	case KindSubQuestion:
		return "sub_question"
	case KindEndGame:
		return "end_game"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

const (
	magic   = 0x57
	version = 1

	// PlayersPerRoom is the fixed room capacity baked into the record
	// layout. Both ends must agree on it.
	PlayersPerRoom = 3

	// UsernameLen is the username field width; usernames are
	// NUL-terminated, so at most UsernameLen-1 bytes of text fit.
	UsernameLen = 50
	// TextLen is the notification/report field width.
	TextLen = 300
	// QuestionLen is the sub-question text field width.
	QuestionLen = 200

	headerLen = 4
	playerLen = UsernameLen + 4

	// payload offsets within the game state variant
	gsCrossword = 0
	gsMessage   = gsCrossword + UsernameLen
	gsTurn      = gsMessage + TextLen
	gsSector    = gsTurn + 1
	gsGuess     = gsSector + 1
	gsPlayers   = gsGuess + 1

	payloadLen = gsPlayers + PlayersPerRoom*playerLen

	// RecordLen is the exact size of every wire record.
	RecordLen = headerLen + payloadLen
)

// Player is the per-player variant: username plus accumulated points.
type Player struct {
	Username string
	Points   int32
}

// WaitingRoom is the lobby snapshot variant.
type WaitingRoom struct {
	Players []string
}

// SubQuestion is the quiz challenge variant. Key holds the expected answer
// letter when sent by the server; Guess holds the submitted answer when sent
// by the client.
type SubQuestion struct {
	Target   string
	Question string
	Key      byte
	Guess    byte
}

// GameState is the full game snapshot variant.
type GameState struct {
	Crossword string
	Message   string
	Turn      int
	Sector    int8
	Guess     byte
	Players   []Player
}

// Message is the decoded envelope. Exactly the field matching Kind is
// populated; senders must fill only that field.
type Message struct {
	Kind         Kind
	Player       Player
	WaitingRoom  WaitingRoom
	GameState    GameState
	Notification string
	SubQuestion  SubQuestion
}

// Marshal encodes the message into a fresh RecordLen-sized buffer.
func (m *Message) Marshal() ([]byte, error) {
	if m.Kind >= kindCount {
		return nil, fmt.Errorf("proto: unknown kind %d", m.Kind)
	}

	buf := make([]byte, RecordLen)
	buf[0] = magic
	buf[1] = version
	buf[2] = byte(m.Kind)

	p := buf[headerLen:]
	switch m.Kind {
	case KindJoin:
		if err := putPlayer(p, m.Player); err != nil {
			return nil, err
		}
	case KindRefuse, KindNotification:
		putText(p[:TextLen], m.Notification)
	case KindWaitingRoom:
		if len(m.WaitingRoom.Players) > PlayersPerRoom {
			return nil, fmt.Errorf("proto: waiting room holds %d players, capacity is %d", len(m.WaitingRoom.Players), PlayersPerRoom)
		}
		p[0] = byte(len(m.WaitingRoom.Players))
		for i, name := range m.WaitingRoom.Players {
			if err := putUsername(p[1+i*UsernameLen:], name); err != nil {
				return nil, err
			}
		}
	case KindSubQuestion:
		if err := putUsername(p, m.SubQuestion.Target); err != nil {
			return nil, err
		}
		putText(p[UsernameLen:UsernameLen+QuestionLen], m.SubQuestion.Question)
		p[UsernameLen+QuestionLen] = m.SubQuestion.Key
		p[UsernameLen+QuestionLen+1] = m.SubQuestion.Guess
	case KindGameState, KindGuessChar, KindEndGame:
		if err := putGameState(p, m.GameState); err != nil {
			return nil, err
		}
	}
	return buf, nil
}

// Unmarshal decodes one record. The buffer must hold at least RecordLen
// bytes; extra bytes are ignored.
func Unmarshal(buf []byte) (*Message, error) {
	if len(buf) < RecordLen {
		return nil, fmt.Errorf("proto: short record: %d bytes, want %d", len(buf), RecordLen)
	}
	if buf[0] != magic {
		return nil, fmt.Errorf("proto: bad magic 0x%02x", buf[0])
	}
	if buf[1] != version {
		return nil, fmt.Errorf("proto: unsupported version %d", buf[1])
	}
	kind := Kind(buf[2])
	if kind >= kindCount {
		return nil, fmt.Errorf("proto: unknown kind %d", buf[2])
	}

	m := &Message{Kind: kind}
	p := buf[headerLen:RecordLen]
	switch kind {
	case KindJoin:
		m.Player = getPlayer(p)
	case KindRefuse, KindNotification:
		m.Notification = getText(p[:TextLen])
	case KindWaitingRoom:
		n := int(p[0])
		if n > PlayersPerRoom {
			n = PlayersPerRoom
		}
		m.WaitingRoom.Players = make([]string, 0, n)
		for i := 0; i < n; i++ {
			m.WaitingRoom.Players = append(m.WaitingRoom.Players, getText(p[1+i*UsernameLen:1+(i+1)*UsernameLen]))
		}
	case KindSubQuestion:
		m.SubQuestion.Target = getText(p[:UsernameLen])
		m.SubQuestion.Question = getText(p[UsernameLen : UsernameLen+QuestionLen])
		m.SubQuestion.Key = p[UsernameLen+QuestionLen]
		m.SubQuestion.Guess = p[UsernameLen+QuestionLen+1]
	case KindGameState, KindGuessChar, KindEndGame:
		m.GameState = getGameState(p)
	}
	return m, nil
}

// Write encodes m and writes exactly one record to w.
func Write(w io.Writer, m *Message) error {
	buf, err := m.Marshal()
	if err != nil {
		return err
	}
	if _, err := w.Write(buf); err != nil {
		return fmt.Errorf("proto: write record: %w", err)
	}
	return nil
}

// Read consumes exactly one record from r and decodes it.
func Read(r io.Reader) (*Message, error) {
	buf := make([]byte, RecordLen)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, fmt.Errorf("proto: read record: %w", err)
	}
	return Unmarshal(buf)
}

func putUsername(dst []byte, name string) error {
	if len(name) >= UsernameLen {
		return fmt.Errorf("proto: username %q exceeds %d bytes", name, UsernameLen-1)
	}
	copy(dst[:UsernameLen], name)
	for i := len(name); i < UsernameLen; i++ {
		dst[i] = 0
	}
	return nil
}

// putText fills dst with s, truncating to leave a trailing NUL.
func putText(dst []byte, s string) {
	if len(s) > len(dst)-1 {
		s = s[:len(dst)-1]
	}
	copy(dst, s)
	for i := len(s); i < len(dst); i++ {
		dst[i] = 0
	}
}

func getText(src []byte) string {
	for i, b := range src {
		if b == 0 {
			return string(src[:i])
		}
	}
	return string(src)
}

func putPlayer(dst []byte, pl Player) error {
	if err := putUsername(dst, pl.Username); err != nil {
		return err
	}
	binary.BigEndian.PutUint32(dst[UsernameLen:], uint32(pl.Points))
	return nil
}

func getPlayer(src []byte) Player {
	return Player{
		Username: getText(src[:UsernameLen]),
		Points:   int32(binary.BigEndian.Uint32(src[UsernameLen:])),
	}
}

func putGameState(dst []byte, gs GameState) error {
	if len(gs.Players) > PlayersPerRoom {
		return fmt.Errorf("proto: game state holds %d players, capacity is %d", len(gs.Players), PlayersPerRoom)
	}
	putText(dst[gsCrossword:gsCrossword+UsernameLen], gs.Crossword)
	putText(dst[gsMessage:gsMessage+TextLen], gs.Message)
	dst[gsTurn] = byte(gs.Turn)
	dst[gsSector] = byte(gs.Sector)
	dst[gsGuess] = gs.Guess
	for i, pl := range gs.Players {
		if err := putPlayer(dst[gsPlayers+i*playerLen:], pl); err != nil {
			return err
		}
	}
	return nil
}

func getGameState(src []byte) GameState {
	gs := GameState{
		Crossword: getText(src[gsCrossword : gsCrossword+UsernameLen]),
		Message:   getText(src[gsMessage : gsMessage+TextLen]),
		Turn:      int(src[gsTurn]),
		Sector:    int8(src[gsSector]),
		Guess:     src[gsGuess],
	}
	gs.Players = make([]Player, 0, PlayersPerRoom)
	for i := 0; i < PlayersPerRoom; i++ {
		pl := getPlayer(src[gsPlayers+i*playerLen:])
		if pl.Username == "" {
			continue
		}
		gs.Players = append(gs.Players, pl)
	}
	return gs
}
