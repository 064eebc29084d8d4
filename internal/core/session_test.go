package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngxtri/wordwheel-server/internal/proto"
)

func newTestSession(key string, conns []*fakeConn) (*Session, *Stats) {
	names := []string{"alice", "bob"}[:len(conns)]
	room := testRoom(names, conns)
	stats := &Stats{}
	s := NewSession(room, sourceFor(key), NewBroadcaster(0, testLogger()), stats, testLogger())
	return s, stats
}

// spinScript fixes the wheel: listed sectors first, letter guesses after.
func spinScript(s *Session, sectors ...int8) {
	i := 0
	s.spin = func() int8 {
		if i < len(sectors) {
			v := sectors[i]
			i++
			return v
		}
		return 3
	}
}

func gameStates(c *fakeConn) []proto.GameState {
	var out []proto.GameState
	for _, m := range c.sent {
		if m.Kind == proto.KindGameState {
			out = append(out, m.GameState)
		}
	}
	return out
}

func hasNotification(c *fakeConn, substr string) bool {
	for _, m := range c.sent {
		if m.Kind == proto.KindNotification && strings.Contains(m.Notification, substr) {
			return true
		}
	}
	return false
}

func TestLetterGuessRevealsAllPositionsAndKeepsTurn(t *testing.T) {
	p0 := &fakeConn{script: []recvStep{
		recvOK(guessMsg('e')),
		recvOK(guessMsg('l')),
		recvOK(guessMsg('v')),
		recvOK(guessMsg('r')),
	}}
	p1 := &fakeConn{}

	s, _ := newTestSession("lever", []*fakeConn{p0, p1})
	spinScript(s)
	s.Run()

	states := gameStates(p1)
	require.GreaterOrEqual(t, len(states), 2)

	// 'e' matches positions 1 and 3; both show up together in the next
	// broadcast and alice keeps the turn.
	assert.Equal(t, "*****", states[0].Crossword)
	assert.Equal(t, "*e*e*", states[1].Crossword)
	for _, st := range states {
		assert.Equal(t, 0, st.Turn)
	}

	end := p1.lastOfKind(proto.KindEndGame)
	require.NotNil(t, end)
	assert.Equal(t, "lever", end.GameState.Crossword)
	assert.Contains(t, end.GameState.Message, "Winners: alice, bob")
}

func TestMissedGuessAdvancesTurn(t *testing.T) {
	p0 := &fakeConn{script: []recvStep{recvOK(guessMsg('z'))}}
	p1 := &fakeConn{script: []recvStep{
		recvOK(guessMsg('a')),
		recvOK(guessMsg('b')),
	}}

	s, _ := newTestSession("ab", []*fakeConn{p0, p1})
	spinScript(s)
	s.Run()

	var turns []int
	for _, st := range gameStates(p0) {
		turns = append(turns, st.Turn)
	}
	assert.Equal(t, []int{0, 1, 1}, turns)
	assert.True(t, hasNotification(p0, "no new letters"))
}

func TestSubQuestionCorrectAnswerScoresAndKeepsTurn(t *testing.T) {
	p0 := &fakeConn{script: []recvStep{
		recvOK(answerMsg('l')),
		recvOK(guessMsg('g')),
		recvOK(guessMsg('o')),
	}}
	p1 := &fakeConn{}

	s, _ := newTestSession("go", []*fakeConn{p0, p1})
	spinScript(s, SectorSubQuestion)
	s.Run()

	// The challenge never leaks the expected answer to clients.
	sub := p1.lastOfKind(proto.KindSubQuestion)
	require.NotNil(t, sub)
	assert.Equal(t, "alice", sub.SubQuestion.Target)
	assert.Zero(t, sub.SubQuestion.Key)

	assert.True(t, hasNotification(p1, "Correct answer! [alice] gained 200 points"))

	end := p1.lastOfKind(proto.KindEndGame)
	require.NotNil(t, end)
	require.Len(t, end.GameState.Players, 2)
	assert.Equal(t, int32(200), end.GameState.Players[0].Points)
	assert.Contains(t, end.GameState.Message, "Winner: alice\n")

	// Alice kept the turn after answering correctly.
	assert.Equal(t, 0, gameStates(p1)[0].Turn)
}

func TestSubQuestionWrongAnswerClampsAtZero(t *testing.T) {
	p0 := &fakeConn{script: []recvStep{recvOK(answerMsg('x'))}}
	p1 := &fakeConn{script: []recvStep{recvOK(guessMsg('a'))}}

	s, _ := newTestSession("a", []*fakeConn{p0, p1})
	spinScript(s, SectorSubQuestion)
	s.Run()

	assert.True(t, hasNotification(p0, "Wrong answer! [alice] lost 100 points"))

	end := p0.lastOfKind(proto.KindEndGame)
	require.NotNil(t, end)
	assert.Equal(t, int32(0), end.GameState.Players[0].Points, "points must never go below zero")

	// The turn moved to bob.
	assert.Equal(t, 1, gameStates(p0)[0].Turn)
}

func TestPenaltySectorAdvancesTurn(t *testing.T) {
	p0 := &fakeConn{}
	p1 := &fakeConn{script: []recvStep{recvOK(guessMsg('a'))}}

	s, _ := newTestSession("a", []*fakeConn{p0, p1})
	spinScript(s, SectorPenalty)
	s.Run()

	assert.True(t, hasNotification(p0, "Unlucky! alice lost 150 points"))
	assert.Equal(t, 1, gameStates(p0)[0].Turn)

	end := p0.lastOfKind(proto.KindEndGame)
	require.NotNil(t, end)
	assert.Equal(t, int32(0), end.GameState.Players[0].Points)
}

func TestBonusSectorScoresButDoesNotGrantExtraTurn(t *testing.T) {
	p0 := &fakeConn{}
	p1 := &fakeConn{script: []recvStep{recvOK(guessMsg('a'))}}

	s, _ := newTestSession("a", []*fakeConn{p0, p1})
	spinScript(s, SectorBonus)
	s.Run()

	assert.True(t, hasNotification(p0, "Lucky! alice gained 200 points"))
	assert.Equal(t, 1, gameStates(p0)[0].Turn)

	end := p0.lastOfKind(proto.KindEndGame)
	require.NotNil(t, end)
	assert.Equal(t, int32(200), end.GameState.Players[0].Points)
	assert.Contains(t, end.GameState.Message, "Winner: alice\n")
}

func TestActingPlayerGoingIdleSkipsTurnWithoutScoring(t *testing.T) {
	p0 := &fakeConn{script: []recvStep{recvFail()}}
	p1 := &fakeConn{script: []recvStep{recvOK(guessMsg('a'))}}

	s, _ := newTestSession("a", []*fakeConn{p0, p1})
	spinScript(s)
	s.Run()

	assert.True(t, p0.closed)
	assert.True(t, hasNotification(p1, "[alice] is AFK"))

	end := p1.lastOfKind(proto.KindEndGame)
	require.NotNil(t, end)
	assert.Equal(t, int32(0), end.GameState.Players[0].Points)
}

func TestAllIdleEndsSessionWithSummary(t *testing.T) {
	p0 := &fakeConn{script: []recvStep{recvFail()}}
	p1 := &fakeConn{script: []recvStep{recvFail()}}

	s, stats := newTestSession("abc", []*fakeConn{p0, p1})
	spinScript(s)
	s.Run()

	assert.True(t, p0.closed)
	assert.True(t, p1.closed)
	assert.Equal(t, int64(1), stats.GamesFinished.Load())
	assert.Equal(t, int64(0), stats.GamesSolved.Load())
	assert.Equal(t, int64(0), stats.ActiveRooms.Load())
}

func TestInvalidInputGetsRepromptedToActingPlayerOnly(t *testing.T) {
	p0 := &fakeConn{script: []recvStep{
		recvOK(guessMsg('1')),
		recvOK(guessMsg('a')),
	}}
	p1 := &fakeConn{}

	s, stats := newTestSession("a", []*fakeConn{p0, p1})
	spinScript(s)
	s.Run()

	assert.True(t, hasNotification(p0, "Please answer with a single letter"))
	assert.False(t, hasNotification(p1, "Please answer with a single letter"))
	assert.Equal(t, int64(1), stats.GamesSolved.Load())
}

func TestUppercaseGuessMatchesLowercaseKey(t *testing.T) {
	p0 := &fakeConn{script: []recvStep{recvOK(guessMsg('A'))}}
	p1 := &fakeConn{}

	s, _ := newTestSession("a", []*fakeConn{p0, p1})
	spinScript(s)
	s.Run()

	end := p1.lastOfKind(proto.KindEndGame)
	require.NotNil(t, end)
	assert.Equal(t, "a", end.GameState.Crossword)
}
