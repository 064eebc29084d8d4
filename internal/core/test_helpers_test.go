package core

import (
	"errors"
	"io"

	"github.com/rs/zerolog"

	"github.com/ngxtri/wordwheel-server/internal/proto"
	"github.com/ngxtri/wordwheel-server/internal/questions"
)

var errConnDown = errors.New("connection reset")

type recvStep struct {
	msg *proto.Message
	err error
}

// fakeConn scripts receives and records sends.
type fakeConn struct {
	script  []recvStep
	sent    []*proto.Message
	sendErr error
	closed  bool
}

func (c *fakeConn) Send(m *proto.Message) error {
	if c.sendErr != nil {
		return c.sendErr
	}
	c.sent = append(c.sent, m)
	return nil
}

func (c *fakeConn) Recv() (*proto.Message, error) {
	if len(c.script) == 0 {
		return nil, io.EOF
	}
	step := c.script[0]
	c.script = c.script[1:]
	return step.msg, step.err
}

func (c *fakeConn) Close() error {
	c.closed = true
	return nil
}

func (c *fakeConn) sentKinds() []proto.Kind {
	kinds := make([]proto.Kind, len(c.sent))
	for i, m := range c.sent {
		kinds[i] = m.Kind
	}
	return kinds
}

func (c *fakeConn) lastOfKind(k proto.Kind) *proto.Message {
	for i := len(c.sent) - 1; i >= 0; i-- {
		if c.sent[i].Kind == k {
			return c.sent[i]
		}
	}
	return nil
}

func joinMsg(name string) *proto.Message {
	return &proto.Message{Kind: proto.KindJoin, Player: proto.Player{Username: name}}
}

func guessMsg(c byte) *proto.Message {
	return &proto.Message{Kind: proto.KindGuessChar, GameState: proto.GameState{Guess: c}}
}

func answerMsg(c byte) *proto.Message {
	return &proto.Message{Kind: proto.KindSubQuestion, SubQuestion: proto.SubQuestion{Guess: c}}
}

func recvOK(m *proto.Message) recvStep { return recvStep{msg: m} }

func recvFail() recvStep { return recvStep{err: errConnDown} }

// fakeSource returns fixed content.
type fakeSource struct {
	phrase    questions.Phrase
	challenge questions.Challenge
}

func (f *fakeSource) Phrase() (questions.Phrase, error) { return f.phrase, nil }

func (f *fakeSource) Challenge(string) (questions.Challenge, error) { return f.challenge, nil }

func sourceFor(key string) *fakeSource {
	return &fakeSource{
		phrase:    questions.Phrase{Key: key, Masked: questions.Mask(key)},
		challenge: questions.Challenge{Question: "Roman numeral for fifty?", Answer: 'l'},
	}
}

func testLogger() *zerolog.Logger {
	l := zerolog.Nop()
	return &l
}

func testRoom(names []string, conns []*fakeConn) *Room {
	r := NewRoom("room-test", len(names))
	for i, name := range names {
		r.Seat(name, conns[i])
	}
	return r
}
