package core

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/ngxtri/wordwheel-server/internal/proto"
)

// Broadcaster fans a message out to every ready seat of a room, in slot
// order. A failed send demotes the seat to idle via the room's AFK gate;
// this is the only way a player goes idle while receiving.
type Broadcaster struct {
	// Pacing is an intentional delay applied before each broadcast batch
	// so human players can read the previous message. It is a readability
	// throttle, not a correctness requirement; tests run with zero.
	Pacing time.Duration
	Log    *zerolog.Logger
}

// NewBroadcaster builds a broadcaster with the given pacing interval.
func NewBroadcaster(pacing time.Duration, logger *zerolog.Logger) *Broadcaster {
	return &Broadcaster{Pacing: pacing, Log: logger}
}

// BroadcastAll delivers msg to every ready seat. Seats that fail the send
// are marked idle and skipped for the rest of the session.
func (b *Broadcaster) BroadcastAll(room *Room, msg *proto.Message) {
	if b.Pacing > 0 {
		time.Sleep(b.Pacing)
	}
	for i := range room.Slots {
		slot := &room.Slots[i]
		if slot.Status != StatusReady {
			continue
		}
		err := slot.Conn.Send(msg)
		if room.CheckAFK(err, i) && b.Log != nil {
			b.Log.Warn().
				Str("room_id", room.ID).
				Str("username", slot.Username).
				Str("kind", msg.Kind.String()).
				Err(err).
				Msg("send failed, player marked idle")
		}
	}
}
