package core

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ngxtri/wordwheel-server/internal/proto"
)

// Registry fills one room at a time with joining players. It runs on the
// accept loop's goroutine; once a room is full it is handed over whole and
// the registry starts a fresh one, so no state is shared with sessions.
type Registry struct {
	capacity int
	bc       *Broadcaster
	stats    *Stats
	log      *zerolog.Logger

	room *Room
}

// NewRegistry builds a registry for rooms of the given capacity.
func NewRegistry(capacity int, bc *Broadcaster, stats *Stats, logger *zerolog.Logger) *Registry {
	return &Registry{
		capacity: capacity,
		bc:       bc,
		stats:    stats,
		log:      logger,
	}
}

// Admit negotiates a join on conn: it blocks for the candidate's JOIN,
// refuses duplicate or malformed usernames (the candidate stays connected
// and may retry), seats the player and broadcasts the updated lobby
// snapshot. When the seat completes the room, the full room is returned and
// the registry resets; otherwise Admit returns nil. On any transport failure
// the candidate is closed and its seat stays open.
func (g *Registry) Admit(conn Conn) *Room {
	if g.room == nil {
		g.room = NewRoom(uuid.NewString(), g.capacity)
		g.log.Info().Str("room_id", g.room.ID).Msg("lobby opened")
	}
	room := g.room

	msg, err := conn.Recv()
	if err != nil {
		_ = conn.Close()
		return nil
	}

	username, refuseErr := g.validate(room, msg)
	for refuseErr != nil {
		g.log.Debug().
			Str("room_id", room.ID).
			Str("code", refuseErr.Code).
			Str("username", username).
			Msg("join refused")

		err = conn.Send(&proto.Message{Kind: proto.KindRefuse, Notification: refuseErr.Reason})
		if err != nil {
			_ = conn.Close()
			return nil
		}
		msg, err = conn.Recv()
		if err != nil {
			_ = conn.Close()
			return nil
		}
		username, refuseErr = g.validate(room, msg)
	}

	room.Seat(username, conn)
	if g.stats != nil {
		g.stats.LobbyJoined.Store(int64(room.Joined()))
	}
	g.log.Info().
		Str("room_id", room.ID).
		Str("username", username).
		Int("joined", room.Joined()).
		Msg("player seated")

	g.bc.BroadcastAll(room, &proto.Message{
		Kind:        proto.KindWaitingRoom,
		WaitingRoom: proto.WaitingRoom{Players: room.Usernames()},
	})

	if !room.Full() {
		return nil
	}
	g.room = nil
	if g.stats != nil {
		g.stats.LobbyJoined.Store(0)
	}
	g.log.Info().Str("room_id", room.ID).Msg("room full, starting session")
	return room
}

func (g *Registry) validate(room *Room, msg *proto.Message) (string, *RefusalError) {
	username := msg.Player.Username
	if msg.Kind != proto.KindJoin || username == "" {
		return username, refusal(ErrCodeBadJoin, "Expected a join request with a username")
	}
	if room.HasUsername(username) {
		return username, refusal(ErrCodeUsernameTaken,
			fmt.Sprintf("Username %s is already exist. Please choose another username", username))
	}
	return username, nil
}
