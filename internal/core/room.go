package core

import "github.com/ngxtri/wordwheel-server/internal/proto"

// Status is the lifecycle state of a room seat.
type Status int8

const (
	// StatusNotReady marks a seat that has not completed joining.
	StatusNotReady Status = 0
	// StatusReady marks a seated player eligible for turns and broadcasts.
	StatusReady Status = 1
	// StatusIdle marks a seat whose connection failed. Terminal for the
	// current game.
	StatusIdle Status = -1
)

func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusIdle:
		return "idle"
	default:
		return "not_ready"
	}
}

// Conn is a player connection as seen by the core layer. Implementations
// enforce read/write deadlines; any returned error is treated as the player
// having gone idle.
type Conn interface {
	Send(*proto.Message) error
	Recv() (*proto.Message, error)
	Close() error
}

// Slot is one seat in a room. Slots are appended during the lobby phase and
// never removed; a failed connection flips the slot to idle instead.
type Slot struct {
	Username string
	Conn     Conn
	Status   Status
}

// Room is a fixed-capacity group of players. During the lobby phase it is
// owned by the registry; once full, ownership transfers to exactly one
// session for the rest of its life, so no locking is needed.
type Room struct {
	ID       string
	Capacity int
	Slots    []Slot
}

// NewRoom creates an empty room.
func NewRoom(id string, capacity int) *Room {
	return &Room{
		ID:       id,
		Capacity: capacity,
		Slots:    make([]Slot, 0, capacity),
	}
}

// Joined reports how many seats are taken.
func (r *Room) Joined() int { return len(r.Slots) }

// Full reports whether every seat is taken.
func (r *Room) Full() bool { return len(r.Slots) >= r.Capacity }

// HasUsername reports whether name is already seated in this room.
func (r *Room) HasUsername(name string) bool {
	for i := range r.Slots {
		if r.Slots[i].Username == name {
			return true
		}
	}
	return false
}

// Seat adds a ready player to the next free seat and returns its index.
// Callers must check Full and HasUsername first.
func (r *Room) Seat(username string, conn Conn) int {
	r.Slots = append(r.Slots, Slot{
		Username: username,
		Conn:     conn,
		Status:   StatusReady,
	})
	return len(r.Slots) - 1
}

// Usernames returns the seated usernames in slot order.
func (r *Room) Usernames() []string {
	names := make([]string, len(r.Slots))
	for i := range r.Slots {
		names[i] = r.Slots[i].Username
	}
	return names
}

// MarkIdle demotes a seat to idle and releases its connection.
func (r *Room) MarkIdle(i int) {
	slot := &r.Slots[i]
	if slot.Status == StatusIdle {
		return
	}
	slot.Status = StatusIdle
	if slot.Conn != nil {
		_ = slot.Conn.Close()
	}
}

// CheckAFK is the uniform failure gate for every send and receive touching a
// seat: a transport error demotes the seat to idle, closes its connection and
// reports true. Timeouts and hard disconnects are deliberately
// indistinguishable here.
func (r *Room) CheckAFK(err error, i int) bool {
	if err == nil {
		return false
	}
	r.MarkIdle(i)
	return true
}

// CloseAll releases every remaining connection. Idle seats are already
// closed; closing twice is harmless.
func (r *Room) CloseAll() {
	for i := range r.Slots {
		if r.Slots[i].Conn != nil {
			_ = r.Slots[i].Conn.Close()
		}
	}
}
