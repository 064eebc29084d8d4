package core

import "sync/atomic"

// Stats holds server-wide gameplay counters shared between the lobby,
// sessions and the status endpoint. All fields are atomics; sessions on
// different goroutines update them without coordination.
type Stats struct {
	LobbyJoined   atomic.Int64
	ActiveRooms   atomic.Int64
	GamesFinished atomic.Int64
	GamesSolved   atomic.Int64
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	LobbyJoined   int64 `json:"lobby_joined"`
	ActiveRooms   int64 `json:"active_rooms"`
	GamesFinished int64 `json:"games_finished"`
	GamesSolved   int64 `json:"games_solved"`
}

// Snapshot reads all counters.
func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		LobbyJoined:   s.LobbyJoined.Load(),
		ActiveRooms:   s.ActiveRooms.Load(),
		GamesFinished: s.GamesFinished.Load(),
		GamesSolved:   s.GamesSolved.Load(),
	}
}
