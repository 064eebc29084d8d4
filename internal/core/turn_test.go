package core

import "testing"

func roomWithStatuses(statuses ...Status) *Room {
	r := NewRoom("room-turn", len(statuses))
	for i, st := range statuses {
		r.Seat("p", &fakeConn{})
		r.Slots[i].Status = st
	}
	return r
}

func TestNextTurnRotatesBetweenReadyPlayers(t *testing.T) {
	r := roomWithStatuses(StatusReady, StatusReady, StatusReady)

	if got := r.NextTurn(0); got != 1 {
		t.Fatalf("NextTurn(0) = %d, want 1", got)
	}
	if got := r.NextTurn(2); got != 0 {
		t.Fatalf("NextTurn(2) = %d, want 0", got)
	}
}

func TestNextTurnSkipsIdleSeats(t *testing.T) {
	r := roomWithStatuses(StatusReady, StatusIdle, StatusReady)

	if got := r.NextTurn(0); got != 2 {
		t.Fatalf("NextTurn(0) = %d, want 2", got)
	}
	if got := r.NextTurn(2); got != 0 {
		t.Fatalf("NextTurn(2) = %d, want 0", got)
	}
}

func TestNextTurnWithSingleReadySeatReturnsSameSeat(t *testing.T) {
	r := roomWithStatuses(StatusIdle, StatusReady, StatusIdle)

	if got := r.NextTurn(1); got != 1 {
		t.Fatalf("NextTurn(1) = %d, want 1", got)
	}
}

func TestNextTurnWithNoReadySeatReturnsInput(t *testing.T) {
	// NextTurn alone cannot tell "only me" from "nobody"; AllIdle must be
	// checked first.
	r := roomWithStatuses(StatusIdle, StatusIdle)

	if got := r.NextTurn(0); got != 0 {
		t.Fatalf("NextTurn(0) = %d, want 0", got)
	}
}

func TestAllIdle(t *testing.T) {
	r := roomWithStatuses(StatusIdle, StatusReady)
	if r.AllIdle() {
		t.Fatal("AllIdle = true with a ready seat")
	}

	r.MarkIdle(1)
	if !r.AllIdle() {
		t.Fatal("AllIdle = false with every seat idle")
	}
}
