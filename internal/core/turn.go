package core

// NextTurn scans forward circularly from current+1 and returns the first
// ready seat. When no other seat is ready it returns current unchanged, which
// alone cannot distinguish "one player left" from "none left" — callers must
// check AllIdle first.
func (r *Room) NextTurn(current int) int {
	n := len(r.Slots)
	if n == 0 {
		return current
	}
	for next := (current + 1) % n; next != current; next = (next + 1) % n {
		if r.Slots[next].Status == StatusReady {
			return next
		}
	}
	return current
}

// AllIdle reports whether no seat is ready.
func (r *Room) AllIdle() bool {
	for i := range r.Slots {
		if r.Slots[i].Status == StatusReady {
			return false
		}
	}
	return true
}
