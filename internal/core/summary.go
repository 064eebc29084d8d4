package core

import (
	"fmt"
	"strings"

	"github.com/ngxtri/wordwheel-server/internal/proto"
)

// Winners returns the players sharing the highest score, in slot order, and
// the score itself. Points are never negative, so an all-zero game makes
// everyone a winner.
func Winners(players []proto.Player) ([]string, int32) {
	var max int32
	for _, p := range players {
		if p.Points > max {
			max = p.Points
		}
	}
	var names []string
	for _, p := range players {
		if p.Points == max {
			names = append(names, p.Username)
		}
	}
	return names, max
}

// BuildSummary formats the final standings: one line per player followed by
// a winner line, with "Winners" pluralized on ties.
func BuildSummary(players []proto.Player) string {
	var b strings.Builder
	b.WriteString("Summary:\n")
	for _, p := range players {
		fmt.Fprintf(&b, "%s: %d points\n", p.Username, p.Points)
	}

	winners, _ := Winners(players)
	if len(winners) > 1 {
		b.WriteString("Winners: ")
	} else {
		b.WriteString("Winner: ")
	}
	b.WriteString(strings.Join(winners, ", "))
	b.WriteString("\n")
	return b.String()
}
