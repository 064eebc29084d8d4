package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ngxtri/wordwheel-server/internal/proto"
)

func TestSummaryWithTiedWinners(t *testing.T) {
	players := []proto.Player{
		{Username: "A", Points: 300},
		{Username: "B", Points: 300},
		{Username: "C", Points: 150},
	}

	winners, max := Winners(players)
	assert.Equal(t, []string{"A", "B"}, winners)
	assert.Equal(t, int32(300), max)

	report := BuildSummary(players)
	assert.Contains(t, report, "A: 300 points\n")
	assert.Contains(t, report, "B: 300 points\n")
	assert.Contains(t, report, "C: 150 points\n")
	assert.Contains(t, report, "Winners: A, B\n")
	assert.NotContains(t, report, "Winner: ")
}

func TestSummaryWithSingleWinner(t *testing.T) {
	players := []proto.Player{
		{Username: "A", Points: 500},
		{Username: "B", Points: 200},
		{Username: "C", Points: 0},
	}

	winners, max := Winners(players)
	assert.Equal(t, []string{"A"}, winners)
	assert.Equal(t, int32(500), max)

	report := BuildSummary(players)
	assert.Contains(t, report, "Winner: A\n")
	assert.NotContains(t, report, "Winners:")
}

func TestSummaryAllZeroScoresTiesEveryone(t *testing.T) {
	players := []proto.Player{
		{Username: "A"},
		{Username: "B"},
	}

	winners, max := Winners(players)
	assert.Equal(t, []string{"A", "B"}, winners)
	assert.Equal(t, int32(0), max)
	assert.Contains(t, BuildSummary(players), "Winners: A, B\n")
}
