package solver

import (
	"context"
	"testing"

	"github.com/herohde/klotski/pkg/board"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func classicRule() *board.Rule {
	start := board.NewBitPattern(0x2113, 0x2113_4556_4786_900a)
	goal := board.NewBitPattern(0, 0x0000_0000_0ff0_0ff0)
	return board.NewRule(board.NewBoard(start), goal)
}

func TestGetNeighbors_EveryNeighborRecordsItsMovedPiece(t *testing.T) {
	rule := classicRule()
	start := State{Board: rule.Start()}

	neighbors := getNeighbors(rule, start)
	require.NotEmpty(t, neighbors)
	for _, n := range neighbors {
		piece, ok := n.Piece.V()
		require.True(t, ok)
		assert.NotZero(t, piece.ID())
	}
}

func TestGetNeighbors_DoubleMoveNeverReversesFirstStep(t *testing.T) {
	rule := classicRule()
	start := State{Board: rule.Start()}

	for _, n := range getNeighbors(rule, start) {
		if n.Path.Kind == board.DoublePath {
			assert.NotEqual(t, n.Path.First.Reversed(), n.Path.Second)
		}
	}
}

func TestGetNeighbors_SamePieceDisallowedOnNextStep(t *testing.T) {
	rule := classicRule()
	start := State{Board: rule.Start()}

	neighbors := getNeighbors(rule, start)
	require.NotEmpty(t, neighbors)
	moved := neighbors[0]
	lastPiece, _ := moved.Piece.V()

	for _, n := range getNeighbors(rule, moved) {
		piece, _ := n.Piece.V()
		assert.NotEqual(t, lastPiece, piece)
	}
}

func TestSolve_AlreadySolved(t *testing.T) {
	solved := board.NewBitPattern(0x2003, 0x2003_4554_4116_911a)
	rule := board.NewRule(board.NewBoard(solved), board.NewBitPattern(0, 0x0000_0000_0ff0_0ff0))

	result, stats, found := Solve(context.Background(), rule)
	require.True(t, found)
	assert.Empty(t, result.Steps)
	assert.Equal(t, 1, stats.Visited)
}

func TestSolve_OneMoveAway(t *testing.T) {
	// LargePiece sits one row above the goal; a single Down move solves it.
	almost := board.NewBitPattern(0x2003, 0x2003_4116_4116_900a)
	goal := board.NewBitPattern(0, 0x0000_0000_0ff0_0ff0)
	rule := board.NewRule(board.NewBoard(almost), goal)

	result, _, found := Solve(context.Background(), rule)
	require.True(t, found)
	require.Len(t, result.Steps, 1)
	assert.Equal(t, board.NewPiece(1), result.Steps[0].Piece)
	assert.Equal(t, board.NewSinglePath(board.Down), result.Steps[0].Path)
	assert.True(t, rule.IsFinished(result.Final))
}

func TestSolve_Unsolvable(t *testing.T) {
	// The board never contains the LargePiece the goal mask requires, so
	// no sequence of moves can ever satisfy it; the search must exhaust a
	// small finite state space and report failure rather than hang.
	stuck := board.NewBitPattern(0x2000, 0)
	goal := board.NewBitPattern(0, 0x0000_0000_0000_0ff0)
	rule := board.NewRule(board.NewBoard(stuck), goal)

	_, _, found := Solve(context.Background(), rule)
	assert.False(t, found)
}
