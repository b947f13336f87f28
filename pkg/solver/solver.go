// Package solver composes the board and search packages into the Klotski
// solving algorithm proper: state expansion (single and double moves) and
// the top-level Solve entry point.
package solver

import (
	"context"

	"github.com/herohde/klotski/pkg/board"
	"github.com/herohde/klotski/pkg/search"
	"github.com/seekerror/stdlib/pkg/lang"
)

// State is one node of the solution graph: a board image, the piece that
// was last moved to reach it (unset for the starting state), and the path
// that move took (one or two cells).
type State struct {
	Board board.Board
	Piece lang.Optional[board.Piece]
	Path  board.MovePath
}

// Step is one entry of a solved Result: which piece moved, and how.
type Step struct {
	Piece board.Piece
	Path  board.MovePath
}

// Result is a solved puzzle: the sequence of steps from start to goal.
type Result struct {
	Steps []Step
	Final board.Board
}

// Solve searches for a sequence of moves that satisfies rule's goal,
// starting from rule.Start(). It returns the solution (if any), along with
// search statistics for observability regardless of outcome.
func Solve(ctx context.Context, rule *board.Rule) (*Result, search.Stats, bool) {
	start := State{Board: rule.Start()}
	history := search.NewVisitedHistory()

	isGoal := func(s State) bool {
		return rule.IsFinished(s.Board)
	}
	neighbors := func(s State) []State {
		return getNeighbors(rule, s)
	}
	tryVisit := func(s State, depth int) bool {
		key := board.CreateBoardKey(rule.Pairs(), s.Board)
		return history.TryVisit(ctx, key, depth)
	}

	path, stats, found := search.FindPath(start, isGoal, neighbors, tryVisit)
	if !found {
		return nil, stats, false
	}

	var steps []Step
	for _, s := range path {
		piece, ok := s.Piece.V()
		if !ok {
			continue // the starting state was not reached by any move
		}
		steps = append(steps, Step{Piece: piece, Path: s.Path})
	}

	return &Result{Steps: steps, Final: path[len(path)-1].Board}, stats, true
}

// getNeighbors enumerates every state reachable from s in one BFS step: a
// single-cell move of any piece other than the one last moved, or a
// double move of that same piece where the second direction does not
// undo the first. Disallowing a same-piece move on the very next step is
// not a loss of generality, since any such two-step sequence is already
// produced here as a single double move.
func getNeighbors(rule *board.Rule, s State) []State {
	lastPiece, hadLast := s.Piece.V()

	var out []State
	for _, piece := range rule.Pieces() {
		if hadLast && piece == lastPiece {
			continue
		}

		for _, dir1 := range board.Directions {
			b1, ok := s.Board.MovePiece(piece, dir1)
			if !ok {
				continue
			}

			out = append(out, State{
				Board: b1,
				Piece: lang.Some(piece),
				Path:  board.NewSinglePath(dir1),
			})

			for _, dir2 := range board.Directions {
				if dir2 == dir1.Reversed() {
					continue
				}
				b2, ok := b1.MovePiece(piece, dir2)
				if !ok {
					continue
				}
				out = append(out, State{
					Board: b2,
					Piece: lang.Some(piece),
					Path:  board.NewDoublePath(dir1, dir2),
				})
			}
		}
	}
	return out
}
