package board

import "sort"

// Rule bundles everything about a particular puzzle instance that does not
// change while it is being solved: the starting image, the goal mask that
// the tracked piece must land on, the set of pieces present, and the
// mirror-symmetric piece pairs used to canonicalize boards.
type Rule struct {
	start    Board
	goalMask BitPattern
	pieces   []Piece
	pairs    []PiecePair
}

// NewRule derives a Rule from a starting board and the goal mask the
// LargePiece must occupy. Pieces and mirror pairs are both derived from
// start, not supplied separately, since both are intrinsic to the layout.
func NewRule(start Board, goalMask BitPattern) *Rule {
	pieces := createPieces(start.Image())
	return &Rule{
		start:    start,
		goalMask: goalMask,
		pieces:   pieces,
		pairs:    createPairs(pieces, start.Image(), goalMask),
	}
}

// Start returns the puzzle's starting board.
func (r *Rule) Start() Board {
	return r.start
}

// GoalMask returns the mask the LargePiece must occupy to solve the puzzle.
func (r *Rule) GoalMask() BitPattern {
	return r.goalMask
}

// Pieces returns every piece id present on the board, ascending.
func (r *Rule) Pieces() []Piece {
	return r.pieces
}

// Pairs returns the mirror-symmetric piece pairs used by BoardKey.
func (r *Rule) Pairs() []PiecePair {
	return r.pairs
}

// IsFinished reports whether board satisfies the goal: LargePiece occupies
// exactly the cells marked by goalMask.
func (r *Rule) IsFinished(b Board) bool {
	return b.Image().MaskOf(LargePiece).Compare(r.goalMask) == 0
}

// createPieces returns every distinct piece id (1..=15) occupying at least
// one cell of image, in ascending order.
func createPieces(image BitPattern) []Piece {
	var pieces []Piece
	for id := uint8(1); id <= 0xf; id++ {
		p := NewPiece(id)
		if image.MaskOf(p).IsNotEmpty() {
			pieces = append(pieces, p)
		}
	}
	return pieces
}

// createPairs finds every pair of pieces that are images of each other
// under the board's left-right mirror symmetry: piece a's mask, reflected,
// is exactly piece b's mask. A piece whose own mask is its own mirror image
// has no pair.
//
// This is an all-or-nothing computation, not a best-effort one: if goalMask
// is not itself left-right symmetric, or if any piece on the board lacks an
// exact mirror counterpart (the board as a whole is not mirror-symmetric),
// folding boards together by this symmetry would not actually preserve
// goal-equivalence, so no pairs are returned at all and BoardKey degrades
// to the identity canonicalization.
func createPairs(pieces []Piece, image, goalMask BitPattern) []PiecePair {
	if goalMask.Compare(goalMask.Mirrored()) != 0 {
		return nil
	}

	seen := map[[2]uint8]bool{}
	var pairs []PiecePair
	for _, a := range pieces {
		mirroredMask := image.MaskOf(a).Mirrored()

		b, ok := pieceWithMask(pieces, image, mirroredMask)
		if !ok {
			return nil // a has no exact mirror counterpart: board is not mirror-symmetric
		}
		if b == a.ID() {
			continue // a's own shape is its own mirror image
		}

		lo, hi := a.ID(), b
		if lo > hi {
			lo, hi = hi, lo
		}
		key := [2]uint8{lo, hi}
		if seen[key] {
			continue
		}
		seen[key] = true
		pairs = append(pairs, PiecePair{A: NewPiece(lo), B: NewPiece(hi)})
	}

	sort.Slice(pairs, func(i, j int) bool { return pairs[i].A.ID() < pairs[j].A.ID() })
	return pairs
}

// pieceWithMask returns the id of the piece in pieces whose mask on image is
// exactly mask, if any.
func pieceWithMask(pieces []Piece, image, mask BitPattern) (uint8, bool) {
	for _, p := range pieces {
		if image.MaskOf(p).Compare(mask) == 0 {
			return p.ID(), true
		}
	}
	return 0, false
}
