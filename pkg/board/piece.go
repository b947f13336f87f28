package board

import "strconv"

// Piece identifies a labeled block on the board: a 4-bit id in 1..=15. Id 0
// denotes "empty" and is never passed to board operations that expect an
// actual piece. Ids are labels, not an ordering; they are compared only for
// equality, except where the puzzle rules explicitly sort them (Rule.Pieces,
// PiecePair).
type Piece uint8

// NoPiece is the sentinel for "no piece", i.e. an empty cell.
const NoPiece Piece = 0

// LargePiece is the distinguished 2x2 piece the puzzle tracks to a goal.
// This is part of the problem statement, not a generalization point.
const LargePiece Piece = 1

// NewPiece returns the Piece for the given nibble id.
func NewPiece(id uint8) Piece {
	return Piece(id & 0xf)
}

// ID returns the underlying 4-bit id.
func (p Piece) ID() uint8 {
	return uint8(p)
}

func (p Piece) String() string {
	return strconv.FormatUint(uint64(p&0xf), 16)
}

// PiecePair represents two pieces that exchange identity under the board's
// mirror symmetry, with A.ID() < B.ID().
type PiecePair struct {
	A, B Piece
}
