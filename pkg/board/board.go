// Package board contains the Klotski board representation and utilities.
package board

import "fmt"

// edge masks identify the cells along each border of the 4-wide, 5-tall
// grid. A piece touching the corresponding edge cannot move further in
// that direction without leaving the board.
var (
	edgeTop    = NewBitPatternFromRows([numRows]uint16{0xffff, 0, 0, 0, 0})
	edgeBottom = NewBitPatternFromRows([numRows]uint16{0, 0, 0, 0, 0xffff})
	edgeLeft   = NewBitPatternFromRows([numRows]uint16{0xf000, 0xf000, 0xf000, 0xf000, 0xf000})
	edgeRight  = NewBitPatternFromRows([numRows]uint16{0x000f, 0x000f, 0x000f, 0x000f, 0x000f})
)

func edgeFor(dir Direction) BitPattern {
	switch dir {
	case Up:
		return edgeTop
	case Down:
		return edgeBottom
	case Left:
		return edgeLeft
	case Right:
		return edgeRight
	default:
		panic("invalid direction")
	}
}

// Board is the immutable image of where every piece sits, expressed as a
// BitPattern. Like the teacher's Bitboard, all operations are pure
// functions returning a new value; there is no in-place mutation and no
// history to track, since the puzzle has no draw/repetition rules.
type Board struct {
	image BitPattern
}

// NewBoard wraps a raw BitPattern as a Board.
func NewBoard(image BitPattern) Board {
	return Board{image: image}
}

// Image returns the board's underlying BitPattern.
func (b Board) Image() BitPattern {
	return b.image
}

// MovePiece attempts to slide piece one cell in dir. It returns the
// resulting board and true on success, or the zero Board and false if the
// piece is not on the board, or the move would leave the board or collide
// with another piece.
func (b Board) MovePiece(piece Piece, dir Direction) (Board, bool) {
	pieceMask := b.image.MaskOf(piece)
	if pieceMask.IsEmpty() {
		return Board{}, false
	}
	if pieceMask.And(edgeFor(dir)).IsNotEmpty() {
		return Board{}, false
	}

	pieceImage := b.image.And(pieceMask)
	rest := b.image.Xor(pieceImage)

	if pieceMask.Moved(dir).And(rest).IsNotEmpty() {
		return Board{}, false
	}

	return Board{image: rest.Or(pieceImage.Moved(dir))}, true
}

func (b Board) String() string {
	return fmt.Sprintf("board{%v}", b.image)
}
