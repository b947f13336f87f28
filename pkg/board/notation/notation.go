// Package notation contains utilities for reading and writing Klotski
// boards in their 20-hex-digit notation.
package notation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/herohde/klotski/pkg/board"
)

// Decode returns the BitPattern described by s: twenty hex digits, read
// left to right, top row to bottom row, four digits per row. An optional
// "0x" prefix is accepted. Underscores may be used freely as visual
// separators (as produced by Encode) and are ignored.
//
// Example:
//
//	"2113_2113_4556_4786_900a"
func Decode(s string) (board.BitPattern, error) {
	cleaned := strings.ReplaceAll(strings.TrimPrefix(s, "0x"), "_", "")
	if len(cleaned) != 20 {
		return board.BitPattern{}, fmt.Errorf("invalid board string '%v': want 20 hex digits, got %v", s, len(cleaned))
	}

	var rows [5]uint16
	for i := range rows {
		group := cleaned[i*4 : i*4+4]
		v, err := strconv.ParseUint(group, 16, 16)
		if err != nil {
			return board.BitPattern{}, fmt.Errorf("invalid hex digits '%v' in board string '%v': %w", group, s, err)
		}
		rows[i] = uint16(v)
	}
	return board.NewBitPatternFromRows(rows), nil
}

// Encode renders a BitPattern as its canonical 20-hex-digit notation,
// grouped in fours by underscores.
func Encode(p board.BitPattern) string {
	s := p.String()
	return strings.TrimSuffix(strings.TrimPrefix(s, "["), "]")
}

// pieceShape classifies the rectangle a set of same-id cells forms.
type pieceShape int

const (
	shapeInvalid pieceShape = iota
	shapeSmall              // 1x1
	shapeHorizontal         // 1x2
	shapeVertical           // 2x1
	shapeLarge              // 2x2
)

// ValidateLayout checks that every piece on the board occupies a single
// contiguous rectangle of the shape its id is allowed to form: id
// board.LargePiece (0x1) must form the 2x2 LARGE square, and no other id
// may; every other id must form a 1x1 single or a 1x2/2x1 domino.
// Disconnected or irregularly-shaped cell groups sharing an id are
// rejected, as is a non-large piece occupying a 2x2 block or the large
// piece occupying anything smaller.
func ValidateLayout(p board.BitPattern) error {
	cells := map[uint8][][2]int{}
	for row := 0; row < 5; row++ {
		for col := 0; col < 4; col++ {
			piece := p.CellAt(row, col)
			if piece == board.NoPiece {
				continue
			}
			cells[piece.ID()] = append(cells[piece.ID()], [2]int{row, col})
		}
	}

	if _, ok := cells[board.LargePiece.ID()]; !ok {
		return fmt.Errorf("piece %x (the 2x2 large piece) is missing", board.LargePiece.ID())
	}

	for id, pts := range cells {
		shape := shapeOf(pts)
		if shape == shapeInvalid {
			return fmt.Errorf("piece %x does not form a valid shape", id)
		}
		if id == board.LargePiece.ID() {
			if shape != shapeLarge {
				return fmt.Errorf("piece %x must form the 2x2 large shape", id)
			}
		} else if shape == shapeLarge {
			return fmt.Errorf("piece %x must not form the 2x2 large shape: reserved for piece %x", id, board.LargePiece.ID())
		}
	}
	return nil
}

// ValidateGoalMask checks that p is a valid goal mask for the large piece:
// exactly 16 empty cells, with the remaining 4 cells all holding 0xf and
// forming a single contiguous 2x2 (LARGE) region.
func ValidateGoalMask(p board.BitPattern) error {
	if empty := CountEmptyCells(p); empty != 16 {
		return fmt.Errorf("goal mask must have exactly 16 empty cells, got %v", empty)
	}

	var pts [][2]int
	for row := 0; row < 5; row++ {
		for col := 0; col < 4; col++ {
			if c := p.CellAt(row, col); c != board.NoPiece {
				if c != board.NewPiece(0xf) {
					return fmt.Errorf("goal mask's non-zero cells must be 0xf, got %v", c)
				}
				pts = append(pts, [2]int{row, col})
			}
		}
	}
	if shapeOf(pts) != shapeLarge {
		return fmt.Errorf("goal mask's non-zero cells must form a contiguous 2x2 square")
	}
	return nil
}

func shapeOf(pts [][2]int) pieceShape {
	switch len(pts) {
	case 1:
		return shapeSmall
	case 2:
		r0, c0 := pts[0][0], pts[0][1]
		r1, c1 := pts[1][0], pts[1][1]
		switch {
		case r0 == r1 && abs(c0-c1) == 1:
			return shapeHorizontal
		case c0 == c1 && abs(r0-r1) == 1:
			return shapeVertical
		default:
			return shapeInvalid
		}
	case 4:
		if isSquare(pts) {
			return shapeLarge
		}
		return shapeInvalid
	default:
		return shapeInvalid
	}
}

func isSquare(pts [][2]int) bool {
	rows := map[int]bool{}
	cols := map[int]bool{}
	seen := map[[2]int]bool{}
	for _, pt := range pts {
		rows[pt[0]] = true
		cols[pt[1]] = true
		seen[pt] = true
	}
	if len(rows) != 2 || len(cols) != 2 {
		return false
	}
	var rowVals, colVals []int
	for r := range rows {
		rowVals = append(rowVals, r)
	}
	for c := range cols {
		colVals = append(colVals, c)
	}
	if abs(rowVals[0]-rowVals[1]) != 1 || abs(colVals[0]-colVals[1]) != 1 {
		return false
	}
	for r := range rows {
		for c := range cols {
			if !seen[[2]int{r, c}] {
				return false
			}
		}
	}
	return true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// CountEmptyCells returns the number of unoccupied cells in p.
func CountEmptyCells(p board.BitPattern) int {
	n := 0
	for row := 0; row < 5; row++ {
		for col := 0; col < 4; col++ {
			if p.CellAt(row, col) == board.NoPiece {
				n++
			}
		}
	}
	return n
}
