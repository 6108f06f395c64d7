package game

import (
	"fmt"

	"gobblet/meta"
	"gobblet/utils"
)

// Coord is a public board coordinate: column from the left, row from the bottom.
type Coord struct {
	Col int
	Row int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Valid reports whether both components are in [0,3].
func (c Coord) Valid() bool {
	return utils.InRange(c.Col, 0, meta.BOARD_SIZE) && utils.InRange(c.Row, 0, meta.BOARD_SIZE)
}

// Board is the 4x4 grid. Each cell keeps only its visible (topmost) piece.
// Storage is row-major with the top row first; use cell() to go from a public Coord to storage.
type Board struct {
	cells [meta.BOARD_SIZE][meta.BOARD_SIZE]Piece
}

// storageRow is the only place where public rows (bottom-up) become storage rows (top-down).
func storageRow(row int) int {
	return meta.BOARD_SIZE - 1 - row
}

func (b *Board) cell(c Coord) *Piece {
	return &b.cells[storageRow(c.Row)][c.Col]
}

// At returns the visible piece at c, for display. ok is false for an empty or invalid cell.
func (b Board) At(c Coord) (piece Piece, ok bool) {
	if !c.Valid() {
		return Piece{}, false
	}
	p := *b.cell(c)
	return p, !p.IsZero()
}

// Remove returns the visible piece at c. The cell is only cleared once the rules engine
// commits the move.
func (b Board) Remove(c Coord) (Piece, error) {
	if !c.Valid() {
		return Piece{}, newError(InvalidCoordinate, "cell", "%s is outside the board", c)
	}
	p := *b.cell(c)
	if p.IsZero() {
		return Piece{}, newError(EmptyCell, "cell", "no piece at %s", c)
	}
	return p, nil
}

// Place puts p on top of c, which requires p to be strictly larger than the current occupant.
// The covered piece is overwritten.
func (b *Board) Place(c Coord, p Piece) error {
	if !c.Valid() {
		return newError(InvalidCoordinate, "cell", "%s is outside the board", c)
	}
	if occupant := *b.cell(c); !CanCover(p, occupant) {
		return newError(IllegalCover, "cell", "size %d cannot cover size %d at %s", p.Size(), occupant.Size(), c)
	}
	*b.cell(c) = p
	return nil
}

func (b *Board) clear(c Coord) {
	*b.cell(c) = Piece{}
}
