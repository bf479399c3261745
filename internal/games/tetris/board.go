package tetris

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Board dimensions. They never change after creation.
const (
	Width  = 10
	Height = 20
)

// ErrOutOfBounds is returned when a board cell is addressed outside the grid.
// Every mutating path validates positions with IsValid first, so this only
// signals a programming error inside the engine.
var ErrOutOfBounds = errors.New("tetris: cell out of bounds")

// Cell is one square of the well. The zero value is empty.
type Cell struct {
	Filled bool
	Color  core.Color
}

// Board holds the settled cells, indexed [row][col] with row 0 at the top.
// It is a value type: assigning or passing a Board copies it, so every
// operation below returns a new board and never mutates its input.
type Board [Height][Width]Cell

// inBounds reports whether (row, col) addresses a cell of the grid.
func inBounds(row, col int) bool {
	return row >= 0 && row < Height && col >= 0 && col < Width
}

// IsOccupied reports whether the cell at (row, col) holds a settled block.
func (b Board) IsOccupied(row, col int) (bool, error) {
	if !inBounds(row, col) {
		return false, fmt.Errorf("%w: row %d, col %d", ErrOutOfBounds, row, col)
	}
	return b[row][col].Filled, nil
}

// At returns the cell at (row, col), or an empty cell outside the grid.
func (b Board) At(row, col int) Cell {
	if !inBounds(row, col) {
		return Cell{}
	}
	return b[row][col]
}

// WithCell returns a copy of the board with (row, col) occupied by color.
func (b Board) WithCell(row, col int, color core.Color) (Board, error) {
	if !inBounds(row, col) {
		return b, fmt.Errorf("%w: row %d, col %d", ErrOutOfBounds, row, col)
	}
	b[row][col] = Cell{Filled: true, Color: color}
	return b, nil
}

// RowFull reports whether every cell of the row is occupied.
func (b Board) RowFull(row int) bool {
	if row < 0 || row >= Height {
		return false
	}
	for _, c := range b[row] {
		if !c.Filled {
			return false
		}
	}
	return true
}

// FilledCount returns the number of occupied cells.
func (b Board) FilledCount() int {
	n := 0
	for r := range Height {
		for c := range Width {
			if b[r][c].Filled {
				n++
			}
		}
	}
	return n
}

// Place merges the piece into the board at its current anchor.
// Blocks above the visible top (negative rows) are skipped.
func Place(b Board, p Piece) Board {
	for _, cell := range p.Cells() {
		if !inBounds(cell.Y, cell.X) {
			continue
		}
		b[cell.Y][cell.X] = Cell{Filled: true, Color: p.Color}
	}
	return b
}

// ClearLines removes every full row at once and pads the top with the same
// number of empty rows. Surviving rows keep their relative order.
func ClearLines(b Board) (Board, int) {
	var out Board
	write := Height - 1
	for r := Height - 1; r >= 0; r-- {
		if b.RowFull(r) {
			continue
		}
		out[write] = b[r]
		write--
	}
	// Rows 0..write stay zero-valued: the fresh empty rows.
	return out, write + 1
}
