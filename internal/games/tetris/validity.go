package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// IsValid reports whether the piece may sit at anchor on the board. A block
// is illegal when it leaves the side walls, drops below the floor, or lands
// on a settled cell. Blocks above the top (negative rows) are always legal,
// which lets pieces spawn partially above the well.
//
// IsValid is the only arbiter of whether a move can happen.
func IsValid(b Board, p Piece, anchor core.Point) bool {
	for _, cell := range p.CellsAt(anchor) {
		if cell.X < 0 || cell.X >= Width || cell.Y >= Height {
			return false
		}
		if cell.Y < 0 {
			continue
		}
		occupied, err := b.IsOccupied(cell.Y, cell.X)
		if err != nil || occupied {
			return false
		}
	}
	return true
}

// DropPosition returns the lowest anchor reachable by moving the piece
// straight down one row at a time from its current anchor.
func DropPosition(b Board, p Piece) core.Point {
	anchor := p.Pos
	for {
		below := anchor.Add(core.Point{Y: 1})
		if !IsValid(b, p, below) {
			return anchor
		}
		anchor = below
	}
}
