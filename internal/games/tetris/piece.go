package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// Piece is a falling tetromino: a shape, the board coordinate of the shape
// frame's top-left corner (Pos.X = column, Pos.Y = row), and a color.
type Piece struct {
	Kind  Kind
	Shape Shape
	Pos   core.Point
	Color core.Color
}

// Spawn returns a new piece of the given kind at its default spawn anchor:
// horizontally centered, frame top on row 0.
func Spawn(k Kind) Piece {
	shape := k.Shape()
	return Piece{
		Kind:  k,
		Shape: shape,
		Pos:   core.Point{X: Width/2 - shape.Size/2, Y: 0},
		Color: k.Color(),
	}
}

// At returns the piece moved to the given anchor.
func (p Piece) At(anchor core.Point) Piece {
	p.Pos = anchor
	return p
}

// Moved returns the piece shifted by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	return p.At(p.Pos.Add(core.Point{X: dx, Y: dy}))
}

// Rotated returns the piece turned clockwise around its frame, keeping the
// anchor. No wall kick or offset correction is applied.
func (p Piece) Rotated() Piece {
	p.Shape = p.Shape.Rotated()
	return p
}

// Cells returns the board coordinates of the piece's blocks at its anchor.
func (p Piece) Cells() []core.Point {
	return p.CellsAt(p.Pos)
}

// CellsAt returns the board coordinates the piece's blocks would occupy at
// the given anchor.
func (p Piece) CellsAt(anchor core.Point) []core.Point {
	blocks := p.Shape.Blocks()
	for i := range blocks {
		blocks[i] = blocks[i].Add(anchor)
	}
	return blocks
}
