// Package tetris implements the falling-block puzzle: a 10x20 well, the seven
// tetrominoes, gravity, line clears and the classic scoring curve.
//
// The engine is a pure transition function over State (see Transition); Engine
// wraps it with the command entry points and Game adapts it to the arcade
// platform. Two behaviors are kept on purpose:
//
//   - rotation has no wall kicks: a rotation that would collide is rejected;
//   - pieces are drawn uniformly and independently, without a 7-bag, so short
//     repeats happen.
package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Kind identifies one of the seven tetrominoes.
type Kind int

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
)

// KindCount is the number of distinct tetrominoes.
const KindCount = 7

// MaxShapeSize is the largest local frame used by any piece.
const MaxShapeSize = 4

// Shape is a square occupancy matrix in a piece's local frame.
// Only the top-left Size x Size corner of Cells is meaningful; the rest is
// always false so that two shapes can be compared with ==.
type Shape struct {
	Size  int
	Cells [MaxShapeSize][MaxShapeSize]bool
}

// newShape builds a shape from rows of '#' (filled) and '.' (empty).
func newShape(rows ...string) Shape {
	s := Shape{Size: len(rows)}
	for r, row := range rows {
		if len(row) != len(rows) || len(rows) > MaxShapeSize {
			panic(fmt.Sprintf("tetris: shape row %q is not part of a square frame", row))
		}
		for c, ch := range row {
			s.Cells[r][c] = ch == '#'
		}
	}
	return s
}

// Filled reports whether the local cell (row, col) is part of the piece.
func (s Shape) Filled(row, col int) bool {
	if row < 0 || row >= s.Size || col < 0 || col >= s.Size {
		return false
	}
	return s.Cells[row][col]
}

// Rotated returns the shape turned 90 degrees clockwise about the center of
// its own frame: transpose, then reverse every row.
func (s Shape) Rotated() Shape {
	out := Shape{Size: s.Size}
	for r := range s.Size {
		for c := range s.Size {
			out.Cells[r][c] = s.Cells[s.Size-1-c][r]
		}
	}
	return out
}

// Blocks returns the filled cells in local coordinates (X = column, Y = row),
// row-major.
func (s Shape) Blocks() []core.Point {
	blocks := make([]core.Point, 0, 4)
	for r := range s.Size {
		for c := range s.Size {
			if s.Cells[r][c] {
				blocks = append(blocks, core.Point{X: c, Y: r})
			}
		}
	}
	return blocks
}

// String renders the shape with '#' and '.', one row per line.
func (s Shape) String() string {
	buf := make([]byte, 0, s.Size*(s.Size+1))
	for r := range s.Size {
		if r > 0 {
			buf = append(buf, '\n')
		}
		for c := range s.Size {
			if s.Cells[r][c] {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
	}
	return string(buf)
}

type catalogEntry struct {
	name  string
	shape Shape
	color core.Color
}

// catalog is the immutable source of truth for new pieces.
var catalog = [KindCount]catalogEntry{
	KindI: {"I", newShape(
		"....",
		"####",
		"....",
		"....",
	), core.ColorBrightCyan},
	KindO: {"O", newShape(
		"##",
		"##",
	), core.ColorBrightYellow},
	KindT: {"T", newShape(
		".#.",
		"###",
		"...",
	), core.ColorPurple},
	KindS: {"S", newShape(
		".##",
		"##.",
		"...",
	), core.ColorBrightGreen},
	KindZ: {"Z", newShape(
		"##.",
		".##",
		"...",
	), core.ColorBrightRed},
	KindJ: {"J", newShape(
		"#..",
		"###",
		"...",
	), core.ColorBlue},
	KindL: {"L", newShape(
		"..#",
		"###",
		"...",
	), core.ColorOrange},
}

// Kinds returns all tetromino kinds in catalog order.
func Kinds() []Kind {
	kinds := make([]Kind, KindCount)
	for i := range kinds {
		kinds[i] = Kind(i)
	}
	return kinds
}

// Valid reports whether k names a catalog entry.
func (k Kind) Valid() bool {
	return k >= 0 && k < KindCount
}

// Shape returns the spawn orientation of the kind.
func (k Kind) Shape() Shape {
	return catalog[k].shape
}

// Color returns the display color of the kind.
func (k Kind) Color() core.Color {
	return catalog[k].color
}

// String returns the single-letter name of the kind.
func (k Kind) String() string {
	if !k.Valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return catalog[k].name
}
