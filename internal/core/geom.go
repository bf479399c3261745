// Package core holds the types shared by games and the terminal platform:
// grid geometry, the character screen buffer, input actions and the runtime
// config. It has no Bubble Tea dependency so game logic stays pure.
package core

// Point is a cell coordinate on a grid; Y grows downward.
type Point struct {
	X, Y int
}

// Add returns p offset by o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Rect is a screen region given by its top-left corner and size.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the first column past the rectangle.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom is the first row past the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.H
}
