// Package core holds the types shared by games and the platform: input
// frames, the cell screen, colours and rectangles. It does not depend on
// Bubble Tea so game logic stays testable.
package core

// Rect is an axis-aligned box in pixels or cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate just past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate just past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle covers no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Touches reports whether two rectangles overlap or share an edge. This is
// the collision rule for sprite boxes.
func (r Rect) Touches(o Rect) bool {
	if r.Right() < o.X || r.Bottom() < o.Y {
		return false
	}
	if r.X > o.Right() || r.Y > o.Bottom() {
		return false
	}
	return true
}

// Intersect returns the area covered by both rectangles. Rectangles that
// only share an edge give an empty result at the shared corner.
func (r Rect) Intersect(o Rect) Rect {
	x := max(r.X, o.X)
	y := max(r.Y, o.Y)
	return Rect{
		X: x,
		Y: y,
		W: max(0, min(r.Right(), o.Right())-x),
		H: max(0, min(r.Bottom(), o.Bottom())-y),
	}
}

// Contains reports whether (x, y) lies inside r, edges included.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x <= r.Right() && y >= r.Y && y <= r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}
