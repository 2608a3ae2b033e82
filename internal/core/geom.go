// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea or tcell) to keep
// simulation logic pure and testable.
package core

// Rect represents an axis-aligned bounding box in window pixels.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Overlaps reports whether a and b are not fully separated on either axis.
// Rectangles that only share an edge (a.Right() == b.X) count as overlapping:
// the separation tests are strict, and gameplay depends on that.
func Overlaps(a, b Rect) bool {
	if a.X > b.Right() {
		return false
	}
	if a.Right() < b.X {
		return false
	}
	if a.Y > b.Bottom() {
		return false
	}
	if a.Bottom() < b.Y {
		return false
	}
	return true
}

// Intersects returns true if this rectangle shares at least one pixel with another.
// Unlike Overlaps, touching edges do not count.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// FloorDiv divides a by b rounding toward negative infinity. b must be positive.
func FloorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
