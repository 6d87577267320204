// Package core provides fundamental types shared by the game and the platform.
// It has no Bubble Tea dependency so game logic stays pure and testable.
package core

// Rect is an axis-aligned box in integer units.
type Rect struct {
	X, Y int // Top-left corner
	W, H int // Width and height
}

// NewRect creates a rectangle with the given position and dimensions.
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

// OverlapsX reports whether the horizontal extents of r and other overlap.
// Touching edges do not count.
func (r Rect) OverlapsX(other Rect) bool {
	return r.Right() > other.X && r.X < other.Right()
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	if !r.OverlapsX(other) {
		return false
	}
	return r.Bottom() > other.Y && r.Y < other.Bottom()
}

// Viewport maps rectangles on a fixed logical canvas onto a grid of cells.
// Cell edges are rounded outward so every non-empty rectangle stays visible.
type Viewport struct {
	CanvasW, CanvasH int
	Cols, Rows       int
}

// Project converts a canvas rectangle into cell coordinates.
// Empty input yields an empty rectangle.
func (v Viewport) Project(r Rect) Rect {
	if r.Empty() || v.CanvasW <= 0 || v.CanvasH <= 0 {
		return Rect{}
	}
	x0 := FloorDiv(r.X*v.Cols, v.CanvasW)
	y0 := FloorDiv(r.Y*v.Rows, v.CanvasH)
	x1 := CeilDiv(r.Right()*v.Cols, v.CanvasW)
	y1 := CeilDiv(r.Bottom()*v.Rows, v.CanvasH)
	return NewRect(x0, y0, Max(x1-x0, 1), Max(y1-y0, 1))
}

// FloorDiv divides rounding toward negative infinity. b must be positive.
func FloorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

// CeilDiv divides rounding toward positive infinity. b must be positive.
func CeilDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a > 0 {
		q++
	}
	return q
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
