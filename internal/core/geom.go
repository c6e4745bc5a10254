// Package core holds the types shared by games and the terminal platform:
// cells and screens, input frames, step events and runtime settings.
// It imports nothing outside the standard library.
package core

// Rect is a box of terminal cells. X and Y address the top-left cell;
// Right and Bottom are exclusive.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains reports whether cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the middle cell, rounding toward the bottom-right.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Extend grows r by above rows on top and below rows at the bottom.
func (r Rect) Extend(above, below int) Rect {
	return Rect{X: r.X, Y: r.Y - above, W: r.W, H: r.H + above + below}
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
