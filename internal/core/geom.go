// Package core provides the terminal-facing types shared by the game
// adapter and the platform: a colored cell buffer, semantic input
// actions and the runtime configuration. It has no Bubble Tea
// dependency, so games can be rendered and stepped in tests.
package core

// Rect is an axis-aligned area of screen cells.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// CenteredRect returns a w×h rectangle centered in a screen of the given size.
func CenteredRect(screenW, screenH, w, h int) Rect {
	return Rect{X: (screenW - w) / 2, Y: (screenH - h) / 2, W: w, H: h}
}

func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains reports whether the cell (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset shrinks the rectangle by n cells on every side.
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, W: max(0, r.W-2*n), H: max(0, r.H-2*n)}
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
