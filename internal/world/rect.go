package world

// Rect is an axis-aligned rectangle in pixel space.
type Rect struct {
	X, Y          int // Top-left corner position
	Width, Height int
}

// Center returns the center coordinates of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Contains returns true if the given point is inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Scale returns the rectangle with both axes divided by the given factors,
// rounding outward so the result still covers the same area.
func (r Rect) Scale(sx, sy int) Rect {
	if sx <= 0 || sy <= 0 {
		return r
	}
	x0, y0 := r.X/sx, r.Y/sy
	x1 := (r.X + r.Width + sx - 1) / sx
	y1 := (r.Y + r.Height + sy - 1) / sy
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}
