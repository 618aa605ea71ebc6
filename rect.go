package radialmenu

import "github.com/jakecoffman/cp"

// Rect is an axis-aligned box in screen pixels.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// RectCenteredAt builds a rect whose geometric center is p.
func RectCenteredAt(p cp.Vector, w, h float64) Rect {
	return Rect{X: p.X - w/2, Y: p.Y - h/2, Width: w, Height: h}
}

// Center returns the rect's geometric center.
func (r Rect) Center() cp.Vector {
	return cp.Vector{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Contains reports whether p falls inside the rect.
func (r Rect) Contains(p cp.Vector) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Intersects reports whether two rects overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}
