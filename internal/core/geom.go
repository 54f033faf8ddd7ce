// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned box in screen cells.
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

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Span is a closed horizontal interval [Min, Max] in world units.
type Span struct {
	Min, Max float64
}

// SpanAt builds the span starting at x with width w.
func SpanAt(x, w float64) Span {
	return Span{Min: x, Max: x + w}
}

// Width returns the length of the span.
func (s Span) Width() float64 {
	return s.Max - s.Min
}

// Contains reports whether x lies inside the span, edges included.
func (s Span) Contains(x float64) bool {
	return x >= s.Min && x <= s.Max
}

// Overlaps reports whether two spans share any point.
func (s Span) Overlaps(other Span) bool {
	return s.Min <= other.Max && other.Min <= s.Max
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Lerp interpolates linearly between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
