package viz

// Point represents a 2D point or vector in device pixels.
type Point struct {
	X, Y float64
}

// Pt2 is a convenience function to create a Point.
func Pt2(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Rect is an axis-aligned rectangle in device pixels with non-negative
// extents.
type Rect struct {
	X, Y, W, H float64
}

// NewRect creates a rectangle from an origin and extents.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Inset returns the rectangle shrunk by d on every side. Extents are
// clamped at zero.
func (r Rect) Inset(d float64) Rect {
	return MarginBox(r, d, d, d, d)
}

// MarginBox insets a rectangle by four margins (top, right, bottom, left)
// given in device pixels. Extents are clamped at zero.
func MarginBox(outer Rect, top, right, bottom, left float64) Rect {
	w := outer.W - left - right
	h := outer.H - top - bottom
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{
		X: outer.X + left,
		Y: outer.Y + top,
		W: w,
		H: h,
	}
}
