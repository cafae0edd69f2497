// Package graphics holds the geometry and color primitives shared by widgets,
// views and renderers. All coordinates are window pixels with the origin at
// the top-left corner and y growing downwards.
package graphics

import "fmt"

// Point is a position in window pixels.
type Point struct {
	X, Y int32
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int32) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// BoundingRect defines the layout bounds of a view element. X and Y are the
// top-left corner; the extents are unsigned so a rect can never be inverted.
type BoundingRect struct {
	X      int32
	Y      int32
	Width  uint32
	Height uint32
}

// NewBoundingRect returns a zero-sized rect at the origin.
func NewBoundingRect() BoundingRect {
	return BoundingRect{}
}

// SetBounds replaces position and extent at once.
func (r *BoundingRect) SetBounds(x, y int32, width, height uint32) {
	r.X, r.Y, r.Width, r.Height = x, y, width, height
}

// Translate moves the rect by a relative offset.
func (r *BoundingRect) Translate(dx, dy int32) {
	r.X += dx
	r.Y += dy
}

// TopLeft returns the top-left corner.
func (r BoundingRect) TopLeft() (int32, int32) {
	return r.X, r.Y
}

// Center returns the integer midpoint. Halving the unsigned extents floors,
// and hit testing relies on that rounding.
func (r BoundingRect) Center() Point {
	return Point{X: r.X + int32(r.Width/2), Y: r.Y + int32(r.Height/2)}
}

// Contains reports whether a point lies within the rect. All four edges are
// inclusive, so a rect of width w covers w+1 columns.
func (r BoundingRect) Contains(x, y int32) bool {
	return x >= r.X &&
		x <= r.X+int32(r.Width) &&
		y >= r.Y &&
		y <= r.Y+int32(r.Height)
}

// Dimensions returns width and height.
func (r BoundingRect) Dimensions() (uint32, uint32) {
	return r.Width, r.Height
}

func (r BoundingRect) String() string {
	return fmt.Sprintf("[%d,%d %dx%d]", r.X, r.Y, r.Width, r.Height)
}
