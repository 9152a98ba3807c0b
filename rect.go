package spline

import "fmt"

// Rect is an axis-aligned rectangle from (X0, Y0) to (X1, Y1). Viewports are
// rectangles anchored at the origin of canvas space.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromSize returns the rectangle spanning from the origin to
// (width, height).
func NewRectFromSize(size Size) Rect {
	return Rect{0, 0, size.Width, size.Height}
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect{%s, %s}", Pt(r.X0, r.Y0), Pt(r.X1, r.Y1))
}

func (r Rect) Width() float64  { return r.X1 - r.X0 }
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// Size returns the rectangle's width and height.
func (r Rect) Size() Size {
	return Sz(r.Width(), r.Height())
}

// Contains reports whether pt lies within the rectangle. The left and top
// edges are inside the rectangle, the right and bottom edges are not. NaN
// coordinates are never contained.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X0 && pt.X < r.X1 &&
		pt.Y >= r.Y0 && pt.Y < r.Y1
}

// UnionPoint returns the smallest rectangle enclosing r and pt.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Size is the extent of a rectangle or canvas.
type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size w×h.
func Sz(w, h float64) Size { return Size{Width: w, Height: h} }

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}
