package spline

import (
	"fmt"
	"math"
)

// Point is a position in the canvas plane. Canvas space is y-down, with the
// origin in the top left corner.
type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Translate returns the point moved by v.
func (pt Point) Translate(v Vec2) Point {
	return Point{pt.X + v.X, pt.Y + v.Y}
}

// Sub returns the vector from o to pt.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{pt.X - o.X, pt.Y - o.Y}
}

// Lerp returns the point at t along the line from pt to o.
func (pt Point) Lerp(o Point, t float64) Point {
	return pt.Translate(o.Sub(pt).Mul(t))
}

// Distance returns the Euclidean distance between two points. Hit testing
// compares it against the pick radius.
func (pt Point) Distance(o Point) float64 {
	return math.Hypot(pt.X-o.X, pt.Y-o.Y)
}

// Axis returns the coordinate along axis i, 0 for x and 1 for y. The
// interpolation formulas are applied to each axis independently.
func (pt Point) Axis(i int) float64 {
	switch i {
	case 0:
		return pt.X
	case 1:
		return pt.Y
	default:
		panic(fmt.Sprintf("invalid axis %d", i))
	}
}

// IsInf reports whether either coordinate is infinite. Lagrange curves
// through control points with coincident parameters produce such points.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

// IsNaN reports whether either coordinate is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}
