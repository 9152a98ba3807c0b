package spline

import (
	"fmt"
	"math"
)

// Vec2 is a displacement in the canvas plane. Tangents and curve derivatives
// are vectors, not points.
type Vec2 struct {
	X float64
	Y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Mul scales the vector by f.
func (v Vec2) Mul(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Hypot returns the length of the vector.
func (v Vec2) Hypot() float64 {
	return math.Hypot(v.X, v.Y)
}

// Hypot2 returns the squared length of the vector, avoiding the square root.
func (v Vec2) Hypot2() float64 {
	return v.Dot(v)
}
