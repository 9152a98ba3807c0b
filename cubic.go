package spline

// CubicBez is a cubic Bézier curve. Every Hermite segment has an exact
// representation as a cubic Bézier, which is what renderers with native
// curve support want to draw.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// Eval evaluates the curve at t ∈ [0, 1].
func (cb CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(cb.P0).Mul(mt * mt * mt)
	b := Vec2(cb.P1).Mul(mt * mt * 3.0)
	c := Vec2(cb.P2).Mul(mt * 3.0)
	d := Vec2(cb.P3)
	v := a.Add(b.Add(c.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Deriv returns the first derivative of the curve at t.
func (cb CubicBez) Deriv(t float64) Vec2 {
	mt := 1.0 - t
	d0 := cb.P1.Sub(cb.P0).Mul(3 * mt * mt)
	d1 := cb.P2.Sub(cb.P1).Mul(6 * mt * t)
	d2 := cb.P3.Sub(cb.P2).Mul(3 * t * t)
	return d0.Add(d1).Add(d2)
}

func (cb CubicBez) Start() Point {
	return cb.P0
}

func (cb CubicBez) End() Point {
	return cb.P3
}

// PathElement returns the CubicTo element drawing the curve from its start
// point.
func (cb CubicBez) PathElement() PathElement {
	return CubicTo(cb.P1, cb.P2, cb.P3)
}
