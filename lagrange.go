package spline

import (
	"errors"
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/mat"
)

// DefaultLagrangeStep is the parameter increment used when sampling a
// Lagrange curve.
const DefaultLagrangeStep = 0.01

// ErrSingular is returned by [Lagrange.Coefficients] when the interpolation
// problem has no unique solution, which happens when two control points share
// a parameter.
var ErrSingular = errors.New("singular interpolation system")

// LagrangeWeights returns the Lagrange basis polynomials for the nodes us,
// evaluated at u:
//
//	Lᵢ(u) = ∏_{j≠i} (u − uⱼ) / (uᵢ − uⱼ)
//
// The weights sum to one. If two nodes are equal, the weights contain
// infinities or NaNs.
func LagrangeWeights(us []float64, u float64) []float64 {
	ws := make([]float64, len(us))
	for i, ui := range us {
		w := 1.0
		for j, uj := range us {
			if j == i {
				continue
			}
			w *= (u - uj) / (ui - uj)
		}
		ws[i] = w
	}
	return ws
}

// LagrangeEval evaluates, at u, the polynomial of least degree that takes
// the value values[i] at us[i]. It works on a single axis; points of any
// dimension are interpolated by calling it once per axis.
//
// It panics if us and values have different lengths.
func LagrangeEval(us, values []float64, u float64) float64 {
	if len(us) != len(values) {
		panic(fmt.Sprintf("got %d nodes but %d values", len(us), len(values)))
	}
	var sum float64
	for i, w := range LagrangeWeights(us, u) {
		sum += w * values[i]
	}
	return sum
}

// Lagrange interpolates control points with a single polynomial of degree
// n−1 that passes through every point pᵢ at that point's parameter uᵢ.
//
// The curve is infinitely differentiable but has no local support: moving
// any control point may change the curve everywhere. With many evenly spaced
// parameters the curve tends to oscillate wildly between points (Runge's
// phenomenon), often far outside of the points' convex hull.
//
// Control point parameters must be distinct. Coincident parameters divide by
// zero and produce infinite or NaN coordinates; this is not checked.
//
// The sampled domain is [0, n−1], matching the default parameters assigned
// by [NewPointsAt], regardless of the parameters actually stored.
type Lagrange struct {
	// Step is the parameter increment used by Sample.
	Step float64
}

// NewLagrange returns a Lagrange interpolator sampling at
// [DefaultLagrangeStep].
func NewLagrange() Lagrange {
	return Lagrange{Step: DefaultLagrangeStep}
}

func (Lagrange) Name() string { return "lagrange" }

// Domain implements [Interpolator].
func (Lagrange) Domain(pts *Points) (float64, float64) {
	return 0, float64(max(pts.Len()-1, 0))
}

// Eval implements [Interpolator]. A single control point yields a constant
// curve.
func (Lagrange) Eval(pts *Points, u float64) Point {
	var out Point
	for i, w := range LagrangeWeights(pts.Params(), u) {
		pos := pts.At(i).Pos
		out.X += w * pos.X
		out.Y += w * pos.Y
	}
	return out
}

// Sample implements [Interpolator]. The domain is sampled in increments of
// l.Step. Samples that fall outside of view are dropped, and every dropped
// stretch splits the polyline into separate runs, so that the renderer
// doesn't draw lines across the part of the curve that left the view.
func (l Lagrange) Sample(pts *Points, view Rect) Polyline {
	var b polylineBuilder
	if pts.Len() > 0 {
		start, end := l.Domain(pts)
		for u := range sampleParams(start, end, l.Step) {
			p := l.Eval(pts, u)
			if !view.Contains(p) {
				b.brk()
				continue
			}
			b.push(p)
		}
	}
	pl := b.finish()
	Logger().Debug("sampled curve",
		slog.String("strategy", l.Name()),
		slog.Int("points", pts.Len()),
		slog.Int("vertices", pl.Len()),
		slog.Int("runs", len(pl.Runs)))
	return pl
}

// Polynomial is a polynomial in monomial form; the i-th coefficient belongs
// to uⁱ.
type Polynomial []float64

// Eval evaluates the polynomial at u using Horner's method.
func (p Polynomial) Eval(u float64) float64 {
	var out float64
	for i := len(p) - 1; i >= 0; i-- {
		out = out*u + p[i]
	}
	return out
}

// Degree returns the degree of the polynomial, ignoring leading zero
// coefficients. The zero polynomial has degree -1.
func (p Polynomial) Degree() int {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] != 0 {
			return i
		}
	}
	return -1
}

// Coefficients returns the curve's x and y coordinates as polynomials in
// monomial form, by solving the Vandermonde system of the control points'
// parameters.
//
// The Vandermonde matrix becomes badly conditioned quickly as the number of
// points grows, so the coefficients are only useful for inspecting small
// curves. Eval is the numerically preferable way of evaluating the curve. An
// error wrapping [ErrSingular] is returned when parameters coincide.
func (Lagrange) Coefficients(pts *Points) (xs, ys Polynomial, err error) {
	n := pts.Len()
	if n == 0 {
		return nil, nil, nil
	}
	us := pts.Params()
	v := mat.NewDense(n, n, nil)
	for i, u := range us {
		pow := 1.0
		for j := range n {
			v.Set(i, j, pow)
			pow *= u
		}
	}

	var lu mat.LU
	lu.Factorize(v)
	if cond := lu.Cond(); cond > 1/1e-15 {
		return nil, nil, fmt.Errorf("vandermonde condition number %g: %w", cond, ErrSingular)
	}
	var coeffs [2]Polynomial
	for axis := range coeffs {
		b := mat.NewVecDense(n, nil)
		for i, cp := range pts.All() {
			b.SetVec(i, cp.Pos.Axis(axis))
		}
		var c mat.VecDense
		if err := lu.SolveVecTo(&c, false, b); err != nil {
			return nil, nil, fmt.Errorf("solving for axis %d: %w", axis, errors.Join(ErrSingular, err))
		}
		coeffs[axis] = mat.Col(nil, 0, &c)
	}
	return coeffs[0], coeffs[1], nil
}
