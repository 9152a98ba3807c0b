package spline

import (
	"iter"
	"log/slog"
	"math"
)

// DefaultHermiteStep is the parameter increment used when sampling each
// Hermite segment. At 0.02, every segment yields 51 vertices.
const DefaultHermiteStep = 0.02

// HermiteBasis returns the four cubic Hermite basis functions at u:
//
//	h00(u) = 2u³ − 3u² + 1
//	h10(u) = u³ − 2u² + u
//	h01(u) = −2u³ + 3u²
//	h11(u) = u³ − u²
//
// h00 and h01 weigh the start and end points, h10 and h11 the start and end
// tangents.
func HermiteBasis(u float64) (h00, h10, h01, h11 float64) {
	u2 := u * u
	u3 := u2 * u
	h00 = 2*u3 - 3*u2 + 1
	h10 = u3 - 2*u2 + u
	h01 = -2*u3 + 3*u2
	h11 = u3 - u2
	return h00, h10, h01, h11
}

// Tangent returns the tangent at the i-th control point, estimated by finite
// differences of the neighbouring points and halved:
//
//	t₀ = (p₁ − p₀) / 2
//	tᵢ = (pᵢ₊₁ − pᵢ₋₁) / 2
//	tₙ₋₁ = (pₙ₋₁ − pₙ₋₂) / 2
//
// Segments are treated as spanning one unit of parameter each, no matter how
// far apart their points are. Tangent panics if pts has fewer than two points
// or if i is out of range.
func Tangent(pts *Points, i int) Vec2 {
	n := pts.Len()
	if n < 2 {
		panic("Hermite tangent needs at least two control points")
	}
	prev, next := i-1, i+1
	switch i {
	case 0:
		prev = 0
	case n - 1:
		next = n - 1
	}
	return pts.At(next).Pos.Sub(pts.At(prev).Pos).Mul(0.5)
}

// HermiteSegment is a cubic Hermite curve from P0 to P1 with tangents T0 and
// T1, parametrized over [0, 1].
type HermiteSegment struct {
	P0, P1 Point
	T0, T1 Vec2
}

// Eval evaluates the segment at u by blending its end points and tangents
// with [HermiteBasis]. Eval(0) is exactly P0 and Eval(1) is exactly P1.
func (hs HermiteSegment) Eval(u float64) Point {
	h00, h10, h01, h11 := HermiteBasis(u)
	return Point{
		X: h00*hs.P0.X + h10*hs.T0.X + h01*hs.P1.X + h11*hs.T1.X,
		Y: h00*hs.P0.Y + h10*hs.T0.Y + h01*hs.P1.Y + h11*hs.T1.Y,
	}
}

// Deriv returns the first derivative of the segment at u. Deriv(0) is T0 and
// Deriv(1) is T1.
func (hs HermiteSegment) Deriv(u float64) Vec2 {
	u2 := u * u
	d00 := 6*u2 - 6*u
	d10 := 3*u2 - 4*u + 1
	d01 := -6*u2 + 6*u
	d11 := 3*u2 - 2*u
	return Vec2{
		X: d00*hs.P0.X + d10*hs.T0.X + d01*hs.P1.X + d11*hs.T1.X,
		Y: d00*hs.P0.Y + d10*hs.T0.Y + d01*hs.P1.Y + d11*hs.T1.Y,
	}
}

func (hs HermiteSegment) Start() Point { return hs.P0 }
func (hs HermiteSegment) End() Point   { return hs.P1 }

// CubicBez returns the cubic Bézier that traces the same curve as the
// segment, with inner control points a third of a tangent away from the ends.
func (hs HermiteSegment) CubicBez() CubicBez {
	return CubicBez{
		P0: hs.P0,
		P1: hs.P0.Translate(hs.T0.Mul(1.0 / 3.0)),
		P2: hs.P1.Translate(hs.T1.Mul(-1.0 / 3.0)),
		P3: hs.P1,
	}
}

// Hermite interpolates control points with a piecewise cubic Hermite spline,
// one segment per pair of consecutive points, using the tangents computed by
// [Tangent]. This makes it a Catmull-Rom spline.
//
// The curve passes through every control point and its first derivative is
// continuous at interior points. Each segment depends only on its two end
// points and their neighbours, so moving a point changes at most the
// segments it touches and the ones next to them.
//
// The curve parameter of the whole spline runs from 0 to n−1, segment i
// covering [i, i+1]. Control point parameters are ignored.
type Hermite struct {
	// Step is the parameter increment used by Sample within each segment.
	Step float64
}

// NewHermite returns a Hermite interpolator sampling at [DefaultHermiteStep].
func NewHermite() Hermite {
	return Hermite{Step: DefaultHermiteStep}
}

func (Hermite) Name() string { return "hermite" }

// Segment returns the i-th segment, from point i to point i+1.
func (Hermite) Segment(pts *Points, i int) HermiteSegment {
	return HermiteSegment{
		P0: pts.At(i).Pos,
		P1: pts.At(i + 1).Pos,
		T0: Tangent(pts, i),
		T1: Tangent(pts, i+1),
	}
}

// Segments returns an iterator over all segments in order. A sequence of
// fewer than two points has no segments.
func (h Hermite) Segments(pts *Points) iter.Seq2[int, HermiteSegment] {
	return func(yield func(int, HermiteSegment) bool) {
		for i := range pts.Len() - 1 {
			if !yield(i, h.Segment(pts, i)) {
				return
			}
		}
	}
}

// Domain implements [Interpolator].
func (Hermite) Domain(pts *Points) (float64, float64) {
	return 0, float64(max(pts.Len()-1, 0))
}

// Eval implements [Interpolator]. The integer part of u selects the segment
// and the fractional part is the parameter within it. Values beyond the
// domain extrapolate the first or last segment.
func (h Hermite) Eval(pts *Points, u float64) Point {
	n := pts.Len()
	if n < 2 {
		panic("Hermite spline needs at least two control points")
	}
	i := int(math.Floor(u))
	i = min(max(i, 0), n-2)
	return h.Segment(pts, i).Eval(u - float64(i))
}

// Sample implements [Interpolator]. Each segment is sampled from 0 to 1 in
// increments of h.Step, including both end points, and the segments are
// concatenated into a single run. The end point of one segment and the start
// point of the next coincide and both appear in the output. view is not used;
// the renderer is expected to clip.
func (h Hermite) Sample(pts *Points, view Rect) Polyline {
	var b polylineBuilder
	for _, seg := range h.Segments(pts) {
		for u := range sampleParams(0, 1, h.Step) {
			b.push(seg.Eval(u))
		}
	}
	pl := b.finish()
	Logger().Debug("sampled curve",
		slog.String("strategy", h.Name()),
		slog.Int("points", pts.Len()),
		slog.Int("vertices", pl.Len()))
	return pl
}

// Path returns the exact spline as a sequence of path elements: a MoveTo to
// the first point followed by one CubicTo per segment.
func (h Hermite) Path(pts *Points) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		for i, seg := range h.Segments(pts) {
			cb := seg.CubicBez()
			if i == 0 && !yield(MoveTo(cb.Start())) {
				return
			}
			if !yield(cb.PathElement()) {
				return
			}
		}
	}
}
