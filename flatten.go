package spline

import (
	"iter"
	"math"
)

// DefaultFlattenTolerance is a flattening tolerance suitable for antialiased
// rendering at one canvas unit per pixel.
const DefaultFlattenTolerance = 0.25

// maxFlattenDepth bounds the recursion in [CubicBez.Flatten]. 2¹⁰ lines per
// cubic is plenty for any curve that fits on a screen.
const maxFlattenDepth = 10

// Subdivide splits the cubic into halves, using de Casteljau.
func (cb CubicBez) Subdivide() (CubicBez, CubicBez) {
	p01 := cb.P0.Lerp(cb.P1, 0.5)
	p12 := cb.P1.Lerp(cb.P2, 0.5)
	p23 := cb.P2.Lerp(cb.P3, 0.5)
	p012 := p01.Lerp(p12, 0.5)
	p123 := p12.Lerp(p23, 0.5)
	mid := p012.Lerp(p123, 0.5)
	return CubicBez{cb.P0, p01, p012, mid}, CubicBez{mid, p123, p23, cb.P3}
}

// flatness returns an upper bound on the distance between the cubic and the
// line from P0 to P3.
func (cb CubicBez) flatness() float64 {
	// The curve lies in the convex hull of its control points, so the
	// farther of the two inner control points bounds its deviation.
	return max(distToSegment(cb.P1, cb.P0, cb.P3), distToSegment(cb.P2, cb.P0, cb.P3))
}

func distToSegment(pt, a, b Point) float64 {
	ab := b.Sub(a)
	l2 := ab.Hypot2()
	if l2 == 0 {
		return pt.Distance(a)
	}
	t := min(max(pt.Sub(a).Dot(ab)/l2, 0), 1)
	return pt.Distance(a.Translate(ab.Mul(t)))
}

// Flatten returns the end points of a sequence of lines, starting at P0's
// successor and ending at P3, that approximate the cubic to within
// tolerance.
func (cb CubicBez) Flatten(tolerance float64) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		cb.flatten(tolerance, 0, yield)
	}
}

func (cb CubicBez) flatten(tolerance float64, depth int, yield func(Point) bool) bool {
	if depth >= maxFlattenDepth || !(cb.flatness() > tolerance) {
		return yield(cb.P3)
	}
	left, right := cb.Subdivide()
	return left.flatten(tolerance, depth+1, yield) && right.flatten(tolerance, depth+1, yield)
}

// Flatten converts a sequence of path elements to one that contains only
// MoveTo and LineTo elements. Cubic Béziers are replaced by lines that
// approximate them to within tolerance, measured in canvas units. A CubicTo
// without a preceding MoveTo is dropped.
//
// It is meant for canvases that can only stroke straight lines.
func Flatten(seq iter.Seq[PathElement], tolerance float64) iter.Seq[PathElement] {
	if !(tolerance > 0) || math.IsInf(tolerance, 1) {
		panic("flattening tolerance must be positive and finite")
	}
	return func(yield func(PathElement) bool) {
		var (
			cur    Point
			hasCur bool
		)
		for el := range seq {
			switch el.Kind {
			case MoveToKind, LineToKind:
				cur, hasCur = el.P0, true
				if !yield(el) {
					return
				}
			case CubicToKind:
				if hasCur {
					cb := CubicBez{cur, el.P0, el.P1, el.P2}
					for pt := range cb.Flatten(tolerance) {
						if !yield(LineTo(pt)) {
							return
						}
					}
				}
				cur, hasCur = el.P2, true
			}
		}
	}
}
