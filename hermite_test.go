package spline

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestHermiteBasis(t *testing.T) {
	tests := []struct {
		u                  float64
		h00, h10, h01, h11 float64
	}{
		{0, 1, 0, 0, 0},
		{1, 0, 0, 1, 0},
		{0.5, 0.5, 0.125, 0.5, -0.125},
	}
	for _, tt := range tests {
		h00, h10, h01, h11 := HermiteBasis(tt.u)
		diff(t, []float64{tt.h00, tt.h10, tt.h01, tt.h11}, []float64{h00, h10, h01, h11})
	}

	// The position weights form a partition of unity.
	for i := range 11 {
		u := float64(i) / 10
		h00, _, h01, _ := HermiteBasis(u)
		diff(t, 1.0, h00+h01, cmpopts.EquateApprox(0, 1e-12))
	}
}

func TestTangent(t *testing.T) {
	pts := NewPointsAt(Pt(0, 0), Pt(10, 0), Pt(20, 10))
	diff(t, Vec(5, 0), Tangent(pts, 0))
	diff(t, Vec(10, 5), Tangent(pts, 1))
	diff(t, Vec(5, 5), Tangent(pts, 2))

	two := NewPointsAt(Pt(0, 0), Pt(4, 2))
	diff(t, Vec(2, 1), Tangent(two, 0))
	diff(t, Vec(2, 1), Tangent(two, 1))

	mustPanic(t, func() { Tangent(NewPointsAt(Pt(0, 0)), 0) })
	mustPanic(t, func() { Tangent(pts, 3) })
}

func TestHermiteInterpolatesControlPoints(t *testing.T) {
	for _, pts := range []*Points{FourPointLayout(), SixPointLayout()} {
		h := NewHermite()
		for i, seg := range h.Segments(pts) {
			diff(t, pts.At(i).Pos, seg.Eval(0))
			diff(t, pts.At(i+1).Pos, seg.Eval(1))
		}
		for i, cp := range pts.All() {
			diff(t, cp.Pos, h.Eval(pts, float64(i)))
		}
	}
}

func TestHermiteFirstDerivativeContinuity(t *testing.T) {
	pts := SixPointLayout()
	h := NewHermite()
	for i := range pts.Len() - 2 {
		left := h.Segment(pts, i)
		right := h.Segment(pts, i+1)
		diff(t, left.Deriv(1), right.Deriv(0))
		diff(t, Tangent(pts, i+1), right.Deriv(0))
	}
}

func TestHermiteDerivMatchesFiniteDifference(t *testing.T) {
	seg := NewHermite().Segment(FourPointLayout(), 1)
	const delta = 1e-6
	for i := range 10 {
		u := float64(i) / 10
		approx := seg.Eval(u + delta).Sub(seg.Eval(u)).Mul(1 / delta)
		if d := seg.Deriv(u).Sub(approx).Hypot(); d > 1e-3 {
			t.Errorf("u=%g: derivative off by %g", u, d)
		}
	}
}

func TestHermiteLocality(t *testing.T) {
	h := NewHermite()
	sampleSegments := func(pts *Points) [][]Point {
		var out [][]Point
		for _, seg := range h.Segments(pts) {
			var run []Point
			for u := range sampleParams(0, 1, h.Step) {
				run = append(run, seg.Eval(u))
			}
			out = append(out, run)
		}
		return out
	}

	// Moving point k changes the segments ending in k-1, k and k+1 (through
	// the tangents at k-1 and k+1) and the segment starting at k. Every
	// other segment must stay exactly the same.
	for k := range 6 {
		pts := SixPointLayout()
		before := sampleSegments(pts)
		pts.SetPosition(pts.At(k), 50, 550)
		after := sampleSegments(pts)
		for j := range before {
			if j >= k-2 && j <= k+1 {
				if slices.Equal(before[j], after[j]) {
					t.Errorf("moving point %d didn't change segment %d", k, j)
				}
				continue
			}
			if !slices.Equal(before[j], after[j]) {
				t.Errorf("moving point %d changed segment %d", k, j)
			}
		}
	}
}

func TestHermiteSample(t *testing.T) {
	pts := FourPointLayout()
	pl := NewHermite().Sample(pts, Rect{})
	if len(pl.Runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(pl.Runs))
	}
	run := pl.Runs[0]
	diff(t, 3*51, len(run))
	diff(t, pts.At(0).Pos, run[0])
	diff(t, pts.At(1).Pos, run[50])
	diff(t, pts.At(1).Pos, run[51])
	diff(t, pts.At(2).Pos, run[101])
	diff(t, pts.At(3).Pos, run[len(run)-1])
}

func TestHermiteSampleIgnoresViewport(t *testing.T) {
	pts := FourPointLayout()
	h := NewHermite()
	diff(t, h.Sample(pts, NewRectFromSize(Sz(1000, 1000))), h.Sample(pts, NewRectFromSize(Sz(10, 10))))
}

func TestHermiteSampleDeterministic(t *testing.T) {
	pts := SixPointLayout()
	h := NewHermite()
	view := NewRectFromSize(Sz(600, 600))
	diff(t, h.Sample(pts, view), h.Sample(pts, view))
}

func TestHermiteDegenerate(t *testing.T) {
	h := NewHermite()
	for _, pts := range []*Points{NewPoints(), NewPointsAt(Pt(1, 1))} {
		if pl := h.Sample(pts, NewRectFromSize(Sz(10, 10))); !pl.Empty() {
			t.Errorf("got %d vertices for %d points, want none", pl.Len(), pts.Len())
		}
		mustPanic(t, func() { h.Eval(pts, 0) })
	}
}

func TestHermiteEvalGlobalParameter(t *testing.T) {
	pts := FourPointLayout()
	h := NewHermite()
	diff(t, h.Segment(pts, 0).Eval(0.5), h.Eval(pts, 0.5))
	diff(t, h.Segment(pts, 2).Eval(0.25), h.Eval(pts, 2.25))
	// Beyond the domain, the end segments extrapolate.
	diff(t, h.Segment(pts, 2).Eval(1.5), h.Eval(pts, 3.5))
	diff(t, h.Segment(pts, 0).Eval(-0.5), h.Eval(pts, -0.5))

	start, end := h.Domain(pts)
	diff(t, []float64{0, 3}, []float64{start, end})
}

func TestHermiteSegmentCubicBez(t *testing.T) {
	pts := SixPointLayout()
	for _, seg := range NewHermite().Segments(pts) {
		cb := seg.CubicBez()
		diff(t, seg.Start(), cb.Start())
		diff(t, seg.End(), cb.End())
		for i := range 21 {
			u := float64(i) / 20
			diff(t, seg.Eval(u), cb.Eval(u), cmpopts.EquateApprox(0, 1e-9))
			diff(t, seg.Deriv(u), cb.Deriv(u), cmpopts.EquateApprox(0, 1e-9))
		}
	}
}

func TestHermitePath(t *testing.T) {
	pts := FourPointLayout()
	els := slices.Collect(NewHermite().Path(pts))
	if len(els) != 4 {
		t.Fatalf("got %d elements, want 4", len(els))
	}
	diff(t, MoveTo(pts.At(0).Pos), els[0])
	for i, el := range els[1:] {
		if el.Kind != CubicToKind {
			t.Errorf("element %d is %s, want CubicTo", i+1, el)
		}
		diff(t, pts.At(i+1).Pos, el.P2)
	}
}

func BenchmarkHermiteSample(b *testing.B) {
	pts := SixPointLayout()
	h := NewHermite()
	view := NewRectFromSize(Sz(600, 600))
	for range b.N {
		h.Sample(pts, view)
	}
}
