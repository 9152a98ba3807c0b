package spline

import (
	"errors"
	"testing"
)

func TestParseStrategy(t *testing.T) {
	for _, name := range Strategies {
		interp, err := ParseStrategy(name)
		if err != nil {
			t.Fatal(err)
		}
		diff(t, name, interp.Name())
	}

	interp, err := ParseStrategy("Hermite")
	if err != nil {
		t.Fatal(err)
	}
	diff(t, NewHermite(), interp)

	if _, err := ParseStrategy("bspline"); !errors.Is(err, ErrUnknownStrategy) {
		t.Errorf("got error %v, want %v", err, ErrUnknownStrategy)
	}
}

func TestDomain(t *testing.T) {
	pts := SixPointLayout()
	for _, interp := range []Interpolator{NewHermite(), NewLagrange()} {
		start, end := interp.Domain(pts)
		diff(t, [2]float64{0, 5}, [2]float64{start, end})
		diff(t, pts.At(0).Pos, interp.Eval(pts, start))
		diff(t, pts.At(5).Pos, interp.Eval(pts, end))
	}
}

func TestLayout(t *testing.T) {
	for _, name := range Layouts {
		pts, err := Layout(name)
		if err != nil {
			t.Fatal(err)
		}
		for i, cp := range pts.All() {
			diff(t, float64(i), cp.U)
		}
	}

	four, err := Layout("FOUR")
	if err != nil {
		t.Fatal(err)
	}
	want := []Point{Pt(200, 200), Pt(400, 200), Pt(200, 400), Pt(400, 400)}
	diff(t, want, four.Positions())
	diff(t, 6, SixPointLayout().Len())

	// Layouts are fresh copies.
	four.SetPosition(four.At(0), 0, 0)
	diff(t, Pt(200, 200), FourPointLayout().At(0).Pos)

	if _, err := Layout("seven"); !errors.Is(err, ErrUnknownLayout) {
		t.Errorf("got error %v, want %v", err, ErrUnknownLayout)
	}
}
