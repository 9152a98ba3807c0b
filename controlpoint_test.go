package spline

import (
	"errors"
	"testing"
)

func TestNewPointsLabels(t *testing.T) {
	pts := NewPoints(
		ControlPoint{U: 0, Pos: Pt(1, 1)},
		ControlPoint{Label: "mid", U: 0.5, Pos: Pt(2, 2)},
		ControlPoint{U: 2, Pos: Pt(3, 3)},
	)
	var labels []string
	for _, cp := range pts.All() {
		labels = append(labels, cp.Label)
	}
	diff(t, []string{"P0", "mid", "P2"}, labels)
	diff(t, []float64{0, 0.5, 2}, pts.Params())
	diff(t, []Point{Pt(1, 1), Pt(2, 2), Pt(3, 3)}, pts.Positions())
}

func TestNewPointsAtParams(t *testing.T) {
	pts := NewPointsAt(Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0))
	diff(t, []float64{0, 1, 2, 3}, pts.Params())
}

func TestPointsAtOutOfRange(t *testing.T) {
	pts := FourPointLayout()
	mustPanic(t, func() { pts.At(-1) })
	mustPanic(t, func() { pts.At(4) })

	if _, err := pts.Lookup(4); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("got error %v, want %v", err, ErrIndexOutOfRange)
	}
	cp, err := pts.Lookup(3)
	if err != nil {
		t.Fatal(err)
	}
	if cp != pts.At(3) {
		t.Error("Lookup and At returned different points")
	}
}

func TestSetPositionKeepsIdentity(t *testing.T) {
	pts := FourPointLayout()
	cp := pts.At(1)
	pts.SetPosition(cp, -1000, 1e6)
	if pts.At(1) != cp {
		t.Fatal("control point was replaced")
	}
	diff(t, Pt(-1000, 1e6), pts.At(1).Pos)
}

func TestSetPositionForeignPoint(t *testing.T) {
	pts := FourPointLayout()
	other := FourPointLayout()
	mustPanic(t, func() { pts.SetPosition(other.At(0), 0, 0) })
}

func TestPointsClone(t *testing.T) {
	pts := FourPointLayout()
	clone := pts.Clone()
	diff(t, pts.Positions(), clone.Positions())
	if clone.At(0) == pts.At(0) {
		t.Fatal("clone shares control points")
	}
	clone.SetPosition(clone.At(0), 0, 0)
	diff(t, Pt(200, 200), pts.At(0).Pos)
}
