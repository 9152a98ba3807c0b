package spline_test

import (
	"fmt"

	"honnef.co/go/spline"
)

func ExampleTangent() {
	pts := spline.NewPointsAt(spline.Pt(0, 0), spline.Pt(10, 0), spline.Pt(20, 10))
	fmt.Println(spline.Tangent(pts, 0))
	fmt.Println(spline.Tangent(pts, 1))
	fmt.Println(spline.Tangent(pts, 2))
	// Output:
	// ⟨5, 0⟩
	// ⟨10, 5⟩
	// ⟨5, 5⟩
}

func ExampleHermite_Segment() {
	pts := spline.FourPointLayout()
	seg := spline.NewHermite().Segment(pts, 0)
	fmt.Println(seg.Eval(0))
	fmt.Println(seg.Eval(0.5))
	fmt.Println(seg.Eval(1))
	// Output:
	// (200, 200)
	// (312.5, 187.5)
	// (400, 200)
}

func ExampleLagrange_Eval() {
	pts := spline.FourPointLayout()
	fmt.Println(spline.NewLagrange().Eval(pts, 1.5))
	// Output:
	// (300, 300)
}

func ExampleSelection() {
	pts := spline.NewPointsAt(spline.Pt(100, 100), spline.Pt(105, 100))
	sel := spline.NewSelection(pts, spline.DefaultPickRadius, func() {
		fmt.Println("redraw")
	})

	// Both points are within the pick radius; the first one listed wins
	// even though the second one is closer.
	sel.PointerDown(104, 100)
	fmt.Println(sel.Selected().Label)
	sel.PointerMove(150, 120)
	sel.PointerUp(150, 120)
	fmt.Println(pts.At(0).Pos, sel.Active())
	// Output:
	// P0
	// redraw
	// (150, 120) false
}

func ExamplePanel() {
	p := spline.NewPanel(spline.NewHermite(), spline.FourPointLayout())
	p.PointerDown(200, 400)
	p.PointerMove(100, 500)
	p.PointerUp(100, 500)

	f := p.Frame(spline.NewRectFromSize(spline.Sz(600, 600)))
	fmt.Println(len(f.Curve.Runs), f.Curve.Len())
	fmt.Println(f.Points[2].Label, f.Points[2].Pos)
	// Output:
	// 1 153
	// P2 (100, 500)
}
