package spline

import (
	"fmt"
	"iter"
	"math"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a cubic Bézier using the current location and the three points.
	CubicToKind
)

// PathElement is a drawing command, in the style of PostScript or the HTML
// canvas. A valid path has a MoveTo at the beginning of each subpath.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	switch el.Kind {
	case MoveToKind:
		return fmt.Sprintf("MoveTo(%s)", el.P0)
	case LineToKind:
		return fmt.Sprintf("LineTo(%s)", el.P0)
	case CubicToKind:
		return fmt.Sprintf("CubicTo(%s, %s, %s)", el.P0, el.P1, el.P2)
	default:
		return "InvalidPathElement"
	}
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

// Polyline is a sampled approximation of a curve. It consists of runs of
// vertices; consecutive vertices within a run are connected by straight
// lines, while consecutive runs are not connected at all. A curve that leaves
// the viewport and comes back produces two runs.
type Polyline struct {
	Runs [][]Point
}

// Len returns the total number of vertices in all runs.
func (pl Polyline) Len() int {
	n := 0
	for _, run := range pl.Runs {
		n += len(run)
	}
	return n
}

// Empty reports whether the polyline has no vertices.
func (pl Polyline) Empty() bool {
	return pl.Len() == 0
}

// Points returns an iterator over all vertices, in order, ignoring run
// boundaries.
func (pl Polyline) Points() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for _, run := range pl.Runs {
			for _, pt := range run {
				if !yield(pt) {
					return
				}
			}
		}
	}
}

// Elements returns the polyline as path elements, starting every run with a
// MoveTo.
func (pl Polyline) Elements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		for _, run := range pl.Runs {
			for i, pt := range run {
				el := LineTo(pt)
				if i == 0 {
					el = MoveTo(pt)
				}
				if !yield(el) {
					return
				}
			}
		}
	}
}

// BoundingBox returns the smallest rectangle enclosing all vertices. The
// bounding box of an empty polyline is the zero rectangle.
func (pl Polyline) BoundingBox() Rect {
	r := Rect{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
	seen := false
	for pt := range pl.Points() {
		r = r.UnionPoint(pt)
		seen = true
	}
	if !seen {
		return Rect{}
	}
	return r
}

// polylineBuilder accumulates vertices into runs. Breaking an empty run is a
// no-op, so runs are never empty.
type polylineBuilder struct {
	runs [][]Point
	cur  []Point
}

func (b *polylineBuilder) push(pt Point) {
	b.cur = append(b.cur, pt)
}

func (b *polylineBuilder) brk() {
	if len(b.cur) > 0 {
		b.runs = append(b.runs, b.cur)
		b.cur = nil
	}
}

func (b *polylineBuilder) finish() Polyline {
	b.brk()
	return Polyline{Runs: b.runs}
}

// sampleParams returns an iterator over parameters from start to end in
// increments of step. The last parameter is always exactly end, so that
// curves are sampled at their endpoints regardless of rounding; a step that
// doesn't divide the range evenly yields a shorter final interval.
func sampleParams(start, end, step float64) iter.Seq[float64] {
	if !(step > 0) {
		panic(fmt.Sprintf("invalid sample step %v", step))
	}
	// The tolerance keeps 1/0.02 from turning into 51 intervals.
	n := max(int(math.Ceil((end-start)/step-1e-9)), 0)
	return func(yield func(float64) bool) {
		for k := range n {
			if !yield(start + float64(k)*step) {
				return
			}
		}
		yield(end)
	}
}
