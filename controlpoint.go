package spline

import (
	"errors"
	"fmt"
	"iter"
	"strconv"
)

// ErrIndexOutOfRange is returned by [Points.Lookup] for indices outside the
// sequence.
var ErrIndexOutOfRange = errors.New("control point index out of range")

// ControlPoint is a labelled anchor the curve passes through.
//
// U is the curve parameter at which the curve passes through the point. The
// Hermite engine treats consecutive points as one unit of parameter apart and
// ignores U; the Lagrange engine interpolates at U. Pos is the only mutable
// part of a control point during interaction.
type ControlPoint struct {
	Label string
	U     float64
	Pos   Point
}

func (cp *ControlPoint) String() string {
	return fmt.Sprintf("%s@%g%s", cp.Label, cp.U, cp.Pos)
}

// Points is an ordered sequence of control points.
//
// The sequence owns its control points and hands out pointers to them.
// Points keep their identity when their positions change; nothing in this
// package copies a control point while evaluating a curve.
//
// No two points may share the same U. This is a precondition that is not
// checked; see [Lagrange].
type Points struct {
	pts []*ControlPoint
}

// NewPoints returns a sequence of the given control points, in order. Points
// without a label are labelled P0, P1, … by their index.
func NewPoints(cps ...ControlPoint) *Points {
	pts := make([]*ControlPoint, len(cps))
	for i, cp := range cps {
		if cp.Label == "" {
			cp.Label = "P" + strconv.Itoa(i)
		}
		pts[i] = &cp
	}
	return &Points{pts: pts}
}

// NewPointsAt returns a sequence of control points at the given positions,
// with U equal to each point's index.
func NewPointsAt(positions ...Point) *Points {
	cps := make([]ControlPoint, len(positions))
	for i, pos := range positions {
		cps[i] = ControlPoint{U: float64(i), Pos: pos}
	}
	return NewPoints(cps...)
}

// Len returns the number of control points.
func (ps *Points) Len() int {
	return len(ps.pts)
}

// At returns the i-th control point. It panics if i is out of range.
func (ps *Points) At(i int) *ControlPoint {
	if i < 0 || i >= len(ps.pts) {
		panic(fmt.Sprintf("%s: %d not in [0, %d)", ErrIndexOutOfRange, i, len(ps.pts)))
	}
	return ps.pts[i]
}

// Lookup is like [Points.At] but returns an error wrapping
// [ErrIndexOutOfRange] instead of panicking.
func (ps *Points) Lookup(i int) (*ControlPoint, error) {
	if i < 0 || i >= len(ps.pts) {
		return nil, fmt.Errorf("lookup %d of %d points: %w", i, len(ps.pts), ErrIndexOutOfRange)
	}
	return ps.pts[i], nil
}

// All returns an iterator over the indices and control points, in order.
func (ps *Points) All() iter.Seq2[int, *ControlPoint] {
	return func(yield func(int, *ControlPoint) bool) {
		for i, cp := range ps.pts {
			if !yield(i, cp) {
				return
			}
		}
	}
}

// Positions returns a snapshot of the control points' positions.
func (ps *Points) Positions() []Point {
	out := make([]Point, len(ps.pts))
	for i, cp := range ps.pts {
		out[i] = cp.Pos
	}
	return out
}

// Params returns a snapshot of the control points' parameters.
func (ps *Points) Params() []float64 {
	out := make([]float64, len(ps.pts))
	for i, cp := range ps.pts {
		out[i] = cp.U
	}
	return out
}

// SetPosition moves cp to (x, y). Any coordinates are accepted, including
// ones outside of the visible canvas.
//
// cp is modified in place; ps is only consulted for symmetry with the rest
// of the API and to catch points that belong to another sequence.
func (ps *Points) SetPosition(cp *ControlPoint, x, y float64) {
	if !ps.owns(cp) {
		panic(fmt.Sprintf("control point %s does not belong to this sequence", cp))
	}
	cp.Pos = Pt(x, y)
}

func (ps *Points) owns(cp *ControlPoint) bool {
	for _, o := range ps.pts {
		if o == cp {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the sequence. The copy's control points are
// distinct from ps's.
func (ps *Points) Clone() *Points {
	cps := make([]ControlPoint, len(ps.pts))
	for i, cp := range ps.pts {
		cps[i] = *cp
	}
	return NewPoints(cps...)
}
