package spline

import "log/slog"

// DefaultPickRadius is the distance within which a pointer press captures a
// control point. It is also the radius of the drawn point markers.
const DefaultPickRadius = 10.0

// Find returns the first control point, in sequence order, whose distance to
// pt is strictly less than radius, or nil if there is none.
//
// This is not a nearest-neighbour search. When several points are within
// radius of pt, the one listed first wins even if a later one is closer.
func (ps *Points) Find(pt Point, radius float64) *ControlPoint {
	for _, cp := range ps.pts {
		if cp.Pos.Distance(pt) < radius {
			return cp
		}
	}
	return nil
}

// Selection tracks which control point, if any, is being dragged.
//
// It implements a three-state protocol driven by pointer events: a press
// captures the point under the pointer, motion moves the captured point, and
// a release drops it. At most one point is captured at a time.
type Selection struct {
	pts    *Points
	radius float64
	cur    *ControlPoint
	redraw func()
}

// NewSelection returns a selection over pts that captures points within
// radius of the pointer. redraw, which may be nil, is called after every
// position change.
func NewSelection(pts *Points, radius float64, redraw func()) *Selection {
	return &Selection{
		pts:    pts,
		radius: radius,
		redraw: redraw,
	}
}

// Radius returns the pick radius.
func (s *Selection) Radius() float64 { return s.radius }

// Selected returns the captured control point, or nil.
func (s *Selection) Selected() *ControlPoint { return s.cur }

// Active reports whether a control point is captured.
func (s *Selection) Active() bool { return s.cur != nil }

// PointerDown captures the control point under (x, y), replacing any
// previous capture. If no point is within the pick radius, nothing is
// captured.
func (s *Selection) PointerDown(x, y float64) {
	s.cur = s.pts.Find(Pt(x, y), s.radius)
	if s.cur != nil {
		Logger().Debug("captured control point",
			slog.String("label", s.cur.Label),
			slog.Float64("x", x),
			slog.Float64("y", y))
	}
}

// PointerMove moves the captured control point to (x, y) and requests a
// redraw. It reports whether a point was moved; without a capture it does
// nothing.
func (s *Selection) PointerMove(x, y float64) bool {
	if s.cur == nil {
		return false
	}
	s.pts.SetPosition(s.cur, x, y)
	if s.redraw != nil {
		s.redraw()
	}
	return true
}

// PointerUp releases the captured control point, if any.
func (s *Selection) PointerUp(x, y float64) {
	if s.cur != nil {
		Logger().Debug("released control point", slog.String("label", s.cur.Label))
	}
	s.cur = nil
}
