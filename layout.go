package spline

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownLayout is returned by [Layout] for names that don't denote a
// built-in layout.
var ErrUnknownLayout = errors.New("unknown layout")

// Layouts lists the names of the built-in layouts.
var Layouts = []string{"four", "six"}

// FourPointLayout returns four points at the corners of a square, connected
// in a Z shape, with parameters 0 through 3.
func FourPointLayout() *Points {
	return NewPointsAt(
		Pt(200, 200),
		Pt(400, 200),
		Pt(200, 400),
		Pt(400, 400),
	)
}

// SixPointLayout returns six points in a zigzag across the canvas, with
// parameters 0 through 5. With this many evenly spaced parameters the
// Lagrange curve visibly overshoots near the ends.
func SixPointLayout() *Points {
	return NewPointsAt(
		Pt(100, 300),
		Pt(180, 180),
		Pt(260, 380),
		Pt(340, 180),
		Pt(420, 380),
		Pt(500, 300),
	)
}

// Layout returns a fresh copy of the named built-in layout. Names are
// case-insensitive.
func Layout(name string) (*Points, error) {
	switch strings.ToLower(name) {
	case "four":
		return FourPointLayout(), nil
	case "six":
		return SixPointLayout(), nil
	default:
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownLayout)
	}
}
