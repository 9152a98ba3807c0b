package spline

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStrategy is returned by [ParseStrategy] for names that don't
// denote an interpolation strategy.
var ErrUnknownStrategy = errors.New("unknown interpolation strategy")

// Interpolator evaluates a curve through a sequence of control points.
//
// Implementations are stateless with respect to the points: they read the
// current positions on every call and never retain or copy control points.
// All methods are deterministic; calling them twice on an unchanged sequence
// yields identical results.
type Interpolator interface {
	// Name returns the strategy's name, as accepted by [ParseStrategy].
	Name() string

	// Domain returns the range of curve parameters spanned by the curve
	// through pts.
	Domain(pts *Points) (start, end float64)

	// Eval evaluates the curve through pts at parameter u.
	Eval(pts *Points, u float64) Point

	// Sample approximates the curve through pts by a polyline suitable for
	// display in view. Whether vertices outside of view are kept depends on
	// the strategy.
	Sample(pts *Points, view Rect) Polyline
}

var (
	_ Interpolator = Hermite{}
	_ Interpolator = Lagrange{}
)

// Strategies lists the names of the available interpolation strategies.
var Strategies = []string{"hermite", "lagrange"}

// ParseStrategy returns the interpolator with default settings for the
// named strategy. Names are case-insensitive.
func ParseStrategy(name string) (Interpolator, error) {
	switch strings.ToLower(name) {
	case "hermite":
		return NewHermite(), nil
	case "lagrange":
		return NewLagrange(), nil
	default:
		return nil, fmt.Errorf("%q: %w", name, ErrUnknownStrategy)
	}
}
