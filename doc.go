// Package spline implements interactive interpolating curves: a small set of
// 2D control points that the user drags around with a pointer, and a curve
// through those points that is resampled whenever they move.
//
// # Control points
//
// [Points] is an ordered sequence of [ControlPoint] values. Each point has a
// label, a position and a curve parameter U. The order of the sequence
// determines which points are adjacent on the curve. Points are handed out
// by pointer and keep their identity when they move.
//
// # Interpolation strategies
//
// [Interpolator] describes a strategy for evaluating a curve through a
// sequence of control points at a parameter, and for sampling that curve into
// a [Polyline]. Two strategies are provided:
//
//   - [Hermite] is a piecewise cubic Hermite spline with Catmull-Rom style
//     tangents (see [Tangent] and [HermiteBasis]). Each segment only depends
//     on nearby points, and the curve's first derivative is continuous.
//   - [Lagrange] is the single polynomial of least degree through all points
//     (see [LagrangeWeights]). It is smooth everywhere but has no local
//     support, and with many points it oscillates strongly (Runge's
//     phenomenon).
//
// [ParseStrategy] maps strategy names to interpolators.
//
// # Sampling
//
// Curves are sampled at a fixed parameter step; there is no adaptive
// refinement. Hermite curves are sampled segment by segment and ignore the
// viewport. Lagrange curves drop samples outside of the viewport, which splits
// the polyline into several runs. Sampling has no side effects: sampling an
// unchanged sequence twice yields identical polylines.
//
// Renderers that can draw cubic Béziers can use [Hermite.Path] instead, which
// describes the spline exactly; see [WithExactCurve]. Renderers that can only
// draw lines can still draw the exact spline by passing the path through
// [Flatten].
//
// # Interaction
//
// [Selection] implements the pointer protocol. A press captures the first
// point, in sequence order, within the pick radius of the pointer. Note that
// this is the first match, not the nearest one. Motion moves the captured
// point and requests a redraw. A release drops the capture.
//
// [Panel] ties points, a strategy and a selection together. It implements
// [Interactive] for the host's pointer events and [Drawable] for rendering
// onto a host-provided [Canvas]. The package doesn't contain any drawing
// code; see the splinerender and splinepanel commands for hosts.
//
// # Preconditions
//
// Violating a precondition is a programming error and, where it can be
// detected cheaply, causes a panic: accessing a control point by an index out
// of range, or evaluating a Hermite spline with fewer than two points.
// Lagrange interpolation additionally requires distinct parameters; it isn't
// checked, and coincident parameters produce infinite or NaN coordinates.
//
// # Coordinate system
//
// All coordinates are in canvas space, which is y-down with the origin in the
// top left corner.
package spline
