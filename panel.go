package spline

import (
	"iter"
	"slices"
)

// Interactive is implemented by surfaces that respond to pointer input.
// Coordinates are in canvas space. Hosts deliver events one at a time, in
// order, and each call completes before the next one is made.
type Interactive interface {
	PointerDown(x, y float64)
	PointerMove(x, y float64)
	PointerUp(x, y float64)
}

// Drawable is implemented by surfaces that can render themselves onto a
// [Canvas].
type Drawable interface {
	Draw(c Canvas)
}

// Pather is implemented by interpolators that can describe their curve
// exactly as path elements, without sampling.
type Pather interface {
	Path(pts *Points) iter.Seq[PathElement]
}

var _ Pather = Hermite{}

// Layer identifies what a stroked path depicts, so that canvases can style
// it.
type Layer int

const (
	// The interpolated curve.
	LayerCurve Layer = iota + 1
	// Straight lines joining consecutive control points.
	LayerControlPolygon
)

func (l Layer) String() string {
	switch l {
	case LayerCurve:
		return "curve"
	case LayerControlPolygon:
		return "control polygon"
	default:
		return "invalid layer"
	}
}

// Canvas is the drawing surface a [Panel] renders onto. It is provided by the
// host; this package contains no drawing code of its own.
type Canvas interface {
	// Bounds returns the visible part of canvas space.
	Bounds() Rect
	// Clear erases the canvas.
	Clear()
	// StrokePath strokes a path. Every subpath starts with a MoveTo.
	StrokePath(layer Layer, path iter.Seq[PathElement])
	// DrawMarker draws the marker of a control point.
	DrawMarker(cp *ControlPoint, radius float64, selected bool)
}

// Frame is everything a renderer needs to draw one frame of a panel.
type Frame struct {
	Curve  Polyline
	Points []ControlPoint
	// Selected is the index of the captured point in Points, or -1.
	Selected int
}

// Panel combines a sequence of control points, an interpolation strategy and
// a selection into an interactive curve editor. The host feeds it pointer
// events and draws it whenever it asks for a redraw.
//
// A panel is not safe for concurrent use.
type Panel struct {
	pts      *Points
	interp   Interpolator
	sel      *Selection
	polygon  bool
	exact    bool
	onRedraw func()
	dirty    bool
}

var (
	_ Interactive = (*Panel)(nil)
	_ Drawable    = (*Panel)(nil)
)

type panelConfig struct {
	radius  float64
	redraw  func()
	polygon bool
	exact   bool
}

// PanelOption configures a [Panel].
type PanelOption func(*panelConfig)

// WithPickRadius sets the pick radius, which defaults to
// [DefaultPickRadius].
func WithPickRadius(r float64) PanelOption {
	return func(c *panelConfig) { c.radius = r }
}

// WithRedraw registers a function that is called whenever the panel's
// contents change and it needs to be redrawn.
func WithRedraw(fn func()) PanelOption {
	return func(c *panelConfig) { c.redraw = fn }
}

// WithControlPolygon sets whether Draw strokes the control polygon. It
// defaults to true.
func WithControlPolygon(on bool) PanelOption {
	return func(c *panelConfig) { c.polygon = on }
}

// WithExactCurve sets whether Draw strokes the exact curve, for
// interpolators that implement [Pather], instead of the sampled polyline. It
// defaults to false.
func WithExactCurve(on bool) PanelOption {
	return func(c *panelConfig) { c.exact = on }
}

// NewPanel returns a panel drawing the curve through pts with interp. The
// panel takes ownership of pts and modifies its points in response to
// pointer events.
//
// A new panel requests an initial redraw; see [Panel.TakeRedraw].
func NewPanel(interp Interpolator, pts *Points, opts ...PanelOption) *Panel {
	cfg := panelConfig{
		radius:  DefaultPickRadius,
		polygon: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	p := &Panel{
		pts:      pts,
		interp:   interp,
		polygon:  cfg.polygon,
		exact:    cfg.exact,
		onRedraw: cfg.redraw,
		dirty:    true,
	}
	p.sel = NewSelection(pts, cfg.radius, p.requestRedraw)
	return p
}

// Points returns the panel's control points.
func (p *Panel) Points() *Points { return p.pts }

// Interpolator returns the panel's interpolation strategy.
func (p *Panel) Interpolator() Interpolator { return p.interp }

// Selection returns the panel's selection.
func (p *Panel) Selection() *Selection { return p.sel }

func (p *Panel) requestRedraw() {
	p.dirty = true
	if p.onRedraw != nil {
		p.onRedraw()
	}
}

// TakeRedraw reports whether the panel changed since the last call and
// resets the flag. Hosts that poll once per frame use it instead of a
// redraw callback.
func (p *Panel) TakeRedraw() bool {
	d := p.dirty
	p.dirty = false
	return d
}

// PointerDown implements [Interactive].
func (p *Panel) PointerDown(x, y float64) { p.sel.PointerDown(x, y) }

// PointerMove implements [Interactive].
func (p *Panel) PointerMove(x, y float64) { p.sel.PointerMove(x, y) }

// PointerUp implements [Interactive].
func (p *Panel) PointerUp(x, y float64) { p.sel.PointerUp(x, y) }

// Frame samples the curve for display in view and snapshots the control
// points.
func (p *Panel) Frame(view Rect) Frame {
	f := Frame{
		Curve:    p.interp.Sample(p.pts, view),
		Points:   make([]ControlPoint, 0, p.pts.Len()),
		Selected: -1,
	}
	for i, cp := range p.pts.All() {
		f.Points = append(f.Points, *cp)
		if cp == p.sel.Selected() {
			f.Selected = i
		}
	}
	return f
}

// Draw implements [Drawable]. It clears c, strokes the curve, draws a
// marker for each control point and finally strokes the control polygon.
func (p *Panel) Draw(c Canvas) {
	c.Clear()
	c.StrokePath(LayerCurve, p.curve(c.Bounds()))
	for _, cp := range p.pts.All() {
		c.DrawMarker(cp, p.sel.Radius(), cp == p.sel.Selected())
	}
	if p.polygon && p.pts.Len() > 0 {
		c.StrokePath(LayerControlPolygon, slices.Values(controlPolygon(p.pts)))
	}
}

func (p *Panel) curve(view Rect) iter.Seq[PathElement] {
	if pa, ok := p.interp.(Pather); ok && p.exact {
		return pa.Path(p.pts)
	}
	return p.interp.Sample(p.pts, view).Elements()
}

func controlPolygon(pts *Points) []PathElement {
	els := make([]PathElement, 0, pts.Len())
	for i, cp := range pts.All() {
		if i == 0 {
			els = append(els, MoveTo(cp.Pos))
		} else {
			els = append(els, LineTo(cp.Pos))
		}
	}
	return els
}
