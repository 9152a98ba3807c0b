// Package ggcanvas renders spline panels to images with the gg software
// rasterizer.
package ggcanvas

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"iter"
	"os"

	"github.com/gogpu/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"honnef.co/go/spline"
)

// Style holds the colors, as hex strings, and line widths used for drawing.
type Style struct {
	Background   string
	Curve        string
	Polygon      string
	Marker       string
	Selected     string
	Label        string
	CurveWidth   float64
	PolygonWidth float64
	MarkerWidth  float64
	// Labels enables drawing each control point's label next to its marker.
	Labels bool
}

// DefaultStyle draws a red curve, blue point circles and a grey control
// polygon on white.
var DefaultStyle = Style{
	Background:   "#FFFFFF",
	Curve:        "#FF0000",
	Polygon:      "#AAAAAA",
	Marker:       "#0000FF",
	Selected:     "#00AA00",
	Label:        "#333333",
	CurveWidth:   1,
	PolygonWidth: 1,
	MarkerWidth:  1,
	Labels:       true,
}

type label struct {
	text string
	at   spline.Point
}

// Canvas implements [spline.Canvas] on top of a gg drawing context.
//
// Drawing errors don't interrupt drawing; the first one is reported by
// [Canvas.Err] and by the encoding methods.
type Canvas struct {
	dc     *gg.Context
	style  Style
	labels []label
	err    error
}

var _ spline.Canvas = (*Canvas)(nil)

// New returns a canvas of the given size in pixels.
func New(width, height int, style Style) *Canvas {
	return &Canvas{
		dc:    gg.NewContext(width, height),
		style: style,
	}
}

// Close releases the drawing context.
func (c *Canvas) Close() error {
	return c.dc.Close()
}

// Err returns the first error encountered while drawing.
func (c *Canvas) Err() error { return c.err }

func (c *Canvas) setErr(err error) {
	if err != nil && c.err == nil {
		c.err = err
	}
}

// Bounds implements [spline.Canvas].
func (c *Canvas) Bounds() spline.Rect {
	return spline.NewRectFromSize(spline.Sz(float64(c.dc.Width()), float64(c.dc.Height())))
}

// Clear implements [spline.Canvas].
func (c *Canvas) Clear() {
	c.dc.ClearWithColor(gg.Hex(c.style.Background))
	c.labels = c.labels[:0]
}

// StrokePath implements [spline.Canvas].
func (c *Canvas) StrokePath(layer spline.Layer, path iter.Seq[spline.PathElement]) {
	switch layer {
	case spline.LayerCurve:
		c.dc.SetHexColor(c.style.Curve)
		c.dc.SetLineWidth(c.style.CurveWidth)
	case spline.LayerControlPolygon:
		c.dc.SetHexColor(c.style.Polygon)
		c.dc.SetLineWidth(c.style.PolygonWidth)
	default:
		c.setErr(fmt.Errorf("stroke: unsupported layer %s", layer))
		return
	}
	c.dc.ClearPath()
	empty := true
	for el := range path {
		empty = false
		switch el.Kind {
		case spline.MoveToKind:
			c.dc.MoveTo(el.P0.X, el.P0.Y)
		case spline.LineToKind:
			c.dc.LineTo(el.P0.X, el.P0.Y)
		case spline.CubicToKind:
			c.dc.CubicTo(el.P0.X, el.P0.Y, el.P1.X, el.P1.Y, el.P2.X, el.P2.Y)
		default:
			c.setErr(fmt.Errorf("stroke %s: invalid path element %s", layer, el))
		}
	}
	if empty {
		return
	}
	if err := c.dc.Stroke(); err != nil {
		c.setErr(fmt.Errorf("stroke %s: %w", layer, err))
	}
}

// DrawMarker implements [spline.Canvas].
func (c *Canvas) DrawMarker(cp *spline.ControlPoint, radius float64, selected bool) {
	if selected {
		c.dc.SetHexColor(c.style.Selected)
	} else {
		c.dc.SetHexColor(c.style.Marker)
	}
	c.dc.SetLineWidth(c.style.MarkerWidth)
	c.dc.ClearPath()
	c.dc.DrawCircle(cp.Pos.X, cp.Pos.Y, radius)
	if err := c.dc.Stroke(); err != nil {
		c.setErr(fmt.Errorf("marker %s: %w", cp.Label, err))
	}
	if c.style.Labels {
		c.labels = append(c.labels, label{
			text: cp.Label,
			at:   cp.Pos.Translate(spline.Vec(radius+2, -radius-2)),
		})
	}
}

// Image returns the rendered image, with labels.
func (c *Canvas) Image() *image.RGBA {
	c.setErr(c.dc.FlushGPU())
	src := c.dc.Image()
	dst := image.NewRGBA(src.Bounds())
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
	if len(c.labels) == 0 {
		return dst
	}
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(gg.Hex(c.style.Label).Color()),
		Face: basicfont.Face7x13,
	}
	for _, l := range c.labels {
		d.Dot = fixed.P(int(l.at.X), int(l.at.Y))
		d.DrawString(l.text)
	}
	return dst
}

// EncodePNG writes the rendered image as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	img := c.Image()
	if c.err != nil {
		return c.err
	}
	return png.Encode(w, img)
}

// SavePNG writes the rendered image to a PNG file at path.
func (c *Canvas) SavePNG(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()
	return c.EncodePNG(f)
}
