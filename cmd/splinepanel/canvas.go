package main

import (
	"image/color"
	"iter"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"honnef.co/go/spline"
)

var (
	colorBackground = color.White
	colorCurve      = color.RGBA{0xff, 0x00, 0x00, 0xff}
	colorPolygon    = color.RGBA{0xaa, 0xaa, 0xaa, 0xff}
	colorMarker     = color.RGBA{0x00, 0x00, 0xff, 0xff}
	colorSelected   = color.RGBA{0x00, 0xaa, 0x00, 0xff}
	colorLabel      = color.RGBA{0x33, 0x33, 0x33, 0xff}
)

var labelFace = text.NewGoXFace(basicfont.Face7x13)

// imageCanvas implements spline.Canvas on an offscreen ebiten image. The
// image is only redrawn when the panel asks for it and is blitted to the
// screen every frame.
type imageCanvas struct {
	img *ebiten.Image
}

var _ spline.Canvas = (*imageCanvas)(nil)

func newImageCanvas(w, h int) *imageCanvas {
	return &imageCanvas{img: ebiten.NewImage(w, h)}
}

func (c *imageCanvas) Bounds() spline.Rect {
	b := c.img.Bounds()
	return spline.NewRectFromSize(spline.Sz(float64(b.Dx()), float64(b.Dy())))
}

func (c *imageCanvas) Clear() {
	c.img.Fill(colorBackground)
}

func (c *imageCanvas) StrokePath(layer spline.Layer, path iter.Seq[spline.PathElement]) {
	clr := colorCurve
	if layer == spline.LayerControlPolygon {
		clr = colorPolygon
	}
	// vector only strokes lines; curves are flattened first.
	var cur spline.Point
	for el := range spline.Flatten(path, spline.DefaultFlattenTolerance) {
		if el.Kind == spline.LineToKind {
			vector.StrokeLine(c.img,
				float32(cur.X), float32(cur.Y), float32(el.P0.X), float32(el.P0.Y),
				1, clr, true)
		}
		cur = el.P0
	}
}

func (c *imageCanvas) DrawMarker(cp *spline.ControlPoint, radius float64, selected bool) {
	clr := colorMarker
	if selected {
		clr = colorSelected
	}
	vector.StrokeCircle(c.img, float32(cp.Pos.X), float32(cp.Pos.Y), float32(radius), 1, clr, true)
	drawText(c.img, cp.Label, cp.Pos.Translate(spline.Vec(radius+2, -radius-14)), colorLabel)
}

// drawText draws s with its top left corner at pt.
func drawText(dst *ebiten.Image, s string, pt spline.Point, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(pt.X, pt.Y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, labelFace, op)
}
