// Package raster draws figures into RGBA images.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/llgcode/draw2d"
	"github.com/llgcode/draw2d/draw2dimg"
	"github.com/llgcode/draw2d/draw2dkit"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/Faultbox/cuboidviz/pkg/figure"
	m "github.com/Faultbox/cuboidviz/pkg/math"
)

// Canvas is a figure.Canvas backed by an anti-aliased RGBA image.
type Canvas struct {
	img *image.RGBA
	gc  *draw2dimg.GraphicContext

	font  *opentype.Font
	faces map[float64]font.Face
	err   error
}

var _ figure.Canvas = (*Canvas)(nil)

// New creates a width x height canvas using the Go Regular font for text.
func New(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", width, height)
	}
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	gc := draw2dimg.NewGraphicContext(img)
	gc.SetLineCap(draw2d.RoundCap)
	gc.SetLineJoin(draw2d.RoundJoin)

	return &Canvas{
		img:   img,
		gc:    gc,
		font:  f,
		faces: make(map[float64]font.Face),
	}, nil
}

// Render draws fig into a new image of the figure's size.
func Render(fig *figure.Figure) (*image.RGBA, error) {
	c, err := New(fig.Width, fig.Height)
	if err != nil {
		return nil, err
	}
	defer c.Close()

	if err := fig.Draw(c); err != nil {
		return nil, err
	}
	if c.err != nil {
		return nil, c.err
	}
	return c.Image(), nil
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Close releases cached font faces.
func (c *Canvas) Close() {
	for size, face := range c.faces {
		face.Close()
		delete(c.faces, size)
	}
}

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear fills the whole canvas with bg.
func (c *Canvas) Clear(bg color.Color) {
	w, h := c.Size()
	c.gc.BeginPath()
	draw2dkit.Rectangle(c.gc, 0, 0, float64(w), float64(h))
	c.gc.SetFillColor(bg)
	c.gc.Fill()
}

// Polygon fills and/or strokes a closed path.
func (c *Canvas) Polygon(pts []m.Vec2, fill, stroke color.Color, strokeWidth float64) {
	if len(pts) < 3 {
		return
	}
	doStroke := stroke != nil && strokeWidth > 0
	if fill == nil && !doStroke {
		return
	}
	c.path(pts)
	c.gc.Close()

	switch {
	case fill != nil && doStroke:
		c.gc.SetFillColor(fill)
		c.gc.SetStrokeColor(stroke)
		c.gc.SetLineWidth(strokeWidth)
		c.gc.FillStroke()
	case fill != nil:
		c.gc.SetFillColor(fill)
		c.gc.Fill()
	default:
		c.gc.SetStrokeColor(stroke)
		c.gc.SetLineWidth(strokeWidth)
		c.gc.Stroke()
	}
}

// Polyline strokes an open path.
func (c *Canvas) Polyline(pts []m.Vec2, stroke color.Color, width float64) {
	if len(pts) < 2 || stroke == nil || width <= 0 {
		return
	}
	c.path(pts)
	c.gc.SetStrokeColor(stroke)
	c.gc.SetLineWidth(width)
	c.gc.Stroke()
}

// Circle fills a disc.
func (c *Canvas) Circle(center m.Vec2, radius float64, fill color.Color) {
	if fill == nil || radius <= 0 {
		return
	}
	c.gc.BeginPath()
	draw2dkit.Circle(c.gc, center.X, center.Y, radius)
	c.gc.SetFillColor(fill)
	c.gc.Fill()
}

// Text draws s with its anchor point at at. size is in pixels.
func (c *Canvas) Text(at m.Vec2, s string, size float64, col color.Color, anchor figure.Anchor) {
	if s == "" || col == nil || size <= 0 {
		return
	}
	face, err := c.face(size)
	if err != nil {
		c.fail(err)
		return
	}

	d := &font.Drawer{Dst: c.img, Src: image.NewUniform(col), Face: face}
	width := fromFixed(d.MeasureString(s))
	metrics := face.Metrics()
	ascent, descent := fromFixed(metrics.Ascent), fromFixed(metrics.Descent)

	x, y := at.X, at.Y
	switch anchor.H {
	case figure.AlignCenter:
		x -= width / 2
	case figure.AlignRight:
		x -= width
	}
	switch anchor.V {
	case figure.AlignMiddle:
		y += (ascent - descent) / 2
	case figure.AlignTop:
		y += ascent
	}

	d.Dot = fixed.Point26_6{X: toFixed(x), Y: toFixed(y)}
	d.DrawString(s)
}

// Err returns the first text rendering error, if any.
func (c *Canvas) Err() error {
	return c.err
}

func (c *Canvas) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

func (c *Canvas) face(size float64) (font.Face, error) {
	size = math.Round(size*4) / 4
	if face, ok := c.faces[size]; ok {
		return face, nil
	}
	face, err := opentype.NewFace(c.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font face %.2fpx: %w", size, err)
	}
	c.faces[size] = face
	return face, nil
}

func (c *Canvas) path(pts []m.Vec2) {
	c.gc.BeginPath()
	c.gc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.gc.LineTo(p.X, p.Y)
	}
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
