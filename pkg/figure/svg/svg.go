// Package svg draws figures as SVG documents.
package svg

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	svgo "github.com/ajstarks/svgo"

	"github.com/Faultbox/cuboidviz/pkg/figure"
	m "github.com/Faultbox/cuboidviz/pkg/math"
)

// scale is the number of SVG user units per pixel. Coordinates are written
// as integers, so drawing at 10x inside a scale(0.1) group keeps a tenth of
// a pixel of precision.
const scale = 10

// Canvas is a figure.Canvas that writes SVG elements.
type Canvas struct {
	doc           *svgo.SVG
	width, height int
	out           *errWriter
}

var _ figure.Canvas = (*Canvas)(nil)

// errWriter keeps the first write error.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}

// New starts an SVG document of the given pixel size on w. Call Finish to
// close it.
func New(w io.Writer, width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", width, height)
	}
	out := &errWriter{w: w}
	doc := svgo.New(out)
	doc.Start(width, height)
	doc.Gtransform(fmt.Sprintf("scale(%g)", 1.0/scale))
	return &Canvas{doc: doc, width: width, height: height, out: out}, out.err
}

// Finish closes the document and reports the first write error.
func (c *Canvas) Finish() error {
	c.doc.Gend()
	c.doc.End()
	return c.out.err
}

// Render writes fig as a standalone SVG document.
func Render(w io.Writer, fig *figure.Figure) error {
	c, err := New(w, fig.Width, fig.Height)
	if err != nil {
		return err
	}
	if err := fig.Draw(c); err != nil {
		return err
	}
	return c.Finish()
}

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// Clear paints a full-size background rectangle.
func (c *Canvas) Clear(bg color.Color) {
	c.doc.Rect(0, 0, c.width*scale, c.height*scale, fillStyle(bg))
}

// Polygon writes a closed shape.
func (c *Canvas) Polygon(pts []m.Vec2, fill, stroke color.Color, strokeWidth float64) {
	if len(pts) < 3 {
		return
	}
	xs, ys := coords(pts)
	style := []string{"fill:none"}
	if fill != nil {
		style[0] = fillStyle(fill)
	}
	if stroke != nil && strokeWidth > 0 {
		style = append(style, strokeStyle(stroke, strokeWidth))
	}
	c.doc.Polygon(xs, ys, strings.Join(style, ";"))
}

// Polyline writes an open stroked path.
func (c *Canvas) Polyline(pts []m.Vec2, stroke color.Color, width float64) {
	if len(pts) < 2 || stroke == nil || width <= 0 {
		return
	}
	xs, ys := coords(pts)
	c.doc.Polyline(xs, ys, "fill:none;stroke-linecap:round;stroke-linejoin:round;"+strokeStyle(stroke, width))
}

// Circle writes a filled disc.
func (c *Canvas) Circle(center m.Vec2, radius float64, fill color.Color) {
	if fill == nil || radius <= 0 {
		return
	}
	c.doc.Circle(unit(center.X), unit(center.Y), unit(radius), fillStyle(fill))
}

// Text writes a text element. size is in pixels.
func (c *Canvas) Text(at m.Vec2, s string, size float64, col color.Color, anchor figure.Anchor) {
	if s == "" || col == nil || size <= 0 {
		return
	}
	style := []string{
		fillStyle(col),
		fmt.Sprintf("font-family:sans-serif;font-size:%dpx", unit(size)),
		"text-anchor:" + textAnchor(anchor.H),
	}
	if b := baseline(anchor.V); b != "" {
		style = append(style, "dominant-baseline:"+b)
	}
	c.doc.Text(unit(at.X), unit(at.Y), s, strings.Join(style, ";"))
}

func textAnchor(h figure.HAlign) string {
	switch h {
	case figure.AlignCenter:
		return "middle"
	case figure.AlignRight:
		return "end"
	default:
		return "start"
	}
}

func baseline(v figure.VAlign) string {
	switch v {
	case figure.AlignMiddle:
		return "central"
	case figure.AlignTop:
		return "hanging"
	default:
		return ""
	}
}

func fillStyle(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	s := fmt.Sprintf("fill:rgb(%d,%d,%d)", n.R, n.G, n.B)
	if n.A != 0xff {
		s += fmt.Sprintf(";fill-opacity:%.3f", float64(n.A)/255)
	}
	return s
}

func strokeStyle(c color.Color, width float64) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	s := fmt.Sprintf("stroke:rgb(%d,%d,%d);stroke-width:%d", n.R, n.G, n.B, unit(width))
	if n.A != 0xff {
		s += fmt.Sprintf(";stroke-opacity:%.3f", float64(n.A)/255)
	}
	return s
}

func coords(pts []m.Vec2) ([]int, []int) {
	xs := make([]int, len(pts))
	ys := make([]int, len(pts))
	for i, p := range pts {
		xs[i], ys[i] = unit(p.X), unit(p.Y)
	}
	return xs, ys
}

func unit(v float64) int {
	return int(math.Round(v * scale))
}
