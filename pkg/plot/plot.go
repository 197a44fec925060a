// Package plot draws a cuboid together with its minimal-volume
// circumscribing ellipsoid.
package plot

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"

	"github.com/Faultbox/cuboidviz/pkg/figure"
	"github.com/Faultbox/cuboidviz/pkg/geometry"
)

// Options controls styling and sampling. Zero fields take the defaults.
type Options struct {
	EdgeColor   color.Color
	EdgeWidth   float64 // points
	MarkerColor color.Color
	MarkerSize  float64 // points²
	LabelColor  color.Color
	LabelSize   float64 // points

	SurfaceColor color.Color
	SurfaceAlpha float64
	// Samples is the number of surface samples along u and v.
	Samples int
	// Stride is the row and column stride between drawn surface patches.
	Stride int
}

// DefaultOptions returns the default style: black edges of width 1.5, red
// markers of size 20, blue labels of size 10 and an 80x80 surface drawn with
// stride 4 at alpha 0.3.
func DefaultOptions() Options {
	return Options{
		EdgeColor:    figure.Black,
		EdgeWidth:    1.5,
		MarkerColor:  figure.Red,
		MarkerSize:   20,
		LabelColor:   figure.Blue,
		LabelSize:    10,
		SurfaceColor: figure.SurfaceBlue,
		SurfaceAlpha: 0.3,
		Samples:      geometry.DefaultSamples,
		Stride:       4,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.EdgeColor == nil {
		o.EdgeColor = d.EdgeColor
	}
	if o.EdgeWidth <= 0 {
		o.EdgeWidth = d.EdgeWidth
	}
	if o.MarkerColor == nil {
		o.MarkerColor = d.MarkerColor
	}
	if o.MarkerSize <= 0 {
		o.MarkerSize = d.MarkerSize
	}
	if o.LabelColor == nil {
		o.LabelColor = d.LabelColor
	}
	if o.LabelSize <= 0 {
		o.LabelSize = d.LabelSize
	}
	if o.SurfaceColor == nil {
		o.SurfaceColor = d.SurfaceColor
	}
	if o.SurfaceAlpha <= 0 {
		o.SurfaceAlpha = d.SurfaceAlpha
	}
	if o.Samples == 0 {
		o.Samples = d.Samples
	}
	if o.Stride <= 0 {
		o.Stride = d.Stride
	}
	return o
}

// ErrNilFigure is returned by Render when no figure is given.
var ErrNilFigure = errors.New("nil figure")

// Title returns the plot title for a cuboid of sides a, b, c.
func Title(a, b, c float64) string {
	return fmt.Sprintf("Cuboid %s×%s×%s and its Circumscribing Ellipsoid", formatSide(a), formatSide(b), formatSide(c))
}

func formatSide(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Render draws the a x b x c cuboid wireframe and its circumscribing
// ellipsoid into fig. Vertex markers and index labels are added when
// annotate is set. Invalid side lengths are rejected before fig is touched;
// the returned error then wraps geometry.ErrInvalidDimension.
func Render(fig *figure.Figure, a, b, c float64, annotate bool, opts Options) error {
	cuboid, err := geometry.NewCuboid(a, b, c)
	if err != nil {
		return err
	}
	if fig == nil {
		return ErrNilFigure
	}
	opts = opts.withDefaults()

	ellipsoid := geometry.Circumscribe(cuboid)
	grid, err := geometry.SampleSurface(ellipsoid, opts.Samples, opts.Samples)
	if err != nil {
		return err
	}

	half := cuboid.MaxSide() / 2
	ax := fig.Axes()
	for _, set := range []func(lo, hi float64) error{ax.SetXLim, ax.SetYLim, ax.SetZLim} {
		if err := set(-half, half); err != nil {
			return err
		}
	}

	vertices := cuboid.Vertices()
	edgeStyle := figure.LineStyle{Color: opts.EdgeColor, Width: opts.EdgeWidth}
	for _, seg := range cuboid.EdgeSegments() {
		ax.Plot(seg[:], edgeStyle)
	}

	if annotate {
		marker := figure.MarkerStyle{Color: opts.MarkerColor, Size: opts.MarkerSize}
		label := figure.TextStyle{Color: opts.LabelColor, Size: opts.LabelSize}
		for i, v := range vertices {
			ax.Scatter(v, marker)
			ax.Text(v, strconv.Itoa(i), label)
		}
	}

	if err := ax.PlotSurface(grid.X, grid.Y, grid.Z, figure.SurfaceStyle{
		Color:   opts.SurfaceColor,
		Alpha:   opts.SurfaceAlpha,
		RStride: opts.Stride,
		CStride: opts.Stride,
	}); err != nil {
		return err
	}

	ax.SetXLabel("X")
	ax.SetYLabel("Y")
	ax.SetZLabel("Z")
	ax.SetTitle(Title(a, b, c))
	return nil
}

// Plot renders into a new default-sized figure and returns it.
func Plot(a, b, c float64, annotate bool) (*figure.Figure, error) {
	fig := figure.New(figure.DefaultWidth, figure.DefaultHeight)
	if err := Render(fig, a, b, c, annotate, DefaultOptions()); err != nil {
		return nil, err
	}
	return fig, nil
}
