package figure

import (
	"errors"
	"image/color"
)

// Default figure geometry.
const (
	DefaultWidth  = 800
	DefaultHeight = 800
	DefaultDPI    = 100
)

// Figure is a render target holding one set of 3D axes.
type Figure struct {
	Width, Height int
	// DPI converts point sizes (line widths, fonts, markers) to pixels.
	DPI        float64
	Background color.Color
	Camera     Camera

	// TitleSize is the title font size in points.
	TitleSize float64
	// TickSize is the tick label font size in points.
	TickSize float64

	axes *Axes3D
}

// New creates an empty figure of the given pixel size.
func New(width, height int) *Figure {
	return &Figure{
		Width:      width,
		Height:     height,
		DPI:        DefaultDPI,
		Background: White,
		Camera:     DefaultCamera(),
		TitleSize:  12,
		TickSize:   8,
		axes:       newAxes(),
	}
}

// Axes returns the figure's 3D axes.
func (f *Figure) Axes() *Axes3D {
	if f.axes == nil {
		f.axes = newAxes()
	}
	return f.axes
}

// ErrEmptyFigure is returned when drawing a figure with no pixels.
var ErrEmptyFigure = errors.New("figure has zero size")

// pt converts a size in points to pixels.
func (f *Figure) pt(points float64) float64 {
	dpi := f.DPI
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	return points * dpi / 72
}
