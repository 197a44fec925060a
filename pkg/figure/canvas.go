package figure

import (
	"image/color"

	m "github.com/Faultbox/cuboidviz/pkg/math"
)

// HAlign is the horizontal text anchor.
type HAlign int

const (
	AlignLeft HAlign = iota
	AlignCenter
	AlignRight
)

// VAlign is the vertical text anchor.
type VAlign int

const (
	AlignBaseline VAlign = iota
	AlignMiddle
	AlignTop
)

// Anchor positions text relative to its reference point.
type Anchor struct {
	H HAlign
	V VAlign
}

// Canvas is a 2D drawing surface in pixel coordinates with the origin at the
// top-left corner. A nil fill or stroke color, or a zero stroke width,
// disables that part of a shape.
type Canvas interface {
	Size() (width, height int)
	Clear(bg color.Color)
	Polygon(pts []m.Vec2, fill, stroke color.Color, strokeWidth float64)
	Polyline(pts []m.Vec2, stroke color.Color, width float64)
	Circle(center m.Vec2, radius float64, fill color.Color)
	Text(at m.Vec2, s string, size float64, c color.Color, anchor Anchor)
}
