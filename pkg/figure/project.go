package figure

import (
	"math"

	m "github.com/Faultbox/cuboidviz/pkg/math"
)

// frameRadius is the view-space radius, in normalised box units, that the
// viewport frames at zoom 1. The unit box half-diagonal is √3/2 ≈ 0.87.
const frameRadius = 0.95

// projector maps data coordinates to pixels for one draw pass.
type projector struct {
	limits [3]Range
	view   m.Mat4
	proj   m.Mat4
	center m.Vec2
	half   float64
	eye    m.Vec3 // unit direction from box center to the eye
}

func (f *Figure) projector() projector {
	f.Axes()
	center, half := f.plotArea()
	return projector{
		limits: f.axes.Limits(),
		view:   f.Camera.ViewMatrix(),
		proj:   f.Camera.ProjectionMatrix(frameRadius),
		center: center,
		half:   half,
		eye:    f.Camera.Direction(),
	}
}

// plotArea returns the pixel center and half-size of the square region the
// axes box is drawn into, leaving room for the title and tick labels.
func (f *Figure) plotArea() (m.Vec2, float64) {
	top := 0.0
	if f.axes.title != "" {
		top = f.pt(f.TitleSize) * 2.5
	}
	w := float64(f.Width)
	h := float64(f.Height) - top
	if h < 1 {
		h = 1
	}
	return m.Vec2{X: w / 2, Y: top + h/2}, math.Min(w, h) / 2 * 0.82
}

// normalize maps data coordinates into the unit box [-0.5, 0.5]³. Every
// axis gets the same box length, so equal data ranges give equal scale.
func (p projector) normalize(v m.Vec3) m.Vec3 {
	return m.Vec3{
		X: (v.X - p.limits[0].Center()) / p.limits[0].Span(),
		Y: (v.Y - p.limits[1].Center()) / p.limits[1].Span(),
		Z: (v.Z - p.limits[2].Center()) / p.limits[2].Span(),
	}
}

// projectBox projects a point given in unit-box coordinates. depth grows
// away from the eye.
func (p projector) projectBox(n m.Vec3) (m.Vec2, float64) {
	viewP := p.view.TransformPoint(n)
	ndc := p.proj.TransformPoint(viewP)
	return m.Vec2{X: p.center.X + ndc.X*p.half, Y: p.center.Y - ndc.Y*p.half}, -viewP.Z
}

// project projects a point given in data coordinates.
func (p projector) project(v m.Vec3) (m.Vec2, float64) {
	return p.projectBox(p.normalize(v))
}

// backSide returns the unit-box coordinate of the pane of the given axis
// that faces away from the eye.
func (p projector) backSide(axis int) float64 {
	if p.eye.Array()[axis] > 0 {
		return -0.5
	}
	return 0.5
}

// Project maps a data-space point to pixel coordinates using the figure's
// current limits and camera. The second result is the distance along the
// view direction; larger values are farther from the eye.
func (f *Figure) Project(v m.Vec3) (m.Vec2, float64) {
	return f.projector().project(v)
}

func boxPoint(axis int, v float64, other1 int, v1 float64, other2 int, v2 float64) m.Vec3 {
	var a [3]float64
	a[axis], a[other1], a[other2] = v, v1, v2
	return m.Vec3{X: a[0], Y: a[1], Z: a[2]}
}

// otherAxes returns the two axis indices different from axis, in order.
func otherAxes(axis int) (int, int) {
	switch axis {
	case 0:
		return 1, 2
	case 1:
		return 0, 2
	default:
		return 0, 1
	}
}
