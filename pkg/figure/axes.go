package figure

import (
	"fmt"
	"math"

	m "github.com/Faultbox/cuboidviz/pkg/math"
)

// Range is a closed axis interval.
type Range struct {
	Min, Max float64
}

// Span returns Max - Min.
func (r Range) Span() float64 { return r.Max - r.Min }

// Center returns the midpoint.
func (r Range) Center() float64 { return (r.Min + r.Max) / 2 }

func (r Range) valid() bool {
	return finite(r.Min) && finite(r.Max) && r.Min < r.Max
}

// Line is a recorded polyline in data coordinates.
type Line struct {
	Points []m.Vec3
	Style  LineStyle
}

// Marker is a recorded scatter point.
type Marker struct {
	Pos   m.Vec3
	Style MarkerStyle
}

// Label is a recorded text anchored at a data point.
type Label struct {
	Pos   m.Vec3
	Text  string
	Style TextStyle
}

// Surface is a recorded parametric surface; X, Y, Z share one [row][col] shape.
type Surface struct {
	X, Y, Z [][]float64
	Style   SurfaceStyle
}

// Axes3D collects the drawing commands of one 3D plot.
type Axes3D struct {
	lines    []Line
	markers  []Marker
	labels   []Label
	surfaces []Surface

	limits    [3]*Range
	axisNames [3]string
	title     string
}

func newAxes() *Axes3D {
	return &Axes3D{}
}

// Plot records a polyline through pts.
func (a *Axes3D) Plot(pts []m.Vec3, style LineStyle) {
	cp := make([]m.Vec3, len(pts))
	copy(cp, pts)
	a.lines = append(a.lines, Line{Points: cp, Style: style})
}

// Scatter records a marker at p.
func (a *Axes3D) Scatter(p m.Vec3, style MarkerStyle) {
	a.markers = append(a.markers, Marker{Pos: p, Style: style})
}

// Text records a label whose anchor sits at p.
func (a *Axes3D) Text(p m.Vec3, s string, style TextStyle) {
	a.labels = append(a.labels, Label{Pos: p, Text: s, Style: style})
}

// PlotSurface records a surface sampled on a regular grid. The three
// arrays must be non-empty and share one rectangular shape.
func (a *Axes3D) PlotSurface(x, y, z [][]float64, style SurfaceStyle) error {
	rows := len(x)
	if rows < 2 || len(y) != rows || len(z) != rows {
		return fmt.Errorf("surface needs matching grids with at least 2 rows, got %d/%d/%d", len(x), len(y), len(z))
	}
	cols := len(x[0])
	if cols < 2 {
		return fmt.Errorf("surface needs at least 2 columns, got %d", cols)
	}
	for i := 0; i < rows; i++ {
		if len(x[i]) != cols || len(y[i]) != cols || len(z[i]) != cols {
			return fmt.Errorf("surface row %d is ragged", i)
		}
	}
	if style.RStride < 1 {
		style.RStride = 1
	}
	if style.CStride < 1 {
		style.CStride = 1
	}
	a.surfaces = append(a.surfaces, Surface{X: x, Y: y, Z: z, Style: style})
	return nil
}

func (a *Axes3D) setLim(axis int, lo, hi float64) error {
	r := Range{Min: lo, Max: hi}
	if !r.valid() {
		return fmt.Errorf("invalid %s limits [%v, %v]", axisLetters[axis], lo, hi)
	}
	a.limits[axis] = &r
	return nil
}

// SetXLim sets the displayed X range.
func (a *Axes3D) SetXLim(lo, hi float64) error { return a.setLim(0, lo, hi) }

// SetYLim sets the displayed Y range.
func (a *Axes3D) SetYLim(lo, hi float64) error { return a.setLim(1, lo, hi) }

// SetZLim sets the displayed Z range.
func (a *Axes3D) SetZLim(lo, hi float64) error { return a.setLim(2, lo, hi) }

// SetXLabel sets the X axis caption.
func (a *Axes3D) SetXLabel(s string) { a.axisNames[0] = s }

// SetYLabel sets the Y axis caption.
func (a *Axes3D) SetYLabel(s string) { a.axisNames[1] = s }

// SetZLabel sets the Z axis caption.
func (a *Axes3D) SetZLabel(s string) { a.axisNames[2] = s }

// SetTitle sets the plot title.
func (a *Axes3D) SetTitle(s string) { a.title = s }

// Title returns the plot title.
func (a *Axes3D) Title() string { return a.title }

// AxisLabels returns the X, Y and Z captions.
func (a *Axes3D) AxisLabels() [3]string { return a.axisNames }

// Lines returns the recorded polylines.
func (a *Axes3D) Lines() []Line { return a.lines }

// Markers returns the recorded markers.
func (a *Axes3D) Markers() []Marker { return a.markers }

// Labels returns the recorded text labels.
func (a *Axes3D) Labels() []Label { return a.labels }

// Surfaces returns the recorded surfaces.
func (a *Axes3D) Surfaces() []Surface { return a.surfaces }

// Limits returns the effective X, Y, Z ranges: explicit limits where set,
// otherwise the data bounds.
func (a *Axes3D) Limits() [3]Range {
	var out [3]Range
	auto := a.dataBounds()
	for i := range out {
		if a.limits[i] != nil {
			out[i] = *a.limits[i]
		} else {
			out[i] = auto[i]
		}
	}
	return out
}

var axisLetters = [3]string{"x", "y", "z"}

// dataBounds returns the bounding ranges of everything recorded, padded so
// that each range has a positive span.
func (a *Axes3D) dataBounds() [3]Range {
	lo := [3]float64{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi := [3]float64{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	add := func(p m.Vec3) {
		for i, v := range p.Array() {
			if !finite(v) {
				continue
			}
			lo[i] = math.Min(lo[i], v)
			hi[i] = math.Max(hi[i], v)
		}
	}
	for _, l := range a.lines {
		for _, p := range l.Points {
			add(p)
		}
	}
	for _, mk := range a.markers {
		add(mk.Pos)
	}
	for _, lb := range a.labels {
		add(lb.Pos)
	}
	for _, s := range a.surfaces {
		for i := range s.X {
			for j := range s.X[i] {
				add(m.Vec3{X: s.X[i][j], Y: s.Y[i][j], Z: s.Z[i][j]})
			}
		}
	}

	var out [3]Range
	for i := range out {
		switch {
		case lo[i] > hi[i]:
			out[i] = Range{Min: 0, Max: 1}
		case lo[i] == hi[i]:
			out[i] = Range{Min: lo[i] - 0.5, Max: hi[i] + 0.5}
		default:
			out[i] = Range{Min: lo[i], Max: hi[i]}
		}
	}
	return out
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
