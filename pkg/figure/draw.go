package figure

import (
	"image/color"
	"math"
	"sort"

	m "github.com/Faultbox/cuboidviz/pkg/math"
)

// Axes box styling.
var (
	paneFill   = color.NRGBA{R: 0xf2, G: 0xf2, B: 0xf2, A: 0x80}
	paneEdge   = color.NRGBA{R: 0xd0, G: 0xd0, B: 0xd0, A: 0xff}
	gridColor  = color.NRGBA{R: 0xd6, G: 0xd6, B: 0xd6, A: 0xff}
	axisColor  = color.NRGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff}
	lightDir   = m.Vec3{X: -0.5, Y: -1, Z: 1.5}.Normalize()
	tickLength = 4.0 // pixels
)

// Draw paints the figure onto c: background, axes box, surfaces (back to
// front), lines, markers, labels and the title, in that order.
func (f *Figure) Draw(c Canvas) error {
	if f.Width <= 0 || f.Height <= 0 {
		return ErrEmptyFigure
	}
	p := f.projector()

	c.Clear(orDefault(f.Background, White))
	f.drawPanes(c, p)
	f.drawAxisEdges(c, p)
	f.drawSurfaces(c, p)
	f.drawLines(c, p)
	f.drawMarkers(c, p)
	f.drawLabels(c, p)
	f.drawTitle(c)
	return nil
}

func (f *Figure) drawPanes(c Canvas, p projector) {
	for axis := 0; axis < 3; axis++ {
		j, k := otherAxes(axis)
		back := p.backSide(axis)

		corners := [4]m.Vec3{
			boxPoint(axis, back, j, -0.5, k, -0.5),
			boxPoint(axis, back, j, 0.5, k, -0.5),
			boxPoint(axis, back, j, 0.5, k, 0.5),
			boxPoint(axis, back, j, -0.5, k, 0.5),
		}
		pts := make([]m.Vec2, 0, 4)
		for _, corner := range corners {
			s, _ := p.projectBox(corner)
			pts = append(pts, s)
		}
		c.Polygon(pts, paneFill, paneEdge, 1)

		// Grid lines across the pane at the ticks of both in-plane axes.
		for _, pair := range [2][2]int{{j, k}, {k, j}} {
			along, across := pair[0], pair[1]
			lim := p.limits[along]
			for _, t := range Ticks(lim.Min, lim.Max, MaxTicks) {
				tn := (t - lim.Center()) / lim.Span()
				a, _ := p.projectBox(boxPoint(axis, back, along, tn, across, -0.5))
				b, _ := p.projectBox(boxPoint(axis, back, along, tn, across, 0.5))
				c.Polyline([]m.Vec2{a, b}, gridColor, 0.8)
			}
		}
	}
}

// axisEdge returns the unit-box endpoints of the edge that carries the ticks
// for axis. X and Y sit on the floor pane along its front edges; Z uses the
// vertical edge that lands furthest left on screen.
func (p projector) axisEdge(axis int) (m.Vec3, m.Vec3) {
	floor := p.backSide(2)
	switch axis {
	case 0:
		y := -p.backSide(1)
		return m.Vec3{X: -0.5, Y: y, Z: floor}, m.Vec3{X: 0.5, Y: y, Z: floor}
	case 1:
		x := -p.backSide(0)
		return m.Vec3{X: x, Y: -0.5, Z: floor}, m.Vec3{X: x, Y: 0.5, Z: floor}
	}
	best := m.Vec3{}
	bestX := math.Inf(1)
	for _, x := range []float64{-0.5, 0.5} {
		for _, y := range []float64{-0.5, 0.5} {
			s, _ := p.projectBox(m.Vec3{X: x, Y: y})
			if s.X < bestX {
				bestX, best = s.X, m.Vec3{X: x, Y: y}
			}
		}
	}
	return m.Vec3{X: best.X, Y: best.Y, Z: -0.5}, m.Vec3{X: best.X, Y: best.Y, Z: 0.5}
}

func (f *Figure) drawAxisEdges(c Canvas, p projector) {
	boxCenter, _ := p.projectBox(m.Vec3{})
	tickPx := f.pt(f.TickSize)
	names := f.axes.axisNames

	for axis := 0; axis < 3; axis++ {
		from, to := p.axisEdge(axis)
		a, _ := p.projectBox(from)
		b, _ := p.projectBox(to)
		c.Polyline([]m.Vec2{a, b}, axisColor, 1)

		mid := a.Add(b).Scale(0.5)
		out := mid.Sub(boxCenter).Normalize()
		if out == (m.Vec2{}) {
			out = m.Vec2{Y: 1}
		}

		lim := p.limits[axis]
		for _, t := range Ticks(lim.Min, lim.Max, MaxTicks) {
			tn := (t - lim.Center()) / lim.Span()
			pt := from
			switch axis {
			case 0:
				pt.X = tn
			case 1:
				pt.Y = tn
			default:
				pt.Z = tn
			}
			s, _ := p.projectBox(pt)
			c.Polyline([]m.Vec2{s, s.Add(out.Scale(tickLength))}, axisColor, 1)
			labelAt := s.Add(out.Scale(tickLength + tickPx*1.2))
			c.Text(labelAt, FormatTick(t), tickPx, axisColor, Anchor{H: AlignCenter, V: AlignMiddle})
		}

		if names[axis] != "" {
			at := mid.Add(out.Scale(tickLength + tickPx*3.4))
			c.Text(at, names[axis], tickPx*1.25, Black, Anchor{H: AlignCenter, V: AlignMiddle})
		}
	}
}

type patch struct {
	pts    []m.Vec2
	depth  float64
	fill   color.NRGBA
	stroke color.Color
	width  float64
}

// drawSurfaces splits every surface into stride-sized patches, shades them
// by their normal and paints them from farthest to nearest.
func (f *Figure) drawSurfaces(c Canvas, p projector) {
	var patches []patch
	for _, s := range f.axes.surfaces {
		patches = append(patches, f.surfacePatches(s, p)...)
	}
	sort.SliceStable(patches, func(i, j int) bool {
		return patches[i].depth > patches[j].depth
	})
	for _, pa := range patches {
		c.Polygon(pa.pts, pa.fill, pa.stroke, pa.width)
	}
}

func (f *Figure) surfacePatches(s Surface, p projector) []patch {
	rows := m.StrideIndices(len(s.X), s.Style.RStride)
	cols := m.StrideIndices(len(s.X[0]), s.Style.CStride)
	base := withAlpha(orDefault(s.Style.Color, SurfaceBlue), s.Style.Alpha)

	at := func(i, j int) m.Vec3 {
		return p.normalize(m.Vec3{X: s.X[i][j], Y: s.Y[i][j], Z: s.Z[i][j]})
	}

	var stroke color.Color
	width := 0.0
	if s.Style.EdgeWidth > 0 {
		stroke = orDefault(s.Style.EdgeColor, Black)
		width = f.pt(s.Style.EdgeWidth)
	}

	var out []patch
	for ri := 0; ri+1 < len(rows); ri++ {
		for ci := 0; ci+1 < len(cols); ci++ {
			r0, r1 := rows[ri], rows[ri+1]
			c0, c1 := cols[ci], cols[ci+1]

			boundary := patchBoundary(r0, r1, c0, c1)
			pts := make([]m.Vec2, 0, len(boundary))
			depth := 0.0
			for _, rc := range boundary {
				sp, d := p.projectBox(at(rc[0], rc[1]))
				pts = append(pts, sp)
				depth += d
			}
			depth /= float64(len(boundary))

			normal := at(r1, c1).Sub(at(r0, c0)).Cross(at(r0, c1).Sub(at(r1, c0))).Normalize()
			k := 0.55 + 0.45*math.Abs(normal.Dot(lightDir))

			out = append(out, patch{pts: pts, depth: depth, fill: shade(base, k), stroke: stroke, width: width})
		}
	}
	return out
}

// patchBoundary walks the outline of the grid block [r0..r1]x[c0..c1]
// through every sample on its border.
func patchBoundary(r0, r1, c0, c1 int) [][2]int {
	var out [][2]int
	for c := c0; c <= c1; c++ {
		out = append(out, [2]int{r0, c})
	}
	for r := r0 + 1; r <= r1; r++ {
		out = append(out, [2]int{r, c1})
	}
	for c := c1 - 1; c >= c0; c-- {
		out = append(out, [2]int{r1, c})
	}
	for r := r1 - 1; r > r0; r-- {
		out = append(out, [2]int{r, c0})
	}
	return out
}

func (f *Figure) drawLines(c Canvas, p projector) {
	for _, l := range f.axes.lines {
		if len(l.Points) < 2 {
			continue
		}
		pts := make([]m.Vec2, len(l.Points))
		for i, v := range l.Points {
			pts[i], _ = p.project(v)
		}
		c.Polyline(pts, orDefault(l.Style.Color, Black), f.pt(orWidth(l.Style.Width)))
	}
}

func (f *Figure) drawMarkers(c Canvas, p projector) {
	for _, mk := range f.axes.markers {
		s, _ := p.project(mk.Pos)
		size := mk.Style.Size
		if size <= 0 {
			size = 20
		}
		c.Circle(s, f.pt(math.Sqrt(size)/2), orDefault(mk.Style.Color, Red))
	}
}

func (f *Figure) drawLabels(c Canvas, p projector) {
	for _, lb := range f.axes.labels {
		s, _ := p.project(lb.Pos)
		size := lb.Style.Size
		if size <= 0 {
			size = 10
		}
		c.Text(s, lb.Text, f.pt(size), orDefault(lb.Style.Color, Black), Anchor{H: AlignLeft, V: AlignBaseline})
	}
}

func (f *Figure) drawTitle(c Canvas) {
	title := f.axes.title
	if title == "" {
		return
	}
	size := f.pt(f.TitleSize)
	c.Text(m.Vec2{X: float64(f.Width) / 2, Y: size * 1.25}, title, size, Black, Anchor{H: AlignCenter, V: AlignMiddle})
}

func orDefault(c, def color.Color) color.Color {
	if c == nil {
		return def
	}
	return c
}

func orWidth(w float64) float64 {
	if w <= 0 {
		return 1
	}
	return w
}
