package geometry

import (
	"math"

	m "github.com/Faultbox/cuboidviz/pkg/math"
)

// Cuboid is an axis-aligned box centered at the origin with side lengths
// A, B, C along X, Y, Z.
type Cuboid struct {
	A, B, C float64
}

// NewCuboid validates the side lengths and returns the cuboid.
func NewCuboid(a, b, c float64) (Cuboid, error) {
	for _, side := range []struct {
		axis  string
		value float64
	}{{"a", a}, {"b", b}, {"c", c}} {
		if !validSide(side.value) {
			return Cuboid{}, &DimensionError{Axis: side.axis, Value: side.value}
		}
	}
	return Cuboid{A: a, B: b, C: c}, nil
}

// validSide also rejects the smallest subnormals, whose half-length rounds
// to zero and would collapse the box onto a plane.
func validSide(v float64) bool {
	return v > 0 && v/2 > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// Validate re-checks a cuboid built as a literal.
func (c Cuboid) Validate() error {
	_, err := NewCuboid(c.A, c.B, c.C)
	return err
}

// HalfExtents returns (a/2, b/2, c/2).
func (c Cuboid) HalfExtents() m.Vec3 {
	return m.Vec3{X: c.A / 2, Y: c.B / 2, Z: c.C / 2}
}

// MaxSide returns max(a, b, c).
func (c Cuboid) MaxSide() float64 {
	return math.Max(c.A, math.Max(c.B, c.C))
}

// Volume returns a·b·c.
func (c Cuboid) Volume() float64 {
	return c.A * c.B * c.C
}

// SpaceDiagonal returns the length of the diagonal between opposite vertices.
func (c Cuboid) SpaceDiagonal() float64 {
	return math.Sqrt(c.A*c.A + c.B*c.B + c.C*c.C)
}

// VertexCount is the number of cuboid corners.
const VertexCount = 8

// SignsOf returns the sign triple of vertex i. The enumeration runs the
// x sign in the outer loop, then y, then z, each over {-1, +1}, so vertex 0
// is (-,-,-), vertex 1 is (-,-,+) and vertex 7 is (+,+,+).
func SignsOf(i int) (sx, sy, sz float64) {
	sign := func(bit int) float64 {
		if i&bit != 0 {
			return 1
		}
		return -1
	}
	return sign(4), sign(2), sign(1)
}

// Vertices returns the eight corners in the fixed enumeration order.
func (c Cuboid) Vertices() [VertexCount]m.Vec3 {
	h := c.HalfExtents()
	var out [VertexCount]m.Vec3
	for i := range out {
		sx, sy, sz := SignsOf(i)
		out[i] = m.Vec3{X: sx * h.X, Y: sy * h.Y, Z: sz * h.Z}
	}
	return out
}

// Edges lists the twelve wireframe edges as vertex index pairs. Each pair
// differs in exactly one sign, so every vertex has exactly three neighbours.
var Edges = [12][2]int{
	{0, 1}, {0, 2}, {0, 4},
	{1, 3}, {1, 5},
	{2, 3}, {2, 6},
	{3, 7},
	{4, 5}, {4, 6},
	{5, 7},
	{6, 7},
}

// EdgeSegments returns the endpoints of every edge in Edges order.
func (c Cuboid) EdgeSegments() [12][2]m.Vec3 {
	v := c.Vertices()
	var out [12][2]m.Vec3
	for i, e := range Edges {
		out[i] = [2]m.Vec3{v[e[0]], v[e[1]]}
	}
	return out
}
