package geometry

import (
	"math"

	m "github.com/Faultbox/cuboidviz/pkg/math"
)

// K is √3/2, the ratio between each ellipsoid semi-axis and the matching
// cuboid side.
const K = 0.86602540378443864676372317075293618347140262690519

// Ellipsoid is an axis-aligned ellipsoid centered at the origin.
type Ellipsoid struct {
	RX, RY, RZ float64
}

// Circumscribe returns the minimal-volume axis-aligned ellipsoid through all
// eight vertices of c.
func Circumscribe(c Cuboid) Ellipsoid {
	return Ellipsoid{RX: K * c.A, RY: K * c.B, RZ: K * c.C}
}

// Radii returns the semi-axes as a vector.
func (e Ellipsoid) Radii() m.Vec3 {
	return m.Vec3{X: e.RX, Y: e.RY, Z: e.RZ}
}

// Eval returns x²/rx² + y²/ry² + z²/rz². Points on the surface give 1.
func (e Ellipsoid) Eval(p m.Vec3) float64 {
	x, y, z := p.X/e.RX, p.Y/e.RY, p.Z/e.RZ
	return x*x + y*y + z*z
}

// Contains reports whether p lies inside or on the surface, with a relative
// tolerance tol on the ellipsoid equation.
func (e Ellipsoid) Contains(p m.Vec3, tol float64) bool {
	return e.Eval(p) <= 1+tol
}

// Point maps the parametric angles (u in [0, 2π], v in [0, π]) to the surface.
func (e Ellipsoid) Point(u, v float64) m.Vec3 {
	sv := math.Sin(v)
	return m.Vec3{
		X: e.RX * sv * math.Cos(u),
		Y: e.RY * sv * math.Sin(u),
		Z: e.RZ * math.Cos(v),
	}
}

// Volume returns 4/3·π·rx·ry·rz.
func (e Ellipsoid) Volume() float64 {
	return 4.0 / 3.0 * math.Pi * e.RX * e.RY * e.RZ
}

// IsSphere reports whether all semi-axes agree within a relative tolerance.
func (e Ellipsoid) IsSphere(tol float64) bool {
	hi := math.Max(e.RX, math.Max(e.RY, e.RZ))
	lo := math.Min(e.RX, math.Min(e.RY, e.RZ))
	return hi-lo <= tol*hi
}
