package geometry

import (
	"fmt"
	"math"

	m "github.com/Faultbox/cuboidviz/pkg/math"
)

// DefaultSamples is the number of samples along each parametric direction.
const DefaultSamples = 80

// Grid is a parametric sampling of an ellipsoid surface. X, Y and Z are
// indexed [row][col] where a row holds one v sample and a column one u
// sample, the layout produced by a meshgrid of (u, v).
type Grid struct {
	U, V    []float64
	X, Y, Z [][]float64
}

// SampleSurface samples e on nu points of u over [0, 2π] and nv points of
// v over [0, π].
func SampleSurface(e Ellipsoid, nu, nv int) (*Grid, error) {
	if nu < 2 || nv < 2 {
		return nil, fmt.Errorf("surface grid needs at least 2x2 samples, got %dx%d", nu, nv)
	}
	g := &Grid{
		U: m.Linspace(0, 2*math.Pi, nu),
		V: m.Linspace(0, math.Pi, nv),
		X: make([][]float64, nv),
		Y: make([][]float64, nv),
		Z: make([][]float64, nv),
	}
	for i, v := range g.V {
		g.X[i] = make([]float64, nu)
		g.Y[i] = make([]float64, nu)
		g.Z[i] = make([]float64, nu)
		for j, u := range g.U {
			p := e.Point(u, v)
			g.X[i][j], g.Y[i][j], g.Z[i][j] = p.X, p.Y, p.Z
		}
	}
	return g, nil
}

// Rows returns the number of v samples.
func (g *Grid) Rows() int { return len(g.V) }

// Cols returns the number of u samples.
func (g *Grid) Cols() int { return len(g.U) }

// At returns the sampled point at row i, column j.
func (g *Grid) At(i, j int) m.Vec3 {
	return m.Vec3{X: g.X[i][j], Y: g.Y[i][j], Z: g.Z[i][j]}
}
