package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/Faultbox/cuboidviz/pkg/math"
)

var sampleCuboids = []Cuboid{
	{A: 2, B: 2, C: 2},
	{A: 3, B: 4, C: 5},
	{A: 10, B: 50, C: 1.5},
	{A: 1e-3, B: 7, C: 1e3},
	{A: 0.1, B: 0.2, C: 0.3},
}

func TestKIsHalfRootThree(t *testing.T) {
	assert.InDelta(t, math.Sqrt(3)/2, K, 1e-15)
}

func TestSemiAxisRatios(t *testing.T) {
	for _, c := range sampleCuboids {
		e := Circumscribe(c)
		assert.InDelta(t, K, e.RX/c.A, 1e-12)
		assert.InDelta(t, K, e.RY/c.B, 1e-12)
		assert.InDelta(t, K, e.RZ/c.C, 1e-12)
	}
}

func TestVerticesLieOnEllipsoid(t *testing.T) {
	for _, c := range sampleCuboids {
		e := Circumscribe(c)
		for i, v := range c.Vertices() {
			assert.InEpsilon(t, 1.0, e.Eval(v), 1e-9, "cuboid %v vertex %d", c, i)
			assert.True(t, e.Contains(v, 1e-9))
		}
	}
}

func TestCubeGivesSphere(t *testing.T) {
	for _, a := range []float64{0.5, 2, 7.25} {
		c := Cuboid{A: a, B: a, C: a}
		e := Circumscribe(c)
		assert.True(t, e.IsSphere(1e-12))
		assert.InDelta(t, c.SpaceDiagonal()/2, e.RX, 1e-12)
		assert.InDelta(t, a*math.Sqrt(3)/2, e.RX, 1e-12)
	}
}

func TestScenarioCubeOfTwo(t *testing.T) {
	c, err := NewCuboid(2, 2, 2)
	require.NoError(t, err)
	e := Circumscribe(c)
	assert.InDelta(t, 1.7320508, e.RX, 1e-7)
	assert.InDelta(t, 1.7320508, e.RY, 1e-7)
	assert.InDelta(t, 1.7320508, e.RZ, 1e-7)

	v0 := c.Vertices()[0]
	assert.Equal(t, m.Vec3{X: -1, Y: -1, Z: -1}, v0)
	assert.InDelta(t, 1.0, e.Eval(v0), 1e-12)
}

func TestScenarioThreeFourFive(t *testing.T) {
	e := Circumscribe(Cuboid{A: 3, B: 4, C: 5})
	assert.InDelta(t, 2.598, e.RX, 1e-3)
	assert.InDelta(t, 3.4641, e.RY, 1e-4)
	assert.InDelta(t, 4.3301, e.RZ, 1e-4)
}

func TestContainsRejectsOutsidePoint(t *testing.T) {
	e := Circumscribe(Cuboid{A: 2, B: 2, C: 2})
	assert.False(t, e.Contains(m.Vec3{X: 2, Y: 0, Z: 0}, 1e-9))
	assert.True(t, e.Contains(m.Vec3{}, 0))
}

func TestEllipsoidVolumeRatio(t *testing.T) {
	c := Cuboid{A: 3, B: 4, C: 5}
	e := Circumscribe(c)
	// (4/3)·π·K³ = (√3/2)·π
	assert.InDelta(t, math.Sqrt(3)/2*math.Pi, e.Volume()/c.Volume(), 1e-12)
}

// Shrinking one semi-axis while keeping a vertex on the surface must grow
// the volume, which is what makes K the minimum.
func TestCircumscribedVolumeIsMinimal(t *testing.T) {
	c := Cuboid{A: 3, B: 4, C: 5}
	h := c.HalfExtents()
	best := Circumscribe(c).Volume()
	for _, fx := range []float64{0.2, 0.3, 0.4, 0.5} {
		for _, fy := range []float64{0.2, 0.3, 0.4} {
			fz := 1 - fx - fy
			if fz <= 0 {
				continue
			}
			alt := Ellipsoid{RX: h.X / math.Sqrt(fx), RY: h.Y / math.Sqrt(fy), RZ: h.Z / math.Sqrt(fz)}
			assert.InDelta(t, 1.0, alt.Eval(h), 1e-12)
			assert.GreaterOrEqual(t, alt.Volume(), best-1e-9)
		}
	}
}

func TestPointParametrization(t *testing.T) {
	e := Ellipsoid{RX: 1, RY: 2, RZ: 3}
	assert.InDelta(t, 3.0, e.Point(0, 0).Z, 1e-12)
	assert.InDelta(t, -3.0, e.Point(0, math.Pi).Z, 1e-12)
	p := e.Point(math.Pi/2, math.Pi/2)
	assert.InDelta(t, 0.0, p.X, 1e-12)
	assert.InDelta(t, 2.0, p.Y, 1e-12)
}
