package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleSurfaceShape(t *testing.T) {
	e := Circumscribe(Cuboid{A: 3, B: 4, C: 5})
	g, err := SampleSurface(e, DefaultSamples, DefaultSamples)
	require.NoError(t, err)

	assert.Equal(t, 80, g.Rows())
	assert.Equal(t, 80, g.Cols())
	require.Len(t, g.X, 80)
	for i := range g.X {
		require.Len(t, g.X[i], 80)
		require.Len(t, g.Y[i], 80)
		require.Len(t, g.Z[i], 80)
	}
	assert.Equal(t, 0.0, g.U[0])
	assert.Equal(t, 2*math.Pi, g.U[79])
	assert.Equal(t, math.Pi, g.V[79])
}

func TestSampleSurfacePointsOnEllipsoid(t *testing.T) {
	e := Circumscribe(Cuboid{A: 10, B: 50, C: 1.5})
	g, err := SampleSurface(e, 40, 30)
	require.NoError(t, err)
	for i := 0; i < g.Rows(); i++ {
		for j := 0; j < g.Cols(); j++ {
			assert.InDelta(t, 1.0, e.Eval(g.At(i, j)), 1e-9)
		}
	}
	// Rows share v: the first row is the +Z pole.
	assert.InDelta(t, e.RZ, g.Z[0][17], 1e-12)
}

func TestSampleSurfaceRejectsTinyGrid(t *testing.T) {
	_, err := SampleSurface(Ellipsoid{RX: 1, RY: 1, RZ: 1}, 1, 80)
	assert.Error(t, err)
}

