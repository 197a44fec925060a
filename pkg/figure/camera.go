package figure

import (
	"fmt"
	gomath "math"
	"strings"

	m "github.com/Faultbox/cuboidviz/pkg/math"
)

// Projection selects how view space maps to the image plane.
type Projection int

const (
	Orthographic Projection = iota
	Perspective
)

func (p Projection) String() string {
	switch p {
	case Orthographic:
		return "ortho"
	case Perspective:
		return "persp"
	default:
		return "unknown"
	}
}

// ParseProjection accepts "ortho"/"orthographic" and "persp"/"perspective".
func ParseProjection(s string) (Projection, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ortho", "orthographic":
		return Orthographic, nil
	case "persp", "perspective":
		return Perspective, nil
	default:
		return Orthographic, fmt.Errorf("unknown projection %q", s)
	}
}

// Camera orbits the center of the axes box. Angles are in degrees:
// Elevation above the XY plane and Azimuth around the Z axis.
type Camera struct {
	Elevation  float64
	Azimuth    float64
	Projection Projection
	Zoom       float64 // 1 frames the whole box

	// Distance from the box center in normalised box units; only affects
	// the perspective projection.
	Distance float64
}

// Camera limits.
const (
	MinElevation = -90.0
	MaxElevation = 90.0
	MinZoom      = 0.25
	MaxZoom      = 4.0
)

// DefaultCamera returns the classic 3D plot viewpoint.
func DefaultCamera() Camera {
	return Camera{
		Elevation:  30,
		Azimuth:    -60,
		Projection: Orthographic,
		Zoom:       1,
		Distance:   10,
	}
}

// Orbit rotates the camera by the given deltas in degrees. Elevation is
// clamped; azimuth wraps into (-180, 180].
func (c *Camera) Orbit(dAzim, dElev float64) {
	c.Azimuth = wrapDegrees(c.Azimuth + dAzim)
	c.Elevation = m.Clamp(c.Elevation+dElev, MinElevation, MaxElevation)
}

// ZoomBy multiplies the zoom factor by f within [MinZoom, MaxZoom].
func (c *Camera) ZoomBy(f float64) {
	if f <= 0 {
		return
	}
	z := c.Zoom
	if z <= 0 {
		z = 1
	}
	c.Zoom = m.Clamp(z*f, MinZoom, MaxZoom)
}

// Direction returns the unit vector from the box center towards the eye.
func (c Camera) Direction() m.Vec3 {
	// Keep away from the poles so the Z-up look-at basis stays defined.
	elev := m.Clamp(c.Elevation, -89.99, 89.99) * gomath.Pi / 180
	azim := c.Azimuth * gomath.Pi / 180
	return m.Vec3{
		X: gomath.Cos(elev) * gomath.Cos(azim),
		Y: gomath.Cos(elev) * gomath.Sin(azim),
		Z: gomath.Sin(elev),
	}
}

// ViewMatrix returns the look-at matrix for the normalised box.
func (c Camera) ViewMatrix() m.Mat4 {
	dist := c.Distance
	if dist <= 0 {
		dist = 10
	}
	eye := c.Direction().Scale(dist)
	return m.LookAt(eye, m.Vec3{}, m.Vec3{Z: 1})
}

// ProjectionMatrix maps view space to normalised device coordinates so that
// a sphere of radius frameRadius around the box center fills the viewport.
func (c Camera) ProjectionMatrix(frameRadius float64) m.Mat4 {
	zoom := c.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	dist := c.Distance
	if dist <= 0 {
		dist = 10
	}
	r := frameRadius / zoom
	if c.Projection == Perspective {
		fov := 2 * gomath.Atan(r/dist)
		return m.Perspective(fov, 1, 0.01, dist*4)
	}
	return m.Ortho(-r, r, -r, r, 0.01, dist*4)
}

func wrapDegrees(d float64) float64 {
	d = gomath.Mod(d, 360)
	if d > 180 {
		d -= 360
	}
	if d <= -180 {
		d += 360
	}
	return d
}
