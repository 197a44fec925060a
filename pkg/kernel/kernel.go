// Package kernel builds signed-distance solids for the cuboid and its
// circumscribing ellipsoid on top of github.com/deadsy/sdfx, and
// tessellates them into triangle meshes.
package kernel

import (
	"errors"
	"fmt"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/Faultbox/cuboidviz/pkg/geometry"
	m "github.com/Faultbox/cuboidviz/pkg/math"
)

// DefaultMeshCells is the marching cubes resolution along the longest axis.
const DefaultMeshCells = 100

// ErrNoTriangles is returned when tessellation produces an empty mesh.
var ErrNoTriangles = errors.New("tessellation produced no triangles")

// Solid wraps an sdf.SDF3. The distance is negative inside, zero on the
// surface and positive outside.
type Solid struct {
	s sdf.SDF3
}

// NewCuboid returns the cuboid centered at the origin.
func NewCuboid(c geometry.Cuboid) (*Solid, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	s, err := sdf.Box3D(v3.Vec{X: c.A, Y: c.B, Z: c.C}, 0)
	if err != nil {
		return nil, fmt.Errorf("sdf box: %w", err)
	}
	return &Solid{s: s}, nil
}

// NewEllipsoid returns the ellipsoid centered at the origin: a unit sphere
// scaled by the semi-axes. Off the surface the value is a scaled distance,
// not a Euclidean one; its sign and zero set are exact.
func NewEllipsoid(e geometry.Ellipsoid) (*Solid, error) {
	for _, r := range []float64{e.RX, e.RY, e.RZ} {
		if !(r > 0) {
			return nil, fmt.Errorf("ellipsoid semi-axis %v: %w", r, geometry.ErrInvalidDimension)
		}
	}
	unit, err := sdf.Sphere3D(1)
	if err != nil {
		return nil, fmt.Errorf("sdf sphere: %w", err)
	}
	scale := sdf.Scale3d(v3.Vec{X: e.RX, Y: e.RY, Z: e.RZ})
	return &Solid{s: sdf.Transform3D(unit, scale)}, nil
}

// Evaluate returns the signed distance value at p.
func (s *Solid) Evaluate(p m.Vec3) float64 {
	return s.s.Evaluate(toV3(p))
}

// Contains reports whether p lies inside the solid or within tol of its
// surface.
func (s *Solid) Contains(p m.Vec3, tol float64) bool {
	return s.Evaluate(p) <= tol
}

// BoundingBox returns the axis-aligned bounding box.
func (s *Solid) BoundingBox() (min, max m.Vec3) {
	bb := s.s.BoundingBox()
	return fromV3(bb.Min), fromV3(bb.Max)
}

// Triangles tessellates the solid with marching cubes at the given
// resolution.
func (s *Solid) Triangles(cells int) ([]*sdf.Triangle3, error) {
	if cells < 2 {
		return nil, fmt.Errorf("mesh cells %d: need at least 2", cells)
	}
	tris := render.ToTriangles(s.s, render.NewMarchingCubesUniform(cells))
	if len(tris) == 0 {
		return nil, ErrNoTriangles
	}
	return tris, nil
}

// ToMesh converts the solid to an unindexed triangle mesh.
func (s *Solid) ToMesh(cells int) (*Mesh, error) {
	triangles, err := s.Triangles(cells)
	if err != nil {
		return nil, err
	}

	numVerts := len(triangles) * 3
	vertices := make([]float32, 0, numVerts*3)
	normals := make([]float32, 0, numVerts*3)
	indices := make([]uint32, 0, numVerts)

	for i, tri := range triangles {
		n := tri.Normal()
		for j := 0; j < 3; j++ {
			v := tri[j]
			vertices = append(vertices, float32(v.X), float32(v.Y), float32(v.Z))
			normals = append(normals, float32(n.X), float32(n.Y), float32(n.Z))
			indices = append(indices, uint32(i*3+j))
		}
	}

	return &Mesh{
		Vertices: vertices,
		Normals:  normals,
		Indices:  indices,
	}, nil
}

// SaveSTL tessellates the solid and writes it as binary STL.
func (s *Solid) SaveSTL(path string, cells int) error {
	triangles, err := s.Triangles(cells)
	if err != nil {
		return err
	}
	if err := render.SaveSTL(path, triangles); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// TangencyResiduals evaluates the circumscribing ellipsoid of c at each of
// the cuboid's vertices, in vertex order. Every residual is zero up to
// rounding when the ellipsoid passes through all eight vertices.
func TangencyResiduals(c geometry.Cuboid) ([geometry.VertexCount]float64, error) {
	var out [geometry.VertexCount]float64
	if err := c.Validate(); err != nil {
		return out, err
	}
	e, err := NewEllipsoid(geometry.Circumscribe(c))
	if err != nil {
		return out, err
	}
	for i, v := range c.Vertices() {
		out[i] = e.Evaluate(v)
	}
	return out, nil
}

func toV3(p m.Vec3) v3.Vec {
	return v3.Vec{X: p.X, Y: p.Y, Z: p.Z}
}

func fromV3(p v3.Vec) m.Vec3 {
	return m.Vec3{X: p.X, Y: p.Y, Z: p.Z}
}
