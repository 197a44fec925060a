package kernel

import m "github.com/Faultbox/cuboidviz/pkg/math"

// Mesh is a triangle mesh with flat buffers: 3 floats per vertex position,
// 3 floats per vertex normal and 3 indices per triangle.
type Mesh struct {
	Vertices []float32
	Normals  []float32
	Indices  []uint32
}

// VertexCount returns the number of vertices.
func (ms *Mesh) VertexCount() int {
	return len(ms.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (ms *Mesh) TriangleCount() int {
	return len(ms.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (ms *Mesh) IsEmpty() bool {
	return len(ms.Vertices) == 0
}

// Vertex returns vertex i as a vector.
func (ms *Mesh) Vertex(i int) m.Vec3 {
	return m.Vec3{
		X: float64(ms.Vertices[i*3]),
		Y: float64(ms.Vertices[i*3+1]),
		Z: float64(ms.Vertices[i*3+2]),
	}
}

// Bounds returns the component-wise minimum and maximum vertex.
func (ms *Mesh) Bounds() (lo, hi m.Vec3) {
	if ms.IsEmpty() {
		return m.Vec3{}, m.Vec3{}
	}
	lo, hi = ms.Vertex(0), ms.Vertex(0)
	for i := 1; i < ms.VertexCount(); i++ {
		v := ms.Vertex(i)
		lo = m.Vec3{X: min(lo.X, v.X), Y: min(lo.Y, v.Y), Z: min(lo.Z, v.Z)}
		hi = m.Vec3{X: max(hi.X, v.X), Y: max(hi.Y, v.Y), Z: max(hi.Z, v.Z)}
	}
	return lo, hi
}
