package mesh

import (
	"fmt"
	"math"
)

// Mesh is a triangle mesh with flat buffers: Vertices holds 3 floats per vertex (x,y,z),
// Indices 3 per triangle, Normals 3 per vertex once ComputeNormals has run.
// Triangles wind counter-clockwise when seen from outside the solid.
type Mesh struct {
	Vertices []float32
	Indices  []uint32
	Normals  []float32
}

// New returns an empty mesh with room for vcap vertices and icap indices.
func New(vcap, icap int) *Mesh {
	return &Mesh{
		Vertices: make([]float32, 0, vcap*3),
		Indices:  make([]uint32, 0, icap),
	}
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// IsEmpty returns true if the mesh has no geometry.
func (m *Mesh) IsEmpty() bool {
	return len(m.Vertices) == 0
}

// AddVertex appends a vertex and returns its index.
func (m *Mesh) AddVertex(x, y, z float32) uint32 {
	m.Vertices = append(m.Vertices, x, y, z)
	return uint32(len(m.Vertices)/3 - 1)
}

// AddPoint appends p as a vertex and returns its index.
func (m *Mesh) AddPoint(p [3]float32) uint32 {
	return m.AddVertex(p[0], p[1], p[2])
}

// AddTriangle appends one triangle.
func (m *Mesh) AddTriangle(a, b, c uint32) {
	m.Indices = append(m.Indices, a, b, c)
}

// AddQuad appends the quad a-b-c-d as the triangles (a,b,c) and (a,c,d).
func (m *Mesh) AddQuad(a, b, c, d uint32) {
	m.Indices = append(m.Indices, a, b, c, a, c, d)
}

// Vertex returns the position of vertex i.
func (m *Mesh) Vertex(i int) (x, y, z float32) {
	return m.Vertices[i*3], m.Vertices[i*3+1], m.Vertices[i*3+2]
}

// Point returns the position of vertex i as an array.
func (m *Mesh) Point(i int) [3]float32 {
	return [3]float32{m.Vertices[i*3], m.Vertices[i*3+1], m.Vertices[i*3+2]}
}

// SetVertex overwrites the position of vertex i. Topology is untouched.
func (m *Mesh) SetVertex(i int, x, y, z float32) {
	m.Vertices[i*3] = x
	m.Vertices[i*3+1] = y
	m.Vertices[i*3+2] = z
}

// Validate reports whether the buffers describe a consistent triangle list: whole vertices,
// whole triangles, every index in range and no NaN or infinite coordinate.
func (m *Mesh) Validate() error {
	if len(m.Vertices)%3 != 0 {
		return fmt.Errorf("mesh: vertex buffer length %d is not a multiple of 3", len(m.Vertices))
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("mesh: index buffer length %d is not a multiple of 3", len(m.Indices))
	}
	n := uint32(m.VertexCount())
	for i, idx := range m.Indices {
		if idx >= n {
			return fmt.Errorf("mesh: index %d at %d out of range (%d vertices)", idx, i, n)
		}
	}
	for i, v := range m.Vertices {
		f := float64(v)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Errorf("mesh: vertex %d has non-finite coordinate", i/3)
		}
	}
	if len(m.Normals) != 0 && len(m.Normals) != len(m.Vertices) {
		return fmt.Errorf("mesh: %d normals for %d vertices", len(m.Normals)/3, m.VertexCount())
	}
	return nil
}
