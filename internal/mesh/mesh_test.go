package mesh

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tetra returns the unit corner tetrahedron offset by dx along X.
func tetra(dx float32) *Mesh {
	m := New(4, 12)
	o := m.AddVertex(dx, 0, 0)
	x := m.AddVertex(dx+1, 0, 0)
	y := m.AddVertex(dx, 1, 0)
	z := m.AddVertex(dx, 0, 1)
	m.AddTriangle(o, y, x)
	m.AddTriangle(o, x, z)
	m.AddTriangle(o, z, y)
	m.AddTriangle(x, y, z)
	return m
}

func TestBuildersAndCounts(t *testing.T) {
	m := New(4, 6)
	a := m.AddVertex(0, 0, 0)
	b := m.AddVertex(1, 0, 0)
	c := m.AddVertex(1, 1, 0)
	d := m.AddPoint([3]float32{0, 1, 0})
	m.AddQuad(a, b, c, d)

	assert.Equal(t, 4, m.VertexCount())
	assert.Equal(t, 2, m.TriangleCount())
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, m.Indices)

	m.SetVertex(2, 2, 2, 2)
	x, y, z := m.Vertex(2)
	assert.Equal(t, [3]float32{2, 2, 2}, [3]float32{x, y, z})
	require.NoError(t, m.Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Mesh)
	}{
		{"index out of range", func(m *Mesh) { m.Indices[0] = 99 }},
		{"partial triangle", func(m *Mesh) { m.Indices = m.Indices[:len(m.Indices)-1] }},
		{"partial vertex", func(m *Mesh) { m.Vertices = append(m.Vertices, 1) }},
		{"nan coordinate", func(m *Mesh) { m.Vertices[4] = float32(math.NaN()) }},
		{"normal count mismatch", func(m *Mesh) { m.Normals = []float32{0, 1, 0} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tetra(0)
			tt.mutate(m)
			assert.Error(t, m.Validate())
		})
	}
}

func TestMergeOffsetsIndices(t *testing.T) {
	a, b := tetra(0), tetra(3)
	merged := Merge(a, nil, b)

	require.NoError(t, merged.Validate())
	assert.Equal(t, 8, merged.VertexCount())
	assert.Equal(t, 8, merged.TriangleCount())
	for i, idx := range merged.Indices[12:] {
		assert.Equal(t, tetra(3).Indices[i]+4, idx)
	}
	assert.Len(t, merged.Normals, len(merged.Vertices))
}

func TestAnalyzeClosedTetrahedra(t *testing.T) {
	merged := Merge(tetra(0), tetra(3))
	s := Analyze(merged)

	assert.InDelta(t, 2.0/6.0, s.Volume, 1e-9)
	assert.Zero(t, s.BoundaryEdges)
	assert.True(t, s.Watertight)
	assert.Equal(t, [3]float32{0, 0, 0}, s.Min)
	assert.Equal(t, [3]float32{4, 1, 1}, s.Max)
}

func TestBoundaryEdgesOpenSurface(t *testing.T) {
	m := tetra(0)
	m.Indices = m.Indices[:9] // drop the slanted face
	assert.Equal(t, 3, BoundaryEdges(m))
	assert.False(t, Analyze(m).Watertight)
}

func TestComputeNormalsUnitLength(t *testing.T) {
	m := tetra(0)
	m.ComputeNormals()
	for i := 0; i < m.VertexCount(); i++ {
		n := m.Normals[i*3 : i*3+3]
		l := math.Sqrt(float64(n[0]*n[0] + n[1]*n[1] + n[2]*n[2]))
		assert.InDelta(t, 1, l, 1e-5)
	}
	// the origin corner touches three axis faces, its normal points away from the solid
	assert.Less(t, m.Normals[0], float32(0))
	assert.Less(t, m.Normals[1], float32(0))
	assert.Less(t, m.Normals[2], float32(0))
}

func TestMaxRadialExtent(t *testing.T) {
	m := New(2, 0)
	m.AddVertex(3, 10, 4)
	m.AddVertex(-1, -10, 0)
	assert.InDelta(t, 5, MaxRadialExtent(m), 1e-6)
}

func TestSentinelsAreDistinct(t *testing.T) {
	assert.False(t, errors.Is(ErrInvalidParameter, ErrUnsupportedShapeType))
	assert.False(t, errors.Is(ErrUnsupportedCarrierType, ErrUnsupportedShapeType))
}
