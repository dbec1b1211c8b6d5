package primitives

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lampforge/internal/mesh"
)

func TestBoxIsClosedAndOutward(t *testing.T) {
	m, err := Box(-1, 2, 0.7, 3, 3.5, 0.2)
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	assert.Equal(t, 8, m.VertexCount())
	assert.Equal(t, 12, m.TriangleCount())
	assert.Zero(t, mesh.BoundaryEdges(m))
	assert.InDelta(t, 0.5*0.4*3, mesh.SignedVolume(m), 1e-5)
}

func TestHelicalSlabIsClosed(t *testing.T) {
	var sections []Section
	for k := 0; k <= 20; k++ {
		sections = append(sections, Section{
			Y:         float32(k) * 0.5,
			Angle:     float32(k) * 0.1,
			Inner:     4,
			Outer:     4.6,
			HalfWidth: 0.25,
		})
	}
	m, err := Slab(sections)
	require.NoError(t, err)
	assert.Equal(t, 21*4, m.VertexCount())
	assert.Zero(t, mesh.BoundaryEdges(m))
	assert.Greater(t, mesh.SignedVolume(m), 0.0)
}

func TestSlabRejectsBadSections(t *testing.T) {
	_, err := Slab([]Section{{Y: 0, Inner: 1, Outer: 2, HalfWidth: 1}})
	assert.ErrorIs(t, err, mesh.ErrInvalidParameter)

	_, err = Box(0, 1, 0, 2, 1, 0.1)
	assert.ErrorIs(t, err, mesh.ErrInvalidParameter)

	_, err = Box(1, 0, 0, 1, 2, 0.1)
	assert.ErrorIs(t, err, mesh.ErrInvalidParameter)

	_, err = Box(0, 1, 0, 1, 2, 0)
	assert.ErrorIs(t, err, mesh.ErrInvalidParameter)
}

func signedArea(o []Point2) float64 {
	var a float64
	for k := range o {
		p, q := o[k], o[(k+1)%len(o)]
		a += float64(p.U*q.V - q.U*p.V)
	}
	return a / 2
}

func TestDefaultOutlinesAreCounterClockwise(t *testing.T) {
	r := NewRegistry()
	for _, d := range DefaultUnitDefs() {
		o, err := r.Outline(d.Type)
		require.NoError(t, err, d.Type)
		assert.Greater(t, signedArea(o), 0.0, d.Type)
		for _, p := range o {
			assert.LessOrEqual(t, math.Hypot(float64(p.U), float64(p.V)), 1.2, d.Type)
		}
	}
}

func TestHexPrismVolume(t *testing.T) {
	o, err := NewRegistry().Outline(Hex)
	require.NoError(t, err)
	m, err := Prism(o, Placement{Angle: 1.1, Y: 2, Inner: 5, Outer: 5.3, Size: 0.5})
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	assert.Zero(t, mesh.BoundaryEdges(m))
	area := 3 * math.Sqrt(3) / 2 * 0.25
	assert.InEpsilon(t, area*0.3, mesh.SignedVolume(m), 1e-4)
}

func TestStarAndHeartPrismsAreClosed(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{Star, Heart, Perforation} {
		o, err := r.Outline(name)
		require.NoError(t, err)
		m, err := Prism(o, Placement{Angle: -2, Y: 0, Inner: 3, Outer: 3.2, Size: 0.4})
		require.NoError(t, err)
		assert.Zero(t, mesh.BoundaryEdges(m), name)
		assert.Greater(t, mesh.SignedVolume(m), 0.0, name)
	}
}

func TestRegistryDefine(t *testing.T) {
	r := NewRegistry()
	before, err := r.Outline(Star)
	require.NoError(t, err)
	assert.Len(t, before, 10)

	require.NoError(t, r.Define(UnitDef{Type: Star, Points: 6, InnerRatio: 0.5}))
	after, err := r.Outline(Star)
	require.NoError(t, err)
	assert.Len(t, after, 12)

	assert.ErrorIs(t, r.Define(UnitDef{Type: Star, Points: 6, InnerRatio: 1.5}), mesh.ErrInvalidParameter)
	assert.ErrorIs(t, r.Define(UnitDef{Type: Heart, Points: 4}), mesh.ErrInvalidParameter)
	assert.ErrorIs(t, r.Define(UnitDef{Type: "moon", Points: 8}), mesh.ErrUnsupportedShapeType)

	_, err = r.Outline("moon")
	assert.ErrorIs(t, err, mesh.ErrUnsupportedShapeType)
}

func TestParseUnitDefs(t *testing.T) {
	defs, err := ParseUnitDefs([]byte(`
- type: star
  points: 7
  inner_ratio: 0.4
- type: hex
  points: 6
`))
	require.NoError(t, err)
	require.Len(t, defs, 2)
	assert.Equal(t, UnitDef{Type: Star, Points: 7, InnerRatio: 0.4}, defs[0])

	r := NewRegistry()
	for _, d := range defs {
		require.NoError(t, r.Define(d))
	}

	_, err = ParseUnitDefs([]byte("type: [unclosed"))
	assert.Error(t, err)
}
