package mesh

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Stats summarizes a mesh for printability checks and host-side reports.
type Stats struct {
	Vertices      int        `yaml:"vertices"`
	Triangles     int        `yaml:"triangles"`
	Min           [3]float32 `yaml:"min,flow"`
	Max           [3]float32 `yaml:"max,flow"`
	Volume        float64    `yaml:"volume"`
	BoundaryEdges int        `yaml:"boundary_edges"`
	Watertight    bool       `yaml:"watertight"`
}

// Analyze computes Stats for m.
func Analyze(m *Mesh) Stats {
	lo, hi := Bounds(m)
	be := BoundaryEdges(m)
	return Stats{
		Vertices:      m.VertexCount(),
		Triangles:     m.TriangleCount(),
		Min:           lo,
		Max:           hi,
		Volume:        SignedVolume(m),
		BoundaryEdges: be,
		Watertight:    be == 0 && m.TriangleCount() > 0,
	}
}

// Bounds returns the axis-aligned bounding box of the vertices. An empty mesh yields zeros.
func Bounds(m *Mesh) (lo, hi [3]float32) {
	if m.IsEmpty() {
		return lo, hi
	}
	lo = m.Point(0)
	hi = lo
	for i := 1; i < m.VertexCount(); i++ {
		p := m.Point(i)
		for k := 0; k < 3; k++ {
			lo[k] = min(lo[k], p[k])
			hi[k] = max(hi[k], p[k])
		}
	}
	return lo, hi
}

// MaxRadialExtent returns the largest distance of any vertex from the vertical (Y) axis.
func MaxRadialExtent(m *Mesh) float32 {
	var r float64
	for i := 0; i < m.VertexCount(); i++ {
		x, _, z := m.Vertex(i)
		r = math.Max(r, math.Hypot(float64(x), float64(z)))
	}
	return float32(r)
}

// SignedVolume returns the enclosed volume by the divergence theorem. Closed meshes with
// outward winding give a positive value; separate closed parts add up.
func SignedVolume(m *Mesh) float64 {
	var v float64
	for t := 0; t+2 < len(m.Indices); t += 3 {
		a := m.vec(int(m.Indices[t]))
		b := m.vec(int(m.Indices[t+1]))
		c := m.vec(int(m.Indices[t+2]))
		v += r3.Dot(a, r3.Cross(b, c))
	}
	return v / 6
}

type edge struct{ a, b uint32 }

// BoundaryEdges counts directed edges that are not matched by an opposite directed edge.
// A closed, consistently wound mesh has none: every edge is shared by exactly two triangles
// traversing it in opposite directions.
func BoundaryEdges(m *Mesh) int {
	counts := make(map[edge]int, len(m.Indices))
	for t := 0; t+2 < len(m.Indices); t += 3 {
		a, b, c := m.Indices[t], m.Indices[t+1], m.Indices[t+2]
		counts[edge{a, b}]++
		counts[edge{b, c}]++
		counts[edge{c, a}]++
	}
	open := 0
	for e, n := range counts {
		if back := counts[edge{e.b, e.a}]; n > back {
			open += n - back
		}
	}
	return open
}
