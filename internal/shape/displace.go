package shape

import (
	"github.com/chewxy/math32"

	"lampforge/internal/mesh"
	"lampforge/internal/noise"
)

// field is a radial displacement at polar angle a, normalized height t and height y.
type field func(a, t, y float32) float32

// displacer is implemented by styles that move the swept vertices radially.
type displacer interface {
	field(p Params) field
}

func (s RibbedDrum) field(Params) field {
	n := float32(s.RibCount)
	return func(a, _, _ float32) float32 {
		return s.RibDepth * math32.Sin(a*n)
	}
}

func (s WaveShell) field(Params) field {
	f := float32(s.Frequency)
	return func(a, t, _ float32) float32 {
		return s.Amplitude * math32.Sin(a*f+t*2*math32.Pi)
	}
}

func (s PerlinNoise) field(p Params) field {
	seed, k := seedPhase(p.Seed), s.NoiseScale
	return func(a, _, y float32) float32 {
		sin, cos := math32.Sincos(a)
		return s.NoiseStrength * noise.Octaves2(cos*k, y*k, sin*k, seed)
	}
}

// The ridged value is centred so creases cut in as far as ridges stand out.
func (s OrganicCell) field(p Params) field {
	seed, k := seedPhase(p.Seed), s.NoiseScale
	return func(a, _, y float32) float32 {
		sin, cos := math32.Sincos(a)
		return s.NoiseStrength * (noise.Ridged(cos*k, y*k, sin*k, seed) - 0.5)
	}
}

func (s Origami) field(Params) field {
	folds := float32(2 * s.FoldCount)
	return func(a, _, _ float32) float32 {
		u := a / (2 * math32.Pi)
		u -= math32.Floor(u)
		if int(u*folds)%2 == 1 {
			return -s.FoldDepth
		}
		return 0
	}
}

func (s Voronoi) field(p Params) field {
	seed, n := seedPhase(p.Seed), float32(s.CellCount)
	return func(a, t, _ float32) float32 {
		return s.CellDepth * math32.Sin(a*n+seed*0.7) * math32.Cos(t*math32.Pi*n+seed*1.3)
	}
}

// displace moves every vertex of m radially by f. Vertices on the axis are left alone.
func displace(m *mesh.Mesh, height float32, f field) {
	for i := 0; i < m.VertexCount(); i++ {
		x, y, z := m.Vertex(i)
		r := math32.Hypot(x, z)
		if r < 1e-6 {
			continue
		}
		a := math32.Atan2(z, x)
		t := (y + height/2) / height
		scale := (r + f(a, t, y)) / r
		m.SetVertex(i, x*scale, y, z*scale)
	}
}

// twist rotates every vertex about the vertical axis by degrees times its normalized height.
func twist(m *mesh.Mesh, height, degrees float32) {
	rad := degrees * math32.Pi / 180
	for i := 0; i < m.VertexCount(); i++ {
		x, y, z := m.Vertex(i)
		t := (y + height/2) / height
		sin, cos := math32.Sincos(t * rad)
		m.SetVertex(i, x*cos-z*sin, y, x*sin+z*cos)
	}
}
