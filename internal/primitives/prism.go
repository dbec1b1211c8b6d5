package primitives

import (
	"fmt"

	"github.com/chewxy/math32"

	"lampforge/internal/mesh"
)

// Placement locates a unit outline on a shell: centred at Angle and height Y, extruded along
// the radial direction from Inner to Outer. Size scales the unit outline.
type Placement struct {
	Angle float32
	Y     float32
	Inner float32
	Outer float32
	Size  float32
}

// Prism extrudes a counter-clockwise outline (u across, v up) radially into a closed solid.
// Both caps are fans around the outline centroid, so the outline must be star-shaped about it.
func Prism(outline []Point2, at Placement) (*mesh.Mesh, error) {
	n := len(outline)
	if n < 3 {
		return nil, fmt.Errorf("primitives: %w: outline of %d points", mesh.ErrInvalidParameter, n)
	}
	if !(at.Outer > at.Inner) || !(at.Size > 0) {
		return nil, fmt.Errorf("primitives: %w: prism %v..%v size %v", mesh.ErrInvalidParameter, at.Inner, at.Outer, at.Size)
	}
	sin, cos := math32.Sincos(at.Angle)
	place := func(u, v, r float32) [3]float32 {
		u *= at.Size
		v *= at.Size
		return [3]float32{cos*r - sin*u, at.Y + v, sin*r + cos*u}
	}
	var cu, cv float32
	for _, p := range outline {
		cu += p.U
		cv += p.V
	}
	cu /= float32(n)
	cv /= float32(n)

	m := mesh.New(2*n+2, 12*n)
	ci := m.AddPoint(place(cu, cv, at.Inner))
	co := m.AddPoint(place(cu, cv, at.Outer))
	in := make([]uint32, n)
	out := make([]uint32, n)
	for k, p := range outline {
		in[k] = m.AddPoint(place(p.U, p.V, at.Inner))
		out[k] = m.AddPoint(place(p.U, p.V, at.Outer))
	}
	for k := 0; k < n; k++ {
		next := (k + 1) % n
		m.AddTriangle(ci, in[k], in[next])
		m.AddTriangle(co, out[next], out[k])
		m.AddQuad(in[next], in[k], out[k], out[next])
	}
	return m, nil
}
