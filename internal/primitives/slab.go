package primitives

import (
	"fmt"

	"github.com/chewxy/math32"

	"lampforge/internal/mesh"
)

// Section is one horizontal cross-section of a radial slab: a rectangle at height Y spanning
// Inner..Outer along the radial direction at Angle and ±HalfWidth across it.
type Section struct {
	Y         float32
	Angle     float32
	Inner     float32
	Outer     float32
	HalfWidth float32
}

// corners returns the section rectangle inner-left, outer-left, outer-right, inner-right.
func (s Section) corners() [4][3]float32 {
	sin, cos := math32.Sincos(s.Angle)
	dx, dz := cos, sin
	tx, tz := -sin, cos
	at := func(r, w float32) [3]float32 {
		return [3]float32{dx*r + tx*w, s.Y, dz*r + tz*w}
	}
	return [4][3]float32{
		at(s.Inner, -s.HalfWidth),
		at(s.Outer, -s.HalfWidth),
		at(s.Outer, s.HalfWidth),
		at(s.Inner, s.HalfWidth),
	}
}

// Slab stacks sections bottom to top into one closed solid: the side faces join consecutive
// sections and the first and last sections are capped. Ribs, fins, struts and spokes are all
// slabs; the angle may vary between sections to follow a helix.
func Slab(sections []Section) (*mesh.Mesh, error) {
	if len(sections) < 2 {
		return nil, fmt.Errorf("primitives: %w: slab of %d sections", mesh.ErrInvalidParameter, len(sections))
	}
	for i, s := range sections {
		if !(s.Outer > s.Inner) || !(s.HalfWidth > 0) {
			return nil, fmt.Errorf("primitives: %w: slab section %d spans %v..%v x %v", mesh.ErrInvalidParameter, i, s.Inner, s.Outer, s.HalfWidth)
		}
		if i > 0 && !(s.Y > sections[i-1].Y) {
			return nil, fmt.Errorf("primitives: %w: slab sections must rise, %v after %v", mesh.ErrInvalidParameter, s.Y, sections[i-1].Y)
		}
	}

	m := mesh.New(len(sections)*4, len(sections)*24+12)
	for _, s := range sections {
		for _, c := range s.corners() {
			m.AddPoint(c)
		}
	}
	at := func(k, e int) uint32 {
		return uint32(k*4 + e%4)
	}
	for k := 0; k+1 < len(sections); k++ {
		for e := 0; e < 4; e++ {
			m.AddQuad(at(k, e), at(k+1, e), at(k+1, e+1), at(k, e+1))
		}
	}
	last := len(sections) - 1
	m.AddQuad(at(0, 0), at(0, 1), at(0, 2), at(0, 3))
	m.AddQuad(at(last, 3), at(last, 2), at(last, 1), at(last, 0))
	return m, nil
}

// Box returns a radial slab of constant section between heights y0 and y1.
func Box(y0, y1, angle, inner, outer, halfWidth float32) (*mesh.Mesh, error) {
	return Slab([]Section{
		{Y: y0, Angle: angle, Inner: inner, Outer: outer, HalfWidth: halfWidth},
		{Y: y1, Angle: angle, Inner: inner, Outer: outer, HalfWidth: halfWidth},
	})
}
