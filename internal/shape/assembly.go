package shape

import (
	"github.com/chewxy/math32"

	"lampforge/internal/mesh"
	"lampforge/internal/primitives"
	"lampforge/internal/profile"
	"lampforge/internal/revolve"
)

// assembler is implemented by styles that build their own solids instead of displacing the
// swept profile.
type assembler interface {
	assemble(p Params) ([]*mesh.Mesh, error)
}

func (s GeometricPoly) assemble(p Params) ([]*mesh.Mesh, error) {
	m, err := revolve.Frustum(p.Wall(), s.Sides)
	if err != nil {
		return nil, err
	}
	return []*mesh.Mesh{m}, nil
}

// core is the shell the fins stand on: the wall moved SlotDepth toward the axis.
func (s Slotted) core(p Params) profile.Spec {
	c := p.Wall()
	c.Inset = s.SlotDepth
	return c
}

// Fins run from the middle of the core wall out to the silhouette.
func (s Slotted) assemble(p Params) ([]*mesh.Mesh, error) {
	core := s.core(p)
	cp, err := profile.Build(core, ProfileSteps)
	if err != nil {
		return nil, err
	}
	shell, err := revolve.Profile(cp, p.Segments)
	if err != nil {
		return nil, err
	}
	wall := p.Wall()
	parts := []*mesh.Mesh{shell}
	for k := 0; k < s.SlotCount; k++ {
		a := 2 * math32.Pi * float32(k) / float32(s.SlotCount)
		fin, err := primitives.Slab(sections(wall, func(t float32) primitives.Section {
			return primitives.Section{
				Angle:     a,
				Inner:     core.InnerRadius(t) + p.Thickness/2,
				Outer:     wall.OuterRadius(t),
				HalfWidth: s.FinThickness / 2,
			}
		}))
		if err != nil {
			return nil, err
		}
		parts = append(parts, fin)
	}
	return parts, nil
}

// Each of the GridDensity pairs has one strut turning each way. The end rings are as tall as
// a strut is wide.
func (s Lattice) assemble(p Params) ([]*mesh.Mesh, error) {
	wall := p.Wall()
	turn := s.TwistAngle * math32.Pi / 180
	parts := make([]*mesh.Mesh, 0, 2*s.GridDensity+2)
	for k := 0; k < s.GridDensity; k++ {
		base := 2 * math32.Pi * float32(k) / float32(s.GridDensity)
		for _, dir := range []float32{1, -1} {
			strut, err := primitives.Slab(sections(wall, func(t float32) primitives.Section {
				return primitives.Section{
					Angle:     base + dir*t*turn,
					Inner:     wall.InnerRadius(t),
					Outer:     wall.OuterRadius(t),
					HalfWidth: s.StrutWidth / 2,
				}
			}))
			if err != nil {
				return nil, err
			}
			parts = append(parts, strut)
		}
	}
	for _, t := range []float32{0, 1} {
		y := wall.HeightAt(t) + (0.5-t)*s.StrutWidth
		ring, err := revolve.Ring(y, wall.InnerRadius(t), wall.OuterRadius(t), s.StrutWidth, p.Segments)
		if err != nil {
			return nil, err
		}
		parts = append(parts, ring)
	}
	return parts, nil
}

// inner is the nested shell: the wall moved a wall thickness plus the gap toward the axis.
func (s DoubleWall) inner(p Params) profile.Spec {
	in := p.Wall()
	in.Inset = p.Thickness + s.GapDistance
	return in
}

// Struts bridge the gap from the middle of one wall to the middle of the other.
func (s DoubleWall) assemble(p Params) ([]*mesh.Mesh, error) {
	outer, inner := p.Wall(), s.inner(p)
	parts := make([]*mesh.Mesh, 0, 2+s.RibCount)
	for _, spec := range []profile.Spec{outer, inner} {
		pr, err := profile.Build(spec, ProfileSteps)
		if err != nil {
			return nil, err
		}
		shell, err := revolve.Profile(pr, p.Segments)
		if err != nil {
			return nil, err
		}
		parts = append(parts, shell)
	}
	for k := 0; k < s.RibCount; k++ {
		a := 2 * math32.Pi * float32(k) / float32(s.RibCount)
		strut, err := primitives.Slab(sections(outer, func(t float32) primitives.Section {
			return primitives.Section{
				Angle:     a,
				Inner:     inner.OuterRadius(t) - p.Thickness/2,
				Outer:     outer.InnerRadius(t) + p.Thickness/2,
				HalfWidth: p.Thickness / 2,
			}
		}))
		if err != nil {
			return nil, err
		}
		parts = append(parts, strut)
	}
	return parts, nil
}

// sections samples a slab along the full wall height at every profile step.
func sections(wall profile.Spec, at func(t float32) primitives.Section) []primitives.Section {
	out := make([]primitives.Section, ProfileSteps+1)
	for i := range out {
		t := float32(i) / ProfileSteps
		s := at(t)
		s.Y = wall.HeightAt(t)
		out[i] = s
	}
	return out
}
