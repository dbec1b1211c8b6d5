package shape

import (
	"github.com/chewxy/math32"

	"lampforge/internal/attach"
	"lampforge/internal/profile"
)

// surface implements attach.Surface with one radius function per face.
type surface struct {
	height       float32
	outer, inner func(t, a float32) float32
}

func (s surface) Height() float32            { return s.height }
func (s surface) Outer(t, a float32) float32 { return s.outer(t, a) }
func (s surface) Inner(t, a float32) float32 { return s.inner(t, a) }

// round follows the faces of a swept spec, displaced by f when it is not nil.
func round(outer, inner profile.Spec, f field) surface {
	d := func(t, a float32) float32 {
		if f == nil {
			return 0
		}
		return f(a, t, outer.HeightAt(t))
	}
	return surface{
		height: outer.Height,
		outer:  func(t, a float32) float32 { return outer.OuterRadius(t) + d(t, a) },
		inner:  func(t, a float32) float32 { return inner.InnerRadius(t) + d(t, a) },
	}
}

// polygonal follows the flat faces of a frustum with corners at angles 2πj/sides.
func polygonal(wall profile.Spec, sides int) surface {
	sector := 2 * math32.Pi / float32(sides)
	apothem := math32.Cos(sector / 2)
	onFace := func(r, a float32) float32 {
		u := math32.Mod(a, sector)
		if u < 0 {
			u += sector
		}
		return r * apothem / math32.Cos(u-sector/2)
	}
	return surface{
		height: wall.Height,
		outer:  func(t, a float32) float32 { return onFace(wall.OuterRadius(t), a) },
		inner:  func(t, a float32) float32 { return onFace(wall.InnerRadius(t), a) },
	}
}

// Surface returns the wall that attachments of p are fixed to: the outside face carries the
// pattern and the inside face carries ribs and the fitter spokes. Styles with two walls use the
// outer face of the outermost and the inner face of the innermost.
func (p Params) Surface() attach.Surface {
	wall := p.Wall()
	switch s := p.Style.(type) {
	case GeometricPoly:
		if s.Sides >= 3 {
			return polygonal(wall, s.Sides)
		}
	case Slotted:
		core := s.core(p)
		return round(core, core, nil)
	case DoubleWall:
		return round(wall, s.inner(p), nil)
	case displacer:
		return round(wall, wall, s.field(p))
	}
	return round(wall, wall, nil)
}
