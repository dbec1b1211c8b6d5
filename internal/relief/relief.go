// Package relief turns an image into a lithophane: a solid whose thickness follows the image
// darkness, on a flat panel, an arc or a closed cylinder.
package relief

import (
	"github.com/chewxy/math32"

	"lampforge/internal/mesh"
)

// Grid returns the column and row counts for img: Resolution rows and as many columns as the
// aspect ratio asks for, at least 2 (3 around a cylinder).
func (p Params) Grid(img *Image) (gx, gy int) {
	least := 2
	if p.Carrier == Cylinder {
		least = 3
	}
	gy = p.Resolution
	gx = max(least, int(float32(p.Resolution)*img.Aspect()))
	return gx, gy
}

// Depth maps a depth fraction in [0,1] to a relief thickness.
func (p Params) Depth(frac float32) float32 {
	return p.BaseThickness + p.MinThickness + frac*(p.MaxThickness-p.MinThickness)
}

// fraction turns a luminance in [0,1] into a depth fraction: dark is thick unless Inverted.
func (p Params) fraction(lum float32) float32 {
	lum = max(0, min(1, lum))
	if p.Inverted {
		return lum
	}
	return 1 - lum
}

// Build returns the closed relief solid for img. The front grid comes first, then the back grid
// with the same layout. A cylinder shares its first and last column, so it has no side walls.
func Build(img *Image, p Params) (*mesh.Mesh, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := img.validate(); err != nil {
		return nil, err
	}
	src := img
	if r := int(p.Smoothing); r > 0 {
		src = img.Blur(r)
	}
	lum := newLuminance(src, p.Brightness, p.Contrast)

	gx, gy := p.Grid(img)
	wrap := p.Carrier == Cylinder
	cols := gx + 1
	if wrap {
		cols = gx
	}
	rows := gy + 1
	layer := cols * rows

	m := mesh.New(2*layer, 6*(2*gx*gy+2*gx+2*gy))
	place := p.placer()
	for _, front := range []bool{true, false} {
		for iy := 0; iy < rows; iy++ {
			v := float32(iy) / float32(gy)
			for ix := 0; ix < cols; ix++ {
				u := float32(ix) / float32(gx)
				var depth float32
				if front {
					depth = p.Depth(p.fraction(lum.at(u*float32(img.Width-1), (1-v)*float32(img.Height-1))))
				}
				m.AddPoint(place(u, v, depth))
			}
		}
	}

	f := func(ix, iy int) uint32 { return uint32(iy*cols + ix%cols) }
	b := func(ix, iy int) uint32 { return uint32(layer) + f(ix, iy) }
	for iy := 0; iy < gy; iy++ {
		for ix := 0; ix < gx; ix++ {
			m.AddQuad(f(ix, iy), f(ix+1, iy), f(ix+1, iy+1), f(ix, iy+1))
			m.AddQuad(b(ix, iy), b(ix, iy+1), b(ix+1, iy+1), b(ix+1, iy))
		}
	}
	for ix := 0; ix < gx; ix++ {
		m.AddQuad(f(ix, 0), b(ix, 0), b(ix+1, 0), f(ix+1, 0))
		m.AddQuad(f(ix, gy), f(ix+1, gy), b(ix+1, gy), b(ix, gy))
	}
	if !wrap {
		for iy := 0; iy < gy; iy++ {
			m.AddQuad(f(0, iy), f(0, iy+1), b(0, iy+1), b(0, iy))
			m.AddQuad(f(gx, iy), b(gx, iy), b(gx, iy+1), f(gx, iy+1))
		}
	}
	m.ComputeNormals()
	return m, nil
}

// placer maps grid coordinates and a relief depth to a position on the carrier. The back of a
// flat panel lies in z=0. Arcs are shifted so the middle of their back passes through the
// origin; a cylinder stands on the Y axis.
func (p Params) placer() func(u, v, depth float32) [3]float32 {
	if p.Carrier == Flat {
		return func(u, v, depth float32) [3]float32 {
			return [3]float32{(u - 0.5) * p.Width, (v - 0.5) * p.Height, depth}
		}
	}
	span := p.span()
	var shift float32
	if p.Carrier != Cylinder {
		shift = p.CurveRadius
	}
	return func(u, v, depth float32) [3]float32 {
		sin, cos := math32.Sincos((u - 0.5) * span)
		rho := p.CurveRadius + depth
		return [3]float32{rho * sin, (v - 0.5) * p.Height, rho*cos - shift}
	}
}
