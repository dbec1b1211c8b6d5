package primitives

import (
	"fmt"

	"github.com/chewxy/math32"

	"lampforge/internal/mesh"
)

// Unit type names.
const (
	Perforation = "perforation"
	Star        = "star"
	Heart       = "heart"
	Hex         = "hex"
)

// DefaultUnitDefs returns the built-in pattern units.
func DefaultUnitDefs() []UnitDef {
	return []UnitDef{
		{Type: Perforation, Points: 16},
		{Type: Star, Points: 5, InnerRatio: 0.45},
		{Type: Heart, Points: 32},
		{Type: Hex, Points: 6},
	}
}

// Registry maps unit type names to outlines. Outlines are built on first use and cached.
// A Registry is not safe for concurrent use; build one per generation.
type Registry struct {
	defs  map[string]UnitDef
	cache map[string][]Point2
}

// NewRegistry returns a registry holding the built-in units.
func NewRegistry() *Registry {
	r := &Registry{
		defs:  make(map[string]UnitDef),
		cache: make(map[string][]Point2),
	}
	for _, d := range DefaultUnitDefs() {
		r.defs[d.Type] = d
	}
	return r
}

// Define adds or replaces a unit definition. Points below the unit's minimum are rejected.
func (r *Registry) Define(d UnitDef) error {
	minPoints := 3
	switch d.Type {
	case Perforation, Hex:
	case Star:
		if d.InnerRatio <= 0 || d.InnerRatio >= 1 {
			return fmt.Errorf("primitives: %w: star inner ratio %v", mesh.ErrInvalidParameter, d.InnerRatio)
		}
	case Heart:
		minPoints = 8
	default:
		return fmt.Errorf("primitives: %w: unit %q", mesh.ErrUnsupportedShapeType, d.Type)
	}
	if d.Points < minPoints {
		return fmt.Errorf("primitives: %w: unit %q with %d points", mesh.ErrInvalidParameter, d.Type, d.Points)
	}
	r.defs[d.Type] = d
	delete(r.cache, d.Type)
	return nil
}

// Outline returns the counter-clockwise outline of the named unit, scaled to a unit radius.
func (r *Registry) Outline(name string) ([]Point2, error) {
	if o, ok := r.cache[name]; ok {
		return o, nil
	}
	d, ok := r.defs[name]
	if !ok {
		return nil, fmt.Errorf("primitives: %w: unit %q", mesh.ErrUnsupportedShapeType, name)
	}
	var o []Point2
	switch d.Type {
	case Perforation, Hex:
		o = polygon(d.Points, 1, 1)
	case Star:
		o = polygon(2*d.Points, 1, d.InnerRatio)
	case Heart:
		o = heart(d.Points)
	}
	r.cache[name] = o
	return o, nil
}

// polygon returns n points around the origin starting straight up, alternating radius a
// (even points) and b (odd points).
func polygon(n int, a, b float32) []Point2 {
	out := make([]Point2, n)
	for k := range out {
		r := a
		if k%2 == 1 {
			r = b
		}
		s, c := math32.Sincos(math32.Pi/2 + 2*math32.Pi*float32(k)/float32(n))
		out[k] = Point2{U: r * c, V: r * s}
	}
	return out
}

// heart samples the classic parametric heart, mirrored so it runs counter-clockwise and
// shifted so its bounding box is roughly centred.
func heart(n int) []Point2 {
	out := make([]Point2, n)
	for k := range out {
		t := 2 * math32.Pi * float32(k) / float32(n)
		s := math32.Sin(t)
		v := 13*math32.Cos(t) - 5*math32.Cos(2*t) - 2*math32.Cos(3*t) - math32.Cos(4*t)
		out[k] = Point2{U: -s * s * s, V: v/16 + 0.15}
	}
	return out
}
