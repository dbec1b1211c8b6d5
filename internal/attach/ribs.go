package attach

import (
	"fmt"

	"lampforge/internal/mesh"
	"lampforge/internal/noise"
	"lampforge/internal/primitives"
)

// ribSections is the number of height intervals a rib follows the wall with.
const ribSections = 24

// RibSpec describes internal vertical ribs. Count 0 means no ribs.
type RibSpec struct {
	Count int     `yaml:"count" toml:"count"`
	Depth float32 `yaml:"depth" toml:"depth"`
	Width float32 `yaml:"width" toml:"width"`
}

// Enabled reports whether r builds any rib.
func (r RibSpec) Enabled() bool { return r.Count != 0 }

// Check validates r against the wall it will be attached to.
func (r RibSpec) Check(s Surface) error {
	if !r.Enabled() {
		return nil
	}
	if r.Count < 0 {
		return fmt.Errorf("attach: %w: rib count %d", mesh.ErrInvalidParameter, r.Count)
	}
	if !(r.Depth > 0) || !(r.Width > 0) || !noise.Finite(r.Depth, r.Width) {
		return fmt.Errorf("attach: %w: rib depth %v width %v must be positive", mesh.ErrInvalidParameter, r.Depth, r.Width)
	}
	for _, a := range spread(r.Count, 0) {
		for k := 0; k <= ribSections; k++ {
			t := float32(k) / ribSections
			if in := s.Inner(t, a); in-r.Depth <= 0 {
				return fmt.Errorf("attach: %w: rib depth %v reaches the axis at inner radius %v", mesh.ErrInvalidParameter, r.Depth, in)
			}
		}
	}
	return nil
}

// Ribs builds one thin vertical slab per rib at evenly spaced angles. Each slab's outward face
// sits Overlap beyond the wall's inside face and it reaches Depth toward the axis.
func Ribs(s Surface, r RibSpec) ([]*mesh.Mesh, error) {
	if err := r.Check(s); err != nil {
		return nil, err
	}
	parts := make([]*mesh.Mesh, 0, r.Count)
	for _, a := range spread(r.Count, 0) {
		sections := make([]primitives.Section, ribSections+1)
		for k := range sections {
			t := float32(k) / ribSections
			in := s.Inner(t, a)
			sections[k] = primitives.Section{
				Y:         heightAt(s, t),
				Angle:     a,
				Inner:     in - r.Depth,
				Outer:     in + Overlap,
				HalfWidth: r.Width / 2,
			}
		}
		m, err := primitives.Slab(sections)
		if err != nil {
			return nil, err
		}
		parts = append(parts, m)
	}
	return parts, nil
}
