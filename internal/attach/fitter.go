package attach

import (
	"fmt"

	"lampforge/internal/mesh"
	"lampforge/internal/noise"
	"lampforge/internal/primitives"
	"lampforge/internal/revolve"
)

// FitterType selects the lamp holder mount.
type FitterType string

const (
	FitterNone   FitterType = "none"
	FitterSpider FitterType = "spider"
	FitterUno    FitterType = "uno"
)

// ParseFitterType maps a name to a fitter type. The empty name means no fitter.
func ParseFitterType(name string) (FitterType, error) {
	switch f := FitterType(name); f {
	case "", FitterNone:
		return FitterNone, nil
	case FitterSpider, FitterUno:
		return f, nil
	}
	return "", fmt.Errorf("attach: %w: fitter %q", mesh.ErrUnsupportedShapeType, name)
}

// Spokes returns how many spokes hold the ring.
func (f FitterType) Spokes() int {
	switch f {
	case FitterSpider:
		return 3
	case FitterUno:
		return 4
	}
	return 0
}

const fitterTubeSegments = 12

// FitterSpec describes the holder: a ring of Diameter/20 radius placed Height below the top
// rim, and radial spokes joining it to the wall. Diameter is in millimetres while the shell is
// in centimetres.
type FitterSpec struct {
	Type          FitterType `yaml:"type" toml:"type"`
	Diameter      float32    `yaml:"diameter" toml:"diameter"`
	Height        float32    `yaml:"height" toml:"height"`
	RingThickness float32    `yaml:"ring_thickness" toml:"ring_thickness"`
	SpokeWidth    float32    `yaml:"spoke_width" toml:"spoke_width"`
}

func (f FitterSpec) ringRadius() float32 { return f.Diameter / 20 }

func (f FitterSpec) tube() float32 { return f.RingThickness / 2 }

func (f FitterSpec) t(s Surface) float32 { return 1 - f.Height/s.Height() }

// Enabled reports whether f builds a ring.
func (f FitterSpec) Enabled() bool { return f.Type.Spokes() > 0 }

// Check validates f against the wall it will be attached to.
func (f FitterSpec) Check(s Surface) error {
	if _, err := ParseFitterType(string(f.Type)); err != nil {
		return err
	}
	if !f.Enabled() {
		return nil
	}
	if !noise.Finite(f.Diameter, f.Height, f.RingThickness, f.SpokeWidth) {
		return fmt.Errorf("attach: %w: non-finite fitter %+v", mesh.ErrInvalidParameter, f)
	}
	if !(f.RingThickness > 0) || !(f.SpokeWidth > 0) || !(f.ringRadius() > f.tube()) {
		return fmt.Errorf("attach: %w: fitter diameter %v ring %v spoke %v", mesh.ErrInvalidParameter, f.Diameter, f.RingThickness, f.SpokeWidth)
	}
	if f.Height < f.tube() || f.Height > s.Height()-f.tube() {
		return fmt.Errorf("attach: %w: fitter height %v outside the shell", mesh.ErrInvalidParameter, f.Height)
	}
	t := f.t(s)
	for _, a := range spread(f.Type.Spokes(), 0) {
		if in := s.Inner(t, a); in <= f.ringRadius()+f.tube() {
			return fmt.Errorf("attach: %w: fitter ring %v does not fit inside wall radius %v", mesh.ErrInvalidParameter, f.ringRadius(), in)
		}
	}
	return nil
}

// Fitter builds the ring and its spokes. Spokes start at the ring's tube centre and end
// Overlap beyond the wall's inside face.
func Fitter(s Surface, f FitterSpec, segments int) ([]*mesh.Mesh, error) {
	if err := f.Check(s); err != nil {
		return nil, err
	}
	n := f.Type.Spokes()
	if n == 0 {
		return nil, nil
	}
	y := heightAt(s, f.t(s))
	ring, err := revolve.Torus(y, f.ringRadius(), f.tube(), segments, fitterTubeSegments)
	if err != nil {
		return nil, err
	}
	parts := []*mesh.Mesh{ring}
	for _, a := range spread(n, 0) {
		spoke, err := primitives.Box(y-f.tube(), y+f.tube(), a, f.ringRadius(), s.Inner(f.t(s), a)+Overlap, f.SpokeWidth/2)
		if err != nil {
			return nil, err
		}
		parts = append(parts, spoke)
	}
	return parts, nil
}
