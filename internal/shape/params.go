// Package shape turns shade parameters into a shell mesh. Displacement styles sweep the
// silhouette profile and then move its vertices; assembly styles combine several solids.
package shape

import (
	"fmt"

	"lampforge/internal/attach"
	"lampforge/internal/mesh"
	"lampforge/internal/primitives"
	"lampforge/internal/profile"
)

// ProfileSteps is the number of height intervals every shell profile is sampled with.
const ProfileSteps = 60

// Params describes a lamp shade. Lengths are in centimetres, except the fitter diameter.
type Params struct {
	Style        Style
	Silhouette   profile.Silhouette
	Height       float32
	TopRadius    float32
	BottomRadius float32
	Thickness    float32
	Segments     int
	Seed         int64

	Ribs    attach.RibSpec
	Fitter  attach.FitterSpec
	Pattern attach.PatternSpec
	// Units overrides or extends the built-in pattern unit outlines.
	Units []primitives.UnitDef
}

// Wall returns the profile of the main shell.
func (p Params) Wall() profile.Spec {
	return profile.Spec{
		Silhouette:   p.Silhouette,
		Height:       p.Height,
		TopRadius:    p.TopRadius,
		BottomRadius: p.BottomRadius,
		Thickness:    p.Thickness,
	}
}

// Registry returns the pattern unit registry with Units applied.
func (p Params) Registry() (*primitives.Registry, error) {
	reg := primitives.NewRegistry()
	for _, d := range p.Units {
		if err := reg.Define(d); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// Validate checks every field before any mesh is allocated.
func (p Params) Validate() error {
	if p.Style == nil {
		return fmt.Errorf("shape: %w: no style", mesh.ErrUnsupportedShapeType)
	}
	if _, err := ParseKind(string(p.Style.Kind())); err != nil {
		return err
	}
	if p.Segments < 3 {
		return fmt.Errorf("shape: %w: segments %d < 3", mesh.ErrInvalidParameter, p.Segments)
	}
	if err := p.Wall().Validate(ProfileSteps); err != nil {
		return err
	}
	if err := p.Style.check(p); err != nil {
		return err
	}
	if _, open := p.Style.(Lattice); open && (p.Ribs.Enabled() || p.Fitter.Enabled() || p.Pattern.Enabled()) {
		return invalid(KindLattice, "attachments need a continuous wall")
	}
	s := p.Surface()
	if err := p.Ribs.Check(s); err != nil {
		return err
	}
	if err := p.Fitter.Check(s); err != nil {
		return err
	}
	reg, err := p.Registry()
	if err != nil {
		return err
	}
	return p.Pattern.Check(s, reg)
}

// checkReach rejects a negative depth or one that would push the inner wall through the axis.
func (p Params) checkReach(k Kind, depth float32) error {
	if !(depth >= 0) {
		return invalid(k, "depth %v", depth)
	}
	if room := p.Wall().MinRadius(ProfileSteps) - p.Thickness; depth >= room {
		return invalid(k, "depth %v reaches the axis (clearance %v)", depth, room)
	}
	return nil
}

// seedPhase folds a seed into a float32 phase small enough to keep its precision.
func seedPhase(seed int64) float32 {
	return float32(seed % 10007)
}
