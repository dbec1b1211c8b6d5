package attach

import (
	"fmt"

	"github.com/chewxy/math32"

	"lampforge/internal/mesh"
	"lampforge/internal/noise"
	"lampforge/internal/primitives"
)

// PatternNone disables surface patterns.
const PatternNone = "none"

// embed is how far a pattern unit sinks below the outside face.
const embed float32 = 0.05

// PatternSpec describes raised units projected onto the outside face. Density is the number of
// columns around the shell; rows are chosen so the grid spacing is close to square. Scale sizes
// each unit relative to that spacing and Depth is how far it stands off the wall.
type PatternSpec struct {
	Type    string  `yaml:"type" toml:"type"`
	Density int     `yaml:"density" toml:"density"`
	Scale   float32 `yaml:"scale" toml:"scale"`
	Depth   float32 `yaml:"depth" toml:"depth"`
}

// Enabled reports whether p places any units.
func (p PatternSpec) Enabled() bool { return p.Type != "" && p.Type != PatternNone }

// Check validates p. Unit types are resolved against reg.
func (p PatternSpec) Check(s Surface, reg *primitives.Registry) error {
	if !p.Enabled() {
		return nil
	}
	if _, err := reg.Outline(p.Type); err != nil {
		return err
	}
	if p.Density < 1 || !(p.Scale > 0) || p.Scale > 1 || !(p.Depth > 0) || !noise.Finite(p.Depth) {
		return fmt.Errorf("attach: %w: pattern density %d scale %v depth %v", mesh.ErrInvalidParameter, p.Density, p.Scale, p.Depth)
	}
	return nil
}

// cell is one placement in the pattern grid.
type cell struct {
	t, angle float32
}

// layout returns the grid cells and the unit size. Odd rows are offset by half a column.
func (p PatternSpec) layout(s Surface) ([]cell, float32) {
	cols := p.Density
	around := 2 * math32.Pi * s.Outer(0.5, 0) / float32(cols)
	rows := int(s.Height() / around)
	if rows < 1 {
		rows = 1
	}
	up := s.Height() / float32(rows)

	cells := make([]cell, 0, rows*cols)
	for r := 0; r < rows; r++ {
		t := (float32(r) + 0.5) / float32(rows)
		shift := float32(r%2) * 0.5
		for c := 0; c < cols; c++ {
			cells = append(cells, cell{t: t, angle: 2 * math32.Pi * (float32(c) + shift) / float32(cols)})
		}
	}
	return cells, p.Scale * 0.4 * math32.Min(around, up)
}

// Pattern builds one prism per grid cell, reaching from just below the outside face to Depth
// beyond it.
func Pattern(s Surface, p PatternSpec, reg *primitives.Registry) ([]*mesh.Mesh, error) {
	if err := p.Check(s, reg); err != nil {
		return nil, err
	}
	if !p.Enabled() {
		return nil, nil
	}
	outline, err := reg.Outline(p.Type)
	if err != nil {
		return nil, err
	}
	cells, size := p.layout(s)
	parts := make([]*mesh.Mesh, 0, len(cells))
	for _, c := range cells {
		r := s.Outer(c.t, c.angle)
		unit, err := primitives.Prism(outline, primitives.Placement{
			Angle: c.angle,
			Y:     heightAt(s, c.t),
			Inner: r - embed,
			Outer: r + p.Depth,
			Size:  size,
		})
		if err != nil {
			return nil, err
		}
		parts = append(parts, unit)
	}
	return parts, nil
}
