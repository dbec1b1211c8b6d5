package shape

import (
	"fmt"

	"lampforge/internal/mesh"
	"lampforge/internal/profile"
	"lampforge/internal/revolve"
)

// Parts validates p and returns the solids of its shell, without attachments.
func Parts(p Params) ([]*mesh.Mesh, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if a, ok := p.Style.(assembler); ok {
		return a.assemble(p)
	}
	pr, err := profile.Build(p.Wall(), ProfileSteps)
	if err != nil {
		return nil, err
	}
	m, err := revolve.Profile(pr, p.Segments)
	if err != nil {
		return nil, err
	}
	switch s := p.Style.(type) {
	case displacer:
		displace(m, p.Height, s.field(p))
	case SpiralTwist:
		twist(m, p.Height, s.TwistAngle)
	default:
		return nil, fmt.Errorf("shape: %w: %s", mesh.ErrUnsupportedShapeType, p.Style.Kind())
	}
	return []*mesh.Mesh{m}, nil
}

// Build returns the shell of p as a single mesh with normals.
func Build(p Params) (*mesh.Mesh, error) {
	parts, err := Parts(p)
	if err != nil {
		return nil, err
	}
	return mesh.Merge(parts...), nil
}
