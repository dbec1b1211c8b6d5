// Package engine is the entry point hosts call: one function per generator. Calls are pure and
// independent of each other; every call builds fresh buffers.
package engine

import (
	"fmt"

	"lampforge/internal/attach"
	"lampforge/internal/mesh"
	"lampforge/internal/profile"
	"lampforge/internal/relief"
	"lampforge/internal/revolve"
	"lampforge/internal/shape"
)

// Errors returned by the generators, for errors.Is.
var (
	ErrInvalidParameter       = mesh.ErrInvalidParameter
	ErrUnsupportedShapeType   = mesh.ErrUnsupportedShapeType
	ErrUnsupportedCarrierType = mesh.ErrUnsupportedCarrierType
)

// ShellSegments is the segment count of the fallback shell.
const ShellSegments = 64

// GenerateShapeMesh builds the shade described by p: the style's shell, then internal ribs,
// the fitter and the surface pattern, merged into one mesh with normals.
func GenerateShapeMesh(p shape.Params) (*mesh.Mesh, error) {
	parts, err := shape.Parts(p)
	if err != nil {
		return nil, err
	}
	s := p.Surface()
	ribs, err := attach.Ribs(s, p.Ribs)
	if err != nil {
		return nil, err
	}
	fitter, err := attach.Fitter(s, p.Fitter, p.Segments)
	if err != nil {
		return nil, err
	}
	reg, err := p.Registry()
	if err != nil {
		return nil, err
	}
	pattern, err := attach.Pattern(s, p.Pattern, reg)
	if err != nil {
		return nil, err
	}
	parts = append(parts, ribs...)
	parts = append(parts, fitter...)
	parts = append(parts, pattern...)
	return checked(mesh.Merge(parts...))
}

// GenerateReliefMesh builds the lithophane of img.
func GenerateReliefMesh(img *relief.Image, p relief.Params) (*mesh.Mesh, error) {
	m, err := relief.Build(img, p)
	if err != nil {
		return nil, err
	}
	return checked(m)
}

// GenerateReliefOrShell builds the lithophane of img, or a plain straight shell of the panel's
// height and Width/2 radius when there is no image. The shell wall is as thick as the thinnest
// relief.
func GenerateReliefOrShell(img *relief.Image, p relief.Params) (*mesh.Mesh, error) {
	if img != nil {
		return GenerateReliefMesh(img, p)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	spec := profile.Spec{
		Silhouette:   profile.Straight,
		Height:       p.Height,
		TopRadius:    p.Width / 2,
		BottomRadius: p.Width / 2,
		Thickness:    p.BaseThickness + p.MinThickness,
	}
	pr, err := profile.Build(spec, 2)
	if err != nil {
		return nil, err
	}
	m, err := revolve.Profile(pr, ShellSegments)
	if err != nil {
		return nil, err
	}
	m.ComputeNormals()
	return checked(m)
}

// checked guards the output contract: a mesh that fails Validate is never handed out.
func checked(m *mesh.Mesh) (*mesh.Mesh, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("engine: generated mesh: %w", err)
	}
	return m, nil
}
