// Package revolve sweeps closed (radius, height) loops around the vertical axis.
package revolve

import (
	"fmt"

	"github.com/chewxy/math32"

	"lampforge/internal/mesh"
	"lampforge/internal/profile"
)

// Sweep rotates the closed loop through a full turn in segments equal steps. Loop point i at
// step j becomes vertex i*segments+j at (r·cosθ, y, r·sinθ) with θ = 2πj/segments; there is no
// duplicated seam. Consecutive loop points, including last to first, are joined by quads, so the
// result is closed. A counter-clockwise loop in the (r,y) plane gives outward winding.
func Sweep(loop []profile.Point, segments int) (*mesh.Mesh, error) {
	if segments < 3 {
		return nil, fmt.Errorf("revolve: %w: segments %d < 3", mesh.ErrInvalidParameter, segments)
	}
	if len(loop) < 3 {
		return nil, fmt.Errorf("revolve: %w: loop of %d points", mesh.ErrInvalidParameter, len(loop))
	}
	n := len(loop)
	m := mesh.New(n*segments, n*segments*6)

	cos := make([]float32, segments)
	sin := make([]float32, segments)
	for j := 0; j < segments; j++ {
		theta := 2 * math32.Pi * float32(j) / float32(segments)
		sin[j], cos[j] = math32.Sincos(theta)
	}
	for _, p := range loop {
		for j := 0; j < segments; j++ {
			m.AddVertex(p.R*cos[j], p.Y, p.R*sin[j])
		}
	}

	at := func(i, j int) uint32 {
		return uint32((i%n)*segments + j%segments)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < segments; j++ {
			m.AddQuad(at(i, j), at(i+1, j), at(i+1, j+1), at(i, j+1))
		}
	}
	return m, nil
}

// Profile sweeps a built profile.
func Profile(p profile.Profile, segments int) (*mesh.Mesh, error) {
	return Sweep(p.Loop(), segments)
}

// Ring returns a flat annulus of rectangular section centred at height y.
func Ring(y, inner, outer, height float32, segments int) (*mesh.Mesh, error) {
	if !(inner > 0) || !(outer > inner) || !(height > 0) {
		return nil, fmt.Errorf("revolve: %w: ring %v..%v x %v", mesh.ErrInvalidParameter, inner, outer, height)
	}
	h := height / 2
	return Sweep([]profile.Point{
		{R: outer, Y: y - h},
		{R: outer, Y: y + h},
		{R: inner, Y: y + h},
		{R: inner, Y: y - h},
	}, segments)
}

// Torus returns a ring tube of circular section: major radius from the axis to the tube
// centre, minor radius of the tube, sampled with tubeSegments points around the section.
func Torus(y, major, minor float32, segments, tubeSegments int) (*mesh.Mesh, error) {
	if !(minor > 0) || !(major > minor) || tubeSegments < 3 {
		return nil, fmt.Errorf("revolve: %w: torus %v/%v", mesh.ErrInvalidParameter, major, minor)
	}
	loop := make([]profile.Point, tubeSegments)
	for k := range loop {
		s, c := math32.Sincos(2 * math32.Pi * float32(k) / float32(tubeSegments))
		loop[k] = profile.Point{R: major + minor*c, Y: y + minor*s}
	}
	return Sweep(loop, segments)
}

// Frustum returns a straight-walled shell with sides flat faces: a polygonal frustum whose
// corner radii run linearly along the wall. The silhouette of s is ignored.
func Frustum(s profile.Spec, sides int) (*mesh.Mesh, error) {
	s.Silhouette = profile.Straight
	p, err := profile.Build(s, 2)
	if err != nil {
		return nil, err
	}
	return Profile(p, sides)
}
