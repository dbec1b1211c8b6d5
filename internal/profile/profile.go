// Package profile builds the closed (radius, height) silhouette loop that the revolution
// builder sweeps into a shell.
package profile

import (
	"fmt"

	"github.com/chewxy/math32"

	"lampforge/internal/mesh"
	"lampforge/internal/noise"
)

// Silhouette names the modulation applied to the linear radius.
type Silhouette string

const (
	Straight  Silhouette = "straight"
	Hourglass Silhouette = "hourglass"
	Bell      Silhouette = "bell"
	Convex    Silhouette = "convex"
	Concave   Silhouette = "concave"
)

// Radius floors keep the sweep away from a degenerate apex on the axis.
const (
	OuterFloor float32 = 0.1
	InnerFloor float32 = 0.05
)

// Silhouettes lists every known silhouette in display order.
var Silhouettes = []Silhouette{Straight, Hourglass, Bell, Convex, Concave}

// ParseSilhouette returns the silhouette with the given name. The empty name means Straight.
func ParseSilhouette(name string) (Silhouette, error) {
	if name == "" {
		return Straight, nil
	}
	for _, s := range Silhouettes {
		if string(s) == name {
			return s, nil
		}
	}
	return "", fmt.Errorf("profile: %w: silhouette %q", mesh.ErrUnsupportedShapeType, name)
}

// Factor returns the radius multiplier of s at normalized height t.
func (s Silhouette) Factor(t float32) float32 {
	switch s {
	case Hourglass:
		sn := math32.Sin(t * math32.Pi)
		return 1 - 0.3*sn*sn
	case Bell:
		return 1 + 0.4*(1-t)*(1-t)
	case Convex:
		return 1 + 0.2*math32.Sin(t*math32.Pi)
	case Concave:
		return 1 - 0.2*math32.Sin(t*math32.Pi)
	default:
		return 1
	}
}

// Spec describes one shell wall. Inset moves both faces of the wall toward the axis.
type Spec struct {
	Silhouette   Silhouette
	Height       float32
	TopRadius    float32
	BottomRadius float32
	Thickness    float32
	Inset        float32
}

// Point is one sample of the profile: radius from the axis and height.
type Point struct {
	R, Y float32
}

// Profile holds the outer samples from bottom to top and the inner samples from top to
// bottom, so that Outer followed by Inner is one counter-clockwise loop in the (r,y) plane.
type Profile struct {
	Outer []Point
	Inner []Point
}

// Loop returns the closed loop: outer wall upward, then inner wall downward.
func (p Profile) Loop() []Point {
	loop := make([]Point, 0, len(p.Outer)+len(p.Inner))
	loop = append(loop, p.Outer...)
	return append(loop, p.Inner...)
}

// HeightAt returns the height of normalized height t: t=0 is the bottom, t=1 the top.
func (s Spec) HeightAt(t float32) float32 {
	return -s.Height/2 + s.Height*t
}

// rawRadius is the modulated, inset radius before flooring.
func (s Spec) rawRadius(t float32) float32 {
	return noise.Lerp(s.TopRadius, s.BottomRadius, t)*s.Silhouette.Factor(t) - s.Inset
}

// OuterRadius returns the outer wall radius at normalized height t.
func (s Spec) OuterRadius(t float32) float32 {
	return max(s.rawRadius(t), OuterFloor)
}

// InnerRadius returns the inner wall radius at normalized height t.
func (s Spec) InnerRadius(t float32) float32 {
	return max(s.rawRadius(t)-s.Thickness, InnerFloor)
}

// MinRadius returns the smallest unfloored outer radius over the samples of a steps-sample
// profile.
func (s Spec) MinRadius(steps int) float32 {
	m := math32.Inf(1)
	for i := 0; i <= steps; i++ {
		m = min(m, s.rawRadius(float32(i)/float32(steps)))
	}
	return m
}

// Validate checks the numeric ranges of s for a steps-sample profile.
func (s Spec) Validate(steps int) error {
	if steps < 2 {
		return fmt.Errorf("profile: %w: steps %d < 2", mesh.ErrInvalidParameter, steps)
	}
	if _, err := ParseSilhouette(string(s.Silhouette)); err != nil {
		return err
	}
	if !noise.Finite(s.Height, s.TopRadius, s.BottomRadius, s.Thickness, s.Inset) {
		return fmt.Errorf("profile: %w: non-finite wall %+v", mesh.ErrInvalidParameter, s)
	}
	if !(s.Height > 0) {
		return fmt.Errorf("profile: %w: height %v must be positive", mesh.ErrInvalidParameter, s.Height)
	}
	if s.TopRadius < 0 || s.BottomRadius < 0 {
		return fmt.Errorf("profile: %w: radii %v/%v must not be negative", mesh.ErrInvalidParameter, s.TopRadius, s.BottomRadius)
	}
	if !(s.Thickness > 0) {
		return fmt.Errorf("profile: %w: thickness %v must be positive", mesh.ErrInvalidParameter, s.Thickness)
	}
	if r := s.MinRadius(steps); s.Thickness >= r {
		return fmt.Errorf("profile: %w: thickness %v reaches radius %v", mesh.ErrInvalidParameter, s.Thickness, r)
	}
	return nil
}

// Build samples the profile at steps+1 heights for each wall.
func Build(s Spec, steps int) (Profile, error) {
	if err := s.Validate(steps); err != nil {
		return Profile{}, err
	}
	p := Profile{
		Outer: make([]Point, steps+1),
		Inner: make([]Point, steps+1),
	}
	for i := 0; i <= steps; i++ {
		t := float32(i) / float32(steps)
		p.Outer[i] = Point{R: s.OuterRadius(t), Y: s.HeightAt(t)}
	}
	for i := 0; i <= steps; i++ {
		t := float32(steps-i) / float32(steps)
		p.Inner[i] = Point{R: s.InnerRadius(t), Y: s.HeightAt(t)}
	}
	return p, nil
}
