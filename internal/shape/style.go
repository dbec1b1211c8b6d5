package shape

import (
	"fmt"

	"lampforge/internal/mesh"
	"lampforge/internal/noise"
)

// Kind names a shade style.
type Kind string

const (
	KindRibbedDrum    Kind = "ribbed_drum"
	KindSpiralTwist   Kind = "spiral_twist"
	KindWaveShell     Kind = "wave_shell"
	KindPerlinNoise   Kind = "perlin_noise"
	KindOrganicCell   Kind = "organic_cell"
	KindOrigami       Kind = "origami"
	KindVoronoi       Kind = "voronoi"
	KindGeometricPoly Kind = "geometric_poly"
	KindSlotted       Kind = "slotted"
	KindLattice       Kind = "lattice"
	KindDoubleWall    Kind = "double_wall"
)

// Kinds lists every style in display order.
var Kinds = []Kind{
	KindRibbedDrum, KindSpiralTwist, KindWaveShell, KindPerlinNoise, KindOrganicCell, KindOrigami,
	KindVoronoi, KindGeometricPoly, KindSlotted, KindLattice, KindDoubleWall,
}

// ParseKind returns the kind with the given name.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds {
		if string(k) == name {
			return k, nil
		}
	}
	return "", fmt.Errorf("shape: %w: %q", mesh.ErrUnsupportedShapeType, name)
}

// Style is one of the variant types below. Each variant carries only the fields its strategy
// reads.
type Style interface {
	Kind() Kind
	check(p Params) error
}

// RibbedDrum ripples the wall with RibCount vertical ribs.
type RibbedDrum struct {
	RibCount int     `yaml:"rib_count" toml:"rib_count"`
	RibDepth float32 `yaml:"rib_depth" toml:"rib_depth"`
}

// SpiralTwist rotates each ring by TwistAngle degrees times its normalized height.
type SpiralTwist struct {
	TwistAngle float32 `yaml:"twist_angle" toml:"twist_angle"`
}

// WaveShell runs a diagonal sine wave around the wall.
type WaveShell struct {
	Amplitude float32 `yaml:"amplitude" toml:"amplitude"`
	Frequency int     `yaml:"frequency" toml:"frequency"`
}

// PerlinNoise displaces the wall with two octaves of trigonometric noise.
type PerlinNoise struct {
	NoiseStrength float32 `yaml:"noise_strength" toml:"noise_strength"`
	NoiseScale    float32 `yaml:"noise_scale" toml:"noise_scale"`
}

// OrganicCell displaces the wall with ridged noise, giving cell-like creases.
type OrganicCell struct {
	NoiseStrength float32 `yaml:"noise_strength" toml:"noise_strength"`
	NoiseScale    float32 `yaml:"noise_scale" toml:"noise_scale"`
}

// Origami pushes every other of 2·FoldCount angular sectors in by FoldDepth.
type Origami struct {
	FoldCount int     `yaml:"fold_count" toml:"fold_count"`
	FoldDepth float32 `yaml:"fold_depth" toml:"fold_depth"`
}

// Voronoi imitates a cell pattern with a product of sine and cosine bands.
type Voronoi struct {
	CellCount int     `yaml:"cell_count" toml:"cell_count"`
	CellDepth float32 `yaml:"cell_depth" toml:"cell_depth"`
}

// GeometricPoly is a straight frustum with Sides flat faces.
type GeometricPoly struct {
	Sides int `yaml:"sides" toml:"sides"`
}

// Slotted is a core shell carrying SlotCount radial fins out to the silhouette.
type Slotted struct {
	SlotCount    int     `yaml:"slot_count" toml:"slot_count"`
	SlotDepth    float32 `yaml:"slot_depth" toml:"slot_depth"`
	FinThickness float32 `yaml:"fin_thickness" toml:"fin_thickness"`
}

// Lattice is a cage of crossing helical struts held by a ring at each end. It has no
// continuous wall, so it takes no internal ribs, fitter or pattern.
type Lattice struct {
	GridDensity int     `yaml:"grid_density" toml:"grid_density"`
	StrutWidth  float32 `yaml:"strut_width" toml:"strut_width"`
	TwistAngle  float32 `yaml:"twist_angle" toml:"twist_angle"`
}

// DoubleWall nests a second shell GapDistance inside the first, joined by RibCount struts.
type DoubleWall struct {
	GapDistance float32 `yaml:"gap_distance" toml:"gap_distance"`
	RibCount    int     `yaml:"rib_count" toml:"rib_count"`
}

func (RibbedDrum) Kind() Kind    { return KindRibbedDrum }
func (SpiralTwist) Kind() Kind   { return KindSpiralTwist }
func (WaveShell) Kind() Kind     { return KindWaveShell }
func (PerlinNoise) Kind() Kind   { return KindPerlinNoise }
func (OrganicCell) Kind() Kind   { return KindOrganicCell }
func (Origami) Kind() Kind       { return KindOrigami }
func (Voronoi) Kind() Kind       { return KindVoronoi }
func (GeometricPoly) Kind() Kind { return KindGeometricPoly }
func (Slotted) Kind() Kind       { return KindSlotted }
func (Lattice) Kind() Kind       { return KindLattice }
func (DoubleWall) Kind() Kind    { return KindDoubleWall }

// Default returns the variant for k with its default fields.
func Default(k Kind) (Style, error) {
	return DecodeStyle(k, nil)
}

// DecodeStyle starts from the defaults of k and lets decode overwrite fields of the variant
// through a pointer to it, as yaml.Node.Decode does. A nil decode returns the defaults.
func DecodeStyle(k Kind, decode func(v any) error) (Style, error) {
	switch k {
	case KindRibbedDrum:
		return decodeInto(RibbedDrum{RibCount: 24, RibDepth: 0.4}, decode)
	case KindSpiralTwist:
		return decodeInto(SpiralTwist{TwistAngle: 90}, decode)
	case KindWaveShell:
		return decodeInto(WaveShell{Amplitude: 0.4, Frequency: 6}, decode)
	case KindPerlinNoise:
		return decodeInto(PerlinNoise{NoiseStrength: 0.5, NoiseScale: 1}, decode)
	case KindOrganicCell:
		return decodeInto(OrganicCell{NoiseStrength: 0.5, NoiseScale: 1.5}, decode)
	case KindOrigami:
		return decodeInto(Origami{FoldCount: 12, FoldDepth: 0.5}, decode)
	case KindVoronoi:
		return decodeInto(Voronoi{CellCount: 8, CellDepth: 0.4}, decode)
	case KindGeometricPoly:
		return decodeInto(GeometricPoly{Sides: 6}, decode)
	case KindSlotted:
		return decodeInto(Slotted{SlotCount: 16, SlotDepth: 0.8, FinThickness: 0.3}, decode)
	case KindLattice:
		return decodeInto(Lattice{GridDensity: 8, StrutWidth: 0.5, TwistAngle: 120}, decode)
	case KindDoubleWall:
		return decodeInto(DoubleWall{GapDistance: 1, RibCount: 8}, decode)
	}
	return nil, fmt.Errorf("shape: %w: %q", mesh.ErrUnsupportedShapeType, k)
}

func decodeInto[S Style](v S, decode func(any) error) (Style, error) {
	if decode != nil {
		if err := decode(&v); err != nil {
			return nil, fmt.Errorf("shape: decode %s: %w", v.Kind(), err)
		}
	}
	return v, nil
}

func invalid(k Kind, format string, args ...any) error {
	return fmt.Errorf("shape: %w: %s: %s", mesh.ErrInvalidParameter, k, fmt.Sprintf(format, args...))
}

func (s RibbedDrum) check(p Params) error {
	if s.RibCount < 1 {
		return invalid(s.Kind(), "rib count %d", s.RibCount)
	}
	return p.checkReach(s.Kind(), s.RibDepth)
}

func (s SpiralTwist) check(Params) error {
	if !noise.Finite(s.TwistAngle) {
		return invalid(s.Kind(), "twist angle %v", s.TwistAngle)
	}
	return nil
}

func (s WaveShell) check(p Params) error {
	if s.Frequency < 0 {
		return invalid(s.Kind(), "frequency %d", s.Frequency)
	}
	return p.checkReach(s.Kind(), s.Amplitude)
}

func (s PerlinNoise) check(p Params) error {
	if !(s.NoiseScale > 0) || !noise.Finite(s.NoiseScale) {
		return invalid(s.Kind(), "noise scale %v", s.NoiseScale)
	}
	return p.checkReach(s.Kind(), s.NoiseStrength)
}

func (s OrganicCell) check(p Params) error {
	if !(s.NoiseScale > 0) || !noise.Finite(s.NoiseScale) {
		return invalid(s.Kind(), "noise scale %v", s.NoiseScale)
	}
	if s.NoiseStrength < 0 {
		return invalid(s.Kind(), "noise strength %v", s.NoiseStrength)
	}
	return p.checkReach(s.Kind(), s.NoiseStrength/2)
}

func (s Origami) check(p Params) error {
	if s.FoldCount < 1 {
		return invalid(s.Kind(), "fold count %d", s.FoldCount)
	}
	return p.checkReach(s.Kind(), s.FoldDepth)
}

func (s Voronoi) check(p Params) error {
	if s.CellCount < 1 {
		return invalid(s.Kind(), "cell count %d", s.CellCount)
	}
	return p.checkReach(s.Kind(), s.CellDepth)
}

func (s GeometricPoly) check(Params) error {
	if s.Sides < 3 {
		return invalid(s.Kind(), "sides %d < 3", s.Sides)
	}
	return nil
}

func (s Slotted) check(p Params) error {
	if s.SlotCount < 1 || !(s.SlotDepth > 0) || !(s.FinThickness > 0) || !noise.Finite(s.SlotDepth, s.FinThickness) {
		return invalid(s.Kind(), "slots %d depth %v fin %v", s.SlotCount, s.SlotDepth, s.FinThickness)
	}
	if err := s.core(p).Validate(ProfileSteps); err != nil {
		return invalid(s.Kind(), "core shell: %v", err)
	}
	return nil
}

func (s Lattice) check(Params) error {
	if s.GridDensity < 1 || !(s.StrutWidth > 0) || !noise.Finite(s.StrutWidth, s.TwistAngle) {
		return invalid(s.Kind(), "density %d strut %v twist %v", s.GridDensity, s.StrutWidth, s.TwistAngle)
	}
	return nil
}

func (s DoubleWall) check(p Params) error {
	if !(s.GapDistance > 0) || !noise.Finite(s.GapDistance) || s.RibCount < 1 {
		return invalid(s.Kind(), "gap %v ribs %d", s.GapDistance, s.RibCount)
	}
	if r := p.Wall().MinRadius(ProfileSteps); 2*p.Thickness+s.GapDistance >= r {
		return invalid(s.Kind(), "two walls of %v and gap %v reach radius %v", p.Thickness, s.GapDistance, r)
	}
	return nil
}
