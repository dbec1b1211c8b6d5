package relief

import (
	"fmt"

	"github.com/chewxy/math32"

	"lampforge/internal/mesh"
	"lampforge/internal/noise"
)

// Carrier is the surface the relief is projected onto.
type Carrier string

const (
	Flat     Carrier = "flat"
	Curved   Carrier = "curved"
	Arc      Carrier = "arc"
	Cylinder Carrier = "cylinder"
)

// Carriers lists every carrier in display order.
var Carriers = []Carrier{Flat, Curved, Arc, Cylinder}

// ParseCarrier returns the carrier with the given name.
func ParseCarrier(name string) (Carrier, error) {
	for _, c := range Carriers {
		if string(c) == name {
			return c, nil
		}
	}
	return "", fmt.Errorf("relief: %w: %q", mesh.ErrUnsupportedCarrierType, name)
}

func (c Carrier) curved() bool { return c != Flat }

// Params describes a lithophane. Width and Height are the panel size; on a cylinder Height is
// the tube length and the circumference comes from CurveRadius. The relief at a pixel is
// BaseThickness+MinThickness for white and BaseThickness+MaxThickness for black, swapped when
// Inverted is set.
type Params struct {
	Carrier       Carrier `yaml:"carrier" toml:"carrier"`
	Width         float32 `yaml:"width" toml:"width"`
	Height        float32 `yaml:"height" toml:"height"`
	BaseThickness float32 `yaml:"base_thickness" toml:"base_thickness"`
	MinThickness  float32 `yaml:"min_thickness" toml:"min_thickness"`
	MaxThickness  float32 `yaml:"max_thickness" toml:"max_thickness"`
	CurveRadius   float32 `yaml:"curve_radius" toml:"curve_radius"`
	// Resolution is the number of grid rows; columns follow the image aspect.
	Resolution int     `yaml:"resolution" toml:"resolution"`
	Inverted   bool    `yaml:"inverted" toml:"inverted"`
	Brightness float32 `yaml:"brightness" toml:"brightness"`
	Contrast   float32 `yaml:"contrast" toml:"contrast"`
	Smoothing  float32 `yaml:"smoothing" toml:"smoothing"`
}

// Validate checks p on its own; Build also checks the image.
func (p Params) Validate() error {
	if _, err := ParseCarrier(string(p.Carrier)); err != nil {
		return err
	}
	bad := func(format string, args ...any) error {
		return fmt.Errorf("relief: %w: %s", mesh.ErrInvalidParameter, fmt.Sprintf(format, args...))
	}
	switch {
	case !noise.Finite(p.Width, p.Height, p.BaseThickness, p.MinThickness, p.MaxThickness,
		p.CurveRadius, p.Brightness, p.Contrast, p.Smoothing):
		return bad("non-finite value in %+v", p)
	case p.Resolution < 2:
		return bad("resolution %d < 2", p.Resolution)
	case !(p.Width > 0) || !(p.Height > 0):
		return bad("size %vx%v", p.Width, p.Height)
	case p.BaseThickness < 0 || p.MinThickness < 0:
		return bad("base %v min %v must not be negative", p.BaseThickness, p.MinThickness)
	case p.MaxThickness < p.MinThickness:
		return bad("max thickness %v below min %v", p.MaxThickness, p.MinThickness)
	case p.BaseThickness+p.MinThickness <= 0:
		return bad("relief has no thickness")
	case p.Smoothing < 0:
		return bad("smoothing %v", p.Smoothing)
	case p.Contrast < -255 || p.Contrast >= 259:
		return bad("contrast %v outside [-255, 259)", p.Contrast)
	}
	if p.Carrier.curved() {
		if !(p.CurveRadius > 0) {
			return bad("curve radius %v", p.CurveRadius)
		}
		if p.Carrier != Cylinder && p.Width/p.CurveRadius >= 2*math32.Pi {
			return bad("width %v wraps a full turn of radius %v; use the cylinder carrier", p.Width, p.CurveRadius)
		}
	}
	return nil
}

// span is the angle covered by a curved carrier.
func (p Params) span() float32 {
	if p.Carrier == Cylinder {
		return 2 * math32.Pi
	}
	return p.Width / p.CurveRadius
}
