package workbench

import (
	"flag"
	"strconv"

	"lampforge/internal/attach"
	"lampforge/internal/preset"
)

// float32Value is a flag.Value writing into a float32 field. Unlike flag.Float64Var it leaves
// the field alone until the flag is given.
type float32Value struct{ p *float32 }

func (v float32Value) String() string {
	if v.p == nil {
		return "0"
	}
	return strconv.FormatFloat(float64(*v.p), 'g', -1, 32)
}

func (v float32Value) Set(s string) error {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		return err
	}
	*v.p = float32(f)
	return nil
}

type intValue struct{ p *int }

func (v intValue) String() string {
	if v.p == nil {
		return "0"
	}
	return strconv.Itoa(*v.p)
}

func (v intValue) Set(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*v.p = n
	return nil
}

type int64Value struct{ p *int64 }

func (v int64Value) String() string {
	if v.p == nil {
		return "0"
	}
	return strconv.FormatInt(*v.p, 10)
}

func (v int64Value) Set(s string) error {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}
	*v.p = n
	return nil
}

type stringValue struct{ p *string }

func (v stringValue) String() string {
	if v.p == nil {
		return ""
	}
	return *v.p
}

func (v stringValue) Set(s string) error {
	*v.p = s
	return nil
}

type boolValue struct{ p *bool }

func (v boolValue) String() string {
	if v.p == nil {
		return "false"
	}
	return strconv.FormatBool(*v.p)
}

func (v boolValue) Set(s string) error {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*v.p = b
	return nil
}

func (v boolValue) IsBoolFlag() bool { return true }

type fitterType attach.FitterType

func (v *fitterType) String() string {
	if v == nil {
		return ""
	}
	return string(*v)
}

func (v *fitterType) Set(s string) error {
	t, err := attach.ParseFitterType(s)
	if err != nil {
		return err
	}
	*v = fitterType(t)
	return nil
}

// BindShape registers one flag per ShapeForm field on fs, named like the preset keys.
// Parsing fs only touches the fields whose flags are given.
func BindShape(fs *flag.FlagSet, f *preset.ShapeForm) {
	fs.Var(stringValue{&f.Type}, "type", "shade style")
	fs.Var(stringValue{&f.Silhouette}, "silhouette", "straight, hourglass, bell, convex or concave")
	fs.Var(float32Value{&f.Height}, "height", "shade height (cm)")
	fs.Var(float32Value{&f.TopRadius}, "top_radius", "radius at the bottom end of the profile (cm)")
	fs.Var(float32Value{&f.BottomRadius}, "bottom_radius", "radius at the top end of the profile (cm)")
	fs.Var(float32Value{&f.Thickness}, "thickness", "wall thickness (cm)")
	fs.Var(intValue{&f.Segments}, "segments", "angular segments")
	fs.Var(int64Value{&f.Seed}, "seed", "noise seed")

	fs.Var(intValue{&f.RibCount}, "rib_count", "ribs (ribbed_drum, double_wall)")
	fs.Var(float32Value{&f.RibDepth}, "rib_depth", "rib depth (ribbed_drum)")
	fs.Var(float32Value{&f.TwistAngle}, "twist_angle", "twist in degrees (spiral_twist, lattice)")
	fs.Var(float32Value{&f.Amplitude}, "amplitude", "wave amplitude (wave_shell)")
	fs.Var(intValue{&f.Frequency}, "frequency", "waves around (wave_shell)")
	fs.Var(float32Value{&f.NoiseStrength}, "noise_strength", "noise strength (perlin_noise, organic_cell)")
	fs.Var(float32Value{&f.NoiseScale}, "noise_scale", "noise scale (perlin_noise, organic_cell)")
	fs.Var(intValue{&f.FoldCount}, "fold_count", "folds (origami)")
	fs.Var(float32Value{&f.FoldDepth}, "fold_depth", "fold depth (origami)")
	fs.Var(intValue{&f.CellCount}, "cell_count", "cells (voronoi)")
	fs.Var(float32Value{&f.CellDepth}, "cell_depth", "cell depth (voronoi)")
	fs.Var(intValue{&f.Sides}, "sides", "polygon sides (geometric_poly)")
	fs.Var(intValue{&f.SlotCount}, "slot_count", "fins (slotted)")
	fs.Var(float32Value{&f.SlotDepth}, "slot_depth", "fin depth (slotted)")
	fs.Var(float32Value{&f.FinThickness}, "fin_thickness", "fin thickness (slotted)")
	fs.Var(intValue{&f.GridDensity}, "grid_density", "struts per direction (lattice)")
	fs.Var(float32Value{&f.StrutWidth}, "strut_width", "strut width (lattice)")
	fs.Var(float32Value{&f.GapDistance}, "gap_distance", "gap between walls (double_wall)")

	fs.Var(intValue{&f.InternalRibs.Count}, "ribs", "internal ribs")
	fs.Var(float32Value{&f.InternalRibs.Depth}, "ribs_depth", "internal rib depth")
	fs.Var(float32Value{&f.InternalRibs.Width}, "ribs_width", "internal rib width")
	fs.Var((*fitterType)(&f.Fitter.Type), "fitter", "none, spider or uno")
	fs.Var(float32Value{&f.Fitter.Diameter}, "fitter_diameter", "fitter ring diameter (mm)")
	fs.Var(float32Value{&f.Fitter.Height}, "fitter_height", "fitter distance below the top rim (cm)")
	fs.Var(float32Value{&f.Fitter.RingThickness}, "fitter_ring", "fitter ring thickness")
	fs.Var(float32Value{&f.Fitter.SpokeWidth}, "fitter_spoke", "fitter spoke width")
	fs.Var(stringValue{&f.Pattern.Type}, "pattern", "pattern unit or none")
	fs.Var(intValue{&f.Pattern.Density}, "pattern_density", "pattern units around")
	fs.Var(float32Value{&f.Pattern.Scale}, "pattern_scale", "pattern unit scale (0, 1]")
	fs.Var(float32Value{&f.Pattern.Depth}, "pattern_depth", "pattern relief depth")
}

// BindRelief registers one flag per ReliefForm field on fs.
func BindRelief(fs *flag.FlagSet, f *preset.ReliefForm) {
	fs.Var(stringValue{&f.Carrier}, "carrier", "flat, curved, arc or cylinder")
	fs.Var(float32Value{&f.Width}, "width", "panel width (cm)")
	fs.Var(float32Value{&f.Height}, "height", "panel height (cm)")
	fs.Var(float32Value{&f.BaseThickness}, "base_thickness", "backing thickness")
	fs.Var(float32Value{&f.MinThickness}, "min_thickness", "relief over the base for white")
	fs.Var(float32Value{&f.MaxThickness}, "max_thickness", "relief over the base for black")
	fs.Var(float32Value{&f.CurveRadius}, "curve_radius", "radius of curved carriers")
	fs.Var(intValue{&f.Resolution}, "resolution", "grid rows")
	fs.Var(boolValue{&f.Inverted}, "inverted", "thick where the image is bright")
	fs.Var(float32Value{&f.Brightness}, "brightness", "brightness offset")
	fs.Var(float32Value{&f.Contrast}, "contrast", "contrast in [-255, 259)")
	fs.Var(float32Value{&f.Smoothing}, "smoothing", "box blur radius in pixels")
	fs.Var(stringValue{&f.Image}, "image", "image file; the demo image when empty")
	fs.Var(int64Value{&f.DemoSeed}, "demo_seed", "seed of the demo image")
}
