package preset

import (
	"fmt"

	"github.com/jinzhu/copier"

	"lampforge/internal/attach"
	"lampforge/internal/primitives"
	"lampforge/internal/profile"
	"lampforge/internal/relief"
	"lampforge/internal/shape"
)

// ShapeForm is the flat preset form of a shade. Style fields share one namespace: a field is
// read only by the styles that declare it. Zero fields take the default value, so a zero twist
// or seed cannot be written in a preset.
type ShapeForm struct {
	Type         string  `yaml:"type" toml:"type"`
	Silhouette   string  `yaml:"silhouette,omitempty" toml:"silhouette,omitempty"`
	Height       float32 `yaml:"height,omitempty" toml:"height,omitempty"`
	TopRadius    float32 `yaml:"top_radius,omitempty" toml:"top_radius,omitempty"`
	BottomRadius float32 `yaml:"bottom_radius,omitempty" toml:"bottom_radius,omitempty"`
	Thickness    float32 `yaml:"thickness,omitempty" toml:"thickness,omitempty"`
	Segments     int     `yaml:"segments,omitempty" toml:"segments,omitempty"`
	Seed         int64   `yaml:"seed,omitempty" toml:"seed,omitempty"`

	RibCount      int     `yaml:"rib_count,omitempty" toml:"rib_count,omitempty"`
	RibDepth      float32 `yaml:"rib_depth,omitempty" toml:"rib_depth,omitempty"`
	TwistAngle    float32 `yaml:"twist_angle,omitempty" toml:"twist_angle,omitempty"`
	Amplitude     float32 `yaml:"amplitude,omitempty" toml:"amplitude,omitempty"`
	Frequency     int     `yaml:"frequency,omitempty" toml:"frequency,omitempty"`
	NoiseStrength float32 `yaml:"noise_strength,omitempty" toml:"noise_strength,omitempty"`
	NoiseScale    float32 `yaml:"noise_scale,omitempty" toml:"noise_scale,omitempty"`
	FoldCount     int     `yaml:"fold_count,omitempty" toml:"fold_count,omitempty"`
	FoldDepth     float32 `yaml:"fold_depth,omitempty" toml:"fold_depth,omitempty"`
	CellCount     int     `yaml:"cell_count,omitempty" toml:"cell_count,omitempty"`
	CellDepth     float32 `yaml:"cell_depth,omitempty" toml:"cell_depth,omitempty"`
	Sides         int     `yaml:"sides,omitempty" toml:"sides,omitempty"`
	SlotCount     int     `yaml:"slot_count,omitempty" toml:"slot_count,omitempty"`
	SlotDepth     float32 `yaml:"slot_depth,omitempty" toml:"slot_depth,omitempty"`
	FinThickness  float32 `yaml:"fin_thickness,omitempty" toml:"fin_thickness,omitempty"`
	GridDensity   int     `yaml:"grid_density,omitempty" toml:"grid_density,omitempty"`
	StrutWidth    float32 `yaml:"strut_width,omitempty" toml:"strut_width,omitempty"`
	GapDistance   float32 `yaml:"gap_distance,omitempty" toml:"gap_distance,omitempty"`

	InternalRibs attach.RibSpec       `yaml:"internal_ribs,omitempty" toml:"internal_ribs,omitempty"`
	Fitter       attach.FitterSpec    `yaml:"fitter,omitempty" toml:"fitter,omitempty"`
	Pattern      attach.PatternSpec   `yaml:"pattern,omitempty" toml:"pattern,omitempty"`
	Units        []primitives.UnitDef `yaml:"units,omitempty" toml:"units,omitempty"`
}

// DefaultShapeForm is a 15 cm ribbed drum with no attachments.
func DefaultShapeForm() ShapeForm {
	return ShapeForm{
		Type:         string(shape.KindRibbedDrum),
		Silhouette:   string(profile.Straight),
		Height:       15,
		TopRadius:    5,
		BottomRadius: 8,
		Thickness:    0.8,
		Segments:     64,
		InternalRibs: attach.RibSpec{Depth: 0.5, Width: 0.3},
		Fitter: attach.FitterSpec{
			Type:          attach.FitterNone,
			Diameter:      40,
			Height:        2,
			RingThickness: 0.4,
			SpokeWidth:    0.4,
		},
		Pattern: attach.PatternSpec{Type: attach.PatternNone, Density: 12, Scale: 0.8, Depth: 0.3},
	}
}

var keepDefaults = copier.Option{IgnoreEmpty: true, DeepCopy: true}

// Merged lays the set fields of f over DefaultShapeForm.
func (f ShapeForm) Merged() (ShapeForm, error) {
	return DefaultShapeForm().With(f)
}

// With returns f with the non-zero fields of over laid on top.
func (f ShapeForm) With(over ShapeForm) (ShapeForm, error) {
	out := f
	if err := copier.CopyWithOption(&out, over, keepDefaults); err != nil {
		return ShapeForm{}, fmt.Errorf("preset: merge shape: %w", err)
	}
	// Nested specs merge field by field.
	out.InternalRibs, out.Fitter, out.Pattern = f.InternalRibs, f.Fitter, f.Pattern
	for _, pair := range [][2]any{
		{&out.InternalRibs, over.InternalRibs},
		{&out.Fitter, over.Fitter},
		{&out.Pattern, over.Pattern},
	} {
		if err := copier.CopyWithOption(pair[0], pair[1], keepDefaults); err != nil {
			return ShapeForm{}, fmt.Errorf("preset: merge shape: %w", err)
		}
	}
	return out, nil
}

// Params converts the form into shade parameters. Style fields the form leaves out keep the
// style's own defaults. The result is not validated.
func (f ShapeForm) Params() (shape.Params, error) {
	m, err := f.Merged()
	if err != nil {
		return shape.Params{}, err
	}
	kind, err := shape.ParseKind(m.Type)
	if err != nil {
		return shape.Params{}, err
	}
	style, err := shape.DecodeStyle(kind, func(v any) error {
		return copier.CopyWithOption(v, f, copier.Option{IgnoreEmpty: true})
	})
	if err != nil {
		return shape.Params{}, err
	}
	sil, err := profile.ParseSilhouette(m.Silhouette)
	if err != nil {
		return shape.Params{}, err
	}
	fitter := m.Fitter
	if fitter.Type, err = attach.ParseFitterType(string(fitter.Type)); err != nil {
		return shape.Params{}, err
	}
	return shape.Params{
		Style:        style,
		Silhouette:   sil,
		Height:       m.Height,
		TopRadius:    m.TopRadius,
		BottomRadius: m.BottomRadius,
		Thickness:    m.Thickness,
		Segments:     m.Segments,
		Seed:         m.Seed,
		Ribs:         m.InternalRibs,
		Fitter:       fitter,
		Pattern:      m.Pattern,
		Units:        m.Units,
	}, nil
}

// ReliefForm is the preset form of a lithophane. Image is a file path or an http(s) URL; without
// one the demo noise image seeded by DemoSeed is used.
type ReliefForm struct {
	Carrier       string  `yaml:"carrier,omitempty" toml:"carrier,omitempty"`
	Width         float32 `yaml:"width,omitempty" toml:"width,omitempty"`
	Height        float32 `yaml:"height,omitempty" toml:"height,omitempty"`
	BaseThickness float32 `yaml:"base_thickness,omitempty" toml:"base_thickness,omitempty"`
	MinThickness  float32 `yaml:"min_thickness,omitempty" toml:"min_thickness,omitempty"`
	MaxThickness  float32 `yaml:"max_thickness,omitempty" toml:"max_thickness,omitempty"`
	CurveRadius   float32 `yaml:"curve_radius,omitempty" toml:"curve_radius,omitempty"`
	Resolution    int     `yaml:"resolution,omitempty" toml:"resolution,omitempty"`
	Inverted      bool    `yaml:"inverted,omitempty" toml:"inverted,omitempty"`
	Brightness    float32 `yaml:"brightness,omitempty" toml:"brightness,omitempty"`
	Contrast      float32 `yaml:"contrast,omitempty" toml:"contrast,omitempty"`
	Smoothing     float32 `yaml:"smoothing,omitempty" toml:"smoothing,omitempty"`

	Image    string `yaml:"image,omitempty" toml:"image,omitempty"`
	DemoSeed int64  `yaml:"demo_seed,omitempty" toml:"demo_seed,omitempty"`
}

// DefaultReliefForm is a 10 cm square flat panel.
func DefaultReliefForm() ReliefForm {
	return ReliefForm{
		Carrier:      string(relief.Flat),
		Width:        10,
		Height:       10,
		MinThickness: 0.6,
		MaxThickness: 3,
		CurveRadius:  5,
		Resolution:   50,
		DemoSeed:     1,
	}
}

// Merged lays the set fields of f over DefaultReliefForm.
func (f ReliefForm) Merged() (ReliefForm, error) {
	return DefaultReliefForm().With(f)
}

// With returns f with the non-zero fields of over laid on top.
func (f ReliefForm) With(over ReliefForm) (ReliefForm, error) {
	out := f
	if err := copier.CopyWithOption(&out, over, keepDefaults); err != nil {
		return ReliefForm{}, fmt.Errorf("preset: merge relief: %w", err)
	}
	return out, nil
}

// Params converts the form into lithophane parameters. The result is not validated.
func (f ReliefForm) Params() (relief.Params, error) {
	m, err := f.Merged()
	if err != nil {
		return relief.Params{}, err
	}
	carrier, err := relief.ParseCarrier(m.Carrier)
	if err != nil {
		return relief.Params{}, err
	}
	var p relief.Params
	if err := copier.Copy(&p, m); err != nil {
		return relief.Params{}, fmt.Errorf("preset: relief params: %w", err)
	}
	p.Carrier = carrier
	return p, nil
}
