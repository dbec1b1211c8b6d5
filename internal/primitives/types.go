package primitives

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Point2 is an outline vertex: U across the surface, V up it.
type Point2 struct {
	U, V float32
}

// UnitDef is the YAML definition of a pattern unit (e.g. assets/units/star.yaml).
// Points is the outline resolution (tips for a star); InnerRatio is the star's valley
// radius relative to its tips.
type UnitDef struct {
	Type       string  `yaml:"type" toml:"type"`
	Points     int     `yaml:"points,omitempty" toml:"points,omitempty"`
	InnerRatio float32 `yaml:"inner_ratio,omitempty" toml:"inner_ratio,omitempty"`
}

// ParseUnitDefs decodes a YAML list of unit definitions.
func ParseUnitDefs(data []byte) ([]UnitDef, error) {
	var defs []UnitDef
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, fmt.Errorf("primitives: parse unit defs: %w", err)
	}
	return defs, nil
}
