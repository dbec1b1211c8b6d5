// Package preset reads named parameter sets for shades and lithophanes from YAML or TOML files.
// A preset carries flat form fields; fields left out keep their defaults.
package preset

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"lampforge/internal/mesh"
)

//go:embed builtin/*.yaml builtin/*.toml
var builtinFS embed.FS

// Format is a preset file encoding.
type Format string

const (
	YAML Format = "yaml"
	TOML Format = "toml"
)

// FormatOf returns the format for a file name by its extension.
func FormatOf(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}
	return "", fmt.Errorf("preset: unknown file type %q", name)
}

// Preset is a named shade or lithophane. Exactly one of Shape and Relief is set.
type Preset struct {
	Name        string      `yaml:"name" toml:"name"`
	Description string      `yaml:"description,omitempty" toml:"description,omitempty"`
	Shape       *ShapeForm  `yaml:"shape,omitempty" toml:"shape,omitempty"`
	Relief      *ReliefForm `yaml:"relief,omitempty" toml:"relief,omitempty"`

	// Source is the file the preset came from, or "builtin".
	Source string `yaml:"-" toml:"-"`
}

// Kind returns "shape" or "relief".
func (p *Preset) Kind() string {
	if p.Relief != nil {
		return "relief"
	}
	return "shape"
}

func (p *Preset) validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("preset: %w: missing name", mesh.ErrInvalidParameter)
	}
	if (p.Shape == nil) == (p.Relief == nil) {
		return fmt.Errorf("preset: %w: %s: needs exactly one of shape or relief", mesh.ErrInvalidParameter, p.Name)
	}
	return nil
}

// Parse decodes one preset.
func Parse(data []byte, format Format) (*Preset, error) {
	var p Preset
	var err error
	switch format {
	case YAML:
		err = yaml.Unmarshal(data, &p)
	case TOML:
		d := toml.NewDecoder(bytes.NewReader(data))
		d.DisallowUnknownFields()
		err = d.Decode(&p)
	default:
		return nil, fmt.Errorf("preset: unknown format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("preset: decode %s: %w", format, err)
	}
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Marshal encodes p in the given format.
func Marshal(p *Preset, format Format) ([]byte, error) {
	switch format {
	case YAML:
		return yaml.Marshal(p)
	case TOML:
		return toml.Marshal(p)
	}
	return nil, fmt.Errorf("preset: unknown format %q", format)
}

// LoadFile reads the preset at path.
func LoadFile(path string) (*Preset, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	p.Source = path
	return p, nil
}

// LoadDir reads every .yaml, .yml and .toml file in dir. A missing dir yields no presets.
func LoadDir(dir string) ([]*Preset, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var out []*Preset
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, err := FormatOf(e.Name()); err != nil {
			continue
		}
		p, err := LoadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Builtins returns the presets shipped with the binary.
func Builtins() ([]*Preset, error) {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil, err
	}
	out := make([]*Preset, 0, len(entries))
	for _, e := range entries {
		format, err := FormatOf(e.Name())
		if err != nil {
			continue
		}
		data, err := builtinFS.ReadFile("builtin/" + e.Name())
		if err != nil {
			return nil, err
		}
		p, err := Parse(data, format)
		if err != nil {
			return nil, fmt.Errorf("builtin %s: %w", e.Name(), err)
		}
		p.Source = "builtin"
		out = append(out, p)
	}
	return out, nil
}

// All returns the built-in presets plus those in dir, sorted by name. A file in dir replaces a
// built-in preset of the same name.
func All(dir string) ([]*Preset, error) {
	builtins, err := Builtins()
	if err != nil {
		return nil, err
	}
	local, err := LoadDir(dir)
	if err != nil {
		return nil, err
	}
	byName := make(map[string]*Preset, len(builtins)+len(local))
	for _, p := range builtins {
		byName[p.Name] = p
	}
	for _, p := range local {
		byName[p.Name] = p
	}
	out := make([]*Preset, 0, len(byName))
	for _, p := range byName {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Find returns the preset called name from All(dir), or loads name as a file path when it has a
// preset extension and exists.
func Find(name, dir string) (*Preset, error) {
	if _, err := FormatOf(name); err == nil {
		if _, err := os.Stat(name); err == nil {
			return LoadFile(name)
		}
	}
	all, err := All(dir)
	if err != nil {
		return nil, err
	}
	for _, p := range all {
		if p.Name == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("preset: %q not found", name)
}
