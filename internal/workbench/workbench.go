// Package workbench holds the parameters being edited, regenerates the mesh from them and exposes
// the edit commands shared by the command line and the viewer terminal.
package workbench

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"lampforge/internal/commands"
	"lampforge/internal/engine"
	"lampforge/internal/engineconfig"
	"lampforge/internal/imagesource"
	"lampforge/internal/logger"
	"lampforge/internal/mesh"
	"lampforge/internal/preset"
	"lampforge/internal/relief"
	"lampforge/internal/shape"
)

// Mode selects which generator Regenerate runs.
type Mode string

const (
	ModeShape  Mode = "shape"
	ModeRelief Mode = "relief"
)

// NoImage as the relief image path asks for the plain shell instead of a lithophane.
const NoImage = "none"

// Workbench is the editing state of one session. Shape and Relief are the forms being edited;
// they are full forms, merged over the defaults.
type Workbench struct {
	Shape  preset.ShapeForm
	Relief preset.ReliefForm

	prefs engineconfig.EnginePrefs
	log   *logger.Logger
	mode  Mode
	name  string

	imagePath string
	image     *relief.Image

	mesh    *mesh.Mesh
	stats   mesh.Stats
	elapsed time.Duration
	version int
}

// New returns a workbench on the default drum. log may be nil.
func New(prefs engineconfig.EnginePrefs, log *logger.Logger) *Workbench {
	if log == nil {
		log = logger.NewNop()
	}
	return &Workbench{
		Shape:  preset.DefaultShapeForm(),
		Relief: preset.DefaultReliefForm(),
		prefs:  prefs,
		log:    log,
		mode:   ModeShape,
		name:   "default",
	}
}

// Mode returns the active generator.
func (w *Workbench) Mode() Mode { return w.mode }

// SetMode switches the active generator.
func (w *Workbench) SetMode(m Mode) { w.mode = m }

// Name returns the name of the preset last applied.
func (w *Workbench) Name() string { return w.name }

// Mesh returns the last generated mesh, or nil before the first successful Regenerate.
func (w *Workbench) Mesh() *mesh.Mesh { return w.mesh }

// Stats returns the analysis of Mesh.
func (w *Workbench) Stats() mesh.Stats { return w.stats }

// Version increases with every successful Regenerate.
func (w *Workbench) Version() int { return w.version }

// Apply replaces the form of the preset's kind and switches to it.
func (w *Workbench) Apply(p *preset.Preset) error {
	if p.Relief != nil {
		f, err := p.Relief.Merged()
		if err != nil {
			return err
		}
		w.Relief, w.mode = f, ModeRelief
	} else {
		f, err := p.Shape.Merged()
		if err != nil {
			return err
		}
		w.Shape, w.mode = f, ModeShape
	}
	w.name = p.Name
	return nil
}

// LoadPreset finds name among the built-in presets and the preset directory, or as a file path,
// and applies it.
func (w *Workbench) LoadPreset(name string) error {
	p, err := preset.Find(name, w.prefs.PresetDir)
	if err != nil {
		return err
	}
	return w.Apply(p)
}

// Preset returns the active form as a preset called name.
func (w *Workbench) Preset(name string) *preset.Preset {
	p := &preset.Preset{Name: name}
	if w.mode == ModeRelief {
		f := w.Relief
		p.Relief = &f
	} else {
		f := w.Shape
		p.Shape = &f
	}
	return p
}

// Generate builds the mesh of the active form. Unlike Regenerate it does not keep the result.
func (w *Workbench) Generate() (*mesh.Mesh, error) {
	if w.mode == ModeRelief {
		params, err := w.Relief.Params()
		if err != nil {
			return nil, err
		}
		img, err := w.reliefImage()
		if err != nil {
			return nil, err
		}
		return engine.GenerateReliefOrShell(img, params)
	}
	params, err := w.Shape.Params()
	if err != nil {
		return nil, err
	}
	return engine.GenerateShapeMesh(params)
}

// Regenerate rebuilds the mesh. On error the previous mesh is kept.
func (w *Workbench) Regenerate() error {
	start := time.Now()
	m, err := w.Generate()
	if err != nil {
		w.log.Zap().Warn("regenerate failed", zap.String("mode", string(w.mode)), zap.Error(err))
		return err
	}
	w.mesh = m
	w.stats = mesh.Analyze(m)
	w.elapsed = time.Since(start)
	w.version++
	w.log.Zap().Info("regenerated",
		zap.String("mode", string(w.mode)),
		zap.String("preset", w.name),
		zap.Int("vertices", w.stats.Vertices),
		zap.Int("triangles", w.stats.Triangles),
		zap.Bool("watertight", w.stats.Watertight),
		zap.Duration("elapsed", w.elapsed))
	return nil
}

func (w *Workbench) reliefImage() (*relief.Image, error) {
	path := w.Relief.Image
	switch {
	case path == NoImage:
		return nil, nil
	case path == "":
		opts := imagesource.DefaultDemoOptions()
		opts.Seed = w.Relief.DemoSeed
		return imagesource.Demo(opts), nil
	case path == w.imagePath && w.image != nil:
		return w.image, nil
	}
	file := path
	if imagesource.IsURL(path) {
		saved, err := imagesource.Fetch(context.Background(), path, w.prefs.DownloadDir)
		if err != nil {
			return nil, err
		}
		w.log.Log("downloaded " + saved)
		file = saved
	}
	img, format, err := imagesource.Load(file, w.prefs.MaxImageSize)
	if err != nil {
		return nil, err
	}
	w.log.Zap().Debug("image loaded", zap.String("path", path), zap.String("format", format),
		zap.Int("width", img.Width), zap.Int("height", img.Height))
	w.imagePath, w.image = path, img
	return img, nil
}

// Report is the summary printed after a generation.
type Report struct {
	Name    string     `yaml:"name"`
	Mode    Mode       `yaml:"mode"`
	Elapsed string     `yaml:"elapsed"`
	Stats   mesh.Stats `yaml:"stats"`
}

// Report summarises the last generation.
func (w *Workbench) Report() Report {
	return Report{Name: w.name, Mode: w.mode, Elapsed: w.elapsed.Round(time.Microsecond).String(), Stats: w.stats}
}

// WriteReport writes v as YAML.
func WriteReport(out io.Writer, v any) error {
	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func (w *Workbench) logLines(s string) {
	for _, line := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		w.log.Log(line)
	}
}

func flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// Register adds the edit commands to reg. Each one that changes parameters regenerates.
//
//	set    -height 20 -rib_count 12 ...   edit the shade and show it
//	style  <kind>                         switch the shade style
//	relief -carrier arc -image a.png ...  edit the lithophane and show it
//	preset [name]                         apply a preset, or list them
//	save   <file.yaml|file.toml>          write the active form as a preset
//	stats                                 print the mesh report
func (w *Workbench) Register(reg *commands.Registry) {
	set := flagSet("set")
	BindShape(set, &w.Shape)
	reg.Register("set", "edit shade parameters", set, func([]string) error {
		w.mode = ModeShape
		return w.regenerateAndReport()
	})

	reg.Register("style", "switch the shade style: style <kind>", flagSet("style"), func(args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("usage: style <%s>", strings.Join(kindNames(), "|"))
		}
		if _, err := shape.ParseKind(args[0]); err != nil {
			return err
		}
		w.Shape.Type, w.mode = args[0], ModeShape
		return w.regenerateAndReport()
	})

	rel := flagSet("relief")
	BindRelief(rel, &w.Relief)
	reg.Register("relief", "edit lithophane parameters", rel, func([]string) error {
		w.mode = ModeRelief
		return w.regenerateAndReport()
	})

	reg.Register("preset", "apply a preset: preset [name]", flagSet("preset"), func(args []string) error {
		if len(args) == 0 {
			all, err := preset.All(w.prefs.PresetDir)
			if err != nil {
				return err
			}
			for _, p := range all {
				w.log.Log(fmt.Sprintf("%-20s %-7s %s", p.Name, p.Kind(), p.Description))
			}
			return nil
		}
		if err := w.LoadPreset(args[0]); err != nil {
			return err
		}
		return w.regenerateAndReport()
	})

	reg.Register("save", "save the active form: save <file>", flagSet("save"), func(args []string) error {
		if len(args) != 1 {
			return errors.New("usage: save <file.yaml|file.toml>")
		}
		format, err := preset.FormatOf(args[0])
		if err != nil {
			return err
		}
		base := filepath.Base(args[0])
		name := strings.TrimSuffix(base, filepath.Ext(base))
		data, err := preset.Marshal(w.Preset(name), format)
		if err != nil {
			return err
		}
		if err := os.WriteFile(args[0], data, 0o644); err != nil {
			return err
		}
		w.log.Log("saved " + args[0])
		return nil
	})

	reg.Register("stats", "print the mesh report", flagSet("stats"), func([]string) error {
		var b strings.Builder
		if err := WriteReport(&b, w.Report()); err != nil {
			return err
		}
		w.logLines(b.String())
		return nil
	})

	for _, name := range []string{"set", "style", "relief", "preset"} {
		reg.Guard(name, w.snapshot)
	}
}

// snapshot saves the forms so that a failed edit leaves them as they were.
func (w *Workbench) snapshot() func() {
	sf, rf, mode, name := w.Shape, w.Relief, w.mode, w.name
	return func() {
		w.Shape, w.Relief, w.mode, w.name = sf, rf, mode, name
	}
}

func (w *Workbench) regenerateAndReport() error {
	if err := w.Regenerate(); err != nil {
		return err
	}
	s := w.stats
	w.log.Log(fmt.Sprintf("%s: %d vertices, %d triangles, watertight %t", w.name, s.Vertices, s.Triangles, s.Watertight))
	return nil
}

func kindNames() []string {
	names := make([]string, len(shape.Kinds))
	for i, k := range shape.Kinds {
		names[i] = string(k)
	}
	return names
}
