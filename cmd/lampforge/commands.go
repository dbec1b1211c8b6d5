package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"lampforge/internal/batch"
	"lampforge/internal/commands"
	"lampforge/internal/engineconfig"
	"lampforge/internal/logger"
	"lampforge/internal/preset"
	"lampforge/internal/workbench"
)

func registerCommands(ctx context.Context, reg *commands.Registry, prefs engineconfig.EnginePrefs, log *logger.Logger, out io.Writer) {
	registerShape(reg, prefs, log, out)
	registerRelief(reg, prefs, log, out)
	registerBatch(ctx, reg, prefs, log, out)
	registerPresets(reg, prefs, out)
}

// registerShape: lampforge shape [-preset name] [-height 20 ...]
func registerShape(reg *commands.Registry, prefs engineconfig.EnginePrefs, log *logger.Logger, out io.Writer) {
	fs := flag.NewFlagSet("shape", flag.ContinueOnError)
	name := fs.String("preset", "", "start from this preset (name or file)")
	var over preset.ShapeForm
	workbench.BindShape(fs, &over)

	reg.Register("shape", "generate a shade", fs, func([]string) error {
		w := workbench.New(prefs, log)
		if *name != "" {
			if err := w.LoadPreset(*name); err != nil {
				return err
			}
			if w.Mode() != workbench.ModeShape {
				return fmt.Errorf("preset %q is not a shade", *name)
			}
		}
		f, err := w.Shape.With(over)
		if err != nil {
			return err
		}
		w.Shape = f
		w.SetMode(workbench.ModeShape)
		if err := w.Regenerate(); err != nil {
			return err
		}
		return workbench.WriteReport(out, w.Report())
	})
}

// registerRelief: lampforge relief [-preset name] [-image photo.jpg ...]
func registerRelief(reg *commands.Registry, prefs engineconfig.EnginePrefs, log *logger.Logger, out io.Writer) {
	fs := flag.NewFlagSet("relief", flag.ContinueOnError)
	name := fs.String("preset", "", "start from this preset (name or file)")
	var over preset.ReliefForm
	workbench.BindRelief(fs, &over)

	reg.Register("relief", "generate a lithophane", fs, func([]string) error {
		w := workbench.New(prefs, log)
		if *name != "" {
			if err := w.LoadPreset(*name); err != nil {
				return err
			}
			if w.Mode() != workbench.ModeRelief {
				return fmt.Errorf("preset %q is not a lithophane", *name)
			}
		}
		f, err := w.Relief.With(over)
		if err != nil {
			return err
		}
		w.Relief = f
		w.SetMode(workbench.ModeRelief)
		if err := w.Regenerate(); err != nil {
			return err
		}
		return workbench.WriteReport(out, w.Report())
	})
}

type batchEntry struct {
	batch.Result `yaml:",inline"`
	Error        string `yaml:"error,omitempty"`
}

// registerBatch: lampforge batch [-dir presets] [-workers 4] [preset ...]
func registerBatch(ctx context.Context, reg *commands.Registry, prefs engineconfig.EnginePrefs, log *logger.Logger, out io.Writer) {
	fs := flag.NewFlagSet("batch", flag.ContinueOnError)
	dir := fs.String("dir", prefs.PresetDir, "preset directory")
	workers := fs.Int("workers", prefs.Workers, "concurrent generations")

	reg.Register("batch", "generate every preset, or the named ones, concurrently", fs, func(names []string) error {
		presets, err := selectPresets(*dir, names)
		if err != nil {
			return err
		}
		jobs := make([]batch.Job, 0, len(presets))
		for _, p := range presets {
			w := workbench.New(prefs, log)
			if err := w.Apply(p); err != nil {
				return err
			}
			jobs = append(jobs, batch.Job{Name: p.Name, Generate: w.Generate})
		}

		results, err := batch.Run(ctx, jobs, *workers, log.Zap())
		entries := make([]batchEntry, len(results))
		for i, r := range results {
			entries[i].Result = r
			if r.Err != nil {
				entries[i].Error = r.Err.Error()
			}
		}
		if werr := workbench.WriteReport(out, entries); werr != nil {
			return werr
		}
		if err != nil {
			return err
		}
		if failed := batch.Failed(results); len(failed) > 0 {
			return fmt.Errorf("%d of %d presets failed", len(failed), len(results))
		}
		return nil
	})
}

func selectPresets(dir string, names []string) ([]*preset.Preset, error) {
	if len(names) == 0 {
		return preset.All(dir)
	}
	out := make([]*preset.Preset, 0, len(names))
	for _, n := range names {
		p, err := preset.Find(n, dir)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// registerPresets: lampforge presets [-format toml] [name]
func registerPresets(reg *commands.Registry, prefs engineconfig.EnginePrefs, out io.Writer) {
	fs := flag.NewFlagSet("presets", flag.ContinueOnError)
	dir := fs.String("dir", prefs.PresetDir, "preset directory")
	format := fs.String("format", string(preset.YAML), "yaml or toml, when printing one preset")

	reg.Register("presets", "list presets, or print one", fs, func(args []string) error {
		if len(args) == 0 {
			all, err := preset.All(*dir)
			if err != nil {
				return err
			}
			for _, p := range all {
				fmt.Fprintf(out, "%-20s %-7s %-10s %s\n", p.Name, p.Kind(), p.Source, p.Description)
			}
			return nil
		}
		p, err := preset.Find(args[0], *dir)
		if err != nil {
			return err
		}
		data, err := preset.Marshal(p, preset.Format(*format))
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	})
}
