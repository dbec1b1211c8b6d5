// Command viewer shows the shade or lithophane being edited and regenerates it from terminal
// commands (ESC opens the terminal, "help" lists the commands).
package main

import (
	"flag"
	"fmt"
	"io"

	"lampforge/internal/commands"
	"lampforge/internal/debug"
	"lampforge/internal/engineconfig"
	"lampforge/internal/env"
	"lampforge/internal/graphics"
	"lampforge/internal/logger"
	"lampforge/internal/scene"
	"lampforge/internal/terminal"
	"lampforge/internal/workbench"
)

func main() {
	_ = env.Load(".env")
	prefs, _ := engineconfig.Load()
	prefs = engineconfig.ApplyEnv(prefs)

	log := logger.New(logger.Options{Path: prefs.LogPath, Level: prefs.LogLevel, Format: prefs.LogFormat})
	defer log.Close()

	scn := scene.New()
	scn.SetGridVisible(prefs.GridVisible)
	dbg := debug.New()
	dbg.SetShowFPS(prefs.ShowFPS)
	dbg.SetShowStats(prefs.ShowStats)

	reg := commands.NewRegistry()
	wb := workbench.New(prefs, log)
	wb.Register(reg)
	registerView(reg, &prefs, scn, dbg, log)
	term := terminal.New(log, reg)

	if prefs.DefaultPreset != "" {
		term.Submit("preset " + prefs.DefaultPreset)
	} else if err := wb.Regenerate(); err != nil {
		log.Log(err.Error())
	}

	update := func() {
		term.Update()
		scn.Update(!term.IsOpen())
		scn.SetMesh(wb.Mesh(), wb.Version())
		dbg.SetStats(statsLines(wb))
	}
	draw := func() {
		scn.Draw()
		dbg.Draw()
		term.Draw()
	}
	graphics.Run("lampforge", update, draw)
}

// registerView adds the "view" command: overlay and grid switches, optionally saved as defaults.
func registerView(reg *commands.Registry, prefs *engineconfig.EnginePrefs, scn *scene.Scene, dbg *debug.Debug, log *logger.Logger) {
	fs := flag.NewFlagSet("view", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	grid := fs.Bool("grid", prefs.GridVisible, "draw the grid")
	fps := fs.Bool("fps", prefs.ShowFPS, "show FPS")
	mem := fs.Bool("mem", false, "show heap size")
	stats := fs.Bool("stats", prefs.ShowStats, "show the mesh report")
	orbit := fs.Bool("orbit", false, "turn the camera around the shade")
	save := fs.Bool("save", false, "store grid and overlay switches in "+engineconfig.EngineConfigPath)

	reg.Register("view", "viewer switches: view -grid -fps -mem -stats -orbit [-save]", fs, func([]string) error {
		scn.SetGridVisible(*grid)
		scn.Orbit = *orbit
		dbg.SetShowFPS(*fps)
		dbg.SetShowMemAlloc(*mem)
		dbg.SetShowStats(*stats)
		if !*save {
			return nil
		}
		prefs.GridVisible, prefs.ShowFPS, prefs.ShowStats = *grid, *fps, *stats
		if err := engineconfig.Save(*prefs); err != nil {
			return err
		}
		log.Log("saved " + engineconfig.EngineConfigPath)
		return nil
	})
}

func statsLines(wb *workbench.Workbench) []string {
	if wb.Mesh() == nil {
		return []string{"no mesh"}
	}
	s := wb.Stats()
	r := wb.Report()
	return []string{
		fmt.Sprintf("%s (%s)", r.Name, r.Mode),
		fmt.Sprintf("vertices %d  triangles %d", s.Vertices, s.Triangles),
		fmt.Sprintf("size %.1f x %.1f x %.1f cm", s.Max[0]-s.Min[0], s.Max[1]-s.Min[1], s.Max[2]-s.Min[2]),
		fmt.Sprintf("volume %.1f cm3  open edges %d", s.Volume, s.BoundaryEdges),
		"generated in " + r.Elapsed,
	}
}
