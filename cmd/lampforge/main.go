// Command lampforge generates lamp shade and lithophane meshes from presets and flags and prints a
// YAML report of each mesh.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"lampforge/internal/commands"
	"lampforge/internal/engineconfig"
	"lampforge/internal/env"
	"lampforge/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "lampforge:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	if err := env.Load(".env"); err != nil {
		return err
	}
	prefs, _ := engineconfig.Load()
	prefs = engineconfig.ApplyEnv(prefs)

	log := logger.New(logger.Options{Path: prefs.LogPath, Level: prefs.LogLevel, Format: prefs.LogFormat})
	defer log.Close()

	reg := commands.NewRegistry()
	registerCommands(ctx, reg, prefs, log, out)
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" {
		fmt.Fprintln(out, "usage: lampforge <command> [flags]")
		reg.Usage(out)
		if len(args) == 0 {
			return errors.New("missing command")
		}
		return nil
	}
	return reg.Execute(args)
}
