// Package cli wires up and runs the interactive task list session.
package cli

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/amirbrooks/tasklist/internal/config"
	"github.com/amirbrooks/tasklist/internal/render"
	"github.com/amirbrooks/tasklist/internal/store"
)

// Exit codes
const (
	ExitOK       = 0
	ExitUsage    = 2
	ExitInternal = 10
)

func Run(args []string) int {
	fs := flag.NewFlagSet("tasklist", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	file := fs.String("file", "", "Task file path (default: tasklist.json or TASKLIST_FILE)")
	cfgPath := fs.String("config", "", "Settings file path (default: tasklist.yaml)")
	plain := fs.Bool("plain", false, "Plain table cells, no color escapes")
	colorAlways := fs.Bool("color", false, "Force color cells")
	verbose := fs.Bool("verbose", false, "Debug logging on stderr")
	if err := fs.Parse(args); err != nil {
		return ExitUsage
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "tasklist: unexpected argument: %s\n", fs.Arg(0))
		return ExitUsage
	}
	if *plain && *colorAlways {
		fmt.Fprintln(os.Stderr, "tasklist: --plain and --color are mutually exclusive")
		return ExitUsage
	}

	settings := *cfgPath
	explicit := settings != ""
	if settings == "" {
		settings = config.DefaultSettingsFile
	}
	cfg, err := config.Load(settings, explicit)
	if err != nil {
		fmt.Fprintln(os.Stderr, "tasklist:", err)
		return ExitUsage
	}

	switch {
	case *file != "":
		cfg.File = *file
	case cfg.File == config.DefaultTaskFile:
		if env := os.Getenv("TASKLIST_FILE"); env != "" {
			cfg.File = env
		}
	}
	if *plain {
		cfg.Color = config.ColorNever
	}
	if *colorAlways {
		cfg.Color = config.ColorAlways
	}

	level := log.WarnLevel
	if lv, err := log.ParseLevel(cfg.LogLevel); err == nil {
		level = lv
	}
	if *verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:  level,
		Prefix: "tasklist",
	})

	list, err := store.Open(store.Options{
		Path:      cfg.File,
		BackupDir: cfg.BackupDir,
		Today:     time.Now(),
		Logger:    logger,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "tasklist:", err)
		return ExitInternal
	}

	var pal render.Palette = render.NewColorPalette(os.Stdout)
	if cfg.Color == config.ColorNever {
		pal = render.PlainPalette{}
	}

	s := NewSession(os.Stdin, os.Stdout, list, pal, logger)
	if err := s.Loop(); err != nil {
		fmt.Fprintln(os.Stderr, "tasklist:", err)
		return ExitInternal
	}
	return ExitOK
}
