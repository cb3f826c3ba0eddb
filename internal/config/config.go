// Package config loads the optional tasklist settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultTaskFile is the persistence file looked up in the working
	// directory when neither flag, environment, nor settings name one.
	DefaultTaskFile = "tasklist.json"
	// DefaultSettingsFile is probed when --config is not given.
	DefaultSettingsFile = "tasklist.yaml"
)

// Color modes for the table cells.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

type Config struct {
	File      string `yaml:"file"`
	Color     string `yaml:"color"`
	BackupDir string `yaml:"backup_dir"`
	LogLevel  string `yaml:"log_level"`
}

func Default() Config {
	return Config{
		File:     DefaultTaskFile,
		Color:    ColorAuto,
		LogLevel: "warn",
	}
}

// Load overlays the settings at path on the defaults. A missing file is
// only an error when explicit is true (the user named the path).
func Load(path string, explicit bool) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse settings file %s: %w", path, err)
	}
	if cfg.File == "" {
		cfg.File = DefaultTaskFile
	}
	switch cfg.Color {
	case ColorAuto, ColorAlways, ColorNever:
	case "":
		cfg.Color = ColorAuto
	default:
		return cfg, fmt.Errorf("settings file %s: unknown color mode %q", path, cfg.Color)
	}
	return cfg, nil
}
