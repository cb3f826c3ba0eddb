package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), false)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadExplicitMissingFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), true)
	require.Error(t, err)
}

func TestLoadParsesSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasklist.yaml")
	body := "file: work.json\ncolor: never\nbackup_dir: backups\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path, false)
	require.NoError(t, err)
	assert.Equal(t, "work.json", cfg.File)
	assert.Equal(t, ColorNever, cfg.Color)
	assert.Equal(t, "backups", cfg.BackupDir)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadFillsOmittedKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasklist.yaml")
	require.NoError(t, os.WriteFile(path, []byte("color: always\n"), 0o644))
	cfg, err := Load(path, false)
	require.NoError(t, err)
	assert.Equal(t, DefaultTaskFile, cfg.File)
	assert.Equal(t, ColorAlways, cfg.Color)
}

func TestLoadRejectsUnknownColorMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasklist.yaml")
	require.NoError(t, os.WriteFile(path, []byte("color: sometimes\n"), 0o644))
	_, err := Load(path, false)
	require.Error(t, err)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasklist.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{{not yaml"), 0o644))
	_, err := Load(path, false)
	require.Error(t, err)
}
