package engineconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingReturnsDefault(t *testing.T) {
	p, err := LoadFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestLoadInvalidReturnsDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: [1"), 0644))
	p, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: 9\nshow_fps: true\n"), 0644))
	p, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, 9, p.Workers)
	assert.True(t, p.ShowFPS)
	assert.True(t, p.GridVisible)
	assert.Equal(t, "presets", p.PresetDir)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "engine.yaml")
	want := Default()
	want.DefaultPreset = "lattice"
	want.ShowStats = true
	require.NoError(t, SaveTo(path, want))
	got, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("LAMPFORGE_WORKERS", "12")
	t.Setenv("LAMPFORGE_LOG_LEVEL", "debug")
	t.Setenv("LAMPFORGE_MAX_IMAGE_SIZE", "lots")
	p := ApplyEnv(Default())
	assert.Equal(t, 12, p.Workers)
	assert.Equal(t, "debug", p.LogLevel)
	assert.Equal(t, 512, p.MaxImageSize)
}
