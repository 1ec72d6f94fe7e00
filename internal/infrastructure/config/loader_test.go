package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadApp(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadApp()
	require.NoError(t, err)

	assert.Equal(t, "Platform Arcade", cfg.Window.Title)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.Equal(t, 1, cfg.Window.Scale)
	assert.False(t, cfg.Window.Fullscreen)
	assert.Equal(t, 60, cfg.Loop.Framerate)
	assert.True(t, cfg.Loop.ExitOnEscape)
	assert.Equal(t, 44100, cfg.Audio.SampleRate)
	assert.Equal(t, "assets", cfg.Content.Root)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoader_LoadApp_DefaultsForMissingFields(t *testing.T) {
	fsys := fstest.MapFS{
		"app.toml": &fstest.MapFile{Data: []byte(`
[window]
title = "Minimal"
`)},
	}
	loader := NewFSLoader(fsys, "configs")

	cfg, err := loader.LoadApp()
	require.NoError(t, err)

	assert.Equal(t, "Minimal", cfg.Window.Title)
	assert.Equal(t, 800, cfg.Window.Width, "missing width falls back to default")
	assert.Equal(t, 600, cfg.Window.Height)
	assert.True(t, cfg.Loop.ExitOnEscape, "exit-on-escape defaults to enabled")
	assert.Equal(t, "assets", cfg.Content.Root)
}

func TestLoader_LoadApp_MissingFile(t *testing.T) {
	loader := NewFSLoader(fstest.MapFS{}, "configs")

	_, err := loader.LoadApp()
	assert.Error(t, err)
}

func TestLoader_LoadApp_InvalidTOML(t *testing.T) {
	fsys := fstest.MapFS{
		"app.toml": &fstest.MapFile{Data: []byte(`[window`)},
	}
	loader := NewFSLoader(fsys, "configs")

	_, err := loader.LoadApp()
	assert.Error(t, err)
}

func TestLoader_LoadApp_RejectsNonPositiveDimensions(t *testing.T) {
	fsys := fstest.MapFS{
		"app.toml": &fstest.MapFile{Data: []byte(`
[window]
width = 0
height = 600
`)},
	}
	loader := NewFSLoader(fsys, "configs")

	_, err := loader.LoadApp()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "width must be positive")
}

func TestAppConfig_Validate(t *testing.T) {
	cfg := DefaultApp()
	assert.NoError(t, cfg.Validate())

	cfg = DefaultApp()
	cfg.Window.Height = -1
	assert.Error(t, cfg.Validate())

	cfg = DefaultApp()
	cfg.Loop.Framerate = 0
	assert.Error(t, cfg.Validate())

	cfg = DefaultApp()
	cfg.Audio.SampleRate = 0
	assert.Error(t, cfg.Validate())

	cfg = DefaultApp()
	cfg.Content.Root = ""
	assert.Error(t, cfg.Validate())
}
