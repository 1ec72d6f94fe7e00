// Package config loads application configuration from TOML files using
// the fs.FS interface.
package config

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Loader loads application configuration from TOML files using fs.FS
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadApp loads app.toml. Fields missing from the file keep their
// defaults from DefaultApp.
func (l *Loader) LoadApp() (*AppConfig, error) {
	data, err := fs.ReadFile(l.fsys, "app.toml")
	if err != nil {
		return nil, fmt.Errorf("failed to read app.toml: %w", err)
	}

	cfg := DefaultApp()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse app.toml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid app.toml: %w", err)
	}

	return cfg, nil
}

// DefaultApp returns the built-in configuration defaults.
func DefaultApp() *AppConfig {
	return &AppConfig{
		Window: WindowConfig{
			Title:  "Game",
			Width:  800,
			Height: 600,
			Scale:  1,
		},
		Loop: LoopConfig{
			Framerate:    60,
			ExitOnEscape: true,
		},
		Audio: AudioConfig{
			SampleRate: 44100,
		},
		Content: ContentConfig{
			Root: "assets",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate checks the configuration for values the bootstrap cannot run with.
func (c *AppConfig) Validate() error {
	if c.Window.Width <= 0 {
		return fmt.Errorf("window width must be positive, got %d", c.Window.Width)
	}
	if c.Window.Height <= 0 {
		return fmt.Errorf("window height must be positive, got %d", c.Window.Height)
	}
	if c.Window.Scale <= 0 {
		return fmt.Errorf("window scale must be positive, got %d", c.Window.Scale)
	}
	if c.Loop.Framerate <= 0 {
		return fmt.Errorf("framerate must be positive, got %d", c.Loop.Framerate)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio sample rate must be positive, got %d", c.Audio.SampleRate)
	}
	if c.Content.Root == "" {
		return fmt.Errorf("content root must not be empty")
	}
	return nil
}
