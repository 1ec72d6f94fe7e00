package config

// AppConfig is the root config for app.toml.
type AppConfig struct {
	Window  WindowConfig  `toml:"window"`
	Loop    LoopConfig    `toml:"loop"`
	Audio   AudioConfig   `toml:"audio"`
	Content ContentConfig `toml:"content"`
	Logging LoggingConfig `toml:"logging"`
}

// WindowConfig configures the host window and display surface.
type WindowConfig struct {
	Title      string `toml:"title"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Scale      int    `toml:"scale"`
	Fullscreen bool   `toml:"fullscreen"`
	HideCursor bool   `toml:"hideCursor"`
}

// LoopConfig configures the fixed-step frame loop.
type LoopConfig struct {
	Framerate    int  `toml:"framerate"`
	ExitOnEscape bool `toml:"exitOnEscape"`
}

type AudioConfig struct {
	SampleRate int `toml:"sampleRate"`
}

type ContentConfig struct {
	// Root is the directory game assets are loaded from.
	Root string `toml:"root"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
}
