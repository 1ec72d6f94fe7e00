package main

import (
	"embed"
	"flag"
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/gamecore/internal/application/core"
	"github.com/younwookim/gamecore/internal/application/scene"
	"github.com/younwookim/gamecore/internal/application/scene/playing"
	"github.com/younwookim/gamecore/internal/application/scene/title"
	"github.com/younwookim/gamecore/internal/infrastructure/audio"
	"github.com/younwookim/gamecore/internal/infrastructure/config"
	"github.com/younwookim/gamecore/internal/infrastructure/content"
	"github.com/younwookim/gamecore/internal/infrastructure/input"
	"github.com/younwookim/gamecore/internal/infrastructure/logging"
)

//go:embed configs
var configFS embed.FS

func main() {
	// Parse command line flags
	configDir := flag.String("config", "", "Load configs from this directory instead of the embedded defaults")
	fullscreen := flag.Bool("fullscreen", false, "Force fullscreen regardless of config")
	flag.Parse()

	// Load configuration, embedded by default
	var loader *config.Loader
	if *configDir != "" {
		loader = config.NewLoader(*configDir)
	} else {
		fsys, err := fs.Sub(configFS, "configs")
		if err != nil {
			logging.Fatalf("Failed to get config subfs: %v", err)
		}
		loader = config.NewFSLoader(fsys, "configs")
	}

	cfg, err := loader.LoadApp()
	if err != nil {
		logging.Fatalf("Failed to load config: %v", err)
	}
	logging.SetLevel(cfg.Logging.Level)

	if *fullscreen {
		cfg.Window.Fullscreen = true
	}

	// Wire the subsystems
	audioCtl := audio.NewController(cfg.Audio.SampleRate)
	assets := content.NewManager(audioCtl.Context(), os.DirFS(cfg.Content.Root))

	c, err := core.New(core.Options{
		Title:               cfg.Window.Title,
		Width:               cfg.Window.Width,
		Height:              cfg.Window.Height,
		Scale:               cfg.Window.Scale,
		Fullscreen:          cfg.Window.Fullscreen,
		HideCursor:          cfg.Window.HideCursor,
		TPS:                 cfg.Loop.Framerate,
		DisableExitOnEscape: !cfg.Loop.ExitOnEscape,
		Input:               input.NewManager(),
		Audio:               audioCtl,
		Content:             assets,
	})
	if err != nil {
		logging.Fatalf("Failed to create core: %v", err)
	}

	c.ChangeScene(titleScene(c, cfg))

	// Run game
	if err := ebiten.RunGame(c); err != nil {
		_ = c.Close()
		logging.Fatalf("Game loop: %v", err)
	}
	if err := c.Close(); err != nil {
		logging.Errorf("Shutdown: %v", err)
	}
}

// titleScene builds the initial title scene. The scene graph is wired
// with constructors so the title and playing scenes can switch to each
// other without referencing each other's packages.
func titleScene(c *core.Core, cfg *config.AppConfig) scene.Scene {
	w, h := cfg.Window.Width, cfg.Window.Height

	var newTitle func() scene.Scene
	newPlaying := func() scene.Scene {
		return playing.New(playing.Options{
			Width:  w,
			Height: h,
			OnQuit: func() { c.ChangeScene(newTitle()) },
		})
	}
	newTitle = func() scene.Scene {
		return title.New(title.Options{
			Heading: cfg.Window.Title,
			Width:   w,
			Height:  h,
			OnStart: func() { c.ChangeScene(newPlaying()) },
		})
	}

	return newTitle()
}
