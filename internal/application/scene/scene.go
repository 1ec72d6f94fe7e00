// Package scene defines the Scene interface for game screens and the
// transition entry point scenes use to switch between each other.
//
// Each game screen (title, playing, settings, etc.) implements the Scene
// interface to handle its own lifecycle, update logic and rendering.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene represents a game screen. Exactly one scene is active and
// receiving Update/Draw calls at any time; the core owns the active
// scene and disposes it before activating the next one.
type Scene interface {
	// Init prepares the scene before its first Update. Content the
	// scene needs (images, sounds, data) is loaded here, not in the
	// constructor, so construction stays cheap.
	Init() error

	// Update advances the scene state by dt seconds.
	// Returns an error to terminate the game.
	Update(dt float64) error

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// Dispose releases resources the scene owns. The core calls it
	// exactly once per transition, between frames, before the next
	// scene's Init. A scene is never disposed while executing its own
	// Update or Draw.
	Dispose() error
}

// Director switches the active scene. Implemented by the core and handed
// to scenes that need to trigger transitions.
//
// Requesting the scene that is already active is a no-op. Otherwise the
// request overwrites any previously pending one (single slot, last write
// wins); the switch itself happens at the top of the next frame.
type Director interface {
	ChangeScene(Scene)
}
