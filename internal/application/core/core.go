// Package core provides the application context that owns the game loop:
// it wires the window configuration, input manager, audio controller and
// content manager together, forwards per-frame Update/Draw calls to the
// active scene, and performs deferred scene transitions.
package core

import (
	"errors"
	"fmt"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/gamecore/internal/application/scene"
	"github.com/younwookim/gamecore/internal/infrastructure/content"
	"github.com/younwookim/gamecore/internal/infrastructure/input"
	"github.com/younwookim/gamecore/internal/infrastructure/logging"
)

// ErrAlreadyConstructed is returned by New while another Core instance
// is live. The previous instance must be closed first.
var ErrAlreadyConstructed = errors.New("core: an instance is already live")

// One live Core per process. The guard exists because the subsystems the
// core owns are process-wide themselves (window state, audio context).
var (
	guardMu sync.Mutex
	live    bool
)

// InputSource is the input capability the core consumes each frame.
type InputSource interface {
	// Update refreshes the input snapshot for the current frame.
	Update(dt float64)
	// IsKeyDown reports whether key is held down in the current snapshot.
	IsKeyDown(key ebiten.Key) bool
}

// AudioController is the audio capability the core drives.
type AudioController interface {
	// Update advances audio bookkeeping once per frame.
	Update()
	// Close releases the controller's audio resources at shutdown.
	Close() error
}

// Options configures a Core. Title, Width, Height and Fullscreen describe
// the display surface; the zero value of the remaining fields gives a
// 60 TPS loop with a visible cursor and escape-to-exit enabled.
type Options struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool

	// Scale multiplies the logical size to get the window size. Zero means 1.
	Scale int
	// TPS is the tick rate of the fixed-step loop. Zero means 60.
	TPS int
	// HideCursor hides the system cursor over the window.
	HideCursor bool
	// DisableExitOnEscape turns off the default escape-to-exit behavior.
	DisableExitOnEscape bool

	// Input defaults to the real keyboard manager when nil.
	Input InputSource
	// Audio may be nil when the game runs without audio.
	Audio AudioController
	// Content may be nil when the game loads no assets.
	Content *content.Manager
}

// Core implements ebiten.Game and manages scene transitions.
type Core struct {
	width  int
	height int
	dt     float64

	input   InputSource
	audio   AudioController
	content *content.Manager

	active  scene.Scene
	pending scene.Scene
	// pendingSet distinguishes "no request" from a pending switch to nil.
	pendingSet bool

	exitOnEscape  bool
	exitRequested bool
	closed        bool
}

// New creates the Core and applies the window configuration. It fails
// with ErrAlreadyConstructed while a previous instance is still live.
func New(opts Options) (*Core, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("core: window size must be positive, got %dx%d", opts.Width, opts.Height)
	}

	guardMu.Lock()
	defer guardMu.Unlock()
	if live {
		return nil, ErrAlreadyConstructed
	}

	tps := opts.TPS
	if tps <= 0 {
		tps = 60
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	in := opts.Input
	if in == nil {
		in = input.NewManager()
	}

	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(opts.Width*scale, opts.Height*scale)
	ebiten.SetFullscreen(opts.Fullscreen)
	if opts.HideCursor {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
	ebiten.SetTPS(tps)

	live = true
	return &Core{
		width:        opts.Width,
		height:       opts.Height,
		dt:           1.0 / float64(tps),
		input:        in,
		audio:        opts.Audio,
		content:      opts.Content,
		exitOnEscape: !opts.DisableExitOnEscape,
	}, nil
}

// ChangeScene requests a switch to next at the top of the next frame.
// Requesting the currently active scene is a no-op; otherwise the request
// overwrites any previously pending one.
func (c *Core) ChangeScene(next scene.Scene) {
	if next == c.active {
		return
	}
	c.pending = next
	c.pendingSet = true
}

// Update runs one frame: input and audio refresh, exit check, pending
// scene transition, then the active scene's update. The order guarantees
// a newly activated scene sees fresh input on the frame it becomes
// active. Implements ebiten.Game.
func (c *Core) Update() error {
	c.input.Update(c.dt)
	if c.audio != nil {
		c.audio.Update()
	}

	if c.exitOnEscape && c.input.IsKeyDown(ebiten.KeyEscape) {
		c.exitRequested = true
	}

	if err := c.applyPendingScene(); err != nil {
		return err
	}

	if c.active != nil {
		if err := c.active.Update(c.dt); err != nil {
			return fmt.Errorf("failed to update scene: %w", err)
		}
	}

	// Exit is requested, not forced: the frame completes first.
	if c.exitRequested {
		return ebiten.Termination
	}
	return nil
}

// applyPendingScene performs a deferred scene transition: dispose the
// outgoing scene, swap in the pending one, clear the slot, init the new
// scene. Disposal before Init guarantees the outgoing scene's resources
// are released before the next scene allocates.
func (c *Core) applyPendingScene() error {
	if !c.pendingSet {
		return nil
	}
	next := c.pending
	c.pending = nil
	c.pendingSet = false
	if next == c.active {
		return nil
	}

	if c.active != nil {
		if err := c.active.Dispose(); err != nil {
			return fmt.Errorf("failed to dispose scene: %w", err)
		}
	}

	c.active = next
	if c.active == nil {
		logging.Debugf("scene cleared")
		return nil
	}

	logging.Debugf("activating scene %T", c.active)
	if err := c.active.Init(); err != nil {
		return fmt.Errorf("failed to initialize scene: %w", err)
	}
	return nil
}

// Draw renders the active scene. With no active scene nothing is drawn
// this frame. Implements ebiten.Game.
func (c *Core) Draw(screen *ebiten.Image) {
	if c.active != nil {
		c.active.Draw(screen)
	}
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game.
func (c *Core) Layout(outsideWidth, outsideHeight int) (int, int) {
	return c.width, c.height
}

// Input returns the input manager.
func (c *Core) Input() InputSource {
	return c.input
}

// Audio returns the audio controller, or nil when none is wired.
func (c *Core) Audio() AudioController {
	return c.audio
}

// Content returns the content manager, or nil when none is wired.
func (c *Core) Content() *content.Manager {
	return c.content
}

// ExitOnEscape reports whether the escape key requests exit.
func (c *Core) ExitOnEscape() bool {
	return c.exitOnEscape
}

// SetExitOnEscape toggles the escape-to-exit behavior.
func (c *Core) SetExitOnEscape(enabled bool) {
	c.exitOnEscape = enabled
}

// SetDT sets the delta time used for updates.
// Useful for testing or custom frame rates.
func (c *Core) SetDT(dt float64) {
	c.dt = dt
}

// Close shuts the core down and releases the construction guard so a new
// instance may be created. Only the audio controller is disposed here;
// the active scene is deliberately left to the window system's teardown,
// matching the unload contract this core was built against.
func (c *Core) Close() error {
	guardMu.Lock()
	defer guardMu.Unlock()
	if c.closed {
		return nil
	}
	c.closed = true
	live = false
	if c.audio != nil {
		return c.audio.Close()
	}
	return nil
}
