// Package playing provides the demo gameplay scene.
package playing

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Colors for rendering
var (
	colorBG     = color.RGBA{26, 26, 46, 255}
	colorBox    = color.RGBA{100, 200, 100, 255}
	colorWall   = color.RGBA{80, 80, 100, 255}
	colorPaused = color.RGBA{0, 0, 0, 128}
)

const (
	boxSize   = 16.0
	wallInset = 8.0
)

// Options configures a playing scene.
type Options struct {
	Width  int
	Height int
	// OnQuit is called when the player leaves the scene.
	OnQuit func()
}

// Playing bounces a box around the screen. It stands in for real
// gameplay and exercises the full scene lifecycle: content allocated in
// Init, dt-driven updates, and deterministic release in Dispose.
type Playing struct {
	width  int
	height int
	onQuit func()

	// canvas is an owned offscreen buffer the world is rendered into,
	// deallocated in Dispose.
	canvas *ebiten.Image

	x, y    float64
	vx, vy  float64
	bounces int
	paused  bool
}

// New creates a playing scene.
func New(opts Options) *Playing {
	return &Playing{
		width:  opts.Width,
		height: opts.Height,
		onQuit: opts.OnQuit,
	}
}

// Init allocates the scene's offscreen buffer and resets the simulation.
func (p *Playing) Init() error {
	p.canvas = ebiten.NewImage(p.width, p.height)
	p.x = float64(p.width) / 2
	p.y = float64(p.height) / 2
	p.vx = 120
	p.vy = 90
	p.bounces = 0
	p.paused = false
	return nil
}

func (p *Playing) Update(dt float64) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		if p.onQuit != nil {
			p.onQuit()
		}
		return nil
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		p.paused = !p.paused
	}
	if p.paused {
		return nil
	}

	p.x += p.vx * dt
	p.y += p.vy * dt

	minX, minY := wallInset, wallInset
	maxX := float64(p.width) - wallInset - boxSize
	maxY := float64(p.height) - wallInset - boxSize
	if p.x < minX {
		p.x = minX
		p.vx = -p.vx
		p.bounces++
	}
	if p.x > maxX {
		p.x = maxX
		p.vx = -p.vx
		p.bounces++
	}
	if p.y < minY {
		p.y = minY
		p.vy = -p.vy
		p.bounces++
	}
	if p.y > maxY {
		p.y = maxY
		p.vy = -p.vy
		p.bounces++
	}

	return nil
}

func (p *Playing) Draw(screen *ebiten.Image) {
	p.canvas.Fill(colorBG)

	w := float64(p.width)
	h := float64(p.height)
	ebitenutil.DrawRect(p.canvas, 0, 0, w, wallInset, colorWall)
	ebitenutil.DrawRect(p.canvas, 0, h-wallInset, w, wallInset, colorWall)
	ebitenutil.DrawRect(p.canvas, 0, 0, wallInset, h, colorWall)
	ebitenutil.DrawRect(p.canvas, w-wallInset, 0, wallInset, h, colorWall)

	ebitenutil.DrawRect(p.canvas, p.x, p.y, boxSize, boxSize, colorBox)

	ebitenutil.DebugPrintAt(p.canvas, fmt.Sprintf("Bounces: %d", p.bounces), 10, p.height-20)
	ebitenutil.DebugPrint(p.canvas, "P: Pause | Q: Back to title | ESC: Quit")

	screen.DrawImage(p.canvas, nil)

	if p.paused {
		ebitenutil.DrawRect(screen, 0, 0, w, h, colorPaused)
		ebitenutil.DebugPrintAt(screen, "PAUSED\n\nPress P to resume", p.width/2-50, p.height/2-20)
	}
}

// Dispose releases the offscreen buffer.
func (p *Playing) Dispose() error {
	if p.canvas != nil {
		p.canvas.Deallocate()
		p.canvas = nil
	}
	return nil
}
