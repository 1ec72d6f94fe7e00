// Package title provides the title screen shown at startup.
package title

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var colorBG = color.RGBA{26, 26, 46, 255}

// Options configures a title scene.
type Options struct {
	Heading string
	Width   int
	Height  int
	// OnStart is called when the player confirms the start prompt.
	OnStart func()
}

// Title shows the game heading and a blinking start prompt.
type Title struct {
	heading string
	width   int
	height  int
	onStart func()
	frames  int
}

// New creates a title scene. It owns no content; Init and Dispose are
// bookkeeping only.
func New(opts Options) *Title {
	return &Title{
		heading: opts.Heading,
		width:   opts.Width,
		height:  opts.Height,
		onStart: opts.OnStart,
	}
}

func (t *Title) Init() error {
	t.frames = 0
	return nil
}

func (t *Title) Update(dt float64) error {
	t.frames++
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if t.onStart != nil {
			t.onStart()
		}
	}
	return nil
}

func (t *Title) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	ebitenutil.DebugPrintAt(screen, t.heading, t.width/2-len(t.heading)*3, t.height/2-30)

	// Blink at half-second intervals
	if (t.frames/30)%2 == 0 {
		prompt := "PRESS ENTER TO START"
		ebitenutil.DebugPrintAt(screen, prompt, t.width/2-len(prompt)*3, t.height/2)
	}

	ebitenutil.DebugPrint(screen, "ESC: Quit")
}

func (t *Title) Dispose() error {
	return nil
}
