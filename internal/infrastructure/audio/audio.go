// Package audio provides the audio controller that owns the process
// audio context and the players started through it.
package audio

import (
	eaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/younwookim/gamecore/internal/infrastructure/logging"
)

// DefaultSampleRate is used when no sample rate is configured.
const DefaultSampleRate = 44100

// Controller owns the audio context. The underlying context may be
// created only once per process, so at most one Controller can exist;
// the core's construction guard enforces that.
type Controller struct {
	ctx *eaudio.Context

	// players created by this controller, closed when they finish
	owned []*eaudio.Player
}

// NewController creates the controller and the process audio context.
func NewController(sampleRate int) *Controller {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	return &Controller{ctx: eaudio.NewContext(sampleRate)}
}

// Context returns the audio context for collaborators that decode or
// register audio assets.
func (c *Controller) Context() *eaudio.Context {
	return c.ctx
}

// PlayBytes starts playback of raw PCM data and tracks the resulting
// player until it finishes.
func (c *Controller) PlayBytes(pcm []byte) *eaudio.Player {
	p := c.ctx.NewPlayerFromBytes(pcm)
	p.Play()
	c.owned = append(c.owned, p)
	return p
}

// Play restarts an externally owned player, typically one cached by the
// content manager. The caller keeps ownership; the controller does not
// close it.
func (c *Controller) Play(p *eaudio.Player) {
	if err := p.Rewind(); err != nil {
		logging.Warnf("rewind player: %v", err)
	}
	p.Play()
}

// Update closes and drops owned players that finished playing.
// Call once per frame.
func (c *Controller) Update() {
	kept := c.owned[:0]
	for _, p := range c.owned {
		if p.IsPlaying() {
			kept = append(kept, p)
			continue
		}
		if err := p.Close(); err != nil {
			logging.Warnf("close finished player: %v", err)
		}
	}
	for i := len(kept); i < len(c.owned); i++ {
		c.owned[i] = nil
	}
	c.owned = kept
}

// Close stops and closes every owned player. The audio context itself
// has no close operation; it lives for the rest of the process.
func (c *Controller) Close() error {
	var first error
	for _, p := range c.owned {
		if err := p.Close(); err != nil && first == nil {
			first = err
		}
	}
	c.owned = nil
	return first
}
