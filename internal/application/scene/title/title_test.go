package title

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTitle_Lifecycle(t *testing.T) {
	s := New(Options{Heading: "Platform Arcade", Width: 320, Height: 240})

	require.NoError(t, s.Init())
	require.NoError(t, s.Update(1.0/60.0))
	assert.Equal(t, 1, s.frames)
	require.NoError(t, s.Dispose())
}

func TestTitle_InitResetsBlink(t *testing.T) {
	s := New(Options{Heading: "Platform Arcade", Width: 320, Height: 240})
	require.NoError(t, s.Init())

	for i := 0; i < 10; i++ {
		require.NoError(t, s.Update(1.0/60.0))
	}
	assert.Equal(t, 10, s.frames)

	require.NoError(t, s.Init())
	assert.Equal(t, 0, s.frames, "re-entering the title restarts the blink cycle")
}

func TestTitle_Draw(t *testing.T) {
	s := New(Options{Heading: "Platform Arcade", Width: 320, Height: 240})
	require.NoError(t, s.Init())

	screen := ebiten.NewImage(320, 240)
	assert.NotPanics(t, func() { s.Draw(screen) })

	// Past the blink interval the prompt is hidden; drawing must still work.
	s.frames = 31
	assert.NotPanics(t, func() { s.Draw(screen) })
}
