// Package input provides a per-frame keyboard snapshot for the game loop.
//
// The snapshot is refreshed once at the top of each frame, so every
// collaborator querying it within the same frame observes the same state.
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// pollFunc appends the currently pressed keys to keys. It matches the
// signature of inpututil.AppendPressedKeys and is swappable in tests.
type pollFunc func(keys []ebiten.Key) []ebiten.Key

// Manager holds the keyboard state for the current and previous frame.
type Manager struct {
	poll pollFunc
	curr map[ebiten.Key]bool
	prev map[ebiten.Key]bool
	buf  []ebiten.Key
}

// NewManager creates a manager backed by the real keyboard.
func NewManager() *Manager {
	return newManager(inpututil.AppendPressedKeys)
}

func newManager(poll pollFunc) *Manager {
	return &Manager{
		poll: poll,
		curr: make(map[ebiten.Key]bool),
		prev: make(map[ebiten.Key]bool),
	}
}

// Update refreshes the snapshot. Call once per frame, before any queries.
func (m *Manager) Update(dt float64) {
	m.prev, m.curr = m.curr, m.prev
	clear(m.curr)
	m.buf = m.poll(m.buf[:0])
	for _, k := range m.buf {
		m.curr[k] = true
	}
}

// IsKeyDown reports whether key is held down in the current snapshot.
func (m *Manager) IsKeyDown(key ebiten.Key) bool {
	return m.curr[key]
}

// IsKeyJustPressed reports whether key went down this frame.
func (m *Manager) IsKeyJustPressed(key ebiten.Key) bool {
	return m.curr[key] && !m.prev[key]
}
