// Package content manages game assets behind typed resource IDs.
//
// Assets are registered once at startup and loaded lazily on first use;
// loaded assets are cached for the lifetime of the manager.
package content

import (
	"io"
	"io/fs"

	"github.com/hajimehoshi/ebiten/v2"
	eaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	resource "github.com/quasilyte/ebitengine-resource"

	"github.com/younwookim/gamecore/internal/infrastructure/logging"
)

// Manager loads and caches images, audio, fonts and raw data from a
// filesystem rooted at the configured content directory.
type Manager struct {
	loader *resource.Loader
}

// NewManager creates a manager reading assets from fsys.
// audioCtx may be nil when no audio assets will be registered.
func NewManager(audioCtx *eaudio.Context, fsys fs.FS) *Manager {
	l := resource.NewLoader(audioCtx)
	l.OpenAssetFunc = func(path string) io.ReadCloser {
		f, err := fsys.Open(path)
		if err != nil {
			// The loader has no error path; a registered asset that
			// cannot be opened is unrecoverable.
			logging.Fatalf("open asset %s: %v", path, err)
		}
		return f
	}
	return &Manager{loader: l}
}

// RegisterImages adds image assets to the registry.
func (m *Manager) RegisterImages(assets map[resource.ImageID]resource.ImageInfo) {
	m.loader.ImageRegistry.Assign(assets)
}

// RegisterAudio adds audio assets to the registry.
func (m *Manager) RegisterAudio(assets map[resource.AudioID]resource.AudioInfo) {
	m.loader.AudioRegistry.Assign(assets)
}

// RegisterFonts adds font assets to the registry.
func (m *Manager) RegisterFonts(assets map[resource.FontID]resource.FontInfo) {
	m.loader.FontRegistry.Assign(assets)
}

// RegisterRaws adds raw data assets to the registry.
func (m *Manager) RegisterRaws(assets map[resource.RawID]resource.RawInfo) {
	m.loader.RawRegistry.Assign(assets)
}

// Image returns the image registered under id, loading it on first use.
func (m *Manager) Image(id resource.ImageID) *ebiten.Image {
	return m.loader.LoadImage(id).Data
}

// FontFace returns the font registered under id as a text face.
func (m *Manager) FontFace(id resource.FontID) text.Face {
	return text.NewGoXFace(m.loader.LoadFont(id).Face)
}

// Raw returns the raw bytes registered under id.
func (m *Manager) Raw(id resource.RawID) []byte {
	return m.loader.LoadRaw(id).Data
}

// AudioPlayer returns the cached player for the audio asset registered
// under id. Restart playback through the audio controller.
func (m *Manager) AudioPlayer(id resource.AudioID) *eaudio.Player {
	return m.loader.LoadAudio(id).Player
}
