package content

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	resource "github.com/quasilyte/ebitengine-resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testRawStage resource.RawID = iota + 1
)

const (
	testImageTile resource.ImageID = iota + 1
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 128, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestManager_Raw(t *testing.T) {
	fsys := fstest.MapFS{
		"stages/demo.json": &fstest.MapFile{Data: []byte(`{"id":"demo"}`)},
	}
	m := NewManager(nil, fsys)
	m.RegisterRaws(map[resource.RawID]resource.RawInfo{
		testRawStage: {Path: "stages/demo.json"},
	})

	data := m.Raw(testRawStage)
	assert.JSONEq(t, `{"id":"demo"}`, string(data))
}

func TestManager_RawIsCached(t *testing.T) {
	fsys := fstest.MapFS{
		"data.bin": &fstest.MapFile{Data: []byte{1, 2, 3}},
	}
	m := NewManager(nil, fsys)
	m.RegisterRaws(map[resource.RawID]resource.RawInfo{
		testRawStage: {Path: "data.bin"},
	})

	first := m.Raw(testRawStage)
	second := m.Raw(testRawStage)
	assert.Equal(t, first, second)
}

func TestManager_Image(t *testing.T) {
	fsys := fstest.MapFS{
		"tiles/wall.png": &fstest.MapFile{Data: encodePNG(t, 4, 2)},
	}
	m := NewManager(nil, fsys)
	m.RegisterImages(map[resource.ImageID]resource.ImageInfo{
		testImageTile: {Path: "tiles/wall.png"},
	})

	img := m.Image(testImageTile)
	require.NotNil(t, img)
	bounds := img.Bounds()
	assert.Equal(t, 4, bounds.Dx())
	assert.Equal(t, 2, bounds.Dy())
}
