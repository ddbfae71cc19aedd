package images

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jpegBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 100, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))
	return buf.Bytes()
}

func TestResizeToFile(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, ResizeToFile(jpegBytes(t, 64, 48), ProfileSize, dir, "out.jpeg"))

	saved, err := imaging.Open(filepath.Join(dir, "out.jpeg"))
	require.NoError(t, err)
	assert.Equal(t, ProfileSize.Width, saved.Bounds().Dx())
	assert.Equal(t, ProfileSize.Height, saved.Bounds().Dy())
}

func TestResizeToFileRejectsGarbage(t *testing.T) {
	err := ResizeToFile([]byte("definitely not an image"), ProfileSize, t.TempDir(), "out.jpeg")
	assert.Error(t, err)
}

func TestRemove(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, ResizeToFile(jpegBytes(t, 10, 10), Size{Width: 20, Height: 20}, dir, "gone.jpeg"))

	require.NoError(t, Remove(dir, "gone.jpeg"))
	_, err := os.Stat(filepath.Join(dir, "gone.jpeg"))
	assert.True(t, os.IsNotExist(err))

	// path traversal in the filename is neutralized
	assert.Error(t, Remove(dir, "../gone.jpeg"))
}
