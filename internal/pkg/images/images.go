package images

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

const jpegQuality = 90

// ProfileSize and CoverSize are the fixed output dimensions for the two
// upload pipelines.
var (
	ProfileSize = Size{Width: 500, Height: 500}
	CoverSize   = Size{Width: 2000, Height: 1333}
)

type Size struct {
	Width  int
	Height int
}

// ResizeToFile decodes an uploaded image, resizes it to the given dimensions
// and writes it as a JPEG under dir with the given filename.
func ResizeToFile(data []byte, size Size, dir, filename string) error {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("decode image: %w", err)
	}

	resized := imaging.Resize(img, size.Width, size.Height, imaging.Lanczos)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	out := filepath.Join(dir, filename)
	if err := imaging.Save(resized, out, imaging.JPEGQuality(jpegQuality)); err != nil {
		return fmt.Errorf("save image: %w", err)
	}
	return nil
}

// Remove deletes a stored image by filename.
func Remove(dir, filename string) error {
	return os.Remove(filepath.Join(dir, filepath.Base(filename)))
}
