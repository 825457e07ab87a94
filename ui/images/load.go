package images

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Load decodes the image at path. JPEG, PNG, BMP, TIFF and GIF are supported;
// EXIF orientation is applied so on-screen pixels match what the user expects.
// The returned image is never mutated by this package.
func Load(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", path, err)
	}
	return img, nil
}

// Snapshot returns an independent NRGBA copy of img with its origin at (0, 0).
func Snapshot(img image.Image) *image.NRGBA {
	if img == nil {
		return nil
	}
	return imaging.Clone(img)
}
