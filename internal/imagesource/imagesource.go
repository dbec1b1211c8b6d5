// Package imagesource turns image files into relief images, and renders noise images for
// trying reliefs without a photo at hand.
package imagesource

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/anthonynsimon/bild/transform"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"lampforge/internal/relief"
)

// Load decodes the image file at path. See Decode for maxDim.
func Load(path string, maxDim int) (*relief.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()
	return Decode(f, maxDim)
}

// Decode reads a png, jpeg, gif, bmp, tiff or webp image and returns it with its format name.
// When maxDim > 0 and the longest side is larger, the image is scaled down to fit, keeping the
// aspect ratio.
func Decode(r io.Reader, maxDim int) (*relief.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("imagesource: decode: %w", err)
	}
	return relief.FromImage(Fit(img, maxDim)), format, nil
}

// Fit scales img down so that its longest side is at most maxDim.
func Fit(img image.Image, maxDim int) image.Image {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	if maxDim <= 0 || (w <= maxDim && h <= maxDim) {
		return img
	}
	if w >= h {
		h = max(1, h*maxDim/w)
		w = maxDim
	} else {
		w = max(1, w*maxDim/h)
		h = maxDim
	}
	return transform.Resize(img, w, h, transform.Linear)
}
