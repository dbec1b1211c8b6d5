package relief

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/clone"
	"github.com/chewxy/math32"

	"lampforge/internal/mesh"
	"lampforge/internal/noise"
)

// Image is an RGBA raster with 4 bytes per pixel, row 0 at the top.
type Image struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewImage returns a transparent black image.
func NewImage(w, h int) *Image {
	return &Image{Width: w, Height: h, Pix: make([]uint8, 4*w*h)}
}

// FromImage copies any decoded image into an Image.
func FromImage(src image.Image) *Image {
	rgba := clone.AsRGBA(src)
	b := rgba.Bounds()
	img := NewImage(b.Dx(), b.Dy())
	for y := 0; y < img.Height; y++ {
		off := rgba.PixOffset(b.Min.X, b.Min.Y+y)
		copy(img.Pix[4*y*img.Width:4*(y+1)*img.Width], rgba.Pix[off:off+4*img.Width])
	}
	return img
}

// Set writes one pixel.
func (img *Image) Set(x, y int, r, g, b, a uint8) {
	i := 4 * (y*img.Width + x)
	img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = r, g, b, a
}

// Fill sets every pixel to one colour.
func (img *Image) Fill(r, g, b, a uint8) {
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = r, g, b, a
	}
}

// Aspect is width over height.
func (img *Image) Aspect() float32 {
	return float32(img.Width) / float32(img.Height)
}

func (img *Image) validate() error {
	if img == nil || img.Width <= 0 || img.Height <= 0 {
		return fmt.Errorf("relief: %w: empty image", mesh.ErrInvalidParameter)
	}
	if len(img.Pix) < 4*img.Width*img.Height {
		return fmt.Errorf("relief: %w: %d bytes for a %dx%d image", mesh.ErrInvalidParameter, len(img.Pix), img.Width, img.Height)
	}
	return nil
}

// Blur returns a copy smoothed by a horizontal then a vertical box pass of the given radius.
// Windows are cut at the image border. Alpha is copied unchanged.
func (img *Image) Blur(radius int) *Image {
	out := &Image{Width: img.Width, Height: img.Height, Pix: append([]uint8(nil), img.Pix[:4*img.Width*img.Height]...)}
	if radius < 1 {
		return out
	}
	tmp := append([]uint8(nil), out.Pix...)
	boxPass(out.Pix, tmp, img.Width, img.Height, radius, 4, 4*img.Width)
	boxPass(tmp, out.Pix, img.Height, img.Width, radius, 4*img.Width, 4)
	return out
}

// boxPass averages src into dst along lines of n pixels, step bytes apart; lines are stride
// bytes apart.
func boxPass(src, dst []uint8, n, lines, radius, step, stride int) {
	for l := 0; l < lines; l++ {
		base := l * stride
		for i := 0; i < n; i++ {
			lo, hi := max(0, i-radius), min(n-1, i+radius)
			for c := 0; c < 3; c++ {
				sum := 0
				for k := lo; k <= hi; k++ {
					sum += int(src[base+k*step+c])
				}
				dst[base+i*step+c] = uint8((sum + (hi-lo+1)/2) / (hi - lo + 1))
			}
		}
	}
}

// luminance holds one adjusted luminance in [0,1] per pixel.
type luminance struct {
	w, h int
	v    []float32
}

// contrastFactor is the classic 259·(c+255) / (255·(259−c)) contrast curve.
func contrastFactor(contrast float32) float32 {
	return 259 * (contrast + 255) / (255 * (259 - contrast))
}

func newLuminance(img *Image, brightness, contrast float32) luminance {
	cf := contrastFactor(contrast)
	adjust := func(c uint8) float32 {
		return noise.Clamp(cf*(float32(c)+brightness-128)+128, 0, 255)
	}
	l := luminance{w: img.Width, h: img.Height, v: make([]float32, img.Width*img.Height)}
	for i := range l.v {
		p := img.Pix[4*i : 4*i+3]
		l.v[i] = (0.299*adjust(p[0]) + 0.587*adjust(p[1]) + 0.114*adjust(p[2])) / 255
	}
	return l
}

// at samples bilinearly at continuous pixel coordinates.
func (l luminance) at(x, y float32) float32 {
	x = noise.Clamp(x, 0, float32(l.w-1))
	y = noise.Clamp(y, 0, float32(l.h-1))
	x0, y0 := int(x), int(y)
	x1, y1 := min(x0+1, l.w-1), min(y0+1, l.h-1)
	fx, fy := x-math32.Floor(x), y-math32.Floor(y)
	top := noise.Lerp(l.v[y0*l.w+x0], l.v[y0*l.w+x1], fx)
	bottom := noise.Lerp(l.v[y1*l.w+x0], l.v[y1*l.w+x1], fx)
	return noise.Lerp(top, bottom, fy)
}
