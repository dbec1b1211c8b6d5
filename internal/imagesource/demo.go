package imagesource

import (
	"time"

	"lampforge/internal/noise"
	"lampforge/internal/relief"
)

// DemoOptions controls the procedural demo image.
// Seed controls randomness; Seed == 0 uses a time-based seed.
// Octaves, Frequency, Lacunarity, and Gain control the fractal noise shape.
type DemoOptions struct {
	Width  int
	Height int

	Seed       int64
	Octaves    int
	Frequency  float32
	Lacunarity float32
	Gain       float32
}

// DefaultDemoOptions returns a sane default configuration.
func DefaultDemoOptions() DemoOptions {
	return DemoOptions{
		Width:      128,
		Height:     128,
		Seed:       0,
		Octaves:    4,
		Frequency:  0.05,
		Lacunarity: 2.0,
		Gain:       0.5,
	}
}

// Demo renders fractal value noise as an opaque grayscale image.
func Demo(opts DemoOptions) *relief.Image {
	def := DefaultDemoOptions()
	if opts.Width <= 0 {
		opts.Width = def.Width
	}
	if opts.Height <= 0 {
		opts.Height = def.Height
	}
	if opts.Octaves <= 0 {
		opts.Octaves = def.Octaves
	}
	if opts.Frequency <= 0 {
		opts.Frequency = def.Frequency
	}
	if opts.Lacunarity <= 0 {
		opts.Lacunarity = def.Lacunarity
	}
	if opts.Gain <= 0 {
		opts.Gain = def.Gain
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	img := relief.NewImage(opts.Width, opts.Height)
	for y := 0; y < opts.Height; y++ {
		for x := 0; x < opts.Width; x++ {
			h := noise.Fractal2D(float32(x)*opts.Frequency, float32(y)*opts.Frequency, seed, opts.Octaves, opts.Lacunarity, opts.Gain)
			v := uint8(noise.Clamp(h, 0, 1) * 255)
			img.Set(x, y, v, v, v, 255)
		}
	}
	return img
}
