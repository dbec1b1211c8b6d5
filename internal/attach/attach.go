// Package attach builds the structural parts merged onto a shell: internal ribs, the lamp
// fitter and projected surface patterns. Each builder returns an independent closed mesh.
package attach

import "github.com/chewxy/math32"

// Overlap is how far a part reaches into the wall it is attached to, so the merged parts
// share material.
const Overlap float32 = 0.01

// Surface reports the wall a part attaches to. t is the normalized height (0 bottom, 1 top)
// and angle the polar angle atan2(z, x).
type Surface interface {
	Height() float32
	// Outer is the distance of the outside face of the wall from the axis.
	Outer(t, angle float32) float32
	// Inner is the distance of the inside face of the wall from the axis.
	Inner(t, angle float32) float32
}

// heightAt converts a normalized height into a Y coordinate.
func heightAt(s Surface, t float32) float32 {
	return -s.Height()/2 + s.Height()*t
}

// spread returns n angles evenly spaced over a full turn, starting at offset.
func spread(n int, offset float32) []float32 {
	out := make([]float32, n)
	for k := range out {
		out[k] = offset + 2*math32.Pi*float32(k)/float32(n)
	}
	return out
}
