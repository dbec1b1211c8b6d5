// Package noise holds the stateless, seeded scalar fields used to displace shells and to
// synthesize demo images. Every function is deterministic for a given seed.
package noise

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Trig3 is a closed-form trigonometric pseudo-noise in [-1,1]: smooth, periodic, and the
// same for the same seed on every platform.
func Trig3(x, y, z, seed float32) float32 {
	return math32.Sin(1.7*x+0.13*seed) *
		math32.Cos(1.3*y+0.71*seed) *
		math32.Sin(1.9*z+0.37*seed)
}

// Octaves2 sums two octaves of Trig3: the base octave weighted 0.7 and a second one at
// double frequency (and shifted seed) weighted 0.3. Output stays in [-1,1].
func Octaves2(x, y, z, seed float32) float32 {
	return 0.7*Trig3(x, y, z, seed) + 0.3*Trig3(2*x, 2*y, 2*z, seed+1)
}

// Ridged folds Octaves2 into ridges: 1 at the zero crossings, falling to 0 at the extremes.
func Ridged(x, y, z, seed float32) float32 {
	return 1 - math32.Abs(Octaves2(x, y, z, seed))
}

// Fractal2D is layered smooth value noise with configurable octaves, lacunarity and gain.
// Output is in [0,1].
func Fractal2D(x, y float32, seed int64, octaves int, lacunarity, gain float32) float32 {
	var sum float32
	var amplitude float32 = 1
	var maxAmp float32
	freq := float32(1)

	for i := 0; i < octaves; i++ {
		n := ValueNoise2D(x*freq, y*freq, int32(seed)+int32(i))
		sum += n * amplitude
		maxAmp += amplitude
		amplitude *= gain
		freq *= lacunarity
	}
	if maxAmp == 0 {
		return 0
	}
	return sum / maxAmp
}

// ValueNoise2D is smooth value noise in [0,1] over a hashed integer lattice.
func ValueNoise2D(x, y float32, seed int32) float32 {
	x0 := int32(math32.Floor(x))
	y0 := int32(math32.Floor(y))
	tx := x - float32(x0)
	ty := y - float32(y0)

	v00 := Hash2D(x0, y0, seed)
	v10 := Hash2D(x0+1, y0, seed)
	v01 := Hash2D(x0, y0+1, seed)
	v11 := Hash2D(x0+1, y0+1, seed)

	sx := SmoothStep(tx)
	sy := SmoothStep(ty)

	return Lerp(Lerp(v00, v10, sx), Lerp(v01, v11, sx), sy)
}

// Hash2D maps integer lattice coordinates to a deterministic pseudo-random float in [0,1].
func Hash2D(x, y, seed int32) float32 {
	n := x*374761393 + y*668265263 + seed*362437
	n = (n ^ (n >> 13)) * 1274126177
	n = n ^ (n >> 16)
	const invMaxInt = 1.0 / 2147483647.0
	return float32(n&0x7fffffff) * float32(invMaxInt)
}

// Finite reports whether every v is neither NaN nor infinite.
func Finite[T constraints.Float](vs ...T) bool {
	for _, v := range vs {
		if f := float64(v); math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// Lerp interpolates linearly from a (t=0) to b (t=1).
func Lerp[T constraints.Float](a, b, t T) T {
	return a + (b-a)*t
}

// Clamp limits v to [lo, hi].
func Clamp[T constraints.Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SmoothStep is cubic easing 3t²-2t³, clamped to [0,1].
func SmoothStep[T constraints.Float](t T) T {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}
