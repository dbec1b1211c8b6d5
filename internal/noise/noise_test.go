package noise

import (
	"math"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestTrig3Deterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := rapid.Float32Range(-100, 100).Draw(t, "x")
		y := rapid.Float32Range(-100, 100).Draw(t, "y")
		z := rapid.Float32Range(-100, 100).Draw(t, "z")
		seed := rapid.Float32Range(0, 1000).Draw(t, "seed")

		a := Octaves2(x, y, z, seed)
		b := Octaves2(x, y, z, seed)
		if a != b {
			t.Fatalf("Octaves2 not deterministic: %v != %v", a, b)
		}
		if a < -1 || a > 1 {
			t.Fatalf("Octaves2 out of range: %v", a)
		}
		if r := Ridged(x, y, z, seed); r < 0 || r > 1 {
			t.Fatalf("Ridged out of range: %v", r)
		}
	})
}

func TestTrig3SeedChangesField(t *testing.T) {
	differs := false
	for i := 0; i < 16; i++ {
		p := float32(i) * 0.37
		if Trig3(p, p*0.5, p*0.25, 1) != Trig3(p, p*0.5, p*0.25, 2) {
			differs = true
		}
	}
	assert.True(t, differs)
}

func TestValueNoiseRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		x := rapid.Float32Range(-50, 50).Draw(t, "x")
		y := rapid.Float32Range(-50, 50).Draw(t, "y")
		seed := rapid.Int64Range(1, 1<<20).Draw(t, "seed")
		v := Fractal2D(x, y, seed, 4, 2, 0.5)
		if v < 0 || v > 1 {
			t.Fatalf("Fractal2D out of [0,1]: %v", v)
		}
	})
}

func TestValueNoiseMatchesLatticeAtIntegers(t *testing.T) {
	assert.Equal(t, Hash2D(3, 7, 11), ValueNoise2D(3, 7, 11))
	assert.Equal(t, Hash2D(-2, 5, 11), ValueNoise2D(-2, 5, 11))
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, float32(2.5), Lerp[float32](2, 3, 0.5))
	assert.Equal(t, 0.0, Clamp(-1.0, 0, 1))
	assert.Equal(t, 1.0, Clamp(2.0, 0, 1))
	assert.Equal(t, 0.25, Clamp(0.25, 0, 1))
	assert.Equal(t, 0.5, SmoothStep(0.5))
	assert.Equal(t, 0.0, SmoothStep(-3.0))
	assert.Equal(t, 1.0, SmoothStep(4.0))
	assert.Zero(t, Fractal2D(1, 1, 1, 0, 2, 0.5))
}

func TestFinite(t *testing.T) {
	assert.True(t, Finite[float32]())
	assert.True(t, Finite[float32](0, -3, 1e30))
	assert.False(t, Finite(1, math32.NaN()))
	assert.False(t, Finite(math32.Inf(-1)))
	assert.False(t, Finite(math.Inf(1), 2))
}
