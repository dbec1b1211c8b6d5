package profile

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"lampforge/internal/mesh"
)

func drum() Spec {
	return Spec{Silhouette: Straight, Height: 15, TopRadius: 5, BottomRadius: 8, Thickness: 0.8}
}

func TestBuildSampleCountsAndOrder(t *testing.T) {
	p, err := Build(drum(), 60)
	require.NoError(t, err)
	require.Len(t, p.Outer, 61)
	require.Len(t, p.Inner, 61)
	assert.Len(t, p.Loop(), 122)

	assert.Equal(t, float32(-7.5), p.Outer[0].Y)
	assert.Equal(t, float32(7.5), p.Outer[60].Y)
	assert.Equal(t, float32(7.5), p.Inner[0].Y)
	assert.Equal(t, float32(-7.5), p.Inner[60].Y)
	for i := 1; i < len(p.Outer); i++ {
		assert.Greater(t, p.Outer[i].Y, p.Outer[i-1].Y)
		assert.Less(t, p.Inner[i].Y, p.Inner[i-1].Y)
	}
	// the inner wall mirrors the outer one
	for i := range p.Outer {
		assert.InDelta(t, p.Outer[i].R-0.8, p.Inner[len(p.Inner)-1-i].R, 1e-5)
	}
}

func TestStraightIsExactLerp(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		top := rapid.Float32Range(0.5, 50).Draw(t, "top")
		bottom := rapid.Float32Range(0.5, 50).Draw(t, "bottom")
		tt := rapid.Float32Range(0, 1).Draw(t, "t")
		s := Spec{Silhouette: Straight, Height: 10, TopRadius: top, BottomRadius: bottom, Thickness: 0.1}
		want := top + (bottom-top)*tt
		if got := s.OuterRadius(tt); want >= OuterFloor && got != want {
			t.Fatalf("radius(%v) = %v, want %v", tt, got, want)
		}
	})
}

func TestSilhouetteFactors(t *testing.T) {
	tests := []struct {
		s    Silhouette
		t    float32
		want float32
	}{
		{Straight, 0.5, 1},
		{Hourglass, 0.5, 0.7},
		{Hourglass, 0, 1},
		{Bell, 0, 1.4},
		{Bell, 1, 1},
		{Convex, 0.5, 1.2},
		{Concave, 0.5, 0.8},
		{Concave, 0, 1},
	}
	for _, tt := range tests {
		t.Run(string(tt.s), func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.s.Factor(tt.t), 1e-5)
		})
	}
}

func TestSilhouetteIsContinuous(t *testing.T) {
	for _, s := range Silhouettes {
		prev := s.Factor(0)
		for i := 1; i <= 1000; i++ {
			f := s.Factor(float32(i) / 1000)
			assert.Less(t, math32.Abs(f-prev), float32(0.01), "%s jumps at %d", s, i)
			prev = f
		}
	}
}

func TestRadiusFloors(t *testing.T) {
	s := Spec{Silhouette: Straight, Height: 4, TopRadius: 0, BottomRadius: 4, Thickness: 0.5}
	assert.Equal(t, OuterFloor, s.OuterRadius(0))
	assert.Equal(t, InnerFloor, s.InnerRadius(0))
	assert.Equal(t, float32(4), s.OuterRadius(1))
}

func TestInsetShiftsBothWalls(t *testing.T) {
	base := drum()
	inset := base
	inset.Inset = 1.5
	for _, tt := range []float32{0, 0.3, 1} {
		assert.InDelta(t, base.OuterRadius(tt)-1.5, inset.OuterRadius(tt), 1e-5)
		assert.InDelta(t, base.InnerRadius(tt)-1.5, inset.InnerRadius(tt), 1e-5)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Spec)
		steps  int
		want   error
	}{
		{"too few steps", func(s *Spec) {}, 1, mesh.ErrInvalidParameter},
		{"zero height", func(s *Spec) { s.Height = 0 }, 10, mesh.ErrInvalidParameter},
		{"negative radius", func(s *Spec) { s.TopRadius = -1 }, 10, mesh.ErrInvalidParameter},
		{"zero thickness", func(s *Spec) { s.Thickness = 0 }, 10, mesh.ErrInvalidParameter},
		{"thickness reaches radius", func(s *Spec) { s.Thickness = 5 }, 10, mesh.ErrInvalidParameter},
		{"hourglass waist too thin", func(s *Spec) { s.Silhouette = Hourglass; s.Thickness = 4.6 }, 10, mesh.ErrInvalidParameter},
		{"unknown silhouette", func(s *Spec) { s.Silhouette = "teardrop" }, 10, mesh.ErrUnsupportedShapeType},
		{"nan top radius", func(s *Spec) { s.TopRadius = math32.NaN() }, 10, mesh.ErrInvalidParameter},
		{"nan bottom radius", func(s *Spec) { s.BottomRadius = math32.NaN() }, 10, mesh.ErrInvalidParameter},
		{"nan thickness", func(s *Spec) { s.Thickness = math32.NaN() }, 10, mesh.ErrInvalidParameter},
		{"infinite height", func(s *Spec) { s.Height = math32.Inf(1) }, 10, mesh.ErrInvalidParameter},
		{"infinite radius", func(s *Spec) { s.TopRadius = math32.Inf(1) }, 10, mesh.ErrInvalidParameter},
		{"nan inset", func(s *Spec) { s.Inset = math32.NaN() }, 10, mesh.ErrInvalidParameter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := drum()
			tt.mutate(&s)
			_, err := Build(s, tt.steps)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestParseSilhouette(t *testing.T) {
	s, err := ParseSilhouette("bell")
	require.NoError(t, err)
	assert.Equal(t, Bell, s)

	s, err = ParseSilhouette("")
	require.NoError(t, err)
	assert.Equal(t, Straight, s)

	_, err = ParseSilhouette("blob")
	assert.ErrorIs(t, err, mesh.ErrUnsupportedShapeType)
}
