package batch

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lampforge/internal/attach"
	"lampforge/internal/mesh"
	"lampforge/internal/profile"
	"lampforge/internal/relief"
	"lampforge/internal/shape"
)

func drum(segments int) shape.Params {
	return shape.Params{
		Style:        shape.RibbedDrum{RibCount: 24, RibDepth: 0.4},
		Silhouette:   profile.Straight,
		Height:       15,
		TopRadius:    5,
		BottomRadius: 8,
		Thickness:    0.8,
		Segments:     segments,
		Fitter:       attach.FitterSpec{Type: attach.FitterNone},
		Pattern:      attach.PatternSpec{Type: attach.PatternNone},
	}
}

func TestRunKeepsInputOrder(t *testing.T) {
	var jobs []Job
	for _, n := range []int{8, 16, 32, 64} {
		jobs = append(jobs, ShapeJob(fmt.Sprintf("drum-%d", n), drum(n)))
	}
	jobs = append(jobs, ReliefJob("shell", nil, relief.Params{
		Carrier: relief.Flat, Width: 10, Height: 10, MinThickness: 0.6, MaxThickness: 3, Resolution: 10,
	}))

	results, err := Run(context.Background(), jobs, 2, nil)
	require.NoError(t, err)
	require.Len(t, results, len(jobs))
	assert.Empty(t, Failed(results))

	seen := map[uuid.UUID]bool{}
	for i, r := range results {
		assert.Equal(t, jobs[i].Name, r.Name)
		assert.False(t, seen[r.ID])
		seen[r.ID] = true
		assert.True(t, r.Stats.Watertight, r.Name)
		require.NotNil(t, r.Mesh)
	}
	for i, n := range []int{8, 16, 32, 64} {
		assert.Equal(t, 2*(shape.ProfileSteps+1)*n, results[i].Stats.Vertices)
	}
}

func TestRunCollectsFailures(t *testing.T) {
	bad := drum(64)
	bad.Segments = 2
	jobs := []Job{
		ShapeJob("ok", drum(16)),
		ShapeJob("bad", bad),
		{Name: "boom", Generate: func() (*mesh.Mesh, error) { return nil, errors.New("boom") }},
	}

	results, err := Run(context.Background(), jobs, 0, nil)
	require.NoError(t, err)
	assert.NoError(t, results[0].Err)
	assert.True(t, errors.Is(results[1].Err, mesh.ErrInvalidParameter))
	assert.Nil(t, results[1].Mesh)
	assert.EqualError(t, results[2].Err, "boom: boom")
	assert.Len(t, Failed(results), 2)
}

func TestRunStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	job := Job{Name: "count", Generate: func() (*mesh.Mesh, error) {
		calls.Add(1)
		return mesh.New(0, 0), nil
	}}
	results, err := Run(ctx, []Job{job, job, job}, 1, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls.Load())
	for _, r := range results {
		assert.ErrorIs(t, r.Err, context.Canceled)
	}
}
