// Package batch generates many meshes concurrently, for example every preset in a directory.
package batch

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"lampforge/internal/engine"
	"lampforge/internal/mesh"
	"lampforge/internal/relief"
	"lampforge/internal/shape"
)

// Job is one mesh to generate.
type Job struct {
	Name     string
	Generate func() (*mesh.Mesh, error)
}

// ShapeJob generates a shade.
func ShapeJob(name string, p shape.Params) Job {
	return Job{Name: name, Generate: func() (*mesh.Mesh, error) { return engine.GenerateShapeMesh(p) }}
}

// ReliefJob generates a lithophane, or the plain shell when img is nil.
func ReliefJob(name string, img *relief.Image, p relief.Params) Job {
	return Job{Name: name, Generate: func() (*mesh.Mesh, error) { return engine.GenerateReliefOrShell(img, p) }}
}

// Result is the outcome of one job. Mesh is nil when Err is set.
type Result struct {
	ID      uuid.UUID     `yaml:"id"`
	Name    string        `yaml:"name"`
	Stats   mesh.Stats    `yaml:"stats"`
	Elapsed time.Duration `yaml:"elapsed"`
	Err     error         `yaml:"-"`
	Mesh    *mesh.Mesh    `yaml:"-"`
}

// Run generates jobs with at most workers at a time (GOMAXPROCS when workers < 1) and returns
// one result per job in input order. A failing job does not stop the others; the returned error
// is non-nil only when ctx ends first, in which case unstarted jobs carry ctx's error.
func Run(ctx context.Context, jobs []Job, workers int, log *zap.Logger) ([]Result, error) {
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	if log == nil {
		log = zap.NewNop()
	}
	results := make([]Result, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, job := range jobs {
		results[i] = Result{ID: uuid.New(), Name: job.Name}
		g.Go(func() error {
			r := &results[i]
			if err := gctx.Err(); err != nil {
				r.Err = err
				return err
			}
			start := time.Now()
			m, err := job.Generate()
			r.Elapsed = time.Since(start)
			if err != nil {
				r.Err = fmt.Errorf("%s: %w", job.Name, err)
				log.Warn("job failed", zap.String("id", r.ID.String()), zap.String("name", job.Name), zap.Error(err))
				return nil
			}
			r.Mesh = m
			r.Stats = mesh.Analyze(m)
			log.Info("job done",
				zap.String("id", r.ID.String()),
				zap.String("name", job.Name),
				zap.Int("triangles", r.Stats.Triangles),
				zap.Duration("elapsed", r.Elapsed))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, ctx.Err()
}

// Failed returns the results that carry an error.
func Failed(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if r.Err != nil {
			out = append(out, r)
		}
	}
	return out
}
