// Package batch expands many expressions concurrently on a bounded pool.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/njchilds90/goseries/series"
	"github.com/njchilds90/goseries/symbolic"
)

// Job is one expansion request.
type Job struct {
	Expr symbolic.Expr
	Var  string
	Prec int
}

// Result pairs a job's series with its error. Exactly one is set.
type Result struct {
	Series *series.Series
	Err    error
}

type Runner struct {
	workers int
	logger  *slog.Logger
}

// New returns a Runner running at most workers jobs at once. workers <= 0
// means GOMAXPROCS.
func New(workers int, logger *slog.Logger) *Runner {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{workers: workers, logger: logger}
}

func (r *Runner) expand(ctx context.Context, i int, job Job) (*series.Series, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	s, err := series.Expand(job.Expr, job.Var, job.Prec)
	if err != nil {
		r.logger.DebugContext(ctx, "job failed", "job", i, "var", job.Var, "prec", job.Prec, "error", err)
		return nil, fmt.Errorf("job %d: %w", i, err)
	}
	r.logger.DebugContext(ctx, "job done", "job", i, "var", job.Var, "prec", job.Prec,
		"degree", s.Degree(), "elapsed", time.Since(start))
	return s, nil
}

// Run expands every job and returns the series in job order. The first
// failure cancels the jobs that have not started and is returned.
func (r *Runner) Run(ctx context.Context, jobs []Job) ([]*series.Series, error) {
	if len(jobs) == 0 {
		return nil, nil
	}
	// Each goroutine writes only its own index.
	out := make([]*series.Series, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(r.workers, len(jobs)))
	for i, job := range jobs {
		g.Go(func() error {
			s, err := r.expand(gctx, i, job)
			if err != nil {
				return err
			}
			out[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// Collect expands every job and reports each outcome separately, in job
// order. Only cancellation of ctx stops the remaining jobs.
func (r *Runner) Collect(ctx context.Context, jobs []Job) []Result {
	out := make([]Result, len(jobs))
	if len(jobs) == 0 {
		return out
	}
	var g errgroup.Group
	g.SetLimit(min(r.workers, len(jobs)))
	for i, job := range jobs {
		g.Go(func() error {
			s, err := r.expand(ctx, i, job)
			out[i] = Result{Series: s, Err: err}
			return nil
		})
	}
	_ = g.Wait()
	return out
}
