package pipeline

import (
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/hyperwalk/hypergraph"
	"github.com/katalvlaran/hyperwalk/preprocess"
	"github.com/katalvlaran/hyperwalk/representation"
)

const methodRun = "Run"

// DefaultWorkers bounds concurrent jobs when WithWorkers is not given.
const DefaultWorkers = 4

// Report is the outcome of one job.
type Report struct {
	Job     Job
	Summary representation.Summary
	Elapsed time.Duration
	Err     error
}

// Option configures Run.
type Option func(*options)

type options struct {
	logger  *zap.Logger
	workers int
}

// WithLogger sets the logger. Nil panics.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("pipeline: WithLogger(nil)")
	}

	return func(o *options) { o.logger = l }
}

// WithWorkers bounds how many jobs run at once. n < 1 panics.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("pipeline: WithWorkers(%d): need at least 1", n))
	}

	return func(o *options) { o.workers = n }
}

// Run executes jobs against h and pre. Reports come back in job order, one
// per job, whether or not it failed. The error joins every job failure.
func Run(h *hypergraph.Hypergraph, pre *preprocess.Result, jobs []Job, opts ...Option) ([]Report, error) {
	o := options{logger: zap.NewNop(), workers: DefaultWorkers}
	for _, opt := range opts {
		opt(&o)
	}

	reports := make([]Report, len(jobs))
	var g errgroup.Group
	g.SetLimit(o.workers)
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			reports[i] = runJob(h, pre, job, o.logger)
			// Failures are collected from reports; siblings keep running.
			return nil
		})
	}
	_ = g.Wait()

	var errs []error
	for _, r := range reports {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	if len(errs) > 0 {
		return reports, fmt.Errorf("%s: %d of %d jobs failed: %w", methodRun, len(errs), len(jobs), errors.Join(errs...))
	}

	return reports, nil
}

func runJob(h *hypergraph.Hypergraph, pre *preprocess.Result, job Job, logger *zap.Logger) Report {
	log := logger.With(zap.String("kind", job.Kind.String()), zap.String("walk", job.Walk.String()), zap.String("path", job.Path))
	start := time.Now()
	rep := Report{Job: job}

	rep.Summary, rep.Err = project(h, pre, job)
	rep.Elapsed = time.Since(start)
	if rep.Err != nil {
		log.Error("projection failed", zap.Error(rep.Err), zap.Duration("elapsed", rep.Elapsed))
		return rep
	}
	log.Info("projection written",
		zap.Int("links", rep.Summary.Links),
		zap.Int("pruned", rep.Summary.Pruned),
		zap.Int("degenerate", rep.Summary.Degenerate),
		zap.Duration("elapsed", rep.Elapsed))
	if rep.Summary.Degenerate > 0 {
		log.Warn("transitions skipped for a non-positive normaliser", zap.Int("degenerate", rep.Summary.Degenerate))
	}

	return rep
}

func project(h *hypergraph.Hypergraph, pre *preprocess.Result, job Job) (sum representation.Summary, err error) {
	p, err := representation.New(job.Kind)
	if err != nil {
		return sum, fmt.Errorf("%s: %w", job, err)
	}

	f, err := os.Create(job.Path)
	if err != nil {
		return sum, fmt.Errorf("%s: %w", job, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%s: close: %w", job, cerr)
		}
	}()

	sum, err = p.Project(h, pre, job.Walk, f)
	if err != nil {
		return sum, fmt.Errorf("%s: %w", job, err)
	}

	return sum, nil
}
