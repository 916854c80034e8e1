// Package runner executes batches of graph jobs concurrently.
//
// Each job builds its own graph or grid and dispatches to one algorithm
// package; no state is shared between jobs. A failing job is reported in
// its Result and never stops the batch.
//
// The runner is a demo harness for cmd/graphrun. It is not part of the
// library API: the algorithm packages never import it and carry no
// scheduling of their own.
package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Status values recorded per job.
const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// Observer receives one call per finished job. *metrics.Recorder implements it.
type Observer interface {
	Observe(kind, status string, elapsed time.Duration)
}

// Result is the outcome of one job.
type Result struct {
	RunID   string `json:"run_id"`
	Job     string `json:"job"`
	Kind    string `json:"kind"`
	Status  string `json:"status"`
	Value   any    `json:"value,omitempty"`
	Error   string `json:"error,omitempty"`
	Elapsed int64  `json:"elapsed_us"`
}

// Option configures a Runner.
type Option func(*Runner)

// WithWorkers caps how many jobs run at once. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n >= 1 {
			r.workers = n
		}
	}
}

// WithTimeout bounds each job. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(r *Runner) { r.timeout = d }
}

// WithObserver reports every finished job to o.
func WithObserver(o Observer) Option {
	return func(r *Runner) { r.observer = o }
}

// Runner runs jobs with a bounded worker pool.
type Runner struct {
	log      logrus.FieldLogger
	workers  int
	timeout  time.Duration
	observer Observer
}

// New returns a Runner logging to log, with one worker and no timeout by default.
func New(log logrus.FieldLogger, opts ...Option) *Runner {
	r := &Runner{log: log, workers: 1}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run executes jobs and returns one Result per job, in input order.
// Every call gets a fresh run ID shared by its results and log lines.
// The error is non-nil only when ctx ends before all jobs finish.
func (r *Runner) Run(ctx context.Context, jobs []Job) ([]Result, error) {
	runID := uuid.NewString()
	log := r.log.WithField("run_id", runID)
	log.WithFields(logrus.Fields{"jobs": len(jobs), "workers": r.workers}).Info("run started")

	results := make([]Result, len(jobs))
	for i, job := range jobs {
		results[i] = Result{RunID: runID, Job: job.Name, Kind: job.Kind, Status: StatusFailed, Error: "not started"}
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i, job := range jobs {
		if gctx.Err() != nil {
			break
		}
		i, job := i, job
		g.Go(func() error {
			results[i] = r.runOne(gctx, log, job)
			results[i].RunID = runID
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for i := range results {
		if results[i].Status != StatusOK {
			failed++
		}
	}
	log.WithField("failed", failed).Info("run finished")

	return results, ctx.Err()
}

// runOne executes a single job under its own timeout.
func (r *Runner) runOne(ctx context.Context, log logrus.FieldLogger, job Job) Result {
	res := Result{Job: job.Name, Kind: job.Kind, Status: StatusFailed}
	log = log.WithFields(logrus.Fields{"job": job.Name, "kind": job.Kind})

	start := time.Now()
	value, err := r.execute(ctx, job)
	elapsed := time.Since(start)
	res.Elapsed = elapsed.Microseconds()

	if err != nil {
		res.Error = err.Error()
		log.WithError(err).Warn("job failed")
	} else {
		res.Status = StatusOK
		res.Value = value
		log.WithField("elapsed", elapsed).Debug("job done")
	}
	if r.observer != nil {
		r.observer.Observe(job.Kind, res.Status, elapsed)
	}

	return res
}

func (r *Runner) execute(ctx context.Context, job Job) (any, error) {
	if err := job.Validate(); err != nil {
		return nil, err
	}
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("job %q not started: %w", job.Name, err)
	}

	return handlers[job.Kind].run(ctx, job)
}
