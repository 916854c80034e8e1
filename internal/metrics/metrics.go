// Package metrics defines Prometheus metrics for graph job runs.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder holds job metrics on a private registry, so several recorders
// (one per test, say) never collide.
type Recorder struct {
	reg      *prometheus.Registry
	jobs     *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// New creates a Recorder with its collectors registered.
func New() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		jobs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "lvlgraph_jobs_total",
				Help: "Total graph jobs by kind and status",
			},
			[]string{"kind", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "lvlgraph_job_duration_seconds",
				Help:    "Graph job duration in seconds",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{"kind"},
		),
	}
	r.reg.MustRegister(r.jobs, r.duration)

	return r
}

// Observe counts one finished job and records its duration.
func (r *Recorder) Observe(kind, status string, elapsed time.Duration) {
	r.jobs.WithLabelValues(kind, status).Inc()
	r.duration.WithLabelValues(kind).Observe(elapsed.Seconds())
}

// Registry exposes the private registry, e.g. for an HTTP handler.
func (r *Recorder) Registry() *prometheus.Registry { return r.reg }

// WriteFile writes all metrics to path in the text exposition format.
// The write is atomic: a temporary file is renamed over path.
func (r *Recorder) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
