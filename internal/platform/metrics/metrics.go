// Package metrics exposes Prometheus collectors of the worker.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Job statuses reported in metrics.
const (
	StatusOK      = "ok"
	StatusSkipped = "skipped"
	StatusRetried = "retried"
	StatusFailed  = "failed"
)

// Metrics holds worker Prometheus collectors.
type Metrics struct {
	JobsTotal        *prometheus.CounterVec
	JobDuration      *prometheus.HistogramVec
	ItemsSynced      prometheus.Counter
	FeedItems        prometheus.Counter
	SnapshotsDeleted prometheus.Counter
}

// New registers worker collectors on provided registerer and returns them.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		JobsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "feedsync_jobs_total",
			Help: "Number of processed jobs by type and status.",
		}, []string{"type", "status"}),
		JobDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "feedsync_job_duration_seconds",
			Help:    "Job processing duration by type.",
			Buckets: prometheus.DefBuckets,
		}, []string{"type"}),
		ItemsSynced: factory.NewCounter(prometheus.CounterOpts{
			Name: "feedsync_items_synced_total",
			Help: "Number of catalog items created or updated by sync jobs.",
		}),
		FeedItems: factory.NewCounter(prometheus.CounterOpts{
			Name: "feedsync_feed_items_total",
			Help: "Number of items written to generated feeds.",
		}),
		SnapshotsDeleted: factory.NewCounter(prometheus.CounterOpts{
			Name: "feedsync_snapshots_deleted_total",
			Help: "Number of feed snapshots removed by retention.",
		}),
	}
}

// ObserveJob records one finished job.
func (m *Metrics) ObserveJob(jobType string, status string, seconds float64) {
	m.JobsTotal.WithLabelValues(jobType, status).Inc()
	m.JobDuration.WithLabelValues(jobType).Observe(seconds)
}
