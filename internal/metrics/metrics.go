package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jengwei/trip-report/internal/models"
)

// Collector tracks pipeline run counters for Prometheus
type Collector struct {
	reg *prometheus.Registry

	RunsTotal     prometheus.Counter
	RowsProcessed prometheus.Counter
	RowsRejected  prometheus.Counter
	TripsEmitted  prometheus.Counter

	RunDuration prometheus.Histogram
}

// NewCollector creates and registers the pipeline metrics
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		RunsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tripreport_runs_total",
			Help: "Total pipeline runs.",
		}),
		RowsProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tripreport_rows_processed_total",
			Help: "Total raw rows read across runs.",
		}),
		RowsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tripreport_rows_rejected_total",
			Help: "Total rows rejected by validation.",
		}),
		TripsEmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tripreport_trips_emitted_total",
			Help: "Total trips emitted in reports.",
		}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "tripreport_run_duration_seconds",
			Help:    "Pipeline run duration.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(c.RunsTotal, c.RowsProcessed, c.RowsRejected, c.TripsEmitted, c.RunDuration)
	return c
}

// ObserveRun records one completed pipeline run
func (c *Collector) ObserveRun(summary models.ProcessingSummary, tripsEmitted int, elapsed time.Duration) {
	c.RunsTotal.Inc()
	c.RowsProcessed.Add(float64(summary.TotalRows))
	c.RowsRejected.Add(float64(summary.RejectedRows))
	c.TripsEmitted.Add(float64(tripsEmitted))
	c.RunDuration.Observe(elapsed.Seconds())
}

// Handler serves the registry for the /metrics endpoint
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{})
}
