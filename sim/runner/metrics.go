package runner

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome and rejection label values.
const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"

	reasonBusy        = "busy"
	reasonValidation  = "validation"
	reasonFeasibility = "feasibility"
)

// Metrics holds the Prometheus collectors of a Runner. A nil *Metrics
// records nothing.
type Metrics struct {
	runs     *prometheus.CounterVec // completed runs by outcome
	rejected *prometheus.CounterVec // refused submissions by reason
	duration prometheus.Histogram   // wall time of completed runs
	inFlight prometheus.Gauge       // 1 while a run is executing or uncollected
}

// NewMetrics registers the runner collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		runs: f.NewCounterVec(prometheus.CounterOpts{
			Name: "amsim_runs_total",
			Help: "Completed simulation runs by outcome",
		}, []string{"outcome"}),
		rejected: f.NewCounterVec(prometheus.CounterOpts{
			Name: "amsim_rejected_total",
			Help: "Simulation submissions refused before running, by reason",
		}, []string{"reason"}),
		duration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "amsim_run_duration_seconds",
			Help:    "Wall time of simulation runs",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
		}),
		inFlight: f.NewGauge(prometheus.GaugeOpts{
			Name: "amsim_in_flight",
			Help: "Simulation runs currently in flight",
		}),
	}
}

func (m *Metrics) started() {
	if m == nil {
		return
	}
	m.inFlight.Set(1)
}

func (m *Metrics) finished(err error, elapsed time.Duration) {
	if m == nil {
		return
	}
	outcome := outcomeSuccess
	if err != nil {
		outcome = outcomeFailure
	}
	m.runs.WithLabelValues(outcome).Inc()
	m.duration.Observe(elapsed.Seconds())
	m.inFlight.Set(0)
}

func (m *Metrics) reject(reason string) {
	if m == nil {
		return
	}
	m.rejected.WithLabelValues(reason).Inc()
}
