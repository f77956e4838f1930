package httpapi

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the API.
type Metrics struct {
	analyses *prometheus.CounterVec
	duration prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		analyses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tokenscope_analyses_total",
				Help: "Token analyses by result",
			},
			[]string{"result"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "tokenscope_analysis_duration_seconds",
				Help:    "Duration of token analyses in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
		),
	}
	if reg != nil {
		reg.MustRegister(m.analyses, m.duration)
	}
	return m
}

func (m *Metrics) observe(result string, elapsed time.Duration) {
	m.analyses.WithLabelValues(result).Inc()
	m.duration.Observe(elapsed.Seconds())
}
