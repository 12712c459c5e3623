package observability

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for upstream calls.
// A one-shot CLI has no scrape endpoint, so the families live on a private
// registry and are dumped to the logger in verbose mode via LogSnapshot.
type Metrics struct {
	registry *prometheus.Registry

	AdapterRequests *prometheus.CounterVec   // labels: adapter, outcome={success,error}
	AdapterDuration *prometheus.HistogramVec // labels: adapter
}

// NewMetrics creates and registers all adapter metrics on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		AdapterRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "briefing",
			Name:      "adapter_requests_total",
			Help:      "Upstream adapter calls by adapter and outcome.",
		}, []string{"adapter", "outcome"}),
		AdapterDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "briefing",
			Name:      "adapter_duration_seconds",
			Help:      "Upstream adapter call duration in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
		}, []string{"adapter"}),
	}

	m.registry.MustRegister(
		m.AdapterRequests,
		m.AdapterDuration,
	)

	return m
}

// LogSnapshot writes every gathered metric sample to the logger at debug
// level. Called at the end of a verbose run.
func (m *Metrics) LogSnapshot(logger *slog.Logger) {
	families, err := m.registry.Gather()
	if err != nil {
		logger.Warn("metrics gather failed", "error", err)
		return
	}

	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			attrs := []any{"metric", mf.GetName()}
			for _, lp := range metric.GetLabel() {
				attrs = append(attrs, lp.GetName(), lp.GetValue())
			}
			switch {
			case metric.GetCounter() != nil:
				attrs = append(attrs, "value", metric.GetCounter().GetValue())
			case metric.GetHistogram() != nil:
				attrs = append(attrs,
					"count", metric.GetHistogram().GetSampleCount(),
					"sum_seconds", metric.GetHistogram().GetSampleSum(),
				)
			}
			logger.Debug("metric snapshot", attrs...)
		}
	}
}
