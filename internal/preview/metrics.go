package preview

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "formfield"

type metrics struct {
	renders        *prometheus.CounterVec
	renderDuration prometheus.Histogram
}

func newMetrics(registerer prometheus.Registerer) *metrics {
	factory := promauto.With(registerer)
	return &metrics{
		renders: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "renders_total",
			Help:      "Total number of field renders by control and outcome",
		}, []string{"control", "status"}),
		renderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "render_duration_seconds",
			Help:      "Field render duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

func (m *metrics) observe(control string, seconds float64, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.renders.WithLabelValues(control, status).Inc()
	m.renderDuration.Observe(seconds)
}
