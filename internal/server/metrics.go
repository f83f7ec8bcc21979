package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeOK       = "ok"
	outcomeNotFound = "not_found"
	outcomeError    = "error"
)

type metrics struct {
	renders  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newMetrics(registerer prometheus.Registerer) *metrics {
	m := &metrics{
		renders: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "contentform_renders_total",
				Help: "Rendered edit forms and pickers by renderer, view and outcome",
			},
			[]string{"renderer", "view", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "contentform_render_duration_seconds",
				Help:    "Duration of successful renders",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"renderer", "view"},
		),
	}
	registerer.MustRegister(m.renders, m.duration)
	return m
}

func (m *metrics) observe(renderer, view, outcome string, started time.Time) {
	m.renders.WithLabelValues(renderer, view, outcome).Inc()
	if outcome == outcomeOK {
		m.duration.WithLabelValues(renderer, view).Observe(time.Since(started).Seconds())
	}
}
