package httpapi

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	solves          *prometheus.CounterVec
	solveErrors     prometheus.Counter
	requestDuration *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	f := promauto.With(reg)
	return &metrics{
		solves: f.NewCounterVec(prometheus.CounterOpts{
			Name: "recurrence_solves_total",
			Help: "Solved recurrences by analysis method",
		}, []string{"method"}),
		solveErrors: f.NewCounter(prometheus.CounterOpts{
			Name: "recurrence_solve_errors_total",
			Help: "Equations rejected by the parser or notation check",
		}),
		requestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "recurrence_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1},
		}, []string{"route", "status"}),
	}
}
