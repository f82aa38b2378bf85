package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics is a Prometheus-backed [Observer]. Attach it with [WithObserver]:
//
//	m := client.NewMetrics()
//	c := client.New(region, client.WithObserver(m))
//
// It records one observation per attempt, so retries are visible as extra
// samples. Safe for concurrent use.
type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	retriesTotal    *prometheus.CounterVec
}

// NewMetrics creates a Metrics observer registered on the default Prometheus
// registerer.
func NewMetrics() *Metrics {
	return NewMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

// NewMetricsWithRegisterer creates a Metrics observer registered on the
// supplied registerer.
func NewMetricsWithRegisterer(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		requestsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_client_requests_total",
				Help: "Attempts by method and normalized result code",
			},
			[]string{"method", "code"},
		),
		requestDuration: promauto.With(reg).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "storefront_client_request_duration_seconds",
				Help:    "Attempt duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),
		retriesTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "storefront_client_retries_total",
				Help: "Retry attempts (attempt number greater than one)",
			},
			[]string{"method"},
		),
	}
}

// OnRequest implements [Observer].
func (m *Metrics) OnRequest(e RequestEvent) {
	if m == nil {
		return
	}
	if e.Attempt > 1 {
		m.retriesTotal.WithLabelValues(e.Method).Inc()
	}
}

// OnResponse implements [Observer].
func (m *Metrics) OnResponse(e ResponseEvent) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(e.Method, e.Code).Inc()
	m.requestDuration.WithLabelValues(e.Method).Observe(e.Elapsed.Seconds())
}
