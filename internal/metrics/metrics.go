// Package metrics holds the Prometheus collectors for the Phone Book API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "phonebook"

// Metrics holds all Prometheus metrics for the application.
// Each Metrics owns a private registry, so tests can build as many as they
// like without duplicate-registration panics.
type Metrics struct {
	registry *prometheus.Registry

	EntriesCreated  prometheus.Counter
	EntriesUpdated  prometheus.Counter
	EntriesDeleted  prometheus.Counter
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// New creates and registers all metrics, plus the Go runtime and process
// collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		EntriesCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entries_created_total",
			Help:      "Total number of phone book entries created",
		}),
		EntriesUpdated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entries_updated_total",
			Help:      "Total number of phone book entries updated",
		}),
		EntriesDeleted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entries_deleted_total",
			Help:      "Total number of phone book entries deleted",
		}),
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route pattern and status code",
		}, []string{"method", "route", "status"}),
		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route pattern",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}
}

// EntryCreated increments the entries created counter by 1.
func (m *Metrics) EntryCreated() { m.EntriesCreated.Inc() }

// EntryUpdated increments the entries updated counter by 1.
func (m *Metrics) EntryUpdated() { m.EntriesUpdated.Inc() }

// EntryDeleted increments the entries deleted counter by 1.
func (m *Metrics) EntryDeleted() { m.EntriesDeleted.Inc() }

// ObserveRequest records one finished HTTP request. route should be the
// router pattern (e.g. "/api/phonebook/{id}"), not the raw path, to keep
// label cardinality bounded.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
