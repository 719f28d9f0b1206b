// Package metrics provides Prometheus metrics for outbound Xendit API calls.
package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

// Error types recorded by RecordError.
const (
	ErrorTypeTransport   = "transport"
	ErrorTypeEncode      = "encode"
	ErrorTypeClientError = "client_error"
	ErrorTypeServerError = "server_error"
)

// Manager owns the client metrics and the registry they live on.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	constLabels      map[string]string
	registry         prometheus.Registerer
	gatherer         prometheus.Gatherer

	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	errors          *prometheus.CounterVec
	inFlight        prometheus.Gauge
	responseBytes   *prometheus.HistogramVec
}

var globalManager *Manager //nolint:gochecknoglobals // singleton used by package-level helpers

var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // keeps default Go collectors out

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager. Without WithPrometheusRegistry the
// metrics are registered on prometheus.DefaultRegisterer.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "xendit",
		subsystem:        "client",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		constLabels:      make(map[string]string),
		registry:         prometheus.DefaultRegisterer,
		gatherer:         prometheus.DefaultGatherer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.requests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "requests_total",
		Help:        "Total number of API requests by endpoint, method and HTTP status",
		ConstLabels: m.constLabels,
	}, []string{"endpoint", "method", "status"})

	m.requestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "request_duration_seconds",
		Help:        "Round-trip latency of API requests in seconds",
		Buckets:     m.histogramBuckets,
		ConstLabels: m.constLabels,
	}, []string{"endpoint", "method"})

	m.errors = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "errors_total",
		Help:        "Failed API calls by endpoint and error type",
		ConstLabels: m.constLabels,
	}, []string{"endpoint", "type"})

	m.inFlight = auto.NewGauge(prometheus.GaugeOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "requests_in_flight",
		Help:        "Number of API requests currently awaiting a response",
		ConstLabels: m.constLabels,
	})

	m.responseBytes = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   m.namespace,
		Subsystem:   m.subsystem,
		Name:        "response_size_bytes",
		Help:        "Size of API response bodies in bytes",
		Buckets:     prometheus.ExponentialBuckets(64, 4, 8),
		ConstLabels: m.constLabels,
	}, []string{"endpoint"})
}

// RecordRequest records one completed round trip.
func (m *Manager) RecordRequest(endpoint, method string, status int, took time.Duration, size int) {
	if m == nil || !m.enabled {
		return
	}
	m.requests.WithLabelValues(endpoint, method, fmt.Sprintf("%d", status)).Inc()
	m.requestDuration.WithLabelValues(endpoint, method).Observe(took.Seconds())
	m.responseBytes.WithLabelValues(endpoint).Observe(float64(size))
}

// RecordError records a failed call. errType is one of the ErrorType constants.
func (m *Manager) RecordError(endpoint, errType string) {
	if m == nil || !m.enabled {
		return
	}
	m.errors.WithLabelValues(endpoint, errType).Inc()
}

// TrackInFlight increments the in-flight gauge and returns the matching decrement.
func (m *Manager) TrackInFlight() func() {
	if m == nil || !m.enabled {
		return func() {}
	}
	m.inFlight.Inc()
	return m.inFlight.Dec
}

// WriteText writes every metric family of the manager's gatherer to w in the
// Prometheus text exposition format.
func (m *Manager) WriteText(w io.Writer) error {
	families, err := m.gatherer.Gather()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrGather, err)
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("%w: %w", ErrGather, err)
		}
	}
	return nil
}

// ErrorType maps an HTTP status to the error type recorded for it.
func ErrorType(status int) string {
	switch {
	case status >= 500:
		return ErrorTypeServerError
	case status >= 400:
		return ErrorTypeClientError
	default:
		return ""
	}
}

// Default returns the global manager backed by the custom registry.
func Default() *Manager {
	return globalManager
}

// GetRegistry returns the custom Prometheus registry used by the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
