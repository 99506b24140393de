// Package metrics provides Prometheus metrics collection for the delivery service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// DeliveryQuotesTotal counts priced quotes by zone, option and outcome.
	DeliveryQuotesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "delivery_quotes_total",
			Help: "Total number of delivery quotes",
		},
		[]string{"zone", "option", "status"},
	)

	// DeliveryQuoteDuration tracks how long pricing a quote or menu takes.
	DeliveryQuoteDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "delivery_quote_duration_seconds",
			Help:    "Delivery quote duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	// DeliveryFreeQuotesTotal counts quotes that qualified for free delivery.
	DeliveryFreeQuotesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "delivery_free_quotes_total",
			Help: "Total number of delivery quotes that qualified for free delivery",
		},
	)

	// SettingsCacheOperationsTotal tracks delivery settings cache lookups.
	SettingsCacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "settings_cache_operations_total",
			Help: "Total number of delivery settings cache operations",
		},
		[]string{"operation", "result"},
	)

	// CircuitBreakerState reports each breaker as 0 (closed), 1 (open) or 2 (half-open).
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 open, 2 half-open)",
		},
		[]string{"name"},
	)

	// AuditLogEntriesTotal counts async audit log outcomes (enqueued, dropped, written, failed).
	AuditLogEntriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "audit_log_entries_total",
			Help: "Total number of audit log entries by outcome",
		},
		[]string{"result"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordDeliveryQuote records metrics for a priced quote.
// zone and option are empty for requests rejected before pricing.
func RecordDeliveryQuote(zone, option, status string, duration time.Duration, free bool) {
	DeliveryQuoteDuration.Observe(duration.Seconds())
	DeliveryQuotesTotal.WithLabelValues(zone, option, status).Inc()
	if free {
		DeliveryFreeQuotesTotal.Inc()
	}
}

// RecordSettingsCacheOperation records a settings cache lookup ("get"/"hit", "get"/"miss", "invalidate"/"ok").
func RecordSettingsCacheOperation(operation, result string) {
	SettingsCacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// SetCircuitBreakerState records the current state of a named circuit breaker.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}

// RecordAuditLogEntry records an async audit log outcome.
func RecordAuditLogEntry(result string) {
	AuditLogEntriesTotal.WithLabelValues(result).Inc()
}
