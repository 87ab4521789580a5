package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPMetrics contains HTTP-related Prometheus metrics
type HTTPMetrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// GRPCMetrics contains gRPC-related Prometheus metrics
type GRPCMetrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
}

// BusinessMetrics contains fleet-specific metrics
type BusinessMetrics struct {
	OrdersCreated    prometheus.Counter
	OrdersSettled    *prometheus.CounterVec
	DeductionsTotal  *prometheus.CounterVec
	OutboxDepth      prometheus.Gauge
	SignupsTotal     prometheus.Counter
	SigninsTotal     *prometheus.CounterVec
}

// NewHTTPMetrics creates HTTP metrics for a service
func NewHTTPMetrics(serviceName string) *HTTPMetrics {
	return &HTTPMetrics{
		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: serviceName + "_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    serviceName + "_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}
}

// NewGRPCMetrics creates gRPC metrics for a service
func NewGRPCMetrics(serviceName string) *GRPCMetrics {
	return &GRPCMetrics{
		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: serviceName + "_grpc_requests_total",
				Help: "Total number of gRPC requests",
			},
			[]string{"method", "status"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    serviceName + "_grpc_request_duration_seconds",
				Help:    "gRPC request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),
	}
}

// NewBusinessMetrics creates fleet-specific metrics
func NewBusinessMetrics(serviceName string) *BusinessMetrics {
	return &BusinessMetrics{
		OrdersCreated: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: serviceName + "_orders_created_total",
				Help: "Total number of orders accepted",
			},
		),
		OrdersSettled: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: serviceName + "_orders_settled_total",
				Help: "Total number of orders settled by final inventory state",
			},
			[]string{"state"},
		),
		DeductionsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: serviceName + "_inventory_deductions_total",
				Help: "Total number of inventory deduction attempts by result",
			},
			[]string{"result"},
		),
		OutboxDepth: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: serviceName + "_outbox_depth",
				Help: "Outbox rows pending reconciliation at the last tick",
			},
		),
		SignupsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: serviceName + "_signups_total",
				Help: "Total number of successful signups",
			},
		),
		SigninsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: serviceName + "_signins_total",
				Help: "Total number of signin attempts by outcome",
			},
			[]string{"outcome"},
		),
	}
}

// RecordHTTPRequest records an HTTP request metric
func (m *HTTPMetrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordGRPCRequest records a gRPC request metric
func (m *GRPCMetrics) RecordGRPCRequest(method, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, status).Inc()
	m.RequestDuration.WithLabelValues(method).Observe(duration.Seconds())
}
