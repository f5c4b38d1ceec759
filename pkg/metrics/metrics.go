package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics контейнер prometheus-метрик сервиса
type Metrics struct {
	// HTTPRequestsTotal счетчик HTTP запросов по методу, пути и статусу
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration гистограмма длительности HTTP запросов
	HTTPRequestDuration *prometheus.HistogramVec

	// StoreOpsTotal счетчик операций с документным хранилищем
	StoreOpsTotal *prometheus.CounterVec

	// StoreOpDuration гистограмма длительности операций с хранилищем
	StoreOpDuration *prometheus.HistogramVec
}

// New регистрирует и возвращает метрики сервиса
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"method", "path"}),

		StoreOpsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "docstore_operations_total",
			Help:        "Total number of document store operations",
			ConstLabels: constLabels,
		}, []string{"operation", "result"}),

		StoreOpDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "docstore_operation_duration_seconds",
			Help:        "Document store operation duration in seconds",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: constLabels,
		}, []string{"operation"}),
	}
}
