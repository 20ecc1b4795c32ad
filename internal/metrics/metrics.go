// Package metrics はPrometheusのメトリクスを定義します。
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry はアプリケーション専用のレジストリです。
	Registry = prometheus.NewRegistry()

	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by method, route and status code",
		},
		[]string{"method", "route", "status"},
	)
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
	TaskOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tasks_operations_total",
			Help: "Task operations by operation and result",
		},
		[]string{"op", "result"},
	)
)

func init() {
	Registry.MustRegister(
		HTTPRequests,
		HTTPDuration,
		TaskOperations,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// Handler は /metrics 用のハンドラーを返します。
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// ObserveTaskOperation は操作と結果（ok / invalid / not_found / error）を記録します。
func ObserveTaskOperation(op, result string) {
	TaskOperations.WithLabelValues(op, result).Inc()
}

// ObserveInvalidRequest はリクエストの読み込み自体に失敗した操作を記録します。
func ObserveInvalidRequest(op string) {
	ObserveTaskOperation(op, "invalid")
}
