package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"service", "method", "path", "status"},
	)

	HTTPRequestDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path"},
	)

	DeviceWritesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_device_writes_total",
			Help: "Total number of device create/update/delete attempts.",
		},
		[]string{"service", "op", "result"},
	)

	ComparesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_compares_total",
			Help: "Total number of multi-device compare requests.",
		},
		[]string{"service", "result"},
	)

	SearchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_searches_total",
			Help: "Total number of device search requests.",
		},
		[]string{"service", "result"},
	)
)

func MustRegister(serviceName string) {
	HTTPRequestsTotal = HTTPRequestsTotal.MustCurryWith(prometheus.Labels{"service": serviceName})
	HTTPRequestDurationSeconds = HTTPRequestDurationSeconds.MustCurryWith(prometheus.Labels{"service": serviceName}).(*prometheus.HistogramVec)
	DeviceWritesTotal = DeviceWritesTotal.MustCurryWith(prometheus.Labels{"service": serviceName})
	ComparesTotal = ComparesTotal.MustCurryWith(prometheus.Labels{"service": serviceName})
	SearchesTotal = SearchesTotal.MustCurryWith(prometheus.Labels{"service": serviceName})

	prometheus.MustRegister(
		HTTPRequestsTotal,
		HTTPRequestDurationSeconds,
		DeviceWritesTotal,
		ComparesTotal,
		SearchesTotal,
	)
}
