package infra

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	// Latency: длительность обработки запроса
	RequestDuration *prometheus.HistogramVec

	// Traffic: общее кол-во запросов
	TotalRequests *prometheus.CounterVec

	// Errors: классификация отказов
	ErrorTotal *prometheus.CounterVec

	// Кэш фасетов: попадания/промахи
	FacetCacheHits   prometheus.Counter
	FacetCacheMisses prometheus.Counter
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	// Null Object Pattern — если рег не передан, используем локальный
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	return &Metrics{
		RequestDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "storefront_request_duration_seconds",
			Help:    "Histogram of request latencies.",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"route", "method", "status"}),

		TotalRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "storefront_requests_total",
			Help: "Total number of processed requests.",
		}, []string{"route", "method"}),

		ErrorTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "storefront_errors_total",
			Help: "Total number of errors by type.",
		}, []string{"type"}), // типы: auth_missing, auth_invalid, validation, not_found, internal

		FacetCacheHits: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "storefront_facet_cache_hits_total",
			Help: "Catalog facet cache hits.",
		}),

		FacetCacheMisses: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "storefront_facet_cache_misses_total",
			Help: "Catalog facet cache misses.",
		}),
	}
}
