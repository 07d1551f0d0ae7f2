package resolver

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	globalMetrics *Metrics
	metricsOnce   sync.Once
)

// Metrics holds Prometheus metrics for the resolver.
type Metrics struct {
	ResolutionsTotal *prometheus.CounterVec
	ResolveDuration  prometheus.Histogram

	CacheHitsTotal   prometheus.Counter
	CacheMissesTotal prometheus.Counter
	CacheSize        prometheus.Gauge

	SuggestionsTotal prometheus.Counter
}

// NewMetrics creates and registers resolver metrics. sync.Once guards
// against duplicate collector registration when multiple resolvers share
// the process.
//
// All metrics are prefixed with "kmap_".
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		globalMetrics = &Metrics{
			ResolutionsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "kmap_resolutions_total",
					Help: "Total keyword resolutions by outcome source",
				},
				[]string{"source"}, // "cache", "exact-table", "substring-table", "combination", "none"
			),

			ResolveDuration: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Name:    "kmap_resolve_duration_seconds",
					Help:    "Duration of keyword resolution",
					Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
				},
			),

			CacheHitsTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "kmap_cache_hits_total",
					Help: "Total resolution cache hits",
				},
			),

			CacheMissesTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "kmap_cache_misses_total",
					Help: "Total resolution cache misses",
				},
			),

			CacheSize: promauto.NewGauge(
				prometheus.GaugeOpts{
					Name: "kmap_cache_size",
					Help: "Current number of cached resolutions",
				},
			),

			SuggestionsTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Name: "kmap_suggestions_total",
					Help: "Total failed resolutions that produced suggestions",
				},
			),
		}
	})
	return globalMetrics
}
