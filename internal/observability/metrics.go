package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "starluck"

var (
	registerOnce sync.Once
	cacheOnce    sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
	charts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "charts_total",
			Help:      "Charts built, by house system and outcome.",
		},
		[]string{"house_system", "success"},
	)
	transitSamples = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "transit_scan_samples",
			Help:      "Sample instants per transit scan.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		},
	)
	transitDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "engine",
			Name:      "transit_scan_duration_seconds",
			Help:      "Transit scan duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(httpRequests, httpDuration, charts, transitSamples, transitDuration)
	})
}

// CacheStats is the read side of a position cache
type CacheStats interface {
	Hits() uint64
	Misses() uint64
	Len() int
}

// RegisterCache exposes cache counters. Only the first cache registered
// is exported.
func RegisterCache(cache CacheStats) {
	cacheOnce.Do(func() {
		prometheus.MustRegister(
			prometheus.NewCounterFunc(prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "ephemeris_cache",
				Name:      "hits_total",
				Help:      "Position lookups served from the cache.",
			}, func() float64 { return float64(cache.Hits()) }),
			prometheus.NewCounterFunc(prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "ephemeris_cache",
				Name:      "misses_total",
				Help:      "Position lookups passed to the backend.",
			}, func() float64 { return float64(cache.Misses()) }),
			prometheus.NewGaugeFunc(prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "ephemeris_cache",
				Name:      "entries",
				Help:      "Positions currently cached.",
			}, func() float64 { return float64(cache.Len()) }),
		)
	})
}

func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(method, path, statusLabel).Observe(duration.Seconds())
}

func RecordChart(houseSystem string, success bool) {
	RegisterMetrics()
	charts.WithLabelValues(houseSystem, strconv.FormatBool(success)).Inc()
}

func RecordTransitScan(samples int, duration time.Duration) {
	RegisterMetrics()
	transitSamples.Observe(float64(samples))
	transitDuration.Observe(duration.Seconds())
}
