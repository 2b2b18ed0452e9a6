package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var durationBuckets = []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000, 10000}

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "routeweather_http_requests_total",
		Help: "Total HTTP requests by route, method and status",
	}, []string{"route", "method", "status"})
	HTTPRequestDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "routeweather_http_request_duration_ms",
		Help:    "HTTP request duration in milliseconds",
		Buckets: durationBuckets,
	}, []string{"route", "method"})
	UpstreamRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "routeweather_upstream_requests_total",
		Help: "Upstream API calls by provider, operation and outcome",
	}, []string{"provider", "operation", "outcome"})
	UpstreamDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "routeweather_upstream_duration_ms",
		Help:    "Upstream API call duration in milliseconds",
		Buckets: durationBuckets,
	}, []string{"provider", "operation"})
	CacheHitsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "routeweather_cache_hits_total",
		Help: "Cache hits by kind",
	}, []string{"kind"})
	CacheMissesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "routeweather_cache_misses_total",
		Help: "Cache misses by kind",
	}, []string{"kind"})
	PlansTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "routeweather_plans_total",
		Help: "Computed route plans by outcome (success or error code)",
	}, []string{"outcome"})
	TimelinePoints = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "routeweather_timeline_points",
		Help:    "Weather timeline length after compaction",
		Buckets: []float64{1, 2, 3, 4, 5},
	})
)

func init() {
	prometheus.MustRegister(HTTPRequestsTotal)
	prometheus.MustRegister(HTTPRequestDurationMs)
	prometheus.MustRegister(UpstreamRequestsTotal)
	prometheus.MustRegister(UpstreamDurationMs)
	prometheus.MustRegister(CacheHitsTotal)
	prometheus.MustRegister(CacheMissesTotal)
	prometheus.MustRegister(PlansTotal)
	prometheus.MustRegister(TimelinePoints)
}

func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveUpstream фиксирует вызов внешнего API. Используется через defer:
//
//	defer metrics.ObserveUpstream("ors", "route", time.Now(), &err)
func ObserveUpstream(provider, operation string, start time.Time, errp *error) {
	outcome := "success"
	if errp != nil && *errp != nil {
		outcome = "error"
	}
	UpstreamRequestsTotal.WithLabelValues(provider, operation, outcome).Inc()
	UpstreamDurationMs.WithLabelValues(provider, operation).Observe(sinceMs(start))
}

func ObserveHTTP(route, method string, status int, start time.Time) {
	HTTPRequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPRequestDurationMs.WithLabelValues(route, method).Observe(sinceMs(start))
}

func CacheResult(kind string, hit bool) {
	if hit {
		CacheHitsTotal.WithLabelValues(kind).Inc()
		return
	}
	CacheMissesTotal.WithLabelValues(kind).Inc()
}

func sinceMs(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000
}
