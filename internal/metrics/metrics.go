// Package metrics defines Prometheus metrics for dealer-appraisal.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dap"

// HTTP metrics.
var (
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests.",
	}, []string{"method", "path", "status"})

	HTTPRateLimitedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_rate_limited_total",
		Help:      "Total number of requests rejected by the rate limiter.",
	})
)

// Health metrics.
var (
	HealthzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "healthz_up",
		Help:      "Whether the last liveness probe succeeded (1) or failed (0).",
	})

	ReadyzUp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "readyz_up",
		Help:      "Whether the last readiness probe succeeded (1) or failed (0).",
	})
)

// Appraisal metrics.
var (
	AppraisalsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appraisals_total",
		Help:      "Total number of appraisals by decision and valuation method.",
	}, []string{"decision", "method"})

	AppraisalErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "appraisal_errors_total",
		Help:      "Total number of appraisals that failed, by reason.",
	}, []string{"reason"})

	AppraisalDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "appraisal_duration_seconds",
		Help:      "Duration of appraisal requests in seconds.",
		Buckets:   prometheus.DefBuckets,
	})

	AppraisalComparables = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "appraisal_comparables",
		Help:      "Number of comparables matched per appraisal.",
		Buckets:   []float64{0, 1, 3, 5, 10, 20, 50, 100},
	})

	AppraisalConfidence = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "appraisal_confidence",
		Help:      "Distribution of appraisal confidence scores.",
		Buckets:   prometheus.LinearBuckets(0, 10, 11), // 0, 10, 20, ..., 100
	})

	TradeInOfferDollars = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "trade_in_offer_dollars",
		Help:      "Distribution of computed trade-in offers in dollars.",
		Buckets:   prometheus.ExponentialBuckets(1000, 2, 8), // 1k .. 128k
	})
)

// Inventory snapshot metrics.
var (
	InventorySnapshotSize = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "inventory_snapshot_vehicles",
		Help:      "Number of vehicles in the in-memory inventory snapshot.",
	})

	InventoryRefreshTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "inventory_refresh_total",
		Help:      "Total number of inventory snapshot refreshes by result.",
	}, []string{"result"})

	InventoryRefreshTimestamp = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "inventory_refresh_timestamp_seconds",
		Help:      "Unix timestamp of the last successful inventory snapshot refresh.",
	})
)

// Dealer name cache metrics.
var (
	DealerCacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dealer_cache_hits_total",
		Help:      "Total number of dealership names served from the cache.",
	})

	DealerCacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dealer_cache_misses_total",
		Help:      "Total number of dealership names not found in the cache.",
	})

	DealerCacheErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dealer_cache_errors_total",
		Help:      "Total number of dealer name cache errors.",
	})
)
