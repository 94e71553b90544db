// MoodRec - Sentiment-Weighted Media Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moodrec

// Package metrics defines the Prometheus collectors exported at /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API endpoint metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodrec_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "moodrec_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "moodrec_api_active_requests",
			Help: "Current number of in-flight API requests",
		},
	)

	// Recommendation metrics
	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodrec_recommend_requests_total",
			Help: "Recommendation requests by mode and outcome",
		},
		[]string{"mode", "outcome"}, // outcome: "success", "invalid_score", "invalid_parameter", "error"
	)

	RecommendLatency = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "moodrec_recommend_duration_seconds",
			Help:    "Time spent scoring and ranking the catalog",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	RecommendResultSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "moodrec_recommend_result_size",
			Help:    "Number of recommendations returned per request",
			Buckets: []float64{0, 1, 2, 3, 5, 10, 20, 50},
		},
	)

	RecommendCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "moodrec_recommend_cache_hits_total",
			Help: "Recommendation responses served from cache",
		},
	)

	RecommendCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "moodrec_recommend_cache_misses_total",
			Help: "Recommendation responses computed because no cache entry existed",
		},
	)

	DominantLabels = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodrec_dominant_label_total",
			Help: "Dominant sentiment label of scored inputs",
		},
		[]string{"label"},
	)

	BatchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "moodrec_batch_size",
			Help:    "Number of texts per batch analysis request",
			Buckets: prometheus.ExponentialBuckets(1, 2, 10),
		},
	)

	// Sentiment provider metrics
	ClassifyRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodrec_classify_requests_total",
			Help: "Sentiment classification calls by provider and outcome",
		},
		[]string{"provider", "outcome"}, // outcome: "success", "unavailable", "error"
	)

	ClassifyDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "moodrec_classify_duration_seconds",
			Help:    "Sentiment classification latency",
			Buckets: []float64{0.001, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"provider"},
	)

	ProviderUp = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "moodrec_provider_up",
			Help: "Result of the last provider health probe (1=reachable, 0=unavailable)",
		},
		[]string{"provider"},
	)

	// Circuit breaker metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "moodrec_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodrec_circuit_breaker_requests_total",
			Help: "Requests passed through the circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "moodrec_circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moodrec_circuit_breaker_state_transitions_total",
			Help: "Circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Catalog metrics
	CatalogItems = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "moodrec_catalog_items",
			Help: "Number of catalog items loaded, by media kind",
		},
		[]string{"kind"},
	)

	CatalogLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "moodrec_catalog_load_duration_seconds",
			Help:    "Time to load the catalog from its source",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source"},
	)
)

// RecordAPIRequest records a completed API request.
func RecordAPIRequest(method, endpoint string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records the outcome of one scoring pass.
func RecordRecommendation(mode, outcome string, resultSize int, duration time.Duration) {
	RecommendRequests.WithLabelValues(mode, outcome).Inc()
	if outcome != "success" {
		return
	}
	RecommendLatency.Observe(duration.Seconds())
	RecommendResultSize.Observe(float64(resultSize))
}

// RecordClassification records one sentiment provider call.
func RecordClassification(provider, outcome string, duration time.Duration) {
	ClassifyRequests.WithLabelValues(provider, outcome).Inc()
	ClassifyDuration.WithLabelValues(provider).Observe(duration.Seconds())
}

// SetProviderUp records the result of a provider health probe.
func SetProviderUp(provider string, up bool) {
	v := 0.0
	if up {
		v = 1
	}
	ProviderUp.WithLabelValues(provider).Set(v)
}

// RecordCatalogLoad records catalog size per kind after a load.
func RecordCatalogLoad(source string, countsByKind map[string]int, duration time.Duration) {
	CatalogLoadDuration.WithLabelValues(source).Observe(duration.Seconds())
	for kind, n := range countsByKind {
		CatalogItems.WithLabelValues(kind).Set(float64(n))
	}
}
