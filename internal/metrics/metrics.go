// Animerec - Content-Based Anime Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Catalog Metrics
	CatalogLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_load_duration_seconds",
			Help:    "Duration of catalog loads in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30},
		},
		[]string{"source"},
	)

	CatalogRows = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_rows",
			Help: "Number of rows in the loaded catalog",
		},
	)

	// Fields that were absent or unparseable and replaced by a default.
	CatalogDefaultedFields = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_defaulted_fields_total",
			Help: "Total number of catalog fields replaced by their default value",
		},
		[]string{"field"}, // "genre", "rating"
	)

	// Index Metrics
	IndexBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name: "index_build_duration_seconds",
			Help: "Duration of similarity index builds in seconds",
			// The matrix is quadratic in catalog size; large catalogs take minutes.
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30, 60, 300},
		},
	)

	IndexItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "index_items",
			Help: "Number of items in the similarity index",
		},
	)

	IndexTerms = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "index_vocabulary_terms",
			Help: "Number of distinct genre terms in the vocabulary",
		},
	)

	IndexZeroVectors = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "index_zero_vectors",
			Help: "Number of items whose genre text produced no terms",
		},
	)

	IndexDuplicateRows = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "index_duplicate_name_rows",
			Help: "Number of rows shadowed by an earlier row with the same name",
		},
	)

	IndexLastBuild = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "index_last_build_timestamp",
			Help: "Unix timestamp of the last successful index build",
		},
	)

	// Recommendation Metrics
	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_total",
			Help: "Total number of recommendation requests",
		},
		[]string{"mode", "outcome"}, // mode: "similar", "genre"; outcome: "ok", "not_found", "invalid", "internal"
	)

	RecommendationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "Duration of recommendation queries in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
		[]string{"mode"},
	)

	RecommendationResults = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommendation_results",
			Help:    "Number of recommendations returned per successful query",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100},
		},
		[]string{"mode"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// Outcome labels for RecommendationsTotal.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
	OutcomeInternal = "internal"
)

// IndexSnapshot is the subset of index statistics exported as gauges.
type IndexSnapshot struct {
	Items         int
	Terms         int
	ZeroVectors   int
	DuplicateRows int
	BuildDuration time.Duration
	BuiltAt       time.Time
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit counts a request rejected by the rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordCatalogLoad records a completed catalog load.
func RecordCatalogLoad(source string, duration time.Duration, rows, missingGenre, missingRating int) {
	CatalogLoadDuration.WithLabelValues(source).Observe(duration.Seconds())
	CatalogRows.Set(float64(rows))
	if missingGenre > 0 {
		CatalogDefaultedFields.WithLabelValues("genre").Add(float64(missingGenre))
	}
	if missingRating > 0 {
		CatalogDefaultedFields.WithLabelValues("rating").Add(float64(missingRating))
	}
}

// RecordIndexBuild publishes the statistics of a freshly built index.
func RecordIndexBuild(s IndexSnapshot) {
	IndexBuildDuration.Observe(s.BuildDuration.Seconds())
	IndexItems.Set(float64(s.Items))
	IndexTerms.Set(float64(s.Terms))
	IndexZeroVectors.Set(float64(s.ZeroVectors))
	IndexDuplicateRows.Set(float64(s.DuplicateRows))
	if !s.BuiltAt.IsZero() {
		IndexLastBuild.Set(float64(s.BuiltAt.Unix()))
	}
}

// RecordRecommendation records one recommendation query. results is only
// observed for successful queries.
func RecordRecommendation(mode, outcome string, duration time.Duration, results int) {
	RecommendationsTotal.WithLabelValues(mode, outcome).Inc()
	RecommendationDuration.WithLabelValues(mode).Observe(duration.Seconds())
	if outcome == OutcomeOK {
		RecommendationResults.WithLabelValues(mode).Observe(float64(results))
	}
}

// SetAppInfo publishes the build version.
func SetAppInfo(version string) {
	AppInfo.WithLabelValues(version, runtime.Version()).Set(1)
}

// TrackUptime updates AppUptime every interval until stop is closed.
func TrackUptime(start time.Time, interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	AppUptime.Set(time.Since(start).Seconds())
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			AppUptime.Set(time.Since(start).Seconds())
		}
	}
}
