// Animerec - Content-Based Anime Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto and
exposed by the API router at /metrics in Prometheus text format:

	curl http://localhost:8000/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)
  - api_rate_limit_hits_total: Rate limit rejections (counter)
    Labels: endpoint

Catalog Metrics:
  - catalog_load_duration_seconds: Catalog load time (histogram)
    Labels: source
  - catalog_rows: Rows in the loaded catalog (gauge)
  - catalog_defaulted_fields_total: Fields replaced by defaults (counter)
    Labels: field

Index Metrics:
  - index_build_duration_seconds: Similarity matrix build time (histogram)
  - index_items, index_vocabulary_terms, index_zero_vectors,
    index_duplicate_name_rows: Build statistics (gauges)
  - index_last_build_timestamp: Unix time of the last build (gauge)

Recommendation Metrics:
  - recommendations_total: Queries by outcome (counter)
    Labels: mode, outcome
  - recommendation_duration_seconds: Query latency (histogram)
    Labels: mode
  - recommendation_results: Result count per successful query (histogram)
    Labels: mode

System Metrics:
  - app_info: Version and Go version (gauge, always 1)
  - app_uptime_seconds: Process uptime (gauge)

# Usage

	start := time.Now()
	// ... handle request ...
	metrics.RecordAPIRequest(r.Method, route, "200", time.Since(start))

	metrics.RecordIndexBuild(metrics.IndexSnapshot{Items: 12294, Terms: 47})

# Thread Safety

All recording functions are safe for concurrent use.
*/
package metrics
