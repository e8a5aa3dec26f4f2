// Animerec - Content-Based Anime Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

/*
Package middleware provides HTTP middleware components for the API server.

All middleware uses the standard func(http.Handler) http.Handler shape so it
can be mounted directly on a chi router with Use.

Key Components:

  - RequestID: UUID request tracking, propagated to the logging context
  - PrometheusMetrics: request count, latency and in-flight instrumentation
  - Compression: gzip (klauspost/compress) for responses of 1KB or more
  - PerformanceMonitor: sliding window of request latencies with percentiles

Middleware Stack:

The router installs them in this order:

	r.Use(middleware.RequestID)         // Layer 1: request tracking
	r.Use(middleware.PrometheusMetrics) // Layer 2: metrics
	r.Use(monitor.Middleware)           // Layer 3: latency window
	r.Use(middleware.Compression)       // Layer 4: gzip

Metric and monitor labels use the chi route pattern rather than the raw path,
so /api/v1/items/{name} is one series regardless of the name requested.
*/
package middleware
