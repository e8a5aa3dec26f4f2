// Animerec - Content-Based Anime Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package middleware

import (
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/tomtom215/animerec/internal/logging"
)

// DefaultSlowRequestThreshold is used when NewPerformanceMonitor is given
// a non-positive threshold.
const DefaultSlowRequestThreshold = time.Second

// RequestMetrics is one observed request.
type RequestMetrics struct {
	Route      string        `json:"route"`
	Method     string        `json:"method"`
	Duration   time.Duration `json:"duration_ns"`
	StatusCode int           `json:"status_code"`
	Timestamp  time.Time     `json:"timestamp"`
}

// EndpointStats contains aggregated latency statistics for one route.
// Durations are in milliseconds.
type EndpointStats struct {
	Endpoint     string  `json:"endpoint"`
	RequestCount int64   `json:"request_count"`
	ErrorCount   int64   `json:"error_count"`
	AvgMS        float64 `json:"avg_ms"`
	P50MS        float64 `json:"p50_ms"`
	P95MS        float64 `json:"p95_ms"`
	P99MS        float64 `json:"p99_ms"`
	MinMS        float64 `json:"min_ms"`
	MaxMS        float64 `json:"max_ms"`
}

// PerformanceMonitor keeps a fixed-size window of recent requests.
type PerformanceMonitor struct {
	mu      sync.RWMutex
	window  []RequestMetrics
	next    int
	full    bool
	slow    time.Duration
	total   map[string]int64
	nowFunc func() time.Time
}

// NewPerformanceMonitor creates a monitor remembering the last maxMetrics
// requests. Requests slower than slow are logged at warn level.
func NewPerformanceMonitor(maxMetrics int, slow time.Duration) *PerformanceMonitor {
	if maxMetrics < 1 {
		maxMetrics = 1
	}
	if slow <= 0 {
		slow = DefaultSlowRequestThreshold
	}
	return &PerformanceMonitor{
		window:  make([]RequestMetrics, maxMetrics),
		slow:    slow,
		total:   make(map[string]int64),
		nowFunc: time.Now,
	}
}

// RecordRequest adds a request to the window, evicting the oldest when full.
func (pm *PerformanceMonitor) RecordRequest(m *RequestMetrics) {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	pm.window[pm.next] = *m
	pm.next++
	if pm.next == len(pm.window) {
		pm.next = 0
		pm.full = true
	}
	pm.total[m.Method+" "+m.Route]++
}

// Len returns the number of requests currently in the window.
func (pm *PerformanceMonitor) Len() int {
	pm.mu.RLock()
	defer pm.mu.RUnlock()
	return pm.lenLocked()
}

func (pm *PerformanceMonitor) lenLocked() int {
	if pm.full {
		return len(pm.window)
	}
	return pm.next
}

// TotalRequests returns the lifetime request count per "METHOD route".
func (pm *PerformanceMonitor) TotalRequests() map[string]int64 {
	pm.mu.RLock()
	defer pm.mu.RUnlock()

	out := make(map[string]int64, len(pm.total))
	for k, v := range pm.total {
		out[k] = v
	}
	return out
}

// GetStats returns per-endpoint statistics over the window, busiest first.
func (pm *PerformanceMonitor) GetStats() []EndpointStats {
	pm.mu.RLock()
	defer pm.mu.RUnlock()

	durations := make(map[string][]time.Duration)
	errorsBy := make(map[string]int64)
	for i := 0; i < pm.lenLocked(); i++ {
		m := pm.window[i]
		key := m.Method + " " + m.Route
		durations[key] = append(durations[key], m.Duration)
		if m.StatusCode >= http.StatusInternalServerError {
			errorsBy[key]++
		}
	}

	stats := make([]EndpointStats, 0, len(durations))
	for endpoint, ds := range durations {
		sort.Slice(ds, func(i, j int) bool { return ds[i] < ds[j] })

		var sum time.Duration
		for _, d := range ds {
			sum += d
		}

		stats = append(stats, EndpointStats{
			Endpoint:     endpoint,
			RequestCount: int64(len(ds)),
			ErrorCount:   errorsBy[endpoint],
			AvgMS:        ms(sum) / float64(len(ds)),
			P50MS:        ms(percentile(ds, 0.50)),
			P95MS:        ms(percentile(ds, 0.95)),
			P99MS:        ms(percentile(ds, 0.99)),
			MinMS:        ms(ds[0]),
			MaxMS:        ms(ds[len(ds)-1]),
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].RequestCount != stats[j].RequestCount {
			return stats[i].RequestCount > stats[j].RequestCount
		}
		return stats[i].Endpoint < stats[j].Endpoint
	})
	return stats
}

// GetRecentMetrics returns up to n of the most recent requests, oldest first.
func (pm *PerformanceMonitor) GetRecentMetrics(n int) []RequestMetrics {
	pm.mu.RLock()
	defer pm.mu.RUnlock()

	size := pm.lenLocked()
	if n > size {
		n = size
	}
	if n <= 0 {
		return []RequestMetrics{}
	}

	out := make([]RequestMetrics, n)
	start := pm.next - n
	for i := 0; i < n; i++ {
		idx := start + i
		if idx < 0 {
			idx += len(pm.window)
		}
		out[i] = pm.window[idx]
	}
	return out
}

// Middleware records every request passing through it.
func (pm *PerformanceMonitor) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := pm.nowFunc()
		rec := newStatusRecorder(w)

		next.ServeHTTP(rec, r)

		elapsed := pm.nowFunc().Sub(start)
		route := routePattern(r)

		pm.RecordRequest(&RequestMetrics{
			Route:      route,
			Method:     r.Method,
			Duration:   elapsed,
			StatusCode: rec.statusCode,
			Timestamp:  start,
		})

		if elapsed > pm.slow {
			logging.Ctx(r.Context()).Warn().
				Str("method", r.Method).
				Str("route", route).
				Int("status", rec.statusCode).
				Dur("duration", elapsed).
				Dur("threshold", pm.slow).
				Msg("Slow request detected")
		}
	})
}

// percentile picks the nearest-rank value from a sorted slice
func percentile(sorted []time.Duration, p float64) time.Duration {
	if len(sorted) == 0 {
		return 0
	}
	return sorted[int(float64(len(sorted)-1)*p)]
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
