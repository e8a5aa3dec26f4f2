// Animerec - Content-Based Anime Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package api

import (
	"sync/atomic"
	"time"

	"github.com/tomtom215/animerec/internal/middleware"
	"github.com/tomtom215/animerec/internal/recommend"
)

// Handler serves every endpoint from one shared recommender.
type Handler struct {
	rec       *recommend.Recommender
	cfg       recommend.Config
	version   string
	startTime time.Time
	monitor   *middleware.PerformanceMonitor

	// ready is cleared while the server drains on shutdown.
	ready atomic.Bool
}

// NewHandler creates a handler. cfg nil means recommend.DefaultConfig().
// The handler starts ready when rec is non-nil.
func NewHandler(rec *recommend.Recommender, cfg *recommend.Config, version string) *Handler {
	if cfg == nil {
		cfg = recommend.DefaultConfig()
	}
	h := &Handler{
		rec:       rec,
		cfg:       *cfg,
		version:   version,
		startTime: time.Now(),
		monitor:   middleware.NewPerformanceMonitor(1000, time.Second),
	}
	h.ready.Store(rec != nil)
	return h
}

// SetReady flips the readiness probe.
func (h *Handler) SetReady(ready bool) {
	h.ready.Store(ready && h.rec != nil)
}

// Ready reports whether the handler accepts recommendation traffic.
func (h *Handler) Ready() bool {
	return h.ready.Load()
}

// Monitor returns the latency window fed by the router.
func (h *Handler) Monitor() *middleware.PerformanceMonitor {
	return h.monitor
}
