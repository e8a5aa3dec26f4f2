// Animerec - Content-Based Anime Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package services

import (
	"context"
	"time"

	"github.com/tomtom215/animerec/internal/metrics"
)

// UptimeService refreshes the app_uptime_seconds gauge.
type UptimeService struct {
	start    time.Time
	interval time.Duration
	name     string
}

// NewUptimeService reports uptime since start every interval. A
// non-positive interval means 15s.
func NewUptimeService(start time.Time, interval time.Duration) *UptimeService {
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &UptimeService{
		start:    start,
		interval: interval,
		name:     "uptime-metrics",
	}
}

// Serve implements suture.Service.
func (u *UptimeService) Serve(ctx context.Context) error {
	metrics.TrackUptime(u.start, u.interval, ctx.Done())
	return ctx.Err()
}

// String names the service in supervisor logs.
func (u *UptimeService) String() string {
	return u.name
}
