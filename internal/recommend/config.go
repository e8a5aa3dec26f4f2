// Animerec - Content-Based Anime Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package recommend

import "fmt"

// Config contains the recommender's request limits.
type Config struct {
	// DefaultTopN is used by callers when a request omits top_n.
	DefaultTopN int `json:"default_top_n"`

	// MaxTopN caps top_n at the API boundary. Zero means unlimited.
	MaxTopN int `json:"max_top_n"`
}

// DefaultConfig returns the v0 API defaults: five results, no ceiling.
func DefaultConfig() *Config {
	return &Config{
		DefaultTopN: 5,
		MaxTopN:     0,
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.DefaultTopN < 1 {
		return fmt.Errorf("default_top_n must be positive, got %d", c.DefaultTopN)
	}
	if c.MaxTopN < 0 {
		return fmt.Errorf("max_top_n must be non-negative, got %d", c.MaxTopN)
	}
	if c.MaxTopN > 0 && c.DefaultTopN > c.MaxTopN {
		return fmt.Errorf("default_top_n (%d) exceeds max_top_n (%d)", c.DefaultTopN, c.MaxTopN)
	}
	return nil
}
