// Animerec - Content-Based Anime Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateCatalog(); err != nil {
		return err
	}
	if err := c.validateIndex(); err != nil {
		return err
	}
	return c.validateRecommend()
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %v", c.Server.Timeout)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %v", c.Server.ShutdownTimeout)
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be positive, got %d", c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow < time.Second {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be at least 1s, got %v", c.Security.RateLimitWindow)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "panic", "disabled", "":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of trace, debug, info, warn, error; got %q", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "console", "":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

func (c *Config) validateCatalog() error {
	switch strings.ToLower(c.Catalog.Source) {
	case "csv", "duckdb":
	case "sqlite":
		if c.Catalog.Table == "" {
			return fmt.Errorf("CATALOG_TABLE is required when CATALOG_SOURCE=sqlite")
		}
	default:
		return fmt.Errorf("CATALOG_SOURCE must be csv, duckdb or sqlite, got %q", c.Catalog.Source)
	}
	if c.Catalog.Path == "" {
		return fmt.Errorf("CATALOG_PATH is required")
	}
	return nil
}

func (c *Config) validateIndex() error {
	if c.Index.MinTokenLength < 1 {
		return fmt.Errorf("INDEX_MIN_TOKEN_LENGTH must be positive, got %d", c.Index.MinTokenLength)
	}
	if c.Index.Workers < 0 {
		return fmt.Errorf("INDEX_WORKERS must be non-negative, got %d", c.Index.Workers)
	}
	return nil
}

func (c *Config) validateRecommend() error {
	if c.Recommend.DefaultTopN < 1 {
		return fmt.Errorf("RECOMMEND_DEFAULT_TOP_N must be positive, got %d", c.Recommend.DefaultTopN)
	}
	if c.Recommend.MaxTopN < 0 {
		return fmt.Errorf("RECOMMEND_MAX_TOP_N must be non-negative, got %d", c.Recommend.MaxTopN)
	}
	if c.Recommend.MaxTopN > 0 && c.Recommend.DefaultTopN > c.Recommend.MaxTopN {
		return fmt.Errorf("RECOMMEND_DEFAULT_TOP_N (%d) exceeds RECOMMEND_MAX_TOP_N (%d)",
			c.Recommend.DefaultTopN, c.Recommend.MaxTopN)
	}
	return nil
}
