// Animerec - Content-Based Anime Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package config

import "time"

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
	Security  SecurityConfig  `koanf:"security"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Index     IndexConfig     `koanf:"index"`
	Recommend RecommendConfig `koanf:"recommend"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// CatalogConfig selects where the item table is loaded from.
type CatalogConfig struct {
	// Source is csv, duckdb or sqlite.
	Source string `koanf:"source"`

	// Path is the dataset file (CSV/Parquet/JSON, or the SQLite database).
	Path string `koanf:"path"`

	// Table is only used by the sqlite source.
	Table string `koanf:"table"`

	NameColumn   string `koanf:"name_column"`
	GenreColumn  string `koanf:"genre_column"`
	RatingColumn string `koanf:"rating_column"`
}

// IndexConfig tunes the similarity index build.
type IndexConfig struct {
	MinTokenLength int      `koanf:"min_token_length"`
	Workers        int      `koanf:"workers"` // 0 = GOMAXPROCS
	ExtraStopWords []string `koanf:"extra_stop_words"`
}

// RecommendConfig holds request limits for recommendation endpoints.
type RecommendConfig struct {
	DefaultTopN int `koanf:"default_top_n"`
	MaxTopN     int `koanf:"max_top_n"` // 0 = unlimited
}
