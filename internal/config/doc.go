// Animerec - Content-Based Anime Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

/*
Package config provides centralized configuration management for Animerec.

# Configuration Sources

Configuration is loaded with Koanf v2 in three layers, later layers winning:

 1. Built-in defaults (defaultConfig)
 2. An optional YAML file: $CONFIG_PATH, config.yaml, config.yml,
    /etc/animerec/config.yaml
 3. Environment variables from an explicit mapping table

Unmapped environment variables are ignored.

# Environment Variables

Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8000)
  - HTTP_TIMEOUT: Read/write timeout (default: 30s)
  - SHUTDOWN_TIMEOUT: Graceful shutdown budget (default: 10s)

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: Include file:line (default: false)

Security:
  - CORS_ORIGINS: Comma-separated origins (default: *)
  - RATE_LIMIT_REQUESTS: Requests per window (default: 100)
  - RATE_LIMIT_WINDOW: Window length (default: 1m)
  - DISABLE_RATE_LIMIT: Turn rate limiting off (default: false)

Catalog:
  - CATALOG_SOURCE: csv, duckdb or sqlite (default: csv)
  - CATALOG_PATH: Dataset file (default: anime.csv)
  - CATALOG_TABLE: Table name for sqlite (default: anime)
  - CATALOG_NAME_COLUMN, CATALOG_GENRE_COLUMN, CATALOG_RATING_COLUMN

Index:
  - INDEX_MIN_TOKEN_LENGTH: Shortest kept token (default: 2)
  - INDEX_WORKERS: Similarity workers, 0 = GOMAXPROCS (default: 0)
  - INDEX_EXTRA_STOP_WORDS: Comma-separated additions to the English list

Recommend:
  - RECOMMEND_DEFAULT_TOP_N: top_n when omitted (default: 5)
  - RECOMMEND_MAX_TOP_N: Upper bound on top_n, 0 = unlimited (default: 0)

# Usage

	cfg, err := config.LoadWithKoanf()
	if err != nil {
	    log.Fatal(err)
	}
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
*/
package config
