// Animerec - Content-Based Anime Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

/*
Command server runs the Animerec recommendation API.

# Startup

 1. Configuration: Koanf v2 (defaults, config.yaml, environment)
 2. Logging: zerolog, JSON or console
 3. Catalog: CSV, DuckDB (csv/parquet/json) or SQLite
 4. Index: tf-idf vectors and the pairwise cosine matrix
 5. Supervisor tree: uptime gauge and the HTTP server

A catalog that cannot be loaded, or that has no rows, stops the process
before the listener opens.

# Supervisor Tree

	animerec
	├── system-layer
	│   └── uptime-metrics
	└── api-layer
	    └── http-server

# Configuration

	HTTP_PORT=8000
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json or console
	CATALOG_SOURCE=csv           # csv, duckdb or sqlite
	CATALOG_PATH=anime.csv
	RECOMMEND_DEFAULT_TOP_N=5
	RECOMMEND_MAX_TOP_N=0        # 0 = unlimited
	DISABLE_RATE_LIMIT=false

# Signals

SIGINT and SIGTERM mark the server not ready, then shut the listener down
and wait for in-flight requests up to SHUTDOWN_TIMEOUT.

# Example

	CATALOG_PATH=./data/anime.csv ./animerec
	curl -s -X POST localhost:8000/recommend_by_name/ -d '{"anime_name":"Naruto","top_n":3}'
*/
package main
