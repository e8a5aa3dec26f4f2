// Animerec - Content-Based Anime Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

// Package catalog loads the item table the similarity index is built from.
//
// Three sources are supported:
//
//   - csv: a headered CSV file read with encoding/csv
//   - duckdb: CSV, Parquet or JSON files scanned by an in-memory DuckDB
//   - sqlite: a table in a SQLite database
//
// Every source yields items in table order, since row position is an item's
// identity. A missing genre becomes the empty string and a missing rating
// becomes 0; both are counted in the load report.
package catalog
