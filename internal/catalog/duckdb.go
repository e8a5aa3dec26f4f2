// Animerec - Content-Based Anime Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2" // registers the duckdb driver
	"github.com/jmoiron/sqlx"

	"github.com/tomtom215/animerec/internal/index"
)

// duckDBDSN keeps the scan self-contained: no extension downloads and rows
// returned in file order.
const duckDBDSN = ":memory:?autoinstall_known_extensions=false&autoload_known_extensions=false&preserve_insertion_order=true"

// DuckDBSource scans a CSV, Parquet or JSON file with an in-memory DuckDB.
// The reader is picked from the file extension.
type DuckDBSource struct {
	Path    string
	Columns Columns
}

// Describe implements Source.
func (s *DuckDBSource) Describe() string {
	return "duckdb:" + s.Path
}

// Load implements Source.
func (s *DuckDBSource) Load(ctx context.Context) ([]index.Item, Report, error) {
	cols := s.Columns.withDefaults()
	if err := cols.validate(); err != nil {
		return nil, Report{}, err
	}

	conn, err := sql.Open("duckdb", duckDBDSN)
	if err != nil {
		return nil, Report{}, fmt.Errorf("open duckdb: %w", err)
	}
	db := sqlx.NewDb(conn, "duckdb")
	defer func() { _ = db.Close() }()

	query := fmt.Sprintf("SELECT %s FROM %s", selectList(cols), s.tableFunction())
	return queryItems(ctx, db, query)
}

// tableFunction returns the DuckDB reader call for the file.
func (s *DuckDBSource) tableFunction() string {
	path := quoteLiteral(s.Path)
	switch strings.ToLower(filepath.Ext(s.Path)) {
	case ".parquet":
		return "read_parquet(" + path + ")"
	case ".json", ".ndjson", ".jsonl":
		return "read_json_auto(" + path + ")"
	default:
		return "read_csv_auto(" + path + ", header = true)"
	}
}
