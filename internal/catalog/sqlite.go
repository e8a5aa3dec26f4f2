// Animerec - Content-Based Anime Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package catalog

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3" // registers the sqlite3 driver

	"github.com/tomtom215/animerec/internal/index"
)

// SQLiteSource reads a table from a SQLite database, in rowid order.
type SQLiteSource struct {
	Path    string
	Table   string
	Columns Columns
}

// Describe implements Source.
func (s *SQLiteSource) Describe() string {
	return "sqlite:" + s.Path + "#" + s.Table
}

// Load implements Source.
func (s *SQLiteSource) Load(ctx context.Context) ([]index.Item, Report, error) {
	cols := s.Columns.withDefaults()
	if err := cols.validate(); err != nil {
		return nil, Report{}, err
	}
	if !identifierPattern.MatchString(s.Table) {
		return nil, Report{}, fmt.Errorf("%w: table %q", ErrInvalidIdentifier, s.Table)
	}

	db, err := sqlx.ConnectContext(ctx, "sqlite3", "file:"+s.Path+"?mode=ro")
	if err != nil {
		return nil, Report{}, fmt.Errorf("open sqlite %s: %w", s.Path, err)
	}
	defer func() { _ = db.Close() }()

	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY rowid", selectList(cols), quoteIdent(s.Table))
	return queryItems(ctx, db, query)
}
