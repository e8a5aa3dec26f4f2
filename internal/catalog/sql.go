// Animerec - Content-Based Anime Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/tomtom215/animerec/internal/index"
)

// itemRow is the projection every SQL source selects.
type itemRow struct {
	Name   sql.NullString `db:"name"`
	Genre  sql.NullString `db:"genre"`
	Rating sql.NullString `db:"rating"`
}

// selectList aliases the configured columns onto itemRow's field names.
// Ratings are scanned as text and parsed here so every driver treats
// non-numeric values the same way.
func selectList(cols Columns) string {
	return fmt.Sprintf("%s AS name, %s AS genre, %s AS rating",
		quoteIdent(cols.Name), quoteIdent(cols.Genre), quoteIdent(cols.Rating))
}

// queryItems runs query and converts the rows in result order.
func queryItems(ctx context.Context, db *sqlx.DB, query string) ([]index.Item, Report, error) {
	rows, err := db.QueryxContext(ctx, query)
	if err != nil {
		return nil, Report{}, fmt.Errorf("query catalog: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var (
		items  []index.Item
		report Report
	)
	for rows.Next() {
		var r itemRow
		if err := rows.StructScan(&r); err != nil {
			return nil, Report{}, fmt.Errorf("scan catalog row %d: %w", report.Rows+1, err)
		}

		var (
			rating   float64
			ratingOK bool
		)
		if r.Rating.Valid {
			rating, ratingOK = parseRating(r.Rating.String)
		}
		item := index.Item{
			Name:   r.Name.String,
			Genre:  r.Genre.String,
			Rating: rating,
		}
		genreOK := r.Genre.Valid && r.Genre.String != ""

		report.add(&item, genreOK, ratingOK)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, Report{}, fmt.Errorf("iterate catalog rows: %w", err)
	}

	return items, report, nil
}
