// Animerec - Content-Based Anime Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package catalog

import (
	"context"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/animerec/internal/config"
	"github.com/tomtom215/animerec/internal/index"
	"github.com/tomtom215/animerec/internal/logging"
	"github.com/tomtom215/animerec/internal/metrics"
)

// Source kinds accepted by New.
const (
	KindCSV    = "csv"
	KindDuckDB = "duckdb"
	KindSQLite = "sqlite"
)

var (
	// ErrUnknownSource is returned for an unsupported source kind.
	ErrUnknownSource = errors.New("catalog: unknown source")

	// ErrInvalidIdentifier is returned for unsafe table or column names.
	ErrInvalidIdentifier = errors.New("catalog: invalid identifier")

	// ErrMissingColumn is returned when a required column is absent.
	ErrMissingColumn = errors.New("catalog: missing column")
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Source produces the catalog in table order.
type Source interface {
	// Load reads every item.
	Load(ctx context.Context) ([]index.Item, Report, error)

	// Describe returns a short human-readable origin for logs.
	Describe() string
}

// Columns names the fields read from the underlying table.
type Columns struct {
	Name   string
	Genre  string
	Rating string
}

// DefaultColumns matches the anime dataset layout.
func DefaultColumns() Columns {
	return Columns{Name: "name", Genre: "genre", Rating: "rating"}
}

func (c Columns) withDefaults() Columns {
	d := DefaultColumns()
	if c.Name == "" {
		c.Name = d.Name
	}
	if c.Genre == "" {
		c.Genre = d.Genre
	}
	if c.Rating == "" {
		c.Rating = d.Rating
	}
	return c
}

func (c Columns) validate() error {
	for _, col := range []string{c.Name, c.Genre, c.Rating} {
		if !identifierPattern.MatchString(col) {
			return fmt.Errorf("%w: column %q", ErrInvalidIdentifier, col)
		}
	}
	return nil
}

// Report counts the defaults applied while loading.
type Report struct {
	Rows          int
	MissingGenre  int
	MissingRating int
}

func (r *Report) add(item *index.Item, genreOK, ratingOK bool) {
	r.Rows++
	if !genreOK {
		r.MissingGenre++
		item.Genre = ""
	}
	if !ratingOK {
		r.MissingRating++
		item.Rating = 0
	}
}

// New returns the source configured by cfg.
func New(cfg *config.CatalogConfig) (Source, error) {
	cols := Columns{
		Name:   cfg.NameColumn,
		Genre:  cfg.GenreColumn,
		Rating: cfg.RatingColumn,
	}.withDefaults()
	if err := cols.validate(); err != nil {
		return nil, err
	}

	switch strings.ToLower(cfg.Source) {
	case KindCSV, "":
		return &CSVSource{Path: cfg.Path, Columns: cols}, nil
	case KindDuckDB:
		return &DuckDBSource{Path: cfg.Path, Columns: cols}, nil
	case KindSQLite:
		if !identifierPattern.MatchString(cfg.Table) {
			return nil, fmt.Errorf("%w: table %q", ErrInvalidIdentifier, cfg.Table)
		}
		return &SQLiteSource{Path: cfg.Path, Table: cfg.Table, Columns: cols}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, cfg.Source)
	}
}

// Load reads src and logs the report. An empty catalog is an error.
func Load(ctx context.Context, src Source) ([]index.Item, error) {
	start := time.Now()
	items, report, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog from %s: %w", src.Describe(), err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("load catalog from %s: %w", src.Describe(), index.ErrEmptyCatalog)
	}

	event := logging.Info()
	if report.MissingGenre > 0 || report.MissingRating > 0 {
		event = logging.Warn()
	}
	event.
		Str("source", src.Describe()).
		Int("rows", report.Rows).
		Int("missing_genre", report.MissingGenre).
		Int("missing_rating", report.MissingRating).
		Dur("duration", time.Since(start)).
		Msg("Catalog loaded")

	metrics.RecordCatalogLoad(kindOf(src), time.Since(start), report.Rows, report.MissingGenre, report.MissingRating)
	return items, nil
}

// kindOf returns the metric label for src.
func kindOf(src Source) string {
	switch src.(type) {
	case *CSVSource:
		return KindCSV
	case *DuckDBSource:
		return KindDuckDB
	case *SQLiteSource:
		return KindSQLite
	default:
		return "other"
	}
}

// parseRating returns the rating and whether raw was a usable number.
func parseRating(raw string) (float64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// quoteIdent double-quotes a validated SQL identifier.
func quoteIdent(name string) string {
	return `"` + name + `"`
}

// quoteLiteral single-quotes a SQL string literal.
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
