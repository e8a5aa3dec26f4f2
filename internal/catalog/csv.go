// Animerec - Content-Based Anime Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tomtom215/animerec/internal/index"
)

// CSVSource reads a headered CSV file.
type CSVSource struct {
	Path    string
	Columns Columns
}

// Describe implements Source.
func (s *CSVSource) Describe() string {
	return "csv:" + s.Path
}

// Load implements Source.
func (s *CSVSource) Load(ctx context.Context) ([]index.Item, Report, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, Report{}, fmt.Errorf("open %s: %w", s.Path, err)
	}
	defer func() { _ = f.Close() }()

	return s.read(ctx, f)
}

func (s *CSVSource) read(ctx context.Context, r io.Reader) ([]index.Item, Report, error) {
	cols := s.Columns.withDefaults()

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		return nil, Report{}, fmt.Errorf("read header: %w", err)
	}

	pos := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := pos[h]; !dup {
			pos[h] = i
		}
	}

	nameIdx, ok := pos[cols.Name]
	if !ok {
		return nil, Report{}, fmt.Errorf("%w: %s", ErrMissingColumn, cols.Name)
	}
	genreIdx, ok := pos[cols.Genre]
	if !ok {
		return nil, Report{}, fmt.Errorf("%w: %s", ErrMissingColumn, cols.Genre)
	}
	ratingIdx, hasRating := pos[cols.Rating]

	var (
		items  []index.Item
		report Report
	)
	for line := 2; ; line++ {
		if line%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, Report{}, err
			}
		}

		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, Report{}, fmt.Errorf("line %d: %w", line, err)
		}

		item := index.Item{Name: field(record, nameIdx)}

		item.Genre = field(record, genreIdx)
		genreOK := item.Genre != ""

		ratingOK := false
		if hasRating {
			item.Rating, ratingOK = parseRating(field(record, ratingIdx))
		}

		report.add(&item, genreOK, ratingOK)
		items = append(items, item)
	}

	return items, report, nil
}

func field(record []string, i int) string {
	if i < len(record) {
		return record[i]
	}
	return ""
}
