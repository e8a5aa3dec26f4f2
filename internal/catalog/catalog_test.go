// Animerec - Content-Based Anime Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jmoiron/sqlx"

	"github.com/tomtom215/animerec/internal/config"
	"github.com/tomtom215/animerec/internal/index"
)

const sampleCSV = `anime_id,name,genre,type,episodes,rating,members
32281,Kimi no Na wa.,"Drama, Romance, School, Supernatural",Movie,1,9.37,200630
5114,Fullmetal Alchemist: Brotherhood,"Action, Adventure, Drama, Fantasy, Magic, Military, Shounen",TV,64,9.26,793665
28977,Gintama°,"Action, Comedy, Historical, Parody, Samurai, Sci-Fi, Shounen",TV,51,,114262
9999,Untitled Project,,TV,Unknown,not-a-number,12
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func checkSampleItems(t *testing.T, items []index.Item, report Report) {
	t.Helper()

	if len(items) != 4 {
		t.Fatalf("len(items) = %d, want 4", len(items))
	}

	want := []index.Item{
		{Name: "Kimi no Na wa.", Genre: "Drama, Romance, School, Supernatural", Rating: 9.37},
		{Name: "Fullmetal Alchemist: Brotherhood", Genre: "Action, Adventure, Drama, Fantasy, Magic, Military, Shounen", Rating: 9.26},
		{Name: "Gintama°", Genre: "Action, Comedy, Historical, Parody, Samurai, Sci-Fi, Shounen", Rating: 0},
		{Name: "Untitled Project", Genre: "", Rating: 0},
	}
	for i := range want {
		if items[i] != want[i] {
			t.Errorf("items[%d] = %+v, want %+v", i, items[i], want[i])
		}
	}

	wantReport := Report{Rows: 4, MissingGenre: 1, MissingRating: 2}
	if report != wantReport {
		t.Errorf("report = %+v, want %+v", report, wantReport)
	}
}

func TestCSVSource(t *testing.T) {
	t.Parallel()

	src := &CSVSource{Path: writeFile(t, "anime.csv", sampleCSV)}
	items, report, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	checkSampleItems(t, items, report)

	if got := src.Describe(); !strings.HasPrefix(got, "csv:") {
		t.Errorf("Describe() = %q, want csv: prefix", got)
	}
}

func TestCSVSourceByteOrderMarkAndShortRows(t *testing.T) {
	t.Parallel()

	src := &CSVSource{}
	items, report, err := src.read(context.Background(), strings.NewReader("\ufeffname,genre,rating\nA,Action\nB,Comedy,7\n"))
	if err != nil {
		t.Fatalf("read() error = %v", err)
	}
	if len(items) != 2 || items[0].Name != "A" || items[1].Rating != 7 {
		t.Errorf("items = %+v", items)
	}
	if report.MissingRating != 1 {
		t.Errorf("MissingRating = %d, want 1", report.MissingRating)
	}
}

func TestCSVSourceMissingColumn(t *testing.T) {
	t.Parallel()

	src := &CSVSource{}
	_, _, err := src.read(context.Background(), strings.NewReader("title,genre\nA,Action\n"))
	if !errors.Is(err, ErrMissingColumn) {
		t.Errorf("read() error = %v, want ErrMissingColumn", err)
	}
}

func TestCSVSourceCustomColumns(t *testing.T) {
	t.Parallel()

	src := &CSVSource{Columns: Columns{Name: "title", Genre: "tags", Rating: "score"}}
	items, _, err := src.read(context.Background(), strings.NewReader("title,tags,score\nMushishi,\"Adventure, Mystery\",8.8\n"))
	if err != nil {
		t.Fatalf("read() error = %v", err)
	}
	want := index.Item{Name: "Mushishi", Genre: "Adventure, Mystery", Rating: 8.8}
	if len(items) != 1 || items[0] != want {
		t.Errorf("items = %+v, want [%+v]", items, want)
	}
}

func TestCSVSourceMissingFile(t *testing.T) {
	t.Parallel()

	src := &CSVSource{Path: filepath.Join(t.TempDir(), "missing.csv")}
	if _, _, err := src.Load(context.Background()); err == nil {
		t.Error("Load() error = nil, want error")
	}
}

func TestLoadEmptyCatalog(t *testing.T) {
	t.Parallel()

	src := &CSVSource{Path: writeFile(t, "empty.csv", "name,genre,rating\n")}
	_, err := Load(context.Background(), src)
	if !errors.Is(err, index.ErrEmptyCatalog) {
		t.Errorf("Load() error = %v, want ErrEmptyCatalog", err)
	}
}

func TestSQLiteSource(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "anime.db")
	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	db.MustExec(`CREATE TABLE anime (anime_id INTEGER, name TEXT, genre TEXT, rating REAL)`)
	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO anime VALUES (32281, 'Kimi no Na wa.', 'Drama, Romance, School, Supernatural', 9.37)`)
	tx.MustExec(`INSERT INTO anime VALUES (5114, 'Fullmetal Alchemist: Brotherhood', 'Action, Adventure, Drama, Fantasy, Magic, Military, Shounen', 9.26)`)
	tx.MustExec(`INSERT INTO anime VALUES (28977, 'Gintama°', 'Action, Comedy, Historical, Parody, Samurai, Sci-Fi, Shounen', NULL)`)
	tx.MustExec(`INSERT INTO anime VALUES (9999, 'Untitled Project', NULL, 'not-a-number')`)
	if err := tx.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	src := &SQLiteSource{Path: path, Table: "anime"}
	items, report, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	checkSampleItems(t, items, report)
}

func TestSQLiteSourceRejectsUnsafeTable(t *testing.T) {
	t.Parallel()

	src := &SQLiteSource{Path: "unused.db", Table: "anime; DROP TABLE anime"}
	if _, _, err := src.Load(context.Background()); !errors.Is(err, ErrInvalidIdentifier) {
		t.Errorf("Load() error = %v, want ErrInvalidIdentifier", err)
	}
}

func TestDuckDBSourceCSV(t *testing.T) {
	t.Parallel()

	src := &DuckDBSource{Path: writeFile(t, "anime.csv", sampleCSV)}
	items, report, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	checkSampleItems(t, items, report)
}

func TestDuckDBTableFunction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{"/data/anime.csv", "read_csv_auto('/data/anime.csv', header = true)"},
		{"/data/anime.PARQUET", "read_parquet('/data/anime.PARQUET')"},
		{"/data/anime.jsonl", "read_json_auto('/data/anime.jsonl')"},
		{"/data/o'neil.csv", "read_csv_auto('/data/o''neil.csv', header = true)"},
	}

	for _, tt := range tests {
		src := &DuckDBSource{Path: tt.path}
		if got := src.tableFunction(); got != tt.want {
			t.Errorf("tableFunction(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     config.CatalogConfig
		want    string
		wantErr error
	}{
		{"csv", config.CatalogConfig{Source: "csv", Path: "a.csv"}, "csv:a.csv", nil},
		{"duckdb", config.CatalogConfig{Source: "DuckDB", Path: "a.parquet"}, "duckdb:a.parquet", nil},
		{"sqlite", config.CatalogConfig{Source: "sqlite", Path: "a.db", Table: "anime"}, "sqlite:a.db#anime", nil},
		{"unknown", config.CatalogConfig{Source: "mongo", Path: "x"}, "", ErrUnknownSource},
		{"bad table", config.CatalogConfig{Source: "sqlite", Path: "a.db", Table: "1anime"}, "", ErrInvalidIdentifier},
		{"bad column", config.CatalogConfig{Source: "csv", Path: "a.csv", GenreColumn: "genre\"--"}, "", ErrInvalidIdentifier},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := tt.cfg
			src, err := New(&cfg)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("New() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if got := src.Describe(); got != tt.want {
				t.Errorf("Describe() = %q, want %q", got, tt.want)
			}
		})
	}
}
