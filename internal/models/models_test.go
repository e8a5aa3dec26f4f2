// Animerec - Content-Based Anime Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package models

import (
	"bytes"
	"go/format"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
)

func TestAPIResponse_ErrorOmittedOnSuccess(t *testing.T) {
	resp := APIResponse{
		Status: StatusSuccess,
		Data:   []Recommendation{{Name: "Bleach", Genre: "Action", Rating: 7.9, Score: 0.5}},
		Metadata: Metadata{
			Timestamp: time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC),
		},
	}

	b, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	s := string(b)

	if strings.Contains(s, `"error"`) {
		t.Errorf("success response contains error field: %s", s)
	}
	if strings.Contains(s, "query_time_ms") || strings.Contains(s, "request_id") {
		t.Errorf("zero metadata fields not omitted: %s", s)
	}
	if !strings.Contains(s, `"score":0.5`) {
		t.Errorf("score missing: %s", s)
	}
}

func TestLegacyItem_HasNoScore(t *testing.T) {
	b, err := json.Marshal([]LegacyItem{{Name: "Naruto", Genre: "Action", Rating: 7.81}})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `[{"name":"Naruto","genre":"Action","rating":7.81}]`
	if string(b) != want {
		t.Errorf("got %s, want %s", b, want)
	}
}

func TestLegacyNameRequest_MissingVersusEmpty(t *testing.T) {
	var missing LegacyNameRequest
	if err := json.Unmarshal([]byte(`{"top_n": 3}`), &missing); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if missing.AnimeName != nil {
		t.Error("absent anime_name should stay nil")
	}
	if missing.TopN == nil || *missing.TopN != 3 {
		t.Errorf("TopN = %v, want 3", missing.TopN)
	}

	var empty LegacyNameRequest
	if err := json.Unmarshal([]byte(`{"anime_name": ""}`), &empty); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if empty.AnimeName == nil || *empty.AnimeName != "" {
		t.Error("empty anime_name should decode to a pointer to \"\"")
	}
	if empty.TopN != nil {
		t.Error("absent top_n should stay nil")
	}
}

// Request structs carry long tag columns; keep them gofmt-aligned.
func TestSourcesFormatted(t *testing.T) {
	files, err := filepath.Glob("*.go")
	if err != nil {
		t.Fatalf("Glob: %v", err)
	}
	for _, name := range files {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		src, err := os.ReadFile(name)
		if err != nil {
			t.Fatalf("ReadFile %s: %v", name, err)
		}
		formatted, err := format.Source(src)
		if err != nil {
			t.Fatalf("format %s: %v", name, err)
		}
		if !bytes.Equal(src, formatted) {
			t.Errorf("%s is not gofmt-formatted", name)
		}
	}
}
