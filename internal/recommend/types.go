// Animerec - Content-Based Anime Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package recommend

// Mode identifies which query produced a recommendation list.
type Mode int

const (
	// ModeSimilar ranks items against a named catalog item.
	ModeSimilar Mode = iota

	// ModeGenre ranks items against free genre text.
	ModeGenre
)

// String returns the mode name used in logs and metric labels.
func (m Mode) String() string {
	switch m {
	case ModeSimilar:
		return "similar"
	case ModeGenre:
		return "genre"
	default:
		return "unknown"
	}
}

// Query asks for the items most similar to a named item.
type Query struct {
	// Name is matched exactly and case-sensitively.
	Name string

	// TopN is the maximum number of results. Must be at least 1.
	TopN int

	// Filter optionally restricts candidates. Nil accepts everything.
	Filter *Filter
}

// GenreQuery asks for the items most similar to free genre text.
type GenreQuery struct {
	Genre  string
	TopN   int
	Filter *Filter
}

// Recommendation is one ranked result.
type Recommendation struct {
	Name   string  `json:"name"`
	Genre  string  `json:"genre"`
	Rating float64 `json:"rating"`

	// Score is the cosine similarity to the query, in [0, 1].
	Score float64 `json:"score"`

	// row is the catalog position, kept for tie-break assertions.
	row int
}

// Row returns the catalog row the recommendation was drawn from.
func (r Recommendation) Row() int {
	return r.row
}

// Stats is a snapshot of recommender counters.
type Stats struct {
	Requests int64 `json:"requests"`
	NotFound int64 `json:"not_found"`
	Errors   int64 `json:"errors"`
}
