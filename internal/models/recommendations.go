// Animerec - Content-Based Anime Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package models

import "time"

// SimilarRequest is the body of POST /api/v1/recommendations/similar.
type SimilarRequest struct {
	Name   string `json:"name" validate:"required,notblank,max=512" example:"Naruto"`
	TopN   *int   `json:"top_n,omitempty" validate:"omitempty,min=1" example:"5"`
	Filter string `json:"filter,omitempty" validate:"omitempty,celexpr" example:"item.rating >= 8.0"`
}

// GenreRequest is the body of POST /api/v1/recommendations/genre.
type GenreRequest struct {
	Genre  string `json:"genre" validate:"required,notblank,max=1024" example:"Action, Sci-Fi"`
	TopN   *int   `json:"top_n,omitempty" validate:"omitempty,min=1" example:"5"`
	Filter string `json:"filter,omitempty" validate:"omitempty,celexpr"`
}

// LegacyNameRequest is the body of POST /recommend_by_name/. AnimeName is
// a pointer so a missing field is rejected while "" is simply not found.
type LegacyNameRequest struct {
	AnimeName *string `json:"anime_name" validate:"required,max=512" example:"Naruto"`
	TopN      *int    `json:"top_n,omitempty" validate:"omitempty,min=1" example:"5"`
}

// LegacyGenreRequest is the body of POST /recommend/.
type LegacyGenreRequest struct {
	Genre string `json:"genre" validate:"required,notblank,max=1024" example:"Comedy, School"`
	TopN  *int   `json:"top_n,omitempty" validate:"omitempty,min=1" example:"5"`
}

// Recommendation is one ranked result on the enveloped endpoints.
type Recommendation struct {
	Name   string  `json:"name"`
	Genre  string  `json:"genre"`
	Rating float64 `json:"rating"`
	Score  float64 `json:"score"`
}

// LegacyItem is one result on the legacy endpoints.
type LegacyItem struct {
	Name   string  `json:"name"`
	Genre  string  `json:"genre"`
	Rating float64 `json:"rating"`
}

// RecommendationList is the data payload of the recommendation endpoints.
type RecommendationList struct {
	Query   string           `json:"query"`
	Mode    string           `json:"mode"`
	TopN    int              `json:"top_n"`
	Filter  string           `json:"filter,omitempty"`
	Count   int              `json:"count"`
	Results []Recommendation `json:"results"`
}

// Item is the data payload of GET /api/v1/items/{name}.
type Item struct {
	Row    int      `json:"row"`
	Name   string   `json:"name"`
	Genre  string   `json:"genre"`
	Rating float64  `json:"rating"`
	Terms  []string `json:"terms"`
}

// NameSuggestion is one match of GET /api/v1/items?prefix=.
type NameSuggestion struct {
	Name  string `json:"name"`
	Row   int    `json:"row"`
	Count int    `json:"count"`
}

// SuggestionList is the data payload of GET /api/v1/items.
type SuggestionList struct {
	Prefix  string           `json:"prefix"`
	Count   int              `json:"count"`
	Results []NameSuggestion `json:"results"`
}

// IndexStatus is the data payload of GET /api/v1/index/status.
type IndexStatus struct {
	Items           int       `json:"items"`
	Terms           int       `json:"terms"`
	ZeroVectors     int       `json:"zero_vectors"`
	DuplicateRows   int       `json:"duplicate_rows"`
	BuildDurationMS int64     `json:"build_duration_ms"`
	BuiltAt         time.Time `json:"built_at"`
	Requests        int64     `json:"requests"`
	NotFound        int64     `json:"not_found"`
	Errors          int64     `json:"errors"`
}

// HealthStatus is the data payload of the health endpoints.
type HealthStatus struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	Uptime  string `json:"uptime,omitempty"`
	Items   int    `json:"items,omitempty"`
}
