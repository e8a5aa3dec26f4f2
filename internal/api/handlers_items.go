// Animerec - Content-Based Anime Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/tomtom215/animerec/internal/models"
)

// GetItem handles GET /api/v1/items/{name}
//
// @Summary Fetch one catalog item
// @Description Looks up the first row with exactly this name and returns it with its vocabulary terms.
// @Tags Catalog
// @Produce json
// @Param name path string true "Exact item name"
// @Success 200 {object} models.APIResponse{data=models.Item}
// @Failure 404 {object} models.APIResponse
// @Router /items/{name} [get]
func (h *Handler) GetItem(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	name := pathName(r)

	idx := h.rec.Index()
	row, ok := idx.Lookup(name)
	if !ok {
		respondError(w, r, http.StatusNotFound, models.ErrCodeItemNotFound, "item not found", nil)
		return
	}

	item := idx.Item(row)
	vec := idx.Vector(row)
	vocab := idx.Vocabulary()

	terms := make([]string, len(vec.Terms))
	for i, id := range vec.Terms {
		terms[i] = vocab.Term(id)
	}

	respondSuccess(w, r, start, models.Item{
		Row:    row,
		Name:   item.Name,
		Genre:  item.Genre,
		Rating: item.Rating,
		Terms:  terms,
	})
}

// SuggestItems handles GET /api/v1/items
//
// @Summary Suggest item names by prefix
// @Description Case-insensitive prefix match over catalog names, for finding the exact spelling the recommendation endpoints require. Names shared by several rows come first.
// @Tags Catalog
// @Produce json
// @Param prefix query string false "Name prefix"
// @Param limit query int false "Maximum suggestions (max 100)" default(10)
// @Success 200 {object} models.APIResponse{data=models.SuggestionList}
// @Failure 400 {object} models.APIResponse
// @Router /items [get]
func (h *Handler) SuggestItems(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	prefix := r.URL.Query().Get("prefix")

	limit := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			respondError(w, r, http.StatusBadRequest, models.ErrCodeValidation, "limit must be a positive integer", nil)
			return
		}
		limit = n
	}

	found := h.rec.Index().Suggest(prefix, limit)
	results := make([]models.NameSuggestion, len(found))
	for i, s := range found {
		results[i] = models.NameSuggestion{Name: s.Name, Row: s.Row, Count: s.Count}
	}

	respondSuccess(w, r, start, models.SuggestionList{
		Prefix:  prefix,
		Count:   len(results),
		Results: results,
	})
}

// IndexStatus handles GET /api/v1/index/status
//
// @Summary Similarity index statistics
// @Description Returns build statistics of the in-memory index and recommender request counters.
// @Tags Catalog
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.IndexStatus}
// @Router /index/status [get]
func (h *Handler) IndexStatus(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	stats := h.rec.Index().Stats()
	counters := h.rec.Stats()

	respondSuccess(w, r, start, models.IndexStatus{
		Items:           stats.Items,
		Terms:           stats.Terms,
		ZeroVectors:     stats.ZeroVectors,
		DuplicateRows:   stats.DuplicateRows,
		BuildDurationMS: stats.BuildDuration.Milliseconds(),
		BuiltAt:         stats.BuiltAt,
		Requests:        counters.Requests,
		NotFound:        counters.NotFound,
		Errors:          counters.Errors,
	})
}

// PerformanceStats handles GET /api/v1/stats/performance
//
// @Summary Recent request latency per endpoint
// @Description Percentiles over the last 1000 requests seen by the server.
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=[]middleware.EndpointStats}
// @Router /stats/performance [get]
func (h *Handler) PerformanceStats(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, time.Now(), h.monitor.GetStats())
}
