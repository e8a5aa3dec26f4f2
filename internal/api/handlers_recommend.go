// Animerec - Content-Based Anime Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/animerec/internal/models"
	"github.com/tomtom215/animerec/internal/recommend"
)

// legacyNotFound is the v0 API not-found detail.
const legacyNotFound = "Anime not found!"

// RecommendSimilar handles POST /api/v1/recommendations/similar
//
// @Summary Recommend items similar to a named item
// @Description Ranks every other catalog item by genre cosine similarity to the named item. Rows sharing the queried name are never returned.
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body models.SimilarRequest true "Query"
// @Success 200 {object} models.APIResponse{data=models.RecommendationList}
// @Failure 400 {object} models.APIResponse "Invalid JSON, validation error or invalid filter"
// @Failure 404 {object} models.APIResponse "Item not found"
// @Failure 500 {object} models.APIResponse "Internal error"
// @Router /recommendations/similar [post]
func (h *Handler) RecommendSimilar(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.SimilarRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, models.ErrCodeInvalidJSON, "Invalid JSON request body", err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	h.similar(w, r, start, req.Name, req.TopN, req.Filter)
}

// RecommendSimilarByPath handles GET /api/v1/recommendations/similar/{name}
//
// @Summary Recommend items similar to a named item (path form)
// @Description Same as the POST form. The name is URL path escaped; names containing "/" must be escaped as %2F.
// @Tags Recommendations
// @Produce json
// @Param name path string true "Exact item name"
// @Param top_n query int false "Maximum results" default(5)
// @Param filter query string false "CEL filter expression"
// @Success 200 {object} models.APIResponse{data=models.RecommendationList}
// @Failure 400 {object} models.APIResponse
// @Failure 404 {object} models.APIResponse
// @Router /recommendations/similar/{name} [get]
func (h *Handler) RecommendSimilarByPath(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	topN, err := parseTopNQuery(r)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, models.ErrCodeValidation, err.Error(), nil)
		return
	}

	req := models.SimilarRequest{
		Name:   pathName(r),
		TopN:   topN,
		Filter: r.URL.Query().Get("filter"),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	h.similar(w, r, start, req.Name, req.TopN, req.Filter)
}

func (h *Handler) similar(w http.ResponseWriter, r *http.Request, start time.Time, name string, requested *int, filterExpr string) {
	topN, err := h.resolveTopN(requested)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, models.ErrCodeValidation, err.Error(), nil)
		return
	}

	filter, err := recommend.CompileFilter(filterExpr)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, models.ErrCodeInvalidFilter, err.Error(), nil)
		return
	}

	recs, err := h.rec.Recommend(r.Context(), recommend.Query{Name: name, TopN: topN, Filter: filter})
	if err != nil {
		status, code := statusForError(err)
		respondError(w, r, status, code, err.Error(), err)
		return
	}

	respondSuccess(w, r, start, models.RecommendationList{
		Query:   name,
		Mode:    recommend.ModeSimilar.String(),
		TopN:    topN,
		Filter:  filter.Expression(),
		Count:   len(recs),
		Results: toRecommendations(recs),
	})
}

// RecommendGenre handles POST /api/v1/recommendations/genre
//
// @Summary Recommend items for free genre text
// @Description Vectorizes the genre text against the catalog vocabulary and ranks items sharing at least one term. Unknown terms are ignored; text with no known terms yields an empty list.
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body models.GenreRequest true "Query"
// @Success 200 {object} models.APIResponse{data=models.RecommendationList}
// @Failure 400 {object} models.APIResponse
// @Failure 500 {object} models.APIResponse
// @Router /recommendations/genre [post]
func (h *Handler) RecommendGenre(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req models.GenreRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, models.ErrCodeInvalidJSON, "Invalid JSON request body", err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondAPIError(w, r, http.StatusBadRequest, apiErr, nil)
		return
	}

	topN, err := h.resolveTopN(req.TopN)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, models.ErrCodeValidation, err.Error(), nil)
		return
	}

	filter, err := recommend.CompileFilter(req.Filter)
	if err != nil {
		respondError(w, r, http.StatusBadRequest, models.ErrCodeInvalidFilter, err.Error(), nil)
		return
	}

	recs, err := h.rec.RecommendByGenre(r.Context(), recommend.GenreQuery{Genre: req.Genre, TopN: topN, Filter: filter})
	if err != nil {
		status, code := statusForError(err)
		respondError(w, r, status, code, err.Error(), err)
		return
	}

	respondSuccess(w, r, start, models.RecommendationList{
		Query:   req.Genre,
		Mode:    recommend.ModeGenre.String(),
		TopN:    topN,
		Filter:  filter.Expression(),
		Count:   len(recs),
		Results: toRecommendations(recs),
	})
}

// LegacyRecommendByName handles POST /recommend_by_name/
//
// @Summary Recommend by anime name (legacy)
// @Description v0 endpoint. Returns a bare JSON array of {name, genre, rating}.
// @Tags Legacy
// @Accept json
// @Produce json
// @Param request body models.LegacyNameRequest true "Query"
// @Success 200 {array} models.LegacyItem
// @Failure 404 {object} models.LegacyError "Anime not found!"
// @Failure 422 {object} models.LegacyError
// @Failure 500 {object} models.LegacyError
// @Router /recommend_by_name/ [post]
func (h *Handler) LegacyRecommendByName(w http.ResponseWriter, r *http.Request) {
	var req models.LegacyNameRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondLegacyError(w, r, http.StatusUnprocessableEntity, "Invalid JSON request body", err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondLegacyError(w, r, http.StatusUnprocessableEntity, apiErr.Message, nil)
		return
	}

	topN, err := h.resolveTopN(req.TopN)
	if err != nil {
		respondLegacyError(w, r, http.StatusUnprocessableEntity, err.Error(), nil)
		return
	}

	recs, err := h.rec.Recommend(r.Context(), recommend.Query{Name: *req.AnimeName, TopN: topN})
	if err != nil {
		h.respondLegacyRecommendError(w, r, err)
		return
	}

	respondLegacy(w, r, http.StatusOK, toLegacyItems(recs))
}

// LegacyRecommendByGenre handles POST /recommend/
//
// @Summary Recommend by genre text (legacy)
// @Description v0 endpoint used by the web UI. Returns a bare JSON array of {name, genre, rating}.
// @Tags Legacy
// @Accept json
// @Produce json
// @Param request body models.LegacyGenreRequest true "Query"
// @Success 200 {array} models.LegacyItem
// @Failure 422 {object} models.LegacyError
// @Failure 500 {object} models.LegacyError
// @Router /recommend/ [post]
func (h *Handler) LegacyRecommendByGenre(w http.ResponseWriter, r *http.Request) {
	var req models.LegacyGenreRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondLegacyError(w, r, http.StatusUnprocessableEntity, "Invalid JSON request body", err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondLegacyError(w, r, http.StatusUnprocessableEntity, apiErr.Message, nil)
		return
	}

	topN, err := h.resolveTopN(req.TopN)
	if err != nil {
		respondLegacyError(w, r, http.StatusUnprocessableEntity, err.Error(), nil)
		return
	}

	recs, err := h.rec.RecommendByGenre(r.Context(), recommend.GenreQuery{Genre: req.Genre, TopN: topN})
	if err != nil {
		h.respondLegacyRecommendError(w, r, err)
		return
	}

	respondLegacy(w, r, http.StatusOK, toLegacyItems(recs))
}

func (h *Handler) respondLegacyRecommendError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, recommend.ErrNotFound):
		respondLegacyError(w, r, http.StatusNotFound, legacyNotFound, nil)
	case errors.Is(err, recommend.ErrInvalidQuery):
		respondLegacyError(w, r, http.StatusUnprocessableEntity, err.Error(), nil)
	default:
		respondLegacyError(w, r, http.StatusInternalServerError, err.Error(), err)
	}
}
