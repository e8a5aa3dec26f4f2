// Animerec - Content-Based Anime Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/tomtom215/animerec/internal/logging"
	"github.com/tomtom215/animerec/internal/models"
	"github.com/tomtom215/animerec/internal/recommend"
	"github.com/tomtom215/animerec/internal/validation"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// errEmptyBody is returned by decodeJSON for a request without a body.
var errEmptyBody = errors.New("request body is empty")

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&result, "\\x%02x", r)
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends an enveloped response with an ETag. A matching
// If-None-Match on a 200 yields 304 without a body.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, response *models.APIResponse) {
	data, err := json.Marshal(response)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	writeJSONBytes(w, r, status, data)
}

func writeJSONBytes(w http.ResponseWriter, r *http.Request, status int, data []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")

	etag := generateETag(data)
	w.Header().Set("ETag", etag)

	if status == http.StatusOK && r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Failed to write JSON response")
	}
}

// generateETag creates a weak ETag from data using FNV-1a.
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return `W/"` + strconv.FormatUint(uint64(hash), 16) + `"`
}

// respondSuccess wraps data in a success envelope.
func respondSuccess(w http.ResponseWriter, r *http.Request, start time.Time, data interface{}) {
	respondJSON(w, r, http.StatusOK, &models.APIResponse{
		Status:   models.StatusSuccess,
		Data:     data,
		Metadata: metadata(r, start),
	})
}

// respondError sends an error envelope. Server errors are logged at error
// level, client errors at debug.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, err error) {
	respondAPIError(w, r, status, &models.APIError{Code: code, Message: message}, err)
}

func respondAPIError(w http.ResponseWriter, r *http.Request, status int, apiErr *models.APIError, err error) {
	logger := logging.Ctx(r.Context())
	event := logger.Debug()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	if err != nil {
		event = event.Str("error", sanitizeLogValue(err.Error()))
	}
	event.
		Str("code", apiErr.Code).
		Int("status", status).
		Str("path", sanitizeLogValue(r.URL.Path)).
		Msg("API Error")

	respondJSON(w, r, status, &models.APIResponse{
		Status:   models.StatusError,
		Metadata: metadata(r, time.Time{}),
		Error:    apiErr,
	})
}

func metadata(r *http.Request, start time.Time) models.Metadata {
	md := models.Metadata{
		Timestamp: time.Now().UTC(),
		RequestID: logging.RequestIDFromContext(r.Context()),
	}
	if !start.IsZero() {
		md.QueryTimeMS = time.Since(start).Milliseconds()
	}
	return md
}

// respondLegacy writes a bare JSON body as the legacy endpoints do.
func respondLegacy(w http.ResponseWriter, r *http.Request, status int, body interface{}) {
	data, err := json.Marshal(body)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	writeJSONBytes(w, r, status, data)
}

func respondLegacyError(w http.ResponseWriter, r *http.Request, status int, detail string, err error) {
	logger := logging.Ctx(r.Context())
	event := logger.Debug()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	if err != nil {
		event = event.Str("error", sanitizeLogValue(err.Error()))
	}
	event.Int("status", status).Str("path", r.URL.Path).Msg("Legacy API Error")

	respondLegacy(w, r, status, models.LegacyError{Detail: detail})
}

// decodeJSON reads one JSON value from a size-limited body.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer body.Close()

	if err := json.NewDecoder(body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return errEmptyBody
		}
		return err
	}
	return nil
}

// validateRequest validates a struct using go-playground/validator.
func validateRequest(v interface{}) *models.APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}

	apiErr := validationErr.ToAPIError()
	return &models.APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}
}

// resolveTopN applies the configured default and ceiling.
func (h *Handler) resolveTopN(requested *int) (int, error) {
	n := h.cfg.DefaultTopN
	if requested != nil {
		n = *requested
	}
	if n < 1 {
		return 0, fmt.Errorf("top_n must be at least 1, got %d", n)
	}
	if h.cfg.MaxTopN > 0 && n > h.cfg.MaxTopN {
		return 0, fmt.Errorf("top_n must be at most %d, got %d", h.cfg.MaxTopN, n)
	}
	return n, nil
}

// parseTopNQuery reads an optional top_n query parameter.
func parseTopNQuery(r *http.Request) (*int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get("top_n"))
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("top_n must be an integer, got %q", raw)
	}
	return &n, nil
}

// pathName returns the unescaped {name} URL parameter.
func pathName(r *http.Request) string {
	raw := chi.URLParam(r, "name")
	if name, err := url.PathUnescape(raw); err == nil {
		return name
	}
	return raw
}

// statusForError maps recommender error kinds to HTTP. It is the only
// place in the service where that translation happens.
func statusForError(err error) (int, string) {
	if errors.Is(err, recommend.ErrInvalidFilter) {
		return http.StatusBadRequest, models.ErrCodeInvalidFilter
	}
	switch recommend.KindOf(err) {
	case recommend.KindNotFound:
		return http.StatusNotFound, models.ErrCodeItemNotFound
	case recommend.KindInvalid:
		return http.StatusBadRequest, models.ErrCodeValidation
	default:
		return http.StatusInternalServerError, models.ErrCodeInternal
	}
}

func toRecommendations(recs []recommend.Recommendation) []models.Recommendation {
	out := make([]models.Recommendation, len(recs))
	for i, rec := range recs {
		out[i] = models.Recommendation{
			Name:   rec.Name,
			Genre:  rec.Genre,
			Rating: rec.Rating,
			Score:  rec.Score,
		}
	}
	return out
}

func toLegacyItems(recs []recommend.Recommendation) []models.LegacyItem {
	out := make([]models.LegacyItem, len(recs))
	for i, rec := range recs {
		out[i] = models.LegacyItem{
			Name:   rec.Name,
			Genre:  rec.Genre,
			Rating: rec.Rating,
		}
	}
	return out
}
