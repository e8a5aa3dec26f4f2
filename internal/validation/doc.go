// Animerec - Content-Based Anime Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

// Package validation provides struct validation using go-playground/validator v10.
//
// It wraps a thread-safe singleton validator and translates field errors into
// the API's VALIDATION_ERROR format. Field names in messages are taken from
// the struct's json tags, so clients see the names they sent.
//
// # Quick Start
//
//	type SimilarRequest struct {
//	    Name string `json:"name" validate:"required,notblank,max=512"`
//	    TopN *int   `json:"top_n" validate:"omitempty,min=1"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
//
// # Custom Tags
//
//   - notblank: string must contain a non-whitespace character
//   - celexpr: string must stay under the filter expression length limit
//     and must not contain NUL bytes
package validation
