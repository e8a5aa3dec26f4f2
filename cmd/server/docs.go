// Animerec - Content-Based Anime Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

// Package main provides the Animerec HTTP server
//
// @title Animerec API
// @version 1.0
// @description Content-based anime recommendations. Items are ranked by cosine similarity of tf-idf vectors built from their genre lists.
// @description
// @description ## Endpoints
// @description
// @description - `/api/v1/recommendations/*`: enveloped responses with scores and optional CEL filters
// @description - `/recommend_by_name/`, `/recommend/`: the v0 bare-array endpoints
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address. Health probes are not limited.
// @description
// @description ## Error Responses
// @description
// @description Versioned endpoints answer errors with:
// @description ```json
// @description {
// @description   "status": "error",
// @description   "error": {"code": "ITEM_NOT_FOUND", "message": "item not found: \"Dragon Ball Z\""},
// @description   "metadata": {"timestamp": "2026-10-16T12:34:56Z", "request_id": "..."}
// @description }
// @description ```
// @description Legacy endpoints answer `{"detail": "..."}`.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/animerec/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:8000
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Recommendations
// @tag.description Similar-item and genre recommendations
//
// @tag.name Catalog
// @tag.description Catalog items and index statistics
//
// @tag.name Core
// @tag.description Health probes and performance statistics
//
// @tag.name Legacy
// @tag.description Endpoints kept wire-compatible with the v0 API
package main
