// Animerec - Content-Based Anime Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

/*
Package api provides the HTTP REST API layer for Animerec.

Key Components:

  - Router: chi route configuration and middleware stack
  - Handler: request handlers over one shared *recommend.Recommender
  - Response formatting: models.APIResponse envelopes with metadata and ETag
  - Error handling: the only place recommend error kinds become HTTP statuses

Endpoints:

Legacy (bare JSON array, errors as {"detail": "..."}):
  - POST /recommend_by_name/  {anime_name, top_n=5}
  - POST /recommend/          {genre, top_n=5}

Versioned (/api/v1, enveloped):
  - POST /recommendations/similar         {name, top_n, filter}
  - GET  /recommendations/similar/{name}  ?top_n=&filter=
  - POST /recommendations/genre           {genre, top_n, filter}
  - GET  /items/{name}
  - GET  /index/status
  - GET  /stats/performance
  - GET  /health/live, /health/ready

Observability:
  - GET /metrics     Prometheus text format
  - GET /swagger/*   OpenAPI UI

Status mapping:

	recommend.ErrInvalidFilter → 400 INVALID_FILTER
	recommend.KindNotFound     → 404 ITEM_NOT_FOUND
	recommend.KindInvalid      → 400 VALIDATION_ERROR
	recommend.KindInternal     → 500 INTERNAL_ERROR

Legacy endpoints keep the v0 API shape: 404 "Anime not found!",
422 for malformed bodies and 500 with the underlying message.

Handlers hold no mutable state besides the readiness flag. The index is
immutable, so requests run concurrently without locks.
*/
package api
