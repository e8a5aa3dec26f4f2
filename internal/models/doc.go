// Animerec - Content-Based Anime Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

/*
Package models defines the wire types of the HTTP API.

Enveloped endpoints under /api/v1 wrap their payload in APIResponse:

	{
	  "status": "success",
	  "data": [{"name": "Bleach", "genre": "Action, Adventure", "rating": 7.95, "score": 0.94}],
	  "metadata": {"timestamp": "2026-10-16T12:00:00Z", "query_time_ms": 1}
	}

The legacy endpoints /recommend_by_name/ and /recommend/ return a bare JSON
array of LegacyItem and report failures as {"detail": "..."} (LegacyError).

Request types carry validator/v10 tags checked by internal/validation.
TopN is a pointer so an absent field can take the configured default while
an explicit 0 is rejected.
*/
package models
