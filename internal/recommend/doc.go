// Animerec - Content-Based Anime Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

// Package recommend ranks catalog items against a precomputed similarity
// index.
//
// # Modes
//
//   - Similar: items most similar to a named catalog item (Recommend)
//   - Genre: items most similar to free genre text (RecommendByGenre)
//
// # Ranking
//
// Every candidate is paired with its cosine score and stable-sorted by score
// descending, so equal scores keep catalog order. The queried item, and any
// other row sharing its exact name, never appears in its own results.
//
// # Filters
//
// Queries may carry a CEL expression evaluated against each candidate:
//
//	f, err := recommend.CompileFilter("item.rating >= 8.0 && item.score > 0.2")
//	recs, err := rec.Recommend(ctx, recommend.Query{Name: "Naruto", TopN: 5, Filter: f})
//
// Filters run after self-exclusion and before truncation.
//
// # Thread Safety
//
// A Recommender only reads its index and is safe for concurrent use without
// locking.
package recommend
