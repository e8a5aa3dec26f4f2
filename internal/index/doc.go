// Animerec - Content-Based Anime Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

// Package index builds the genre similarity index used for content-based
// recommendations.
//
// # Overview
//
// The index is computed once from the full catalog at startup:
//
//  1. Tokenize each item's genre text (lowercase, word runs of 2+ characters,
//     English stop words removed)
//  2. Build the vocabulary and smoothed inverse document frequencies
//  3. Weight each item's term counts by idf and L2-normalize the result
//  4. Compute cosine similarity for every pair of items
//
// The similarity matrix is dense and symmetric. It is stored as a packed
// upper triangle so M[i][j] and M[j][i] always read the same cell.
//
// # Identity
//
// Row i of the catalog, vector i and matrix row/column i always describe the
// same item. Nothing in this package reorders them.
//
// # Thread Safety
//
// An *Index is immutable after Build returns and is safe for concurrent
// readers without locking.
//
// # Cost
//
// Vectorization is O(n·v) and the pairwise pass is O(n²·v) for n items and
// v vocabulary terms. The pairwise pass is spread over worker goroutines.
// There is no approximate nearest-neighbor structure; the index targets
// small-to-moderate catalogs.
package index
