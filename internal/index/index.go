// Animerec - Content-Based Anime Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package index

import (
	"time"

	"github.com/RoaringBitmap/roaring/v2"
)

// Item is one catalog row. Its identity is its row position.
type Item struct {
	Name   string  `json:"name"`
	Genre  string  `json:"genre"`
	Rating float64 `json:"rating"`
}

// Stats summarizes a built index.
type Stats struct {
	Items         int           `json:"items"`
	Terms         int           `json:"terms"`
	ZeroVectors   int           `json:"zero_vectors"`
	DuplicateRows int           `json:"duplicate_rows"`
	BuildDuration time.Duration `json:"build_duration_ns"`
	BuiltAt       time.Time     `json:"built_at"`
}

// Index is the immutable similarity index over a catalog.
type Index struct {
	items     []Item
	vocab     *Vocabulary
	vectors   []Vector
	matrix    *Matrix
	postings  []*roaring.Bitmap
	byName    map[string]int
	names     *nameTrie
	tokenizer *Tokenizer
	stats     Stats
}

// Len returns the number of items.
func (x *Index) Len() int {
	return len(x.items)
}

// Item returns the item at row i.
func (x *Index) Item(i int) Item {
	return x.items[i]
}

// Items returns a copy of all items in row order.
func (x *Index) Items() []Item {
	out := make([]Item, len(x.items))
	copy(out, x.items)
	return out
}

// Vocabulary returns the term vector space.
func (x *Index) Vocabulary() *Vocabulary {
	return x.vocab
}

// Vector returns the tf-idf vector of row i.
func (x *Index) Vector(i int) Vector {
	return x.vectors[i]
}

// Similarity returns M[i][j].
func (x *Index) Similarity(i, j int) float64 {
	return x.matrix.At(i, j)
}

// Row returns a copy of similarity row i.
func (x *Index) Row(i int) []float64 {
	return x.matrix.Row(i, nil)
}

// Lookup returns the row of the first item whose name equals name exactly.
func (x *Index) Lookup(name string) (int, bool) {
	i, ok := x.byName[name]
	return i, ok
}

// Suggest returns up to limit item names starting with prefix, ignoring
// case. Names shared by more rows come first, then names in byte order.
// limit <= 0 means DefaultSuggestLimit; it is capped at MaxSuggestLimit.
func (x *Index) Suggest(prefix string, limit int) []Suggestion {
	return x.names.suggest(prefix, limit)
}

// Stats returns build statistics.
func (x *Index) Stats() Stats {
	return x.stats
}

// QueryVector tokenizes free genre text and projects it into the vocabulary.
// Unknown terms are dropped; the result is zero when nothing matched.
func (x *Index) QueryVector(text string) Vector {
	return x.vocab.Vectorize(x.tokenizer.Tokenize(text))
}

// Candidates returns the rows sharing at least one term with v, in
// ascending row order.
func (x *Index) Candidates(v Vector) []int {
	if len(v.Terms) == 0 {
		return nil
	}

	bitmaps := make([]*roaring.Bitmap, 0, len(v.Terms))
	for _, id := range v.Terms {
		bitmaps = append(bitmaps, x.postings[id])
	}
	union := roaring.FastOr(bitmaps...)

	rows := make([]int, 0, union.GetCardinality())
	it := union.Iterator()
	for it.HasNext() {
		rows = append(rows, int(it.Next()))
	}
	return rows
}

// Postings returns a copy of the rows containing term, or nil when the term
// is not in the vocabulary.
func (x *Index) Postings(term string) []int {
	id, ok := x.vocab.ID(term)
	if !ok {
		return nil
	}
	arr := x.postings[id].ToArray()
	rows := make([]int, len(arr))
	for k, r := range arr {
		rows[k] = int(r)
	}
	return rows
}
