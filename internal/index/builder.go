// Animerec - Content-Based Anime Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package index

import (
	"context"
	"errors"
	"fmt"
	"math"
	"runtime"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"
)

// ErrEmptyCatalog is returned when Build is called without items.
var ErrEmptyCatalog = errors.New("index: catalog is empty")

// ErrCatalogTooLarge is returned when row ids would not fit the posting lists.
var ErrCatalogTooLarge = errors.New("index: catalog exceeds 2^32 items")

// Options configures Build.
type Options struct {
	// StopWords are excluded from the vocabulary.
	// Default: EnglishStopWords
	StopWords []string

	// MinTokenLength is the shortest token kept, in runes.
	// Default: 2
	MinTokenLength int

	// Workers bounds the goroutines computing similarity rows.
	// Default: runtime.GOMAXPROCS(0)
	Workers int
}

// DefaultOptions returns the default build options.
func DefaultOptions() Options {
	return Options{
		StopWords:      EnglishStopWords,
		MinTokenLength: DefaultMinTokenLength,
		Workers:        runtime.GOMAXPROCS(0),
	}
}

// Build vectorizes the genre text of every item and computes the full
// pairwise cosine similarity matrix.
//
// items is copied; the caller may reuse the slice afterwards.
func Build(ctx context.Context, items []Item, opts Options) (*Index, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCatalog
	}
	if uint64(len(items)) > math.MaxUint32 {
		return nil, ErrCatalogTooLarge
	}

	if opts.StopWords == nil {
		opts.StopWords = EnglishStopWords
	}
	if opts.Workers <= 0 {
		opts.Workers = runtime.GOMAXPROCS(0)
	}

	start := time.Now()
	tokenizer := NewTokenizer(opts.StopWords, opts.MinTokenLength)

	owned := make([]Item, len(items))
	copy(owned, items)

	docs := make([][]string, len(owned))
	for i, item := range owned {
		docs[i] = tokenizer.Tokenize(item.Genre)
	}

	vocab := newVocabulary(docs)

	vectors := make([]Vector, len(owned))
	postings := make([]*roaring.Bitmap, vocab.Len())
	for id := range postings {
		postings[id] = roaring.New()
	}

	zero := 0
	for i, doc := range docs {
		vectors[i] = vocab.Vectorize(doc)
		if vectors[i].IsZero() {
			zero++
		}
		for _, id := range vectors[i].Terms {
			postings[id].Add(uint32(i))
		}
	}
	for _, bm := range postings {
		bm.RunOptimize()
	}

	matrix, err := computeMatrix(ctx, vectors, opts.Workers)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]int, len(owned))
	for i, item := range owned {
		// First row wins for duplicate names.
		if _, ok := byName[item.Name]; !ok {
			byName[item.Name] = i
		}
	}

	return &Index{
		items:     owned,
		vocab:     vocab,
		vectors:   vectors,
		matrix:    matrix,
		postings:  postings,
		byName:    byName,
		names:     buildNameTrie(owned),
		tokenizer: tokenizer,
		stats: Stats{
			Items:         len(owned),
			Terms:         vocab.Len(),
			ZeroVectors:   zero,
			DuplicateRows: len(owned) - len(byName),
			BuildDuration: time.Since(start),
			BuiltAt:       time.Now(),
		},
	}, nil
}

// computeMatrix fills the upper triangle one row per task. Rows write
// disjoint cells, so no locking is needed.
func computeMatrix(ctx context.Context, vectors []Vector, workers int) (*Matrix, error) {
	n := len(vectors)
	m := newMatrix(n)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			vi := vectors[i]
			if vi.IsZero() {
				// Zero rows stay 0.0, diagonal included.
				return nil
			}
			m.set(i, i, 1.0)
			for j := i + 1; j < n; j++ {
				// Vectors are unit length, so the dot product is the cosine.
				m.set(i, j, clamp01(Dot(vi, vectors[j])))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("index: compute similarity matrix: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("index: compute similarity matrix: %w", err)
	}
	return m, nil
}
