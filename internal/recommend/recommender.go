// Animerec - Content-Based Anime Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/animerec/internal/index"
	"github.com/tomtom215/animerec/internal/logging"
	"github.com/tomtom215/animerec/internal/metrics"
)

// ErrNilIndex is returned by New when no index is supplied.
var ErrNilIndex = errors.New("recommend: index is nil")

// Recommender answers recommendation queries against one immutable index.
type Recommender struct {
	idx    *index.Index
	logger zerolog.Logger

	requests atomic.Int64
	notFound atomic.Int64
	failures atomic.Int64
}

// scored pairs a catalog row with its similarity to the query.
type scored struct {
	row   int
	score float64
}

// New creates a recommender over idx.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func New(idx *index.Index, logger zerolog.Logger) (*Recommender, error) {
	if idx == nil {
		return nil, ErrNilIndex
	}
	return &Recommender{
		idx:    idx,
		logger: logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Index returns the underlying similarity index.
func (r *Recommender) Index() *index.Index {
	return r.idx
}

// Stats returns a snapshot of the request counters.
func (r *Recommender) Stats() Stats {
	return Stats{
		Requests: r.requests.Load(),
		NotFound: r.notFound.Load(),
		Errors:   r.failures.Load(),
	}
}

// Recommend returns up to q.TopN items most similar to the item named
// q.Name. Rows sharing that exact name are never returned.
//
// Errors are always *Error: KindNotFound when the name is unknown,
// KindInvalid for a TopN below 1 or a filter that fails to evaluate, and
// KindInternal for anything else.
//
//nolint:gocritic // hugeParam: q passed by value for immutability
func (r *Recommender) Recommend(ctx context.Context, q Query) (recs []Recommendation, err error) {
	start := time.Now()
	r.requests.Add(1)
	logger := r.requestLogger(ctx, ModeSimilar)

	defer func() { r.observe(logger, ModeSimilar, q.Name, len(recs), start, err) }()
	defer recoverInto(q.Name, &recs, &err)

	if q.TopN < 1 {
		return nil, invalid(q.Name, "top_n must be at least 1, got %d", q.TopN)
	}

	row, ok := r.idx.Lookup(q.Name)
	if !ok {
		return nil, notFound(q.Name)
	}

	if err := ctx.Err(); err != nil {
		return nil, internal(q.Name, err)
	}

	sims := r.idx.Row(row)
	pairs := make([]scored, len(sims))
	for j, s := range sims {
		pairs[j] = scored{row: j, score: s}
	}

	return r.rank(ctx, q.Name, pairs, q.TopN, q.Filter, func(j int) bool {
		return r.idx.Item(j).Name == q.Name
	})
}

// RecommendByGenre returns up to q.TopN items most similar to free genre
// text. Terms unknown to the catalog are ignored; text with no known terms
// yields an empty result.
//
//nolint:gocritic // hugeParam: q passed by value for immutability
func (r *Recommender) RecommendByGenre(ctx context.Context, q GenreQuery) (recs []Recommendation, err error) {
	start := time.Now()
	r.requests.Add(1)
	logger := r.requestLogger(ctx, ModeGenre)

	defer func() { r.observe(logger, ModeGenre, q.Genre, len(recs), start, err) }()
	defer recoverInto(q.Genre, &recs, &err)

	if strings.TrimSpace(q.Genre) == "" {
		return nil, invalid(q.Genre, "genre must not be empty")
	}
	if q.TopN < 1 {
		return nil, invalid(q.Genre, "top_n must be at least 1, got %d", q.TopN)
	}

	vec := r.idx.QueryVector(q.Genre)
	rows := r.idx.Candidates(vec)
	if len(rows) == 0 {
		return []Recommendation{}, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, internal(q.Genre, err)
	}

	pairs := make([]scored, len(rows))
	for k, j := range rows {
		pairs[k] = scored{row: j, score: index.Cosine(vec, r.idx.Vector(j))}
	}

	return r.rank(ctx, q.Genre, pairs, q.TopN, q.Filter, nil)
}

// rank stable-sorts pairs by score descending and projects the first topN
// rows that survive exclusion and filtering. pairs must be in row order.
func (r *Recommender) rank(ctx context.Context, name string, pairs []scored, topN int, filter *Filter, exclude func(row int) bool) ([]Recommendation, error) {
	sort.SliceStable(pairs, func(a, b int) bool {
		return pairs[a].score > pairs[b].score
	})

	if err := ctx.Err(); err != nil {
		return nil, internal(name, err)
	}

	limit := topN
	if limit > len(pairs) {
		limit = len(pairs)
	}
	recs := make([]Recommendation, 0, limit)

	for _, p := range pairs {
		if len(recs) == topN {
			break
		}
		if exclude != nil && exclude(p.row) {
			continue
		}

		item := r.idx.Item(p.row)
		ok, err := filter.Match(item, p.score)
		if errors.Is(err, ErrInvalidFilter) {
			return nil, &Error{Kind: KindInvalid, Name: name, Err: err}
		}
		if err != nil {
			return nil, internal(name, err)
		}
		if !ok {
			continue
		}

		recs = append(recs, Recommendation{
			Name:   item.Name,
			Genre:  item.Genre,
			Rating: item.Rating,
			Score:  p.score,
			row:    p.row,
		})
	}

	return recs, nil
}

func (r *Recommender) requestLogger(ctx context.Context, mode Mode) zerolog.Logger {
	lc := r.logger.With().Str("mode", mode.String())
	if id := logging.RequestIDFromContext(ctx); id != "" {
		lc = lc.Str("request_id", id)
	}
	return lc.Logger()
}

// recoverInto converts a panic into a KindInternal error. No partial result
// escapes. It must be deferred directly.
func recoverInto(name string, recs *[]Recommendation, err *error) {
	if p := recover(); p != nil {
		*recs = nil
		*err = internal(name, fmt.Errorf("panic: %v", p))
	}
}

//nolint:gocritic // logger passed by value is acceptable for zerolog
func (r *Recommender) observe(logger zerolog.Logger, mode Mode, name string, n int, start time.Time, err error) {
	elapsed := time.Since(start)
	metrics.RecordRecommendation(mode.String(), outcome(err), elapsed, n)

	switch {
	case err == nil:
		logger.Debug().
			Str("query", name).
			Int("returned", n).
			Dur("latency", elapsed).
			Msg("recommendation complete")
	case errors.Is(err, ErrNotFound):
		r.notFound.Add(1)
		logger.Debug().Str("query", name).Msg("item not found")
	case errors.Is(err, ErrInvalidQuery):
		logger.Debug().Err(err).Str("query", name).Msg("invalid recommendation query")
	default:
		r.failures.Add(1)
		logger.Error().Err(err).Str("query", name).Msg("recommendation failed")
	}
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, ErrNotFound):
		return metrics.OutcomeNotFound
	case errors.Is(err, ErrInvalidQuery):
		return metrics.OutcomeInvalid
	default:
		return metrics.OutcomeInternal
	}
}
