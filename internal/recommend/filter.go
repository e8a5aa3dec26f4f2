// Animerec - Content-Based Anime Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package recommend

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/tomtom215/animerec/internal/index"
)

// filterCostLimit bounds the work a single filter evaluation may do.
const filterCostLimit = 10_000

var (
	filterEnv     *cel.Env
	filterEnvErr  error
	filterEnvOnce sync.Once
)

// ErrInvalidFilter wraps every CompileFilter failure and every evaluation
// failure of a compiled filter.
var ErrInvalidFilter = errors.New("invalid filter expression")

// Fields of item, declared as qualified identifiers so the checker knows
// each type and rejects anything else under item.
const (
	fieldName   = "item.name"
	fieldGenre  = "item.genre"
	fieldRating = "item.rating"
	fieldScore  = "item.score"
)

func getFilterEnv() (*cel.Env, error) {
	filterEnvOnce.Do(func() {
		filterEnv, filterEnvErr = cel.NewEnv(
			cel.Variable(fieldName, cel.StringType),
			cel.Variable(fieldGenre, cel.StringType),
			cel.Variable(fieldRating, cel.DoubleType),
			cel.Variable(fieldScore, cel.DoubleType),
			cel.CrossTypeNumericComparisons(true),
		)
	})
	return filterEnv, filterEnvErr
}

// Filter is a compiled CEL predicate over a candidate.
//
// The expression sees a single variable, item, with the fields:
//
//	item.name    string
//	item.genre   string
//	item.rating  double
//	item.score   double  (similarity to the query)
//
// Examples:
//
//	item.rating >= 8.0
//	item.genre.contains("Mecha") && item.score > 0.3
//	!(item.name in ["Naruto", "Bleach"])
//
// A compiled Filter is immutable and safe for concurrent use.
type Filter struct {
	expr string
	prg  cel.Program
}

// CompileFilter parses and type-checks expr. Unknown fields and non-bool
// results fail here. An empty or blank expression returns a nil Filter,
// which accepts every candidate.
func CompileFilter(expr string) (*Filter, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, nil
	}

	env, err := getFilterEnv()
	if err != nil {
		return nil, fmt.Errorf("filter environment: %w", err)
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFilter, issues.Err())
	}

	out := ast.OutputType()
	if !out.IsExactType(cel.BoolType) {
		return nil, fmt.Errorf("%w: expression must return bool, got %s", ErrInvalidFilter, out)
	}

	prg, err := env.Program(ast, cel.CostLimit(filterCostLimit))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFilter, err)
	}

	return &Filter{expr: expr, prg: prg}, nil
}

// Expression returns the source expression.
func (f *Filter) Expression() string {
	if f == nil {
		return ""
	}
	return f.expr
}

// Match evaluates the filter for one candidate. A nil Filter always matches.
// Evaluation failures, such as integer division by zero or an exceeded cost
// limit, wrap ErrInvalidFilter.
func (f *Filter) Match(item index.Item, score float64) (bool, error) {
	if f == nil {
		return true, nil
	}

	out, _, err := f.prg.Eval(map[string]any{
		fieldName:   item.Name,
		fieldGenre:  item.Genre,
		fieldRating: item.Rating,
		fieldScore:  score,
	})
	if err != nil {
		return false, fmt.Errorf("%w: evaluate %q: %v", ErrInvalidFilter, f.expr, err)
	}

	matched, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("%w: %q returned %T, want bool", ErrInvalidFilter, f.expr, out.Value())
	}
	return matched, nil
}
