// Animerec - Content-Based Anime Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package recommend

import (
	"errors"
	"fmt"
)

// Kind classifies recommendation failures.
type Kind int

const (
	// KindInternal is an unexpected fault while ranking or projecting.
	KindInternal Kind = iota

	// KindNotFound means the queried name is not in the catalog.
	KindNotFound

	// KindInvalid means the query itself is malformed.
	KindInvalid
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindInvalid:
		return "invalid"
	default:
		return "internal"
	}
}

// Sentinel errors matched by *Error through errors.Is.
var (
	ErrNotFound     = errors.New("item not found")
	ErrInternal     = errors.New("internal recommendation error")
	ErrInvalidQuery = errors.New("invalid recommendation query")
)

// Error is returned by every Recommender operation that fails.
type Error struct {
	Kind Kind

	// Name is the queried item name or genre text.
	Name string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements error.
func (e *Error) Error() string {
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("item not found: %q", e.Name)
	case KindInvalid:
		if e.Err != nil {
			return fmt.Sprintf("invalid query: %v", e.Err)
		}
		return "invalid query"
	default:
		if e.Err != nil {
			return e.Err.Error()
		}
		return ErrInternal.Error()
	}
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel for the error's kind.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Kind == KindNotFound
	case ErrInternal:
		return e.Kind == KindInternal
	case ErrInvalidQuery:
		return e.Kind == KindInvalid
	}
	return false
}

// KindOf returns the kind of err, or KindInternal for foreign errors.
func KindOf(err error) Kind {
	var re *Error
	if errors.As(err, &re) {
		return re.Kind
	}
	return KindInternal
}

func notFound(name string) error {
	return &Error{Kind: KindNotFound, Name: name}
}

func invalid(name string, format string, args ...any) error {
	return &Error{Kind: KindInvalid, Name: name, Err: fmt.Errorf(format, args...)}
}

func internal(name string, err error) error {
	return &Error{Kind: KindInternal, Name: name, Err: err}
}
