// Copyright 2024 The indexplan Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package errors defines the error kinds that indexplan.AnalyzeCoverage can
// surface to a caller. An unsupported predicate shape is deliberately not
// one of them: it never escapes as a Go error, it is absorbed into a
// ConjunctAnalysis's Rejected flag, which makes coverage analysis report
// false rather than fail.
package errors

import (
	"errors"
	"fmt"
)

// Kind identifies an error kind: InvalidNamespace and BackendError, which
// the core surfaces to callers, or NotFound, which the core absorbs.
type Kind string

const (
	// InvalidNamespace means the namespace string did not parse as
	// "db.collection".
	InvalidNamespace Kind = "invalid_namespace"

	// BackendError means the index-metadata source failed. The core
	// never retries; when the source built the error with Wrap, the
	// underlying cause is available via errors.Unwrap.
	BackendError Kind = "backend_error"

	// NotFound means the index-metadata source reported that the
	// namespace does not exist. The core treats this identically to an
	// empty index list (coverage = false); it is exposed as a Kind
	// purely so callers constructing an IndexSource have a standard
	// sentinel to return instead of inventing their own.
	NotFound Kind = "not_found"
)

// Error is the concrete error type returned for the three kinds above. It
// wraps an optional underlying cause so errors.Is/errors.As see through to
// it.
type Error struct {
	Kind  Kind
	msg   string
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.cause)
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.cause }

// Is reports whether target is an *Error with the same Kind, so that
// errors.Is(err, errors.New(InvalidNamespace, "")) style sentinel checks by
// kind work without comparing messages.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return t.Kind == e.Kind
	}
	return false
}

// New builds an *Error of the given kind with a fixed message.
func New(kind Kind, msg string) error {
	return &Error{Kind: kind, msg: msg}
}

// Newf builds an *Error of the given kind with a formatted message.
func Newf(kind Kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...)}
}

// Wrap builds a BackendError (or any other kind) that carries an underlying
// cause, so the original error remains reachable via errors.Unwrap/As.
func Wrap(kind Kind, msg string, cause error) error {
	return &Error{Kind: kind, msg: msg, cause: cause}
}

// Is reports whether err is an *Error of the given kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// List collects multiple errors encountered while validating something in
// one pass (mirrors cue/errors.List, scaled down to this package's needs:
// no source positions, since indexplan has no source text to point at).
type List []error

func (l List) Error() string {
	if len(l) == 0 {
		return ""
	}
	if len(l) == 1 {
		return l[0].Error()
	}
	s := fmt.Sprintf("%d errors:", len(l))
	for _, e := range l {
		s += "\n\t" + e.Error()
	}
	return s
}

// Add appends err to the list if it is non-nil, and returns the list.
func (l List) Add(err error) List {
	if err == nil {
		return l
	}
	return append(l, err)
}

// Err returns nil if the list is empty, otherwise the list itself as an
// error.
func (l List) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}
