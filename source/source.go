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

// Package source declares the predicate-tree source collaborator and
// provides concrete (but non-core) implementations of the index-metadata
// side, whose interface is indexplan.IndexSource: an in-memory fixture, an
// HTTP-backed source, and a TTL-caching decorator. None of this package is
// imported by indexplan's core packages (predicate, sortspec, esr) or by
// coverage.go — only by the cmd/indexplan embedder.
package source

import (
	"context"

	"indexplan.dev/go"
	"indexplan.dev/go/errors"
	"indexplan.dev/go/predicate"
)

// The index-metadata source collaborator itself — lookup(namespace) ->
// []Index | NotFoundError | BackendError — is declared as
// indexplan.IndexSource at the module root, not here: the driver
// (coverage.go) needs to name it, and this package needs to import
// indexplan for the Namespace/Index types, so the interface has to live on
// the side that doesn't import the other. The IndexSource implementations in
// this package (Func, FixtureSource, HTTPSource, CachedSource) satisfy it
// structurally.
//
// PredicateSource is the predicate-tree source collaborator: it produces a
// predicate.Tree from whatever surface syntax an application uses — a
// fluent builder, a JSON-like document, a SQL fragment. The core never
// parses documents or strings into predicates itself; this interface exists
// purely to name the boundary. indexplan.AnalyzeCoverage always takes an
// already-built predicate.Tree directly, so no core package depends on this
// interface — it is here for embedders to implement and wire in front of
// the driver, the way source/fromjson.go does.
type PredicateSource interface {
	Build(ctx context.Context) (predicate.Tree, error)
}

// Func adapts a plain function to IndexSource.
type Func func(ctx context.Context, ns indexplan.Namespace) ([]indexplan.Index, error)

func (f Func) Lookup(ctx context.Context, ns indexplan.Namespace) ([]indexplan.Index, error) {
	return f(ctx, ns)
}

// notFound is a convenience constructor for the NotFound error kind an
// IndexSource should return when a namespace has no index metadata at all.
// The core treats this identically to an empty index list.
func notFound(ns indexplan.Namespace) error {
	return errors.Newf(errors.NotFound, "namespace %s: no such collection", ns)
}
