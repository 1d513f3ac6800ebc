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

package indexplan

import "context"

// IndexSource is the index-metadata source external collaborator:
// lookup(namespace) -> []Index | NotFoundError | BackendError. The core
// treats a NotFound error and an empty index list identically: both make
// AnalyzeCoverage report false for every conjunct.
//
// Implementations are expected to be synchronous from the core's point of
// view: if Lookup performs I/O it blocks the calling goroutine rather than
// returning a future; a caller that wants asynchrony wraps the call in its
// own goroutine. Implementations must be safe for concurrent use, since
// multiple callers may invoke the driver in parallel and the core itself
// holds no process-wide state.
//
// Concrete implementations (an HTTP-backed source, a YAML fixture, a
// TTL-caching decorator) live in package source, which is not imported here
// to keep the core free of I/O concerns; see the comment above
// PredicateSource in source/source.go for why the interface is declared on
// this side of that boundary.
type IndexSource interface {
	Lookup(ctx context.Context, ns Namespace) ([]Index, error)
}
