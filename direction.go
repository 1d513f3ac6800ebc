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

// Package indexplan decides whether a predicate and a sort order can be
// satisfied by walking a single compound B-tree index, with no in-memory
// filter or sort pass afterwards.
//
// The package is a pipeline of pure, immutable-value transformations: a
// [predicate.Tree] and a [SortKey] list go in, a bool comes out. See
// [AnalyzeCoverage].
package indexplan

import "indexplan.dev/go/internal/model"

// Direction is the traversal order of one field within a B-tree index, or
// of one key in a sort specification. It is an alias of model.Direction:
// the value model lives in an internal leaf package so that package esr can
// depend on it without importing this package back (the driver below
// imports esr to run the matcher, so the dependency can only run one way).
type Direction = model.Direction

const (
	Ascending  = model.Ascending
	Descending = model.Descending
)
