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

import "indexplan.dev/go/internal/model"

// IndexField is one field of a compound index, or one key of a sort
// specification. The zero value is not valid: Name must be non-empty.
// It is an alias of model.IndexField; see direction.go for why the value
// model lives in an internal leaf package.
type IndexField = model.IndexField

// SortKey is a requested ordering key. It is an alias of IndexField, so the
// two are the same type; the second name only marks the different role: an
// IndexField describes stored metadata, a SortKey describes query input.
type SortKey = model.SortKey

// Index is one compound B-tree index on a collection. Field order is
// significant: it is the index's prefix order.
//
// Sparse and Unique are passthrough metadata. Neither conditions coverage in
// the ESR matcher; they exist so that an IndexSource can hand back a
// complete index definition without the core silently discarding part of
// it.
//
// Index.Validate and Index.Reversed are defined on model.Index and carried
// over unchanged through this alias.
type Index = model.Index
