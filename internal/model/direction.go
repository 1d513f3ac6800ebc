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

// Package model declares the value types shared by the root driver package
// and package esr: Direction, IndexField, Index, SortKey, and Namespace.
//
// These types live in their own leaf package, imported by both indexplan
// (the driver) and indexplan/esr (the matcher), rather than in the
// indexplan package itself: the driver imports esr to run the matcher, so
// esr cannot import the driver's package back without creating an import
// cycle. The root package re-exports every type here as an alias so the
// public API is unaffected; see direction.go, index.go, and namespace.go at
// the module root.
package model

// Direction is the traversal order of one field within a B-tree index, or
// of one key in a sort specification.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

func (d Direction) String() string {
	if d == Ascending {
		return "asc"
	}
	return "desc"
}
