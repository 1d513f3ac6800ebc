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

package model

import "fmt"

// IndexField is one field of a compound index, or one key of a sort
// specification. The zero value is not valid: Name must be non-empty.
type IndexField struct {
	Name      string
	Direction Direction
}

// SortKey is a requested ordering key. It is an alias of IndexField, so the
// two are the same type; the second name only marks the different role: an
// IndexField describes stored metadata, a SortKey describes query input.
type SortKey = IndexField

// Index is one compound B-tree index on a collection. Field order is
// significant: it is the index's prefix order.
//
// Sparse and Unique are passthrough metadata. Neither conditions coverage in
// the ESR matcher; they exist so that an IndexSource can hand back a
// complete index definition without the core silently discarding part of
// it.
type Index struct {
	Name   string
	Fields []IndexField
	Sparse bool
	Unique bool
}

// Validate reports whether idx is well-formed: it has a field list with at
// least one entry, and every field has a non-empty name.
func (idx Index) Validate() error {
	if len(idx.Fields) == 0 {
		return fmt.Errorf("index %q: must have at least one field", idx.Name)
	}
	for i, f := range idx.Fields {
		if f.Name == "" {
			return fmt.Errorf("index %q: field %d has an empty name", idx.Name, i)
		}
	}
	return nil
}

// Reversed returns idx with every field's direction flipped. By the
// direction-duality property, an index covers a conjunct with no range
// fields in the sort list iff its reversal also covers it.
func (idx Index) Reversed() Index {
	out := Index{Name: idx.Name, Sparse: idx.Sparse, Unique: idx.Unique}
	out.Fields = make([]IndexField, len(idx.Fields))
	for i, f := range idx.Fields {
		out.Fields[i] = IndexField{Name: f.Name, Direction: f.Direction.Reverse()}
	}
	return out
}
