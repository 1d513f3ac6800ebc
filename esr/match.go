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

// Package esr decides whether a single compound index perfectly covers one
// conjunctive predicate plus a multi-field sort, following the
// Equality-Sort-Range discipline: a leading run of equality fields, then an
// aligned sort (forward or fully reversed), and range fields that appear
// anywhere in the index.
//
// The algorithm is a three-step structural walk over the index's field
// list — no state machine, no retries, boolean rejection only.
package esr

import (
	"indexplan.dev/go/internal/model"
	"indexplan.dev/go/predicate"
)

// Match reports whether idx perfectly covers a (conjunct, sort) pair under
// the Equality-Sort-Range discipline. A rejected conjunct can never be
// covered, so Match returns false immediately if a.Rejected is set.
func Match(a predicate.ConjunctAnalysis, sort []model.SortKey, idx model.Index) bool {
	ok, _ := explain(a, sort, idx)
	return ok
}

// Explain behaves like Match but also returns a short, human-readable reason
// for the verdict. The reason string is diagnostic only (used by the CLI's
// -v trace and by indexplan.ExplainCoverage); it has no bearing on the
// boolean contract of Match/AnalyzeCoverage.
func Explain(a predicate.ConjunctAnalysis, sort []model.SortKey, idx model.Index) (bool, string) {
	return explain(a, sort, idx)
}

func explain(a predicate.ConjunctAnalysis, sort []model.SortKey, idx model.Index) (bool, string) {
	if a.Rejected {
		return false, "conjunct is rejected and can never be covered"
	}

	fields := idx.Fields
	equality := toSet(a.EqualityFields)
	rng := toSet(a.RangeFields)

	// Step E — equality prefix.
	k := 0
	for k < len(fields) && equality[fields[k].Name] {
		k++
	}
	prefix := make(map[string]bool, k)
	for i := 0; i < k; i++ {
		prefix[fields[i].Name] = true
	}
	for f := range equality {
		if !prefix[f] {
			return false, "equality field " + f + " is not reachable via the index's leading prefix"
		}
	}

	// Step S — sort alignment.
	cursor := k
	if len(sort) > 0 {
		ok, reason := matchSort(sort, rng, fields, k)
		if !ok {
			return false, reason
		}
		cursor = k + len(sort)
	}
	_ = cursor // the cursor has no further role once Step R inspects the whole index.

	// Step R — range coverage.
	present := make(map[string]bool, len(fields))
	for _, f := range fields {
		present[f.Name] = true
	}
	for f := range rng {
		if !present[f] {
			return false, "range field " + f + " does not appear anywhere in the index"
		}
	}

	return true, "covered"
}

// matchSort implements Step S. k is the cursor position after the equality
// prefix; fields is the full index field list.
func matchSort(sort []model.SortKey, rng map[string]bool, fields []model.IndexField, k int) (bool, string) {
	hasRangeSortField := false
	for _, s := range sort {
		if rng[s.Name] {
			hasRangeSortField = true
			break
		}
	}

	if len(fields)-k < len(sort) {
		return false, "index does not have enough trailing fields to satisfy the sort"
	}

	forwardOK, reverseOK := true, true
	for j, s := range sort {
		f := fields[k+j]
		if f.Name != s.Name {
			return false, "sort field " + s.Name + " does not align with the index at the expected position"
		}
		if f.Direction != s.Direction {
			forwardOK = false
		}
		if f.Direction != s.Direction.Reverse() {
			reverseOK = false
		}
	}

	// No reverse traversal is permitted when any sort field is also a
	// range field: once a range scan narrows that field's position in the
	// index, flipping the whole-index traversal direction no longer
	// preserves the sort order within the range.
	if hasRangeSortField {
		reverseOK = false
	}

	if !forwardOK && !reverseOK {
		return false, "sort directions match neither the index's forward nor reverse traversal order"
	}
	return true, "sort aligns"
}

func toSet(fields []string) map[string]bool {
	if len(fields) == 0 {
		return nil
	}
	s := make(map[string]bool, len(fields))
	for _, f := range fields {
		s[f] = true
	}
	return s
}
