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

package esr

import (
	"testing"

	qt "github.com/go-quicktest/qt"

	"indexplan.dev/go/internal/model"
	"indexplan.dev/go/predicate"
)

func asc(name string) model.IndexField  { return model.IndexField{Name: name, Direction: model.Ascending} }
func desc(name string) model.IndexField { return model.IndexField{Name: name, Direction: model.Descending} }

// Scenario 1: u==1 AND s=="a" AND c>=T, sort [(c,desc)],
// index {u:1,s:1,c:-1} -> true.
func TestMatchScenario1(t *testing.T) {
	idx := model.Index{Fields: []model.IndexField{asc("u"), asc("s"), desc("c")}}
	a := predicate.ConjunctAnalysis{EqualityFields: []string{"u", "s"}, RangeFields: []string{"c"}}
	sort := []model.SortKey{desc("c")}
	qt.Assert(t, qt.IsTrue(Match(a, sort, idx)))
}

// Scenario 2: s=="a", sort [(c,asc)], index {s:1,c:-1} -> true (reverse
// traversal, no range on the sort field).
func TestMatchScenario2ReverseTraversal(t *testing.T) {
	idx := model.Index{Fields: []model.IndexField{asc("s"), desc("c")}}
	a := predicate.ConjunctAnalysis{EqualityFields: []string{"s"}}
	sort := []model.SortKey{asc("c")}
	qt.Assert(t, qt.IsTrue(Match(a, sort, idx)))
}

// Scenario 3: sc>=80, sort [(sc,asc)], index {sc:-1,c:1} -> false (range and
// sort on the same field, direction flipped).
func TestMatchScenario3RangeAndSortSameFieldFlipped(t *testing.T) {
	idx := model.Index{Fields: []model.IndexField{desc("sc"), asc("c")}}
	a := predicate.ConjunctAnalysis{RangeFields: []string{"sc"}}
	sort := []model.SortKey{asc("sc")}
	qt.Assert(t, qt.IsFalse(Match(a, sort, idx)))
}

func TestMatchRangeAndSortSameFieldMatchingDirectionSucceeds(t *testing.T) {
	idx := model.Index{Fields: []model.IndexField{desc("sc"), asc("c")}}
	a := predicate.ConjunctAnalysis{RangeFields: []string{"sc"}}
	sort := []model.SortKey{desc("sc")}
	qt.Assert(t, qt.IsTrue(Match(a, sort, idx)))
}

func TestMatchRejectedConjunctNeverCovered(t *testing.T) {
	idx := model.Index{Fields: []model.IndexField{asc("a")}}
	a := predicate.ConjunctAnalysis{EqualityFields: []string{"a"}, Rejected: true}
	qt.Assert(t, qt.IsFalse(Match(a, nil, idx)))
}

func TestMatchEqualityFieldsAnyOrderInPrefix(t *testing.T) {
	idx := model.Index{Fields: []model.IndexField{asc("b"), asc("a"), asc("c")}}
	a := predicate.ConjunctAnalysis{EqualityFields: []string{"a", "b"}, RangeFields: []string{"c"}}
	qt.Assert(t, qt.IsTrue(Match(a, nil, idx)))
}

func TestMatchEqualityFieldNotInPrefixRejects(t *testing.T) {
	// "z" is an equality field but never appears in the index at all.
	idx := model.Index{Fields: []model.IndexField{asc("a")}}
	a := predicate.ConjunctAnalysis{EqualityFields: []string{"a", "z"}}
	qt.Assert(t, qt.IsFalse(Match(a, nil, idx)))
}

func TestMatchEqualityPrefixMustStartAtZero(t *testing.T) {
	// "b" is an equality field, but the index puts a non-equality field
	// ("x") before it, so the consumed prefix never reaches "b".
	idx := model.Index{Fields: []model.IndexField{asc("x"), asc("b")}}
	a := predicate.ConjunctAnalysis{EqualityFields: []string{"b"}}
	qt.Assert(t, qt.IsFalse(Match(a, nil, idx)))
}

func TestMatchRangeFieldAnywhereInIndex(t *testing.T) {
	idx := model.Index{Fields: []model.IndexField{asc("a"), asc("b"), asc("r")}}
	a := predicate.ConjunctAnalysis{EqualityFields: []string{"a", "b"}, RangeFields: []string{"r"}}
	qt.Assert(t, qt.IsTrue(Match(a, nil, idx)))
}

func TestMatchRangeFieldAbsentRejects(t *testing.T) {
	idx := model.Index{Fields: []model.IndexField{asc("a")}}
	a := predicate.ConjunctAnalysis{EqualityFields: []string{"a"}, RangeFields: []string{"r"}}
	qt.Assert(t, qt.IsFalse(Match(a, nil, idx)))
}

func TestMatchEqualityAndRangeSameFieldOneSlot(t *testing.T) {
	idx := model.Index{Fields: []model.IndexField{asc("x")}}
	a := predicate.ConjunctAnalysis{EqualityFields: []string{"x"}, RangeFields: []string{"x"}}
	qt.Assert(t, qt.IsTrue(Match(a, nil, idx)))
}

func TestMatchUnusedTrailingFieldsPermitted(t *testing.T) {
	idx := model.Index{Fields: []model.IndexField{asc("a"), asc("unused1"), asc("unused2")}}
	a := predicate.ConjunctAnalysis{EqualityFields: []string{"a"}}
	qt.Assert(t, qt.IsTrue(Match(a, nil, idx)))
}

func TestMatchSortDirectionMixingForbidden(t *testing.T) {
	// Index is forward for the first sort key and reverse for the
	// second: neither whole-list mode succeeds.
	idx := model.Index{Fields: []model.IndexField{asc("a"), desc("b")}}
	a := predicate.ConjunctAnalysis{}
	sort := []model.SortKey{asc("a"), asc("b")}
	qt.Assert(t, qt.IsFalse(Match(a, sort, idx)))
}

// Direction duality: reversing every field of a covering index
// preserves coverage when there is no sort list.
func TestDirectionDualityProperty(t *testing.T) {
	idx := model.Index{Fields: []model.IndexField{asc("a"), desc("b")}}
	a := predicate.ConjunctAnalysis{EqualityFields: []string{"a"}, RangeFields: []string{"b"}}
	qt.Assert(t, qt.IsTrue(Match(a, nil, idx)))
	qt.Assert(t, qt.IsTrue(Match(a, nil, idx.Reversed())))
}

// Prefix rule: appending trailing fields to a covering index
// must not break coverage.
func TestPrefixRuleProperty(t *testing.T) {
	short := model.Index{Fields: []model.IndexField{asc("a"), desc("c")}}
	long := model.Index{Fields: []model.IndexField{asc("a"), desc("c"), asc("extra")}}
	a := predicate.ConjunctAnalysis{EqualityFields: []string{"a"}}
	sort := []model.SortKey{desc("c")}
	qt.Assert(t, qt.IsTrue(Match(a, sort, short)))
	qt.Assert(t, qt.IsTrue(Match(a, sort, long)))
}

func TestExplainReturnsReason(t *testing.T) {
	idx := model.Index{Fields: []model.IndexField{asc("a")}}
	ok, reason := Explain(predicate.ConjunctAnalysis{Rejected: true}, nil, idx)
	qt.Assert(t, qt.IsFalse(ok))
	qt.Assert(t, qt.Not(qt.Equals(reason, "")))
}
