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

import (
	"context"

	"indexplan.dev/go/errors"
	"indexplan.dev/go/esr"
	"indexplan.dev/go/predicate"
)

// BranchResult is ExplainCoverage's per-DNF-branch diagnostic. It carries no
// weight in the boolean contract of AnalyzeCoverage, which is implemented
// as ExplainCoverage's boolean projection.
type BranchResult struct {
	Covered      bool
	MatchedIndex string // empty when Covered is false
	Reason       string
}

// AnalyzeCoverage is the driver's entry point: given an already-built
// predicate tree, an already-parsed sort specification, and a namespace, it
// decides whether every DNF branch of tree can be answered by walking a
// single compound index in src's list, with no in-memory filter or sort
// pass.
//
// AnalyzeCoverage never retries and never guesses: an InvalidNamespace or
// BackendError is returned as-is; anything the predicate analyzer or DNF
// normalizer could not prove index-friendly is absorbed into a false result
// rather than surfaced as an error.
func AnalyzeCoverage(ctx context.Context, tree predicate.Tree, sort []SortKey, namespace string, src IndexSource, opts ...predicate.Option) (bool, error) {
	covered, _, err := ExplainCoverage(ctx, tree, sort, namespace, src, opts...)
	return covered, err
}

// ExplainCoverage behaves like AnalyzeCoverage but also returns one
// BranchResult per DNF branch, carrying the matched index name and a
// human-readable reason for each branch's outcome. The returned bool is the
// same value AnalyzeCoverage would return for identical inputs.
func ExplainCoverage(ctx context.Context, tree predicate.Tree, sort []SortKey, namespace string, src IndexSource, opts ...predicate.Option) (bool, []BranchResult, error) {
	ns, err := ParseNamespace(namespace)
	if err != nil {
		return false, nil, err
	}

	branches := predicate.NormalizeDNF(tree, opts...)

	indexes, err := src.Lookup(ctx, ns)
	if err != nil {
		if errors.Is(err, errors.NotFound) {
			indexes = nil
		} else {
			return false, nil, err
		}
	}

	results := make([]BranchResult, len(branches))
	allCovered := true
	for i, branch := range branches {
		results[i] = matchBranch(branch, sort, indexes)
		if !results[i].Covered {
			allCovered = false
		}
	}
	// len(indexes) == 0 necessarily makes every branch uncovered already
	// (esr.Match has nothing to range over), so there is no separate
	// "collection has no indexes at all" short circuit to apply here
	// beyond what the per-branch loop above already produces.
	return allCovered, results, nil
}

func matchBranch(branch predicate.ConjunctAnalysis, sort []SortKey, indexes []Index) BranchResult {
	if branch.Rejected {
		return BranchResult{Covered: false, Reason: "conjunct is rejected and can never be covered"}
	}
	if len(indexes) == 0 {
		return BranchResult{Covered: false, Reason: "collection has no indexes"}
	}

	var lastReason string
	for _, idx := range indexes {
		if ok, reason := esr.Explain(branch, sort, idx); ok {
			return BranchResult{Covered: true, MatchedIndex: idx.Name, Reason: reason}
		} else {
			lastReason = reason
		}
	}
	return BranchResult{Covered: false, Reason: "no index covers this conjunct: " + lastReason}
}
