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

package predicate

import (
	"sort"

	"github.com/mpvl/unique"
)

// ConjunctAnalysis is the output of the Analyzer (§4.1) for one conjunctive
// branch: the set of fields constrained by equality-class operators, the
// set constrained by range operators, and whether the branch contains any
// shape the analyzer cannot guarantee is index-friendly.
//
// EqualityFields and RangeFields may overlap: a field carrying both an
// equality and a range operator in the source predicate appears in both;
// the ESR matcher treats that as satisfied by a single index slot.
type ConjunctAnalysis struct {
	EqualityFields []string
	RangeFields    []string
	Rejected       bool
}

// addEquality/addRange/reject are the mutable builder methods used while
// walking a conjunct; Analyze returns the finished, deduplicated value.
type builder struct {
	eq  []string
	rng []string
	rej bool
}

func (b *builder) addEquality(field string) {
	b.eq = append(b.eq, field)
}

func (b *builder) addRange(field string) {
	b.rng = append(b.rng, field)
}

func (b *builder) reject() {
	b.rej = true
}

func (b *builder) finish() ConjunctAnalysis {
	return ConjunctAnalysis{
		EqualityFields: dedupe(b.eq),
		RangeFields:    dedupe(b.rng),
		Rejected:       b.rej,
	}
}

// dedupe sorts and removes duplicate field names using mpvl/unique's
// sort-then-compact pass, rather than building a map and throwing away
// iteration order (which sets of field names have no meaningful order, but a
// stable sorted one is easier to assert against in tests and diagnostics).
func dedupe(fields []string) []string {
	if len(fields) == 0 {
		return nil
	}
	cp := append([]string(nil), fields...)
	s := sort.StringSlice(cp)
	n := unique.Sort(s)
	return cp[:n]
}

// Analyze walks a predicate tree that must already be free of logical
// operators — i.e. a conjunction of FieldPredicate leaves, the shape the DNF
// Normalizer produces for one branch — and classifies each leaf into
// equality-class fields, range-class fields, or outright rejection.
//
// Analyze never fails: it reports anything it cannot classify via the
// returned ConjunctAnalysis.Rejected flag instead of an error.
func Analyze(t Tree) ConjunctAnalysis {
	b := &builder{}
	analyzeInto(b, "", t)
	return b.finish()
}

// analyzeInto walks t, prefixing every field name it emits with prefix (used
// by ElemMatch to rename sub-document fields to "base.sub").
func analyzeInto(b *builder, prefix string, t Tree) {
	switch n := t.(type) {
	case Empty:
		// matches everything; contributes nothing.
	case FieldPredicate:
		analyzeLeaf(b, prefix+n.Field, n.Op)
	case And:
		for _, c := range n.Children {
			analyzeInto(b, prefix, c)
		}
	case Or, Nor, Not:
		// A bare logical node reaching the Analyzer means the caller
		// did not run the DNF Normalizer first. Conservatively reject
		// rather than guess at a covering strategy.
		b.reject()
	default:
		b.reject()
	}
}

func analyzeLeaf(b *builder, field string, op FieldOp) {
	switch o := op.(type) {
	case Eq, In, Ne:
		b.addEquality(field)
	case Gt, Gte, Lt, Lte:
		b.addRange(field)
	case Exists:
		if o.Value {
			b.addEquality(field)
		} else {
			b.reject()
		}
	case NotOp:
		classifyNotOp(b, field, o.Inner)
	case ElemMatch:
		sub := Analyze(o.Sub)
		for _, f := range sub.EqualityFields {
			b.addEquality(field + "." + f)
		}
		for _, f := range sub.RangeFields {
			b.addRange(field + "." + f)
		}
		if sub.Rejected {
			b.reject()
		}
	case Regex, Mod, Where, Expr:
		b.reject()
	default:
		b.reject()
	}
}

// classifyNotOp classifies a negated field operator by its inner operator's
// class; anything that isn't cleanly equality- or range-class (including a
// NotOp wrapping another NotOp, or an ElemMatch) is rejected.
func classifyNotOp(b *builder, field string, inner FieldOp) {
	switch inner.(type) {
	case Eq, In, Ne:
		b.addEquality(field)
	case Gt, Gte, Lt, Lte:
		b.addRange(field)
	default:
		b.reject()
	}
}
