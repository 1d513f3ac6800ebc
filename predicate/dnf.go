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

// branch is one conjunctive alternative under construction while rewriting a
// Tree into disjunctive normal form. literals holds the FieldPredicate
// leaves collected so far (or, for a NotOp collapse, a FieldPredicate with a
// NotOp operator); rejected is set once the branch has encountered a shape
// the normalizer refuses to expand (a Nor anywhere, or a Not over anything
// but a single field predicate).
type branch struct {
	literals []Tree
	rejected bool
}

// options configures NormalizeDNF. See WithMaxBranches.
type options struct {
	maxBranches int
}

// Option configures NormalizeDNF, following the functional-options idiom
// cue/cuecontext and cue/build use for their own configuration.
type Option func(*options)

// WithMaxBranches bounds the number of conjuncts OR-distribution may
// produce. Exceeding the bound reports a single rejected conjunct instead of
// completing the (possibly exponential) expansion. max <= 0 means unbounded,
// which is also the default.
func WithMaxBranches(max int) Option {
	return func(o *options) { o.maxBranches = max }
}

// NormalizeDNF rewrites an arbitrary predicate tree into disjunctive normal
// form and analyzes every resulting conjunct. The returned slice is never
// empty: an empty input predicate yields a single zero-valued, non-rejected
// ConjunctAnalysis.
//
// NormalizeDNF itself never fails: shapes it refuses to expand (Nor
// anywhere, Not over anything but a single field predicate) are reported via
// ConjunctAnalysis.Rejected on whichever branch contains them, not as an
// error.
func NormalizeDNF(t Tree, opts ...Option) []ConjunctAnalysis {
	var o options
	for _, f := range opts {
		f(&o)
	}

	branches := toBranches(t, &o)
	out := make([]ConjunctAnalysis, len(branches))
	for i, b := range branches {
		a := Analyze(And{Children: b.literals})
		a.Rejected = a.Rejected || b.rejected
		out[i] = a
	}
	return out
}

var overflow = []branch{{rejected: true}}

// toBranches recursively rewrites t into a list of conjunctive branches.
//
// And's children are combined with a running cross product: crossing in a
// literal child multiplies nothing (it has exactly one branch), crossing in
// an Or child multiplies the running set by however many alternatives the
// Or has. This single mechanism implements AND-flattening (a nested And is
// just another child whose own branches get crossed in), OR-distribution
// including the multi-OR cross product of two or more disjunctions, the
// empty-OR-alternative rule (Empty/And{} contributes exactly one all-nil
// branch), the single-alternative-OR collapse, and the recursive descent
// rule — all without a separate rewrite pass, because toBranches always
// fully recurses into every child before crossing it in.
func toBranches(t Tree, o *options) []branch {
	switch n := t.(type) {
	case Empty:
		return []branch{{}}

	case FieldPredicate:
		return []branch{{literals: []Tree{n}}}

	case Not:
		if fp, ok := n.Child.(FieldPredicate); ok {
			collapsed, ok := collapseNot(fp)
			if !ok {
				return []branch{{rejected: true}}
			}
			return []branch{{literals: []Tree{collapsed}}}
		}
		// Not over anything else (And, Or, Nor, Empty, nested Not) is
		// rejected.
		return []branch{{rejected: true}}

	case Nor:
		// No De Morgan expansion is attempted: a deliberate
		// conservative design choice.
		return []branch{{rejected: true}}

	case And:
		acc := []branch{{}}
		for _, c := range n.Children {
			acc = crossProduct(acc, toBranches(c, o), o)
			if isShortCircuitReject(acc) {
				return acc
			}
		}
		return acc

	case Or:
		var acc []branch
		for _, c := range n.Children {
			acc = append(acc, toBranches(c, o)...)
			if o.maxBranches > 0 && len(acc) > o.maxBranches {
				return overflow
			}
		}
		if len(acc) == 0 {
			// An Or with no children matches nothing; there is no
			// sensible conjunct to report, so conservatively reject.
			return []branch{{rejected: true}}
		}
		return acc

	default:
		return []branch{{rejected: true}}
	}
}

// collapseNot turns Not{FieldPredicate{f, op}} into
// FieldPredicate{f, NotOp{op}}, unless op is itself a NotOp or an ElemMatch —
// neither has a clean equality/range classification when negated, so those
// are rejected instead of double-wrapped.
func collapseNot(fp FieldPredicate) (FieldPredicate, bool) {
	switch fp.Op.(type) {
	case NotOp, ElemMatch:
		return FieldPredicate{}, false
	default:
		return FieldPredicate{Field: fp.Field, Op: NotOp{Inner: fp.Op}}, true
	}
}

// crossProduct combines every branch in a with every branch in b, OR-ing
// their rejected flags and concatenating their literals. It enforces
// o.maxBranches as soon as the product would exceed it, short-circuiting the
// rest of the expansion.
func crossProduct(a, b []branch, o *options) []branch {
	if o.maxBranches > 0 && len(a)*len(b) > o.maxBranches {
		return overflow
	}
	out := make([]branch, 0, len(a)*len(b))
	for _, x := range a {
		for _, y := range b {
			lits := make([]Tree, 0, len(x.literals)+len(y.literals))
			lits = append(lits, x.literals...)
			lits = append(lits, y.literals...)
			out = append(out, branch{literals: lits, rejected: x.rejected || y.rejected})
		}
	}
	return out
}

// isShortCircuitReject reports whether acc is already a lone, literal-free
// rejected branch, in which case further AND children cannot change the
// outcome (the rejected flag only ever ORs true) and expansion can stop
// early.
func isShortCircuitReject(acc []branch) bool {
	return len(acc) == 1 && len(acc[0].literals) == 0 && acc[0].rejected
}
