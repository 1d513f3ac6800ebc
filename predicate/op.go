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

// FieldOp is the operator form applied to one field in a FieldPredicate
// leaf. Implemented by the equality-class, range-class, and
// unsupported-or-complex forms below, plus ElemMatch and NotOp.
type FieldOp interface {
	isFieldOp()
}

// Equality-class operators.

type Eq struct{ Value Value }

func (Eq) isFieldOp() {}

type In struct{ Values []Value }

func (In) isFieldOp() {}

// Ne is classified as equality-class for prefix purposes: an optimistic
// choice, since value-set semantics for a negated equality are not modelled
// here — the field merely needs to be reachable via an index prefix.
type Ne struct{ Value Value }

func (Ne) isFieldOp() {}

// Range-class operators.

type Gt struct{ Value Value }

func (Gt) isFieldOp() {}

type Gte struct{ Value Value }

func (Gte) isFieldOp() {}

type Lt struct{ Value Value }

func (Lt) isFieldOp() {}

type Lte struct{ Value Value }

func (Lte) isFieldOp() {}

// ElemMatch applies Sub, a predicate over the elements of an array field, to
// the base field it is attached to. Every field the subtree produces is
// renamed with the base field name as a "." prefix and promoted into the
// outer ConjunctAnalysis.
type ElemMatch struct {
	Sub Tree
}

func (ElemMatch) isFieldOp() {}

// Exists models {field: {$exists: bool}}. Exists(true) is treated as
// equality-class (coverable by a sparse index prefix); Exists(false) is
// unsupported.
type Exists struct{ Value bool }

func (Exists) isFieldOp() {}

// NotOp is the inner form of a per-field negation, e.g.
// {field: {$not: {$gt: x}}}. It is classified by recursing into Inner: if
// Inner is equality-class the field is added to equality_fields, if
// range-class to range_fields, otherwise the conjunct is rejected.
type NotOp struct {
	Inner FieldOp
}

func (NotOp) isFieldOp() {}

// Regex, Mod, Where, and Expr are always unsupported-or-complex: any
// conjunct containing one is rejected.

type Regex struct{ Pattern, Options string }

func (Regex) isFieldOp() {}

type Mod struct{ Divisor, Remainder int64 }

func (Mod) isFieldOp() {}

type Where struct{ Expr string }

func (Where) isFieldOp() {}

type Expr struct{ Expr string }

func (Expr) isFieldOp() {}
