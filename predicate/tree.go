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

// Package predicate declares the tagged-variant tree an external
// predicate-tree source builds and the two components that consume it: the
// Analyzer and the DNF Normalizer.
//
// This package never parses surface syntax (a query-builder API, a JSON-like
// document, a SQL fragment): the caller is expected to hand over an already
// built Tree, the same way cue/ast never accepts raw source text — the
// cue/parser package is the thing that builds ast.Node values from text;
// nothing in cue/ast itself does lexing or parsing.
package predicate

// Tree is a node in a predicate expression. It is implemented by
// FieldPredicate, And, Or, Nor, Not, and Empty — a closed, exhaustive set
// dispatched with a type switch, the same shape cue/ast.Expr uses for CUE's
// expression grammar.
type Tree interface {
	isTree()
}

// FieldPredicate is a leaf: one operator form applied to one field.
type FieldPredicate struct {
	Field string
	Op    FieldOp
}

func (FieldPredicate) isTree() {}

// And is an n-ary conjunction.
type And struct {
	Children []Tree
}

func (And) isTree() {}

// Or is an n-ary disjunction.
type Or struct {
	Children []Tree
}

func (Or) isTree() {}

// Nor is a negated disjunction. The DNF normalizer always rejects (marks the
// enclosing conjunct Rejected) rather than expanding it via De Morgan's
// laws.
type Nor struct {
	Children []Tree
}

func (Nor) isTree() {}

// Not negates a single subtree. Only Not wrapping a single FieldPredicate
// collapses into a NotOp; any other shape is rejected.
type Not struct {
	Child Tree
}

func (Not) isTree() {}

// Empty matches every document.
type Empty struct{}

func (Empty) isTree() {}
