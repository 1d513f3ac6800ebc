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
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// ValueKind identifies the concrete representation held by a Value.
type ValueKind int

const (
	KindNull ValueKind = iota
	KindBool
	KindString
	KindNumber
)

// Value is an operand of a field operator (the right-hand side of
// {field: {$gt: value}} and similar). Numbers are held as arbitrary-precision
// decimals rather than float64 so that range/equality comparisons in the
// predicate tree never suffer binary floating-point round-trip loss — the
// same reason CUE represents its own numeric literals with
// cockroachdb/apd/v3 rather than float64.
//
// The ESR matcher never inspects a Value: coverage is decided purely from
// field names and operator classes. Value exists so that a predicate-tree
// source can hand the core a faithful, fully-typed operand without the core
// needing to interpret it.
type Value struct {
	kind ValueKind
	b    bool
	s    string
	n    *apd.Decimal
}

func Null() Value               { return Value{kind: KindNull} }
func Bool(b bool) Value         { return Value{kind: KindBool, b: b} }
func String(s string) Value     { return Value{kind: KindString, s: s} }
func Number(n *apd.Decimal) Value {
	return Value{kind: KindNumber, n: n}
}

// Int builds a numeric Value from an int64, the common case of writing a
// literal range bound in Go code or a test table.
func Int(i int64) Value {
	return Value{kind: KindNumber, n: apd.New(i, 0)}
}

func (v Value) Kind() ValueKind   { return v.kind }
func (v Value) Bool() bool        { return v.b }
func (v Value) String() string    { return v.s }
func (v Value) Number() *apd.Decimal { return v.n }

func (v Value) GoString() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return fmt.Sprintf("%v", v.b)
	case KindString:
		return fmt.Sprintf("%q", v.s)
	case KindNumber:
		return v.n.String()
	default:
		return "<invalid value>"
	}
}
