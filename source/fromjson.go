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

package source

import (
	"fmt"
	"sort"

	"github.com/cockroachdb/apd/v3"

	"indexplan.dev/go/predicate"
)

// FromJSON converts a raw document literal into a predicate.Tree, so that
// callers are not forced to build predicate.Tree values by hand. It accepts
// a MongoDB-query-shaped document: {field: value} for equality,
// {field: {$op: value, ...}} for explicit operators, and {$and: [...]},
// {$or: [...]}, {$nor: [...]} for logical combination.
//
// FromJSON is not part of the core: building predicate trees from raw
// document literals lives in package source, outside the core's scope.
// Operators it does not recognize are not rejected here — they are
// translated to an unsupported FieldOp (predicate.Where) so that the core's
// own conservative-rejection machinery is what ultimately decides their
// fate.
func FromJSON(doc map[string]interface{}) (predicate.Tree, error) {
	if len(doc) == 0 {
		return predicate.Empty{}, nil
	}

	keys := make([]string, 0, len(doc))
	for k := range doc {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var leaves []predicate.Tree
	for _, key := range keys {
		val := doc[key]
		switch key {
		case "$and", "$or", "$nor":
			children, err := buildChildren(val)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			leaves = append(leaves, logicalNode(key, children))
		default:
			leaf, err := buildFieldPredicate(key, val)
			if err != nil {
				return nil, err
			}
			leaves = append(leaves, leaf)
		}
	}

	if len(leaves) == 1 {
		return leaves[0], nil
	}
	return predicate.And{Children: leaves}, nil
}

func logicalNode(key string, children []predicate.Tree) predicate.Tree {
	switch key {
	case "$and":
		return predicate.And{Children: children}
	case "$or":
		return predicate.Or{Children: children}
	default: // "$nor"
		return predicate.Nor{Children: children}
	}
}

func buildChildren(val interface{}) ([]predicate.Tree, error) {
	list, ok := val.([]interface{})
	if !ok {
		return nil, fmt.Errorf("expected an array of sub-documents, got %T", val)
	}
	children := make([]predicate.Tree, len(list))
	for i, item := range list {
		sub, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("element %d: expected a document, got %T", i, item)
		}
		t, err := FromJSON(sub)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		children[i] = t
	}
	return children, nil
}

func buildFieldPredicate(field string, val interface{}) (predicate.Tree, error) {
	ops, ok := val.(map[string]interface{})
	if !ok {
		// Shorthand {field: value} means equality.
		v, err := toValue(val)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field, err)
		}
		return predicate.FieldPredicate{Field: field, Op: predicate.Eq{Value: v}}, nil
	}

	// A document value that isn't purely operator keys (e.g. a nested
	// sub-document match without $elemMatch) is not a shape this adapter
	// translates; hand it to the core as Where so it is conservatively
	// rejected rather than silently mis-evaluated.
	opKeys := make([]string, 0, len(ops))
	for k := range ops {
		opKeys = append(opKeys, k)
	}
	sort.Strings(opKeys)

	if len(opKeys) == 1 {
		op, err := buildOp(opKeys[0], ops[opKeys[0]])
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field, err)
		}
		return predicate.FieldPredicate{Field: field, Op: op}, nil
	}

	// Multiple operators on the same field, e.g. {$gte: 1, $lt: 10}: the
	// spec's FieldOp is a single operator per leaf, so represent this as
	// an AND of single-operator leaves on the same field name. The
	// Analyzer adds the field name to both equality_fields/range_fields
	// as appropriate, once per leaf, and dedupe collapses the repeats.
	var leaves []predicate.Tree
	for _, k := range opKeys {
		op, err := buildOp(k, ops[k])
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field, err)
		}
		leaves = append(leaves, predicate.FieldPredicate{Field: field, Op: op})
	}
	return predicate.And{Children: leaves}, nil
}

func buildOp(opName string, val interface{}) (predicate.FieldOp, error) {
	switch opName {
	case "$eq":
		v, err := toValue(val)
		return predicate.Eq{Value: v}, err
	case "$ne":
		v, err := toValue(val)
		return predicate.Ne{Value: v}, err
	case "$gt":
		v, err := toValue(val)
		return predicate.Gt{Value: v}, err
	case "$gte":
		v, err := toValue(val)
		return predicate.Gte{Value: v}, err
	case "$lt":
		v, err := toValue(val)
		return predicate.Lt{Value: v}, err
	case "$lte":
		v, err := toValue(val)
		return predicate.Lte{Value: v}, err
	case "$in":
		list, ok := val.([]interface{})
		if !ok {
			return nil, fmt.Errorf("$in expects an array, got %T", val)
		}
		values := make([]predicate.Value, len(list))
		for i, item := range list {
			v, err := toValue(item)
			if err != nil {
				return nil, err
			}
			values[i] = v
		}
		return predicate.In{Values: values}, nil
	case "$exists":
		b, ok := val.(bool)
		if !ok {
			return nil, fmt.Errorf("$exists expects a bool, got %T", val)
		}
		return predicate.Exists{Value: b}, nil
	case "$not":
		inner, ok := val.(map[string]interface{})
		if !ok || len(inner) != 1 {
			return nil, fmt.Errorf("$not expects a single-operator document")
		}
		for k, v := range inner {
			innerOp, err := buildOp(k, v)
			if err != nil {
				return nil, err
			}
			return predicate.NotOp{Inner: innerOp}, nil
		}
		panic("unreachable")
	case "$elemMatch":
		sub, ok := val.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("$elemMatch expects a document, got %T", val)
		}
		tree, err := FromJSON(sub)
		if err != nil {
			return nil, err
		}
		return predicate.ElemMatch{Sub: tree}, nil
	case "$regex":
		pattern, _ := val.(string)
		return predicate.Regex{Pattern: pattern}, nil
	case "$mod":
		pair, ok := val.([]interface{})
		if !ok || len(pair) != 2 {
			return nil, fmt.Errorf("$mod expects a two-element array")
		}
		div, _ := toInt64(pair[0])
		rem, _ := toInt64(pair[1])
		return predicate.Mod{Divisor: div, Remainder: rem}, nil
	case "$where":
		expr, _ := val.(string)
		return predicate.Where{Expr: expr}, nil
	case "$expr":
		return predicate.Expr{Expr: fmt.Sprintf("%v", val)}, nil
	default:
		// Unrecognized operator: hand it to the core as Where so it is
		// conservatively rejected.
		return predicate.Where{Expr: opName}, nil
	}
}

func toValue(v interface{}) (predicate.Value, error) {
	switch t := v.(type) {
	case nil:
		return predicate.Null(), nil
	case bool:
		return predicate.Bool(t), nil
	case string:
		return predicate.String(t), nil
	case float64:
		d := new(apd.Decimal)
		if _, err := d.SetFloat64(t); err != nil {
			return predicate.Value{}, fmt.Errorf("converting %v to decimal: %w", t, err)
		}
		return predicate.Number(d), nil
	case int:
		return predicate.Int(int64(t)), nil
	case int64:
		return predicate.Int(t), nil
	default:
		return predicate.Value{}, fmt.Errorf("unsupported literal type %T", v)
	}
}

func toInt64(v interface{}) (int64, bool) {
	switch t := v.(type) {
	case int64:
		return t, true
	case int:
		return int64(t), true
	case float64:
		return int64(t), true
	default:
		return 0, false
	}
}
