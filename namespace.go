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

import "indexplan.dev/go/internal/model"

// Namespace is a database.collection pair, the unit a set of indexes is
// attached to. It is an alias of model.Namespace; see direction.go for why
// the value model lives in an internal leaf package.
type Namespace = model.Namespace

// ParseNamespace parses the textual form "db.coll". There must be exactly
// one '.' separator, and both sides must be non-empty after trimming
// surrounding whitespace; any other shape is rejected with
// [errors.InvalidNamespace].
func ParseNamespace(s string) (Namespace, error) {
	return model.ParseNamespace(s)
}
