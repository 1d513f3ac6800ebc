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

package model

import (
	"strings"

	"indexplan.dev/go/errors"
)

// Namespace is a database.collection pair, the unit a set of indexes is
// attached to.
type Namespace struct {
	Database   string
	Collection string
}

func (ns Namespace) String() string {
	return ns.Database + "." + ns.Collection
}

// ParseNamespace parses the textual form "db.coll". There must be exactly
// one '.' separator, and both sides must be non-empty after trimming
// surrounding whitespace; any other shape is rejected with
// [errors.InvalidNamespace].
func ParseNamespace(s string) (Namespace, error) {
	parts := strings.Split(s, ".")
	switch {
	case len(parts) < 2:
		return Namespace{}, errors.Newf(errors.InvalidNamespace, "namespace %q: missing '.' separator", s)
	case len(parts) > 2:
		return Namespace{}, errors.Newf(errors.InvalidNamespace, "namespace %q: more than one '.' separator", s)
	}

	db := strings.TrimSpace(parts[0])
	coll := strings.TrimSpace(parts[1])
	switch {
	case db == "" && coll == "":
		return Namespace{}, errors.Newf(errors.InvalidNamespace, "namespace %q: both database and collection are empty", s)
	case db == "":
		return Namespace{}, errors.Newf(errors.InvalidNamespace, "namespace %q: database part is empty", s)
	case coll == "":
		return Namespace{}, errors.Newf(errors.InvalidNamespace, "namespace %q: collection part is empty", s)
	}

	return Namespace{Database: db, Collection: coll}, nil
}
