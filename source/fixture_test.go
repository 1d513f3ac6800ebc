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
	"context"
	"strings"
	"testing"

	qt "github.com/go-quicktest/qt"

	"indexplan.dev/go"
	"indexplan.dev/go/errors"
)

const testFixtureYAML = `
db.orders:
  - name: u_1
    fields:
      - {name: u, direction: asc}
  - name: s_1_c_-1
    fields:
      - {name: s, direction: asc}
      - {name: c, direction: desc}
    unique: true
`

func TestLoadFixtureYAML(t *testing.T) {
	src, err := LoadFixtureYAML(strings.NewReader(testFixtureYAML))
	qt.Assert(t, qt.IsNil(err))

	ns, err := indexplan.ParseNamespace("db.orders")
	qt.Assert(t, qt.IsNil(err))

	idxs, err := src.Lookup(context.Background(), ns)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.HasLen(idxs, 2))
	qt.Assert(t, qt.Equals(idxs[0].Name, "u_1"))
	qt.Assert(t, qt.Equals(idxs[1].Fields[1].Direction, indexplan.Descending))
	qt.Assert(t, qt.IsTrue(idxs[1].Unique))
}

func TestFixtureSourceNotFound(t *testing.T) {
	src := NewFixtureSource(nil)
	ns, err := indexplan.ParseNamespace("db.missing")
	qt.Assert(t, qt.IsNil(err))

	_, err = src.Lookup(context.Background(), ns)
	qt.Assert(t, qt.ErrorIs(err, errors.New(errors.NotFound, "")))
}

func TestFixtureSourceCopiesOnConstruction(t *testing.T) {
	original := []indexplan.Index{{Name: "a", Fields: []indexplan.IndexField{{Name: "x"}}}}
	src := NewFixtureSource(map[string][]indexplan.Index{"db.coll": original})

	original[0].Name = "mutated"

	ns, _ := indexplan.ParseNamespace("db.coll")
	idxs, err := src.Lookup(context.Background(), ns)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(idxs[0].Name, "a"))
}

func TestParseDirection(t *testing.T) {
	for _, s := range []string{"asc", "ascending", "1", ""} {
		dir, err := parseDirection(s)
		qt.Assert(t, qt.IsNil(err))
		qt.Assert(t, qt.Equals(dir, indexplan.Ascending))
	}
	for _, s := range []string{"desc", "descending", "-1"} {
		dir, err := parseDirection(s)
		qt.Assert(t, qt.IsNil(err))
		qt.Assert(t, qt.Equals(dir, indexplan.Descending))
	}
	_, err := parseDirection("sideways")
	qt.Assert(t, qt.IsNotNil(err))
}

func TestLoadFixtureYAMLRejectsBadDirection(t *testing.T) {
	_, err := LoadFixtureYAML(strings.NewReader(`
db.orders:
  - name: bad
    fields:
      - {name: a, direction: sideways}
`))
	qt.Assert(t, qt.IsNotNil(err))
}
