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
	"testing"

	qt "github.com/go-quicktest/qt"
)

func TestIndexValidate(t *testing.T) {
	qt.Assert(t, qt.IsNotNil(Index{Name: "empty"}.Validate()))
	qt.Assert(t, qt.IsNotNil(Index{Name: "blank", Fields: []IndexField{{Name: ""}}}.Validate()))
	qt.Assert(t, qt.IsNil(Index{Name: "ok", Fields: []IndexField{{Name: "a"}}}.Validate()))
}

func TestIndexReversed(t *testing.T) {
	idx := Index{Name: "i", Fields: []IndexField{
		{Name: "a", Direction: Ascending},
		{Name: "b", Direction: Descending},
	}}
	rev := idx.Reversed()
	qt.Assert(t, qt.DeepEquals(rev.Fields, []IndexField{
		{Name: "a", Direction: Descending},
		{Name: "b", Direction: Ascending},
	}))
	// Reversed must not mutate the original.
	qt.Assert(t, qt.Equals(idx.Fields[0].Direction, Ascending))
}

func TestDirectionReverse(t *testing.T) {
	qt.Assert(t, qt.Equals(Ascending.Reverse(), Descending))
	qt.Assert(t, qt.Equals(Descending.Reverse(), Ascending))
	qt.Assert(t, qt.Equals(Ascending.Reverse().Reverse(), Ascending))
}
