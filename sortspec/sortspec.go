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

// Package sortspec converts an ordered sequence of (name, direction) pairs
// into an ordered list of indexplan.SortKey values.
package sortspec

import "indexplan.dev/go"

// Entry is one requested ordering key before parsing, as a caller would
// naturally express it (e.g. {"createdAt", indexplan.Descending}).
type Entry struct {
	Field     string
	Direction indexplan.Direction
}

// Parse converts entries into an ordered []indexplan.SortKey. An empty or
// nil input yields a nil (empty) result. No deduplication is
// performed: a field repeated across entries is passed through unchanged.
func Parse(entries []Entry) []indexplan.SortKey {
	if len(entries) == 0 {
		return nil
	}
	keys := make([]indexplan.SortKey, len(entries))
	for i, e := range entries {
		keys[i] = indexplan.SortKey{Name: e.Field, Direction: e.Direction}
	}
	return keys
}
