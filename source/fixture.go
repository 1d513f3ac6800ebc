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
	"fmt"
	"io"
	"sync"

	"gopkg.in/yaml.v3"

	"indexplan.dev/go"
)

// fixtureFile is the on-disk YAML shape loaded by LoadFixtureYAML, keyed by
// namespace string ("db.coll"). It mirrors cue/load's preference for a
// plain configuration file over flags for anything shaped like data rather
// than a single switch.
type fixtureFile map[string][]fixtureIndex

type fixtureIndex struct {
	Name   string         `yaml:"name"`
	Fields []fixtureField `yaml:"fields"`
	Sparse bool           `yaml:"sparse,omitempty"`
	Unique bool           `yaml:"unique,omitempty"`
}

type fixtureField struct {
	Name      string `yaml:"name"`
	Direction string `yaml:"direction"` // "asc" or "desc"
}

// FixtureSource is a static, in-memory IndexSource, normally built from a
// YAML fixture file for tests and CLI offline mode.
type FixtureSource struct {
	mu      sync.RWMutex
	indexes map[string][]indexplan.Index
}

// NewFixtureSource builds a FixtureSource from an in-memory map, keyed by
// the namespace's String() form.
func NewFixtureSource(indexes map[string][]indexplan.Index) *FixtureSource {
	cp := make(map[string][]indexplan.Index, len(indexes))
	for k, v := range indexes {
		cp[k] = append([]indexplan.Index(nil), v...)
	}
	return &FixtureSource{indexes: cp}
}

// LoadFixtureYAML parses a YAML document of the shape:
//
//	db.coll:
//	  - name: idx1
//	    fields:
//	      - {name: a, direction: asc}
//	      - {name: b, direction: desc}
//
// into a FixtureSource.
func LoadFixtureYAML(r io.Reader) (*FixtureSource, error) {
	var raw fixtureFile
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parsing index fixture: %w", err)
	}

	indexes := make(map[string][]indexplan.Index, len(raw))
	for ns, idxs := range raw {
		converted := make([]indexplan.Index, len(idxs))
		for i, idx := range idxs {
			fields := make([]indexplan.IndexField, len(idx.Fields))
			for j, f := range idx.Fields {
				dir, err := parseDirection(f.Direction)
				if err != nil {
					return nil, fmt.Errorf("namespace %s, index %s, field %s: %w", ns, idx.Name, f.Name, err)
				}
				fields[j] = indexplan.IndexField{Name: f.Name, Direction: dir}
			}
			converted[i] = indexplan.Index{
				Name:   idx.Name,
				Fields: fields,
				Sparse: idx.Sparse,
				Unique: idx.Unique,
			}
		}
		indexes[ns] = converted
	}
	return NewFixtureSource(indexes), nil
}

func parseDirection(s string) (indexplan.Direction, error) {
	switch s {
	case "asc", "ascending", "1", "":
		return indexplan.Ascending, nil
	case "desc", "descending", "-1":
		return indexplan.Descending, nil
	default:
		return 0, fmt.Errorf("unrecognized direction %q", s)
	}
}

// Lookup implements IndexSource.
func (s *FixtureSource) Lookup(_ context.Context, ns indexplan.Namespace) ([]indexplan.Index, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idxs, ok := s.indexes[ns.String()]
	if !ok {
		return nil, notFound(ns)
	}
	return idxs, nil
}
