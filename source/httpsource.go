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
	"encoding/json"
	"fmt"
	"net/http"

	"indexplan.dev/go"
	"indexplan.dev/go/errors"
)

// HTTPSource fetches index metadata from a database admin API over HTTP:
//
//	GET {BaseURL}/namespaces/{db}/{collection}/indexes
//
// It performs no retries and no caching itself — both are left to a
// decorator the caller supplies, see CachedSource — a single request either
// succeeds, reports 404 as NotFound, or reports any other failure (including
// a malformed response body) as a BackendError. Transport and decoding
// failures carry the underlying cause; an unexpected status code carries
// only the status in its message.
type HTTPSource struct {
	BaseURL string
	Client  *http.Client
}

type wireIndex struct {
	Name   string      `json:"name"`
	Fields []wireField `json:"fields"`
	Sparse bool        `json:"sparse,omitempty"`
	Unique bool        `json:"unique,omitempty"`
}

type wireField struct {
	Name      string `json:"name"`
	Direction int    `json:"direction"` // 1 = ascending, -1 = descending, matching common compound-index wire notation
}

// Lookup implements IndexSource.
func (s *HTTPSource) Lookup(ctx context.Context, ns indexplan.Namespace) ([]indexplan.Index, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	url := fmt.Sprintf("%s/namespaces/%s/%s/indexes", s.BaseURL, ns.Database, ns.Collection)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(errors.BackendError, "building index metadata request", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrap(errors.BackendError, "fetching index metadata", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, notFound(ns)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Newf(errors.BackendError, "fetching index metadata: unexpected status %d", resp.StatusCode)
	}

	var wire []wireIndex
	if err := json.NewDecoder(resp.Body).Decode(&wire); err != nil {
		return nil, errors.Wrap(errors.BackendError, "decoding index metadata response", err)
	}

	out := make([]indexplan.Index, len(wire))
	for i, w := range wire {
		fields := make([]indexplan.IndexField, len(w.Fields))
		for j, f := range w.Fields {
			dir := indexplan.Ascending
			if f.Direction < 0 {
				dir = indexplan.Descending
			}
			fields[j] = indexplan.IndexField{Name: f.Name, Direction: dir}
		}
		out[i] = indexplan.Index{Name: w.Name, Fields: fields, Sparse: w.Sparse, Unique: w.Unique}
	}
	return out, nil
}
