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
	"sync"
	"time"

	"indexplan.dev/go"
)

// CachedSource decorates an IndexSource with a bounded-lifetime, in-memory
// cache, so that a slow or rate-limited backing source doesn't pay a round
// trip on every lookup of the same namespace. A plain mutex-guarded map is
// enough here; no generic caching library is pulled in for two fields and a
// timestamp.
type CachedSource struct {
	Underlying indexplan.IndexSource
	TTL        time.Duration

	mu      sync.Mutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	indexes []indexplan.Index
	err     error
	expires time.Time
}

// NewCachedSource wraps underlying with a cache whose entries are valid for
// ttl. A ttl of zero means entries never expire once fetched.
func NewCachedSource(underlying indexplan.IndexSource, ttl time.Duration) *CachedSource {
	return &CachedSource{Underlying: underlying, TTL: ttl, entries: map[string]cacheEntry{}}
}

// Lookup implements IndexSource. A cached BackendError is replayed, not
// retried, on a cache hit.
func (c *CachedSource) Lookup(ctx context.Context, ns indexplan.Namespace) ([]indexplan.Index, error) {
	key := ns.String()

	c.mu.Lock()
	if e, ok := c.entries[key]; ok && (c.TTL == 0 || time.Now().Before(e.expires)) {
		c.mu.Unlock()
		return e.indexes, e.err
	}
	c.mu.Unlock()

	indexes, err := c.Underlying.Lookup(ctx, ns)

	c.mu.Lock()
	c.entries[key] = cacheEntry{indexes: indexes, err: err, expires: time.Now().Add(c.TTL)}
	c.mu.Unlock()

	return indexes, err
}
