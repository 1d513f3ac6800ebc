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
	"testing"
	"time"

	qt "github.com/go-quicktest/qt"

	"indexplan.dev/go"
	"indexplan.dev/go/errors"
)

type countingSource struct {
	calls   int
	indexes []indexplan.Index
	err     error
}

func (c *countingSource) Lookup(context.Context, indexplan.Namespace) ([]indexplan.Index, error) {
	c.calls++
	return c.indexes, c.err
}

func TestCachedSourceCachesSuccess(t *testing.T) {
	under := &countingSource{indexes: []indexplan.Index{{Name: "a"}}}
	cached := NewCachedSource(under, time.Hour)

	ns, _ := indexplan.ParseNamespace("db.coll")
	for i := 0; i < 3; i++ {
		idxs, err := cached.Lookup(context.Background(), ns)
		qt.Assert(t, qt.IsNil(err))
		qt.Assert(t, qt.HasLen(idxs, 1))
	}
	qt.Assert(t, qt.Equals(under.calls, 1))
}

func TestCachedSourceReplaysErrorWithoutRetry(t *testing.T) {
	under := &countingSource{err: errors.New(errors.BackendError, "down")}
	cached := NewCachedSource(under, time.Hour)

	ns, _ := indexplan.ParseNamespace("db.coll")
	_, err1 := cached.Lookup(context.Background(), ns)
	_, err2 := cached.Lookup(context.Background(), ns)
	qt.Assert(t, qt.IsNotNil(err1))
	qt.Assert(t, qt.IsNotNil(err2))
	qt.Assert(t, qt.Equals(under.calls, 1))
}

func TestCachedSourceZeroTTLNeverExpires(t *testing.T) {
	under := &countingSource{indexes: []indexplan.Index{{Name: "a"}}}
	cached := NewCachedSource(under, 0)

	ns, _ := indexplan.ParseNamespace("db.coll")
	cached.Lookup(context.Background(), ns)
	cached.Lookup(context.Background(), ns)
	qt.Assert(t, qt.Equals(under.calls, 1))
}

func TestCachedSourceExpiresAfterTTL(t *testing.T) {
	under := &countingSource{indexes: []indexplan.Index{{Name: "a"}}}
	cached := NewCachedSource(under, time.Nanosecond)

	ns, _ := indexplan.ParseNamespace("db.coll")
	cached.Lookup(context.Background(), ns)
	time.Sleep(time.Millisecond)
	cached.Lookup(context.Background(), ns)
	qt.Assert(t, qt.Equals(under.calls, 2))
}

func TestCachedSourceSeparatesNamespaces(t *testing.T) {
	under := &countingSource{indexes: []indexplan.Index{{Name: "a"}}}
	cached := NewCachedSource(under, time.Hour)

	nsA, _ := indexplan.ParseNamespace("db.a")
	nsB, _ := indexplan.ParseNamespace("db.b")
	cached.Lookup(context.Background(), nsA)
	cached.Lookup(context.Background(), nsB)
	qt.Assert(t, qt.Equals(under.calls, 2))
}
