// Copyright 2026 Tuplestore, Inc.
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

// Package sampler provides the default sampling source for the sample
// store: uniform reservoir sampling (algorithm R) over a single sequential
// scan of the source table.
package sampler

import (
	"errors"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/dolthub/go-mysql-server/sql"

	"github.com/tuplestore/samplestore/samples"
)

// Reservoir samples rows uniformly without knowing the table's row count in
// advance. One scan pass, O(max) memory.
type Reservoir struct {
	eng samples.RowEngine

	mu  sync.Mutex
	rnd *rand.Rand
}

var _ samples.SamplingSource = (*Reservoir)(nil)

func New(eng samples.RowEngine) *Reservoir {
	return NewSeeded(eng, time.Now().UnixNano())
}

// NewSeeded returns a Reservoir with a deterministic random source. Useful
// in tests that assert on the selected rows.
func NewSeeded(eng samples.RowEngine, seed int64) *Reservoir {
	return &Reservoir{eng: eng, rnd: rand.New(rand.NewSource(seed))}
}

// SampleRows scans tbl under tx and returns at most max rows chosen
// uniformly from the scan. When the table holds max rows or fewer, every row
// is returned in scan order. Returned rows are owned copies; nothing aliases
// the engine's storage.
func (r *Reservoir) SampleRows(ctx *sql.Context, tbl samples.SourceTable, max int, tx samples.Txn) (rows []sql.Row, err error) {
	if tx == nil {
		return nil, samples.ErrNoTransaction.New("sampling scan")
	}
	if max <= 0 {
		return []sql.Row{}, nil
	}

	cols := make([]int, len(tbl.Schema()))
	for i := range cols {
		cols[i] = i
	}
	iter, err := r.eng.ScanTable(ctx, tbl, cols, tx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := iter.Close(ctx); cerr != nil && err == nil {
			err = cerr
		}
	}()

	rows = make([]sql.Row, 0, max)
	seen := 0
	for {
		row, nerr := iter.Next(ctx)
		if errors.Is(nerr, io.EOF) {
			break
		} else if nerr != nil {
			return nil, nerr
		}

		seen++
		owned := make(sql.Row, len(row))
		copy(owned, row)
		if len(rows) < max {
			rows = append(rows, owned)
			continue
		}
		if slot := r.intn(seen); slot < max {
			rows[slot] = owned
		}
	}
	return rows, nil
}

func (r *Reservoir) intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rnd.Intn(n)
}
