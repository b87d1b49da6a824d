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

package samples

import (
	"github.com/dolthub/go-mysql-server/sql"
)

// Reader is the optimizer-facing read path over sample tables. Each call
// resolves the sample table by derived name, scans it under its own
// transaction, and returns the accumulated result. Readers are not serialized
// against a concurrent Refresh of the same source table: during the
// drop-to-create window a reader observes "no sample table."
type Reader struct {
	txns    TransactionManager
	catalog Catalog
	bridge  *Bridge
	ns      string
}

func NewReader(txns TransactionManager, catalog Catalog, eng RowEngine, cfg Config) *Reader {
	cfg = cfg.withDefaults()
	return &Reader{
		txns:    txns,
		catalog: catalog,
		bridge:  NewBridge(eng, cfg.TileSize),
		ns:      cfg.Namespace,
	}
}

// TableSamples returns every sampled row for key, batched into tiles, with
// all columns of the sample table's own schema projected in order. A sample
// table that exists but holds zero rows yields an empty (non-nil) tile slice;
// a source table that was never sampled yields ErrNoSampleTable so that
// estimators can distinguish absence from emptiness.
func (r *Reader) TableSamples(ctx *sql.Context, key TableKey) ([]Tile, error) {
	tx, err := r.txns.Begin(ctx)
	if err != nil {
		return nil, err
	}

	tbl, err := r.resolve(ctx, key, tx)
	if err != nil {
		if cerr := r.txns.Commit(ctx, tx); cerr != nil {
			return nil, cerr
		}
		return nil, err
	}

	// Column count comes from the resolved table's schema, which is the
	// schema copied at sampling time, not whatever the source table looks
	// like now.
	cols := make([]int, len(tbl.Schema()))
	for i := range cols {
		cols[i] = i
	}

	tiles, err := r.bridge.Scan(ctx, tbl, cols, tx)
	if err != nil {
		return nil, err
	}
	if err := r.txns.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return tiles, nil
}

// ColumnSamples returns the col-th value of every sampled row for key, in
// scan-encounter order. A missing sample table or an empty sample yields an
// empty sequence, not an error.
func (r *Reader) ColumnSamples(ctx *sql.Context, key TableKey, col int) ([]interface{}, error) {
	tx, err := r.txns.Begin(ctx)
	if err != nil {
		return nil, err
	}

	tbl, err := r.resolve(ctx, key, tx)
	if err != nil {
		if !ErrNoSampleTable.Is(err) {
			return nil, err
		}
		if cerr := r.txns.Commit(ctx, tx); cerr != nil {
			return nil, cerr
		}
		return []interface{}{}, nil
	}

	tiles, err := r.bridge.Scan(ctx, tbl, []int{col}, tx)
	if err != nil {
		return nil, err
	}
	if err := r.txns.Commit(ctx, tx); err != nil {
		return nil, err
	}

	values := []interface{}{}
	for _, tile := range tiles {
		for _, row := range tile.Rows {
			values = append(values, row[0])
		}
	}
	return values, nil
}

// SampledKeys lists the source tables that currently have a sample table.
func (r *Reader) SampledKeys(ctx *sql.Context) ([]TableKey, error) {
	tx, err := r.txns.Begin(ctx)
	if err != nil {
		return nil, err
	}

	names, err := r.catalog.ListTables(ctx, r.ns, tx)
	if err != nil {
		if sql.ErrDatabaseNotFound.Is(err) {
			return nil, r.txns.Commit(ctx, tx)
		}
		return nil, err
	}

	var keys []TableKey
	for _, name := range names {
		if key, ok := ParseSampleTableName(name); ok {
			keys = append(keys, key)
		}
	}
	if err := r.txns.Commit(ctx, tx); err != nil {
		return nil, err
	}
	return keys, nil
}

func (r *Reader) resolve(ctx *sql.Context, key TableKey, tx Txn) (Table, error) {
	tbl, err := r.catalog.Table(ctx, r.ns, SampleTableName(key), tx)
	if err != nil {
		if sql.ErrTableNotFound.Is(err) || sql.ErrDatabaseNotFound.Is(err) {
			return nil, ErrNoSampleTable.New(key)
		}
		return nil, err
	}
	return tbl, nil
}
