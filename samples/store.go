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

// DefaultSampleSize is the number of rows requested from the sampling source
// per refresh.
const DefaultSampleSize = 100

// Config carries the tunables of a Store. The zero value selects defaults.
type Config struct {
	// Namespace overrides the internal database name.
	Namespace string
	// SampleSize caps the rows requested from the sampling source.
	SampleSize int
	// TileSize caps the rows per scan result tile.
	TileSize int
}

func (c Config) withDefaults() Config {
	if c.Namespace == "" {
		c.Namespace = DefaultNamespace
	}
	if c.SampleSize <= 0 {
		c.SampleSize = DefaultSampleSize
	}
	if c.TileSize <= 0 {
		c.TileSize = DefaultTileSize
	}
	return c
}

// RowFailure records one sampled row that failed to insert.
type RowFailure struct {
	// Index is the row's position in the sampled set.
	Index int
	Err   error
}

// InsertReport is the per-row outcome of populating a sample table. Row
// insertion is best-effort: a failed row does not abort the enclosing
// transaction, so callers that need all-or-nothing semantics must inspect
// Failed and act on it.
type InsertReport struct {
	Attempted int
	Inserted  int
	Failed    []RowFailure
}

// Store manages the lifecycle of sample tables: creation from a schema copy,
// wholesale replacement on refresh, and removal. All row movement goes
// through the execution bridge under transactions from the transaction
// manager; the store holds no locks of its own.
type Store struct {
	txns       TransactionManager
	catalog    Catalog
	bridge     *Bridge
	source     SamplingSource
	ns         *NamespaceManager
	sampleSize int
}

func NewStore(txns TransactionManager, catalog Catalog, eng RowEngine, source SamplingSource, cfg Config) *Store {
	cfg = cfg.withDefaults()
	return &Store{
		txns:       txns,
		catalog:    catalog,
		bridge:     NewBridge(eng, cfg.TileSize),
		source:     source,
		ns:         NewNamespaceManager(txns, catalog, cfg.Namespace),
		sampleSize: cfg.SampleSize,
	}
}

// Init creates the sample namespace. Safe to call more than once.
func (s *Store) Init(ctx *sql.Context) error {
	return s.ns.EnsureNamespace(ctx)
}

// Namespace returns the namespace manager owned by this store.
func (s *Store) Namespace() *NamespaceManager {
	return s.ns
}

// Reader returns a read-path view over this store's sample tables.
func (s *Store) Reader() *Reader {
	return &Reader{txns: s.txns, catalog: s.catalog, bridge: s.bridge, ns: s.ns.Name()}
}

// CreateSampleTable creates the sample table for src and inserts every row in
// rows through the execution bridge, all under one transaction that commits
// only after the last row was attempted. Each row is consumed exactly once:
// the slice's entries are released as they are handed to the insert path.
// Individual insert failures are reported, logged, and do not abort the
// transaction.
func (s *Store) CreateSampleTable(ctx *sql.Context, src SourceTable, rows []sql.Row) (InsertReport, error) {
	name := SampleTableName(src.Key())
	sch := CopySchema(src.Schema(), name)

	tx, err := s.txns.Begin(ctx)
	if err != nil {
		return InsertReport{}, err
	}
	tbl, err := s.catalog.CreateTable(ctx, s.ns.Name(), name, sch, tx, true)
	if err != nil {
		return InsertReport{}, err
	}

	report := InsertReport{Attempted: len(rows)}
	for i := range rows {
		row := rows[i]
		rows[i] = nil
		if err := s.bridge.InsertRow(ctx, tbl, row, tx); err != nil {
			ctx.GetLogger().Warnf("sample insert into %s failed for row %d: %s", name, i, err)
			report.Failed = append(report.Failed, RowFailure{Index: i, Err: err})
			continue
		}
		report.Inserted++
	}

	if err := s.txns.Commit(ctx, tx); err != nil {
		return report, err
	}
	return report, nil
}

// DropSampleTable removes the sample table for key. With a nil tx it opens
// and commits its own single-statement transaction; otherwise it runs under
// the caller's. A missing sample table (or a namespace that was never
// created) is a normal outcome reported as dropped=false with no error.
func (s *Store) DropSampleTable(ctx *sql.Context, key TableKey, tx Txn) (dropped bool, err error) {
	singleStatement := false
	if tx == nil {
		singleStatement = true
		tx, err = s.txns.Begin(ctx)
		if err != nil {
			return false, err
		}
	}

	name := SampleTableName(key)
	err = s.catalog.DropTable(ctx, s.ns.Name(), name, tx)
	switch {
	case err == nil:
		dropped = true
	case sql.ErrTableNotFound.Is(err) || sql.ErrDatabaseNotFound.Is(err):
		dropped = false
	default:
		return false, err
	}

	if singleStatement {
		if err := s.txns.Commit(ctx, tx); err != nil {
			return dropped, err
		}
	}
	ctx.GetLogger().Debugf("drop sample table %s, dropped: %t", name, dropped)
	return dropped, nil
}

// Refresh replaces the sample for src: it asks the sampling source for up to
// SampleSize rows, drops the previous sample table in a self-committing
// transaction, and creates the new one. The drop and the create are separate
// transactions, so a concurrent reader can observe "no sample table" in
// between; it can never observe a mix of old and new samples. An empty sample
// set is valid and leaves an empty sample table.
func (s *Store) Refresh(ctx *sql.Context, src SourceTable) (InsertReport, error) {
	if err := s.ns.EnsureNamespace(ctx); err != nil {
		return InsertReport{}, err
	}

	tx, err := s.txns.Begin(ctx)
	if err != nil {
		return InsertReport{}, err
	}
	rows, err := s.source.SampleRows(ctx, src, s.sampleSize, tx)
	if err != nil {
		return InsertReport{}, err
	}
	if err := s.txns.Commit(ctx, tx); err != nil {
		return InsertReport{}, err
	}

	if _, err := s.DropSampleTable(ctx, src.Key(), nil); err != nil {
		return InsertReport{}, err
	}
	return s.CreateSampleTable(ctx, src, rows)
}

// Purge drops every sample table in the namespace under one transaction and
// returns the keys of the tables it dropped. Tables in the namespace that do
// not follow the sample naming scheme are left alone.
func (s *Store) Purge(ctx *sql.Context) ([]TableKey, error) {
	tx, err := s.txns.Begin(ctx)
	if err != nil {
		return nil, err
	}

	names, err := s.catalog.ListTables(ctx, s.ns.Name(), tx)
	if err != nil {
		if sql.ErrDatabaseNotFound.Is(err) {
			return nil, s.txns.Commit(ctx, tx)
		}
		return nil, err
	}

	var purged []TableKey
	for _, name := range names {
		key, ok := ParseSampleTableName(name)
		if !ok {
			continue
		}
		if err := s.catalog.DropTable(ctx, s.ns.Name(), name, tx); err != nil {
			return nil, err
		}
		purged = append(purged, key)
	}
	if err := s.txns.Commit(ctx, tx); err != nil {
		return nil, err
	}
	ctx.GetLogger().Debugf("purged %d sample tables", len(purged))
	return purged, nil
}
