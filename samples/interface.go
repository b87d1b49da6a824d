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

// Package samples maintains materialized row samples for query optimizer
// statistics. Each sampled source table gets one ordinary table inside a
// dedicated internal namespace database; refreshing a sample drops and
// recreates that table. The transaction manager, catalog, and execution
// engine are consumed through the contracts below and never reimplemented
// here; package memory provides an in-process implementation of all three.
package samples

import (
	"github.com/dolthub/go-mysql-server/sql"
)

// Txn is an opaque transaction handle issued by a TransactionManager.
type Txn interface {
	// ID identifies the transaction for logging.
	ID() string
}

// TransactionManager begins and commits transactions. Commit is assumed
// durable once it returns without error. Isolation between concurrent
// transactions is entirely the manager's concern; this package adds no
// locking of its own.
type TransactionManager interface {
	Begin(ctx *sql.Context) (Txn, error)
	Commit(ctx *sql.Context, tx Txn) error
}

// Table is a catalog-resolved table handle.
type Table interface {
	Name() string
	Schema() sql.Schema
}

// SourceTable is a user table eligible for sampling.
type SourceTable interface {
	Table
	Key() TableKey
}

// Catalog creates, resolves, and drops databases and tables. Lookup and drop
// report missing objects with the sql.ErrTableNotFound and
// sql.ErrDatabaseNotFound kinds; CreateDatabase reports a taken name with
// ErrDatabaseExists.
type Catalog interface {
	CreateDatabase(ctx *sql.Context, name string, tx Txn) error
	CreateTable(ctx *sql.Context, dbName, tableName string, sch sql.Schema, tx Txn, internal bool) (Table, error)
	Table(ctx *sql.Context, dbName, tableName string, tx Txn) (Table, error)
	DropTable(ctx *sql.Context, dbName, tableName string, tx Txn) error
	ListTables(ctx *sql.Context, dbName string, tx Txn) ([]string, error)
}

// RowEngine is the execution engine surface this package moves rows through:
// single-row insert and a projected sequential scan. The returned iterator
// terminates with io.EOF and must be closed.
type RowEngine interface {
	InsertRow(ctx *sql.Context, tbl Table, row sql.Row, tx Txn) error
	ScanTable(ctx *sql.Context, tbl Table, cols []int, tx Txn) (sql.RowIter, error)
}

// SamplingSource selects at most max rows from a source table. Returned rows
// are owned by the caller; the source retains no reference to them.
type SamplingSource interface {
	SampleRows(ctx *sql.Context, tbl SourceTable, max int, tx Txn) ([]sql.Row, error)
}

// CopySchema returns a deep copy of sch with every column's Source rewritten
// to source. A sample table's schema is a copy taken at sampling time; it
// does not track later schema changes to the source table.
func CopySchema(sch sql.Schema, source string) sql.Schema {
	out := sch.Copy()
	for _, col := range out {
		col.Source = source
	}
	return out
}
