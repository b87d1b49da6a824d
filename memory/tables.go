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

package memory

import (
	"sync"

	"github.com/dolthub/go-mysql-server/sql"
	"gopkg.in/src-d/go-errors.v1"

	"github.com/tuplestore/samplestore/samples"
)

var (
	// ErrRowArity is returned when an inserted row's length does not match
	// the table schema.
	ErrRowArity = errors.NewKind("row has %d values, table %s has %d columns")

	// ErrColumnRange is returned when a scan projects a column index outside
	// the table schema.
	ErrColumnRange = errors.NewKind("column index %d out of range for table %s")
)

// Table is an in-memory heap of rows with a fixed schema.
type Table struct {
	name     string
	sch      sql.Schema
	internal bool

	mu   sync.RWMutex
	rows []sql.Row
}

var _ samples.Table = (*Table)(nil)

func newTable(name string, sch sql.Schema, internal bool) *Table {
	return &Table{name: name, sch: sch, internal: internal}
}

func (t *Table) Name() string {
	return t.name
}

func (t *Table) Schema() sql.Schema {
	return t.sch
}

// Internal reports whether the table was created with the internal flag, as
// sample tables are.
func (t *Table) Internal() bool {
	return t.internal
}

func (t *Table) insert(row sql.Row) error {
	if len(row) != len(t.sch) {
		return ErrRowArity.New(len(row), t.name, len(t.sch))
	}
	t.mu.Lock()
	t.rows = append(t.rows, row)
	t.mu.Unlock()
	return nil
}

// snapshot copies the table's rows projected to cols, in insertion order. The
// copy keeps a scan's result stable against inserts that land after the scan
// started.
func (t *Table) snapshot(cols []int) ([]sql.Row, error) {
	for _, c := range cols {
		if c < 0 || c >= len(t.sch) {
			return nil, ErrColumnRange.New(c, t.name)
		}
	}

	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]sql.Row, len(t.rows))
	for i, row := range t.rows {
		projected := make(sql.Row, len(cols))
		for j, c := range cols {
			projected[j] = row[c]
		}
		out[i] = projected
	}
	return out, nil
}

// SourceTable is a user table that the sample store can sample from.
type SourceTable struct {
	*Table
	key samples.TableKey
}

var _ samples.SourceTable = (*SourceTable)(nil)

func NewSourceTable(key samples.TableKey, name string, sch sql.Schema) *SourceTable {
	return &SourceTable{Table: newTable(name, sch, false), key: key}
}

func (t *SourceTable) Key() samples.TableKey {
	return t.key
}

// AppendRow loads a row directly into the source table, bypassing the
// engine. Intended for seeding test and example data.
func (t *SourceTable) AppendRow(row sql.Row) error {
	return t.insert(row)
}
