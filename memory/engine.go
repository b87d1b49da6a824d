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
	"io"

	"github.com/dolthub/go-mysql-server/sql"
	"gopkg.in/src-d/go-errors.v1"

	"github.com/tuplestore/samplestore/samples"
)

// ErrForeignTable is returned when a table handle was not created by this
// package's catalog.
var ErrForeignTable = errors.NewKind("table %s is not backed by this engine")

// rowStore is the storage surface shared by Table and SourceTable.
type rowStore interface {
	samples.Table
	insert(row sql.Row) error
	snapshot(cols []int) ([]sql.Row, error)
}

// Engine implements the execution primitives the sample store moves rows
// with: single-row insert and projected sequential scan over tables from
// this package.
type Engine struct{}

var _ samples.RowEngine = (*Engine)(nil)

func NewEngine() *Engine {
	return &Engine{}
}

func (e *Engine) InsertRow(ctx *sql.Context, tbl samples.Table, row sql.Row, tx samples.Txn) error {
	if _, err := activeTxn("insert", tx); err != nil {
		return err
	}
	st, ok := tbl.(rowStore)
	if !ok {
		return ErrForeignTable.New(tbl.Name())
	}
	return st.insert(row)
}

// ScanTable returns an iterator over a snapshot of tbl projected to cols,
// in insertion order. The iterator terminates with io.EOF.
func (e *Engine) ScanTable(ctx *sql.Context, tbl samples.Table, cols []int, tx samples.Txn) (sql.RowIter, error) {
	if _, err := activeTxn("sequential scan", tx); err != nil {
		return nil, err
	}
	st, ok := tbl.(rowStore)
	if !ok {
		return nil, ErrForeignTable.New(tbl.Name())
	}
	rows, err := st.snapshot(cols)
	if err != nil {
		return nil, err
	}
	return &sliceRowIter{rows: rows}, nil
}

type sliceRowIter struct {
	rows []sql.Row
	pos  int
}

var _ sql.RowIter = (*sliceRowIter)(nil)

func (i *sliceRowIter) Next(ctx *sql.Context) (sql.Row, error) {
	if i.pos >= len(i.rows) {
		return nil, io.EOF
	}
	row := i.rows[i.pos]
	i.pos++
	return row, nil
}

func (i *sliceRowIter) Close(ctx *sql.Context) error {
	i.rows = nil
	return nil
}
