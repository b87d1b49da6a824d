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
	"errors"
	"io"

	"github.com/dolthub/go-mysql-server/sql"
)

// DefaultTileSize is the row capacity of a scan result tile.
const DefaultTileSize = 1024

// Tile is one batch of rows produced by a scan, projected to the requested
// columns. Row values are positional: row[i] is the value of Columns[i].
// Ownership of a tile transfers to the caller; the bridge retains nothing.
type Tile struct {
	Columns []int
	Rows    []sql.Row
}

// RowCount returns the number of rows in the tile.
func (t Tile) RowCount() int {
	return len(t.Rows)
}

// Value returns the col-th projected value of the row-th row.
func (t Tile) Value(row, col int) interface{} {
	return t.Rows[row][col]
}

// Bridge adapts the execution engine's insert and scan primitives for the
// sample store. Both operations require a live caller-supplied transaction;
// the bridge never begins or commits one itself.
type Bridge struct {
	eng      RowEngine
	tileSize int
}

func NewBridge(eng RowEngine, tileSize int) *Bridge {
	if tileSize <= 0 {
		tileSize = DefaultTileSize
	}
	return &Bridge{eng: eng, tileSize: tileSize}
}

// InsertRow inserts a single row into tbl under tx.
func (b *Bridge) InsertRow(ctx *sql.Context, tbl Table, row sql.Row, tx Txn) error {
	if tx == nil {
		return ErrNoTransaction.New("insert")
	}
	return b.eng.InsertRow(ctx, tbl, row, tx)
}

// Scan runs a sequential scan of tbl projected to cols and returns the rows
// batched into tiles in scan-encounter order. The transaction precondition is
// checked before any scan machinery is touched.
func (b *Bridge) Scan(ctx *sql.Context, tbl Table, cols []int, tx Txn) (tiles []Tile, err error) {
	if tx == nil {
		return nil, ErrNoTransaction.New("sequential scan")
	}

	iter, err := b.eng.ScanTable(ctx, tbl, cols, tx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := iter.Close(ctx); cerr != nil && err == nil {
			err = cerr
		}
	}()

	tiles = []Tile{}
	cur := Tile{Columns: cols}
	for {
		var row sql.Row
		row, err = iter.Next(ctx)
		if errors.Is(err, io.EOF) {
			err = nil
			break
		} else if err != nil {
			return nil, err
		}
		cur.Rows = append(cur.Rows, row)
		if len(cur.Rows) == b.tileSize {
			tiles = append(tiles, cur)
			cur = Tile{Columns: cols}
		}
	}
	if len(cur.Rows) > 0 {
		tiles = append(tiles, cur)
	}
	return tiles, err
}
