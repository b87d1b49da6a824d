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

package samples_test

import (
	"testing"

	"github.com/dolthub/go-mysql-server/sql"
	"github.com/dolthub/go-mysql-server/sql/types"
	"github.com/stretchr/testify/require"

	"github.com/tuplestore/samplestore/memory"
	"github.com/tuplestore/samplestore/samples"
)

func TestBridgeRequiresTransaction(t *testing.T) {
	ctx := sql.NewEmptyContext()
	bridge := samples.NewBridge(memory.NewEngine(), 0)
	tbl := memory.NewSourceTable(samples.TableKey{DatabaseID: 2, TableID: 2}, "t", sql.Schema{
		{Name: "n", Type: types.Int64, Source: "t"},
	})

	err := bridge.InsertRow(ctx, tbl, sql.Row{int64(1)}, nil)
	require.True(t, samples.ErrNoTransaction.Is(err))

	_, err = bridge.Scan(ctx, tbl, []int{0}, nil)
	require.True(t, samples.ErrNoTransaction.Is(err))
}

func TestBridgeScanTiling(t *testing.T) {
	ctx := sql.NewEmptyContext()
	txns := memory.NewTxnManager()
	eng := memory.NewEngine()
	bridge := samples.NewBridge(eng, 2)
	tbl := memory.NewSourceTable(samples.TableKey{DatabaseID: 2, TableID: 3}, "t", sql.Schema{
		{Name: "n", Type: types.Int64, Source: "t"},
		{Name: "m", Type: types.Int64, Source: "t"},
	})

	tx, err := txns.Begin(ctx)
	require.NoError(t, err)
	for i := int64(0); i < 5; i++ {
		require.NoError(t, bridge.InsertRow(ctx, tbl, sql.Row{i, i * 10}, tx))
	}

	tiles, err := bridge.Scan(ctx, tbl, []int{1}, tx)
	require.NoError(t, err)
	require.Len(t, tiles, 3)
	require.Equal(t, []int{1}, tiles[0].Columns)
	require.Equal(t, 2, tiles[0].RowCount())
	require.Equal(t, 2, tiles[1].RowCount())
	require.Equal(t, 1, tiles[2].RowCount())
	require.Equal(t, int64(40), tiles[2].Value(0, 0))
	require.NoError(t, txns.Commit(ctx, tx))
}

func TestBridgeScanEmptyTable(t *testing.T) {
	ctx := sql.NewEmptyContext()
	txns := memory.NewTxnManager()
	bridge := samples.NewBridge(memory.NewEngine(), 0)
	tbl := memory.NewSourceTable(samples.TableKey{DatabaseID: 2, TableID: 4}, "t", sql.Schema{
		{Name: "n", Type: types.Int64, Source: "t"},
	})

	tx, err := txns.Begin(ctx)
	require.NoError(t, err)
	tiles, err := bridge.Scan(ctx, tbl, []int{0}, tx)
	require.NoError(t, err)
	require.NotNil(t, tiles)
	require.Empty(t, tiles)
	require.NoError(t, txns.Commit(ctx, tx))
}
