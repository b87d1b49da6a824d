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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/tuplestore/samplestore/memory"
	"github.com/tuplestore/samplestore/samples"
)

// A source table that was never sampled is reported as absent, which callers
// must be able to tell apart from an empty sample (see
// TestRefreshEmptySampleSet).
func TestTableSamplesAbsent(t *testing.T) {
	e := newEnv(t, samples.Config{})

	_, err := e.reader.TableSamples(e.ctx, samples.TableKey{DatabaseID: 3, TableID: 14})
	require.True(t, samples.ErrNoSampleTable.Is(err))
}

func TestColumnSamplesAbsentYieldsEmpty(t *testing.T) {
	e := newEnv(t, samples.Config{})

	values, err := e.reader.ColumnSamples(e.ctx, samples.TableKey{DatabaseID: 3, TableID: 14}, 0)
	require.NoError(t, err)
	require.NotNil(t, values)
	require.Empty(t, values)
}

func TestColumnProjection(t *testing.T) {
	e := newEnv(t, samples.Config{})
	_, err := e.store.Refresh(e.ctx, ordersTable(t))
	require.NoError(t, err)

	tiles, err := e.reader.TableSamples(e.ctx, ordersKey)
	require.NoError(t, err)
	rows := allRows(tiles)

	for col := 0; col < 2; col++ {
		values, err := e.reader.ColumnSamples(e.ctx, ordersKey, col)
		require.NoError(t, err)
		require.Len(t, values, len(rows))
		for i, row := range rows {
			require.Equal(t, row[col], values[i])
		}
	}
}

func TestColumnSamplesOutOfRange(t *testing.T) {
	e := newEnv(t, samples.Config{})
	_, err := e.store.Refresh(e.ctx, ordersTable(t))
	require.NoError(t, err)

	_, err = e.reader.ColumnSamples(e.ctx, ordersKey, 5)
	require.True(t, memory.ErrColumnRange.Is(err))
}

// The end-to-end scenario: orders (db=1, table=7) with [id, amount], three
// sampled rows, read back whole and by column.
func TestOrdersEndToEnd(t *testing.T) {
	e := newEnv(t, samples.Config{})
	src := ordersTable(t)

	report, err := e.store.Refresh(e.ctx, src)
	require.NoError(t, err)
	require.Equal(t, 3, report.Inserted)

	tiles, err := e.reader.TableSamples(e.ctx, ordersKey)
	require.NoError(t, err)
	rows := allRows(tiles)
	require.ElementsMatch(t, ordersRows(), rows)

	amounts, err := e.reader.ColumnSamples(e.ctx, ordersKey, 1)
	require.NoError(t, err)
	require.Len(t, amounts, 3)

	// Column order is self-consistent with the full-row scan.
	for i, row := range rows {
		require.True(t, row[1].(decimal.Decimal).Equal(amounts[i].(decimal.Decimal)))
	}

	// With three rows and the default sample size, the sampler keeps scan
	// order, so the sequence is exactly the insertion order.
	expect := []decimal.Decimal{
		decimal.NewFromFloat(10.0),
		decimal.NewFromFloat(20.5),
		decimal.NewFromFloat(5.25),
	}
	for i, want := range expect {
		require.True(t, want.Equal(amounts[i].(decimal.Decimal)),
			"amount %d: want %s, got %s", i, want, amounts[i])
	}
}

func TestSampledKeys(t *testing.T) {
	e := newEnv(t, samples.Config{})

	keys, err := e.reader.SampledKeys(e.ctx)
	require.NoError(t, err)
	require.Empty(t, keys)

	_, err = e.store.Refresh(e.ctx, ordersTable(t))
	require.NoError(t, err)
	other := memory.NewSourceTable(samples.TableKey{DatabaseID: 2, TableID: 1}, "parts", ordersSchema())
	_, err = e.store.Refresh(e.ctx, other)
	require.NoError(t, err)

	keys, err = e.reader.SampledKeys(e.ctx)
	require.NoError(t, err)
	require.ElementsMatch(t, []samples.TableKey{ordersKey, other.Key()}, keys)
}

// A reader built before the namespace exists reports every table as
// unsampled rather than failing on the missing database.
func TestReaderWithoutNamespace(t *testing.T) {
	txns := memory.NewTxnManager()
	cat := memory.NewCatalog()
	eng := memory.NewEngine()
	reader := samples.NewReader(txns, cat, eng, samples.Config{})
	ctx := sql.NewEmptyContext()

	_, err := reader.TableSamples(ctx, ordersKey)
	require.True(t, samples.ErrNoSampleTable.Is(err))

	values, err := reader.ColumnSamples(ctx, ordersKey, 0)
	require.NoError(t, err)
	require.Empty(t, values)

	keys, err := reader.SampledKeys(ctx)
	require.NoError(t, err)
	require.Empty(t, keys)
}
