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
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/tuplestore/samplestore/memory"
	"github.com/tuplestore/samplestore/samples"
)

func TestEnsureNamespaceIdempotent(t *testing.T) {
	ctx := sql.NewEmptyContext()
	txns := memory.NewTxnManager()
	cat := memory.NewCatalog()
	nm := samples.NewNamespaceManager(txns, cat, "")

	require.Equal(t, samples.DefaultNamespace, nm.Name())
	require.NoError(t, nm.EnsureNamespace(ctx))
	require.NoError(t, nm.EnsureNamespace(ctx))
	require.True(t, cat.HasDatabase(samples.DefaultNamespace))
}

// A namespace left behind by a previous process incarnation must be absorbed
// as success by a freshly constructed manager.
func TestEnsureNamespaceSurvivesRestart(t *testing.T) {
	ctx := sql.NewEmptyContext()
	txns := memory.NewTxnManager()
	cat := memory.NewCatalog()

	require.NoError(t, samples.NewNamespaceManager(txns, cat, "stats_ns").EnsureNamespace(ctx))

	nm := samples.NewNamespaceManager(txns, cat, "stats_ns")
	require.NoError(t, nm.EnsureNamespace(ctx))
	require.True(t, cat.HasDatabase("stats_ns"))
}

func TestEnsureNamespaceConcurrent(t *testing.T) {
	txns := memory.NewTxnManager()
	cat := memory.NewCatalog()
	nm := samples.NewNamespaceManager(txns, cat, "")

	eg := errgroup.Group{}
	for i := 0; i < 8; i++ {
		eg.Go(func() error {
			return nm.EnsureNamespace(sql.NewEmptyContext())
		})
	}
	require.NoError(t, eg.Wait())
	require.True(t, cat.HasDatabase(samples.DefaultNamespace))
}
