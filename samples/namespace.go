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
	"sync"

	"github.com/dolthub/go-mysql-server/sql"
)

// DefaultNamespace is the name of the internal database that holds every
// sample table. The name is part of the persisted catalog contract and must
// stay stable across restarts.
const DefaultNamespace = "samples_db"

// NamespaceManager owns the lifetime of the sample namespace database. It is
// constructed explicitly by the embedding database instance and handed to
// every consumer; there is no package-level instance. The namespace is
// created at most once per catalog and never destroyed during normal
// operation.
type NamespaceManager struct {
	txns    TransactionManager
	catalog Catalog
	name    string

	mu          sync.Mutex
	initialized bool
}

func NewNamespaceManager(txns TransactionManager, catalog Catalog, name string) *NamespaceManager {
	if name == "" {
		name = DefaultNamespace
	}
	return &NamespaceManager{txns: txns, catalog: catalog, name: name}
}

// Name returns the namespace database name.
func (nm *NamespaceManager) Name() string {
	return nm.name
}

// EnsureNamespace creates the sample namespace if it does not already exist,
// inside its own immediately-committed transaction. It is idempotent and safe
// to call concurrently: a namespace left behind by an earlier process
// incarnation is absorbed as success, and only the first successful call per
// manager does any catalog work.
func (nm *NamespaceManager) EnsureNamespace(ctx *sql.Context) error {
	nm.mu.Lock()
	defer nm.mu.Unlock()
	if nm.initialized {
		return nil
	}

	tx, err := nm.txns.Begin(ctx)
	if err != nil {
		return err
	}
	if err := nm.catalog.CreateDatabase(ctx, nm.name, tx); err != nil {
		if !ErrDatabaseExists.Is(err) {
			return err
		}
		ctx.GetLogger().Debugf("sample namespace %s already exists", nm.name)
	}
	if err := nm.txns.Commit(ctx, tx); err != nil {
		return err
	}

	nm.initialized = true
	return nil
}
