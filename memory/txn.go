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

// Package memory implements the samples package's collaborator contracts
// (transaction manager, catalog, row engine, source tables) on top of
// in-process maps and slices. It backs the sample store in tests and in
// embedders that do not bring their own engine, the way a stats backend
// implementation backs the stats coordinator.
package memory

import (
	"sync"
	"sync/atomic"

	"github.com/dolthub/go-mysql-server/sql"
	"github.com/google/uuid"
	"gopkg.in/src-d/go-errors.v1"

	"github.com/tuplestore/samplestore/samples"
)

var (
	// ErrTxnNotActive is returned when an already-committed or unknown
	// transaction is used.
	ErrTxnNotActive = errors.NewKind("transaction %s is not active")

	// ErrForeignTxn is returned when a transaction handle was not issued by
	// this manager.
	ErrForeignTxn = errors.NewKind("transaction was not issued by this manager")
)

// Txn is an in-memory transaction handle.
//
// Writes performed under a Txn apply immediately; Commit retires the handle.
// Isolation is therefore no stronger than read-committed-per-operation, which
// is all the sample store asks of its transaction manager: every operation it
// runs is complete before the enclosing call returns.
type Txn struct {
	id       string
	finished atomic.Bool
}

func (t *Txn) ID() string {
	return t.id
}

// TxnManager issues and commits Txns.
type TxnManager struct {
	mu   sync.Mutex
	live map[string]*Txn
}

var _ samples.TransactionManager = (*TxnManager)(nil)

func NewTxnManager() *TxnManager {
	return &TxnManager{live: make(map[string]*Txn)}
}

func (m *TxnManager) Begin(ctx *sql.Context) (samples.Txn, error) {
	t := &Txn{id: uuid.NewString()}
	m.mu.Lock()
	m.live[t.id] = t
	m.mu.Unlock()
	return t, nil
}

func (m *TxnManager) Commit(ctx *sql.Context, tx samples.Txn) error {
	t, err := activeTxn("commit", tx)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.live[t.id]; !ok {
		return ErrTxnNotActive.New(t.id)
	}
	delete(m.live, t.id)
	t.finished.Store(true)
	return nil
}

// activeTxn checks the transaction precondition shared by every catalog and
// engine operation.
func activeTxn(op string, tx samples.Txn) (*Txn, error) {
	if tx == nil {
		return nil, samples.ErrNoTransaction.New(op)
	}
	t, ok := tx.(*Txn)
	if !ok {
		return nil, ErrForeignTxn.New()
	}
	if t.finished.Load() {
		return nil, ErrTxnNotActive.New(t.id)
	}
	return t, nil
}
