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
	"sort"
	"strings"
	"sync"

	"github.com/dolthub/go-mysql-server/sql"

	"github.com/tuplestore/samplestore/samples"
)

// Catalog is an in-memory database/table catalog. Names are
// case-insensitive. Missing objects are reported with the GMS not-found
// kinds, taken names with ErrDatabaseExists and sql.ErrTableAlreadyExists.
type Catalog struct {
	mu  sync.RWMutex
	dbs map[string]*database
}

type database struct {
	name   string
	tables map[string]*Table
}

var _ samples.Catalog = (*Catalog)(nil)

func NewCatalog() *Catalog {
	return &Catalog{dbs: make(map[string]*database)}
}

func (c *Catalog) CreateDatabase(ctx *sql.Context, name string, tx samples.Txn) error {
	if _, err := activeTxn("create database", tx); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	key := strings.ToLower(name)
	if _, ok := c.dbs[key]; ok {
		return samples.ErrDatabaseExists.New(name)
	}
	c.dbs[key] = &database{name: name, tables: make(map[string]*Table)}
	return nil
}

func (c *Catalog) CreateTable(ctx *sql.Context, dbName, tableName string, sch sql.Schema, tx samples.Txn, internal bool) (samples.Table, error) {
	if _, err := activeTxn("create table", tx); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	db, ok := c.dbs[strings.ToLower(dbName)]
	if !ok {
		return nil, sql.ErrDatabaseNotFound.New(dbName)
	}
	key := strings.ToLower(tableName)
	if _, ok := db.tables[key]; ok {
		return nil, sql.ErrTableAlreadyExists.New(tableName)
	}
	tbl := newTable(tableName, sch, internal)
	db.tables[key] = tbl
	return tbl, nil
}

func (c *Catalog) Table(ctx *sql.Context, dbName, tableName string, tx samples.Txn) (samples.Table, error) {
	if _, err := activeTxn("table lookup", tx); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	db, ok := c.dbs[strings.ToLower(dbName)]
	if !ok {
		return nil, sql.ErrDatabaseNotFound.New(dbName)
	}
	tbl, ok := db.tables[strings.ToLower(tableName)]
	if !ok {
		return nil, sql.ErrTableNotFound.New(tableName)
	}
	return tbl, nil
}

func (c *Catalog) DropTable(ctx *sql.Context, dbName, tableName string, tx samples.Txn) error {
	if _, err := activeTxn("drop table", tx); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	db, ok := c.dbs[strings.ToLower(dbName)]
	if !ok {
		return sql.ErrDatabaseNotFound.New(dbName)
	}
	key := strings.ToLower(tableName)
	if _, ok := db.tables[key]; !ok {
		return sql.ErrTableNotFound.New(tableName)
	}
	delete(db.tables, key)
	return nil
}

func (c *Catalog) ListTables(ctx *sql.Context, dbName string, tx samples.Txn) ([]string, error) {
	if _, err := activeTxn("list tables", tx); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	db, ok := c.dbs[strings.ToLower(dbName)]
	if !ok {
		return nil, sql.ErrDatabaseNotFound.New(dbName)
	}
	names := make([]string, 0, len(db.tables))
	for _, tbl := range db.tables {
		names = append(names, tbl.name)
	}
	sort.Strings(names)
	return names, nil
}

// HasDatabase reports whether a database exists, outside any transaction.
func (c *Catalog) HasDatabase(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.dbs[strings.ToLower(name)]
	return ok
}
