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
	"gopkg.in/src-d/go-errors.v1"
)

var (
	// ErrNoTransaction is returned when an operation that requires a
	// caller-supplied transaction is invoked without one. This is a
	// precondition violation, never retried or absorbed.
	ErrNoTransaction = errors.NewKind("no transaction supplied for %s")

	// ErrNoSampleTable is returned by the read path when the source table
	// identified by the key has never been sampled (or its sample was
	// dropped). Estimators use it to fall back to default statistics; it is
	// distinct from a sample table that exists with zero rows.
	ErrNoSampleTable = errors.NewKind("no sample table for source table %s")

	// ErrDatabaseExists is returned by Catalog.CreateDatabase when the name
	// is taken. Namespace initialization absorbs it so that ensuring the
	// namespace is idempotent across restarts.
	ErrDatabaseExists = errors.NewKind("database %s already exists")
)
