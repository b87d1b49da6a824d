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
	"strconv"
	"strings"
)

// TableKey identifies a source table by its database and table ids. Sample
// tables are named after the key of the table they were sampled from, so the
// key is the only piece of source-table identity this package persists.
type TableKey struct {
	DatabaseID uint32
	TableID    uint32
}

func (k TableKey) String() string {
	return SampleTableName(k)
}

// SampleTableName derives the name of the sample table for a source table.
// The separator cannot appear in a decimal rendering of either id, so
// distinct keys always map to distinct names.
func SampleTableName(key TableKey) string {
	var b strings.Builder
	b.WriteString(strconv.FormatUint(uint64(key.DatabaseID), 10))
	b.WriteByte('_')
	b.WriteString(strconv.FormatUint(uint64(key.TableID), 10))
	return b.String()
}

// ParseSampleTableName is the inverse of SampleTableName. It reports false
// for names that were not produced by this scheme, which lets callers walk a
// namespace that may contain unrelated tables.
func ParseSampleTableName(name string) (TableKey, bool) {
	dbStr, tblStr, ok := strings.Cut(name, "_")
	if !ok {
		return TableKey{}, false
	}
	dbID, err := strconv.ParseUint(dbStr, 10, 32)
	if err != nil {
		return TableKey{}, false
	}
	tblID, err := strconv.ParseUint(tblStr, 10, 32)
	if err != nil {
		return TableKey{}, false
	}
	return TableKey{DatabaseID: uint32(dbID), TableID: uint32(tblID)}, true
}
