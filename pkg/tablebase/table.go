// Copyright © 2024 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tablebase

import (
	"fmt"
	"os"
	"sort"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"laptudirm.com/x/antitb/internal/util"
	"laptudirm.com/x/antitb/pkg/antichess"
)

// Table is an in-memory tablebase keyed by position. A Table must be
// fully loaded before it is probed; after that it is read-only and can
// be shared between goroutines.
type Table struct {
	entries   map[string]Entry
	maxPieces int
}

// NewTable creates an empty Table.
func NewTable() *Table {
	return &Table{entries: make(map[string]Entry)}
}

// tableFile is the on-disk format of a table:
//
//	positions:
//	  - fen: 8/8/8/8/k7/8/4N3/K3K3 b - -
//	    value: draw
//	    dtz: 0
type tableFile struct {
	Positions []record `yaml:"positions"`
}

type record struct {
	FEN   string `yaml:"fen"`
	Entry `yaml:",inline"`
}

// Load reads a table file and adds its positions to the Table.
func (table *Table) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return table.Decode(data, path)
}

// Decode adds the positions of the given table file contents to the
// Table. Name is only used in errors and logs.
func (table *Table) Decode(data []byte, name string) error {
	var file tableFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	for i, record := range file.Positions {
		pos, err := antichess.Parse(record.FEN)
		if err != nil {
			return fmt.Errorf("%s: position %d: %w", name, i+1, err)
		}

		table.Add(pos, record.Entry)
	}

	logrus.WithFields(logrus.Fields{
		"file":      name,
		"positions": len(file.Positions),
	}).Debug("Loaded tablebase file")

	return nil
}

// Add stores the entry of the given position, replacing any previous
// entry of the same position.
func (table *Table) Add(pos *antichess.Position, entry Entry) {
	table.entries[pos.Key()] = entry
	if count := pos.PieceCount(); count > table.maxPieces {
		table.maxPieces = count
	}
}

// Probe looks up the given position in the Table.
func (table *Table) Probe(pos *antichess.Position) (Entry, error) {
	if pos.PieceCount() > table.maxPieces {
		return Entry{}, fmt.Errorf("%w: %d > %d", ErrTooManyPieces, pos.PieceCount(), table.maxPieces)
	}

	key := pos.Key()
	entry, found := table.entries[key]
	if !found {
		return Entry{}, fmt.Errorf("%w: %s", ErrNotFound, key)
	}

	return entry, nil
}

// MaxPieces returns the largest piece count among the loaded positions.
func (table *Table) MaxPieces() int {
	return table.maxPieces
}

// Len returns the number of positions in the Table.
func (table *Table) Len() int {
	return len(table.entries)
}

// Keys returns the keys of all the positions in the Table, sorted in
// natural order.
func (table *Table) Keys() []string {
	keys := make([]string, 0, len(table.entries))
	for key := range table.entries {
		keys = append(keys, key)
	}

	sort.Slice(keys, func(i, j int) bool {
		return util.AlphanumCompare(keys[i], keys[j])
	})

	return keys
}

// Lookup returns the entry stored under the given key.
func (table *Table) Lookup(key string) (Entry, bool) {
	entry, found := table.entries[key]
	return entry, found
}
