// Copyright (c) 2020. Temple3x (temple3x@gmail.com)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package crc

import "sync"

// Table is the byte remainder table of a reflected divisor:
// entry b is the remainder of b after 8 steps of
// LSB-first polynomial division.
//
// A Table is never modified after it's made.
type Table [256]uint64

// MakeTable returns the Table built from divisor
// (the polynomial already reflected over its width).
func MakeTable(divisor uint64) *Table {
	t := new(Table)
	for i := range t {
		crc := uint64(i)
		for j := 0; j < 8; j++ {
			if crc&1 == 1 {
				crc = (crc >> 1) ^ divisor
			} else {
				crc >>= 1
			}
		}
		t[i] = crc
	}
	return t
}

type tableKey struct {
	divisor uint64
	width   uint
}

var (
	tablesMu sync.Mutex // Protects tables.
	tables   = make(map[tableKey]*Table)
)

// getTable returns the shared Table of (divisor, width),
// making it at the first time.
func getTable(divisor uint64, width uint) *Table {
	tablesMu.Lock()
	defer tablesMu.Unlock()

	k := tableKey{divisor: divisor, width: width}
	t, ok := tables[k]
	if !ok {
		t = MakeTable(divisor)
		tables[k] = t
	}
	return t
}
