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

import (
	"hash"
)

var (
	_ hash.Hash64 = (*Digest)(nil)
	_ hash.Hash32 = (*Digest)(nil)
)

// Digest is a running checksum of an Engine.
// It implements hash.Hash64 and hash.Hash32.
//
// A Digest isn't safe for concurrent use.
type Digest struct {
	e   *Engine
	acc uint64
}

// New creates a Digest for e.
func (e *Engine) New() *Digest {
	return &Digest{e: e, acc: e.init}
}

// Write (via the embedded io.Writer interface) adds more data to the running hash.
// It never returns an error.
func (d *Digest) Write(p []byte) (n int, err error) {
	d.acc = d.e.Update(d.acc, p)
	return len(p), nil
}

// WriteByte adds one byte.
func (d *Digest) WriteByte(b byte) error {
	d.acc = d.e.UpdateByte(d.acc, b)
	return nil
}

// Sum appends the current checksum to b in big-endian, Size bytes.
// It does not change the underlying hash state.
func (d *Digest) Sum(b []byte) []byte {
	s := d.Sum64()
	for i := d.Size() - 1; i >= 0; i-- {
		b = append(b, byte(s>>(uint(i)*8)))
	}
	return b
}

// Sum64 returns the current checksum.
func (d *Digest) Sum64() uint64 {
	return d.e.Final(d.acc)
}

// Sum32 returns the low 32 bits of the current checksum.
func (d *Digest) Sum32() uint32 {
	return uint32(d.Sum64())
}

// Reset resets the Digest to its initial state.
func (d *Digest) Reset() {
	d.acc = d.e.init
}

// Size returns the number of bytes Sum will return.
func (d *Digest) Size() int {
	return d.e.Size()
}

// BlockSize returns the hash's underlying block size.
func (d *Digest) BlockSize() int {
	return 1
}
